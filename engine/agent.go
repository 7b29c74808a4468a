package engine

import "quoridor/model"

// Agent is anything that can pick a move. SelectMove receives a private
// clone of the position and the legal actions for the player to move;
// the agent finds out which side it plays from state.ToMove and must
// answer with one of the offered actions. Reset clears internal memory
// so one value can play game after game. Name is the stable display and
// registry name.
type Agent interface {
	Name() string
	Reset()
	SelectMove(state *model.GameState, legal []model.Action) model.Action
}
