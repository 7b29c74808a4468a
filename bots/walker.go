package bots

import (
	"math/rand"

	"quoridor/model"
)

// Walker marches along a shortest path to its goal row and never places
// a wall. When a jump or side-step is on offer it takes one half the
// time; jumping past the opponent is usually worth it.
type Walker struct {
	rng *rand.Rand
}

func NewWalker(seed int64) *Walker {
	return &Walker{rng: rand.New(rand.NewSource(seed))}
}

func (b *Walker) Name() string { return "walker" }

func (b *Walker) Reset() {}

func (b *Walker) SelectMove(state *model.GameState, legal []model.Action) model.Action {
	var jumps []model.Action
	var moves []model.MoveAction
	for _, a := range legal {
		switch act := a.(type) {
		case model.JumpAction:
			jumps = append(jumps, act)
		case model.MoveAction:
			moves = append(moves, act)
		}
	}
	if len(jumps) > 0 && b.rng.Float64() > 0.5 {
		return jumps[b.rng.Intn(len(jumps))]
	}
	if len(moves) == 0 {
		return legal[b.rng.Intn(len(legal))]
	}

	me := state.Mover()
	path := bfsPath(state.Board, me.Pos, me.GoalRow)
	if path == nil {
		// a live position always reaches its goal row; anything else is
		// a corrupted state and worth dying over
		panic("walker: no path to goal row")
	}
	next := path[1]
	for _, mv := range moves {
		dr, dc := mv.Delta()
		if (model.Cell{Row: me.Pos.Row + dr, Col: me.Pos.Col + dc}) == next {
			return mv
		}
	}
	return moves[b.rng.Intn(len(moves))]
}
