package engine

import (
	"fmt"

	"quoridor/model"
)

type Phase int

const (
	RUNNING Phase = iota
	WON
	DRAW
)

func (p Phase) Name() string {
	switch p {
	case RUNNING:
		return "RUNNING"
	case WON:
		return "WON"
	case DRAW:
		return "DRAW"
	default:
		return fmt.Sprintf("N/A(%d)", int(p))
	}
}

// Game is the turn state machine. It owns the authoritative state and
// is the only thing that mutates it; agents and observers only ever see
// clones.
type Game struct {
	Rules *model.Rules
	State *model.GameState
	Phase Phase
	// Winner indexes State.Players once Phase is WON, -1 before that
	// and on a draw.
	Winner int
}

func NewGame(cfg model.Config) *Game {
	return &Game{
		Rules:  model.NewRules(cfg.Size),
		State:  model.NewGameState(cfg),
		Phase:  RUNNING,
		Winner: -1,
	}
}

// LegalActions lists the choices open to the player to move.
func (g *Game) LegalActions() []model.Action {
	return g.Rules.LegalActions(g.State)
}

// Apply plays one action for the player to move and settles the
// position: the mover wins the moment they stand on their goal row,
// before the opponent is even considered. Unplayable actions come back
// as ErrRuleViolation and leave the state untouched.
func (g *Game) Apply(a model.Action) error {
	if g.Phase != RUNNING {
		return ErrGameOver
	}
	switch act := a.(type) {
	case model.MoveAction, model.JumpAction:
		// resolve by index against the generated list; the index is the
		// action, whatever deltas the caller's copy carries
		own, ok := g.offeredPawnAction(a.Index())
		if !ok {
			return fmt.Errorf("%w: %s not playable here", ErrRuleViolation, a.Name())
		}
		switch mv := own.(type) {
		case model.MoveAction:
			dr, dc := mv.Delta()
			g.State.MovePawn(dr, dc)
		case model.JumpAction:
			g.State.MovePawn(mv.DR, mv.DC)
		}
	case model.WallAction:
		if g.State.Mover().Walls <= 0 {
			return fmt.Errorf("%w: no walls left for %s", ErrRuleViolation, act.Name())
		}
		if !g.Rules.PossibleWall(g.State, act.Wall) {
			return fmt.Errorf("%w: wall %s not placeable", ErrRuleViolation, act.Name())
		}
		g.State.PlaceWall(act.Wall)
	default:
		return fmt.Errorf("%w: unknown action %T", ErrRuleViolation, a)
	}
	g.settle()
	return nil
}

func (g *Game) offeredPawnAction(idx int) (model.Action, bool) {
	for _, a := range g.Rules.MovementActions(g.State) {
		if a.Index() == idx {
			return a, true
		}
	}
	return nil, false
}

// settle runs right after a successful apply. The turn counter advances
// once both players have acted; reaching the cap ends the game as a
// draw with the counter left at the cap.
func (g *Game) settle() {
	if g.State.Mover().Reached() {
		g.Phase = WON
		g.Winner = g.State.ToMove
		return
	}
	if g.State.ToMove == 1 {
		g.State.Turn++
		if g.State.Turn >= g.State.Config.MaxMoves {
			g.Phase = DRAW
			return
		}
	}
	g.State.ToMove = 1 - g.State.ToMove
}

// Over reports whether the game reached a terminal phase.
func (g *Game) Over() bool { return g.Phase != RUNNING }
