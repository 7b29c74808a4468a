package model

import "fmt"

// Rules binds an action catalogue and a path checker for one board
// size. A single Rules value serves any number of games of that size.
// Not safe for concurrent use; the checker's scratch is shared.
type Rules struct {
	Cat *Catalogue
	pc  *PathChecker
}

func NewRules(size int) *Rules {
	return &Rules{Cat: NewCatalogue(size), pc: NewPathChecker()}
}

// LegalActions lists every action open to the player to move, in a
// deterministic order: pawn movement (direction order, jumps spliced in
// where the opponent blocks), then horizontal walls anchor by anchor,
// then vertical walls.
func (ru *Rules) LegalActions(s *GameState) []Action {
	actions := ru.MovementActions(s)
	if s.Mover().Walls > 0 {
		actions = append(actions, ru.wallActions(s)...)
	}
	return actions
}

// MovementActions lists just the pawn moves, jumps included, without
// the wall placements.
func (ru *Rules) MovementActions(s *GameState) []Action {
	actions := make([]Action, 0, 8)
	pos := s.Mover().Pos
	opp := s.Opponent().Pos
	for d := Up; d <= Down; d++ {
		target := pos.Step(d)
		if !s.Board.HasEdge(pos, target) {
			continue
		}
		if target == opp {
			actions = append(actions, ru.jumpActions(s)...)
			continue
		}
		actions = append(actions, ru.Cat.Moves[d])
	}
	return actions
}

// jumpActions assumes the mover faces the opponent across an open edge.
// A legal straight jump rules the diagonals out entirely. Each diagonal
// needs the edge from the opponent's cell to the landing cell; whether a
// wall or the board boundary removed it makes no difference.
func (ru *Rules) jumpActions(s *GameState) []Action {
	pos := s.Mover().Pos
	opp := s.Opponent().Pos
	dy := opp.Row - pos.Row
	dx := opp.Col - pos.Col

	jumpTarget := Cell{pos.Row + 2*dy, pos.Col + 2*dx}
	if s.Board.HasEdge(opp, jumpTarget) {
		return []Action{ru.jumpByDelta(2*dy, 2*dx)}
	}

	out := make([]Action, 0, 2)
	if dx != 0 {
		for _, ddy := range [2]int{-1, 1} {
			if s.Board.HasEdge(opp, Cell{opp.Row + ddy, opp.Col}) {
				out = append(out, ru.jumpByDelta(ddy, dx))
			}
		}
		return out
	}
	for _, ddx := range [2]int{-1, 1} {
		if s.Board.HasEdge(opp, Cell{opp.Row, opp.Col + ddx}) {
			out = append(out, ru.jumpByDelta(dy, ddx))
		}
	}
	return out
}

func (ru *Rules) jumpByDelta(dr, dc int) JumpAction {
	for _, j := range ru.Cat.Jumps {
		if j.DR == dr && j.DC == dc {
			return j
		}
	}
	panic(fmt.Sprintf("no jump action for delta (%d,%d)", dr, dc))
}

// wallActions scans every anchor, horizontal block first, keeping only
// placements that pass all gates.
func (ru *Rules) wallActions(s *GameState) []Action {
	n := s.Board.Size()
	out := make([]Action, 0, 16)
	for r := 0; r < n-1; r++ {
		for c := 0; c < n-1; c++ {
			if wa := ru.Cat.HorizontalWallAt(Cell{r, c}); ru.PossibleWall(s, wa.Wall) {
				out = append(out, wa)
			}
		}
	}
	for r := 0; r < n-1; r++ {
		for c := 0; c < n-1; c++ {
			if wa := ru.Cat.VerticalWallAt(Cell{r, c}); ru.PossibleWall(s, wa.Wall) {
				out = append(out, wa)
			}
		}
	}
	return out
}

// PossibleWall applies the placement gates in order: both edges still
// present, no crossing with a placed wall, and both players keep a path
// to their goal rows. Wall stock is the caller's concern.
func (ru *Rules) PossibleWall(s *GameState, w Wall) bool {
	if !s.Board.HasEdge(w.Seg1.A, w.Seg1.B) || !s.Board.HasEdge(w.Seg2.A, w.Seg2.B) {
		return false
	}
	if s.Walls.Crossed(w) {
		return false
	}
	return ru.pc.WallKeepsPathsOpen(s, w)
}
