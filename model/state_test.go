package model

import (
	"testing"
	"time"
)

func testConfig(size, walls int) Config {
	return Config{Size: size, Walls: walls, MaxMoves: 250, MoveTimeout: time.Second}
}

func TestNewGameStatePlacement(t *testing.T) {
	s := NewGameState(testConfig(9, 9))
	if s.Players[0].Pos != (Cell{0, 4}) || s.Players[0].GoalRow != 8 {
		t.Errorf("player 0 = %s goal %d", s.Players[0].Pos, s.Players[0].GoalRow)
	}
	if s.Players[1].Pos != (Cell{8, 4}) || s.Players[1].GoalRow != 0 {
		t.Errorf("player 1 = %s goal %d", s.Players[1].Pos, s.Players[1].GoalRow)
	}
	if s.Players[0].Walls != 9 || s.Players[1].Walls != 9 {
		t.Errorf("wall stocks = %d, %d", s.Players[0].Walls, s.Players[1].Walls)
	}
	if s.Turn != 1 || s.ToMove != 0 {
		t.Errorf("turn %d to-move %d, want 1 and 0", s.Turn, s.ToMove)
	}
}

func TestMoverAndOpponentFollowToMove(t *testing.T) {
	s := NewGameState(testConfig(5, 5))
	if s.Mover() != &s.Players[0] || s.Opponent() != &s.Players[1] {
		t.Error("player 0 moves first")
	}
	s.ToMove = 1
	if s.Mover() != &s.Players[1] || s.Opponent() != &s.Players[0] {
		t.Error("mover should follow ToMove")
	}
}

func TestMovePawnOnlyMovesMover(t *testing.T) {
	s := NewGameState(testConfig(5, 5))
	s.MovePawn(1, 0)
	if s.Players[0].Pos != (Cell{1, 2}) {
		t.Errorf("player 0 = %s, want (1,2)", s.Players[0].Pos)
	}
	if s.Players[1].Pos != (Cell{4, 2}) {
		t.Errorf("player 1 moved to %s", s.Players[1].Pos)
	}
}

func TestPlaceWallSeversRecordsAndSpends(t *testing.T) {
	s := NewGameState(testConfig(5, 5))
	w := NewHorizontalWall(Cell{2, 1})
	s.PlaceWall(w)
	if s.Board.HasEdge(w.Seg1.A, w.Seg1.B) || s.Board.HasEdge(w.Seg2.A, w.Seg2.B) {
		t.Error("both segments should be severed")
	}
	if !s.Walls.Has(w.Seg1) || !s.Walls.Has(w.Seg2) {
		t.Error("both segments should be on the ledger")
	}
	if s.Players[0].Walls != 4 {
		t.Errorf("mover stock = %d, want 4", s.Players[0].Walls)
	}
	if s.Players[1].Walls != 5 {
		t.Errorf("opponent stock = %d, want 5", s.Players[1].Walls)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := NewGameState(testConfig(5, 5))
	c := s.Clone()

	c.PlaceWall(NewHorizontalWall(Cell{0, 0}))
	c.MovePawn(1, 0)
	c.ToMove = 1
	c.Turn = 7

	if !s.Board.HasEdge(Cell{0, 0}, Cell{1, 0}) {
		t.Error("wall on the clone severed the source board")
	}
	if s.Walls.Count() != 0 {
		t.Error("ledger leaked from clone to source")
	}
	if s.Players[0].Pos != (Cell{0, 2}) || s.Players[0].Walls != 5 {
		t.Error("players leaked from clone to source")
	}
	if s.Turn != 1 || s.ToMove != 0 {
		t.Error("counters leaked from clone to source")
	}
}

func TestReached(t *testing.T) {
	s := NewGameState(testConfig(5, 5))
	if s.Players[0].Reached() {
		t.Error("nobody starts on their goal row")
	}
	s.Players[0].Pos = Cell{4, 2}
	if !s.Players[0].Reached() {
		t.Error("player 0 stands on row 4")
	}
}
