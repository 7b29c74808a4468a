package watch

import (
	"quoridor/engine"
	"quoridor/model"
)

// Frame is one spectator update, gob-encoded on the wire. Action name
// and index travel together so any process can resolve the move against
// its own catalogue for the same board size.
type Frame struct {
	GameID     string
	Turn       int
	Mover      int
	ActionName string
	ActionIdx  int
	Size       int
	Pawns      [2]model.Cell
	WallsLeft  [2]int
	Severed    []model.Segment
	Phase      string
	Winner     int
	Forfeit    string
	Over       bool
}

func frameOf(ev engine.TurnEvent) Frame {
	s := ev.State
	f := Frame{
		GameID:     ev.GameID,
		Turn:       ev.Turn,
		Mover:      ev.Mover,
		ActionName: ev.Action.Name(),
		ActionIdx:  ev.Action.Index(),
		Size:       s.Board.Size(),
		Pawns:      [2]model.Cell{s.Players[0].Pos, s.Players[1].Pos},
		WallsLeft:  [2]int{s.Players[0].Walls, s.Players[1].Walls},
		Severed:    s.Walls.Segments(),
		Phase:      ev.Phase.Name(),
		Winner:     -1,
	}
	switch ev.Phase {
	case engine.WON:
		f.Winner = ev.Mover
		f.Over = true
	case engine.DRAW:
		f.Over = true
	}
	return f
}

func frameOfOutcome(out engine.Outcome) Frame {
	f := Frame{
		GameID: out.GameID,
		Turn:   out.Turns,
		Winner: out.Winner,
		Over:   true,
		Phase:  "WON",
	}
	if out.Draw {
		f.Phase = "DRAW"
	}
	if out.Forfeit.Forfeits() {
		f.Forfeit = out.Forfeit.Name()
	}
	return f
}
