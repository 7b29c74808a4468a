package render

import (
	"fmt"
	"io"

	"quoridor/engine"
	"quoridor/model"
)

const (
	ansiClear = "\033[H\033[J"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
	ansiCyan  = "\033[36m"
	ansiWhite = "\033[37m"
	ansiReset = "\033[0m"
)

// ANSI draws the board after every applied turn: white bars for open
// edges, red where a wall severed them, green and cyan X for the pawns.
// Pure presentation; it never touches rule logic.
type ANSI struct {
	Out io.Writer
	// Clear rewinds the terminal before each frame. Turn it off when
	// writing to a log or a buffer.
	Clear bool
}

func NewANSI(out io.Writer) *ANSI {
	return &ANSI{Out: out, Clear: true}
}

func (a *ANSI) OnTurn(ev engine.TurnEvent) {
	if a.Clear {
		fmt.Fprint(a.Out, ansiClear)
	}
	s := ev.State
	fmt.Fprintf(a.Out, "turn %d: player %d plays %s (walls %d-%d)\n",
		ev.Turn, ev.Mover+1, ev.Action.Name(), s.Players[0].Walls, s.Players[1].Walls)
	a.Board(s)
}

func (a *ANSI) OnOver(out engine.Outcome) {
	switch {
	case out.Draw:
		fmt.Fprintf(a.Out, "drawn at the move cap after %d turns\n", out.Turns)
	case out.Forfeit.Forfeits():
		fmt.Fprintf(a.Out, "%s wins by forfeit (%s) on turn %d\n",
			out.Names[out.Winner], out.Forfeit.Name(), out.Turns)
	default:
		fmt.Fprintf(a.Out, "%s wins on turn %d\n", out.Names[out.Winner], out.Turns)
	}
}

// Board draws the position on its own, outside any match.
func (a *ANSI) Board(s *model.GameState) {
	n := s.Board.Size()
	for r := 0; r < n-1; r++ {
		a.cellRow(s, r)
		a.barRow(s, r)
	}
	a.cellRow(s, n-1)
}

// cellRow is one row of cells with the vertical bars between them.
func (a *ANSI) cellRow(s *model.GameState, r int) {
	for c := 0; c < s.Board.Size(); c++ {
		if c > 0 {
			a.verticalBar(s, r, c-1)
		}
		a.cell(s, r, c)
	}
	fmt.Fprintln(a.Out)
}

// barRow is the line of horizontal bars under row r, one per column.
func (a *ANSI) barRow(s *model.GameState, r int) {
	for c := 0; c < s.Board.Size(); c++ {
		color := ansiWhite
		if !s.Board.HasEdge(model.Cell{Row: r, Col: c}, model.Cell{Row: r + 1, Col: c}) {
			color = ansiRed
		}
		fmt.Fprint(a.Out, color, "─ ")
	}
	fmt.Fprintln(a.Out, ansiReset)
}

func (a *ANSI) verticalBar(s *model.GameState, r, c int) {
	color := ansiWhite
	if !s.Board.HasEdge(model.Cell{Row: r, Col: c}, model.Cell{Row: r, Col: c + 1}) {
		color = ansiRed
	}
	fmt.Fprint(a.Out, color, "│", ansiReset)
}

func (a *ANSI) cell(s *model.GameState, r, c int) {
	pos := model.Cell{Row: r, Col: c}
	switch {
	case s.Players[0].Pos == pos:
		fmt.Fprint(a.Out, ansiGreen, "X", ansiReset)
	case s.Players[1].Pos == pos:
		fmt.Fprint(a.Out, ansiCyan, "X", ansiReset)
	default:
		fmt.Fprint(a.Out, " ")
	}
}
