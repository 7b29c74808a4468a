package model

import "fmt"

// Cell addresses one square of the board, row-major from the top-left.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders cells row-major. Segment and wall canonicalization depend
// on this order being total and stable.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// Step returns the neighbor one cell away in d. The result may be off
// the board; callers check bounds through the graph.
func (c Cell) Step(d Direction) Cell {
	return Cell{c.Row + deltas[d].Row, c.Col + deltas[d].Col}
}

// Direction indexes the four orthogonal moves. The order is load
// bearing: action indices 0..3 and every neighbor scan follow it.
type Direction int

const (
	Up Direction = iota
	Right
	Left
	Down
)

var deltas = [4]Cell{
	{-1, 0},
	{0, 1},
	{0, -1},
	{1, 0},
}

func (d Direction) Delta() (dr, dc int) {
	return deltas[d].Row, deltas[d].Col
}

func (d Direction) Name() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("N/A(%d)", int(d))
	}
}

// Opposite returns the reverse direction. The delta table is laid out so
// the reverse always sits at the mirrored index.
func (d Direction) Opposite() Direction {
	return Direction(3 - d)
}
