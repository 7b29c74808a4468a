package model

// BoardGraph is the movement adjacency of an N×N board. Cells live in a
// flat arena indexed Row*N+Col and each byte holds one bit per Direction
// that is still open. Walls only ever clear bits; nothing re-opens an
// edge for the lifetime of a game.
type BoardGraph struct {
	size int
	open []uint8
}

func NewBoardGraph(size int) *BoardGraph {
	g := &BoardGraph{size: size, open: make([]uint8, size*size)}
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			var m uint8
			for d := Up; d <= Down; d++ {
				if g.InBounds((Cell{r, c}).Step(d)) {
					m |= 1 << uint(d)
				}
			}
			g.open[r*size+c] = m
		}
	}
	return g
}

func (g *BoardGraph) Size() int { return g.size }

func (g *BoardGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Index maps a cell to its arena slot.
func (g *BoardGraph) Index(c Cell) int { return c.Row*g.size + c.Col }

func (g *BoardGraph) direction(a, b Cell) (Direction, bool) {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	for d := Up; d <= Down; d++ {
		if deltas[d].Row == dr && deltas[d].Col == dc {
			return d, true
		}
	}
	return 0, false
}

// HasEdge reports whether a and b are adjacent and not severed. Cells
// off the board or not orthogonal neighbors never have an edge.
func (g *BoardGraph) HasEdge(a, b Cell) bool {
	if !g.InBounds(a) || !g.InBounds(b) {
		return false
	}
	d, ok := g.direction(a, b)
	if !ok {
		return false
	}
	return g.open[g.Index(a)]&(1<<uint(d)) != 0
}

// Open reports whether the edge leaving c toward d is present.
func (g *BoardGraph) Open(c Cell, d Direction) bool {
	return g.InBounds(c) && g.open[g.Index(c)]&(1<<uint(d)) != 0
}

// RemoveEdge severs a-b on both endpoints. Removing an edge that is
// already gone, or was never there, is a no-op.
func (g *BoardGraph) RemoveEdge(a, b Cell) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return
	}
	d, ok := g.direction(a, b)
	if !ok {
		return
	}
	g.open[g.Index(a)] &^= 1 << uint(d)
	g.open[g.Index(b)] &^= 1 << uint(d.Opposite())
}

// RemoveSegment severs the unit edge a segment stands for.
func (g *BoardGraph) RemoveSegment(s Segment) {
	g.RemoveEdge(s.A, s.B)
}

// Clone copies the adjacency arena. Severing edges on the copy leaves
// the source untouched, which is what makes wall probing cheap.
func (g *BoardGraph) Clone() *BoardGraph {
	open := make([]uint8, len(g.open))
	copy(open, g.open)
	return &BoardGraph{size: g.size, open: open}
}

// Degree counts the open edges at c.
func (g *BoardGraph) Degree(c Cell) int {
	n := 0
	for d := Up; d <= Down; d++ {
		if g.Open(c, d) {
			n++
		}
	}
	return n
}
