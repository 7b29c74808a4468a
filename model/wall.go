package model

import "fmt"

// Segment is one unit edge between two adjacent cells, endpoint-sorted
// so the same physical edge always compares equal however it was built.
type Segment struct {
	A, B Cell
}

func NewSegment(a, b Cell) Segment {
	if b.Less(a) {
		a, b = b, a
	}
	return Segment{A: a, B: b}
}

func (s Segment) String() string {
	return fmt.Sprintf("%s-%s", s.A, s.B)
}

func (s Segment) less(o Segment) bool {
	if s.A != o.A {
		return s.A.Less(o.A)
	}
	return s.B.Less(o.B)
}

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) Name() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("N/A(%d)", int(o))
	}
}

// Wall is a 2-unit barrier anchored at the top-left cell of the 2x2
// junction it spans. A horizontal wall severs the downward edges of two
// side-by-side columns, a vertical wall the sideways edges of two
// stacked rows.
type Wall struct {
	Orientation Orientation
	Anchor      Cell
	Seg1, Seg2  Segment
}

func NewHorizontalWall(anchor Cell) Wall {
	r, c := anchor.Row, anchor.Col
	return Wall{
		Orientation: Horizontal,
		Anchor:      anchor,
		Seg1:        NewSegment(Cell{r, c}, Cell{r + 1, c}),
		Seg2:        NewSegment(Cell{r, c + 1}, Cell{r + 1, c + 1}),
	}
}

func NewVerticalWall(anchor Cell) Wall {
	r, c := anchor.Row, anchor.Col
	return Wall{
		Orientation: Vertical,
		Anchor:      anchor,
		Seg1:        NewSegment(Cell{r, c}, Cell{r, c + 1}),
		Seg2:        NewSegment(Cell{r + 1, c}, Cell{r + 1, c + 1}),
	}
}

// Segments returns the wall's two unit edges in canonical order.
func (w Wall) Segments() (Segment, Segment) {
	s1, s2 := w.Seg1, w.Seg2
	if s2.less(s1) {
		s1, s2 = s2, s1
	}
	return s1, s2
}

// Name is the canonical wall id: endpoints sorted inside each segment,
// segments sorted, joined. Identical for any construction order of the
// same wall.
func (w Wall) Name() string {
	s1, s2 := w.Segments()
	return s1.String() + "_" + s2.String()
}

// WallLedger records every placed wall and the segments it severed.
type WallLedger struct {
	placed map[Segment]struct{}
	walls  []Wall
}

func NewWallLedger() *WallLedger {
	return &WallLedger{placed: make(map[Segment]struct{})}
}

func (l *WallLedger) Record(w Wall) {
	l.placed[w.Seg1] = struct{}{}
	l.placed[w.Seg2] = struct{}{}
	l.walls = append(l.walls, w)
}

func (l *WallLedger) Has(s Segment) bool {
	_, ok := l.placed[s]
	return ok
}

// Crossed reports whether w would overlap a perpendicular wall already
// through the same junction. Pairing w's four cells crosswise yields
// exactly the two segments that perpendicular wall severed; w is
// crossed iff both are on record. Walls that merely touch at endpoints
// share no such pairing and pass.
func (l *WallLedger) Crossed(w Wall) bool {
	t1 := NewSegment(w.Seg1.A, w.Seg2.A)
	t2 := NewSegment(w.Seg1.B, w.Seg2.B)
	return l.Has(t1) && l.Has(t2)
}

// Walls lists placements in order. Callers must not mutate the slice.
func (l *WallLedger) Walls() []Wall { return l.walls }

// Segments lists every severed segment in no particular order.
func (l *WallLedger) Segments() []Segment {
	out := make([]Segment, 0, len(l.placed))
	for s := range l.placed {
		out = append(out, s)
	}
	return out
}

func (l *WallLedger) Count() int { return len(l.walls) }

func (l *WallLedger) Clone() *WallLedger {
	c := &WallLedger{
		placed: make(map[Segment]struct{}, len(l.placed)),
		walls:  append([]Wall(nil), l.walls...),
	}
	for s := range l.placed {
		c.placed[s] = struct{}{}
	}
	return c
}
