package model

// Action is one selectable turn: a pawn step, a jump or diagonal around
// the opponent, or a wall placement. Name and Index are derived from the
// board size alone, so they are stable across processes; the engine
// matches an agent's returned action back to its own instance by Index.
type Action interface {
	Index() int
	Name() string
}

// MoveAction is a plain one-cell pawn step.
type MoveAction struct {
	Dir Direction
	idx int
}

func (a MoveAction) Index() int   { return a.idx }
func (a MoveAction) Name() string { return a.Dir.Name() }

// Delta is the row/col displacement of the step.
func (a MoveAction) Delta() (dr, dc int) { return a.Dir.Delta() }

// JumpAction covers the moves that only exist with the opponent on an
// adjacent cell: straight jumps over them and diagonal side-steps
// around them.
type JumpAction struct {
	name   string
	DR, DC int
	idx    int
}

func (a JumpAction) Index() int   { return a.idx }
func (a JumpAction) Name() string { return a.name }

// Straight reports whether this is a two-cell jump rather than a
// diagonal side-step.
func (a JumpAction) Straight() bool {
	return a.DR == 0 || a.DC == 0
}

// WallAction places a 2-unit wall.
type WallAction struct {
	Wall Wall
	idx  int
}

func (a WallAction) Index() int   { return a.idx }
func (a WallAction) Name() string { return a.Wall.Name() }

// Catalogue fixes the action-space layout for one board size: indices
// 0..3 the orthogonal moves, 4..11 the jumps and diagonals, then a
// vertical-wall block and a horizontal-wall block of (N-1)(N+1) slots
// each. Anchors only ever occupy the first (N-1)^2 slots of their
// block; the stride is kept anyway so indices never shift.
type Catalogue struct {
	Size            int
	Moves           [4]MoveAction
	Jumps           [8]JumpAction
	VerticalStart   int
	HorizontalStart int
	Total           int
}

func NewCatalogue(size int) *Catalogue {
	block := (size - 1) * (size + 1)
	cat := &Catalogue{
		Size:            size,
		VerticalStart:   12,
		HorizontalStart: 12 + block,
		Total:           12 + 2*block,
	}
	for d := Up; d <= Down; d++ {
		cat.Moves[d] = MoveAction{Dir: d, idx: int(d)}
	}
	jumps := [8]JumpAction{
		{name: "jump_up", DR: -2, DC: 0},
		{name: "jump_down", DR: 2, DC: 0},
		{name: "jump_left", DR: 0, DC: -2},
		{name: "jump_right", DR: 0, DC: 2},
		{name: "up_left", DR: -1, DC: -1},
		{name: "up_right", DR: -1, DC: 1},
		{name: "down_left", DR: 1, DC: -1},
		{name: "down_right", DR: 1, DC: 1},
	}
	for i := range jumps {
		jumps[i].idx = 4 + i
	}
	cat.Jumps = jumps
	return cat
}

func (cat *Catalogue) anchorOffset(anchor Cell) int {
	return anchor.Row*(cat.Size-1) + anchor.Col
}

// VerticalWallAt builds the indexed wall action anchored at the given
// junction cell.
func (cat *Catalogue) VerticalWallAt(anchor Cell) WallAction {
	return WallAction{
		Wall: NewVerticalWall(anchor),
		idx:  cat.VerticalStart + cat.anchorOffset(anchor),
	}
}

// HorizontalWallAt builds the indexed wall action anchored at the given
// junction cell.
func (cat *Catalogue) HorizontalWallAt(anchor Cell) WallAction {
	return WallAction{
		Wall: NewHorizontalWall(anchor),
		idx:  cat.HorizontalStart + cat.anchorOffset(anchor),
	}
}
