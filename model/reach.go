package model

// PathChecker answers goal-row reachability questions with reusable
// scratch buffers, so probing every candidate wall of a turn allocates
// next to nothing. Not safe for concurrent use.
type PathChecker struct {
	visited []bool
	queue   []int
}

func NewPathChecker() *PathChecker { return &PathChecker{} }

func (pc *PathChecker) reset(n int) {
	if cap(pc.visited) < n {
		pc.visited = make([]bool, n)
		pc.queue = make([]int, 0, n)
		return
	}
	pc.visited = pc.visited[:n]
	for i := range pc.visited {
		pc.visited[i] = false
	}
	pc.queue = pc.queue[:0]
}

// Reachable reports whether from can still reach any cell of goalRow.
// Breadth-first over the arena, returning on the first goal-row hit.
func (pc *PathChecker) Reachable(g *BoardGraph, from Cell, goalRow int) bool {
	if from.Row == goalRow {
		return true
	}
	n := g.Size()
	pc.reset(n * n)
	pc.visited[g.Index(from)] = true
	pc.queue = append(pc.queue, g.Index(from))
	for head := 0; head < len(pc.queue); head++ {
		idx := pc.queue[head]
		cell := Cell{idx / n, idx % n}
		for d := Up; d <= Down; d++ {
			if !g.Open(cell, d) {
				continue
			}
			next := cell.Step(d)
			ni := g.Index(next)
			if pc.visited[ni] {
				continue
			}
			if next.Row == goalRow {
				return true
			}
			pc.visited[ni] = true
			pc.queue = append(pc.queue, ni)
		}
	}
	return false
}

// WallKeepsPathsOpen probes a candidate wall: sever its two segments on
// a clone of the adjacency and require both players to keep a path to
// their goal rows. The live board is never touched.
func (pc *PathChecker) WallKeepsPathsOpen(s *GameState, w Wall) bool {
	probe := s.Board.Clone()
	probe.RemoveSegment(w.Seg1)
	probe.RemoveSegment(w.Seg2)
	for i := range s.Players {
		if !pc.Reachable(probe, s.Players[i].Pos, s.Players[i].GoalRow) {
			return false
		}
	}
	return true
}
