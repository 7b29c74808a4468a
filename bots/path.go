package bots

import "quoridor/model"

// bfsPath returns a shortest path from start to any cell on goalRow,
// start included, or nil when every route is severed.
func bfsPath(g *model.BoardGraph, start model.Cell, goalRow int) []model.Cell {
	if start.Row == goalRow {
		return []model.Cell{start}
	}
	n := g.Size()
	parent := make([]int, n*n)
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, n*n)
	queue := make([]int, 0, n*n)
	si := g.Index(start)
	visited[si] = true
	queue = append(queue, si)
	for head := 0; head < len(queue); head++ {
		idx := queue[head]
		cell := model.Cell{Row: idx / n, Col: idx % n}
		for d := model.Up; d <= model.Down; d++ {
			if !g.Open(cell, d) {
				continue
			}
			next := cell.Step(d)
			ni := g.Index(next)
			if visited[ni] {
				continue
			}
			visited[ni] = true
			parent[ni] = idx
			if next.Row == goalRow {
				return reconstruct(parent, ni, n)
			}
			queue = append(queue, ni)
		}
	}
	return nil
}

func reconstruct(parent []int, end, n int) []model.Cell {
	var rev []model.Cell
	for idx := end; idx != -1; idx = parent[idx] {
		rev = append(rev, model.Cell{Row: idx / n, Col: idx % n})
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// pathLen is the cell count of a shortest path, or -1 when severed.
func pathLen(g *model.BoardGraph, start model.Cell, goalRow int) int {
	p := bfsPath(g, start, goalRow)
	if p == nil {
		return -1
	}
	return len(p)
}
