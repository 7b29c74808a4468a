package bots

import (
	"math/rand"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"quoridor/model"
)

// Pathfinder rebuilds a general graph of the open edges every turn and
// follows the cheapest route it can find to any goal-row cell. Slower
// than Walker on purpose: it is the agent that stresses the arbiter's
// deadline with real work.
type Pathfinder struct {
	rng *rand.Rand
}

func NewPathfinder(seed int64) *Pathfinder {
	return &Pathfinder{rng: rand.New(rand.NewSource(seed))}
}

func (b *Pathfinder) Name() string { return "pathfinder" }

func (b *Pathfinder) Reset() {}

func (b *Pathfinder) SelectMove(state *model.GameState, legal []model.Action) model.Action {
	n := state.Board.Size()
	g := simple.NewUndirectedGraph()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := model.Cell{Row: r, Col: c}
			for _, d := range [2]model.Direction{model.Right, model.Down} {
				if !state.Board.Open(cell, d) {
					continue
				}
				g.SetEdge(simple.Edge{
					F: simple.Node(int64(state.Board.Index(cell))),
					T: simple.Node(int64(state.Board.Index(cell.Step(d)))),
				})
			}
		}
	}

	me := state.Mover()
	src := g.Node(int64(state.Board.Index(me.Pos)))
	if src == nil {
		return legal[b.rng.Intn(len(legal))]
	}
	shortest := path.DijkstraFrom(src, g)

	var route []graph.Node
	for c := 0; c < n; c++ {
		goal := int64(state.Board.Index(model.Cell{Row: me.GoalRow, Col: c}))
		if p, _ := shortest.To(goal); len(p) > 0 && (route == nil || len(p) < len(route)) {
			route = p
		}
	}
	if len(route) < 2 {
		return legal[b.rng.Intn(len(legal))]
	}

	nextID := int(route[1].ID())
	next := model.Cell{Row: nextID / n, Col: nextID % n}
	for _, a := range legal {
		mv, ok := a.(model.MoveAction)
		if !ok {
			continue
		}
		dr, dc := mv.Delta()
		if (model.Cell{Row: me.Pos.Row + dr, Col: me.Pos.Col + dc}) == next {
			return a
		}
	}
	return legal[b.rng.Intn(len(legal))]
}
