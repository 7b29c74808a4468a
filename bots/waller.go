package bots

import (
	"math"
	"math/rand"

	"quoridor/model"
)

// Waller spends walls greedily: any placement that widens the gap
// between the opponent's shortest path and its own gets played;
// otherwise it takes the step that lands closest to its goal row.
type Waller struct {
	rng *rand.Rand
}

func NewWaller(seed int64) *Waller {
	return &Waller{rng: rand.New(rand.NewSource(seed))}
}

func (b *Waller) Name() string { return "waller" }

func (b *Waller) Reset() {}

func (b *Waller) SelectMove(state *model.GameState, legal []model.Action) model.Action {
	var walls []model.WallAction
	var steps []model.Action
	for _, a := range legal {
		if wa, ok := a.(model.WallAction); ok {
			walls = append(walls, wa)
		} else {
			steps = append(steps, a)
		}
	}

	me, opp := state.Mover(), state.Opponent()
	ownLen := pathLen(state.Board, me.Pos, me.GoalRow)
	oppLen := pathLen(state.Board, opp.Pos, opp.GoalRow)

	if ownLen > 0 && oppLen > 0 {
		diff := oppLen - ownLen
		var best []model.WallAction
		bestGain := 0
		for _, wa := range walls {
			probe := state.Clone()
			probe.PlaceWall(wa.Wall)
			newOpp := pathLen(probe.Board, opp.Pos, opp.GoalRow)
			newOwn := pathLen(probe.Board, me.Pos, me.GoalRow)
			if newOpp < 0 || newOwn < 0 {
				continue
			}
			gain := (newOpp - newOwn) - diff
			if gain > bestGain {
				bestGain = gain
				best = append(best[:0], wa)
			} else if gain == bestGain && bestGain > 0 {
				best = append(best, wa)
			}
		}
		if len(best) > 0 {
			return best[b.rng.Intn(len(best))]
		}
	}

	var best []model.Action
	shortest := math.MaxInt32
	for _, a := range steps {
		var dr, dc int
		switch act := a.(type) {
		case model.MoveAction:
			dr, dc = act.Delta()
		case model.JumpAction:
			dr, dc = act.DR, act.DC
		}
		target := model.Cell{Row: me.Pos.Row + dr, Col: me.Pos.Col + dc}
		d := pathLen(state.Board, target, me.GoalRow)
		if d < 0 {
			continue
		}
		if d < shortest {
			shortest = d
			best = append(best[:0], a)
		} else if d == shortest {
			best = append(best, a)
		}
	}
	if len(best) > 0 {
		return best[b.rng.Intn(len(best))]
	}
	return legal[b.rng.Intn(len(legal))]
}
