package bots

import (
	"math/rand"

	"quoridor/model"
)

// Random picks uniformly from whatever is legal. Mostly a sparring
// partner and a worst-case for the arbiter tests.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (b *Random) Name() string { return "random" }

func (b *Random) Reset() {}

func (b *Random) SelectMove(_ *model.GameState, legal []model.Action) model.Action {
	return legal[b.rng.Intn(len(legal))]
}
