package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoridor/model"
)

// creeper heads straight for its goal row and falls back on whatever
// comes first.
func creeper(name, preferred string) funcAgent {
	return funcAgent{name: name, fn: func(_ *model.GameState, legal []model.Action) model.Action {
		for _, a := range legal {
			if a.Name() == preferred {
				return a
			}
		}
		return legal[0]
	}}
}

// oscillator shuffles left and right and never gets anywhere.
func oscillator(name string) funcAgent {
	step := 0
	return funcAgent{name: name, fn: func(_ *model.GameState, legal []model.Action) model.Action {
		step++
		want := "left"
		if step%2 == 0 {
			want = "right"
		}
		for _, a := range legal {
			if a.Name() == want {
				return a
			}
		}
		return legal[0]
	}}
}

// dictionarist always plays the alphabetically first legal action.
func dictionarist(name string) funcAgent {
	return funcAgent{name: name, fn: func(_ *model.GameState, legal []model.Action) model.Action {
		best := legal[0]
		for _, a := range legal[1:] {
			if a.Name() < best.Name() {
				best = a
			}
		}
		return best
	}}
}

type recorder struct {
	turns []TurnEvent
	outs  []Outcome
}

func (r *recorder) OnTurn(ev TurnEvent) { r.turns = append(r.turns, ev) }
func (r *recorder) OnOver(out Outcome)  { r.outs = append(r.outs, out) }

func TestMatchPlaysOutToAWin(t *testing.T) {
	rec := &recorder{}
	resets := [2]int{}
	first := creeper("creeper", "down")
	first.resets = &resets[0]
	second := oscillator("oscillator")
	second.resets = &resets[1]

	m := NewMatch(testConfig(5, 0, 250), first, second, rec)
	out := m.Run()

	assert.Equal(t, 0, out.Winner)
	assert.False(t, out.Draw)
	assert.False(t, out.Forfeit.Forfeits())
	assert.Equal(t, 4, out.Turns)
	assert.Equal(t, [2]string{"creeper", "oscillator"}, out.Names)
	assert.NotEmpty(t, out.GameID)
	assert.Equal(t, [2]int{1, 1}, resets)

	// seven applied moves: the winner's fourth ends the game
	require.Len(t, rec.turns, 7)
	last := rec.turns[len(rec.turns)-1]
	assert.Equal(t, WON, last.Phase)
	assert.Equal(t, 0, last.Mover)
	assert.Equal(t, "down", last.Action.Name())
	require.Len(t, rec.outs, 1)
	assert.Equal(t, out, rec.outs[0])
}

func TestMatchEventStatesAreClones(t *testing.T) {
	rec := &recorder{}
	m := NewMatch(testConfig(5, 0, 250), creeper("creeper", "down"), oscillator("oscillator"), rec)
	m.Run()

	require.NotEmpty(t, rec.turns)
	ev := rec.turns[0]
	assert.NotSame(t, m.Game.State, ev.State)
	// scribbling on an event state cannot reach the engine
	ev.State.MovePawn(1, 1)
	assert.Equal(t, model.Cell{Row: 4, Col: 2}, m.Game.State.Players[0].Pos)
}

func TestMatchForfeitsACrasher(t *testing.T) {
	rec := &recorder{}
	crasher := funcAgent{name: "crasher", fn: func(*model.GameState, []model.Action) model.Action {
		panic("no idea")
	}}
	m := NewMatch(testConfig(5, 0, 250), creeper("creeper", "down"), crasher, rec)
	out := m.Run()

	assert.Equal(t, 0, out.Winner)
	assert.Equal(t, MOVE_CRASH, out.Forfeit)
	assert.False(t, out.Draw)
	assert.Equal(t, 1, out.Turns)
	// one applied move before the crash, then the outcome
	assert.Len(t, rec.turns, 1)
	require.Len(t, rec.outs, 1)
	assert.Equal(t, MOVE_CRASH, rec.outs[0].Forfeit)
}

func TestMatchForfeitsATimeout(t *testing.T) {
	cfg := testConfig(5, 0, 250)
	cfg.MoveTimeout = 10 * time.Millisecond
	sleepy := funcAgent{name: "sleepy", fn: func(_ *model.GameState, legal []model.Action) model.Action {
		time.Sleep(200 * time.Millisecond)
		return legal[0]
	}}
	out := NewMatch(cfg, sleepy, oscillator("oscillator")).Run()

	assert.Equal(t, 1, out.Winner)
	assert.Equal(t, MOVE_TIMEOUT, out.Forfeit)
	assert.Equal(t, 1, out.Turns)
}

func TestMatchForfeitsAnOffMenuAnswer(t *testing.T) {
	cheat := funcAgent{name: "cheat", fn: func(*model.GameState, []model.Action) model.Action {
		return offMenuWithIndex{idx: 9999}
	}}
	out := NewMatch(testConfig(5, 0, 250), creeper("creeper", "down"), cheat).Run()

	assert.Equal(t, 0, out.Winner)
	assert.Equal(t, MOVE_ILLEGAL, out.Forfeit)
	assert.Equal(t, 1, out.Turns)
}

// Alphabet order sends the first player down its column while the second
// dithers along the back row, so the same winner falls out every run well
// inside a board's worth of turns.
func TestMatchBetweenDictionaristsIsReproducible(t *testing.T) {
	first := NewMatch(testConfig(5, 0, 250), dictionarist("a"), dictionarist("b")).Run()
	again := NewMatch(testConfig(5, 0, 250), dictionarist("a"), dictionarist("b")).Run()

	assert.Equal(t, 0, first.Winner)
	assert.False(t, first.Forfeit.Forfeits())
	assert.Equal(t, 4, first.Turns)
	assert.LessOrEqual(t, first.Turns, 25)
	assert.Equal(t, first.Winner, again.Winner)
	assert.Equal(t, first.Turns, again.Turns)
}

func TestMatchEndsInADrawAtTheCap(t *testing.T) {
	out := NewMatch(testConfig(5, 0, 6), oscillator("a"), oscillator("b")).Run()
	assert.True(t, out.Draw)
	assert.Equal(t, -1, out.Winner)
	assert.Equal(t, 6, out.Turns)
}

// Random play must never corner either pawn away from its goal row; the
// wall gates guarantee it, this playout checks them under fire.
func TestPlayoutKeepsGoalRowsReachable(t *testing.T) {
	g := NewGame(testConfig(5, 3, 40))
	rng := rand.New(rand.NewSource(11))
	pc := model.NewPathChecker()

	for !g.Over() {
		legal := g.LegalActions()
		if len(legal) == 0 {
			// boxed in with nothing to play; the game cannot continue
			break
		}
		require.NoError(t, g.Apply(legal[rng.Intn(len(legal))]))
		for i := range g.State.Players {
			p := g.State.Players[i]
			require.True(t, pc.Reachable(g.State.Board, p.Pos, p.GoalRow),
				"player %d cut off from row %d on turn %d", i, p.GoalRow, g.State.Turn)
		}
	}
}
