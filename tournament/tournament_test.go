package tournament

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoridor/model"
)

func tournamentConfig() model.Config {
	return model.Config{Size: 5, Walls: 0, MaxMoves: 50, MoveTimeout: time.Second}
}

func TestNewTournamentRejectsOddRounds(t *testing.T) {
	r := NewRegistry()
	r.MustAdd(stubFactory("alpha"))
	_, err := NewTournament(r, tournamentConfig(), 3, "")
	assert.Error(t, err)
}

// Two copies of the same head-of-list player: whoever sits in seat 1
// wins, because seat 1 greedily marches up while seat 0 drifts along the
// top edge. Alternating seats makes every series land on one half.
func TestSeriesAlternatesSeats(t *testing.T) {
	r := NewRegistry()
	r.MustAdd(stubFactory("alpha"))
	r.MustAdd(stubFactory("beta"))
	tr, err := NewTournament(r, tournamentConfig(), 2, "")
	require.NoError(t, err)

	rate := tr.Series(firstLegal{name: "alpha"}, firstLegal{name: "beta"})
	assert.InDelta(t, 0.5, rate, 1e-9)
}

func TestRunFillsTheMatrixAndSaves(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "scores.csv")
	r := NewRegistry()
	r.MustAdd(stubFactory("alpha"))
	r.MustAdd(stubFactory("beta"))

	tr, err := NewTournament(r, tournamentConfig(), 2, csvPath)
	require.NoError(t, err)
	require.NoError(t, tr.Run())

	assert.True(t, tr.Scores.Played("alpha", "beta"))
	assert.True(t, tr.Scores.Played("beta", "alpha"))
	assert.InDelta(t, 1.0, tr.Scores.Get("alpha", "beta")+tr.Scores.Get("beta", "alpha"), 1e-9)

	// the matrix on disk is the resume point for the next run
	loaded, err := LoadScores(csvPath, []string{"alpha", "beta"})
	require.NoError(t, err)
	assert.Equal(t, tr.Scores.Get("alpha", "beta"), loaded.Get("alpha", "beta"))
}

func TestRunSkipsPlayedPairings(t *testing.T) {
	r := NewRegistry()
	r.MustAdd(stubFactory("alpha"))
	r.MustAdd(stubFactory("beta"))

	tr, err := NewTournament(r, tournamentConfig(), 2, "")
	require.NoError(t, err)
	tr.Scores.Set("alpha", "beta", 0.125)
	tr.Scores.Set("beta", "alpha", 0.875)

	require.NoError(t, tr.Run())
	// untouched: the pairing was already on record
	assert.Equal(t, 0.125, tr.Scores.Get("alpha", "beta"))
	assert.Equal(t, 0.875, tr.Scores.Get("beta", "alpha"))
}
