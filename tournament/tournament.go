package tournament

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"quoridor/engine"
	"quoridor/model"
)

// Tournament plays every registered pairing round-robin and keeps the
// win-rate matrix on disk as it goes, so an interrupted run resumes
// where it stopped.
type Tournament struct {
	Registry  *Registry
	Config    model.Config
	Rounds    int
	CSVPath   string
	Scores    *Scores
	Observers []engine.Observer
}

// NewTournament loads or creates the score matrix for the registered
// agents. The round count must be even; odd counts would skew the
// first-move advantage.
func NewTournament(reg *Registry, cfg model.Config, rounds int, csvPath string) (*Tournament, error) {
	if rounds%2 != 0 {
		return nil, fmt.Errorf("round count must be even, got %d", rounds)
	}
	scores, err := LoadScores(csvPath, reg.Names())
	if err != nil {
		return nil, err
	}
	return &Tournament{
		Registry: reg,
		Config:   cfg,
		Rounds:   rounds,
		CSVPath:  csvPath,
		Scores:   scores,
	}, nil
}

// Series plays the configured number of games between two agents,
// alternating who starts, and returns the first agent's win rate.
// Draws count half for each side.
func (t *Tournament) Series(first, second engine.Agent) float64 {
	wins := 0.0
	for i := 0; i < t.Rounds; i++ {
		a, b := first, second
		firstSeat := 0
		if i%2 == 1 {
			a, b = second, first
			firstSeat = 1
		}
		out := engine.NewMatch(t.Config, a, b, t.Observers...).Run()
		switch {
		case out.Draw:
			wins += 0.5
		case out.Winner == firstSeat:
			wins++
		}
	}
	return wins / float64(t.Rounds)
}

// Run fills every unplayed pairing of the matrix, saving after each
// series. Pairings that already have a result are left alone.
func (t *Tournament) Run() error {
	names := t.Scores.Names()
	for i, rowName := range names {
		for j, colName := range names {
			if i >= j || t.Scores.Played(rowName, colName) {
				continue
			}
			rowAgent, err := t.Registry.New(rowName)
			if err != nil {
				return err
			}
			colAgent, err := t.Registry.New(colName)
			if err != nil {
				return err
			}

			rate := t.Series(rowAgent, colAgent)
			t.Scores.Set(rowName, colName, rate)
			t.Scores.Set(colName, rowName, 1-rate)
			log.Printf("Tournament %s vs %s: %.1f%% - %.1f%%",
				rowName, colName, rate*100, (1-rate)*100)

			if t.CSVPath != "" {
				if err := t.Scores.Save(t.CSVPath); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
