package tournament

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Scores is the win-rate matrix of a tournament: cell (row, col) holds
// row's rate against col. NaN marks a pairing not yet played.
type Scores struct {
	names []string
	cells map[string]map[string]float64
}

func NewScores(names []string) *Scores {
	s := &Scores{
		names: append([]string(nil), names...),
		cells: make(map[string]map[string]float64, len(names)),
	}
	for _, a := range s.names {
		s.cells[a] = make(map[string]float64, len(names))
		for _, b := range s.names {
			s.cells[a][b] = math.NaN()
		}
	}
	return s
}

func (s *Scores) Names() []string { return append([]string(nil), s.names...) }

func (s *Scores) Get(row, col string) float64 {
	if r, ok := s.cells[row]; ok {
		if v, ok := r[col]; ok {
			return v
		}
	}
	return math.NaN()
}

func (s *Scores) Set(row, col string, v float64) {
	if r, ok := s.cells[row]; ok {
		if _, ok := r[col]; ok {
			r[col] = v
		}
	}
}

// Played reports whether the pairing already has a result.
func (s *Scores) Played(row, col string) bool {
	return !math.IsNaN(s.Get(row, col))
}

// Save writes the matrix with a leading name column. Unplayed cells
// stay empty.
func (s *Scores) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{""}, s.names...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("save scores: %w", err)
	}
	for _, row := range s.names {
		rec := make([]string, 0, len(s.names)+1)
		rec = append(rec, row)
		for _, col := range s.names {
			v := s.cells[row][col]
			if math.IsNaN(v) {
				rec = append(rec, "")
			} else {
				rec = append(rec, strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("save scores: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// LoadScores reads an existing matrix and reindexes it to the given
// names: known pairings keep their values, new agents start unplayed.
// A missing file yields a fresh matrix.
func LoadScores(path string, names []string) (*Scores, error) {
	s := NewScores(names)
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load scores: %w", err)
	}
	if len(records) == 0 {
		return s, nil
	}
	cols := records[0][1:]
	for _, rec := range records[1:] {
		if len(rec) != len(cols)+1 {
			return nil, fmt.Errorf("load scores: ragged row %q", rec[0])
		}
		row := rec[0]
		for i, cell := range rec[1:] {
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("load scores: cell %s/%s: %w", row, cols[i], err)
			}
			s.Set(row, cols[i], v)
		}
	}
	return s, nil
}
