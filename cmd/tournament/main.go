package main

import (
	"flag"
	"time"

	log "github.com/sirupsen/logrus"

	"quoridor/bots"
	"quoridor/engine"
	"quoridor/model"
	"quoridor/tournament"
)

func registry(seed int64) *tournament.Registry {
	reg := tournament.NewRegistry()
	reg.MustAdd(func() engine.Agent { return bots.NewRandom(seed) })
	reg.MustAdd(func() engine.Agent { return bots.NewWalker(seed) })
	reg.MustAdd(func() engine.Agent { return bots.NewWaller(seed) })
	reg.MustAdd(func() engine.Agent { return bots.NewPathfinder(seed) })
	return reg
}

func main() {
	var (
		size     = flag.Int("size", 9, "board edge length, odd")
		walls    = flag.Int("walls", 9, "wall stock per player")
		maxMoves = flag.Int("max-moves", 250, "turn cap before a game is drawn")
		timeout  = flag.Duration("timeout", time.Second, "move deadline per decision")
		seed     = flag.Int64("seed", 0, "random seed, 0 takes the clock")
		rounds   = flag.Int("rounds", 10, "games per pairing, must be even")
		csvPath  = flag.String("csv", "scores.csv", "win-rate matrix file")
	)
	flag.Parse()

	cfg := model.Config{
		Size:        *size,
		Walls:       *walls,
		MaxMoves:    *maxMoves,
		MoveTimeout: *timeout,
	}
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	t, err := tournament.NewTournament(registry(s), cfg, *rounds, *csvPath)
	if err != nil {
		log.Fatalln(err)
	}
	if err := t.Run(); err != nil {
		log.Fatalln(err)
	}
	log.Printf("Tournament done, matrix in %s", *csvPath)
}
