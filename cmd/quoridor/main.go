package main

import (
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"quoridor/bots"
	"quoridor/engine"
	"quoridor/model"
	"quoridor/render"
	"quoridor/tournament"
	"quoridor/watch"
)

type App struct {
	router *way.Router
	hub    *watch.Hub
}

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
		maxMoves = flag.Int("max-moves", 250, "turn cap before the game is drawn")
		timeout  = flag.Duration("timeout", time.Second, "move deadline per decision")
		seed     = flag.Int64("seed", 0, "random seed, 0 takes the clock")
		first    = flag.String("p1", "walker", "first agent")
		second   = flag.String("p2", "random", "second agent")
		draw     = flag.Bool("draw", false, "render the board each turn")
		delay    = flag.Duration("delay", 0, "pause between turns")
		listen   = flag.Bool("listen", false, "serve the spectator feed while playing")
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

	reg := registry(s)
	p1, err := reg.New(*first)
	if err != nil {
		log.Fatalln(err)
	}
	p2, err := reg.New(*second)
	if err != nil {
		log.Fatalln(err)
	}

	var observers []engine.Observer
	if *draw {
		observers = append(observers, render.NewANSI(os.Stdout))
	}
	if *delay > 0 {
		observers = append(observers, pause{*delay})
	}
	if *listen {
		app := &App{hub: watch.NewHub()}
		go app.hub.Loop()
		app.routes()
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
			log.Printf("Defaulting to port %s", port)
		}
		go func() {
			log.Fatalln(http.ListenAndServe(":"+port, app.router))
		}()
		observers = append(observers, app.hub)
	}

	engine.NewMatch(cfg, p1, p2, observers...).Run()

	if *listen {
		log.Printf("Game over, still serving the final board - interrupt to quit")
		select {}
	}
}

// pause slows a match down enough to watch it.
type pause struct{ d time.Duration }

func (p pause) OnTurn(engine.TurnEvent) { time.Sleep(p.d) }
func (p pause) OnOver(engine.Outcome)   {}
