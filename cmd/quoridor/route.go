package main

import (
	"github.com/matryer/way"
)

const URI_WS = "/watch"

func (a *App) routes() {
	a.router = way.NewRouter()
	a.router.HandleFunc("GET", URI_WS, a.hub.HandleWatch())
}
