package main

import (
	"encoding/gob"
	"flag"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/gorilla/websocket"
	"github.com/hajimehoshi/ebiten"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"quoridor/watch"
)

var Font font.Face = basicfont.Face7x13

func loadFont(path string) {
	dat, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	tt, err := truetype.Parse(dat)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	Font = truetype.NewFace(tt, &truetype.Options{
		Size:    22,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

var theViewer *Viewer

func main() {
	addr := flag.String("addr", "localhost:8080", "host:port of a running match server")
	fontPath := flag.String("font", "", "optional TTF file for the HUD")
	flag.Parse()
	if *fontPath != "" {
		loadFont(*fontPath)
	}

	theViewer = &Viewer{
		tweens: make(Tweens),
		note:   "connecting to " + *addr,
	}
	go dial(*addr)

	if err := ebiten.Run(theViewer.update, screenW, screenH, 1, "Quoridor"); err != nil {
		log.Fatal(err)
	}
}

func dial(addr string) {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/watch"}
	for {
		conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
		if err != nil {
			log.Printf("dial %s: %v", u.String(), err)
			theViewer.setNote("waiting for " + addr)
			time.Sleep(2 * time.Second)
			continue
		}
		log.Printf("watching %s", u.String())
		theViewer.setNote("connected, waiting for a game")
		read(conn)
		conn.Close()
		theViewer.setNote("connection lost, retrying " + addr)
	}
}

func read(conn *websocket.Conn) {
	for {
		_, r, err := conn.NextReader()
		if err != nil {
			log.Printf("read: %v", err)
			return
		}
		var f watch.Frame
		if err := gob.NewDecoder(r).Decode(&f); err != nil {
			log.Printf("decode: %v", err)
			return
		}
		theViewer.apply(f)
	}
}
