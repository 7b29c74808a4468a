package watch

import (
	"encoding/gob"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"quoridor/engine"
)

// Hub fans match frames out to websocket spectators. Strictly one-way:
// nothing a client sends ever reaches the engine, so remote play stays
// impossible by construction.
type Hub struct {
	Upgrader   *websocket.Upgrader
	register   chan *spectator
	unregister chan *spectator
	frames     chan Frame
	spectators map[*spectator]struct{}
	last       *Frame
}

type spectator struct {
	conn *websocket.Conn
	send chan Frame
}

func NewHub() *Hub {
	return &Hub{
		Upgrader:   &websocket.Upgrader{},
		register:   make(chan *spectator),
		unregister: make(chan *spectator),
		frames:     make(chan Frame, 16),
		spectators: make(map[*spectator]struct{}),
	}
}

// Loop owns the spectator set; run it once in its own goroutine. Late
// joiners get the latest frame so they have a board immediately.
func (h *Hub) Loop() {
	log.Printf("Hub.Loop starting")
	for {
		select {
		case sp := <-h.register:
			h.spectators[sp] = struct{}{}
			if h.last != nil {
				sp.send <- *h.last
			}
			log.Printf("Hub.Loop spectator joined, %d watching", len(h.spectators))
		case sp := <-h.unregister:
			h.drop(sp)
		case f := <-h.frames:
			h.last = &f
			for sp := range h.spectators {
				select {
				case sp.send <- f:
				default:
					// too far behind, cut them loose rather than
					// stall everyone else
					log.Warnf("Hub.Loop dropping slow spectator")
					h.drop(sp)
				}
			}
		}
	}
}

func (h *Hub) drop(sp *spectator) {
	if _, ok := h.spectators[sp]; ok {
		delete(h.spectators, sp)
		close(sp.send)
		log.Printf("Hub.Loop spectator left, %d watching", len(h.spectators))
	}
}

// OnTurn implements engine.Observer. A full frame queue means nobody
// keeps up; the frame is dropped, the match never waits.
func (h *Hub) OnTurn(ev engine.TurnEvent) {
	select {
	case h.frames <- frameOf(ev):
	default:
		log.Warnf("Hub frame queue full, dropping turn %d", ev.Turn)
	}
}

// OnOver pushes the terminal frame. Forfeits arrive only through here;
// they end a game without an applied turn.
func (h *Hub) OnOver(out engine.Outcome) {
	select {
	case h.frames <- frameOfOutcome(out):
	default:
		log.Warnf("Hub frame queue full, dropping outcome")
	}
}

// HandleWatch upgrades the connection and hooks the spectator into the
// hub.
func (h *Hub) HandleWatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleWatch - connection received")
		con, err := h.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("HandleWatch websocket upgrade err %v", err)
			return
		}
		sp := &spectator{conn: con, send: make(chan Frame, 16)}
		con.SetPingHandler(func(message string) error {
			err := con.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			if err == websocket.ErrCloseSent {
				return nil
			} else if e, ok := err.(net.Error); ok && e.Temporary() {
				return nil
			}
			return err
		})
		h.register <- sp
		go sp.loopRead(h)
		go sp.loopWrite()
	}
}

// loopRead services control frames and notices disconnects. Spectator
// data is discarded unread.
func (sp *spectator) loopRead(h *Hub) {
	for {
		if _, _, err := sp.conn.NextReader(); err != nil {
			h.unregister <- sp
			sp.conn.Close()
			return
		}
	}
}

// loopWrite only consumes, so a stuck spectator never backs up into the
// hub.
func (sp *spectator) loopWrite() {
	for f := range sp.send {
		w, err := sp.conn.NextWriter(websocket.BinaryMessage)
		if err != nil {
			log.Printf("loopWrite cant get writer %v", err)
			sp.conn.Close()
			return
		}
		if err := gob.NewEncoder(w).Encode(f); err != nil {
			log.Printf("loopWrite cant encode %v", err)
			sp.conn.Close()
			return
		}
		if err := w.Close(); err != nil {
			log.Printf("loopWrite cant flush %v", err)
			sp.conn.Close()
			return
		}
	}
	sp.conn.Close()
}
