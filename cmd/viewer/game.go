package main

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"quoridor/watch"
)

const (
	boardPx = 600
	hudPx   = 60
	screenW = boardPx
	screenH = boardPx + hudPx
	wallPx  = 6.0
)

func hexColor(u uint32) color.RGBA {
	return color.RGBA{uint8(u >> 16), uint8(u >> 8), uint8(u), 0xff}
}

var (
	colBack  = color.RGBA{70, 70, 70, 255}
	colTile  = color.RGBA{92, 92, 98, 255}
	colGoal  = color.RGBA{82, 96, 104, 255}
	colWall  = hexColor(0xfa3636)
	colPawn0 = hexColor(0x0abd38)
	colPawn1 = hexColor(0x34fbf6)
)

type pawnPx struct{ x, y float32 }

// Viewer holds the last received frame and the pixel positions of both
// pawns, which chase their cells through tweens.
type Viewer struct {
	mu     sync.Mutex
	frame  *watch.Frame
	pawns  [2]pawnPx
	tweens Tweens
	note   string
}

func (v *Viewer) update(screen *ebiten.Image) error {
	v.mu.Lock()
	v.tweens.Update(0.02)
	frame := v.frame
	pawns := v.pawns
	note := v.note
	v.mu.Unlock()

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if e := screen.Fill(colBack); e != nil {
		log.Printf("%v", e)
	}
	if frame == nil {
		text.Draw(screen, note, Font, 14, 38, color.White)
		return nil
	}
	drawBoard(screen, frame)
	drawPawns(screen, frame, pawns)
	drawHud(screen, frame)
	return nil
}

func drawBoard(screen *ebiten.Image, f *watch.Frame) {
	pitch := float64(boardPx) / float64(f.Size)
	for r := 0; r < f.Size; r++ {
		for c := 0; c < f.Size; c++ {
			col := colTile
			if r == 0 || r == f.Size-1 {
				col = colGoal
			}
			ebitenutil.DrawRect(screen,
				float64(c)*pitch+1, hudPx+float64(r)*pitch+1,
				pitch-2, pitch-2, col)
		}
	}
	for _, seg := range f.Severed {
		a, b := seg.A, seg.B
		if a.Row != b.Row {
			// stacked cells, the wall lies along the row boundary
			ebitenutil.DrawRect(screen,
				float64(a.Col)*pitch, hudPx+float64(b.Row)*pitch-wallPx/2,
				pitch, wallPx, colWall)
		} else {
			ebitenutil.DrawRect(screen,
				float64(b.Col)*pitch-wallPx/2, hudPx+float64(a.Row)*pitch,
				wallPx, pitch, colWall)
		}
	}
}

func drawPawns(screen *ebiten.Image, f *watch.Frame, pawns [2]pawnPx) {
	pitch := float64(boardPx) / float64(f.Size)
	side := pitch * 0.55
	for i, p := range pawns {
		col := colPawn0
		if i == 1 {
			col = colPawn1
		}
		ebitenutil.DrawRect(screen,
			float64(p.x)-side/2, float64(p.y)-side/2,
			side, side, col)
	}
}

func drawHud(screen *ebiten.Image, f *watch.Frame) {
	head := fmt.Sprintf("turn %d  %s  walls %d-%d",
		f.Turn, f.ActionName, f.WallsLeft[0], f.WallsLeft[1])
	if f.Over {
		switch {
		case f.Forfeit != "":
			head = fmt.Sprintf("player %d wins by forfeit (%s)", f.Winner+1, f.Forfeit)
		case f.Winner >= 0:
			head = fmt.Sprintf("player %d wins on turn %d", f.Winner+1, f.Turn)
		default:
			head = fmt.Sprintf("drawn on turn %d", f.Turn)
		}
	}
	text.Draw(screen, head, Font, 14, 38, color.White)
}

func (v *Viewer) setNote(s string) {
	v.mu.Lock()
	v.note = s
	v.mu.Unlock()
}

// apply folds a received frame in, tweening each pawn from where it is
// drawn now to its new cell center.
func (v *Viewer) apply(f watch.Frame) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if f.Size == 0 {
		// terminal frames carry no board; keep the last board and just
		// adopt the verdict
		if v.frame != nil {
			last := *v.frame
			last.Over = f.Over
			last.Winner = f.Winner
			last.Forfeit = f.Forfeit
			last.Phase = f.Phase
			last.Turn = f.Turn
			v.frame = &last
		}
		return
	}

	first := v.frame == nil
	prev := v.frame
	v.frame = &f

	pitch := float32(boardPx) / float32(f.Size)
	for i := 0; i < 2; i++ {
		idx := i
		cx := (float32(f.Pawns[i].Col) + 0.5) * pitch
		cy := float32(hudPx) + (float32(f.Pawns[i].Row)+0.5)*pitch
		if first {
			v.pawns[i] = pawnPx{cx, cy}
			continue
		}
		if prev.Pawns[i] == f.Pawns[i] {
			continue
		}
		v.tweens.Add(gween.New(v.pawns[i].x, cx, 0.3, ease.OutQuad),
			func(val float32) { v.pawns[idx].x = val })
		v.tweens.Add(gween.New(v.pawns[i].y, cy, 0.3, ease.OutQuad),
			func(val float32) { v.pawns[idx].y = val })
	}
}
