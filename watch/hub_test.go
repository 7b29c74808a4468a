package watch

import (
	"encoding/gob"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quoridor/engine"
	"quoridor/model"
)

func feedState() (*model.GameState, *model.Catalogue) {
	cfg := model.Config{Size: 5, Walls: 3, MaxMoves: 50, MoveTimeout: time.Second}
	return model.NewGameState(cfg), model.NewCatalogue(5)
}

func dialHub(t *testing.T, srvURL string) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srvURL, "http") + "/watch"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, r, err := conn.NextReader()
	require.NoError(t, err)
	var f Frame
	require.NoError(t, gob.NewDecoder(r).Decode(&f))
	return f
}

func TestHubDeliversFramesOverWebsocket(t *testing.T) {
	h := NewHub()
	go h.Loop()

	router := way.NewRouter()
	router.HandleFunc("GET", "/watch", h.HandleWatch())
	srv := httptest.NewServer(router)
	defer srv.Close()

	conn := dialHub(t, srv.URL)
	defer conn.Close()

	st, cat := feedState()
	h.OnTurn(engine.TurnEvent{
		GameID: "feed",
		Turn:   1,
		Mover:  0,
		Action: cat.Moves[model.Down],
		State:  st,
		Phase:  engine.RUNNING,
	})

	f := readFrame(t, conn)
	assert.Equal(t, "feed", f.GameID)
	assert.Equal(t, 1, f.Turn)
	assert.Equal(t, "down", f.ActionName)
	assert.Equal(t, 3, f.ActionIdx)
	assert.Equal(t, 5, f.Size)
	assert.Equal(t, model.Cell{Row: 0, Col: 2}, f.Pawns[0])
	assert.Equal(t, model.Cell{Row: 4, Col: 2}, f.Pawns[1])
	assert.Equal(t, [2]int{3, 3}, f.WallsLeft)
	assert.Empty(t, f.Severed)
	assert.False(t, f.Over)

	// a late joiner is brought up to speed from the last frame
	conn2 := dialHub(t, srv.URL)
	defer conn2.Close()
	f2 := readFrame(t, conn2)
	assert.Equal(t, f.GameID, f2.GameID)
	assert.Equal(t, f.Turn, f2.Turn)

	// the terminal frame reaches everyone
	h.OnOver(engine.Outcome{
		GameID:  "feed",
		Names:   [2]string{"a", "b"},
		Winner:  1,
		Turns:   7,
		Forfeit: engine.MOVE_TIMEOUT,
	})
	done := readFrame(t, conn)
	assert.True(t, done.Over)
	assert.Equal(t, 1, done.Winner)
	assert.Equal(t, "TIMEOUT", done.Forfeit)
	assert.Zero(t, done.Size)
}

func TestFrameCarriesSeveredSegments(t *testing.T) {
	st, cat := feedState()
	st.PlaceWall(model.NewHorizontalWall(model.Cell{Row: 2, Col: 2}))

	f := frameOf(engine.TurnEvent{
		GameID: "walls",
		Turn:   2,
		Mover:  0,
		Action: cat.HorizontalWallAt(model.Cell{Row: 2, Col: 2}),
		State:  st,
		Phase:  engine.RUNNING,
	})
	assert.Len(t, f.Severed, 2)
	assert.Equal(t, [2]int{2, 3}, f.WallsLeft)
	assert.Equal(t, -1, f.Winner)
}

func TestFrameMarksWins(t *testing.T) {
	st, cat := feedState()
	f := frameOf(engine.TurnEvent{
		GameID: "win",
		Turn:   9,
		Mover:  1,
		Action: cat.Moves[model.Up],
		State:  st,
		Phase:  engine.WON,
	})
	assert.True(t, f.Over)
	assert.Equal(t, 1, f.Winner)
	assert.Equal(t, "WON", f.Phase)
}

func TestOutcomeFrameForDraw(t *testing.T) {
	f := frameOfOutcome(engine.Outcome{GameID: "d", Turns: 250, Winner: -1, Draw: true})
	assert.True(t, f.Over)
	assert.Equal(t, "DRAW", f.Phase)
	assert.Equal(t, -1, f.Winner)
	assert.Empty(t, f.Forfeit)
}
