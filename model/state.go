package model

import "time"

// Config carries the tunable parameters of a game. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// Size is the board edge length N. Pawns start on the middle column,
	// so Size must be odd.
	Size int
	// Walls is the wall stock each player begins with.
	Walls int
	// MaxMoves is the turn-counter cap; reaching it ends the game as a
	// draw.
	MaxMoves int
	// MoveTimeout bounds one agent decision in wall-clock time.
	MoveTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Size:        9,
		Walls:       9,
		MaxMoves:    250,
		MoveTimeout: time.Second,
	}
}

// Player is one side's pawn position, target row and wall stock.
type Player struct {
	Pos     Cell
	GoalRow int
	Walls   int
}

// Reached reports whether the pawn stands on its goal row.
func (p Player) Reached() bool {
	return p.Pos.Row == p.GoalRow
}

// GameState is the complete position of a game in progress: adjacency,
// placed walls, both players, whose turn it is and the turn counter.
type GameState struct {
	Config  Config
	Board   *BoardGraph
	Walls   *WallLedger
	Players [2]Player
	// Turn counts paired rounds starting at 1; it advances after both
	// players have acted.
	Turn int
	// ToMove indexes Players. The agent being asked to move reads its
	// own identity from here.
	ToMove int
}

// NewGameState sets up the initial position: player 0 on the top middle
// cell aiming for the bottom row, player 1 mirrored.
func NewGameState(cfg Config) *GameState {
	n := cfg.Size
	return &GameState{
		Config: cfg,
		Board:  NewBoardGraph(n),
		Walls:  NewWallLedger(),
		Players: [2]Player{
			{Pos: Cell{0, n / 2}, GoalRow: n - 1, Walls: cfg.Walls},
			{Pos: Cell{n - 1, n / 2}, GoalRow: 0, Walls: cfg.Walls},
		},
		Turn:   1,
		ToMove: 0,
	}
}

// Mover returns the player to move.
func (s *GameState) Mover() *Player { return &s.Players[s.ToMove] }

// Opponent returns the player not to move.
func (s *GameState) Opponent() *Player { return &s.Players[1-s.ToMove] }

// Occupied reports whether either pawn stands on c.
func (s *GameState) Occupied(c Cell) bool {
	return s.Players[0].Pos == c || s.Players[1].Pos == c
}

// MovePawn displaces the mover by the given deltas. Legality is the
// caller's concern; the generator never offers an off-board target.
func (s *GameState) MovePawn(dr, dc int) {
	p := s.Mover()
	p.Pos = Cell{p.Pos.Row + dr, p.Pos.Col + dc}
}

// PlaceWall severs the wall's two segments, records them for crossing
// detection and spends one wall from the mover's stock.
func (s *GameState) PlaceWall(w Wall) {
	s.Board.RemoveSegment(w.Seg1)
	s.Board.RemoveSegment(w.Seg2)
	s.Walls.Record(w)
	s.Mover().Walls--
}

// Clone deep-copies the state. Mutating the clone never touches the
// source, so agents and simulations get their own copy to scribble on.
func (s *GameState) Clone() *GameState {
	return &GameState{
		Config:  s.Config,
		Board:   s.Board.Clone(),
		Walls:   s.Walls.Clone(),
		Players: s.Players,
		Turn:    s.Turn,
		ToMove:  s.ToMove,
	}
}
