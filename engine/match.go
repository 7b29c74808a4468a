package engine

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"quoridor/model"
)

// TurnEvent describes one applied turn. State is a clone shared by all
// observers of the event; treat it as read-only.
type TurnEvent struct {
	GameID string
	Turn   int
	Mover  int
	Action model.Action
	State  *model.GameState
	Phase  Phase
}

// Outcome summarizes a finished game.
type Outcome struct {
	GameID string
	Names  [2]string
	// Winner indexes the seats, -1 on a draw.
	Winner int
	Draw   bool
	Turns  int
	// Forfeit is MOVE_OK when the game ended over the board, otherwise
	// the verdict that ended it.
	Forfeit Verdict
}

// Observer sees each applied turn and the final outcome. Renderers and
// reporters hang off this; the engine never knows what is watching.
type Observer interface {
	OnTurn(ev TurnEvent)
	OnOver(out Outcome)
}

// Match drives two agents through one game, arbitrating every decision.
type Match struct {
	ID        string
	Game      *Game
	Agents    [2]Agent
	Arbiter   *Arbiter
	Observers []Observer
}

func NewMatch(cfg model.Config, first, second Agent, observers ...Observer) *Match {
	return &Match{
		ID:        uuid.NewString(),
		Game:      NewGame(cfg),
		Agents:    [2]Agent{first, second},
		Arbiter:   &Arbiter{Timeout: cfg.MoveTimeout},
		Observers: observers,
	}
}

// Run resets both agents and plays the game out. Any forfeit ends it on
// the spot with the other seat declared winner.
func (m *Match) Run() Outcome {
	for _, ag := range m.Agents {
		ag.Reset()
	}
	cfg := m.Game.State.Config
	log.Printf("Match %s: %s vs %s, board %dx%d, %d walls each",
		m.ID, m.Agents[0].Name(), m.Agents[1].Name(), cfg.Size, cfg.Size, cfg.Walls)

	for m.Game.Phase == RUNNING {
		mover := m.Game.State.ToMove
		agent := m.Agents[mover]
		turn := m.Game.State.Turn

		legal := m.Game.LegalActions()
		action, verdict := m.Arbiter.Ask(agent, m.Game.State, legal)
		if verdict.Forfeits() {
			out := m.outcome()
			out.Winner = 1 - mover
			out.Draw = false
			out.Forfeit = verdict
			log.Warnf("Match %s: %s forfeits on turn %d (%s), %s wins",
				m.ID, agent.Name(), turn, verdict.Name(), m.Agents[out.Winner].Name())
			m.over(out)
			return out
		}

		if err := m.Game.Apply(action); err != nil {
			// an offered action failed to apply: generator bug, not an
			// agent one, and the game cannot continue
			log.Errorf("Match %s: apply %s: %v", m.ID, action.Name(), err)
			panic(err)
		}
		log.Printf("Match %s: turn %d %s plays %s", m.ID, turn, agent.Name(), action.Name())

		ev := TurnEvent{
			GameID: m.ID,
			Turn:   turn,
			Mover:  mover,
			Action: action,
			State:  m.Game.State.Clone(),
			Phase:  m.Game.Phase,
		}
		for _, o := range m.Observers {
			o.OnTurn(ev)
		}
	}

	out := m.outcome()
	switch m.Game.Phase {
	case WON:
		log.Printf("Match %s: %s wins on turn %d", m.ID, m.Agents[out.Winner].Name(), out.Turns)
	case DRAW:
		log.Printf("Match %s: drawn at the %d move cap", m.ID, cfg.MaxMoves)
	}
	m.over(out)
	return out
}

func (m *Match) outcome() Outcome {
	return Outcome{
		GameID:  m.ID,
		Names:   [2]string{m.Agents[0].Name(), m.Agents[1].Name()},
		Winner:  m.Game.Winner,
		Draw:    m.Game.Phase == DRAW,
		Turns:   m.Game.State.Turn,
		Forfeit: MOVE_OK,
	}
}

func (m *Match) over(out Outcome) {
	for _, o := range m.Observers {
		o.OnOver(out)
	}
}
