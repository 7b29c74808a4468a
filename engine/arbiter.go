package engine

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"quoridor/model"
)

// Verdict classifies one arbitrated decision.
type Verdict int

const (
	MOVE_OK Verdict = iota
	MOVE_TIMEOUT
	MOVE_CRASH
	MOVE_ILLEGAL
)

func (v Verdict) Name() string {
	switch v {
	case MOVE_OK:
		return "OK"
	case MOVE_TIMEOUT:
		return "TIMEOUT"
	case MOVE_CRASH:
		return "CRASH"
	case MOVE_ILLEGAL:
		return "ILLEGAL"
	default:
		return fmt.Sprintf("N/A(%d)", int(v))
	}
}

// Forfeits reports whether the verdict ends the game against the agent.
func (v Verdict) Forfeits() bool { return v != MOVE_OK }

// Arbiter runs one agent decision under a wall-clock deadline, on a
// private clone of the state. A worker that overruns the deadline is
// abandoned: it finishes into a buffered channel nobody reads anymore,
// and the clone it scribbled on goes with it.
type Arbiter struct {
	Timeout time.Duration
}

type workerAnswer struct {
	action   model.Action
	panicked bool
	panicVal interface{}
}

// Ask invokes the agent and returns the engine's own instance of the
// chosen action. Panics become MOVE_CRASH, overruns MOVE_TIMEOUT, and a
// nil or unoffered answer MOVE_ILLEGAL; the action is nil for all three.
func (ar *Arbiter) Ask(agent Agent, state *model.GameState, legal []model.Action) (model.Action, Verdict) {
	snapshot := state.Clone()
	offered := append([]model.Action(nil), legal...)

	answers := make(chan workerAnswer, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				answers <- workerAnswer{panicked: true, panicVal: r}
			}
		}()
		answers <- workerAnswer{action: agent.SelectMove(snapshot, offered)}
	}()

	select {
	case ans := <-answers:
		if ans.panicked {
			log.Warnf("Arbiter agent %s crashed: %v", agent.Name(), ans.panicVal)
			return nil, MOVE_CRASH
		}
		if ans.action == nil {
			log.Warnf("Arbiter agent %s returned no action", agent.Name())
			return nil, MOVE_ILLEGAL
		}
		for _, a := range legal {
			if a.Index() == ans.action.Index() {
				return a, MOVE_OK
			}
		}
		log.Warnf("Arbiter agent %s chose %s(%d), not among the %d offered",
			agent.Name(), ans.action.Name(), ans.action.Index(), len(legal))
		return nil, MOVE_ILLEGAL
	case <-time.After(ar.Timeout):
		log.Warnf("Arbiter agent %s exceeded %v", agent.Name(), ar.Timeout)
		return nil, MOVE_TIMEOUT
	}
}
