package engine

import "errors"

var (
	// ErrRuleViolation marks an action that cannot apply to the current
	// state. Anything chosen from the offered legal list can never
	// trigger it; seeing it means the generator and the applier
	// disagree.
	ErrRuleViolation = errors.New("rule violation")

	// ErrGameOver marks an apply attempted on a finished game.
	ErrGameOver = errors.New("game already over")
)
