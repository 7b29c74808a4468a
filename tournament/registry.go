package tournament

import (
	"fmt"

	"quoridor/engine"
)

// Factory builds a fresh agent.
type Factory func() engine.Agent

// Registry is the explicit lookup table of playable agents. Nothing is
// discovered at runtime; whatever should play gets added here by hand.
type Registry struct {
	names     []string
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Add registers a factory under the name its agents report. Duplicate
// names are rejected so the score matrix stays unambiguous.
func (r *Registry) Add(f Factory) error {
	name := f().Name()
	if _, dup := r.factories[name]; dup {
		return fmt.Errorf("agent %q already registered", name)
	}
	r.names = append(r.names, name)
	r.factories[name] = f
	return nil
}

// MustAdd is Add for wiring done at startup.
func (r *Registry) MustAdd(f Factory) {
	if err := r.Add(f); err != nil {
		panic(err)
	}
}

// New builds the named agent.
func (r *Registry) New(name string) (engine.Agent, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("no agent %q registered", name)
	}
	return f(), nil
}

// Names lists registrations in insertion order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

func (r *Registry) Len() int { return len(r.factories) }
