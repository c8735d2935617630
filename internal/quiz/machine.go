package quiz

import (
	"sync"

	"github.com/google/uuid"
)

// Observer receives every accepted transition in dispatch order.
// Observers run on the dispatch path and must not call Dispatch.
type Observer interface {
	OnTransition(action Action, prev, next Session)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(action Action, prev, next Session)

// OnTransition calls f.
func (f ObserverFunc) OnTransition(action Action, prev, next Session) {
	f(action, prev, next)
}

// Machine owns the canonical session. Dispatch is the only writer;
// Snapshot returns copies that callers may keep.
type Machine struct {
	mu        sync.RWMutex
	session   Session
	rules     Rules
	newID     func() string
	observers []Observer
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithRules overrides DefaultRules.
func WithRules(rules Rules) MachineOption {
	return func(m *Machine) {
		m.rules = rules
	}
}

// WithObserver registers an observer.
func WithObserver(observer Observer) MachineOption {
	return func(m *Machine) {
		if observer != nil {
			m.observers = append(m.observers, observer)
		}
	}
}

// WithAttemptIDs sets the generator used to label each started attempt.
func WithAttemptIDs(newID func() string) MachineOption {
	return func(m *Machine) {
		if newID != nil {
			m.newID = newID
		}
	}
}

// NewMachine creates a machine holding an idle session.
func NewMachine(opts ...MachineOption) *Machine {
	m := &Machine{
		session: NewSession(),
		rules:   DefaultRules(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Rules returns the rules the machine applies.
func (m *Machine) Rules() Rules {
	return m.rules
}

// Dispatch applies an action and returns a snapshot of the resulting session.
// On error the session is left unchanged.
func (m *Machine) Dispatch(action Action) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if action.Kind == ActionStart && action.AttemptID == "" {
		action.AttemptID = m.newID()
	}
	prev := m.session
	next, err := m.rules.Apply(prev, action)
	if err != nil {
		return prev.Clone(), err
	}
	m.session = next
	for _, observer := range m.observers {
		observer.OnTransition(action, prev.Clone(), next.Clone())
	}
	return next.Clone(), nil
}

// Snapshot returns a copy of the current session.
func (m *Machine) Snapshot() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Clone()
}
