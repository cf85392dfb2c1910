package machine

import (
	"errors"
	"fmt"
	"slices"
)

type State interface {
	~string
}

// Allowable maps where a from state is allowed to transition to
type Allowable[S State] struct {
	from S
	to   []S
}

// StateMachine tracks the current state and the path taken to reach it
type StateMachine[S State] struct {
	current     S
	transitions []Allowable[S]
	history     []S
}

var (
	ErrInvalidTransition = errors.New("invalid state transition")
)

// TransitionBuilder helps in creating a from-to relationship for state transitions
type TransitionBuilder[S State] struct {
	transition Allowable[S]
}

func New[S State](initial S, transitions ...Allowable[S]) *StateMachine[S] {
	return &StateMachine[S]{
		current:     initial,
		transitions: transitions,
		history:     []S{initial},
	}
}

// From initializes a transition from a specific state
func From[S State](from S) *TransitionBuilder[S] {
	return &TransitionBuilder[S]{transition: Allowable[S]{from: from}}
}

// To sets the possible destination states and returns the configured transition
func (tb *TransitionBuilder[S]) To(to ...S) Allowable[S] {
	tb.transition.to = to
	return tb.transition
}

// State returns the current state
func (m *StateMachine[S]) State() S {
	return m.current
}

// History returns every state visited, starting with the initial one
func (m *StateMachine[S]) History() []S {
	return slices.Clone(m.history)
}

// CanTransition determines if the current state can move to s
func (m *StateMachine[S]) CanTransition(s S) bool {
	for _, transition := range m.transitions {
		if transition.from != m.current {
			continue
		}

		if slices.Contains(transition.to, s) {
			return true
		}
	}

	return false
}

// Terminal reports whether no transition leaves the current state
func (m *StateMachine[S]) Terminal() bool {
	for _, transition := range m.transitions {
		if transition.from == m.current && len(transition.to) > 0 {
			return false
		}
	}

	return true
}

// ToState moves the machine to s. The current state is unchanged when the transition is not allowed.
func (m *StateMachine[S]) ToState(s S) error {
	if !m.CanTransition(s) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, s)
	}

	m.current = s
	m.history = append(m.history, s)
	return nil
}
