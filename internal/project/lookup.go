package project

import (
	"fmt"
	"strings"

	"github.com/phanxgames/tableau"
)

// State finds a state by id, falling back to a case-sensitive name match.
func (p *Project) State(ref string) (*tableau.AnimationState, error) {
	for i := range p.States {
		if p.States[i].ID == ref {
			return &p.States[i], nil
		}
	}
	for i := range p.States {
		if p.States[i].Name == ref {
			return &p.States[i], nil
		}
	}
	return nil, fmt.Errorf("state %q: %w", ref, ErrNotFound)
}

// Transition finds a transition by id. A "from->to" reference, using state
// ids or names, selects the transition between those two states.
func (p *Project) Transition(ref string) (*tableau.StateTransition, error) {
	for i := range p.Transitions {
		if p.Transitions[i].ID == ref {
			return &p.Transitions[i], nil
		}
	}
	if from, to, ok := splitArrow(ref); ok {
		return p.TransitionBetween(from, to)
	}
	return nil, fmt.Errorf("transition %q: %w", ref, ErrNotFound)
}

// TransitionBetween finds the transition from one state to another.
func (p *Project) TransitionBetween(fromRef, toRef string) (*tableau.StateTransition, error) {
	from, err := p.State(fromRef)
	if err != nil {
		return nil, err
	}
	to, err := p.State(toRef)
	if err != nil {
		return nil, err
	}
	for i := range p.Transitions {
		tr := &p.Transitions[i]
		if tr.FromStateID == from.ID && tr.ToStateID == to.ID {
			return tr, nil
		}
	}
	return nil, fmt.Errorf("transition %s->%s: %w", fromRef, toRef, ErrNotFound)
}

// Chain finds a chain by id or name.
func (p *Project) Chain(ref string) (*tableau.AnimationChain, error) {
	for i := range p.Chains {
		if p.Chains[i].ID == ref || p.Chains[i].Name == ref {
			return &p.Chains[i], nil
		}
	}
	return nil, fmt.Errorf("chain %q: %w", ref, ErrNotFound)
}

// StateMap indexes states by id for chain sampling.
func (p *Project) StateMap() map[string]*tableau.AnimationState {
	m := make(map[string]*tableau.AnimationState, len(p.States))
	for i := range p.States {
		m[p.States[i].ID] = &p.States[i]
	}
	return m
}

// Endpoints returns the source and target states of a transition.
func (p *Project) Endpoints(tr *tableau.StateTransition) (from, to *tableau.AnimationState, err error) {
	if from, err = p.State(tr.FromStateID); err != nil {
		return nil, nil, err
	}
	if to, err = p.State(tr.ToStateID); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func splitArrow(ref string) (string, string, bool) {
	from, to, ok := strings.Cut(ref, "->")
	return from, to, ok && from != "" && to != ""
}
