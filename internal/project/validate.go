package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phanxgames/tableau"
)

// Validate checks ids, cross references and enum values. All problems are
// reported together.
func (p *Project) Validate() error {
	var errs []error
	if p.Version > CurrentVersion {
		errs = append(errs, fmt.Errorf("version %d is newer than supported version %d", p.Version, CurrentVersion))
	}
	if len(p.States) == 0 {
		errs = append(errs, errors.New("states: at least one state is required"))
	}

	stateIDs := make(map[string]bool, len(p.States))
	for i := range p.States {
		s := &p.States[i]
		where := fmt.Sprintf("states[%d] (%s)", i, s.ID)
		if stateIDs[s.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id", where))
		}
		stateIDs[s.ID] = true
		if s.HoldTime < 0 {
			errs = append(errs, fmt.Errorf("%s.holdTime must not be negative", where))
		}
		errs = append(errs, validateTrigger(where, s)...)
		errs = append(errs, validateElements(where, s.Elements)...)
	}

	trIDs := make(map[string]bool, len(p.Transitions))
	for i := range p.Transitions {
		tr := &p.Transitions[i]
		where := fmt.Sprintf("transitions[%d] (%s)", i, tr.ID)
		if trIDs[tr.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id", where))
		}
		trIDs[tr.ID] = true
		if !stateIDs[tr.FromStateID] {
			errs = append(errs, fmt.Errorf("%s.fromStateId %q does not name a state", where, tr.FromStateID))
		}
		if !stateIDs[tr.ToStateID] {
			errs = append(errs, fmt.Errorf("%s.toStateId %q does not name a state", where, tr.ToStateID))
		}
		errs = append(errs, validateTransition(where, tr)...)
	}

	chainIDs := make(map[string]bool, len(p.Chains))
	for i := range p.Chains {
		c := &p.Chains[i]
		where := fmt.Sprintf("chains[%d] (%s)", i, c.ID)
		if chainIDs[c.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id", where))
		}
		chainIDs[c.ID] = true
		if c.StartStateID != "" && !stateIDs[c.StartStateID] {
			errs = append(errs, fmt.Errorf("%s.startStateId %q does not name a state", where, c.StartStateID))
		}
		switch c.Mode {
		case tableau.PlayOnce, tableau.PlayLoop, tableau.PlayPingPong, tableau.PlayInfinite:
		default:
			errs = append(errs, fmt.Errorf("%s.mode %q is not once, loop, ping-pong or infinite", where, c.Mode))
		}
		if c.MaxIterations < 0 {
			errs = append(errs, fmt.Errorf("%s.maxIterations must not be negative", where))
		}
		for j, step := range c.Steps {
			sw := fmt.Sprintf("%s.steps[%d]", where, j)
			if !stateIDs[step.StateID] {
				errs = append(errs, fmt.Errorf("%s.stateId %q does not name a state", sw, step.StateID))
			}
			if step.Duration < 0 || step.Delay < 0 || step.HoldTime < 0 {
				errs = append(errs, fmt.Errorf("%s: duration, delay and holdTime must not be negative", sw))
			}
			if step.Easing != nil {
				errs = append(errs, validateEasing(sw+".easing", *step.Easing)...)
			}
		}
	}
	return errors.Join(errs...)
}

func validateTrigger(where string, s *tableau.AnimationState) []error {
	switch s.Trigger.Kind {
	case "", tableau.TriggerLoad, tableau.TriggerManual:
	case tableau.TriggerDelay:
		if s.Trigger.Delay < 0 {
			return []error{fmt.Errorf("%s.trigger.delay must not be negative", where)}
		}
	case tableau.TriggerClick, tableau.TriggerHover:
		if s.Element(s.Trigger.Target) == nil {
			return []error{fmt.Errorf("%s.trigger.target %q does not name an element", where, s.Trigger.Target)}
		}
	default:
		return []error{fmt.Errorf("%s.trigger.kind %q is unknown", where, s.Trigger.Kind)}
	}
	return nil
}

func validateElements(where string, els []tableau.ElementSnapshot) []error {
	var errs []error
	seen := make(map[string]bool, len(els))
	for i := range els {
		e := &els[i]
		ew := fmt.Sprintf("%s.elements[%d]", where, i)
		if strings.TrimSpace(e.ID) == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", ew))
			continue
		}
		if seen[e.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate element id %q", ew, e.ID))
		}
		seen[e.ID] = true
		switch e.Inheritance {
		case "", tableau.InheritIndependent, tableau.InheritFull, tableau.InheritRelative:
		default:
			errs = append(errs, fmt.Errorf("%s.inheritance %q is not independent, inherit or relative", ew, e.Inheritance))
		}
		if e.Layout != nil {
			switch e.Layout.Kind {
			case "", tableau.LayoutNone, tableau.LayoutFlex, tableau.LayoutGrid:
			default:
				errs = append(errs, fmt.Errorf("%s.layout.kind %q is not none, flex or grid", ew, e.Layout.Kind))
			}
		}
		if e.Timing != nil && e.Timing.Easing != nil {
			errs = append(errs, validateEasing(ew+".timing.easing", *e.Timing.Easing)...)
		}
	}
	return errs
}

func validateTransition(where string, tr *tableau.StateTransition) []error {
	var errs []error
	if tr.Duration < 0 || tr.Delay < 0 {
		errs = append(errs, fmt.Errorf("%s: duration and delay must not be negative", where))
	}
	errs = append(errs, validateEasing(where+".easing", tr.Easing)...)
	if st := tr.Stagger; st != nil {
		switch st.From {
		case "", tableau.StaggerStart, tableau.StaggerEnd, tableau.StaggerCenter, tableau.StaggerRandom:
		default:
			errs = append(errs, fmt.Errorf("%s.stagger.from %q is not start, end, center or random", where, st.From))
		}
	}
	if c := tr.Cascade; c != nil {
		switch c.Stagger.Direction {
		case "", tableau.CascadeNormal, tableau.CascadeReverse, tableau.CascadeCenterOut, tableau.CascadeEdgesIn:
		default:
			errs = append(errs, fmt.Errorf("%s.cascade.stagger.direction %q is unknown", where, c.Stagger.Direction))
		}
	}
	for j, o := range tr.Overrides {
		ow := fmt.Sprintf("%s.overrides[%d]", where, j)
		if o.ElementID == "" {
			errs = append(errs, fmt.Errorf("%s.elementId is required", ow))
		}
		if o.Easing != nil {
			errs = append(errs, validateEasing(ow+".easing", *o.Easing)...)
		}
		for _, prop := range o.Properties {
			if !knownProperty(prop) {
				errs = append(errs, fmt.Errorf("%s.properties: %q is not an animatable property", ow, prop))
			}
		}
	}
	if l := tr.Layout; l != nil && l.Easing != nil {
		errs = append(errs, validateEasing(where+".layout.easing", *l.Easing)...)
	}
	return errs
}

// validateEasing rejects unknown preset names, which the engine would
// otherwise resolve to "ease".
func validateEasing(where string, c tableau.EasingCurve) []error {
	if c.Kind == tableau.CurvePreset && c.Preset != "" && !tableau.IsPreset(c.Preset) {
		return []error{fmt.Errorf("%s: unknown preset %q", where, c.Preset)}
	}
	return nil
}

func knownProperty(p tableau.Property) bool {
	for _, q := range tableau.Properties {
		if q == p {
			return true
		}
	}
	return false
}
