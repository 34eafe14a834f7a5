package tableau

import "math/rand/v2"

// ElementTiming is the resolved timing of one element in a transition.
// Properties limits which properties animate; nil animates all of them.
type ElementTiming struct {
	Delay      float64     `json:"delay"`
	Duration   float64     `json:"duration"`
	Easing     EasingCurve `json:"easing"`
	Depth      int         `json:"depth"`
	Properties []Property  `json:"properties,omitempty"`
}

// End returns Delay + Duration.
func (t ElementTiming) End() float64 {
	return t.Delay + t.Duration
}

func (t ElementTiming) animates(p Property) bool {
	if len(t.Properties) == 0 {
		return true
	}
	for _, q := range t.Properties {
		if q == p {
			return true
		}
	}
	return false
}

// Schedule is the per-element timing plan for one transition. Elements
// without an entry use the transition's base timing. Hierarchical is set
// when the plan came from an enabled cascade and turns on parent transform
// inheritance during interpolation.
type Schedule struct {
	Entries      map[string]ElementTiming `json:"entries"`
	Hierarchical bool                     `json:"hierarchical"`
	Layout       *LayoutAnimation         `json:"layout,omitempty"`
}

// Timing returns the entry for id.
func (s Schedule) Timing(id string) (ElementTiming, bool) {
	t, ok := s.Entries[id]
	return t, ok
}

// Span returns the latest end time across all entries.
func (s Schedule) Span() float64 {
	var span float64
	for _, t := range s.Entries {
		if end := t.End(); end > span {
			span = end
		}
	}
	return span
}

// transitionElements lists the union of both states' elements: target
// elements in order, then elements that only exist in the source.
func transitionElements(from, to []ElementSnapshot) []ElementSnapshot {
	toIdx := indexElements(to)
	out := make([]ElementSnapshot, 0, len(from)+len(to))
	for i := range to {
		if toIdx[to[i].ID] == i {
			out = append(out, to[i])
		}
	}
	fromIdx := indexElements(from)
	for i := range from {
		if _, ok := toIdx[from[i].ID]; ok || fromIdx[from[i].ID] != i {
			continue
		}
		out = append(out, from[i])
	}
	return out
}

// BuildSchedule resolves every element's timing for a transition. Layers
// apply in order, later ones winning:
//
//	base timing -> cascade plan -> transition stagger (additive)
//	-> element Timing override -> transition ElementOverride
//
// Override delays are absolute offsets from the start of the transition.
// rng only matters for random staggers.
func BuildSchedule(tr *StateTransition, from, to *AnimationState, rng *rand.Rand) Schedule {
	els := transitionElements(from.elements(), to.elements())
	sched := Plan(els, tr.Cascade, tr.Duration, tr.Delay, tr.Easing)
	sched.Layout = tr.Layout

	offsets := StaggerOffsets(len(els), tr.Stagger, rng)
	for i := range els {
		el := &els[i]
		t := sched.Entries[el.ID]
		t.Delay += offsets[i]

		if o := el.Timing; o != nil {
			if o.Delay != nil {
				t.Delay = *o.Delay
			}
			if o.Duration != nil {
				t.Duration = *o.Duration
			}
			if o.Easing != nil {
				t.Easing = *o.Easing
			}
		}
		if o := tr.Override(el.ID); o != nil {
			if o.Delay != nil {
				t.Delay = *o.Delay
			}
			if o.Duration != nil {
				t.Duration = *o.Duration
			}
			if o.Easing != nil {
				t.Easing = *o.Easing
			}
			if len(o.Properties) > 0 {
				t.Properties = append([]Property(nil), o.Properties...)
			}
		}
		sched.Entries[el.ID] = t
	}
	return sched
}
