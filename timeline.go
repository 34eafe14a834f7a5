package tableau

import (
	"math"
	"math/rand/v2"
	"sort"
)

// SegmentKind distinguishes dwelling on a state from moving between states.
type SegmentKind string

const (
	SegmentHold       SegmentKind = "hold"
	SegmentTransition SegmentKind = "transition"
)

// Segment is one contiguous piece of a ComputedTimeline.
type Segment struct {
	Kind         SegmentKind `json:"kind"`
	StateID      string      `json:"stateId,omitempty"`      // hold segments
	TransitionID string      `json:"transitionId,omitempty"` // transition segments
	FromStateID  string      `json:"fromStateId,omitempty"`
	ToStateID    string      `json:"toStateId,omitempty"`
	Window       Window      `json:"window"`
}

// ComputedTimeline is the derived default sequence of an artboard's states.
// It is recomputed on demand and never persisted.
type ComputedTimeline struct {
	TotalDuration     float64           `json:"totalDuration"`
	Segments          []Segment         `json:"segments"`
	StateWindows      map[string]Window `json:"stateWindows"`
	TransitionWindows map[string]Window `json:"transitionWindows"`
}

// timelineSeed fixes random staggers so the same inputs always produce the
// same timeline.
const timelineSeed = 0x7ab1ea0

// ComputeTimeline sequences states by Order (ties broken by ID). Each state
// holds for its HoldTime, then the transition to the next state runs for the
// full span of its schedule, delay and stagger included. Consecutive states
// without a transition cut instantly.
func ComputeTimeline(states []AnimationState, transitions []StateTransition) ComputedTimeline {
	ordered := make([]*AnimationState, len(states))
	for i := range states {
		ordered[i] = &states[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Order != ordered[j].Order {
			return ordered[i].Order < ordered[j].Order
		}
		return ordered[i].ID < ordered[j].ID
	})

	tl := ComputedTimeline{
		StateWindows:      make(map[string]Window, len(states)),
		TransitionWindows: make(map[string]Window, len(transitions)),
	}
	rng := rand.New(rand.NewPCG(timelineSeed, timelineSeed))

	var t float64
	for i, s := range ordered {
		hold := Window{Start: t, End: t + math.Max(s.HoldTime, 0)}
		tl.StateWindows[s.ID] = hold
		tl.Segments = append(tl.Segments, Segment{Kind: SegmentHold, StateID: s.ID, Window: hold})
		t = hold.End

		if i+1 >= len(ordered) {
			break
		}
		next := ordered[i+1]
		tr := findTransition(transitions, s.ID, next.ID)
		if tr == nil {
			continue
		}
		span := TransitionSpan(tr, BuildSchedule(tr, s, next, rng))
		w := Window{Start: t, End: t + span}
		tl.TransitionWindows[tr.ID] = w
		tl.Segments = append(tl.Segments, Segment{
			Kind:         SegmentTransition,
			TransitionID: tr.ID,
			FromStateID:  s.ID,
			ToStateID:    next.ID,
			Window:       w,
		})
		t = w.End
	}
	tl.TotalDuration = t
	return tl
}

// TransitionSpan returns how long a transition runs from trigger to the last
// element settling.
func TransitionSpan(tr *StateTransition, sched Schedule) float64 {
	return math.Max(sched.Span(), math.Max(tr.Delay, 0)+math.Max(tr.Duration, 0))
}

func findTransition(transitions []StateTransition, from, to string) *StateTransition {
	for i := range transitions {
		if transitions[i].FromStateID == from && transitions[i].ToStateID == to {
			return &transitions[i]
		}
	}
	return nil
}

// At returns the segment covering t. Times past the end return the last
// segment.
func (tl *ComputedTimeline) At(t float64) (Segment, bool) {
	if len(tl.Segments) == 0 {
		return Segment{}, false
	}
	for _, s := range tl.Segments {
		if s.Window.Contains(t) {
			return s, true
		}
	}
	if t >= tl.TotalDuration {
		return tl.Segments[len(tl.Segments)-1], true
	}
	return Segment{}, false
}
