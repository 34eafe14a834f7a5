package preview

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"

	"github.com/phanxgames/tableau"
	"github.com/phanxgames/tableau/internal/logging"
)

// ErrNoStates is returned when a director is built without states.
var ErrNoStates = errors.New("preview: no states")

// Director runs an artboard interactively. It rests on one state, and
// click, hover, delay and manual triggers start the transition from that
// state to the triggered one. Triggers are ignored while a transition
// plays.
type Director struct {
	states      []tableau.AnimationState
	byID        map[string]*tableau.AnimationState
	transitions []tableau.StateTransition
	rng         *rand.Rand
	logger      *slog.Logger

	start   string
	current string
	player  *tableau.TransitionPlayer
	hovered string
	idle    float64 // ms at rest on current
	frame   tableau.Frame
}

// NewDirector starts on the first load-triggered state by order, or the
// first state by order when none has a load trigger.
func NewDirector(states []tableau.AnimationState, transitions []tableau.StateTransition, rng *rand.Rand, logger *slog.Logger) (*Director, error) {
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	d := &Director{
		states:      states,
		byID:        make(map[string]*tableau.AnimationState, len(states)),
		transitions: transitions,
		rng:         rng,
		logger:      logger,
	}
	for i := range states {
		d.byID[states[i].ID] = &states[i]
	}
	d.start = startState(states)
	d.Reset()
	return d, nil
}

func startState(states []tableau.AnimationState) string {
	ordered := make([]*tableau.AnimationState, len(states))
	for i := range states {
		ordered[i] = &states[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Order != ordered[j].Order {
			return ordered[i].Order < ordered[j].Order
		}
		return ordered[i].ID < ordered[j].ID
	})
	for _, s := range ordered {
		if s.Trigger.Kind == tableau.TriggerLoad {
			return s.ID
		}
	}
	return ordered[0].ID
}

// Reset returns to the start state.
func (d *Director) Reset() {
	d.current = d.start
	d.player = nil
	d.hovered = ""
	d.idle = 0
	d.frame = tableau.StateFrame(d.byID[d.current])
}

// Current returns the state the director rests on, or is heading to.
func (d *Director) Current() string {
	if d.player != nil {
		return d.player.To.ID
	}
	return d.current
}

// Playing reports whether a transition is running.
func (d *Director) Playing() bool { return d.player != nil }

// Frame returns the latest frame.
func (d *Director) Frame() tableau.Frame { return d.frame }

// Update advances the running transition by dt seconds, or fires a delay
// trigger once the current state has rested long enough.
func (d *Director) Update(dt float32) {
	if d.player != nil {
		d.player.Update(dt)
		d.frame = d.player.Frame()
		if d.player.Done {
			d.current = d.player.To.ID
			d.player = nil
			d.idle = 0
			d.logger.Debug("transition settled", "state", d.current)
		}
		return
	}
	d.idle += float64(dt) * 1000
	for _, tr := range d.outgoing() {
		to := d.byID[tr.ToStateID]
		if to.Trigger.Kind == tableau.TriggerDelay && d.idle >= to.Trigger.Delay {
			d.play(tr)
			return
		}
	}
}

// Pointer reports the element under the pointer ("" for none) and whether
// the primary button was just pressed. Entering an element fires hover
// triggers; a press fires click triggers.
func (d *Director) Pointer(elementID string, pressed bool) {
	entered := elementID != "" && elementID != d.hovered
	d.hovered = elementID
	if entered && d.fire(tableau.TriggerHover, elementID) {
		return
	}
	if pressed && elementID != "" {
		d.fire(tableau.TriggerClick, elementID)
	}
}

// Go plays the transition from the current state to ref, matched by id or
// name. Without a transition between them the director cuts straight to
// the state.
func (d *Director) Go(ref string) error {
	if d.player != nil {
		return fmt.Errorf("transition to %s is still playing", d.player.To.ID)
	}
	target := d.lookup(ref)
	if target == nil {
		return fmt.Errorf("state %q not found", ref)
	}
	for _, tr := range d.outgoing() {
		if tr.ToStateID == target.ID {
			d.play(tr)
			return nil
		}
	}
	d.current = target.ID
	d.idle = 0
	d.frame = tableau.StateFrame(target)
	d.logger.Debug("cut to state", "state", target.ID)
	return nil
}

func (d *Director) lookup(ref string) *tableau.AnimationState {
	if s, ok := d.byID[ref]; ok {
		return s
	}
	for i := range d.states {
		if d.states[i].Name == ref {
			return &d.states[i]
		}
	}
	return nil
}

func (d *Director) fire(kind tableau.TriggerKind, target string) bool {
	if d.player != nil {
		return false
	}
	for _, tr := range d.outgoing() {
		to := d.byID[tr.ToStateID]
		if to.Trigger.Kind == kind && to.Trigger.Target == target {
			d.play(tr)
			return true
		}
	}
	return false
}

// outgoing lists transitions leaving the current state whose target exists.
func (d *Director) outgoing() []*tableau.StateTransition {
	var out []*tableau.StateTransition
	for i := range d.transitions {
		tr := &d.transitions[i]
		if tr.FromStateID != d.current {
			continue
		}
		if _, ok := d.byID[tr.ToStateID]; ok {
			out = append(out, tr)
		}
	}
	return out
}

func (d *Director) play(tr *tableau.StateTransition) {
	from, to := d.byID[tr.FromStateID], d.byID[tr.ToStateID]
	d.player = tableau.NewTransitionPlayer(tr, from, to, d.rng)
	d.frame = d.player.Frame()
	d.logger.Debug("transition started",
		"transition", tr.ID,
		"from", from.ID,
		"to", to.ID,
		"span", d.player.Span(),
	)
	if d.player.Done {
		d.current = to.ID
		d.player = nil
		d.idle = 0
	}
}
