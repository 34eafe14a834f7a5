package tableau

// InheritanceMode controls how a child element responds to its parent's
// transform change during a transition. The zero value behaves like
// InheritIndependent.
type InheritanceMode string

const (
	InheritIndependent InheritanceMode = "independent" // ignore parent deltas entirely
	InheritFull        InheritanceMode = "inherit"     // add position and rotation, multiply scale
	InheritRelative    InheritanceMode = "relative"    // add position only
)

// LayoutKind identifies the layout container kind an element uses for its
// children. Gap properties only blend between layouts of the same kind.
type LayoutKind string

const (
	LayoutNone LayoutKind = "none" // absolute positioning
	LayoutFlex LayoutKind = "flex" // flexbox row/column
	LayoutGrid LayoutKind = "grid" // css grid
)

// TriggerKind describes how a state becomes active.
type TriggerKind string

const (
	TriggerLoad   TriggerKind = "load"   // on artboard load
	TriggerClick  TriggerKind = "click"  // click on the target element
	TriggerHover  TriggerKind = "hover"  // pointer enters the target element
	TriggerDelay  TriggerKind = "delay"  // after Trigger.Delay ms
	TriggerManual TriggerKind = "manual" // host application decides
)

// StaggerOrigin selects where a transition stagger starts counting from.
type StaggerOrigin string

const (
	StaggerStart  StaggerOrigin = "start"  // first element first
	StaggerEnd    StaggerOrigin = "end"    // last element first
	StaggerCenter StaggerOrigin = "center" // middle element first, spreading outward
	StaggerRandom StaggerOrigin = "random" // uniform random offset per element
)

// CascadeDirection orders sibling offsets inside a cascade.
type CascadeDirection string

const (
	CascadeNormal    CascadeDirection = "normal"     // index × amount
	CascadeReverse   CascadeDirection = "reverse"    // (n-1-index) × amount
	CascadeCenterOut CascadeDirection = "center-out" // distance from center × amount
	CascadeEdgesIn   CascadeDirection = "edges-in"   // inverse of center-out
)

// PlaybackMode controls how a chain repeats.
type PlaybackMode string

const (
	PlayOnce     PlaybackMode = "once"      // play steps once and complete
	PlayLoop     PlaybackMode = "loop"      // wrap around to the first step
	PlayPingPong PlaybackMode = "ping-pong" // alternate forward and backward cycles
	PlayInfinite PlaybackMode = "infinite"  // like loop, never completes
)

// looping reports whether the mode wraps elapsed time around the cycle.
func (m PlaybackMode) looping() bool {
	return m == PlayLoop || m == PlayInfinite || m == PlayPingPong
}

// Phase is the part of a chain step the playhead is in.
type Phase string

const (
	PhaseTransition Phase = "transition" // moving toward the step's state
	PhaseHold       Phase = "hold"       // dwelling on the step's state
)

// Window is a half-open time range in milliseconds.
type Window struct {
	Start float64 `json:"start" yaml:"start"`
	End   float64 `json:"end" yaml:"end"`
}

// Duration returns End - Start.
func (w Window) Duration() float64 {
	return w.End - w.Start
}

// Contains reports whether t lies in [Start, End).
func (w Window) Contains(t float64) bool {
	return t >= w.Start && t < w.End
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
