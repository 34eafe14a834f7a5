package tableau

import (
	"math"
	"time"
)

// ChainStep moves the chain to StateID, then holds there.
type ChainStep struct {
	StateID  string       `json:"stateId" yaml:"stateId"`
	Duration float64      `json:"duration" yaml:"duration"` // ms
	Delay    float64      `json:"delay" yaml:"delay"`       // ms before the transition starts
	HoldTime float64      `json:"holdTime" yaml:"holdTime"` // ms to dwell after arriving
	Easing   *EasingCurve `json:"easing,omitempty" yaml:"easing,omitempty"`
}

// AnimationChain is an ordered, auto-playing sequence of state transitions.
type AnimationChain struct {
	ID            string       `json:"id" yaml:"id"`
	Name          string       `json:"name" yaml:"name"`
	Steps         []ChainStep  `json:"steps" yaml:"steps"`
	StartStateID  string       `json:"startStateId" yaml:"startStateId"`
	Mode          PlaybackMode `json:"mode" yaml:"mode"`
	MaxIterations int          `json:"maxIterations,omitempty" yaml:"maxIterations,omitempty"` // 0 = unbounded
	Speed         float64      `json:"speed,omitempty" yaml:"speed,omitempty"`                 // <= 0 means 1

	CreatedAt time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

func (c *AnimationChain) speed() float64 {
	if c.Speed <= 0 {
		return 1
	}
	return c.Speed
}

func (c *AnimationChain) mode() PlaybackMode {
	if c.Mode == "" {
		return PlayOnce
	}
	return c.Mode
}

// StepWindow is one step's cumulative timing inside a cycle, in ms.
type StepWindow struct {
	Start         float64 `json:"start"`
	TransitionEnd float64 `json:"transitionEnd"`
	HoldEnd       float64 `json:"holdEnd"`
}

// ChainTiming is the precomputed step schedule of a chain.
type ChainTiming struct {
	Windows       []StepWindow `json:"windows"`
	CycleDuration float64      `json:"cycleDuration"`
}

// ComputeChainTiming lays the steps end to end. Each transition starts at
// the previous hold end plus the step delay. Negative times count as zero.
func ComputeChainTiming(chain *AnimationChain) ChainTiming {
	if chain == nil {
		return ChainTiming{}
	}
	timing := ChainTiming{Windows: make([]StepWindow, len(chain.Steps))}
	var t float64
	for i, s := range chain.Steps {
		start := t + math.Max(s.Delay, 0)
		end := start + math.Max(s.Duration, 0)
		hold := end + math.Max(s.HoldTime, 0)
		timing.Windows[i] = StepWindow{Start: start, TransitionEnd: end, HoldEnd: hold}
		t = hold
	}
	timing.CycleDuration = t
	return timing
}

// ChainProgress is where the playhead sits inside a chain.
type ChainProgress struct {
	StepIndex    int     `json:"stepIndex"`
	StepProgress float64 `json:"stepProgress"`
	Phase        Phase   `json:"phase"`
	IsComplete   bool    `json:"isComplete"`
}

// Progress is a pure function of elapsed time: it never advances internal
// state, so seeking and scrubbing are exact.
//
// Elapsed is scaled by the chain speed. Looping modes wrap it by the cycle
// duration; in ping-pong mode a caller-reported reverse half-cycle plays the
// cycle backwards. Only PlayOnce ever reports completion. An empty chain
// reports a completed hold on step 0.
func Progress(chain *AnimationChain, timing ChainTiming, elapsed float64, reversing bool) ChainProgress {
	n := len(timing.Windows)
	if chain == nil || len(chain.Steps) == 0 || n == 0 {
		return ChainProgress{StepIndex: 0, StepProgress: 0, Phase: PhaseHold, IsComplete: true}
	}

	mode := chain.mode()
	t := math.Max(elapsed*chain.speed(), 0)
	if cycle := timing.CycleDuration; mode.looping() && cycle > 0 {
		t = math.Mod(t, cycle)
		if mode == PlayPingPong && reversing {
			t = cycle - t
		}
	}

	for i, w := range timing.Windows {
		if t < w.TransitionEnd {
			var p float64 // zero-length windows are only reached during their delay
			if span := w.TransitionEnd - w.Start; span > 0 {
				p = clamp01((t - w.Start) / span)
			}
			return ChainProgress{StepIndex: i, StepProgress: p, Phase: PhaseTransition}
		}
		if t < w.HoldEnd {
			return ChainProgress{StepIndex: i, StepProgress: 1, Phase: PhaseHold}
		}
	}
	return ChainProgress{StepIndex: n - 1, StepProgress: 1, Phase: PhaseHold, IsComplete: mode == PlayOnce}
}

// Iteration returns how many full cycles have elapsed. Ping-pong callers use
// an odd iteration as the reverse half-cycle.
func Iteration(chain *AnimationChain, timing ChainTiming, elapsed float64) int {
	if chain == nil || timing.CycleDuration <= 0 || elapsed <= 0 {
		return 0
	}
	return int(math.Floor(elapsed * chain.speed() / timing.CycleDuration))
}

// SampleChain interpolates the chain's current step. The step moves from the
// previous step's state (the start state for step 0) to its own state with
// the step easing, or "ease" when the step has none.
func SampleChain(chain *AnimationChain, timing ChainTiming, states map[string]*AnimationState, elapsed float64, reversing bool) Frame {
	return sampleChainAt(chain, states, Progress(chain, timing, elapsed, reversing))
}

func sampleChainAt(chain *AnimationChain, states map[string]*AnimationState, prog ChainProgress) Frame {
	if chain == nil || len(chain.Steps) == 0 {
		var start *AnimationState
		if chain != nil {
			start = states[chain.StartStateID]
		}
		return StateFrame(start)
	}
	idx := prog.StepIndex
	if idx >= len(chain.Steps) {
		idx = len(chain.Steps) - 1
	}
	step := chain.Steps[idx]
	fromID := chain.StartStateID
	if idx > 0 {
		fromID = chain.Steps[idx-1].StateID
	}
	var easing EasingCurve
	if step.Easing != nil {
		easing = *step.Easing
	}
	from, to := states[fromID], states[step.StateID]
	return Interpolate(from.elements(), to.elements(), AtProgress(prog.StepProgress), easing, Schedule{})
}
