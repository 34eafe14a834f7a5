package tableau

import (
	"math/rand/v2"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionPlayer plays one transition in real time. Create one with
// NewTransitionPlayer and call Update(dt) each frame, then read Frame.
// The schedule is built once up front; Frame stays a pure function of the
// player's elapsed time.
type TransitionPlayer struct {
	Transition *StateTransition
	From, To   *AnimationState
	Schedule   Schedule
	Done       bool

	clock   *gween.Tween
	span    float64
	elapsed float64
}

// NewTransitionPlayer builds the transition's schedule and a millisecond
// clock covering its full span. rng only matters for random staggers.
func NewTransitionPlayer(tr *StateTransition, from, to *AnimationState, rng *rand.Rand) *TransitionPlayer {
	sched := BuildSchedule(tr, from, to, rng)
	span := TransitionSpan(tr, sched)
	return &TransitionPlayer{
		Transition: tr,
		From:       from,
		To:         to,
		Schedule:   sched,
		Done:       span <= 0,
		clock:      gween.New(0, float32(span), float32(span), ease.Linear),
		span:       span,
	}
}

// Update advances the player by dt seconds.
func (p *TransitionPlayer) Update(dt float32) {
	if p.Done {
		return
	}
	val, finished := p.clock.Update(dt * 1000)
	p.elapsed = float64(val)
	if finished {
		p.elapsed = p.span
		p.Done = true
	}
}

// Seek jumps to ms after the trigger. Seeking back before the end clears
// Done.
func (p *TransitionPlayer) Seek(ms float64) {
	if ms < 0 {
		ms = 0
	}
	if ms >= p.span {
		p.elapsed = p.span
		p.Done = true
		return
	}
	val, _ := p.clock.Set(float32(ms))
	p.elapsed = float64(val)
	p.Done = false
}

// Reset rewinds the player to the trigger instant.
func (p *TransitionPlayer) Reset() {
	p.clock.Reset()
	p.elapsed = 0
	p.Done = p.span <= 0
}

// Elapsed returns the playhead in ms.
func (p *TransitionPlayer) Elapsed() float64 { return p.elapsed }

// Span returns the total running time in ms.
func (p *TransitionPlayer) Span() float64 { return p.span }

// Frame interpolates the transition at the current playhead.
func (p *TransitionPlayer) Frame() Frame {
	if p.Done {
		return InterpolateTransition(p.Transition, p.From, p.To, p.span, p.Schedule)
	}
	return InterpolateTransition(p.Transition, p.From, p.To, p.elapsed, p.Schedule)
}

// ChainPlayer plays a chain in real time. It owns the wall-clock elapsed
// time, tracks ping-pong half-cycles for Progress and stops after
// MaxIterations cycles.
type ChainPlayer struct {
	Chain  *AnimationChain
	Timing ChainTiming
	States map[string]*AnimationState
	Done   bool

	elapsed float64 // ms, unscaled by chain speed
}

// NewChainPlayer precomputes the chain timing.
func NewChainPlayer(chain *AnimationChain, states map[string]*AnimationState) *ChainPlayer {
	p := &ChainPlayer{Chain: chain, Timing: ComputeChainTiming(chain), States: states}
	p.Done = p.Progress().IsComplete
	return p
}

// Update advances the player by dt seconds.
func (p *ChainPlayer) Update(dt float32) {
	if p.Done {
		return
	}
	p.elapsed += float64(dt) * 1000
	p.Done = p.capped() || p.Progress().IsComplete
}

// Seek jumps to ms of wall-clock playback.
func (p *ChainPlayer) Seek(ms float64) {
	if ms < 0 {
		ms = 0
	}
	p.elapsed = ms
	p.Done = p.capped() || p.Progress().IsComplete
}

// Elapsed returns the wall-clock playhead in ms.
func (p *ChainPlayer) Elapsed() float64 { return p.elapsed }

// Iteration returns the number of completed cycles.
func (p *ChainPlayer) Iteration() int {
	return Iteration(p.Chain, p.Timing, p.elapsed)
}

// Reversing reports whether a ping-pong chain is in a backward half-cycle.
func (p *ChainPlayer) Reversing() bool {
	return p.Chain != nil && p.Chain.mode() == PlayPingPong && p.Iteration()%2 == 1
}

func (p *ChainPlayer) capped() bool {
	return p.Chain != nil && p.Chain.mode().looping() &&
		p.Chain.MaxIterations > 0 && p.Iteration() >= p.Chain.MaxIterations
}

// Progress returns the chain position at the current playhead. Once the
// iteration cap is reached the pose where the last cycle ended is held:
// the final step for forward cycles, the first step for a ping-pong cycle
// that ended in reverse.
func (p *ChainPlayer) Progress() ChainProgress {
	if !p.capped() {
		return Progress(p.Chain, p.Timing, p.elapsed, p.Reversing())
	}
	once := *p.Chain
	once.Mode = PlayOnce
	if p.Chain.mode() == PlayPingPong && p.Chain.MaxIterations%2 == 0 {
		prog := Progress(&once, p.Timing, 0, false)
		prog.IsComplete = true
		return prog
	}
	return Progress(&once, p.Timing, p.Timing.CycleDuration/once.speed(), false)
}

// Frame interpolates the chain at the current playhead.
func (p *ChainPlayer) Frame() Frame {
	return sampleChainAt(p.Chain, p.States, p.Progress())
}
