package tableau

import (
	"math"
	"testing"
)

func moveTransition() (*StateTransition, *AnimationState, *AnimationState) {
	from := state("a", element("box", 0, 0))
	to := state("b", element("box", 100, 0))
	tr := &StateTransition{ID: "t", FromStateID: "a", ToStateID: "b", Duration: 1000, Easing: linear}
	return tr, from, to
}

func TestTransitionPlayerReachesTarget(t *testing.T) {
	tr, from, to := moveTransition()
	p := NewTransitionPlayer(tr, from, to, nil)

	// Exact halves avoid float32 accumulation drift.
	p.Update(0.5)
	if p.Done {
		t.Fatal("should not be done halfway")
	}
	if x := p.Frame()["box"].X; math.Abs(x-50) > 0.5 {
		t.Errorf("halfway X = %f, want ~50", x)
	}

	p.Update(0.5)
	if !p.Done {
		t.Fatal("expected Done after full span")
	}
	if x := p.Frame()["box"].X; x != 100 {
		t.Errorf("X = %f, want 100", x)
	}

	// Update after done is a no-op.
	p.Update(1)
	if p.Elapsed() != 1000 {
		t.Errorf("elapsed = %v, want 1000", p.Elapsed())
	}
}

func TestTransitionPlayerSpanIncludesSchedule(t *testing.T) {
	tr, from, to := moveTransition()
	tr.Delay = 200
	to.Elements = append(to.Elements, element("late", 0, 0))
	tr.Overrides = []ElementOverride{{ElementID: "late", Delay: Float(1500), Duration: Float(500)}}

	p := NewTransitionPlayer(tr, from, to, nil)
	if p.Span() != 2000 {
		t.Errorf("span = %v, want 2000", p.Span())
	}
}

func TestTransitionPlayerSeekAndReset(t *testing.T) {
	tr, from, to := moveTransition()
	p := NewTransitionPlayer(tr, from, to, nil)

	p.Seek(5000)
	if !p.Done || p.Elapsed() != 1000 {
		t.Errorf("seek past end: done=%v elapsed=%v", p.Done, p.Elapsed())
	}

	p.Seek(250)
	if p.Done {
		t.Error("seeking back should clear Done")
	}
	if x := p.Frame()["box"].X; math.Abs(x-25) > 0.5 {
		t.Errorf("X after seek = %f, want ~25", x)
	}

	p.Seek(-10)
	if p.Elapsed() != 0 {
		t.Errorf("negative seek elapsed = %v", p.Elapsed())
	}

	p.Update(0.5)
	p.Reset()
	if p.Elapsed() != 0 || p.Done {
		t.Errorf("after reset: elapsed=%v done=%v", p.Elapsed(), p.Done)
	}
}

func TestTransitionPlayerZeroSpan(t *testing.T) {
	tr, from, to := moveTransition()
	tr.Duration = 0
	p := NewTransitionPlayer(tr, from, to, nil)
	if !p.Done {
		t.Fatal("zero-length transition should start done")
	}
	if x := p.Frame()["box"].X; x != 100 {
		t.Errorf("X = %f, want 100", x)
	}
}

func TestTransitionPlayerUpdateZeroAlloc(t *testing.T) {
	tr, from, to := moveTransition()
	tr.Duration = 1e9
	p := NewTransitionPlayer(tr, from, to, nil)

	p.Update(0.001)
	allocs := testing.AllocsPerRun(100, func() {
		p.Update(0.001)
	})
	if allocs > 0 {
		t.Errorf("Update allocated %.0f times per run", allocs)
	}
}

// --- ChainPlayer ---

func TestChainPlayerOnce(t *testing.T) {
	p := NewChainPlayer(twoStepChain(PlayOnce), chainStates())
	if p.Done {
		t.Fatal("fresh player should not be done")
	}

	p.Update(0.25)
	prog := p.Progress()
	if prog.StepIndex != 0 || prog.Phase != PhaseTransition {
		t.Errorf("progress = %+v", prog)
	}

	p.Update(0.5)
	p.Update(0.25)
	if !p.Done {
		t.Errorf("expected done after one cycle, elapsed %v", p.Elapsed())
	}
	if x := p.Frame()["box"].X; x != 200 {
		t.Errorf("X = %f, want 200", x)
	}
}

func TestChainPlayerLoopMaxIterations(t *testing.T) {
	chain := twoStepChain(PlayLoop)
	chain.MaxIterations = 2
	p := NewChainPlayer(chain, chainStates())

	p.Seek(1500)
	if p.Done || p.Iteration() != 1 {
		t.Fatalf("done=%v iteration=%d", p.Done, p.Iteration())
	}

	p.Seek(2000)
	if !p.Done {
		t.Fatal("expected done at the iteration cap")
	}
	prog := p.Progress()
	if !prog.IsComplete || prog.StepIndex != 1 || prog.StepProgress != 1 {
		t.Errorf("capped progress = %+v", prog)
	}
	if x := p.Frame()["box"].X; x != 200 {
		t.Errorf("capped X = %f, want 200", x)
	}
}

func TestChainPlayerPingPong(t *testing.T) {
	p := NewChainPlayer(twoStepChain(PlayPingPong), chainStates())

	p.Seek(150)
	if p.Reversing() {
		t.Error("first cycle plays forward")
	}
	forward := p.Frame()["box"].X

	p.Seek(1850)
	if !p.Reversing() {
		t.Error("second cycle plays backward")
	}
	if got := p.Frame()["box"].X; math.Abs(got-forward) > epsilon {
		t.Errorf("mirrored X = %v, want %v", got, forward)
	}
}

func TestChainPlayerPingPongCapHoldsStart(t *testing.T) {
	chain := twoStepChain(PlayPingPong)
	chain.MaxIterations = 2
	p := NewChainPlayer(chain, chainStates())

	p.Seek(2500)
	if !p.Done {
		t.Fatal("expected done")
	}
	if x := p.Frame()["box"].X; x != 0 {
		t.Errorf("X = %v, want start pose 0", x)
	}
}

func TestChainPlayerInfiniteNeverDone(t *testing.T) {
	p := NewChainPlayer(twoStepChain(PlayInfinite), chainStates())
	for range 100 {
		p.Update(0.1)
	}
	if p.Done {
		t.Error("infinite chain finished")
	}
	if p.Iteration() != 10 {
		t.Errorf("iteration = %d, want 10", p.Iteration())
	}
}

func TestChainPlayerEmpty(t *testing.T) {
	p := NewChainPlayer(&AnimationChain{StartStateID: "a"}, chainStates())
	if !p.Done {
		t.Error("empty chain should start done")
	}
	if x := p.Frame()["box"].X; x != 0 {
		t.Errorf("X = %v", x)
	}
}
