package tableau

import (
	"reflect"
	"testing"
)

var linear = Preset(EaseLinear)

func TestInterpolateTransitionEaseOut(t *testing.T) {
	from := state("a", element("box", 0, 0))
	to := state("b", element("box", 100, 0))
	tr := &StateTransition{Duration: 300, Easing: Preset(EaseOut)}

	f := InterpolateTransition(tr, from, to, 150, Schedule{})
	want := 100 * Evaluate(0.5, Preset(EaseOut))
	assertNear(t, "x", f["box"].X, want)
	if f["box"].X <= 50 {
		t.Errorf("ease-out midpoint should lead linear: %v", f["box"].X)
	}
}

func TestInterpolateHonorsDelay(t *testing.T) {
	from := state("a", element("box", 0, 0))
	to := state("b", element("box", 100, 0))
	tr := &StateTransition{Duration: 200, Delay: 100, Easing: linear}

	assertNear(t, "before delay", InterpolateTransition(tr, from, to, 50, Schedule{})["box"].X, 0)
	assertNear(t, "mid", InterpolateTransition(tr, from, to, 200, Schedule{})["box"].X, 50)
	assertNear(t, "after", InterpolateTransition(tr, from, to, 1000, Schedule{})["box"].X, 100)
}

func TestInterpolateEndpoints(t *testing.T) {
	a := element("box", 3, 7)
	a.Opacity, a.Rotation, a.Scale = 0.2, 30, 0.5
	b := element("box", 11, -4)
	b.Opacity, b.Rotation, b.Scale = 0.9, 120, 2

	start := Interpolate([]ElementSnapshot{a}, []ElementSnapshot{b}, AtProgress(0), Preset(EaseInOut), Schedule{})["box"]
	end := Interpolate([]ElementSnapshot{a}, []ElementSnapshot{b}, AtProgress(1), Preset(EaseInOut), Schedule{})["box"]

	assertNear(t, "start x", start.X, 3)
	assertNear(t, "start opacity", start.Opacity, 0.2)
	assertNear(t, "start rotation", start.Rotation, 30)
	assertNear(t, "end x", end.X, 11)
	assertNear(t, "end y", end.Y, -4)
	assertNear(t, "end scale", end.Scale, 2)
	assertNear(t, "end rotation", end.Rotation, 120)
}

func TestInterpolateEnteringElement(t *testing.T) {
	f := Interpolate(nil, []ElementSnapshot{element("new", 0, 0)}, AtProgress(0.5), linear, Schedule{})
	got := f["new"]
	assertNear(t, "opacity", got.Opacity, 0.5)
	assertNear(t, "scale", got.Scale, 0.975)
	if !got.Visible {
		t.Error("entering element should be visible")
	}

	start := Interpolate(nil, []ElementSnapshot{element("new", 0, 0)}, AtProgress(0), linear, Schedule{})["new"]
	assertNear(t, "start opacity", start.Opacity, 0)
	assertNear(t, "start scale", start.Scale, 0.95)
}

func TestInterpolateEnterExitOpacityIgnoresEasing(t *testing.T) {
	els := []ElementSnapshot{element("e", 0, 0)}
	for _, name := range []string{EaseOut, EaseInOutBack} {
		curve := Preset(name)
		e := Evaluate(0.5, curve)

		in := Interpolate(nil, els, AtProgress(0.5), curve, Schedule{})["e"]
		assertNear(t, name+" entering opacity", in.Opacity, 0.5)
		assertNear(t, name+" entering scale", in.Scale, 0.95+0.05*e)

		out := Interpolate(els, nil, AtProgress(0.5), curve, Schedule{})["e"]
		assertNear(t, name+" exiting opacity", out.Opacity, 0.5)
		assertNear(t, name+" exiting scale", out.Scale, 1-0.05*e)
	}
}

func TestInterpolateExitingElement(t *testing.T) {
	from := []ElementSnapshot{element("old", 0, 0)}

	mid := Interpolate(from, nil, AtProgress(0.5), linear, Schedule{})["old"]
	assertNear(t, "mid opacity", mid.Opacity, 0.5)
	assertNear(t, "mid scale", mid.Scale, 0.975)
	if !mid.Visible {
		t.Error("exiting element should stay visible until the end")
	}

	end := Interpolate(from, nil, AtProgress(1), linear, Schedule{})["old"]
	assertNear(t, "end opacity", end.Opacity, 0)
	assertNear(t, "end scale", end.Scale, 0.95)
	if end.Visible {
		t.Error("exited element should be invisible")
	}
}

func TestInterpolateRotationShortestPath(t *testing.T) {
	tests := []struct {
		from, to, want float64
	}{
		{170, -170, 180},
		{-170, 170, 180},
		{0, 90, 45},
		{350, 10, 0},
		{10, 350, 0},
	}
	for _, tt := range tests {
		a := element("box", 0, 0)
		a.Rotation = tt.from
		b := element("box", 0, 0)
		b.Rotation = tt.to
		got := Interpolate([]ElementSnapshot{a}, []ElementSnapshot{b}, AtProgress(0.5), linear, Schedule{})["box"]
		assertNear(t, "rotation", got.Rotation, tt.want)
	}
}

func TestInterpolateVisibilitySwitchesAtMidpoint(t *testing.T) {
	a := element("box", 0, 0)
	a.Visible = false
	b := element("box", 0, 0)

	for _, p := range []float64{0, 0.25, 0.49} {
		if Interpolate([]ElementSnapshot{a}, []ElementSnapshot{b}, AtProgress(p), linear, Schedule{})["box"].Visible {
			t.Errorf("p=%v: expected source visibility", p)
		}
	}
	for _, p := range []float64{0.5, 0.75, 1} {
		if !Interpolate([]ElementSnapshot{a}, []ElementSnapshot{b}, AtProgress(p), linear, Schedule{})["box"].Visible {
			t.Errorf("p=%v: expected target visibility", p)
		}
	}
}

// --- layout ---

func withLayout(id string, kind LayoutKind, gap float64) ElementSnapshot {
	e := element(id, 0, 0)
	e.Layout = &Layout{Kind: kind, Gap: Float(gap)}
	return e
}

func TestInterpolateLayoutGapBlends(t *testing.T) {
	from := []ElementSnapshot{withLayout("row", LayoutFlex, 10)}
	to := []ElementSnapshot{withLayout("row", LayoutFlex, 30)}

	got := Interpolate(from, to, AtProgress(0.5), linear, Schedule{})["row"]
	if got.Layout == nil || got.Layout.Gap == nil {
		t.Fatal("expected blended gap")
	}
	assertNear(t, "gap", *got.Layout.Gap, 20)
	if got.Layout.RowGap != nil {
		t.Errorf("row gap should stay unset, got %v", *got.Layout.RowGap)
	}
	if *from[0].Layout.Gap != 10 || *to[0].Layout.Gap != 30 {
		t.Error("inputs were mutated")
	}
}

func TestInterpolateLayoutKindChangeIsDiscrete(t *testing.T) {
	from := []ElementSnapshot{withLayout("box", LayoutFlex, 10)}
	to := []ElementSnapshot{withLayout("box", LayoutGrid, 30)}

	before := Interpolate(from, to, AtProgress(0.4), linear, Schedule{})["box"]
	if before.Layout.Kind != LayoutFlex || *before.Layout.Gap != 10 {
		t.Errorf("before midpoint = %+v, want source layout", before.Layout)
	}
	after := Interpolate(from, to, AtProgress(0.6), linear, Schedule{})["box"]
	if after.Layout.Kind != LayoutGrid || *after.Layout.Gap != 30 {
		t.Errorf("after midpoint = %+v, want target layout", after.Layout)
	}
}

func TestInterpolateLayoutAnimationDisabled(t *testing.T) {
	from := []ElementSnapshot{withLayout("row", LayoutFlex, 10)}
	to := []ElementSnapshot{withLayout("row", LayoutFlex, 30)}
	sched := Schedule{Layout: &LayoutAnimation{Enabled: false}}

	got := Interpolate(from, to, AtProgress(0.25), linear, sched)["row"]
	if *got.Layout.Gap != 10 {
		t.Errorf("gap = %v, want discrete source value 10", *got.Layout.Gap)
	}
}

func TestInterpolateLayoutEasingOverride(t *testing.T) {
	from := []ElementSnapshot{withLayout("row", LayoutFlex, 0)}
	to := []ElementSnapshot{withLayout("row", LayoutFlex, 100)}
	ein := Preset(EaseIn)
	sched := Schedule{Layout: &LayoutAnimation{Enabled: true, Easing: &ein}}

	got := Interpolate(from, to, AtProgress(0.5), linear, sched)["row"]
	assertNear(t, "gap", *got.Layout.Gap, 100*Evaluate(0.5, ein))
}

// --- inheritance ---

func movingParent(inheritance InheritanceMode) (from, to []ElementSnapshot) {
	p0 := child("parent", "")
	p1 := child("parent", "")
	p1.X, p1.Rotation = 100, 90

	c := child("kid", "parent")
	c.Inheritance = inheritance
	g := child("grandkid", "kid")
	g.Inheritance = inheritance

	return []ElementSnapshot{p0, c, g}, []ElementSnapshot{p1, c, g}
}

func TestInterpolateInheritanceModes(t *testing.T) {
	tests := []struct {
		mode      InheritanceMode
		wantX     float64
		wantAngle float64
	}{
		{InheritFull, 50, 45},
		{InheritRelative, 50, 0},
		{InheritIndependent, 0, 0},
		{"", 0, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			from, to := movingParent(tt.mode)
			f := Interpolate(from, to, AtProgress(0.5), linear, Schedule{Hierarchical: true})
			assertNear(t, "parent x", f["parent"].X, 50)
			assertNear(t, "kid x", f["kid"].X, tt.wantX)
			assertNear(t, "kid rotation", f["kid"].Rotation, tt.wantAngle)
			assertNear(t, "grandkid x", f["grandkid"].X, tt.wantX)
			assertNear(t, "grandkid rotation", f["grandkid"].Rotation, tt.wantAngle)
		})
	}
}

func TestInterpolateInheritanceComposesOwnMotion(t *testing.T) {
	from, to := movingParent(InheritFull)
	to[1].X = 20 // kid moves by itself too

	f := Interpolate(from, to, AtProgress(0.5), linear, Schedule{Hierarchical: true})
	assertNear(t, "kid x", f["kid"].X, 10+50)
	// grandkid inherits both the parent's and the kid's motion.
	assertNear(t, "grandkid x", f["grandkid"].X, 60)
}

func TestInterpolateInheritanceScale(t *testing.T) {
	p0 := child("parent", "")
	p1 := child("parent", "")
	p1.Scale = 3
	c := child("kid", "parent")
	c.Inheritance = InheritFull

	f := Interpolate([]ElementSnapshot{p0, c}, []ElementSnapshot{p1, c}, AtProgress(0.5), linear, Schedule{Hierarchical: true})
	assertNear(t, "parent scale", f["parent"].Scale, 2)
	assertNear(t, "kid scale", f["kid"].Scale, 2)
}

func TestInterpolateFlatScheduleIgnoresParents(t *testing.T) {
	from, to := movingParent(InheritFull)
	f := Interpolate(from, to, AtProgress(0.5), linear, Schedule{})
	assertNear(t, "kid x", f["kid"].X, 0)
}

// --- schedule entries ---

func TestInterpolatePropertySubset(t *testing.T) {
	a := element("box", 0, 0)
	b := element("box", 100, 100)
	b.Opacity = 0
	sched := Schedule{Entries: map[string]ElementTiming{
		"box": {Duration: 1, Easing: linear, Properties: []Property{PropX}},
	}}

	got := Interpolate([]ElementSnapshot{a}, []ElementSnapshot{b}, AtProgress(0.5), linear, sched)["box"]
	assertNear(t, "x", got.X, 50)
	assertNear(t, "y", got.Y, 100)
	assertNear(t, "opacity", got.Opacity, 0)
}

func TestInterpolatePerElementTiming(t *testing.T) {
	from := []ElementSnapshot{element("fast", 0, 0), element("slow", 0, 0)}
	to := []ElementSnapshot{element("fast", 100, 0), element("slow", 100, 0)}
	sched := Schedule{Entries: map[string]ElementTiming{
		"fast": {Duration: 100, Easing: linear},
		"slow": {Delay: 100, Duration: 400, Easing: linear},
	}}

	f := Interpolate(from, to, Clock{Elapsed: 200}, linear, sched)
	assertNear(t, "fast", f["fast"].X, 100)
	assertNear(t, "slow", f["slow"].X, 25)
}

func TestInterpolateZeroDuration(t *testing.T) {
	from := []ElementSnapshot{element("box", 0, 0)}
	to := []ElementSnapshot{element("box", 100, 0)}

	assertNear(t, "at start", Interpolate(from, to, Clock{Elapsed: 0}, linear, Schedule{})["box"].X, 100)
	assertNear(t, "before delay", Interpolate(from, to, Clock{Elapsed: 5, Delay: 10}, linear, Schedule{})["box"].X, 0)
}

func TestInterpolateDeterministic(t *testing.T) {
	from := state("a", sampleTree()...)
	to := state("b", sampleTree()...)
	for i := range to.Elements {
		to.Elements[i].X = float64(i * 40)
		to.Elements[i].Rotation = float64(i * 25)
		to.Elements[i].Inheritance = InheritFull
	}
	tr := &StateTransition{
		Duration: 400,
		Easing:   Preset(EaseInOutCubic),
		Cascade:  &CascadeConfig{Enabled: true, DelayPerLevel: 60, DurationScale: 0.8},
	}
	sched := BuildSchedule(tr, from, to, nil)

	first := InterpolateTransition(tr, from, to, 230, sched)
	for range 10 {
		if got := InterpolateTransition(tr, from, to, 230, sched); !reflect.DeepEqual(got, first) {
			t.Fatal("interpolation is not deterministic")
		}
	}
}

func TestStateFrame(t *testing.T) {
	frame := StateFrame(state("s", element("a", 10, 20), element("b", 30, 40)))
	if len(frame) != 2 {
		t.Fatalf("frame has %d elements, want 2", len(frame))
	}
	if got := frame["b"]; got.X != 30 || got.Y != 40 || got.Scale != 1 {
		t.Errorf("b = %+v", got)
	}
	if got := StateFrame(nil); len(got) != 0 {
		t.Errorf("nil state frame = %v, want empty", got)
	}
}
