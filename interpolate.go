package tableau

// Frame is the interpolated snapshot of every element at one instant, keyed
// by element id.
type Frame map[string]ElementSnapshot

// Entering elements grow from, and exiting elements shrink to, this share of
// their own scale.
const (
	enterScaleBaseline = 0.95
	exitScaleTarget    = 0.95
	discreteThreshold  = 0.5
)

// Clock places a sample in time. Elapsed, Delay and Duration share a unit,
// normally milliseconds since the transition started. Delay and Duration are
// the transition's base timing, used for elements without a schedule entry.
type Clock struct {
	Elapsed  float64
	Delay    float64
	Duration float64
}

// AtProgress returns a clock that samples the transition at linear progress
// p with no delay.
func AtProgress(p float64) Clock {
	return Clock{Elapsed: p, Duration: 1}
}

// localProgress maps elapsed time into [0,1] for a window starting at delay.
// Zero-length windows jump straight to 1 once the delay has passed.
func (c Clock) localProgress(delay, duration float64) float64 {
	t := c.Elapsed - delay
	if duration <= 0 {
		if t < 0 {
			return 0
		}
		return 1
	}
	return clamp01(t / duration)
}

// Interpolate computes every element's snapshot at the clock's instant.
//
// Elements present in both lists blend with the eased local progress.
// Elements only in to fade and scale in; elements only in from fade and
// shrink out. When sched is hierarchical, elements are visited parent
// before child and children pick up their parent's transform change
// according to their InheritanceMode.
func Interpolate(from, to []ElementSnapshot, clk Clock, easing EasingCurve, sched Schedule) Frame {
	els := transitionElements(from, to)
	fromIdx := indexElements(from)
	toIdx := indexElements(to)

	var order []int
	var deltas map[string]transformDelta
	if sched.Hierarchical {
		order = buildHierarchy(els).order
		deltas = make(map[string]transformDelta, len(els))
	} else {
		order = make([]int, len(els))
		for i := range order {
			order[i] = i
		}
	}

	frame := make(Frame, len(els))
	for _, i := range order {
		el := &els[i]

		timing, ok := sched.Entries[el.ID]
		if !ok {
			timing = ElementTiming{Delay: clk.Delay, Duration: clk.Duration, Easing: easing}
		}
		p := clk.localProgress(timing.Delay, timing.Duration)
		e := Evaluate(p, timing.Easing)

		var src, dst *ElementSnapshot
		if j, ok := fromIdx[el.ID]; ok {
			src = &from[j]
		}
		if j, ok := toIdx[el.ID]; ok {
			dst = &to[j]
		}

		var snap ElementSnapshot
		own := identityDelta
		switch {
		case src != nil && dst != nil:
			snap = blend(src, dst, p, e, timing, sched.Layout)
			own = deltaBetween(src, &snap)
		case dst != nil:
			snap = enter(dst, p, e)
		default:
			snap = exit(src, p, e)
		}

		if deltas != nil {
			parent := identityDelta
			if d, ok := deltas[el.ParentID]; ok && el.ParentID != el.ID {
				parent = d.inherited(el.Inheritance)
			}
			parent.apply(&snap)
			deltas[el.ID] = own.compose(parent)
		}
		frame[el.ID] = snap
	}
	return frame
}

// StateFrame returns the frame showing s at rest. A nil state is empty.
func StateFrame(s *AnimationState) Frame {
	return Interpolate(s.elements(), s.elements(), AtProgress(1), EasingCurve{}, Schedule{})
}

// InterpolateTransition samples a transition elapsed milliseconds after it
// was triggered. A zero Schedule uses the transition's base timing for
// every element.
func InterpolateTransition(tr *StateTransition, from, to *AnimationState, elapsed float64, sched Schedule) Frame {
	clk := Clock{Elapsed: elapsed, Delay: tr.Delay, Duration: tr.Duration}
	if sched.Layout == nil {
		sched.Layout = tr.Layout
	}
	return Interpolate(from.elements(), to.elements(), clk, tr.Easing, sched)
}

var blendedNumbers = [...]Property{
	PropX, PropY, PropWidth, PropHeight,
	PropOpacity, PropScale, PropTranslateX, PropTranslateY,
}

// blend interpolates an element present in both states. Identity and
// hierarchy fields come from the target.
func blend(a, b *ElementSnapshot, p, e float64, timing ElementTiming, layout *LayoutAnimation) ElementSnapshot {
	out := *b
	for _, prop := range blendedNumbers {
		if timing.animates(prop) {
			out.set(prop, lerp(a.Get(prop).Number, b.Get(prop).Number, e))
		}
	}
	if timing.animates(PropRotation) {
		out.Rotation = lerpAngle(a.Rotation, b.Rotation, e)
	}
	if timing.animates(PropVisible) && p < discreteThreshold {
		out.Visible = a.Visible
	}

	le := e
	if layout != nil && layout.Easing != nil {
		le = Evaluate(p, *layout.Easing)
	}
	out.Layout = blendLayout(a.Layout, b.Layout, p, le, layout, timing)
	return out
}

// blendLayout blends gap properties when both sides use the same layout
// kind. Anything structural (kind change, layout added or removed, layout
// animation disabled) switches at the midpoint.
func blendLayout(a, b *Layout, p, e float64, cfg *LayoutAnimation, timing ElementTiming) *Layout {
	animate := timing.animates(PropGap) || timing.animates(PropColumnGap) || timing.animates(PropRowGap)
	if !animate {
		return b.clone()
	}
	discrete := a == nil || b == nil || a.kind() != b.kind() || (cfg != nil && !cfg.Enabled)
	if discrete {
		if p < discreteThreshold {
			return a.clone()
		}
		return b.clone()
	}
	out := &Layout{Kind: b.Kind}
	out.Gap = blendGap(a.Gap, b.Gap, p, e, timing.animates(PropGap))
	out.ColumnGap = blendGap(a.ColumnGap, b.ColumnGap, p, e, timing.animates(PropColumnGap))
	out.RowGap = blendGap(a.RowGap, b.RowGap, p, e, timing.animates(PropRowGap))
	return out
}

func blendGap(a, b *float64, p, e float64, animate bool) *float64 {
	switch {
	case !animate:
		return cloneFloat(b)
	case a != nil && b != nil:
		return Float(lerp(*a, *b, e))
	case p < discreteThreshold:
		return cloneFloat(a)
	default:
		return cloneFloat(b)
	}
}

// enter fades an element in linearly and eases its scale up from a subtle
// baseline.
func enter(b *ElementSnapshot, p, e float64) ElementSnapshot {
	out := *b
	out.Layout = b.Layout.clone()
	out.Opacity = b.Opacity * p
	out.Scale = lerp(b.Scale*enterScaleBaseline, b.Scale, e)
	return out
}

// exit fades an element out linearly and eases its scale down slightly. It
// turns invisible once the exit completes.
func exit(a *ElementSnapshot, p, e float64) ElementSnapshot {
	out := *a
	out.Layout = a.Layout.clone()
	out.Opacity = a.Opacity * (1 - p)
	out.Scale = lerp(a.Scale, a.Scale*exitScaleTarget, e)
	if p >= 1 {
		out.Visible = false
	}
	return out
}
