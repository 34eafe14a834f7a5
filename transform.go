package tableau

import "math"

// transformDelta is the part of an element's x/y/rotation/scale change
// attributable to the current transition. Children read their parent's
// delta during hierarchical interpolation.
type transformDelta struct {
	dx, dy   float64
	rotation float64
	scale    float64 // ratio, 1 = unchanged
}

// identityDelta leaves a child untouched.
var identityDelta = transformDelta{scale: 1}

// deltaBetween returns the change from the source snapshot to the current
// interpolated one. Rotation is the shortest arc, matching lerpAngle. A zero
// source scale yields a unit ratio.
func deltaBetween(from, cur *ElementSnapshot) transformDelta {
	d := transformDelta{
		dx:       cur.X - from.X,
		dy:       cur.Y - from.Y,
		rotation: normalizeAngle(cur.Rotation - from.Rotation),
		scale:    1,
	}
	if from.Scale != 0 {
		d.scale = cur.Scale / from.Scale
	}
	return d
}

// compose combines two deltas so grandchildren carry the whole chain.
func (d transformDelta) compose(o transformDelta) transformDelta {
	return transformDelta{
		dx:       d.dx + o.dx,
		dy:       d.dy + o.dy,
		rotation: d.rotation + o.rotation,
		scale:    d.scale * o.scale,
	}
}

// inherited returns the share of the parent delta a child takes on under
// the given mode.
func (d transformDelta) inherited(mode InheritanceMode) transformDelta {
	switch mode {
	case InheritFull:
		return d
	case InheritRelative:
		return transformDelta{dx: d.dx, dy: d.dy, scale: 1}
	default:
		return identityDelta
	}
}

// apply adds the delta to a snapshot in place.
func (d transformDelta) apply(e *ElementSnapshot) {
	e.X += d.dx
	e.Y += d.dy
	e.Rotation += d.rotation
	e.Scale *= d.scale
}

// --- Angles ---

// normalizeAngle wraps degrees into (-180, 180].
func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// lerpAngle interpolates along the shortest arc between two angles. The
// endpoints return the original values untouched.
func lerpAngle(from, to, t float64) float64 {
	if t == 0 {
		return from
	}
	if t == 1 {
		return to
	}
	start := normalizeAngle(from)
	delta := normalizeAngle(normalizeAngle(to) - start)
	return normalizeAngle(start + delta*t)
}
