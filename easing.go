package tableau

import (
	"fmt"
	"math"
	"sort"

	"github.com/tanema/gween/ease"
)

// CurveKind tags which representation of an EasingCurve is authoritative.
type CurveKind string

const (
	CurvePreset CurveKind = "preset" // named preset, resolved through the preset table
	CurveBezier CurveKind = "bezier" // custom cubic-bezier control points
	CurveSpring CurveKind = "spring" // spring parameters, previewed with a substitute curve
)

// Bezier is a cubic-bezier timing curve with fixed endpoints (0,0) and (1,1),
// using the same control point convention as CSS cubic-bezier().
type Bezier struct {
	X1, Y1, X2, Y2 float64
}

// Spring describes a spring animation. The engine does not integrate it; see
// SpringSubstitute and Spring.Bezier.
type Spring struct {
	Stiffness float64 `json:"stiffness" yaml:"stiffness"`
	Damping   float64 `json:"damping" yaml:"damping"`
	Mass      float64 `json:"mass" yaml:"mass"`
}

// EasingCurve is a closed sum over the three curve representations. Kind
// selects the authoritative one. Preset is always kept as a fallback label,
// even for custom and spring curves. The zero value is the "ease" preset.
type EasingCurve struct {
	Kind   CurveKind
	Preset string
	Bezier Bezier
	Spring Spring
}

// Preset names.
const (
	EaseLinear       = "linear"
	Ease             = "ease"
	EaseIn           = "ease-in"
	EaseOut          = "ease-out"
	EaseInOut        = "ease-in-out"
	EaseInSine       = "ease-in-sine"
	EaseOutSine      = "ease-out-sine"
	EaseInOutSine    = "ease-in-out-sine"
	EaseInQuad       = "ease-in-quad"
	EaseOutQuad      = "ease-out-quad"
	EaseInOutQuad    = "ease-in-out-quad"
	EaseInCubic      = "ease-in-cubic"
	EaseOutCubic     = "ease-out-cubic"
	EaseInOutCubic   = "ease-in-out-cubic"
	EaseInBack       = "ease-in-back"
	EaseOutBack      = "ease-out-back"
	EaseInOutBack    = "ease-in-out-back"
	defaultPresetKey = Ease
)

var presets = map[string]Bezier{
	EaseLinear:     {0, 0, 1, 1},
	Ease:           {0.25, 0.1, 0.25, 1},
	EaseIn:         {0.42, 0, 1, 1},
	EaseOut:        {0, 0, 0.58, 1},
	EaseInOut:      {0.42, 0, 0.58, 1},
	EaseInSine:     {0.12, 0, 0.39, 0},
	EaseOutSine:    {0.61, 1, 0.88, 1},
	EaseInOutSine:  {0.37, 0, 0.63, 1},
	EaseInQuad:     {0.11, 0, 0.5, 0},
	EaseOutQuad:    {0.5, 1, 0.89, 1},
	EaseInOutQuad:  {0.45, 0, 0.55, 1},
	EaseInCubic:    {0.32, 0, 0.67, 0},
	EaseOutCubic:   {0.33, 1, 0.68, 1},
	EaseInOutCubic: {0.65, 0, 0.35, 1},
	EaseInBack:     {0.36, 0, 0.66, -0.56},
	EaseOutBack:    {0.34, 1.56, 0.64, 1},
	EaseInOutBack:  {0.68, -0.6, 0.32, 1.6},
}

// SpringSubstitute is the fixed curve used to preview spring easings.
var SpringSubstitute = Bezier{0.34, 1.56, 0.64, 1}

// PresetNames returns every known preset name, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsPreset reports whether name is a known preset.
func IsPreset(name string) bool {
	_, ok := presets[name]
	return ok
}

// Preset returns a preset curve.
func Preset(name string) EasingCurve {
	return EasingCurve{Kind: CurvePreset, Preset: name}
}

// CustomBezier returns a custom curve. The fallback label is "ease".
func CustomBezier(x1, y1, x2, y2 float64) EasingCurve {
	return EasingCurve{Kind: CurveBezier, Preset: defaultPresetKey, Bezier: Bezier{x1, y1, x2, y2}}
}

// SpringCurve returns a spring curve. The fallback label is "ease-out".
func SpringCurve(s Spring) EasingCurve {
	return EasingCurve{Kind: CurveSpring, Preset: EaseOut, Spring: s}
}

// Resolve reduces the curve to four control numbers. Unknown presets fall
// back to "ease".
func (c EasingCurve) Resolve() Bezier {
	switch c.Kind {
	case CurveBezier:
		return c.Bezier
	case CurveSpring:
		return SpringSubstitute
	}
	if b, ok := presets[c.Preset]; ok {
		return b
	}
	return presets[defaultPresetKey]
}

// Label returns the preset name shown for the curve.
func (c EasingCurve) Label() string {
	if c.Preset == "" {
		return defaultPresetKey
	}
	return c.Preset
}

// String formats the curve for tables and logs.
func (c EasingCurve) String() string {
	switch c.Kind {
	case CurveBezier:
		return c.Bezier.String()
	case CurveSpring:
		return fmt.Sprintf("spring(%g, %g, %g)", c.Spring.Stiffness, c.Spring.Damping, c.Spring.Mass)
	}
	return c.Label()
}

// Evaluate maps linear progress to eased progress. Values outside [0,1] are
// possible for overshooting curves; progress at or beyond the ends returns
// exactly 0 or 1.
func Evaluate(progress float64, curve EasingCurve) float64 {
	return curve.Resolve().Solve(progress)
}

// TweenFunc adapts the curve to a gween easing function so gween tweens can
// be driven with the same math the engine uses.
func (c EasingCurve) TweenFunc() ease.TweenFunc {
	b := c.Resolve()
	return func(t, begin, change, d float32) float32 {
		if d <= 0 {
			return begin + change
		}
		return begin + change*float32(b.Solve(float64(t/d)))
	}
}

// --- Bezier solving ---

const (
	newtonIterations = 8
	solveEpsilon     = 1e-6
	bisectIterations = 64
)

// IsLinear reports whether the curve degenerates to the identity.
func (b Bezier) IsLinear() bool {
	return b.X1 == b.Y1 && b.X2 == b.Y2
}

// Array returns the control points as [x1, y1, x2, y2].
func (b Bezier) Array() [4]float64 {
	return [4]float64{b.X1, b.Y1, b.X2, b.Y2}
}

// String returns a CSS cubic-bezier() expression.
func (b Bezier) String() string {
	return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", b.X1, b.Y1, b.X2, b.Y2)
}

// Solve returns Y for the given X. It short-circuits the ends and linear
// curves, otherwise finds t with Newton–Raphson and falls back to bisection.
func (b Bezier) Solve(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	if b.IsLinear() {
		return x
	}
	return sampleCurve(b.Y1, b.Y2, b.solveT(x))
}

// sampleCurve evaluates one axis of the cubic with endpoints 0 and 1:
// 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³, in Horner form.
func sampleCurve(p1, p2, t float64) float64 {
	c := 3 * p1
	bb := 3*(p2-p1) - c
	a := 1 - c - bb
	return ((a*t+bb)*t + c) * t
}

func sampleDerivative(p1, p2, t float64) float64 {
	c := 3 * p1
	bb := 3*(p2-p1) - c
	a := 1 - c - bb
	return (3*a*t+2*bb)*t + c
}

func (b Bezier) solveT(x float64) float64 {
	t := x
	for i := 0; i < newtonIterations; i++ {
		err := sampleCurve(b.X1, b.X2, t) - x
		if math.Abs(err) < solveEpsilon {
			return t
		}
		d := sampleDerivative(b.X1, b.X2, t)
		if math.Abs(d) < solveEpsilon {
			break
		}
		t -= err / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < bisectIterations; i++ {
		v := sampleCurve(b.X1, b.X2, t)
		if math.Abs(v-x) < solveEpsilon {
			return t
		}
		if x > v {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// --- Spring mapping ---

const (
	defaultSpringStiffness = 100
	defaultSpringDamping   = 10
	defaultSpringMass      = 1
)

// DampingRatio returns ζ = damping / (2·√(stiffness·mass)). Non-positive
// parameters take the defaults 100/10/1.
func (s Spring) DampingRatio() float64 {
	k, c, m := s.Stiffness, s.Damping, s.Mass
	if k <= 0 {
		k = defaultSpringStiffness
	}
	if c < 0 {
		c = defaultSpringDamping
	}
	if m <= 0 {
		m = defaultSpringMass
	}
	return c / (2 * math.Sqrt(k*m))
}

// Bezier maps the spring to an approximate cubic-bezier for exporters that
// cannot express springs. Overdamped and critically damped springs map to
// an ease-out-quad shape; underdamped springs overshoot in proportion to the
// first-peak overshoot exp(-ζπ/√(1-ζ²)), capped at y1 = 3.
func (s Spring) Bezier() Bezier {
	zeta := s.DampingRatio()
	if zeta >= 1 {
		return presets[EaseOutQuad]
	}
	overshoot := math.Exp(-zeta * math.Pi / math.Sqrt(1-zeta*zeta))
	y1 := math.Min(1+5.6*overshoot, 3)
	return Bezier{0.34, y1, 0.64, 1}
}
