package tableau

// ElementSnapshot is the animatable state of one scene element inside a
// single AnimationState. Snapshots are values; the engine never mutates the
// ones it is given.
type ElementSnapshot struct {
	// Identity. ID is the key; Name is a display alias.
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Geometry in host pixels.
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`

	Opacity  float64 `json:"opacity" yaml:"opacity"`   // [0, 1]
	Scale    float64 `json:"scale" yaml:"scale"`       // 1 = identity
	Rotation float64 `json:"rotation" yaml:"rotation"` // degrees, any range
	Visible  bool    `json:"visible" yaml:"visible"`

	TranslateX float64 `json:"translateX" yaml:"translateX"`
	TranslateY float64 `json:"translateY" yaml:"translateY"`

	// Layout is nil when the element is not a layout container.
	Layout *Layout `json:"layout,omitempty" yaml:"layout,omitempty"`

	// Hierarchy
	ParentID    string          `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Inheritance InheritanceMode `json:"inheritance,omitempty" yaml:"inheritance,omitempty"`

	// Timing overrides the transition timing for this element only.
	Timing *TimingOverride `json:"timing,omitempty" yaml:"timing,omitempty"`
}

// NewElement returns a snapshot with default values: fully opaque,
// unscaled, visible.
func NewElement(id string) ElementSnapshot {
	return ElementSnapshot{
		ID:      id,
		Opacity: 1,
		Scale:   1,
		Visible: true,
	}
}

// Layout carries the structural gap properties of a layout container. A nil
// gap means "not set", which is different from a zero gap.
type Layout struct {
	Kind      LayoutKind `json:"kind" yaml:"kind"`
	Gap       *float64   `json:"gap,omitempty" yaml:"gap,omitempty"`
	ColumnGap *float64   `json:"columnGap,omitempty" yaml:"columnGap,omitempty"`
	RowGap    *float64   `json:"rowGap,omitempty" yaml:"rowGap,omitempty"`
}

func (l *Layout) kind() LayoutKind {
	if l == nil || l.Kind == "" {
		return LayoutNone
	}
	return l.Kind
}

// clone returns a deep copy so interpolated frames never alias input gaps.
func (l *Layout) clone() *Layout {
	if l == nil {
		return nil
	}
	c := &Layout{Kind: l.Kind}
	c.Gap = cloneFloat(l.Gap)
	c.ColumnGap = cloneFloat(l.ColumnGap)
	c.RowGap = cloneFloat(l.RowGap)
	return c
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Float returns a pointer to v. Handy for Layout gaps and overrides.
func Float(v float64) *float64 {
	return &v
}

// TimingOverride replaces the transition's timing for one element. Nil
// fields keep whatever the schedule computed.
type TimingOverride struct {
	Delay    *float64     `json:"delay,omitempty" yaml:"delay,omitempty"`
	Duration *float64     `json:"duration,omitempty" yaml:"duration,omitempty"`
	Easing   *EasingCurve `json:"easing,omitempty" yaml:"easing,omitempty"`
}

// Property names one animatable element property.
type Property string

const (
	PropX          Property = "x"
	PropY          Property = "y"
	PropWidth      Property = "width"
	PropHeight     Property = "height"
	PropOpacity    Property = "opacity"
	PropScale      Property = "scale"
	PropRotation   Property = "rotation"
	PropVisible    Property = "visible"
	PropTranslateX Property = "translateX"
	PropTranslateY Property = "translateY"
	PropGap        Property = "gap"
	PropColumnGap  Property = "columnGap"
	PropRowGap     Property = "rowGap"
)

// Properties is the closed set of animatable properties in diff order.
var Properties = [...]Property{
	PropX, PropY, PropWidth, PropHeight,
	PropOpacity, PropScale, PropRotation, PropVisible,
	PropTranslateX, PropTranslateY,
	PropGap, PropColumnGap, PropRowGap,
}

// IsLayout reports whether p is one of the structural gap properties.
func (p Property) IsLayout() bool {
	return p == PropGap || p == PropColumnGap || p == PropRowGap
}

// Value is a property value. Visibility is encoded as 1 or 0. Defined is
// false for layout gaps that are not set and for every property of an
// element that does not exist on that side of a diff.
type Value struct {
	Number  float64 `json:"number"`
	Defined bool    `json:"defined"`
}

// Bool interprets the value as a visibility flag.
func (v Value) Bool() bool {
	return v.Defined && v.Number != 0
}

func number(v float64) Value { return Value{Number: v, Defined: true} }

func optional(p *float64) Value {
	if p == nil {
		return Value{}
	}
	return number(*p)
}

func boolValue(b bool) Value {
	if b {
		return number(1)
	}
	return number(0)
}

// Get returns the value of p on the snapshot.
func (e *ElementSnapshot) Get(p Property) Value {
	switch p {
	case PropX:
		return number(e.X)
	case PropY:
		return number(e.Y)
	case PropWidth:
		return number(e.Width)
	case PropHeight:
		return number(e.Height)
	case PropOpacity:
		return number(e.Opacity)
	case PropScale:
		return number(e.Scale)
	case PropRotation:
		return number(e.Rotation)
	case PropVisible:
		return boolValue(e.Visible)
	case PropTranslateX:
		return number(e.TranslateX)
	case PropTranslateY:
		return number(e.TranslateY)
	case PropGap:
		if e.Layout == nil {
			return Value{}
		}
		return optional(e.Layout.Gap)
	case PropColumnGap:
		if e.Layout == nil {
			return Value{}
		}
		return optional(e.Layout.ColumnGap)
	case PropRowGap:
		if e.Layout == nil {
			return Value{}
		}
		return optional(e.Layout.RowGap)
	}
	return Value{}
}

// set writes a defined numeric value for a non-layout property.
func (e *ElementSnapshot) set(p Property, v float64) {
	switch p {
	case PropX:
		e.X = v
	case PropY:
		e.Y = v
	case PropWidth:
		e.Width = v
	case PropHeight:
		e.Height = v
	case PropOpacity:
		e.Opacity = v
	case PropScale:
		e.Scale = v
	case PropRotation:
		e.Rotation = v
	case PropVisible:
		e.Visible = v != 0
	case PropTranslateX:
		e.TranslateX = v
	case PropTranslateY:
		e.TranslateY = v
	}
}
