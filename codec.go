package tableau

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshots decode on top of NewElement so omitted opacity, scale and
// visibility keep their defaults instead of becoming zero.

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *ElementSnapshot) UnmarshalYAML(value *yaml.Node) error {
	type plain ElementSnapshot
	p := plain(NewElement(""))
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = ElementSnapshot(p)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *ElementSnapshot) UnmarshalJSON(data []byte) error {
	type plain ElementSnapshot
	p := plain(NewElement(""))
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = ElementSnapshot(p)
	return nil
}

// curveDoc is the mapping form of an EasingCurve:
//
//	{preset: ease-out}
//	{preset: ease, bezier: [0.2, 0.8, 0.2, 1]}
//	{preset: ease-out, spring: {stiffness: 170, damping: 26, mass: 1}}
type curveDoc struct {
	Preset string    `json:"preset,omitempty" yaml:"preset,omitempty"`
	Bezier []float64 `json:"bezier,omitempty" yaml:"bezier,omitempty"`
	Spring *Spring   `json:"spring,omitempty" yaml:"spring,omitempty"`
}

func (d curveDoc) curve() (EasingCurve, error) {
	switch {
	case d.Spring != nil && d.Bezier != nil:
		return EasingCurve{}, fmt.Errorf("easing: bezier and spring are mutually exclusive")
	case d.Spring != nil:
		c := SpringCurve(*d.Spring)
		if d.Preset != "" {
			c.Preset = d.Preset
		}
		return c, nil
	case d.Bezier != nil:
		c, err := bezierFromList(d.Bezier)
		if err != nil {
			return EasingCurve{}, err
		}
		if d.Preset != "" {
			c.Preset = d.Preset
		}
		return c, nil
	}
	return Preset(d.Preset), nil
}

func (c EasingCurve) doc() curveDoc {
	d := curveDoc{Preset: c.Preset}
	switch c.Kind {
	case CurveBezier:
		a := c.Bezier.Array()
		d.Bezier = a[:]
	case CurveSpring:
		s := c.Spring
		d.Spring = &s
	}
	return d
}

func bezierFromList(v []float64) (EasingCurve, error) {
	if len(v) != 4 {
		return EasingCurve{}, fmt.Errorf("easing: bezier needs 4 control points, got %d", len(v))
	}
	return CustomBezier(v[0], v[1], v[2], v[3]), nil
}

// UnmarshalYAML accepts a preset name, a list of four control points, or
// the mapping form.
func (c *EasingCurve) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*c = Preset(value.Value)
		return nil
	case yaml.SequenceNode:
		var pts []float64
		if err := value.Decode(&pts); err != nil {
			return fmt.Errorf("easing: %w", err)
		}
		curve, err := bezierFromList(pts)
		if err != nil {
			return err
		}
		*c = curve
		return nil
	case yaml.MappingNode:
		var d curveDoc
		if err := value.Decode(&d); err != nil {
			return fmt.Errorf("easing: %w", err)
		}
		curve, err := d.curve()
		if err != nil {
			return err
		}
		*c = curve
		return nil
	}
	return fmt.Errorf("easing: unsupported yaml node at line %d", value.Line)
}

// MarshalYAML writes presets as a bare name and everything else in the
// mapping form.
func (c EasingCurve) MarshalYAML() (any, error) {
	if c.Kind == CurveBezier || c.Kind == CurveSpring {
		return c.doc(), nil
	}
	return c.Label(), nil
}

// UnmarshalJSON accepts the same three forms as UnmarshalYAML.
func (c *EasingCurve) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("easing: %w", err)
		}
		*c = Preset(name)
		return nil
	case '[':
		var pts []float64
		if err := json.Unmarshal(data, &pts); err != nil {
			return fmt.Errorf("easing: %w", err)
		}
		curve, err := bezierFromList(pts)
		if err != nil {
			return err
		}
		*c = curve
		return nil
	}
	var d curveDoc
	if err := json.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("easing: %w", err)
	}
	curve, err := d.curve()
	if err != nil {
		return err
	}
	*c = curve
	return nil
}

// MarshalJSON mirrors MarshalYAML.
func (c EasingCurve) MarshalJSON() ([]byte, error) {
	if c.Kind == CurveBezier || c.Kind == CurveSpring {
		return json.Marshal(c.doc())
	}
	return json.Marshal(c.Label())
}
