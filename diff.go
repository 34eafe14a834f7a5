package tableau

import "math"

// diffTolerance absorbs floating-point noise when comparing numbers.
const diffTolerance = 0.001

// PropertyDiff compares one property between two snapshots.
type PropertyDiff struct {
	Property   Property `json:"property"`
	From       Value    `json:"from"`
	To         Value    `json:"to"`
	HasChanged bool     `json:"hasChanged"`
}

// ElementDiff compares one element between two states. ExistsInFrom and
// ExistsInTo separate entering and exiting elements from unchanged ones.
type ElementDiff struct {
	ElementID            string         `json:"elementId"`
	ElementName          string         `json:"elementName,omitempty"`
	ExistsInFrom         bool           `json:"existsInFrom"`
	ExistsInTo           bool           `json:"existsInTo"`
	Properties           []PropertyDiff `json:"properties"`
	HasAnimatableChanges bool           `json:"hasAnimatableChanges"`
}

// Entering reports whether the element only exists in the target state.
func (d *ElementDiff) Entering() bool { return d.ExistsInTo && !d.ExistsInFrom }

// Exiting reports whether the element only exists in the source state.
func (d *ElementDiff) Exiting() bool { return d.ExistsInFrom && !d.ExistsInTo }

// ChangedProperties returns the property diffs with HasChanged set.
func (d *ElementDiff) ChangedProperties() []PropertyDiff {
	var out []PropertyDiff
	for _, p := range d.Properties {
		if p.HasChanged {
			out = append(out, p)
		}
	}
	return out
}

// Property returns the diff for p.
func (d *ElementDiff) Property(p Property) (PropertyDiff, bool) {
	for _, pd := range d.Properties {
		if pd.Property == p {
			return pd, true
		}
	}
	return PropertyDiff{}, false
}

// StateDiff is the per-element comparison of two states.
type StateDiff struct {
	FromStateID string        `json:"fromStateId,omitempty"`
	ToStateID   string        `json:"toStateId,omitempty"`
	Elements    []ElementDiff `json:"elements"`
}

// Element returns the diff for the given element id, or nil. The pointer
// aliases d.Elements.
func (d StateDiff) Element(id string) *ElementDiff {
	for i := range d.Elements {
		if d.Elements[i].ElementID == id {
			return &d.Elements[i]
		}
	}
	return nil
}

// HasAnimatableChanges reports whether any element changed.
func (d StateDiff) HasAnimatableChanges() bool {
	for i := range d.Elements {
		if d.Elements[i].HasAnimatableChanges {
			return true
		}
	}
	return false
}

// Changed returns only the element diffs that have changes.
func (d StateDiff) Changed() []ElementDiff {
	var out []ElementDiff
	for _, e := range d.Elements {
		if e.HasAnimatableChanges {
			out = append(out, e)
		}
	}
	return out
}

// Diff compares two states. Either state may be nil.
func Diff(from, to *AnimationState) StateDiff {
	d := DiffElements(from.elements(), to.elements())
	if from != nil {
		d.FromStateID = from.ID
	}
	if to != nil {
		d.ToStateID = to.ID
	}
	return d
}

// DiffElements compares two element lists. Elements are reported in source
// order, followed by elements that only exist in the target.
func DiffElements(from, to []ElementSnapshot) StateDiff {
	fromIdx := indexElements(from)
	toIdx := indexElements(to)

	out := StateDiff{Elements: make([]ElementDiff, 0, len(from)+len(to))}
	for i := range from {
		a := &from[i]
		if fromIdx[a.ID] != i {
			continue
		}
		var b *ElementSnapshot
		if j, ok := toIdx[a.ID]; ok {
			b = &to[j]
		}
		out.Elements = append(out.Elements, diffElement(a, b))
	}
	for j := range to {
		b := &to[j]
		if _, ok := fromIdx[b.ID]; ok || toIdx[b.ID] != j {
			continue
		}
		out.Elements = append(out.Elements, diffElement(nil, b))
	}
	return out
}

func diffElement(a, b *ElementSnapshot) ElementDiff {
	d := ElementDiff{
		ExistsInFrom: a != nil,
		ExistsInTo:   b != nil,
		Properties:   make([]PropertyDiff, 0, len(Properties)),
	}
	switch {
	case b != nil:
		d.ElementID, d.ElementName = b.ID, b.Name
	case a != nil:
		d.ElementID, d.ElementName = a.ID, a.Name
	}
	for _, p := range Properties {
		from, to := absentValue(p), absentValue(p)
		if a != nil {
			from = a.Get(p)
		}
		if b != nil {
			to = b.Get(p)
		}
		changed := valuesDiffer(from, to)
		d.Properties = append(d.Properties, PropertyDiff{Property: p, From: from, To: to, HasChanged: changed})
		if changed {
			d.HasAnimatableChanges = true
		}
	}
	return d
}

// absentValue stands in for a property of an element missing from one
// side. Opacity, scale, rotation, translation and visibility take their
// defaults; geometry and layout gaps stay undefined, so an entering or
// exiting element always reports a change.
func absentValue(p Property) Value {
	switch p {
	case PropOpacity, PropScale, PropVisible:
		return number(1)
	case PropRotation, PropTranslateX, PropTranslateY:
		return number(0)
	}
	return Value{}
}

func valuesDiffer(a, b Value) bool {
	if a.Defined != b.Defined {
		return true
	}
	if !a.Defined {
		return false
	}
	return math.Abs(a.Number-b.Number) >= diffTolerance
}

// indexElements maps ids to their first position. Later duplicates are
// ignored.
func indexElements(els []ElementSnapshot) map[string]int {
	idx := make(map[string]int, len(els))
	for i := range els {
		if _, ok := idx[els[i].ID]; !ok {
			idx[els[i].ID] = i
		}
	}
	return idx
}
