package tableau

import "time"

// AnimationState is a named, ordered snapshot of every element on an
// artboard. Order drives default sequencing in ComputeTimeline.
type AnimationState struct {
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	ArtboardID string            `json:"artboardId,omitempty" yaml:"artboardId,omitempty"`
	Order      int               `json:"order" yaml:"order"`
	Elements   []ElementSnapshot `json:"elements" yaml:"elements"`
	Trigger    Trigger           `json:"trigger,omitzero" yaml:"trigger,omitempty"`
	HoldTime   float64           `json:"holdTime" yaml:"holdTime"` // ms to dwell before moving on

	CreatedAt time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

// Element returns the snapshot with the given id, or nil.
func (s *AnimationState) Element(id string) *ElementSnapshot {
	if s == nil {
		return nil
	}
	for i := range s.Elements {
		if s.Elements[i].ID == id {
			return &s.Elements[i]
		}
	}
	return nil
}

func (s *AnimationState) elements() []ElementSnapshot {
	if s == nil {
		return nil
	}
	return s.Elements
}

// Trigger describes how and when a state activates.
type Trigger struct {
	Kind   TriggerKind `json:"kind" yaml:"kind"`
	Delay  float64     `json:"delay,omitempty" yaml:"delay,omitempty"`   // ms, for TriggerDelay
	Target string      `json:"target,omitempty" yaml:"target,omitempty"` // element id for click/hover
}

// StateTransition is a timed, eased edge between two states.
type StateTransition struct {
	ID          string      `json:"id" yaml:"id"`
	FromStateID string      `json:"fromStateId" yaml:"fromStateId"`
	ToStateID   string      `json:"toStateId" yaml:"toStateId"`
	Duration    float64     `json:"duration" yaml:"duration"` // ms
	Delay       float64     `json:"delay" yaml:"delay"`       // ms
	Easing      EasingCurve `json:"easing" yaml:"easing"`

	Overrides []ElementOverride `json:"overrides,omitempty" yaml:"overrides,omitempty"`
	Stagger   *StaggerConfig    `json:"stagger,omitempty" yaml:"stagger,omitempty"`
	Cascade   *CascadeConfig    `json:"cascade,omitempty" yaml:"cascade,omitempty"`
	Layout    *LayoutAnimation  `json:"layout,omitempty" yaml:"layout,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitzero" yaml:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

// Override returns the per-element override for id, or nil.
func (t *StateTransition) Override(id string) *ElementOverride {
	for i := range t.Overrides {
		if t.Overrides[i].ElementID == id {
			return &t.Overrides[i]
		}
	}
	return nil
}

// ElementOverride replaces transition timing for one element and may limit
// which properties animate. An empty Properties list animates everything.
type ElementOverride struct {
	ElementID  string       `json:"elementId" yaml:"elementId"`
	Duration   *float64     `json:"duration,omitempty" yaml:"duration,omitempty"`
	Delay      *float64     `json:"delay,omitempty" yaml:"delay,omitempty"`
	Easing     *EasingCurve `json:"easing,omitempty" yaml:"easing,omitempty"`
	Properties []Property   `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// StaggerConfig offsets elements sequentially by ordinal index.
type StaggerConfig struct {
	Amount float64       `json:"amount" yaml:"amount"` // ms between consecutive elements
	From   StaggerOrigin `json:"from" yaml:"from"`
}

// CascadeConfig derives per-element timing from the element hierarchy.
type CascadeConfig struct {
	Enabled       bool           `json:"enabled" yaml:"enabled"`
	DelayPerLevel float64        `json:"delayPerLevel" yaml:"delayPerLevel"` // ms added per depth level
	DurationScale float64        `json:"durationScale" yaml:"durationScale"` // compounded once per level
	Stagger       CascadeStagger `json:"stagger" yaml:"stagger"`
}

// CascadeStagger offsets siblings inside each sibling group.
type CascadeStagger struct {
	Amount    float64          `json:"amount" yaml:"amount"`
	Direction CascadeDirection `json:"direction" yaml:"direction"`
}

// LayoutAnimation configures how gap properties move. When Enabled is false
// gaps always switch discretely at the midpoint.
type LayoutAnimation struct {
	Enabled bool         `json:"enabled" yaml:"enabled"`
	Easing  *EasingCurve `json:"easing,omitempty" yaml:"easing,omitempty"`
}
