package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/tableau"
)

// CurrentVersion is the file format version written by Write.
const CurrentVersion = 1

// ErrNotFound is returned by lookups for unknown states, transitions or
// chains.
var ErrNotFound = errors.New("not found")

// Artboard is the canvas the states describe.
type Artboard struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Project is the in-memory form of a project file.
type Project struct {
	Version     int                       `json:"version" yaml:"version"`
	Artboard    Artboard                  `json:"artboard" yaml:"artboard"`
	States      []tableau.AnimationState  `json:"states" yaml:"states"`
	Transitions []tableau.StateTransition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
	Chains      []tableau.AnimationChain  `json:"chains,omitempty" yaml:"chains,omitempty"`
}

// Format selects the on-disk encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Load reads, normalizes and validates a project file.
func Load(path string) (*Project, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	defer file.Close()

	p, err := Read(file, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", filepath.Base(path), err)
	}
	return p, nil
}

// Read decodes a project from r, then normalizes and validates it.
func Read(r io.Reader, format Format) (*Project, error) {
	var p Project
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("decode yaml: empty document")
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}
	p.Normalize(time.Now().UTC())
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Write encodes the project to path, choosing the format from its
// extension.
func (p *Project) Write(path string) error {
	var buf bytes.Buffer
	if err := p.Encode(&buf, FormatFor(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write project: %w", err)
	}
	return nil
}

// Encode writes the project to w.
func (p *Project) Encode(w io.Writer, format Format) error {
	if format == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

// Normalize fills what a hand-written file may leave out: the format
// version, ids, artboard references and timestamps. now stamps entities
// that have none.
func (p *Project) Normalize(now time.Time) {
	if p.Version == 0 {
		p.Version = CurrentVersion
	}
	if p.Artboard.ID == "" {
		p.Artboard.ID = uuid.NewString()
	}
	for i := range p.States {
		s := &p.States[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		if s.Name == "" {
			s.Name = s.ID
		}
		if s.ArtboardID == "" {
			s.ArtboardID = p.Artboard.ID
		}
		stamp(&s.CreatedAt, &s.UpdatedAt, now)
	}
	for i := range p.Transitions {
		tr := &p.Transitions[i]
		if tr.ID == "" {
			tr.ID = uuid.NewString()
		}
		stamp(&tr.CreatedAt, &tr.UpdatedAt, now)
	}
	for i := range p.Chains {
		c := &p.Chains[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		if c.Name == "" {
			c.Name = c.ID
		}
		if c.Mode == "" {
			c.Mode = tableau.PlayOnce
		}
		stamp(&c.CreatedAt, &c.UpdatedAt, now)
	}
}

func stamp(created, updated *time.Time, now time.Time) {
	if created.IsZero() {
		*created = now
	}
	if updated.IsZero() {
		*updated = *created
	}
}
