// SPDX-License-Identifier: MIT
// Package: xychain/fixture
//
// fixture.go — YAML fixture documents and their validation.

package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/xychain/chain"
)

// Event kinds as spelled in fixture files.
const (
	KindXAdded = "xAdded"
	KindYAdded = "yAdded"
)

// Fixture is one scenario: a grid, optional events appended after the
// decoded ones, and the expected outcome.
//
// Expect is "ok" (the default) or one of the error kinds listed by Kinds.
// For "ok", the re-encoded grid must equal Want (or Grid when Want is
// empty) after normalization, and the snapshot digest must equal Digest
// when one is given.
type Fixture struct {
	Name    string      `yaml:"name" validate:"required"`
	Grid    string      `yaml:"grid" validate:"required"`
	Append  []EventSpec `yaml:"append,omitempty" validate:"dive"`
	Expect  string      `yaml:"expect,omitempty" validate:"omitempty,expectkind"`
	Want    string      `yaml:"want,omitempty"`
	Digest  string      `yaml:"digest,omitempty" validate:"omitempty,len=64,hexadecimal"`
	Lenient bool        `yaml:"lenient,omitempty"`

	// Path is the file the fixture was loaded from, if any.
	Path string `yaml:"-"`
}

// EventSpec is the serialized form of a chain.Event.
type EventSpec struct {
	Kind     string `yaml:"kind" validate:"required,oneof=xAdded yAdded"`
	ID       string `yaml:"id" validate:"required"`
	ChainID  string `yaml:"chainId,omitempty" validate:"required_if=Kind xAdded"`
	XChainID string `yaml:"xChainId,omitempty" validate:"required_if=Kind yAdded"`
	YChainID string `yaml:"yChainId,omitempty" validate:"required_if=Kind yAdded"`
}

// validate is safe for concurrent use once built.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("expectkind", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == ExpectOK || knownKind(v)
	})

	return v
}

// Event converts the spec into a chain.Event.
func (s EventSpec) Event() chain.Event {
	if s.Kind == KindYAdded {
		return chain.YAdded{
			ID:       chain.NodeID(s.ID),
			XChainID: chain.XChainID(s.XChainID),
			YChainID: chain.YChainID(s.YChainID),
		}
	}
	return chain.XAdded{ID: chain.NodeID(s.ID), ChainID: chain.XChainID(s.ChainID)}
}

// SpecOf serializes e. Nil or foreign events fail with chain.ErrUnknownEvent.
func SpecOf(e chain.Event) (EventSpec, error) {
	switch ev := e.(type) {
	case chain.XAdded:
		return EventSpec{Kind: KindXAdded, ID: string(ev.ID), ChainID: string(ev.ChainID)}, nil
	case chain.YAdded:
		return EventSpec{
			Kind:     KindYAdded,
			ID:       string(ev.ID),
			XChainID: string(ev.XChainID),
			YChainID: string(ev.YChainID),
		}, nil
	default:
		return EventSpec{}, fmt.Errorf("SpecOf(%T): %w", e, chain.ErrUnknownEvent)
	}
}

// Specs serializes events in order.
func Specs(events []chain.Event) ([]EventSpec, error) {
	out := make([]EventSpec, 0, len(events))
	for _, e := range events {
		s, err := SpecOf(e)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// Events converts specs in order.
func Events(specs []EventSpec) []chain.Event {
	out := make([]chain.Event, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.Event())
	}

	return out
}

// ParseEvents decodes and validates a YAML list of event specs.
func ParseEvents(data []byte) ([]chain.Event, error) {
	var specs []EventSpec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("ParseEvents: %w: %w", ErrInvalidFixture, err)
	}
	for i := range specs {
		if err := validate.Struct(specs[i]); err != nil {
			return nil, fmt.Errorf("ParseEvents: event #%d: %w: %w", i, ErrInvalidFixture, err)
		}
	}

	return Events(specs), nil
}

// Parse decodes a single YAML fixture document, rejecting unknown fields,
// and validates it.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("Parse: %w: %w", ErrInvalidFixture, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks the struct tags of f and its appended events.
func (f *Fixture) Validate() error {
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("fixture %q: field %s failed %q: %w", f.Name, verrs[0].Namespace(), verrs[0].Tag(), ErrInvalidFixture)
		}
		return fmt.Errorf("fixture %q: %w: %w", f.Name, ErrInvalidFixture, err)
	}

	return nil
}

// Load reads and parses the fixture at path.
func Load(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}
	f.Path = path

	return f, nil
}
