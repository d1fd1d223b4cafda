// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Functional options controlling the representer, alias engine and
// event emitter. Options are plain values; there is no file or flag
// based configuration surface.

package libyaml

import "fmt"

// AliasStrategy selects how the alias/redundancy engine rewrites
// repeated subtrees into anchor/alias pairs (§4.4).
type AliasStrategy int

const (
	// AliasNone performs no aliasing pass at all (default).
	AliasNone AliasStrategy = iota
	// AliasIdentity aliases a subtree only when the same *Node object
	// is referenced more than once.
	AliasIdentity
	// AliasValue aliases any subtree whose structural equality matches
	// a previously emitted subtree.
	AliasValue
)

// FloatStrategy selects a float formatting algorithm (§4.3.1).
type FloatStrategy int

const (
	// FloatDecimal emits the shortest round-trip decimal representation.
	FloatDecimal FloatStrategy = iota
	// FloatScientific emits via %.*g with a fixed precision, falling
	// back to a scientific formatter when no exponent is produced.
	FloatScientific
)

// Options holds every knob described in §6, plus the ambient
// Compat11Bools and FlowSimpleCollections extensions.
type Options struct {
	Canonical     bool
	Indent        int
	LineWidth     int // -1 = unlimited, 0 = backend default (80)
	AllowUnicode  bool
	LineBreak     LineBreak
	ExplicitStart bool
	ExplicitEnd   bool
	Version       *VersionDirective

	SortKeys           bool
	SequenceStyle      SequenceStyle
	MappingStyle       MappingStyle
	NewLineScalarStyle ScalarStyle

	RedundancyStrategy AliasStrategy
	FloatStrategy      FloatStrategy

	// FlowSimpleCollections enables the flow-style compaction heuristic
	// described in SPEC_FULL.md PART D for scalar-only collections.
	FlowSimpleCollections bool

	// Compat11Bools additionally resolves yes/no/on/off as !!bool (§4.2
	// step 2's YAML 1.1 compatibility mode).
	Compat11Bools bool
}

// Option configures an Options value, returning an error for invalid
// arguments (e.g. a negative indent).
type Option func(*Options) error

// ApplyOptions builds an Options value with package defaults and then
// applies opts in order.
func ApplyOptions(opts ...Option) (*Options, error) {
	o := &Options{
		Indent:        2,
		LineWidth:     80,
		LineBreak:     LN_BREAK,
		FloatStrategy: FloatScientific,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// CombineOptions combines several Option values into one, applying them in
// order. Useful for building named presets.
func CombineOptions(opts ...Option) Option {
	return func(o *Options) error {
		for _, opt := range opts {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

func WithCanonical(v bool) Option {
	return func(o *Options) error { o.Canonical = v; return nil }
}

func WithIndent(spaces int) Option {
	return func(o *Options) error {
		if spaces < 0 {
			return fmt.Errorf("yaml: indent must be non-negative, got %d", spaces)
		}
		o.Indent = spaces
		return nil
	}
}

func WithLineWidth(width int) Option {
	return func(o *Options) error { o.LineWidth = width; return nil }
}

func WithUnicode(v bool) Option {
	return func(o *Options) error { o.AllowUnicode = v; return nil }
}

func WithLineBreak(lb LineBreak) Option {
	return func(o *Options) error { o.LineBreak = lb; return nil }
}

func WithExplicitStart(v bool) Option {
	return func(o *Options) error { o.ExplicitStart = v; return nil }
}

func WithExplicitEnd(v bool) Option {
	return func(o *Options) error { o.ExplicitEnd = v; return nil }
}

func WithVersion(major, minor int) Option {
	return func(o *Options) error {
		o.Version = &VersionDirective{major: int8(major), minor: int8(minor)}
		return nil
	}
}

func WithSortKeys(v bool) Option {
	return func(o *Options) error { o.SortKeys = v; return nil }
}

func WithSequenceStyle(s SequenceStyle) Option {
	return func(o *Options) error { o.SequenceStyle = s; return nil }
}

func WithMappingStyle(s MappingStyle) Option {
	return func(o *Options) error { o.MappingStyle = s; return nil }
}

func WithNewLineScalarStyle(s ScalarStyle) Option {
	return func(o *Options) error { o.NewLineScalarStyle = s; return nil }
}

func WithRedundancyAliasingStrategy(s AliasStrategy) Option {
	return func(o *Options) error { o.RedundancyStrategy = s; return nil }
}

func WithFloatingPointNumberFormatStrategy(s FloatStrategy) Option {
	return func(o *Options) error { o.FloatStrategy = s; return nil }
}

func WithFlowSimpleCollections(v bool) Option {
	return func(o *Options) error { o.FlowSimpleCollections = v; return nil }
}

func WithCompat11Bools(v bool) Option {
	return func(o *Options) error { o.Compat11Bools = v; return nil }
}
