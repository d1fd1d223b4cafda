//
// Copyright (c) 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0
//

package yaml

import "github.com/nodeware/yamlemit/internal/libyaml"

// Option configures the Representer, alias engine and Emitter.
// Re-exported from internal/libyaml.
type Option = libyaml.Option

// AliasStrategy selects how repeated subtrees are rewritten into
// anchor/alias pairs.
type AliasStrategy = libyaml.AliasStrategy

// FloatStrategy selects a float formatting algorithm.
type FloatStrategy = libyaml.FloatStrategy

const (
	AliasNone     = libyaml.AliasNone
	AliasIdentity = libyaml.AliasIdentity
	AliasValue    = libyaml.AliasValue
)

const (
	FloatDecimal    = libyaml.FloatDecimal
	FloatScientific = libyaml.FloatScientific
)

// Re-export option constructors from internal/libyaml.
var (
	WithCanonical             = libyaml.WithCanonical
	WithIndent                = libyaml.WithIndent
	WithLineWidth             = libyaml.WithLineWidth
	WithUnicode               = libyaml.WithUnicode
	WithLineBreak             = libyaml.WithLineBreak
	WithExplicitStart         = libyaml.WithExplicitStart
	WithExplicitEnd           = libyaml.WithExplicitEnd
	WithVersion               = libyaml.WithVersion
	WithSortKeys              = libyaml.WithSortKeys
	WithSequenceStyle         = libyaml.WithSequenceStyle
	WithMappingStyle          = libyaml.WithMappingStyle
	WithNewLineScalarStyle    = libyaml.WithNewLineScalarStyle
	WithRedundancyStrategy    = libyaml.WithRedundancyAliasingStrategy
	WithFloatStrategy         = libyaml.WithFloatingPointNumberFormatStrategy
	WithFlowSimpleCollections = libyaml.WithFlowSimpleCollections
	WithCompat11Bools         = libyaml.WithCompat11Bools
)

// Options combines multiple options into a single Option. Useful for
// building presets.
//
// Example:
//
//	opts := yaml.Options(yaml.V4, yaml.WithIndent(3))
//	yaml.Dump(&data, opts)
func Options(opts ...Option) Option {
	return libyaml.CombineOptions(opts...)
}

// V3 mirrors go-yaml v3's block-style formatting defaults: 4-space
// indentation, 80-column line width, unicode enabled, sorted map keys.
//
//	yaml.Dump(&data, yaml.V3)
var V3 = Options(
	WithIndent(4),
	WithLineWidth(80),
	WithUnicode(true),
	WithSortKeys(true),
)

// V4 is a formatting preset: 2-space indentation, 80-column
// line width, unicode enabled, sorted map keys, simple flow collections
// compacted onto one line.
//
//	yaml.Dump(&data, yaml.V4)
var V4 = Options(
	WithIndent(2),
	WithLineWidth(80),
	WithUnicode(true),
	WithSortKeys(true),
	WithFlowSimpleCollections(true),
)
