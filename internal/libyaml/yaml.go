// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Core libyaml-derived types: the version directive, line-break and
// style vocabularies the Emitter and Options share, and the core
// schema's long-form tag names.

package libyaml

// VersionDirective holds the YAML version directive data.
type VersionDirective struct {
	major int8
	minor int8
}

// Major returns the major version number.
func (v *VersionDirective) Major() int { return int(v.major) }

// Minor returns the minor version number.
func (v *VersionDirective) Minor() int { return int(v.minor) }

type LineBreak int

// Line break types.
const (
	ANY_BREAK LineBreak = iota

	CR_BREAK   // Mac-style \r.
	LN_BREAK   // Unix-style \n (default).
	CRLN_BREAK // Windows-style \r\n.
)

// Node styles.

type styleInt int8

type ScalarStyle styleInt

// Scalar styles.
const (
	ANY_SCALAR_STYLE ScalarStyle = 0

	PLAIN_SCALAR_STYLE         ScalarStyle = 1 << iota
	SINGLE_QUOTED_SCALAR_STYLE
	DOUBLE_QUOTED_SCALAR_STYLE
	LITERAL_SCALAR_STYLE
	FOLDED_SCALAR_STYLE
)

// String returns a string representation of a [ScalarStyle].
func (style ScalarStyle) String() string {
	switch style {
	case PLAIN_SCALAR_STYLE:
		return "Plain"
	case SINGLE_QUOTED_SCALAR_STYLE:
		return "Single"
	case DOUBLE_QUOTED_SCALAR_STYLE:
		return "Double"
	case LITERAL_SCALAR_STYLE:
		return "Literal"
	case FOLDED_SCALAR_STYLE:
		return "Folded"
	default:
		return ""
	}
}

type SequenceStyle styleInt

// Sequence styles.
const (
	ANY_SEQUENCE_STYLE SequenceStyle = iota

	BLOCK_SEQUENCE_STYLE
	FLOW_SEQUENCE_STYLE
)

type MappingStyle styleInt

// Mapping styles.
const (
	ANY_MAPPING_STYLE MappingStyle = iota

	BLOCK_MAPPING_STYLE
	FLOW_MAPPING_STYLE
)

// Core schema tags.
const (
	nullTag      = "tag:yaml.org,2002:null"
	boolTag      = "tag:yaml.org,2002:bool"
	strTag       = "tag:yaml.org,2002:str"
	intTag       = "tag:yaml.org,2002:int"
	floatTag     = "tag:yaml.org,2002:float"
	timestampTag = "tag:yaml.org,2002:timestamp"

	seqTag = "tag:yaml.org,2002:seq"
	mapTag = "tag:yaml.org,2002:map"

	binaryTag = "tag:yaml.org,2002:binary"

	defaultScalarTag   = strTag
	defaultSequenceTag = seqTag
	defaultMappingTag  = mapTag
)
