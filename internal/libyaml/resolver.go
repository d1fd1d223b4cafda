// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tag resolution: mapping plain scalar content to an implicit tag
// (null, bool, int, float, timestamp, str), used both to set a node's
// implicit tag at construction time and to decide, at emission time,
// whether a declared tag can be safely omitted.

package libyaml

import (
	"regexp"
	"strings"
)

// shortTag abbreviates a long "tag:yaml.org,2002:x" tag to "!!x". Tags
// outside the core schema namespace are returned unchanged.
func shortTag(tag string) string {
	const prefix = "tag:yaml.org,2002:"
	if strings.HasPrefix(tag, prefix) {
		return "!!" + tag[len(prefix):]
	}
	return tag
}

// longTag expands a "!!x" short tag back to "tag:yaml.org,2002:x". Tags
// that don't use the "!!" shorthand are returned unchanged.
func longTag(tag string) string {
	if strings.HasPrefix(tag, "!!") {
		return "tag:yaml.org,2002:" + tag[2:]
	}
	return tag
}

var (
	nullLiterals = map[string]bool{
		"":      true,
		"~":     true,
		"null":  true,
		"Null":  true,
		"NULL":  true,
	}

	boolLiterals = map[string]bool{
		"true": true, "True": true, "TRUE": true,
		"false": true, "False": true, "FALSE": true,
	}

	// bool11Literals additionally recognizes the YAML 1.1 compatibility
	// spellings, enabled via Resolver.Compat11.
	bool11Literals = map[string]bool{
		"yes": true, "Yes": true, "YES": true,
		"no": true, "No": true, "NO": true,
		"on": true, "On": true, "ON": true,
		"off": true, "Off": true, "OFF": true,
	}

	intRe = regexp.MustCompile(`^[-+]?(0b[0-1]+|0o?[0-7]+|(0|[1-9][0-9]*)|0x[0-9a-fA-F]+)$`)

	floatRe = regexp.MustCompile(`^[-+]?(\.inf|\.Inf|\.INF)$|^\.nan$|^\.NaN$|^\.NAN$|` +
		`^[-+]?(\.[0-9]+|[0-9]+(\.[0-9]*)?)([eE][-+]?[0-9]+)?$`)

	timestampRe = regexp.MustCompile(`^[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]` +
		`([Tt]|[ \t]+)[0-9][0-9]?:[0-9][0-9]:[0-9][0-9](\.[0-9]*)?` +
		`(([ \t]*Z)|([-+][0-9][0-9]?(:[0-9][0-9])?))?$|` +
		`^[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]$`)
)

// Resolver maps scalar content to an implicit core-schema tag.
type Resolver struct {
	// Compat11 additionally recognizes the YAML 1.1 boolean spellings
	// (yes/no/on/off) as bool, per §4.2 step 2.
	Compat11 bool
}

// NewResolver returns a Resolver configured from opts. A nil opts uses
// the defaults (YAML 1.2 core schema only).
func NewResolver(opts *Options) *Resolver {
	r := &Resolver{}
	if opts != nil {
		r.Compat11 = opts.Compat11Bools
	}
	return r
}

// Resolve sets n.Tag to its resolved long-form tag in place. An
// already-declared tag is kept and only expanded to its long form. Only
// scalar nodes are content resolved; collections resolve to their kind's
// default tag.
func (r *Resolver) Resolve(n *Node) {
	if n.Tag != "" {
		n.Tag = longTag(n.Tag)
		return
	}
	switch n.Kind {
	case ScalarNode:
		short, _ := r.resolve(n.Value)
		n.Tag = longTag(short)
	case SequenceNode:
		n.Tag = seqTag
	case MappingNode:
		n.Tag = mapTag
	}
}

// resolve classifies a plain scalar's content, returning its short-form
// tag ("!!null", "!!bool", "!!int", "!!float", "!!timestamp" or
// "!!str") and the content unchanged. First match wins, in the order
// given by §4.2.
func (r *Resolver) resolve(in string) (tag string, value string) {
	switch {
	case nullLiterals[in]:
		return "!!null", in
	case boolLiterals[in]:
		return "!!bool", in
	case r.Compat11 && bool11Literals[in]:
		return "!!bool", in
	case intRe.MatchString(in):
		return "!!int", in
	case floatRe.MatchString(in):
		return "!!float", in
	case timestampRe.MatchString(in):
		return "!!timestamp", in
	default:
		return "!!str", in
	}
}

// resolve is the package-level convenience used by Node.ResolvedTag and
// NewScalarNode: a non-empty tag is returned in short form, and an empty
// one is resolved with the YAML 1.2 core schema only (no 1.1 boolean
// compatibility), matching the default Resolver.
func resolve(tag, in string) (rtag string, value string) {
	if tag != "" {
		return shortTag(tag), in
	}
	return (&Resolver{}).resolve(in)
}
