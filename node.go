package yaml

import "github.com/nodeware/yamlemit/internal/libyaml"

// -----------------------------------------------------------------------------
// Node-related type aliases and constants
// -----------------------------------------------------------------------------
type (
	// Node represents an element in the YAML document hierarchy: a
	// scalar, a sequence, a mapping, or an alias to an anchored node.
	//
	// A Node is usually produced for you by Represent (directly, or
	// through Dump/DumpAll), but can also be built by hand and passed to
	// Serialize for full control over style, tags and anchors.
	Node = libyaml.Node

	// Kind identifies which of the four Node variants a value holds.
	Kind = libyaml.Kind

	// Style is a bitmask of advisory style hints controlling how a Node
	// is rendered (quoting, block vs. flow, explicit tagging).
	Style = libyaml.Style

	// Marshaler may be implemented by types to customize their behavior
	// when represented, returning a plain Go value to be represented in
	// their place.
	Marshaler = libyaml.Marshaler

	// NodeRepresentable is implemented by a value that can produce a
	// Node directly, taking full control of its own shape.
	NodeRepresentable = libyaml.NodeRepresentable

	// ScalarRepresentable is implemented by a value that always
	// produces a single scalar, but needs the active Options to do so.
	ScalarRepresentable = libyaml.ScalarRepresentable

	// IsZeroer is used to check whether an object is zero. One notable
	// implementation is [time.Time].
	IsZeroer = libyaml.IsZeroer
)

// Kind constants define the four variants of the Node sum type.
const (
	// SequenceNode represents a YAML sequence (list).
	SequenceNode = libyaml.SequenceNode

	// MappingNode represents a YAML mapping (dictionary).
	MappingNode = libyaml.MappingNode

	// ScalarNode represents a YAML scalar value.
	ScalarNode = libyaml.ScalarNode

	// AliasNode represents a reference to an anchored node.
	AliasNode = libyaml.AliasNode
)

// Style constants define different formatting styles for YAML nodes.
const (
	// TaggedStyle forces the node's tag to be printed explicitly even
	// when it would otherwise resolve implicitly from content.
	TaggedStyle = libyaml.TaggedStyle

	// DoubleQuotedStyle uses double quotes for scalar values.
	DoubleQuotedStyle = libyaml.DoubleQuotedStyle

	// SingleQuotedStyle uses single quotes for scalar values.
	SingleQuotedStyle = libyaml.SingleQuotedStyle

	// LiteralStyle uses literal block scalar style (|).
	LiteralStyle = libyaml.LiteralStyle

	// FoldedStyle uses folded block scalar style (>).
	FoldedStyle = libyaml.FoldedStyle

	// FlowStyle uses flow (inline) formatting for a sequence or mapping.
	FlowStyle = libyaml.FlowStyle
)

// Scalar builds a scalar Node. If tag is empty, it is resolved from
// value's content (§4.2).
func Scalar(value, tag string, style Style, anchor string) *Node {
	return libyaml.NewScalarNode(value, tag, style, anchor)
}

// Sequence builds a sequence Node from already-built items. If tag is
// empty it defaults to "!!seq".
func Sequence(items []*Node, tag string, style Style, anchor string) *Node {
	return libyaml.NewSequenceNode(items, tag, style, anchor)
}

// Mapping builds a mapping Node from interleaved key/value pairs. If
// tag is empty it defaults to "!!map". Duplicate keys are rejected.
func Mapping(pairs []*Node, tag string, style Style, anchor string) *Node {
	return libyaml.NewMappingNode(pairs, tag, style, anchor)
}

// Alias builds a Node referencing the anchor named by anchor.
func Alias(anchor string) *Node {
	return libyaml.NewAliasNode(anchor)
}
