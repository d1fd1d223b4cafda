//
// Copyright (c) 2011-2019 Canonical Ltd
// Copyright (c) 2006-2010 Kirill Simonov
// Copyright 2025 The go-yaml Project Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The Event Emitter (§4.5): a small state machine with states
// {initialized, opened, closed} wrapping the libYAML-style event API.
// Serialize walks a Node tree depth-first in the order of the event
// sequence described in §4.5, writing each node directly through the
// low-level textWriter; no intermediate event values are built.

package libyaml

import (
	"fmt"
	"sort"
)

type emitterLifecycle int

const (
	lifecycleInitialized emitterLifecycle = iota
	lifecycleOpened
	lifecycleClosed
)

// Emitter is the public, stateful, non-reentrant event emitter. A single
// instance must not be used from multiple goroutines without external
// synchronization; independent instances are fully concurrency-safe.
type Emitter struct {
	opts  *Options
	state emitterLifecycle
	w     *textWriter
	docs  int
}

// NewEmitter returns an Emitter in the initialized state.
func NewEmitter(opts *Options) *Emitter {
	return &Emitter{opts: opts, w: newTextWriter(opts)}
}

// Open transitions initialized -> opened, emitting the stream-start
// event. Fails with EmitterError (AlreadyOpened/AlreadyClosed) from any
// other state.
func (e *Emitter) Open() error {
	switch e.state {
	case lifecycleOpened:
		return &EmitterError{Message: "emitter already opened"}
	case lifecycleClosed:
		return &EmitterError{Message: "emitter already closed"}
	}
	e.state = lifecycleOpened
	return nil
}

// Serialize emits document-start, recursively emits node, then
// document-end. Must be called only while opened.
func (e *Emitter) Serialize(node *Node) (err error) {
	switch e.state {
	case lifecycleInitialized:
		return &EmitterError{Message: "emitter not opened"}
	case lifecycleClosed:
		return &EmitterError{Message: "emitter already closed"}
	}
	defer func() {
		if r := recover(); r != nil {
			if ee, ok := r.(*YAMLError); ok {
				err = ee.Err
				return
			}
			panic(r)
		}
	}()
	e.emitDocumentStart()
	e.w.writeIndent()
	e.emitNode(node, false, false)
	e.emitDocumentEnd()
	e.docs++
	return nil
}

// Close transitions opened -> closed, emitting the stream-end event.
// Closing an already-closed emitter is a no-op; closing one that was
// never opened fails.
func (e *Emitter) Close() error {
	switch e.state {
	case lifecycleInitialized:
		return &EmitterError{Message: "emitter not opened"}
	case lifecycleClosed:
		return nil
	}
	e.state = lifecycleClosed
	return nil
}

// Data returns the accumulated UTF-8 output so far.
func (e *Emitter) Data() []byte {
	return e.w.out.Bytes()
}

func (e *Emitter) emitDocumentStart() {
	if e.opts.Version != nil {
		e.w.writeIndent()
		e.w.write(fmt.Sprintf("%%YAML %d.%d", e.opts.Version.Major(), e.opts.Version.Minor()))
		e.w.writeBreak()
	}
	if e.opts.ExplicitStart || e.opts.Version != nil || e.docs > 0 {
		e.w.writeIndent()
		e.w.writeIndicator("---", false, false, false)
	}
}

func (e *Emitter) emitDocumentEnd() {
	e.w.writeIndent()
	if e.opts.ExplicitEnd {
		e.w.writeIndicator("...", false, false, false)
		e.w.writeIndent()
	}
}

// emitNode recursively serializes node, where flow reports whether the
// enclosing context is already flow-style and simpleKey reports whether
// node occupies a mapping-key position (forcing a stricter scalar
// style, per §8's "no multiline simple keys" boundary case).
func (e *Emitter) emitNode(node *Node, flow, simpleKey bool) {
	anchor := node.Anchor
	tag, noTag := e.resolvedPrintTag(node)

	switch node.Kind {
	case AliasNode:
		e.w.writeIndicator("*"+node.Value, true, false, false)

	case ScalarNode:
		e.emitScalar(node, tag, noTag, flow, simpleKey)

	case SequenceNode:
		useFlow := flow || node.Style&FlowStyle != 0 || e.opts.SequenceStyle == FLOW_SEQUENCE_STYLE || e.isSimpleCollection(node)
		if anchor != "" {
			e.w.writeAnchor(anchor, "&")
		}
		if !noTag {
			e.writeTag(tag)
		}
		if len(node.Content) == 0 {
			e.w.writeIndicator("[]", true, false, false)
			return
		}
		if useFlow {
			e.emitFlowSequence(node)
		} else {
			e.emitBlockSequence(node)
		}

	case MappingNode:
		useFlow := flow || node.Style&FlowStyle != 0 || e.opts.MappingStyle == FLOW_MAPPING_STYLE || e.isSimpleCollection(node)
		if anchor != "" {
			e.w.writeAnchor(anchor, "&")
		}
		if !noTag {
			e.writeTag(tag)
		}
		if len(node.Content) == 0 {
			e.w.writeIndicator("{}", true, false, false)
			return
		}
		if useFlow {
			e.emitFlowMapping(node)
		} else {
			e.emitBlockMapping(node)
		}

	default:
		Fail(&EmitterError{Message: fmt.Sprintf("cannot emit node with unknown kind %d", node.Kind)})
	}
}

func (e *Emitter) writeTag(tag string) {
	if tag == "!!str" || tag == "!!int" || tag == "!!float" || tag == "!!bool" ||
		tag == "!!null" || tag == "!!timestamp" || tag == "!!binary" || tag == "!!seq" || tag == "!!map" {
		e.w.writeTagHandle(tag)
		return
	}
	e.w.writeTagHandle("!<")
	e.w.writeTagContent(longTag(tag), false)
	e.w.writeIndicator(">", false, false, false)
}

// resolvedPrintTag decides whether node's declared tag equals what the
// resolver would infer from content (in which case it may be omitted),
// per §3's invariant: "printed whenever the declared tag != resolved
// tag from content" for scalars, and "implicit exactly when the
// declared tag equals the default" for collections. TaggedStyle always
// forces the tag to print.
func (e *Emitter) resolvedPrintTag(node *Node) (tag string, omit bool) {
	tag = node.ShortTag()
	if node.Style&TaggedStyle != 0 {
		return tag, false
	}
	switch node.Kind {
	case ScalarNode:
		r := &Resolver{Compat11: e.opts.Compat11Bools}
		contentTag, _ := r.resolve(node.Value)
		return tag, contentTag == tag
	case SequenceNode:
		return tag, tag == "!!seq"
	case MappingNode:
		return tag, tag == "!!map"
	default:
		return tag, true
	}
}

func (e *Emitter) emitScalar(node *Node, tag string, noTag, flow, simpleKey bool) {
	analysis := analyzeScalar(node.Value)
	requested := PLAIN_SCALAR_STYLE
	switch {
	case node.Style&DoubleQuotedStyle != 0:
		requested = DOUBLE_QUOTED_SCALAR_STYLE
	case node.Style&SingleQuotedStyle != 0:
		requested = SINGLE_QUOTED_SCALAR_STYLE
	case node.Style&LiteralStyle != 0:
		requested = LITERAL_SCALAR_STYLE
	case node.Style&FoldedStyle != 0:
		requested = FOLDED_SCALAR_STYLE
	case analysis.multiline && e.opts.NewLineScalarStyle != ANY_SCALAR_STYLE:
		requested = e.opts.NewLineScalarStyle
	}

	style := selectScalarStyle(node.Value, requested, analysis, noTag, true, flow, simpleKey, e.opts.Canonical)

	if node.Anchor != "" {
		e.w.writeAnchor(node.Anchor, "&")
	}
	if !noTag {
		e.writeTag(tag)
	}

	indentless := flow || simpleKey
	switch style {
	case SINGLE_QUOTED_SCALAR_STYLE:
		e.w.writeSingleQuotedScalar(node.Value, indentless)
	case DOUBLE_QUOTED_SCALAR_STYLE:
		e.w.writeDoubleQuotedScalar(node.Value, indentless)
	case LITERAL_SCALAR_STYLE:
		e.w.writeLiteralScalar(node.Value)
	case FOLDED_SCALAR_STYLE:
		e.w.writeFoldedScalar(node.Value)
	default:
		e.w.writePlainScalar(node.Value, indentless)
	}
}

func (e *Emitter) emitBlockSequence(node *Node) {
	indent := e.w.increaseIndent(false, false)
	for _, item := range node.Content {
		e.w.writeIndent()
		e.w.writeIndicator("-", true, false, true)
		e.emitNode(item, false, false)
	}
	e.w.indent = indent
}

func (e *Emitter) emitFlowSequence(node *Node) {
	indent := e.w.increaseIndent(true, false)
	e.w.writeIndicator("[", true, true, false)
	for i, item := range node.Content {
		if i > 0 {
			e.w.writeIndicator(",", false, false, false)
		}
		if e.w.column > e.w.bestWidth {
			e.w.writeIndent()
		}
		e.emitNode(item, true, false)
	}
	e.w.indent = indent
	e.w.writeIndicator("]", false, false, false)
}

// mappingContent returns node's interleaved key/value pairs, sorted by
// key when SortKeys is set.
func (e *Emitter) mappingContent(node *Node) []*Node {
	if !e.opts.SortKeys || len(node.Content) < 4 {
		return node.Content
	}
	n := len(node.Content) / 2
	pairs := make([][2]*Node, n)
	for i := 0; i < n; i++ {
		pairs[i] = [2]*Node{node.Content[2*i], node.Content[2*i+1]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0].Less(pairs[j][0]) })
	content := make([]*Node, 0, len(node.Content))
	for _, p := range pairs {
		content = append(content, p[0], p[1])
	}
	return content
}

func (e *Emitter) emitBlockMapping(node *Node) {
	content := e.mappingContent(node)
	indent := e.w.increaseIndent(false, false)
	for i := 0; i+1 < len(content); i += 2 {
		k, v := content[i], content[i+1]
		e.w.writeIndent()
		if k.Kind == ScalarNode {
			e.emitNode(k, false, true)
			e.w.writeIndicator(":", false, false, false)
		} else {
			e.w.writeIndicator("?", true, false, true)
			e.emitNode(k, false, false)
			e.w.writeIndent()
			e.w.writeIndicator(":", true, false, true)
		}
		e.emitNode(v, false, false)
	}
	e.w.indent = indent
}

func (e *Emitter) emitFlowMapping(node *Node) {
	content := e.mappingContent(node)
	indent := e.w.increaseIndent(true, false)
	e.w.writeIndicator("{", true, true, false)
	for i := 0; i+1 < len(content); i += 2 {
		if i > 0 {
			e.w.writeIndicator(",", false, false, false)
		}
		if e.w.column > e.w.bestWidth {
			e.w.writeIndent()
		}
		k, v := content[i], content[i+1]
		e.emitNode(k, true, true)
		e.w.writeIndicator(":", false, false, false)
		e.emitNode(v, true, false)
	}
	e.w.indent = indent
	e.w.writeIndicator("}", false, false, false)
}

// isSimpleCollection reports whether node is a scalar-only sequence or
// mapping short enough to compact into flow style (SPEC_FULL.md PART D),
// gated behind WithFlowSimpleCollections and never applied when a block
// style was requested through WithSequenceStyle/WithMappingStyle.
func (e *Emitter) isSimpleCollection(node *Node) bool {
	if !e.opts.FlowSimpleCollections {
		return false
	}
	if node.Kind != SequenceNode && node.Kind != MappingNode {
		return false
	}
	if node.Kind == SequenceNode && e.opts.SequenceStyle == BLOCK_SEQUENCE_STYLE ||
		node.Kind == MappingNode && e.opts.MappingStyle == BLOCK_MAPPING_STYLE {
		return false
	}
	for _, child := range node.Content {
		if child.Kind != ScalarNode {
			return false
		}
	}
	length := estimateFlowLength(node)
	width := e.opts.LineWidth
	if width <= 0 {
		width = 80
	}
	return length > 0 && length <= width
}

func estimateFlowLength(node *Node) int {
	switch node.Kind {
	case SequenceNode:
		length := 2
		for i, c := range node.Content {
			if i > 0 {
				length += 2
			}
			length += len(c.Value)
		}
		return length
	case MappingNode:
		length := 2
		for i := 0; i < len(node.Content); i += 2 {
			if i > 0 {
				length += 2
			}
			length += len(node.Content[i].Value) + 2 + len(node.Content[i+1].Value)
		}
		return length
	default:
		return 0
	}
}
