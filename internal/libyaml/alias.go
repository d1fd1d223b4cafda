// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The Alias/Redundancy engine (§4.4): an optional pre-emission pass that
// rewrites repeated subtrees into anchor/alias pairs. A scalar with no
// anchor of its own is never aliased, since a repeated scalar is cheaper
// written out than referenced; a scalar the caller already anchored is
// eligible like any Sequence or Mapping subtree.

package libyaml

import "fmt"

// ApplyAliasStrategy rewrites root in place according to strategy,
// returning the (possibly identical) root to serialize. AliasNone is a
// no-op. AliasIdentity aliases a subtree the second time the same *Node
// pointer is reached; AliasValue aliases the second time a
// structurally-equal subtree is reached, regardless of identity.
// Anchors a1, a2, ... are assigned to first occurrences in the order
// their first repeat is reached in a depth-first pre-order walk, and any
// anchor a caller already set on a node is preserved and never
// reassigned.
func ApplyAliasStrategy(root *Node, strategy AliasStrategy) *Node {
	if strategy == AliasNone || root == nil {
		return root
	}
	a := &aliaser{strategy: strategy, seenByPointer: map[*Node]*Node{}}
	for _, n := range collectExplicitAnchors(root) {
		a.anchored = append(a.anchored, n)
	}
	return a.walk(root)
}

type aliaser struct {
	strategy AliasStrategy
	next     int

	// seenByPointer/seenByValue map an already-visited subtree to the
	// first occurrence that should receive the anchor.
	seenByPointer map[*Node]*Node
	seenByValue   []*Node

	anchored []*Node
}

func collectExplicitAnchors(n *Node) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Anchor != "" {
			out = append(out, n)
		}
		for _, c := range n.Content {
			walk(c)
		}
	}
	walk(n)
	return out
}

func (a *aliaser) nextAnchorName() string {
	a.next++
	name := fmt.Sprintf("a%d", a.next)
	for a.nameTaken(name) {
		a.next++
		name = fmt.Sprintf("a%d", a.next)
	}
	return name
}

func (a *aliaser) nameTaken(name string) bool {
	for _, n := range a.anchored {
		if n.Anchor == name {
			return true
		}
	}
	return false
}

// walk returns the node to put in the parent's place: either n itself
// (first occurrence, or a kind that is never aliased), or a freshly
// built AliasNode pointing at an anchor assigned to the first
// occurrence.
func (a *aliaser) walk(n *Node) *Node {
	if n == nil || n.Kind == AliasNode {
		return n
	}
	if n.Kind == ScalarNode && n.Anchor == "" {
		return n
	}

	if a.strategy == AliasIdentity {
		if first, ok := a.seenByPointer[n]; ok {
			return a.alias(first)
		}
		a.seenByPointer[n] = n
	} else {
		for _, prior := range a.seenByValue {
			if prior.Equal(n) {
				return a.alias(prior)
			}
		}
		a.seenByValue = append(a.seenByValue, n)
	}

	for i, c := range n.Content {
		n.Content[i] = a.walk(c)
	}
	return n
}

func (a *aliaser) alias(first *Node) *Node {
	if first.Anchor == "" {
		first.Anchor = a.nextAnchorName()
		a.anchored = append(a.anchored, first)
	}
	return newAlias(first.Anchor)
}
