// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"testing"

	"github.com/nodeware/yamlemit/internal/testutil/assert"
)

func TestApplyAliasStrategyNoneIsNoOp(t *testing.T) {
	shared := newScalar("x", "!!str", 0, "")
	seq := newSequence([]*Node{shared, shared}, "", 0, "")
	got := ApplyAliasStrategy(seq, AliasNone)
	assert.Equal(t, seq, got)
	assert.Equal(t, "", got.Content[0].Anchor)
	assert.Equal(t, ScalarNode, got.Content[1].Kind)
}

func TestApplyAliasStrategyIdentityAliasesRepeatedPointer(t *testing.T) {
	shared := newMapping([]*Node{newScalar("k", "!!str", 0, ""), newScalar("v", "!!str", 0, "")}, "", 0, "")
	seq := newSequence([]*Node{shared, shared}, "", 0, "")

	got := ApplyAliasStrategy(seq, AliasIdentity)

	assert.Equal(t, MappingNode, got.Content[0].Kind)
	assert.Equal(t, "a1", got.Content[0].Anchor)
	assert.Equal(t, AliasNode, got.Content[1].Kind)
	assert.Equal(t, "a1", got.Content[1].Value)
}

func TestApplyAliasStrategyIdentityIgnoresDistinctEqualPointers(t *testing.T) {
	a := newScalar("v", "!!str", 0, "")
	b := newScalar("v", "!!str", 0, "")
	seq := newSequence([]*Node{
		newSequence([]*Node{a}, "", 0, ""),
		newSequence([]*Node{b}, "", 0, ""),
	}, "", 0, "")

	got := ApplyAliasStrategy(seq, AliasIdentity)

	assert.Equal(t, SequenceNode, got.Content[0].Kind)
	assert.Equal(t, SequenceNode, got.Content[1].Kind)
	assert.Equal(t, "", got.Content[1].Anchor)
}

func TestApplyAliasStrategyValueAliasesStructuralDuplicate(t *testing.T) {
	first := newSequence([]*Node{newScalar("v", "!!str", 0, "")}, "", 0, "")
	second := newSequence([]*Node{newScalar("v", "!!str", 0, "")}, "", 0, "")
	seq := newSequence([]*Node{first, second}, "", 0, "")

	got := ApplyAliasStrategy(seq, AliasValue)

	assert.Equal(t, SequenceNode, got.Content[0].Kind)
	assert.Equal(t, "a1", got.Content[0].Anchor)
	assert.Equal(t, AliasNode, got.Content[1].Kind)
	assert.Equal(t, "a1", got.Content[1].Value)
}

func TestApplyAliasStrategyNeverAliasesScalars(t *testing.T) {
	a := newScalar("dup", "!!str", 0, "")
	b := newScalar("dup", "!!str", 0, "")
	seq := newSequence([]*Node{a, b}, "", 0, "")

	got := ApplyAliasStrategy(seq, AliasValue)

	assert.Equal(t, ScalarNode, got.Content[0].Kind)
	assert.Equal(t, ScalarNode, got.Content[1].Kind)
	assert.Equal(t, "", got.Content[1].Anchor)
}

func TestApplyAliasStrategyDeterministicNaming(t *testing.T) {
	first := newSequence([]*Node{newScalar("x", "!!str", 0, "")}, "", 0, "")
	second := newSequence([]*Node{newScalar("y", "!!str", 0, "")}, "", 0, "")
	root := newSequence([]*Node{first, first, second, second}, "", 0, "")

	got := ApplyAliasStrategy(root, AliasIdentity)

	assert.Equal(t, "a1", got.Content[0].Anchor)
	assert.Equal(t, "a1", got.Content[1].Value)
	assert.Equal(t, "a2", got.Content[2].Anchor)
	assert.Equal(t, "a2", got.Content[3].Value)
}

func TestApplyAliasStrategyAliasesPreAnchoredScalar(t *testing.T) {
	shared := newScalar("v", "!!str", 0, "")
	shared.Anchor = "user"
	seq := newSequence([]*Node{shared, shared}, "", 0, "")

	got := ApplyAliasStrategy(seq, AliasIdentity)

	assert.Equal(t, ScalarNode, got.Content[0].Kind)
	assert.Equal(t, "user", got.Content[0].Anchor)
	assert.Equal(t, AliasNode, got.Content[1].Kind)
	assert.Equal(t, "user", got.Content[1].Value)
}

func TestApplyAliasStrategyRespectsExplicitAnchor(t *testing.T) {
	shared := newMapping([]*Node{newScalar("k", "!!str", 0, "")}, "", 0, "")
	shared.Anchor = "mine"
	seq := newSequence([]*Node{shared, shared}, "", 0, "")

	got := ApplyAliasStrategy(seq, AliasIdentity)

	assert.Equal(t, "mine", got.Content[0].Anchor)
	assert.Equal(t, AliasNode, got.Content[1].Kind)
	assert.Equal(t, "mine", got.Content[1].Value)
}
