// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"testing"

	"github.com/nodeware/yamlemit/internal/testutil/assert"
)

func emit(t *testing.T, node *Node, opts ...Option) string {
	t.Helper()
	o, err := ApplyOptions(opts...)
	assert.NoError(t, err)
	e := NewEmitter(o)
	assert.NoError(t, e.Open())
	assert.NoError(t, e.Serialize(node))
	assert.NoError(t, e.Close())
	return string(e.Data())
}

func TestEmitterLifecycle(t *testing.T) {
	o, err := ApplyOptions()
	assert.NoError(t, err)
	e := NewEmitter(o)

	err = e.Serialize(newScalar("x", "!!str", 0, ""))
	assert.NotNil(t, err)

	assert.NoError(t, e.Open())
	assert.ErrorMatches(t, "already opened", e.Open())

	assert.NoError(t, e.Close())
	assert.NoError(t, e.Close())

	err = e.Serialize(newScalar("x", "!!str", 0, ""))
	assert.NotNil(t, err)
}

func TestEmitterScalarPlain(t *testing.T) {
	got := emit(t, newScalar("hello", "!!str", 0, ""))
	assert.Equal(t, "hello\n", got)
}

func TestEmitterScalarMasqueradedString(t *testing.T) {
	got := emit(t, newScalar("true", "!!str", TaggedStyle|SingleQuotedStyle, ""))
	assert.Equal(t, "!!str 'true'\n", got)
}

func TestEmitterBlockSequence(t *testing.T) {
	seq := newSequence([]*Node{
		newScalar("a", "!!str", 0, ""),
		newScalar("b", "!!str", 0, ""),
	}, "", 0, "")
	got := emit(t, seq)
	assert.Equal(t, "- a\n- b\n", got)
}

func TestEmitterBlockMapping(t *testing.T) {
	m := newMapping([]*Node{
		newScalar("a", "!!str", 0, ""), newScalar("1", "!!int", 0, ""),
		newScalar("b", "!!str", 0, ""), newScalar("2", "!!int", 0, ""),
	}, "", 0, "")
	got := emit(t, m)
	assert.Equal(t, "a: 1\nb: 2\n", got)
}

func TestEmitterFlowSequence(t *testing.T) {
	seq := newSequence([]*Node{
		newScalar("a", "!!str", 0, ""),
		newScalar("b", "!!str", 0, ""),
	}, "", FlowStyle, "")
	got := emit(t, seq)
	assert.Equal(t, "[a, b]\n", got)
}

func TestEmitterEmptyCollections(t *testing.T) {
	assert.Equal(t, "[]\n", emit(t, newSequence(nil, "", 0, "")))
	assert.Equal(t, "{}\n", emit(t, newMapping(nil, "", 0, "")))
}

func TestEmitterExplicitStartAndEnd(t *testing.T) {
	got := emit(t, newScalar("x", "!!str", 0, ""), WithExplicitStart(true), WithExplicitEnd(true))
	assert.Equal(t, "---\nx\n...\n", got)
}

func TestEmitterAnchorAndAlias(t *testing.T) {
	shared := newScalar("v", "!!str", 0, "")
	shared.Anchor = "a1"
	seq := newSequence([]*Node{shared, newAlias("a1")}, "", 0, "")
	got := emit(t, seq)
	assert.Equal(t, "- &a1 v\n- *a1\n", got)
}

func TestEmitterTaggedStyleForcesTag(t *testing.T) {
	n := newScalar("42", "!!int", TaggedStyle, "")
	got := emit(t, n)
	assert.Equal(t, "!!int 42\n", got)
}

func TestEmitterCustomTagUsesVerbatimForm(t *testing.T) {
	n := newScalar("x", "!custom", TaggedStyle, "")
	got := emit(t, n)
	assert.Equal(t, "!<!custom> x\n", got)
}

func TestEmitterSortKeysOrdersBlockMapping(t *testing.T) {
	m := newMapping([]*Node{
		newScalar("b", "!!str", 0, ""), newScalar("2", "!!int", 0, ""),
		newScalar("a", "!!str", 0, ""), newScalar("1", "!!int", 0, ""),
	}, "", 0, "")
	got := emit(t, m, WithSortKeys(true))
	assert.Equal(t, "a: 1\nb: 2\n", got)
}

func TestEmitterSortKeysOrdersFlowMapping(t *testing.T) {
	m := newMapping([]*Node{
		newScalar("b", "!!str", 0, ""), newScalar("2", "!!int", 0, ""),
		newScalar("a", "!!str", 0, ""), newScalar("1", "!!int", 0, ""),
	}, "", FlowStyle, "")
	got := emit(t, m, WithSortKeys(true))
	assert.Equal(t, "{a: 1, b: 2}\n", got)
}

func TestEmitterWithoutSortKeysKeepsBuildOrder(t *testing.T) {
	m := newMapping([]*Node{
		newScalar("b", "!!str", 0, ""), newScalar("2", "!!int", 0, ""),
		newScalar("a", "!!str", 0, ""), newScalar("1", "!!int", 0, ""),
	}, "", 0, "")
	got := emit(t, m)
	assert.Equal(t, "b: 2\na: 1\n", got)
}

func TestEstimateFlowLengthSequence(t *testing.T) {
	seq := newSequence([]*Node{
		newScalar("a", "!!str", 0, ""),
		newScalar("bb", "!!str", 0, ""),
	}, "", 0, "")
	assert.Equal(t, len("[a, bb]"), estimateFlowLength(seq))
}
