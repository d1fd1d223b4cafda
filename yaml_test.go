// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"testing"

	"github.com/nodeware/yamlemit/internal/testutil/assert"
)

func TestDumpScalar(t *testing.T) {
	out, err := Dump("hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestDumpStructWithoutProtocolFails(t *testing.T) {
	_, err := Dump(struct{ Name string }{Name: "x"})
	assert.ErrorMatches(t, "cannot represent value of type", err)
}

func TestDumpAllSeparatesDocuments(t *testing.T) {
	out, err := DumpAll([]any{1, 2})
	assert.NoError(t, err)
	assert.Equal(t, "1\n---\n2\n", string(out))
}

func TestDumpWithOptionsAppliesIndent(t *testing.T) {
	out, err := Dump(map[string]any{"a": []any{1, 2}}, WithIndent(4))
	assert.NoError(t, err)
	assert.Equal(t, "a:\n    - 1\n    - 2\n", string(out))
}

func TestRepresentReturnsNodeWithoutSerializing(t *testing.T) {
	n, err := Represent(42)
	assert.NoError(t, err)
	assert.Equal(t, ScalarNode, n.Kind)
	assert.Equal(t, "42", n.Value)
}

func TestSerializeHandBuiltNode(t *testing.T) {
	n := Sequence([]*Node{
		Scalar("a", "!!str", 0, ""),
		Scalar("b", "!!str", 0, ""),
	}, "", 0, "")
	out, err := Serialize(n)
	assert.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", string(out))
}

func TestSerializeAppliesRedundancyStrategy(t *testing.T) {
	shared := Mapping([]*Node{Scalar("k", "!!str", 0, ""), Scalar("v", "!!str", 0, "")}, "", 0, "")
	n := Sequence([]*Node{shared, shared}, "", 0, "")
	out, err := Serialize(n, WithRedundancyStrategy(AliasIdentity))
	assert.NoError(t, err)
	assert.Equal(t, "- &a1\n  k: v\n- *a1\n", string(out))
}

func TestDumperWritesMultipleDocumentsOnClose(t *testing.T) {
	var buf bytesBuffer
	d, err := NewDumper(&buf)
	assert.NoError(t, err)
	assert.NoError(t, d.Dump("x"))
	assert.NoError(t, d.Dump("y"))
	assert.NoError(t, d.Close())
	assert.Equal(t, "x\n---\ny\n", buf.String())
}

func TestV3KeepsBlockStyle(t *testing.T) {
	out, err := Dump([]any{1, 2}, V3)
	assert.NoError(t, err)
	assert.Equal(t, "- 1\n- 2\n", string(out))
}

func TestV4CompactsSimpleCollectionsToFlow(t *testing.T) {
	out, err := Dump([]any{1, 2}, V4)
	assert.NoError(t, err)
	assert.Equal(t, "[1, 2]\n", string(out))
}

type bytesBuffer struct {
	data []byte
}

func (b *bytesBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *bytesBuffer) String() string {
	return string(b.data)
}
