// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libyaml

import (
	"testing"

	"github.com/nodeware/yamlemit/internal/testutil/assert"
)

func TestResolverCoreSchema(t *testing.T) {
	tests := []struct {
		in      string
		wantTag string
	}{
		{"", "!!null"},
		{"~", "!!null"},
		{"null", "!!null"},
		{"Null", "!!null"},
		{"true", "!!bool"},
		{"False", "!!bool"},
		{"0", "!!int"},
		{"-42", "!!int"},
		{"0x1A", "!!int"},
		{"0b101", "!!int"},
		{"3.14", "!!float"},
		{"-.inf", "!!float"},
		{".nan", "!!float"},
		{"2019-01-01", "!!timestamp"},
		{"2019-01-01T00:00:00Z", "!!timestamp"},
		{"hello world", "!!str"},
		{"yes", "!!str"},
		{"on", "!!str"},
	}

	r := &Resolver{}
	for _, tt := range tests {
		tag, value := r.resolve(tt.in)
		assert.Equalf(t, tt.wantTag, tag, "resolve(%q)", tt.in)
		assert.Equal(t, tt.in, value)
	}
}

func TestResolverCompat11Bools(t *testing.T) {
	r := &Resolver{Compat11: true}
	for _, in := range []string{"yes", "No", "ON", "off"} {
		tag, _ := r.resolve(in)
		assert.Equalf(t, "!!bool", tag, "resolve(%q) with Compat11", in)
	}

	r2 := &Resolver{}
	tag, _ := r2.resolve("yes")
	assert.Equal(t, "!!str", tag)
}

func TestResolverResolveSetsTag(t *testing.T) {
	r := NewResolver(nil)
	n := newScalar("123", "", 0, "")
	r.Resolve(n)
	assert.Equal(t, "tag:yaml.org,2002:int", n.Tag)
}

func TestResolverResolveLeavesDeclaredTag(t *testing.T) {
	r := NewResolver(nil)
	n := newScalar("123", "!!str", TaggedStyle, "")
	r.Resolve(n)
	assert.Equal(t, "tag:yaml.org,2002:str", n.Tag)
}

func TestResolverResolveCollections(t *testing.T) {
	r := NewResolver(nil)
	seq := newSequence(nil, "", 0, "")
	seq.Tag = ""
	r.Resolve(seq)
	assert.Equal(t, seqTag, seq.Tag)

	m := newMapping(nil, "", 0, "")
	m.Tag = ""
	r.Resolve(m)
	assert.Equal(t, mapTag, m.Tag)
}

func TestShortTagAndLongTag(t *testing.T) {
	assert.Equal(t, "!!str", shortTag("tag:yaml.org,2002:str"))
	assert.Equal(t, "!custom", shortTag("!custom"))
	assert.Equal(t, "tag:yaml.org,2002:str", longTag("!!str"))
	assert.Equal(t, "!custom", longTag("!custom"))
}
