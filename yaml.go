//
// Copyright (c) 2011-2019 Canonical Ltd
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

// Package yaml implements YAML 1.1/1.2 emission for the Go language:
// turning Go values and hand-built Node trees into YAML text.
//
// Source code and other details for the project are available at GitHub:
//
//	https://github.com/nodeware/yamlemit
package yaml

import (
	"bytes"
	"reflect"

	"github.com/nodeware/yamlemit/internal/libyaml"
)

// LineBreak represents the line ending style for YAML output.
type LineBreak = libyaml.LineBreak

// Line break constants for different platforms.
const (
	LineBreakLN   = libyaml.LN_BREAK   // Unix-style \n (default)
	LineBreakCR   = libyaml.CR_BREAK   // Old Mac-style \r
	LineBreakCRLN = libyaml.CRLN_BREAK // Windows-style \r\n
)

//-----------------------------------------------------------------------------
// Represent / Serialize API
//-----------------------------------------------------------------------------

// Represent converts in into a Node tree using the given options, without
// emitting it. Useful when a caller wants to inspect or further edit the
// Node before serializing it.
func Represent(in any, opts ...Option) (node *Node, err error) {
	defer handleErr(&err)
	o, err := libyaml.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	n := libyaml.Represent(reflect.ValueOf(in), o)
	n = libyaml.ApplyAliasStrategy(n, o.RedundancyStrategy)
	return n, nil
}

// Dump encodes a value to YAML with the given options.
//
// The value is first converted to a Node tree via Represent (dispatching
// on NodeRepresentable, ScalarRepresentable and Marshaler, falling back to
// a bounded reflect conversion for slices, arrays and maps), then
// serialized. Structs have no reflect fallback: a struct value that
// implements none of the representation protocols is a representation
// error, not a struct-tag-driven dump.
func Dump(in any, opts ...Option) (out []byte, err error) {
	defer handleErr(&err)
	var buf bytes.Buffer
	d, err := NewDumper(&buf, opts...)
	if err != nil {
		return nil, err
	}
	if err := d.Dump(in); err != nil {
		return nil, err
	}
	if err := d.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DumpAll encodes multiple values as a multi-document YAML stream.
//
// Each value becomes a separate YAML document, separated by "---".
func DumpAll(in []any, opts ...Option) (out []byte, err error) {
	defer handleErr(&err)
	var buf bytes.Buffer
	d, err := NewDumper(&buf, opts...)
	if err != nil {
		return nil, err
	}
	for _, v := range in {
		if err := d.Dump(v); err != nil {
			return nil, err
		}
	}
	if err := d.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Serialize writes node's YAML encoding to the stream, bypassing
// Represent entirely: useful for callers that build Nodes by hand (via
// Scalar/Sequence/Mapping/Alias) and want full control over style, tags
// and anchors.
func Serialize(node *Node, opts ...Option) (out []byte, err error) {
	defer handleErr(&err)
	var buf bytes.Buffer
	o, err := libyaml.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	e := libyaml.NewEmitter(o)
	if err := e.Open(); err != nil {
		return nil, err
	}
	node = libyaml.ApplyAliasStrategy(node, o.RedundancyStrategy)
	if err := e.Serialize(node); err != nil {
		return nil, err
	}
	if err := e.Close(); err != nil {
		return nil, err
	}
	buf.Write(e.Data())
	return buf.Bytes(), nil
}

// A Dumper writes YAML values to an output stream with configurable
// options. Each call to Dump represents and serializes one value into an
// internal buffer; the second and subsequent documents are preceded by a
// "---" separator. Nothing reaches the output stream before Close.
type Dumper struct {
	w    bytesWriter
	e    *libyaml.Emitter
	opts *libyaml.Options
}

type bytesWriter interface {
	Write(p []byte) (n int, err error)
}

// NewDumper returns a new Dumper that writes to w with the given options.
//
// The Dumper must be closed after use: Close is what writes the output to w.
func NewDumper(w bytesWriter, opts ...Option) (*Dumper, error) {
	o, err := libyaml.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	e := libyaml.NewEmitter(o)
	if err := e.Open(); err != nil {
		return nil, err
	}
	return &Dumper{w: w, e: e, opts: o}, nil
}

// Dump represents v and appends its YAML encoding to the Dumper's buffer.
func (d *Dumper) Dump(v any) (err error) {
	defer handleErr(&err)
	node := libyaml.Represent(reflect.ValueOf(v), d.opts)
	node = libyaml.ApplyAliasStrategy(node, d.opts.RedundancyStrategy)
	return d.e.Serialize(node)
}

// Close closes the Dumper and writes all buffered output to the
// underlying writer. It does not write a stream terminating string "...".
func (d *Dumper) Close() (err error) {
	defer handleErr(&err)
	if err := d.e.Close(); err != nil {
		return err
	}
	_, err = d.w.Write(d.e.Data())
	return err
}

//-----------------------------------------------------------------------------
// Error function
//-----------------------------------------------------------------------------

func handleErr(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(*libyaml.YAMLError); ok {
			*err = e.Err
		} else {
			panic(v)
		}
	}
}
