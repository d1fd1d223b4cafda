// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The representation protocol (§4.3): the two capabilities a host value
// can implement to control how the Representer turns it into a Node.

package libyaml

import "reflect"

// NodeRepresentable is implemented by a value that can produce a Node
// directly, taking full control of its own shape (style, tag, anchor,
// nested structure).
type NodeRepresentable interface {
	ToYAMLNode() (*Node, error)
}

// ScalarRepresentable is a narrower capability: the value always
// produces a single Scalar, but needs the active Options to do so
// (numeric formatting strategy, in particular). The Representer accepts
// either capability; a ScalarRepresentable does not also implement
// NodeRepresentable.
type ScalarRepresentable interface {
	RepresentScalar(opts *Options) (*Node, error)
}

// Marshaler may be implemented by types to customize their behavior
// when represented, returning a plain Go value to be represented in
// their place rather than a Node directly. This is the lowest-friction
// hook: the returned value still goes through the normal representer
// dispatch, including the reflect fallback.
type Marshaler interface {
	MarshalYAML() (any, error)
}

// IsZeroer is used to check whether an object is zero, to determine
// whether an optional field should represent as null or be omitted by
// a caller composing its own Nodes. time.Time implements it.
type IsZeroer interface {
	IsZero() bool
}

// isZero reports whether v represents the zero value for its type. If v
// implements IsZeroer, IsZero() is used; otherwise the check is
// kind-specific.
func isZero(v reflect.Value) bool {
	kind := v.Kind()
	if z, ok := v.Interface().(IsZeroer); ok {
		if (kind == reflect.Pointer || kind == reflect.Interface) && v.IsNil() {
			return true
		}
		return z.IsZero()
	}
	switch kind {
	case reflect.String:
		return len(v.String()) == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Bool:
		return !v.Bool()
	default:
		return false
	}
}
