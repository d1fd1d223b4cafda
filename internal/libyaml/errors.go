// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types surfaced by the emitter and representer, plus the
// panic/recover boundary used to keep the deeply recursive tree-walking
// code (node construction, serialization) free of manual error
// propagation while still reporting synchronously at the API boundary.

package libyaml

import "fmt"

// EmitterError reports a wrong-state call (NotOpened, AlreadyOpened,
// AlreadyClosed) or a node the event emitter cannot write. Anchor names,
// tags and encoding are written as given and are not validated.
type EmitterError struct {
	Message string
}

func (e *EmitterError) Error() string {
	return fmt.Sprintf("yaml: %s", e.Message)
}

// RepresenterError reports a value that matched no representable
// capability (NodeRepresentable, ScalarRepresentable, or the bounded
// reflect fallback).
type RepresenterError struct {
	Message string
}

func (e *RepresenterError) Error() string {
	return fmt.Sprintf("yaml: %s", e.Message)
}

// YAMLError is the internal panic payload used to unwind out of a
// recursive emission without threading error returns through every call.
type YAMLError struct {
	Err error
}

func (e *YAMLError) Error() string {
	return e.Err.Error()
}

// Fail panics with err wrapped for handleErr to recover.
func Fail(err error) {
	panic(&YAMLError{err})
}

// failf panics with a formatted error wrapped for handleErr to recover.
func failf(format string, args ...any) {
	panic(&YAMLError{fmt.Errorf("yaml: "+format, args...)})
}

// handleErr recovers a *YAMLError panic into the named return value *err.
// Any other panic value is a programming bug and is re-raised.
func handleErr(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(*YAMLError); ok {
			*err = e.Err
		} else {
			panic(v)
		}
	}
}
