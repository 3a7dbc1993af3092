// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lindel linearizes and delinearizes fixed-width numeric tuples
// through two space-filling-curve codecs: the generalized Hilbert curve
// and the Morton (Z-order) curve. It implements the dispatch and type
// algebra that selects a codec instantiation from a (kind, lane width,
// lane count, element representation) descriptor, validates it, and
// drives batched encode/decode calls over that descriptor.
package lindel

import (
	"fmt"
	"runtime"
)

// ErrorKind classifies an Error by where in the call lifecycle it was
// raised, per the failure taxonomy in DESIGN.md.
type ErrorKind uint8

const (
	// DomainErrorKind marks a bind-time descriptor validation failure.
	// It is user-visible and is never retried.
	DomainErrorKind ErrorKind = iota
	// InputErrorKind marks a runtime input that violates the batch
	// contract: a null lane inside an otherwise non-null tuple, or a
	// tuple whose lane count differs from the descriptor's.
	InputErrorKind
	// InternalErrorKind marks a codec invariant broken by a bug in this
	// package; it should never surface to a correctly used caller.
	InternalErrorKind
)

func (k ErrorKind) String() string {
	switch k {
	case DomainErrorKind:
		return "domain"
	case InputErrorKind:
		return "input"
	case InternalErrorKind:
		return "internal"
	default:
		return "unknown"
	}
}

// Error is the error type returned by every exported function in this
// package. It wraps a classified message without leaking buffer
// pointers or row indices beyond the failing row.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string { return "lindel: " + e.Kind.String() + ": " + e.msg }

func domainErrorf(format string, args ...interface{}) error {
	return &Error{Kind: DomainErrorKind, msg: fmt.Sprintf(format, args...)}
}

func inputErrorf(format string, args ...interface{}) error {
	return &Error{Kind: InputErrorKind, msg: fmt.Sprintf(format, args...)}
}

func internalErrorf(format string, args ...interface{}) error {
	return &Error{Kind: InternalErrorKind, msg: fmt.Sprintf(format, args...)}
}

// errRecover turns a panic raised within the batch driver into an
// *Error assigned to *err, re-panicking on runtime errors (nil pointer
// dereference, index out of range, ...) which indicate a bug rather
// than a classified failure. Modeled on flate.errRecover/bzip2.errRecover.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case *Error:
		*err = ex
	case error:
		*err = internalErrorf("%v", ex)
	default:
		panic(ex)
	}
}
