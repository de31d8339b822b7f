package jptr

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every failure the package reports. Returned
// errors wrap one of these along with context; match the class with
// errors.Is rather than on message text.
var (
	// ErrSyntax reports a malformed pointer or fragment string: a missing
	// leading slash, a bad escape sequence, or a bad percent encoding.
	ErrSyntax = errors.New("invalid pointer syntax")

	// ErrNotFound reports a pointer that does not resolve: a missing member,
	// an index past the end of an array, or a null or scalar node where the
	// walk still has tokens to consume.
	ErrNotFound = errors.New("value not found")

	// ErrIndex reports a token that is not a usable array index: leading
	// zeros, non-digits, more than eight digits, a negative programmatic
	// index, or the end-of-array token "-".
	ErrIndex = errors.New("illegal array index")

	// ErrType reports a reference assertion that found a value of the wrong
	// type, including null where a non-nullable type was requested.
	ErrType = errors.New("child not of expected type")

	// ErrNoParent reports a parent operation on the root pointer.
	ErrNoParent = errors.New("root has no parent")
)

// ResolveError describes a failed resolution step. Ptr is truncated to the
// point of failure: the missing child for member and index failures, or the
// node that could not be traversed when the walk met a null or scalar value
// with tokens remaining.
type ResolveError struct {
	Ptr Pointer // pointer truncated to the failure
	Msg string  // description of the failing step
	Err error   // ErrNotFound or ErrIndex
}

func (e *ResolveError) Error() string {
	if e.Ptr.IsRoot() {
		return e.Msg + " at document root"
	}
	return fmt.Sprintf("%s at %q", e.Msg, e.Ptr.String())
}

func (e *ResolveError) Unwrap() error { return e.Err }

// TypeError describes a reference assertion that found a value whose dynamic
// type does not satisfy the requested one. Ptr is the full pointer of the
// offending value.
type TypeError struct {
	Ptr  Pointer // full pointer of the offending value
	Want string  // name of the requested Go type
	Got  any     // offending value
}

func (e *TypeError) Error() string {
	if e.Got == nil {
		return fmt.Sprintf("child not of expected type at %q: want %s, got null", e.Ptr.String(), e.Want)
	}
	return fmt.Sprintf("child not of expected type at %q: want %s, got %T (%v)", e.Ptr.String(), e.Want, e.Got, e.Got)
}

func (e *TypeError) Unwrap() error { return ErrType }
