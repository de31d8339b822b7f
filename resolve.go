package jptr

import "fmt"

// Array index tokens are limited to eight digits, keeping the parsed value
// well below any realistic array length.
const maxIndexDigits = 8

// arrayIndex validates tok as an array index: one to eight ASCII digits with
// no leading zero (a lone "0" is fine). ok=false means the token is not
// index syntax; the end-of-array token "-" is reported the same way.
func arrayIndex(tok string) (int, bool) {
	if len(tok) == 0 || len(tok) > maxIndexDigits {
		return 0, false
	}
	if tok[0] == '0' && len(tok) > 1 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// stepFailure classifies why a single resolution step could not proceed.
type stepFailure int

const (
	stepOK            stepFailure = iota
	stepMissingMember             // object has no member named by the token
	stepBadIndex                  // token is not valid array index syntax
	stepOutOfRange                // index is valid syntax but >= array length
	stepNullNode                  // node is null with tokens remaining
	stepNotContainer              // node is a scalar with tokens remaining
)

// step advances one token from node. Every resolver entry point and both
// reference types share this walk; they differ only in outcome handling.
func step(node any, tok string) (any, stepFailure) {
	switch n := node.(type) {
	case D:
		child, ok := n.Lookup(tok)
		if !ok {
			return nil, stepMissingMember
		}
		return child, stepOK
	case A:
		i, ok := arrayIndex(tok)
		if !ok {
			return nil, stepBadIndex
		}
		if i >= len(n) {
			return nil, stepOutOfRange
		}
		return n[i], stepOK
	case nil:
		return nil, stepNullNode
	default:
		return nil, stepNotContainer
	}
}

// stepError converts a failed step at token i into a *ResolveError. Member
// and index failures carry the pointer including the failing token; null and
// scalar intermediates carry the pointer of the node that could not be
// traversed.
func (p Pointer) stepError(i int, tok string, fail stepFailure) error {
	switch fail {
	case stepMissingMember:
		return &ResolveError{Ptr: p.truncate(i + 1), Msg: fmt.Sprintf("cannot locate property %q", tok), Err: ErrNotFound}
	case stepBadIndex:
		if tok == "-" {
			return &ResolveError{Ptr: p.truncate(i + 1), Msg: `end-of-array index "-" cannot be resolved`, Err: ErrIndex}
		}
		return &ResolveError{Ptr: p.truncate(i + 1), Msg: fmt.Sprintf("illegal array index %q", tok), Err: ErrIndex}
	case stepOutOfRange:
		return &ResolveError{Ptr: p.truncate(i + 1), Msg: fmt.Sprintf("array index %s out of bounds", tok), Err: ErrNotFound}
	case stepNullNode:
		return &ResolveError{Ptr: p.truncate(i), Msg: "intermediate node is null", Err: ErrNotFound}
	default:
		return &ResolveError{Ptr: p.truncate(i), Msg: "intermediate node is not a container", Err: ErrNotFound}
	}
}

// Find resolves the pointer against root and returns the addressed value,
// which may itself be nil for a null leaf. Failures return a *ResolveError
// carrying the pointer truncated to the failing step; classify with
// errors.Is against ErrNotFound and ErrIndex.
func (p Pointer) Find(root any) (any, error) {
	node := root
	for i, tok := range p.tokens {
		next, fail := step(node, tok)
		if fail != stepOK {
			return nil, p.stepError(i, tok, fail)
		}
		node = next
	}
	return node, nil
}

// Lookup resolves the pointer with a comma-ok result. A present null leaf
// yields (nil, true); every failure mode of Find, and a nil root, yields
// (nil, false).
func (p Pointer) Lookup(root any) (any, bool) {
	if root == nil {
		return nil, false
	}
	node := root
	for _, tok := range p.tokens {
		next, fail := step(node, tok)
		if fail != stepOK {
			return nil, false
		}
		node = next
	}
	return node, true
}

// Exists reports whether the pointer resolves against root. Exists and
// Lookup always agree on presence.
func (p Pointer) Exists(root any) bool {
	_, ok := p.Lookup(root)
	return ok
}
