package jptr

import (
	"fmt"
	"strconv"
)

// Cursor is the untyped counterpart of Ref: a pointer bound to a document
// together with the value it resolves to, or a false validity flag when it
// does not resolve. Navigation never returns an error; it propagates
// invalidity instead, so a chain of moves can be built first and checked
// once at the end. Cursors re-derive validity at every step rather than
// caching ancestors.
type Cursor struct {
	base any
	ptr  Pointer
	ok   bool
	val  any
}

// NewCursor returns a cursor at the root of doc, valid iff doc is non-null.
func NewCursor(doc any) Cursor {
	return Cursor{base: doc, ok: doc != nil, val: doc}
}

// CursorAt binds p to doc, eagerly resolving value and validity.
func CursorAt(doc any, p Pointer) Cursor {
	val, ok := p.Lookup(doc)
	return Cursor{base: doc, ptr: p, ok: ok, val: val}
}

// Child moves one token down. The pointer extends either way; validity is
// re-derived from the current value, and an invalid cursor stays invalid.
func (c Cursor) Child(token string) Cursor {
	next := Cursor{base: c.base, ptr: c.ptr.Child(token)}
	if !c.ok {
		return next
	}
	val, fail := step(c.val, token)
	if fail != stepOK {
		return next
	}
	next.ok = true
	next.val = val
	return next
}

// At moves to array element i. A negative index yields an invalid cursor
// whose pointer still records the move.
func (c Cursor) At(i int) Cursor {
	if i < 0 {
		return Cursor{base: c.base, ptr: c.ptr.Child(strconv.Itoa(i))}
	}
	return c.Child(strconv.Itoa(i))
}

// Parent truncates the pointer by one token and re-resolves it from the
// base, so an invalid cursor can become valid again once the broken suffix
// is dropped. The parent of a root cursor is invalid.
func (c Cursor) Parent() Cursor {
	parentPtr, err := c.ptr.Parent()
	if err != nil {
		return Cursor{base: c.base, ptr: c.ptr}
	}
	return CursorAt(c.base, parentPtr)
}

// Locate searches the current value's descendants for the given node, as
// Ref.Locate does. An invalid cursor locates nothing.
func (c Cursor) Locate(target any) (Cursor, bool) {
	if !c.ok {
		return Cursor{base: c.base, ptr: c.ptr}, false
	}
	ptr, ok := locate(c.val, target, c.ptr)
	if !ok {
		return Cursor{base: c.base, ptr: c.ptr}, false
	}
	return CursorAt(c.base, ptr), true
}

// Valid reports whether the pointer resolves in the base document.
func (c Cursor) Valid() bool {
	return c.ok
}

// Value returns the resolved value, nil when the cursor is invalid.
func (c Cursor) Value() any {
	return c.val
}

// Pointer returns the cursor's position.
func (c Cursor) Pointer() Pointer {
	return c.ptr
}

// Base returns the bound document.
func (c Cursor) Base() any {
	return c.base
}

func (c Cursor) String() string {
	if !c.ok {
		return fmt.Sprintf("cursor %q (invalid)", c.ptr.String())
	}
	return fmt.Sprintf("cursor %q -> %v", c.ptr.String(), c.val)
}
