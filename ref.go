package jptr

import (
	"fmt"
	"reflect"
	"strconv"
)

// Ref pairs a document with a pointer into it and the value found there,
// asserted to type T. The trail of intermediate nodes runs parallel to the
// pointer's tokens, so parent lookups never re-walk from the base. Refs are
// immutable values; navigation returns new Refs. A Ref is only obtained
// through validated construction, so it never holds a pointer whose
// resolution failed.
type Ref[T any] struct {
	base  any
	ptr   Pointer
	trail []any // trail[i] is the node after consuming i+1 tokens
	val   T
}

// NewRef returns a reference positioned at the root of doc.
func NewRef(doc any) Ref[any] {
	return Ref[any]{base: doc, val: doc}
}

// RefAt resolves p against doc and asserts the target against T. Resolution
// failures surface exactly as Find reports them; a resolvable target of the
// wrong type is a *TypeError. A null target is allowed only for T = any.
func RefAt[T any](doc any, p Pointer) (Ref[T], error) {
	node := doc
	trail := make([]any, 0, p.Len())
	for i, tok := range p.tokens {
		next, fail := step(node, tok)
		if fail != stepOK {
			return Ref[T]{}, p.stepError(i, tok, fail)
		}
		node = next
		trail = append(trail, node)
	}
	val, err := assertValue[T](node, p)
	if err != nil {
		return Ref[T]{}, err
	}
	return Ref[T]{base: doc, ptr: p, trail: trail, val: val}, nil
}

// Child descends one token from r and asserts the child value against C.
// Resolution failures and type mismatches both carry the full child pointer.
func Child[C any, T any](r Ref[T], token string) (Ref[C], error) {
	childPtr := r.ptr.Child(token)
	child, fail := step(any(r.val), token)
	if fail != stepOK {
		return Ref[C]{}, childPtr.stepError(childPtr.Len()-1, token, fail)
	}
	val, err := assertValue[C](child, childPtr)
	if err != nil {
		return Ref[C]{}, err
	}
	trail := make([]any, 0, len(r.trail)+1)
	trail = append(trail, r.trail...)
	trail = append(trail, child)
	return Ref[C]{base: r.base, ptr: childPtr, trail: trail, val: val}, nil
}

// ChildAt is Child with an integer index token. Negative indexes fail
// without touching the document.
func ChildAt[C any, T any](r Ref[T], i int) (Ref[C], error) {
	if i < 0 {
		return Ref[C]{}, fmt.Errorf("index %d: %w", i, ErrIndex)
	}
	return Child[C](r, strconv.Itoa(i))
}

// Parent ascends to r's parent node and asserts it against P. At depth one
// the parent is the base document; the root reference has no parent.
func Parent[P any, T any](r Ref[T]) (Ref[P], error) {
	if r.ptr.IsRoot() {
		return Ref[P]{}, ErrNoParent
	}
	parentPtr, err := r.ptr.Parent()
	if err != nil {
		return Ref[P]{}, err
	}
	node := r.base
	if n := len(r.trail); n >= 2 {
		node = r.trail[n-2]
	}
	val, err := assertValue[P](node, parentPtr)
	if err != nil {
		return Ref[P]{}, err
	}
	return Ref[P]{base: r.base, ptr: parentPtr, trail: r.trail[:len(r.trail)-1], val: val}, nil
}

// As narrows the current value to C without moving. Mismatches report the
// same error shape as Child.
func As[C any, T any](r Ref[T]) (Ref[C], error) {
	val, err := assertValue[C](any(r.val), r.ptr)
	if err != nil {
		return Ref[C]{}, err
	}
	return Ref[C]{base: r.base, ptr: r.ptr, trail: r.trail, val: val}, nil
}

// Is reports whether the current value satisfies C.
func Is[C any, T any](r Ref[T]) bool {
	_, err := assertValue[C](any(r.val), r.ptr)
	return err == nil
}

// Rebase isolates the current value as its own document: the result's base
// and value are both r's current value, its pointer root, its trail empty.
func (r Ref[T]) Rebase() Ref[T] {
	return Ref[T]{base: any(r.val), val: r.val}
}

// Locate searches the current value's descendants depth-first, objects in
// insertion order and arrays by index, for the given node. Containers match
// by backing identity; scalars match by value, which degrades to the first
// occurrence in document order when equal scalars repeat, so two occurrences
// of true are not distinguishable. The result is untyped; narrow it with As.
func (r Ref[T]) Locate(target any) (Ref[any], bool) {
	ptr, ok := locate(any(r.val), target, r.ptr)
	if !ok {
		return Ref[any]{}, false
	}
	ref, err := RefAt[any](r.base, ptr)
	if err != nil {
		return Ref[any]{}, false
	}
	return ref, true
}

// Equal reports whether two references share the same base node and current
// node (both by identity) and carry structurally equal pointers.
func (r Ref[T]) Equal(o Ref[T]) bool {
	return sameNode(r.base, o.base) && sameNode(any(r.val), any(o.val)) && r.ptr.Equal(o.ptr)
}

// Value returns the current value.
func (r Ref[T]) Value() T {
	return r.val
}

// Pointer returns the pointer from the base document to the current value.
func (r Ref[T]) Pointer() Pointer {
	return r.ptr
}

// Base returns the document the reference was created from.
func (r Ref[T]) Base() any {
	return r.base
}

func (r Ref[T]) String() string {
	return fmt.Sprintf("ref %q -> %v", r.ptr.String(), any(r.val))
}

// assertValue checks that node satisfies T. A null node is admitted only
// when T is any, the nullable case, yielding a zero T.
func assertValue[T any](node any, ptr Pointer) (T, error) {
	var zero T
	if node == nil {
		if _, nullable := any(&zero).(*any); nullable {
			return zero, nil
		}
		return zero, &TypeError{Ptr: ptr, Want: typeName[T](), Got: nil}
	}
	val, ok := node.(T)
	if !ok {
		return zero, &TypeError{Ptr: ptr, Want: typeName[T](), Got: node}
	}
	return val, nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// sameNode is the identity test Locate and Equal build on: containers
// compare by backing identity, scalars by value. Distinct but equal scalar
// instances are the same node under this test; so are two empty containers
// sharing Go's zero-size allocation.
func sameNode(a, b any) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case ObjectKind, ArrayKind:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case InvalidKind:
		return false
	default:
		return a == b
	}
}

// locate returns the pointer of the first descendant of node matching
// target, extending base, in depth-first document order.
func locate(node, target any, base Pointer) (Pointer, bool) {
	switch n := node.(type) {
	case D:
		for _, e := range n {
			childPtr := base.Child(e.Key)
			if sameNode(e.Value, target) {
				return childPtr, true
			}
			if p, ok := locate(e.Value, target, childPtr); ok {
				return p, true
			}
		}
	case A:
		for i, elem := range n {
			childPtr := base.Child(strconv.Itoa(i))
			if sameNode(elem, target) {
				return childPtr, true
			}
			if p, ok := locate(elem, target, childPtr); ok {
				return p, true
			}
		}
	}
	return Pointer{}, false
}
