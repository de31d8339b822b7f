package jptr

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Pointer is an RFC 6901 JSON Pointer: an immutable ordered sequence of
// unescaped reference tokens. The zero value is the root pointer. Every
// derivation returns a new Pointer, never mutating the receiver, so Pointer
// values may be shared freely across goroutines.
type Pointer struct {
	tokens []string
}

// Root is the canonical zero-token pointer addressing a whole document.
var Root Pointer

// Parse converts an RFC 6901 string into a Pointer. The empty string is the
// root pointer; any other input must begin with a slash and has its tokens
// unescaped via Unescape.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Root, nil
	}
	if s[0] != '/' {
		return Pointer{}, fmt.Errorf("pointer %q: missing leading slash: %w", s, ErrSyntax)
	}
	parts := strings.Split(s[1:], "/")
	tokens := make([]string, len(parts))
	for i, part := range parts {
		tok, err := Unescape(part)
		if err != nil {
			return Pointer{}, fmt.Errorf("pointer %q: %w", s, err)
		}
		tokens[i] = tok
	}
	return Pointer{tokens: tokens}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for
// package-level pointer variables and fixtures.
func MustParse(s string) Pointer {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseFragment converts a URI fragment, without its leading "#", into a
// Pointer: percent sequences are decoded and the result parsed as a pointer
// string.
func ParseFragment(s string) (Pointer, error) {
	decoded, err := percentDecode(s)
	if err != nil {
		return Pointer{}, err
	}
	return Parse(decoded)
}

// String renders the pointer in RFC 6901 form, the inverse of Parse. The
// root pointer renders as the empty string. The rendering is unique per
// token sequence, so it doubles as a map key for pointer-keyed tables.
func (p Pointer) String() string {
	if len(p.tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tok := range p.tokens {
		b.WriteByte('/')
		b.WriteString(Escape(tok))
	}
	return b.String()
}

// Fragment renders the pointer for use in a URI fragment: each token is
// escaped and then percent-encoded outside the RFC 3986 unreserved set. No
// leading "#" is included.
func (p Pointer) Fragment() string {
	if len(p.tokens) == 0 {
		return ""
	}
	var b strings.Builder
	for _, tok := range p.tokens {
		b.WriteByte('/')
		percentEncode(&b, Escape(tok))
	}
	return b.String()
}

// Child returns a new pointer with the given tokens appended, unescaped. The
// result never shares token storage with the receiver.
func (p Pointer) Child(tokens ...string) Pointer {
	if len(tokens) == 0 {
		return p
	}
	combined := make([]string, 0, len(p.tokens)+len(tokens))
	combined = append(combined, p.tokens...)
	combined = append(combined, tokens...)
	return Pointer{tokens: combined}
}

// Index returns a new pointer addressing array element i. Negative indexes
// fail at construction rather than at resolution.
func (p Pointer) Index(i int) (Pointer, error) {
	if i < 0 {
		return Pointer{}, fmt.Errorf("index %d: %w", i, ErrIndex)
	}
	return p.Child(strconv.Itoa(i)), nil
}

// Parent returns the pointer with its last token removed. The root pointer
// has no parent.
func (p Pointer) Parent() (Pointer, error) {
	if len(p.tokens) == 0 {
		return Pointer{}, ErrNoParent
	}
	return Pointer{tokens: p.tokens[:len(p.tokens)-1]}, nil
}

// Last returns the final token, or false for the root pointer.
func (p Pointer) Last() (string, bool) {
	if len(p.tokens) == 0 {
		return "", false
	}
	return p.tokens[len(p.tokens)-1], true
}

// IsRoot reports whether the pointer has no tokens.
func (p Pointer) IsRoot() bool {
	return len(p.tokens) == 0
}

// Len returns the number of tokens.
func (p Pointer) Len() int {
	return len(p.tokens)
}

// Tokens returns a copy of the unescaped token sequence, nil for the root
// pointer.
func (p Pointer) Tokens() []string {
	if len(p.tokens) == 0 {
		return nil
	}
	return slices.Clone(p.tokens)
}

// Equal reports whether two pointers carry the same token sequence.
func (p Pointer) Equal(q Pointer) bool {
	return slices.Equal(p.tokens, q.tokens)
}

// truncate returns the pointer shortened to its first n tokens, sharing
// storage with the receiver. Safe because token slices are never appended to
// in place.
func (p Pointer) truncate(n int) Pointer {
	return Pointer{tokens: p.tokens[:n]}
}
