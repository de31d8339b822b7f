package jptr

import (
	"fmt"
	"strings"
)

var escaper = strings.NewReplacer("~", "~0", "/", "~1")

// Escape rewrites a token for inclusion in a pointer string, replacing "~"
// with "~0" and "/" with "~1". A token containing neither is returned
// unchanged without allocating.
func Escape(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	return escaper.Replace(token)
}

// Unescape reverses Escape in a single left-to-right scan: "~0" becomes "~"
// and "~1" becomes "/". Any other character after "~", or a trailing "~", is
// a syntax error.
func Unescape(text string) (string, error) {
	i := strings.IndexByte(text, '~')
	if i < 0 {
		return text, nil
	}
	var b strings.Builder
	b.Grow(len(text))
	b.WriteString(text[:i])
	for ; i < len(text); i++ {
		c := text[i]
		if c != '~' {
			b.WriteByte(c)
			continue
		}
		i++
		if i == len(text) {
			return "", fmt.Errorf("token %q: trailing tilde: %w", text, ErrSyntax)
		}
		switch text[i] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("token %q: invalid escape %q: %w", text, text[i-1:i+1], ErrSyntax)
		}
	}
	return b.String(), nil
}

// unreserved reports whether b may appear literally in a URI fragment, per
// the RFC 3986 unreserved set.
func unreserved(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '-' || b == '.' || b == '_' || b == '~':
		return true
	default:
		return false
	}
}

const upperhex = "0123456789ABCDEF"

// percentEncode writes token to b, percent-encoding every byte outside the
// unreserved set. Multibyte runes are encoded byte by byte.
func percentEncode(b *strings.Builder, token string) {
	for i := 0; i < len(token); i++ {
		c := token[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
}

// percentDecode reverses percentEncode over a whole fragment string.
// Truncated or non-hex percent sequences are syntax errors.
func percentDecode(s string) (string, error) {
	if strings.IndexByte(s, '%') < 0 {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(s) {
			return "", fmt.Errorf("fragment %q: truncated percent sequence: %w", s, ErrSyntax)
		}
		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return "", fmt.Errorf("fragment %q: invalid percent sequence %q: %w", s, s[i:i+3], ErrSyntax)
		}
		b.WriteByte(hi<<4 | lo)
		i += 2
	}
	return b.String(), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
