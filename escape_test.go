package jptr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain token unchanged", "abc", "abc"},
		{"empty token", "", ""},
		{"tilde", "m~n", "m~0n"},
		{"slash", "a/b", "a~1b"},
		{"both reserved characters", "~/", "~0~1"},
		{"already escaped-looking text escapes again", "~0", "~00"},
		{"unicode untouched", "日本語", "日本語"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Escape(tt.in))
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Run("valid escapes", func(t *testing.T) {
		tests := []struct {
			in   string
			want string
		}{
			{"abc", "abc"},
			{"", ""},
			{"m~0n", "m~n"},
			{"a~1b", "a/b"},
			{"~0~1", "~/"},
			{"~00", "~0"},
			{"~1~1~1", "///"},
		}
		for _, tt := range tests {
			got, err := Unescape(tt.in)
			require.NoError(t, err, "input %q", tt.in)
			require.Equal(t, tt.want, got)
		}
	})

	t.Run("dangling tilde is a syntax error", func(t *testing.T) {
		_, err := Unescape("abc~")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSyntax)
	})

	t.Run("invalid escape digit is a syntax error", func(t *testing.T) {
		_, err := Unescape("a~2b")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSyntax)
	})

	t.Run("tilde before tilde is a syntax error", func(t *testing.T) {
		_, err := Unescape("~~0")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSyntax)
	})
}

func TestEscapeRoundTrip(t *testing.T) {
	tokens := []string{"", "plain", "a/b", "m~n", "~/", "~0", "/~", "a b c", "日本~語/"}
	for _, tok := range tokens {
		got, err := Unescape(Escape(tok))
		require.NoError(t, err, "token %q", tok)
		require.Equal(t, tok, got, "token %q", tok)
	}
}

func TestEscapeIdempotentOnSafeTokens(t *testing.T) {
	// Tokens without reserved characters come back unchanged however often
	// they pass through.
	for _, tok := range []string{"foo", "0", "a.b-c_d", "space here", "ключ"} {
		once := Escape(tok)
		require.Equal(t, tok, once)
		require.Equal(t, once, Escape(once))
	}
}

func TestPercentCodec(t *testing.T) {
	t.Run("unreserved bytes stay literal", func(t *testing.T) {
		var b strings.Builder
		percentEncode(&b, "AZaz09-._~")
		require.Equal(t, "AZaz09-._~", b.String())
	})

	t.Run("reserved bytes are encoded uppercase", func(t *testing.T) {
		var b strings.Builder
		percentEncode(&b, "a b%c")
		require.Equal(t, "a%20b%25c", b.String())
	})

	t.Run("multibyte runes encode per byte", func(t *testing.T) {
		var b strings.Builder
		percentEncode(&b, "é")
		require.Equal(t, "%C3%A9", b.String())
	})

	t.Run("decode accepts lowercase hex", func(t *testing.T) {
		got, err := percentDecode("%c3%a9")
		require.NoError(t, err)
		require.Equal(t, "é", got)
	})

	t.Run("truncated sequence is a syntax error", func(t *testing.T) {
		_, err := percentDecode("abc%2")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSyntax)
	})

	t.Run("non-hex sequence is a syntax error", func(t *testing.T) {
		_, err := percentDecode("%zz")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSyntax)
	})
}
