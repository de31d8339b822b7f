package jptr

import (
	"testing"

	json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unmarshal(t *testing.T, src string) any {
	t.Helper()
	var out any
	err := Unmarshal([]byte(src), &out)
	require.NoError(t, err)
	return out
}

func assertD(t *testing.T, v any) D {
	t.Helper()
	d, ok := v.(D)
	require.True(t, ok, "expected D, got %T", v)
	return d
}

func assertA(t *testing.T, v any) A {
	t.Helper()
	a, ok := v.(A)
	require.True(t, ok, "expected A, got %T", v)
	return a
}

func TestUnmarshal(t *testing.T) {
	t.Run("empty object -> empty D", func(t *testing.T) {
		d := assertD(t, unmarshal(t, `{}`))
		require.Len(t, d, 0)
		require.NotNil(t, d)
	})

	t.Run("empty array -> empty A", func(t *testing.T) {
		a := assertA(t, unmarshal(t, `[]`))
		require.Len(t, a, 0)
		require.NotNil(t, a)
	})

	t.Run("object ordering preserved", func(t *testing.T) {
		d := assertD(t, unmarshal(t, `{"b":1,"a":2,"c":3}`))
		require.Equal(t, []E{{Key: "b", Value: float64(1)}, {Key: "a", Value: float64(2)}, {Key: "c", Value: float64(3)}}, []E(d))
	})

	t.Run("nested object wraps as D", func(t *testing.T) {
		d := assertD(t, unmarshal(t, `{"outer":{"inner":true}}`))
		inner := assertD(t, d[0].Value)
		require.Equal(t, []E{{Key: "inner", Value: true}}, []E(inner))
	})

	t.Run("nested array wraps objects", func(t *testing.T) {
		a := assertA(t, unmarshal(t, `[1,{"x":2}]`))
		require.Len(t, a, 2)
		require.Equal(t, float64(1), a[0])
		d := assertD(t, a[1])
		require.Equal(t, "x", d[0].Key)
	})

	t.Run("primitive value bypassed (SkipFunc)", func(t *testing.T) {
		require.Equal(t, float64(123), unmarshal(t, `123`))
		require.Equal(t, "s", unmarshal(t, `"s"`))
		require.Equal(t, true, unmarshal(t, `true`))
		require.Nil(t, unmarshal(t, `null`))
	})

	t.Run("null members stay nil inside documents", func(t *testing.T) {
		d := assertD(t, unmarshal(t, `{"n":null}`))
		require.Equal(t, []E{{Key: "n", Value: nil}}, []E(d))
	})

	t.Run("malformed input returns an error", func(t *testing.T) {
		var out any
		err := Unmarshal([]byte(`{"a":`), &out)
		require.Error(t, err)
	})
}

func TestDocumentUnmarshaler(t *testing.T) {
	t.Run("decodes directly into *D", func(t *testing.T) {
		var d D
		err := json.Unmarshal([]byte(`{"a":1,"b":2}`), &d, json.WithUnmarshalers(Unmarshalers()))
		require.NoError(t, err)
		require.Equal(t, []E{{Key: "a", Value: float64(1)}, {Key: "b", Value: float64(2)}}, []E(d))
	})

	t.Run("empty object -> *D empty", func(t *testing.T) {
		var d D
		err := json.Unmarshal([]byte(`{}`), &d, json.WithUnmarshalers(documentUnmarshaler()))
		require.NoError(t, err)
		require.Len(t, d, 0)
	})
}

func TestArrayUnmarshaler(t *testing.T) {
	t.Run("decodes directly into *A", func(t *testing.T) {
		var a A
		err := json.Unmarshal([]byte(`[{"a":1}]`), &a, json.WithUnmarshalers(Unmarshalers()))
		require.NoError(t, err)
		require.Len(t, a, 1)
		d := assertD(t, a[0])
		require.Equal(t, []E{{Key: "a", Value: float64(1)}}, []E(d))
	})

	t.Run("empty array -> *A empty", func(t *testing.T) {
		var a A
		err := json.Unmarshal([]byte(`[]`), &a, json.WithUnmarshalers(arrayUnmarshaler()))
		require.NoError(t, err)
		require.Len(t, a, 0)
	})
}

func TestUnmarshalThenResolve(t *testing.T) {
	doc := unmarshal(t, `{"foo":["bar","baz"],"a/b":1,"nested":{"deep":null}}`)

	got, err := MustParse("/foo/0").Find(doc)
	require.NoError(t, err)
	require.Equal(t, "bar", got)

	got, err = MustParse("/a~1b").Find(doc)
	require.NoError(t, err)
	require.Equal(t, float64(1), got)

	v, ok := MustParse("/nested/deep").Lookup(doc)
	require.True(t, ok)
	require.Nil(t, v)

	require.False(t, MustParse("/foo/2").Exists(doc))
}

func TestJSONTextBridge(t *testing.T) {
	t.Run("pointer to jsontext form", func(t *testing.T) {
		p := Root.Child("a/b", "0")
		require.Equal(t, jsontext.Pointer("/a~1b/0"), p.JSONText())
	})

	t.Run("jsontext form back to pointer", func(t *testing.T) {
		p, err := FromJSONText(jsontext.Pointer("/a~1b/0"))
		require.NoError(t, err)
		require.Equal(t, []string{"a/b", "0"}, p.Tokens())
	})

	t.Run("round trip", func(t *testing.T) {
		p := MustParse("/foo/0/m~0n")
		back, err := FromJSONText(p.JSONText())
		require.NoError(t, err)
		require.True(t, back.Equal(p))
	})

	t.Run("decoder stack pointer resolves in the decoded document", func(t *testing.T) {
		src := `{"outer":{"inner":[true]}}`
		doc := unmarshal(t, src)

		p, err := FromJSONText(jsontext.Pointer("/outer/inner/0"))
		require.NoError(t, err)
		got, err := p.Find(doc)
		require.NoError(t, err)
		assert.Equal(t, true, got)
	})
}
