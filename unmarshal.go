package jptr

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshalers returns the set of unmarshalers that decode JSON into the
// package's document model:
//   - any/interface{} -> objects as D, arrays as A
//   - *D              -> direct ordered object decoding
//   - *A              -> direct array decoding
//
// Pass the result to json.WithUnmarshalers when composing with other
// json/v2 options.
func Unmarshalers() *json.Unmarshalers {
	return json.JoinUnmarshalers(
		valueUnmarshaler(),
		documentUnmarshaler(),
		arrayUnmarshaler(),
	)
}

// Unmarshal decodes data into out with the document model unmarshalers
// installed. out is typically *any, *D or *A; other targets behave as in
// plain json.Unmarshal.
func Unmarshal(data []byte, out any) error {
	return json.Unmarshal(data, out, json.WithUnmarshalers(Unmarshalers()))
}

// JSONText converts the pointer to its jsontext form, for comparison with
// locations reported by json/v2, such as a SemanticError's JSONPointer.
func (p Pointer) JSONText() jsontext.Pointer {
	return jsontext.Pointer(p.String())
}

// FromJSONText converts a jsontext pointer, such as one reported by
// jsontext.Decoder.StackPointer, into a Pointer.
func FromJSONText(tp jsontext.Pointer) (Pointer, error) {
	return Parse(string(tp))
}

// valueUnmarshaler wraps JSON objects as D and arrays as A when decoding
// into interface{}. Primitive values are left to the default decoding by
// returning json.SkipFunc. Empty objects produce an empty D; empty arrays
// an empty A.
func valueUnmarshaler() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *any) error {
		switch dec.PeekKind() {
		case '{':
			d, err := decodeObject(dec)
			if err != nil {
				return err
			}
			*v = d
			return nil
		case '[':
			a, err := decodeArray(dec)
			if err != nil {
				return err
			}
			*v = a
			return nil
		default:
			return json.SkipFunc
		}
	})
}

// documentUnmarshaler decodes a JSON object directly into a *D target.
func documentUnmarshaler() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *D) error {
		if dec.PeekKind() != '{' {
			return json.SkipFunc
		}
		d, err := decodeObject(dec)
		if err != nil {
			return err
		}
		*v = d
		return nil
	})
}

// arrayUnmarshaler decodes a JSON array directly into an *A target.
func arrayUnmarshaler() *json.Unmarshalers {
	return json.UnmarshalFromFunc(func(dec *jsontext.Decoder, v *A) error {
		if dec.PeekKind() != '[' {
			return json.SkipFunc
		}
		a, err := decodeArray(dec)
		if err != nil {
			return err
		}
		*v = a
		return nil
	})
}

// decodeObject decodes a JSON object into a D, preserving member order.
func decodeObject(dec *jsontext.Decoder) (D, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("read object open: %w", err)
	}
	d := D{}
	for dec.PeekKind() != '}' {
		var key string
		if err := json.UnmarshalDecode(dec, &key); err != nil {
			return nil, fmt.Errorf("read object key: %w", err)
		}
		var val any
		if err := json.UnmarshalDecode(dec, &val); err != nil {
			return nil, fmt.Errorf("read object value for key %q: %w", key, err)
		}
		d = append(d, E{Key: key, Value: val})
	}
	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("read object close: %w", err)
	}
	return d, nil
}

// decodeArray decodes a JSON array into an A.
func decodeArray(dec *jsontext.Decoder) (A, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("read array open: %w", err)
	}
	a := A{}
	for dec.PeekKind() != ']' {
		var elem any
		if err := json.UnmarshalDecode(dec, &elem); err != nil {
			return nil, fmt.Errorf("read array element: %w", err)
		}
		a = append(a, elem)
	}
	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("read array close: %w", err)
	}
	return a, nil
}
