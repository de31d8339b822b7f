package jptr

// D represents a document, defined as an ordered collection of key-value
// pairs. Member order is the order in which entries were decoded or built,
// and resolution by key returns the first match when keys repeat.
type D []E

// A represents an array, defined as a slice of values of any type.
type A []any

// E represents a single entry in a document. It consists of a string key and
// an associated value of any type.
type E struct {
	Key   string
	Value any
}

// Lookup returns the value of the first entry with the given key and
// reports whether such an entry exists.
func (d D) Lookup(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the entry keys in document order.
func (d D) Keys() []string {
	if len(d) == 0 {
		return nil
	}
	keys := make([]string, len(d))
	for i, e := range d {
		keys[i] = e.Key
	}
	return keys
}
