package jptr

// Kind is the closed set of node kinds a decoded document can contain.
// Values of any other Go type classify as InvalidKind.
type Kind int

const (
	InvalidKind Kind = iota
	NullKind
	BoolKind
	NumberKind
	StringKind
	ObjectKind
	ArrayKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:   "Null",
		BoolKind:   "Bool",
		NumberKind: "Number",
		StringKind: "String",
		ObjectKind: "Object",
		ArrayKind:  "Array",
	}[k]
	if ok {
		return s
	}
	return "<invalid kind>"
}

// IsScalar reports whether k is a leaf kind: null, bool, number or string.
func (k Kind) IsScalar() bool {
	switch k {
	case NullKind, BoolKind, NumberKind, StringKind:
		return true
	default:
		return false
	}
}

// KindOf classifies a document node. Numbers cover the Go numeric types the
// decode layers produce along with hand-built documents using plain ints.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return NullKind
	case bool:
		return BoolKind
	case string:
		return StringKind
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return NumberKind
	case D:
		return ObjectKind
	case A:
		return ArrayKind
	default:
		return InvalidKind
	}
}
