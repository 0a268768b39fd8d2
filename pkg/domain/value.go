package domain

// Value is one coerced node in a document tree. It is a closed set: the only
// implementations are the primitive kinds (String, Integer, Number, Boolean),
// Array, and the container types (*Object, *Document, *Action, *Error).
// A nil Value represents null.
type Value interface {
	isValue()
}

// String is a primitive text value.
type String string

// Integer is a primitive whole-number value.
type Integer int64

// Number is a primitive floating-point value.
type Number float64

// Boolean is a primitive true/false value.
type Boolean bool

func (String) isValue()  {}
func (Integer) isValue() {}
func (Number) isValue()  {}
func (Boolean) isValue() {}

// Array is an immutable ordered sequence of Values.
type Array struct {
	items []Value
}

func (Array) isValue() {}

// NewArray builds an Array by coercing each element.
func NewArray(items ...any) (Array, error) {
	out := make([]Value, len(items))
	for i, item := range items {
		v, err := coerceValue(item)
		if err != nil {
			return Array{}, err
		}
		out[i] = v
	}
	return Array{items: out}, nil
}

// Len returns the number of elements.
func (a Array) Len() int {
	return len(a.items)
}

// Index returns the element at position i, or false when out of range.
func (a Array) Index(i int) (Value, bool) {
	if i < 0 || i >= len(a.items) {
		return nil, false
	}
	return a.items[i], true
}

// Items returns a copy of the elements.
func (a Array) Items() []Value {
	out := make([]Value, len(a.items))
	copy(out, a.items)
	return out
}
