package domain

// Equal reports structural equality between two values, either of which may
// be a coerced Value or a raw nested structure (maps, slices, primitives).
// Raw input is coerced first, so a Document compares equal to a plain nested
// mapping with equivalent content. Uncoercible input is never equal.
func Equal(a, b any) bool {
	av, err := coerceValue(a)
	if err != nil {
		return false
	}
	bv, err := coerceValue(b)
	if err != nil {
		return false
	}
	return valueEqual(av, bv)
}

func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Integer:
		switch bv := b.(type) {
		case Integer:
			return av == bv
		case Number:
			return float64(av) == float64(bv)
		}
		return false
	case Number:
		switch bv := b.(type) {
		case Number:
			return av == bv
		case Integer:
			return float64(av) == float64(bv)
		}
		return false
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av.items) != len(bv.items) {
			return false
		}
		for i := range av.items {
			if !valueEqual(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	case *Object:
		switch bv := b.(type) {
		case *Object:
			return contentsEqual(&av.contents, &bv.contents)
		case *Document:
			return contentsEqual(&av.contents, &bv.contents)
		}
		return false
	case *Document:
		switch bv := b.(type) {
		case *Document:
			return av.origin == bv.origin && av.title == bv.title &&
				contentsEqual(&av.contents, &bv.contents)
		case *Object:
			return contentsEqual(&av.contents, &bv.contents)
		}
		return false
	case *Error:
		bv, ok := b.(*Error)
		return ok && av.title == bv.title && contentsEqual(&av.contents, &bv.contents)
	case *Action:
		bv, ok := b.(*Action)
		return ok && actionEqual(av, bv)
	}
	return false
}

func contentsEqual(a, b *contents) bool {
	if len(a.keys) != len(b.keys) {
		return false
	}
	for _, key := range a.keys {
		bv, ok := b.values[key]
		if !ok || !valueEqual(a.values[key], bv) {
			return false
		}
	}
	return true
}

// actionEqual considers exactly the target, method and fields. Encoding,
// transform and description do not participate.
func actionEqual(a, b *Action) bool {
	if a.target != b.target || a.method != b.method || len(a.fields) != len(b.fields) {
		return false
	}
	for i := range a.fields {
		if !a.fields[i].Equals(b.fields[i]) {
			return false
		}
	}
	return true
}

// Equals reports equality against another Object, a Document with equivalent
// content, or a raw nested mapping.
func (o *Object) Equals(other any) bool {
	return Equal(o, other)
}

// Equals reports equality against another Document (identity attributes
// included), or content-only equality against an Object or raw mapping.
func (d *Document) Equals(other any) bool {
	return Equal(d, other)
}

// Equals reports equality against another Error.
func (e *Error) Equals(other any) bool {
	return Equal(e, other)
}

// Equals reports equality against another Action, considering exactly the
// target, method and fields.
func (a *Action) Equals(other any) bool {
	return Equal(a, other)
}
