package value

import "math"

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool  { return v.kind == KindNull }
func (v Value) IsArray() bool { return v.kind == KindArray }
func (v Value) IsMap() bool   { return v.kind == KindMap }

// IsScalar reports whether v is neither an array nor a map.
func (v Value) IsScalar() bool {
	return v.kind != KindArray && v.kind != KindMap
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer held by v. A Double with an integral value that
// fits in an int64 also reads as an integer.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindDouble:
		if v.f == math.Trunc(v.f) && v.f >= math.MinInt64 && v.f < math.MaxInt64 {
			return int64(v.f), true
		}
	}
	return 0, false
}

// AsDouble returns the number held by v. Integers are widened.
func (v Value) AsDouble() (float64, bool) {
	switch v.kind {
	case KindDouble:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	}
	return 0, false
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsArray returns a copy of the elements of an array.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return append([]Value(nil), v.items...), true
}

// AsPairs returns a copy of the entries of a map in document order.
func (v Value) AsPairs() ([]Pair, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return append([]Pair(nil), v.pairs...), true
}

// Len returns the number of elements of an array or entries of a map.
func (v Value) Len() (int, bool) {
	switch v.kind {
	case KindArray:
		return len(v.items), true
	case KindMap:
		return len(v.pairs), true
	}
	return 0, false
}

// Index returns the i-th element of an array, or Null.
func (v Value) Index(i int) Value {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return Value{}
	}
	return v.items[i]
}

// Lookup finds the entry of a map whose key is Equal to key.
func (v Value) Lookup(key Value) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	if i := IndexOf(v.pairs, key); i >= 0 {
		return v.pairs[i].Value, true
	}
	return Value{}, false
}

// Get returns the entry of a map for key, or Null.
func (v Value) Get(key Value) Value {
	got, _ := v.Lookup(key)
	return got
}

// Key returns the entry of a map for a string key, or Null. Calls chain:
// doc.Key("server").Key("port").
func (v Value) Key(name string) Value {
	return v.Get(String(name))
}

// Negate returns the arithmetic negation of an Int or Double.
func (v Value) Negate() (Value, bool) {
	switch v.kind {
	case KindInt:
		if v.i == math.MinInt64 {
			return Value{}, false
		}
		return Int(-v.i), true
	case KindDouble:
		return Double(-v.f), true
	}
	return Value{}, false
}
