package value

// Equal reports whether a and b are structurally equal. Int and Double
// compare by numeric value; maps compare as unordered sets of entries;
// NaN is not equal to itself.
func Equal(a, b Value) bool {
	switch a.kind {
	case KindNull:
		return b.kind == KindNull
	case KindBool:
		return b.kind == KindBool && a.b == b.b
	case KindInt:
		switch b.kind {
		case KindInt:
			return a.i == b.i
		case KindDouble:
			return float64(a.i) == b.f
		}
		return false
	case KindDouble:
		switch b.kind {
		case KindDouble:
			return a.f == b.f
		case KindInt:
			return a.f == float64(b.i)
		}
		return false
	case KindString:
		return b.kind == KindString && a.s == b.s
	case KindArray:
		if b.kind != KindArray || len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if b.kind != KindMap || len(a.pairs) != len(b.pairs) {
			return false
		}
		for _, p := range a.pairs {
			other, ok := b.Lookup(p.Key)
			if !ok || !Equal(p.Value, other) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal is the method form of the package-level Equal.
func (v Value) Equal(other Value) bool {
	return Equal(v, other)
}
