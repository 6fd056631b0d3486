// Package value defines the tree produced by the parser: a closed set of
// scalar and composite variants with read-only accessors.
//
// Values are immutable. Accessors never fail; asking a value for a shape it
// does not have reads as absent (a false second result, or Null).
package value

import (
	"errors"
	"fmt"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindArray
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is one node of a parsed document. The zero Value is Null.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
	pairs []Pair
}

// Pair is one entry of a map. Keys may be any Value.
type Pair struct {
	Key   Value
	Value Value
}

// ErrDuplicateKey is returned by NewMap when two keys are structurally equal.
var ErrDuplicateKey = errors.New("duplicate key")

// Null returns the Null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps a 64-bit integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Double wraps a float64, including infinities and NaN.
func Double(f float64) Value { return Value{kind: KindDouble, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array builds an ordered sequence. The items are copied.
func Array(items ...Value) Value {
	return Value{kind: KindArray, items: append([]Value(nil), items...)}
}

// NewMap builds a map preserving the order of pairs. It fails with
// ErrDuplicateKey if two keys are Equal.
func NewMap(pairs ...Pair) (Value, error) {
	for i := 1; i < len(pairs); i++ {
		if IndexOf(pairs[:i], pairs[i].Key) >= 0 {
			return Value{}, fmt.Errorf("%w %s", ErrDuplicateKey, pairs[i].Key)
		}
	}
	return Value{kind: KindMap, pairs: append([]Pair(nil), pairs...)}, nil
}

// MustMap is like NewMap but panics on duplicate keys. It is intended for
// literals in tests and for callers that have already checked the keys.
func MustMap(pairs ...Pair) Value {
	v, err := NewMap(pairs...)
	if err != nil {
		panic(err)
	}
	return v
}

// IndexOf returns the position of the pair whose key is Equal to key, or -1.
func IndexOf(pairs []Pair, key Value) int {
	for i := range pairs {
		if Equal(pairs[i].Key, key) {
			return i
		}
	}
	return -1
}

// P is shorthand for a Pair with a string key.
func P(key string, v Value) Pair {
	return Pair{Key: String(key), Value: v}
}
