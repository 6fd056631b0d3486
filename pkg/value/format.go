package value

import (
	"strconv"
	"strings"
)

// String describes v for debugging, for example Int(5) or
// Map([String(a): Int(1)]).
func (v Value) String() string {
	var b strings.Builder
	v.describe(&b)
	return b.String()
}

func (v Value) describe(b *strings.Builder) {
	switch v.kind {
	case KindNull:
		b.WriteString("Null")
	case KindBool:
		b.WriteString("Bool(")
		b.WriteString(strconv.FormatBool(v.b))
		b.WriteByte(')')
	case KindInt:
		b.WriteString("Int(")
		b.WriteString(strconv.FormatInt(v.i, 10))
		b.WriteByte(')')
	case KindDouble:
		b.WriteString("Double(")
		b.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
		b.WriteByte(')')
	case KindString:
		b.WriteString("String(")
		b.WriteString(v.s)
		b.WriteByte(')')
	case KindArray:
		b.WriteString("Array([")
		for i, item := range v.items {
			if i > 0 {
				b.WriteString(", ")
			}
			item.describe(b)
		}
		b.WriteString("])")
	case KindMap:
		b.WriteString("Map([")
		for i, p := range v.pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			p.Key.describe(b)
			b.WriteString(": ")
			p.Value.describe(b)
		}
		b.WriteString("])")
	}
}
