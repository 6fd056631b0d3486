package yaml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/alexdrone/swatch-yaml/pkg/value"
)

// Pre-computed indent byte arrays to avoid strings.Repeat on hot path
const maxCachedIndent = 32

var indentTable [maxCachedIndent][]byte

func init() {
	for i := range indentTable {
		indentTable[i] = make([]byte, i*2)
		for j := range indentTable[i] {
			indentTable[i][j] = ' '
		}
	}
}

// bufPool pools []byte slices for Marshal.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 1024)
		return &b
	},
}

func appendIndent(buf []byte, level int) []byte {
	if level <= 0 {
		return buf
	}
	if level < maxCachedIndent {
		return append(buf, indentTable[level]...)
	}
	for i := 0; i < level*2; i++ {
		buf = append(buf, ' ')
	}
	return buf
}

// Marshal renders v as a block-style YAML document that Load parses back
// to an Equal value. Collections nest with two spaces per level, string
// keys are written as "key: value" and other keys as explicit "? key"
// entries. Empty collections use flow style.
//
// NaN is written as .nan; since NaN never equals itself, values holding NaN
// only round-trip by kind.
func Marshal(v value.Value) ([]byte, error) {
	bp := bufPool.Get().(*[]byte)
	buf, err := appendNode((*bp)[:0], v, 0)
	if err != nil {
		*bp = buf
		bufPool.Put(bp)
		return nil, err
	}
	buf = append(buf, '\n')
	out := make([]byte, len(buf))
	copy(out, buf)
	*bp = buf
	bufPool.Put(bp)
	return out, nil
}

// appendNode writes v starting at the current column. Lines after the
// first are indented to level.
func appendNode(buf []byte, v value.Value, level int) ([]byte, error) {
	if isBlockCollection(v) && level >= maxDepthLimit {
		return buf, fmt.Errorf("yaml: value nested deeper than %d levels", maxDepthLimit)
	}
	switch v.Kind() {
	case value.KindArray:
		items, _ := v.AsArray()
		if len(items) == 0 {
			return append(buf, '[', ']'), nil
		}
		for i, item := range items {
			if i > 0 {
				buf = append(buf, '\n')
				buf = appendIndent(buf, level)
			}
			buf = append(buf, '-', ' ')
			var err error
			if buf, err = appendNode(buf, item, level+1); err != nil {
				return buf, err
			}
		}
		return buf, nil

	case value.KindMap:
		pairs, _ := v.AsPairs()
		if len(pairs) == 0 {
			return append(buf, '{', '}'), nil
		}
		for i, p := range pairs {
			if i > 0 {
				buf = append(buf, '\n')
				buf = appendIndent(buf, level)
			}
			var err error
			if buf, err = appendEntry(buf, p, level); err != nil {
				return buf, err
			}
		}
		return buf, nil
	}
	return appendScalar(buf, v), nil
}

func appendEntry(buf []byte, p value.Pair, level int) ([]byte, error) {
	if key, ok := p.Key.AsString(); ok {
		buf = appendString(buf, key)
	} else {
		buf = append(buf, '?', ' ')
		var err error
		if buf, err = appendNode(buf, p.Key, level+1); err != nil {
			return buf, err
		}
		buf = append(buf, '\n')
		buf = appendIndent(buf, level)
	}
	buf = append(buf, ':')

	if !isBlockCollection(p.Value) {
		buf = append(buf, ' ')
		return appendScalarOrEmpty(buf, p.Value), nil
	}
	buf = append(buf, '\n')
	buf = appendIndent(buf, level+1)
	return appendNode(buf, p.Value, level+1)
}

// isBlockCollection reports whether v is written across lines.
func isBlockCollection(v value.Value) bool {
	n, ok := v.Len()
	return ok && n > 0 && !v.IsScalar()
}

func appendScalarOrEmpty(buf []byte, v value.Value) []byte {
	switch {
	case v.IsArray():
		return append(buf, '[', ']')
	case v.IsMap():
		return append(buf, '{', '}')
	}
	return appendScalar(buf, v)
}

func appendScalar(buf []byte, v value.Value) []byte {
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()
		return strconv.AppendBool(buf, b)
	case value.KindInt:
		i, _ := v.AsInt()
		return strconv.AppendInt(buf, i, 10)
	case value.KindDouble:
		f, _ := v.AsDouble()
		return appendDouble(buf, f)
	case value.KindString:
		s, _ := v.AsString()
		return appendString(buf, s)
	}
	return append(buf, "null"...)
}

// appendDouble writes f so that it reads back as a Double, never an Int.
func appendDouble(buf []byte, f float64) []byte {
	switch {
	case math.IsNaN(f):
		return append(buf, ".nan"...)
	case math.IsInf(f, 1):
		return append(buf, ".inf"...)
	case math.IsInf(f, -1):
		return append(buf, "-.inf"...)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	buf = append(buf, s...)
	if !strings.ContainsAny(s, ".e") {
		buf = append(buf, '.', '0')
	}
	return buf
}

func appendString(buf []byte, s string) []byte {
	if !needsQuoting(s) {
		return append(buf, s...)
	}
	buf = append(buf, '"')
	buf = appendEscapedString(buf, s)
	return append(buf, '"')
}
