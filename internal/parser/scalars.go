package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alexdrone/swatch-yaml/internal/result"
	"github.com/alexdrone/swatch-yaml/internal/tokenizer"
	"github.com/alexdrone/swatch-yaml/pkg/value"
)

// parseString parses a plain, single-quoted or double-quoted scalar.
func parseString(c Context) result.Result[step] {
	t := c.peek()
	switch t.Kind {
	case tokenizer.TokenString:
		return done(c.advance(), value.String(foldFlow(strings.Trim(t.Text, " \t\n"), false)))
	case tokenizer.TokenStringDQ:
		return done(c.advance(), value.String(unescape(foldFlow(unwrap(t.Text), true))))
	case tokenizer.TokenStringSQ:
		return done(c.advance(), value.String(strings.ReplaceAll(foldFlow(unwrap(t.Text), false), "''", "'")))
	}
	return failed(c.fail("expected string"))
}

func unwrap(quoted string) string {
	if len(quoted) < 2 {
		return ""
	}
	return quoted[1 : len(quoted)-1]
}

func containsBreak(s string) bool {
	return strings.IndexByte(s, '\n') >= 0
}

// foldFlow applies line folding to a multi-line flow scalar. Blanks around
// each line break are dropped, a single break becomes a space and a run of n
// breaks becomes n-1 newlines. Blanks at the very start and end of s are
// kept. With escapes set, a break preceded by an unescaped backslash joins
// the lines without a space.
func foldFlow(s string, escapes bool) string {
	if !containsBreak(s) {
		return s
	}
	body := strings.TrimLeft(s, " \t")
	lead := s[:len(s)-len(body)]
	trimmed := strings.TrimRight(body, " \t")
	trail := body[len(trimmed):]

	lines := strings.Split(trimmed, "\n")
	var b strings.Builder
	b.Grow(len(s))
	for i, line := range lines {
		if i > 0 {
			line = strings.TrimLeft(line, " \t")
		}
		if i == len(lines)-1 {
			b.WriteString(line)
			break
		}
		if escapes && endsWithEscape(line) {
			b.WriteString(line[:len(line)-1])
			continue
		}
		b.WriteString(trimLineEnd(line, escapes))
		b.WriteByte('\n')
	}
	return lead + foldBreaks(b.String()) + trail
}

// endsWithEscape reports whether line ends with an odd number of
// backslashes.
func endsWithEscape(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

// trimLineEnd drops trailing blanks, keeping one that is escaped.
func trimLineEnd(line string, escapes bool) string {
	t := strings.TrimRight(line, " \t")
	if escapes && len(t) < len(line) && endsWithEscape(t) {
		return line[:len(t)+1]
	}
	return t
}

// foldBreaks rewrites runs of newlines: a lone newline becomes a space and a
// run of n > 1 newlines keeps n-1 of them. A run of several newlines at the
// start of s is kept as is.
func foldBreaks(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '\n' {
			b.WriteByte(s[i])
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] == '\n' {
			j++
		}
		switch n := j - i; {
		case n == 1:
			b.WriteByte(' ')
		case i == 0:
			b.WriteString(s[i:j])
		default:
			b.WriteString(s[i : j-1])
		}
		i = j
	}
	return b.String()
}

// unescape resolves double-quoted escape sequences in a single pass.
// Unknown or malformed escapes are kept verbatim.
func unescape(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i >= len(s) {
			b.WriteByte('\\')
			break
		}
		switch e := s[i]; e {
		case '"', '\\', '/', ' ':
			b.WriteByte(e)
		case '\t':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case 'a':
			b.WriteByte('\a')
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'v':
			b.WriteByte('\v')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case 'e':
			b.WriteByte(0x1b)
		case 'N':
			b.WriteRune('\u0085')
		case '_':
			b.WriteRune('\u00a0')
		case 'L':
			b.WriteRune('\u2028')
		case 'P':
			b.WriteRune('\u2029')
		case 'x', 'u', 'U':
			width := escapeWidth(e)
			if r, ok := hexRune(s[i+1:], width); ok {
				b.WriteRune(r)
				i += width
				continue
			}
			b.WriteByte('\\')
			b.WriteByte(e)
		default:
			b.WriteByte('\\')
			b.WriteByte(e)
		}
	}
	return b.String()
}

func escapeWidth(e byte) int {
	switch e {
	case 'x':
		return 2
	case 'u':
		return 4
	}
	return 8
}

// hexRune decodes exactly width hex digits at the start of s.
func hexRune(s string, width int) (rune, bool) {
	if len(s) < width {
		return 0, false
	}
	n, err := strconv.ParseUint(s[:width], 16, 32)
	if err != nil || !utf8.ValidRune(rune(n)) {
		return 0, false
	}
	return rune(n), true
}

// parseInt converts an integer token. Values outside the int64 range fail
// with an error wrapping strconv.ErrRange.
func parseInt(c Context) result.Result[step] {
	t := c.peek()
	var (
		n   int64
		err error
	)
	switch t.Kind {
	case tokenizer.TokenIntOct:
		n, err = strconv.ParseInt(t.Text[2:], 8, 64)
	case tokenizer.TokenIntHex:
		n, err = strconv.ParseInt(t.Text[2:], 16, 64)
	case tokenizer.TokenIntSex:
		n, err = parseSexagesimal(t.Text)
	default:
		n, err = strconv.ParseInt(t.Text, 10, 64)
	}
	if err != nil {
		return failed(result.Wrap("integer overflow", c.rest(), err))
	}
	return done(c.advance(), value.Int(n))
}

// parseSexagesimal reads unsigned base 60 integers such as 01:30:00.
func parseSexagesimal(text string) (int64, error) {
	var n int64
	for _, part := range strings.Split(text, ":") {
		d, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return 0, err
		}
		if n > (math.MaxInt64-d)/60 {
			return 0, &strconv.NumError{Func: "parseSexagesimal", Num: text, Err: strconv.ErrRange}
		}
		n = n*60 + d
	}
	return n, nil
}

// parseDouble converts a floating point token. Magnitudes beyond float64
// become infinities.
func parseDouble(c Context) result.Result[step] {
	t := c.peek()
	var f float64
	switch t.Kind {
	case tokenizer.TokenInfinityP:
		f = math.Inf(1)
	case tokenizer.TokenInfinityN:
		f = math.Inf(-1)
	case tokenizer.TokenNaN:
		f = math.NaN()
	default:
		var err error
		f, err = strconv.ParseFloat(t.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return failed(result.Wrap("invalid number", c.rest(), err))
		}
	}
	return done(c.advance(), value.Double(f))
}
