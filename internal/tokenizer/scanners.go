package tokenizer

import (
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Scanners report the length in bytes of the match at the start of s, or 0
// when s does not start with a match. Input reaching the scanners has had its
// line breaks normalized to '\n'.
type scanner func(s []byte) int

func scanDirective(s []byte) int {
	if bytes.HasPrefix(s, []byte("%YAML ")) {
		return len("%YAML")
	}
	return 0
}

func scanExact(lit string) scanner {
	return func(s []byte) int {
		if bytes.HasPrefix(s, []byte(lit)) {
			return len(lit)
		}
		return 0
	}
}

// scanComment matches a comment to the end of its line, or a line break
// followed by a line holding only spaces and an optional comment. Blank
// lines therefore never reach indentation tracking.
func scanComment(s []byte) int {
	if len(s) == 0 {
		return 0
	}
	if s[0] == '#' {
		return lineEnd(s, 0)
	}
	if s[0] != '\n' {
		return 0
	}
	j := skipSpaces(s, 1)
	if j < len(s) && s[j] == '#' {
		j = lineEnd(s, j)
	}
	if j == len(s) || s[j] == '\n' {
		return j
	}
	return 0
}

func scanSpace(s []byte) int {
	return skipSpaces(s, 0)
}

func scanNewLine(s []byte) int {
	if len(s) == 0 || s[0] != '\n' {
		return 0
	}
	return skipSpaces(s, 1)
}

// scanDash matches a block sequence marker with its trailing blanks. Blanks
// directly followed by a comment or line break are left for the next token,
// except that a single blank is never given back.
func scanDash(s []byte) int {
	if len(s) < 2 || s[0] != '-' {
		return 0
	}
	j := 1
	for j < len(s) && isBlank(s[j]) {
		j++
	}
	if j > 1 {
		if j == len(s) || (s[j] != '#' && s[j] != '\n') {
			return j
		}
		if j > 2 {
			return j - 1
		}
		return 1
	}
	if s[1] == '\n' {
		return 1
	}
	return 0
}

func scanQuestionMark(s []byte) int {
	if len(s) < 2 || s[0] != '?' {
		return 0
	}
	if j := skipSpaces(s, 1); j > 1 {
		return j
	}
	if s[1] == '\n' {
		return 1
	}
	return 0
}

func scanColon(s []byte) int {
	if len(s) == 0 || s[0] != ':' {
		return 0
	}
	if len(s) > 1 && s[1] == ':' {
		return 0
	}
	return 1
}

// finishes reports whether a scalar ending at i stands alone: it may be
// followed by spaces and then a flow separator, a comment, a line break or
// the end of input.
func finishes(s []byte, i int) bool {
	j := i
	for j < len(s) && isBlank(s[j]) {
		j++
	}
	if j == len(s) {
		return true
	}
	switch s[j] {
	case ',', ']', '}', '\n':
		return true
	case '#':
		return j > i
	}
	return false
}

// scanWords matches any of words when it stands alone.
func scanWords(words ...string) scanner {
	return func(s []byte) int {
		for _, w := range words {
			if bytes.HasPrefix(s, []byte(w)) && finishes(s, len(w)) {
				return len(w)
			}
		}
		return 0
	}
}

func scanInt(s []byte) int {
	i := skipSign(s, 0)
	j := skipDigits(s, i, isDigitByte)
	if j == i || !finishes(s, j) {
		return 0
	}
	return j
}

func scanPrefixedInt(prefix string, digit func(byte) bool) scanner {
	return func(s []byte) int {
		if !bytes.HasPrefix(s, []byte(prefix)) {
			return 0
		}
		i := len(prefix)
		j := skipDigits(s, i, digit)
		if j == i || !finishes(s, j) {
			return 0
		}
		return j
	}
}

// scanIntSex matches base 60 integers such as 12:30:45.
func scanIntSex(s []byte) int {
	if !hasDigitPair(s, 0) {
		return 0
	}
	j := 2
	groups := 0
	for j < len(s) && s[j] == ':' && hasDigitPair(s, j+1) {
		j += 3
		groups++
	}
	if groups == 0 || !finishes(s, j) {
		return 0
	}
	return j
}

func scanDouble(s []byte) int {
	i := skipSign(s, 0)
	j := i
	if j < len(s) && s[j] == '.' {
		k := skipDigits(s, j+1, isDigitByte)
		if k == j+1 {
			return 0
		}
		j = k
	} else {
		k := skipDigits(s, j, isDigitByte)
		if k == j {
			return 0
		}
		j = k
		if j < len(s) && s[j] == '.' {
			j = skipDigits(s, j+1, isDigitByte)
		}
	}
	if j < len(s) && (s[j] == 'e' || s[j] == 'E') {
		k := skipSign(s, j+1)
		if e := skipDigits(s, k, isDigitByte); e > k {
			j = e
		}
	}
	if !finishes(s, j) {
		return 0
	}
	return j
}

// scanName matches an anchor or alias: the indicator followed by one or more
// word characters.
func scanName(indicator byte) scanner {
	return func(s []byte) int {
		if len(s) == 0 || s[0] != indicator {
			return 0
		}
		j := 1
		for j < len(s) {
			r, size := utf8.DecodeRune(s[j:])
			if !isWordRune(r) {
				break
			}
			j += size
		}
		if j == 1 {
			return 0
		}
		return j
	}
}

// scanHeader matches a block scalar header up to the end of its line.
func scanHeader(indicator byte) scanner {
	return func(s []byte) int {
		if len(s) == 0 || s[0] != indicator {
			return 0
		}
		return lineEnd(s, 0)
	}
}

func scanReserved(s []byte) int {
	if len(s) > 0 && (s[0] == '@' || s[0] == '`') {
		return 1
	}
	return 0
}

// scanDoubleQuoted matches a double-quoted scalar, which may span lines.
func scanDoubleQuoted(s []byte) int {
	if len(s) == 0 || s[0] != '"' {
		return 0
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '"':
			return i + 1
		case '\\':
			i++
		}
	}
	return 0
}

// scanSingleQuoted matches a single-quoted scalar where '' stands for a quote.
func scanSingleQuoted(s []byte) int {
	if len(s) == 0 || s[0] != '\'' {
		return 0
	}
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			i++
			continue
		}
		return i + 1
	}
	return 0
}

// scanPlain consumes plain scalar characters from i. Outside flow the flow
// indicators are ordinary characters; inside flow line breaks are. A '#'
// only belongs to the scalar directly after another scalar character, and a
// ':' only when it is not followed by a blank or break.
func scanPlain(s []byte, i int, inFlow bool) int {
	safe := isSafeOut
	if inFlow {
		safe = isSafeIn
	}
	for i < len(s) {
		c := s[i]
		switch {
		case c == ':':
			if i+1 < len(s) && (isBlank(s[i+1]) || s[i+1] == '\n') {
				return i
			}
			i++
		case isBlank(c):
			i++
		case c == '\n':
			if !inFlow {
				return i
			}
			i++
		default:
			r, size := utf8.DecodeRune(s[i:])
			if !safe(r) {
				return i
			}
			i += size
			if i < len(s) && s[i] == '#' {
				i++
			}
		}
	}
	return i
}

// scanPlainOut matches the first line of a plain scalar outside flow. It
// must be followed by a mapping colon, a line break or the end of input.
func scanPlainOut(s []byte) int {
	j := scanPlain(s, 0, false)
	if j == 0 {
		return 0
	}
	if j == len(s) || s[j] == '\n' {
		return j
	}
	if s[j] == ':' && j+1 < len(s) && (isBlank(s[j+1]) || s[j+1] == '\n') {
		return j
	}
	return 0
}

func scanPlainIn(s []byte) int {
	return scanPlain(s, 0, true)
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigitByte(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func isOctalDigitByte(b byte) bool {
	return b >= '0' && b <= '7'
}

// isSafeIn reports whether r may appear in a plain scalar inside flow:
// printable characters other than spaces, '#', ':' and the flow indicators.
func isSafeIn(r rune) bool {
	switch {
	case r == 0x21 || r == 0x22:
	case r >= 0x24 && r <= 0x2b:
	case r >= 0x2d && r <= 0x39:
	case r >= 0x3b && r <= 0x5a:
	case r == 0x5c:
	case r >= 0x5e && r <= 0x7a:
	case r == 0x7c || r == 0x7e || r == 0x85:
	case r >= 0xa0 && r <= 0xd7ff:
	case r >= 0xe000 && r <= 0xfefe:
	case r == 0xff00 || r == 0xfffd:
	case r >= 0x10000 && r <= 0x10ffff:
	default:
		return false
	}
	return r != utf8.RuneError
}

// isSafeOut additionally admits the flow indicators.
func isSafeOut(r rune) bool {
	switch r {
	case ',', '[', ']', '{', '}':
		return true
	}
	return isSafeIn(r)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.M, r) || unicode.Is(unicode.Pc, r)
}

func skipSpaces(s []byte, i int) int {
	for i < len(s) && s[i] == ' ' {
		i++
	}
	return i
}

func skipSign(s []byte, i int) int {
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		return i + 1
	}
	return i
}

func skipDigits(s []byte, i int, digit func(byte) bool) int {
	for i < len(s) && digit(s[i]) {
		i++
	}
	return i
}

func hasDigitPair(s []byte, i int) bool {
	return i+1 < len(s) && isDigitByte(s[i]) && isDigitByte(s[i+1])
}

func lineEnd(s []byte, i int) int {
	if k := bytes.IndexByte(s[i:], '\n'); k >= 0 {
		return i + k
	}
	return len(s)
}
