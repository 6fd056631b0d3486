package tokenizer

import "strings"

// scanBlockBody measures the body of a block scalar. s starts right after
// the header line. The first non-blank line must be indented deeper than
// parent and fixes the content indentation; the body then runs over every
// following line that is blank or at least that deep. It returns the number
// of bytes in the body, 0 if there is none.
func scanBlockBody(s []byte, parent int) int {
	content := -1
	end := 0
scan:
	for pos := 0; pos < len(s) && s[pos] == '\n'; {
		start := pos + 1
		stop := lineEnd(s, start)
		spaces := skipSpaces(s, start) - start
		blank := start+spaces == stop
		switch {
		case content < 0 && blank:
		case content < 0:
			if spaces <= parent {
				return 0
			}
			content = spaces
			end = stop
		case blank || spaces >= content:
			end = stop
		default:
			break scan
		}
		pos = stop
	}
	if content < 0 {
		return 0
	}
	return end
}

// blockBody returns the lines of a body measured by scanBlockBody, each
// with up to parent leading spaces removed. raw starts with the line break
// that ends the header.
func blockBody(raw string, parent int) string {
	if raw == "" {
		return ""
	}
	lines := strings.Split(raw[1:], "\n")
	for i, line := range lines {
		n := 0
		for n < parent && n < len(line) && line[n] == ' ' {
			n++
		}
		lines[i] = line[n:]
	}
	return strings.Join(lines, "\n")
}

// plainLines trims the blanks around each line of a plain scalar matched
// with its continuation lines.
func plainLines(raw string) string {
	if !strings.ContainsRune(raw, '\n') {
		return trimBlanks(raw)
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = trimBlanks(line)
	}
	return strings.Join(lines, "\n")
}

// scanContinuation matches one continuation line of a plain scalar: a line
// break followed by a blank line, or by a line indented at least indent
// spaces that holds only plain scalar characters. It returns the bytes
// consumed, 0 if s does not continue the scalar.
func scanContinuation(s []byte, indent int) int {
	if len(s) == 0 || s[0] != '\n' {
		return 0
	}
	k := skipSpaces(s, 1)
	if k == len(s) || s[k] == '\n' {
		return k
	}
	if k-1 < indent {
		return 0
	}
	e := scanPlain(s, k, false)
	if e == k || (e < len(s) && s[e] != '\n') {
		return 0
	}
	return e
}

func trimBlanks(s string) string {
	return strings.Trim(s, " \t")
}

// trimOneBlank removes at most one blank from each end of s.
func trimOneBlank(s string) string {
	if s != "" && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	if s != "" && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}
