package parser

import (
	"strings"

	"github.com/alexdrone/swatch-yaml/internal/result"
	"github.com/alexdrone/swatch-yaml/internal/tokenizer"
	"github.com/alexdrone/swatch-yaml/pkg/value"
)

type chomping int

const (
	chompClip chomping = iota
	chompStrip
	chompKeep
)

// parseBlockScalar parses a literal or folded header followed by its body.
// The result is the literal text; folding is applied by the caller.
//
// Grammar:
//
//	BlockScalar = ( "|" | ">" ) Header String ;
//	Header      = [ Digit [ Chomp ] | Chomp [ Digit ] ] ;
//	Chomp       = "-" | "+" ;
func parseBlockScalar(c Context) result.Result[step] {
	chomp, indent, ok := parseBlockHeader(c.peek().Text)
	if !ok {
		return failed(c.fail("invalid chomp or indent header"))
	}
	body := c.advance()
	if body.peek().Kind != tokenizer.TokenString {
		return failed(body.fail("expected scalar block"))
	}
	block := body.peek().Text

	found := contentIndent(block)
	eff := indent
	if eff == 0 {
		eff = found
	}
	if leadingBlankTooDeep(block, eff) {
		return failed(body.fail("leading all-space line must not have too many spaces"))
	}
	if indent > 0 && found < indent {
		return failed(body.fail("less indented block scalar than the indicated level"))
	}
	return done(body.advance(), value.String(chompBlock(stripIndent(block, eff), chomp)))
}

// parseBlockHeader reads the indicators after | or >. The explicit
// indentation is 0 when absent.
func parseBlockHeader(header string) (chomping, int, bool) {
	if header == "" {
		return chompClip, 0, false
	}
	rest := header[1:]
	chomp, indent := chompClip, 0
	i := 0
	if i < len(rest) && isIndentDigit(rest[i]) {
		indent = int(rest[i] - '0')
		i++
		if i < len(rest) && isChomp(rest[i]) {
			chomp = chompFor(rest[i])
			i++
		}
	} else {
		if i < len(rest) && isChomp(rest[i]) {
			chomp = chompFor(rest[i])
			i++
		}
		if i < len(rest) && isIndentDigit(rest[i]) {
			indent = int(rest[i] - '0')
			i++
		}
	}
	if i < len(rest) && rest[i] != ' ' {
		return chompClip, 0, false
	}
	return chomp, indent, true
}

func isIndentDigit(b byte) bool { return b >= '1' && b <= '9' }
func isChomp(b byte) bool       { return b == '-' || b == '+' }

func chompFor(b byte) chomping {
	if b == '-' {
		return chompStrip
	}
	return chompKeep
}

// contentIndent is the number of leading spaces of the first line that has
// content, skipping leading all-space lines. It is 0 when there is no such
// line.
func contentIndent(block string) int {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" {
			if i == len(lines)-1 {
				return 0
			}
			continue
		}
		return len(line) - len(trimmed)
	}
	return 0
}

// leadingBlankTooDeep reports whether one of the all-space lines before the
// first content line has more than indent spaces.
func leadingBlankTooDeep(block string, indent int) bool {
	lines := strings.Split(block, "\n")
	for _, line := range lines[:len(lines)-1] {
		if strings.TrimLeft(line, " ") != "" {
			return false
		}
		if len(line) > indent {
			return true
		}
	}
	return false
}

// stripIndent removes up to indent leading spaces from every line.
func stripIndent(block string, indent int) string {
	if indent == 0 {
		return block
	}
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		n := 0
		for n < indent && n < len(line) && line[n] == ' ' {
			n++
		}
		lines[i] = line[n:]
	}
	return strings.Join(lines, "\n")
}

// chompBlock applies the chomping indicator to the trailing run of line
// breaks and space-only lines.
func chompBlock(text string, chomp chomping) string {
	cut := trailingBreaks(text)
	switch {
	case chomp == chompKeep:
		return text
	case chomp == chompStrip:
		return text[:cut]
	case cut < len(text):
		return text[:cut] + "\n"
	}
	return text
}

// trailingBreaks returns the start of the longest suffix made of newlines
// each followed by spaces only.
func trailingBreaks(text string) int {
	cut := len(text)
	for {
		j := cut
		for j > 0 && text[j-1] == ' ' {
			j--
		}
		if j == 0 || text[j-1] != '\n' {
			return cut
		}
		cut = j - 1
	}
}

// foldBlock folds the lines of a folded block scalar. Adjacent unindented
// lines are joined with a space; a run of empty lines after an unindented
// line loses one newline unless a single empty line precedes an indented
// line. Trailing newlines are kept.
func foldBlock(block string) string {
	body := strings.TrimRight(block, "\n")
	trail := block[len(body):]
	lines := strings.Split(body, "\n")

	var b strings.Builder
	b.Grow(len(block))
	for i := 0; i < len(lines); i++ {
		b.WriteString(lines[i])
		if i == len(lines)-1 {
			break
		}
		if !isFoldable(lines[i]) {
			b.WriteByte('\n')
			continue
		}
		j := i + 1
		for j < len(lines) && lines[j] == "" {
			j++
		}
		empty := j - i - 1
		switch {
		case empty == 0 && isFoldable(lines[j]):
			b.WriteByte(' ')
		case empty == 0:
			b.WriteByte('\n')
		case empty >= 2 || isFoldable(lines[j]):
			b.WriteString(strings.Repeat("\n", empty))
		default:
			b.WriteString(strings.Repeat("\n", empty+1))
		}
		i = j - 1
	}
	return b.String() + trail
}

// isFoldable reports whether line is non-empty and does not start with a
// blank.
func isFoldable(line string) bool {
	return line != "" && line[0] != ' ' && line[0] != '\t'
}
