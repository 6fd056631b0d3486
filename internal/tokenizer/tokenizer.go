package tokenizer

import (
	"strings"
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/alexdrone/swatch-yaml/internal/result"
)

// Tokenize splits text into tokens, ending with Dedents for every open
// indentation level and a single End token.
//
// Line breaks are normalized to '\n' first, so token text never contains
// '\r'.
func Tokenize(text string) result.Result[[]Token] {
	l := newLexer()
	tok := newTokenizer(l)
	tok.Initialize(normalizeBreaks(text))
	return l.run(tok)
}

// newTokenizer builds the shape-core tokenizer for l. Matchers are tried in
// order and the first match wins, so the order encodes priority:
//
//  1. Document markers and the %YAML directive
//  2. Comments and blank lines, spaces, line breaks
//  3. Block sequence marker (before numbers so "- 1" is not -1)
//  4. Keywords and numbers, which must stand alone
//  5. Anchors, aliases and flow indicators
//  6. Mapping indicators and block scalars
//  7. Quoted scalars, then plain scalars
//  8. Anything else, reported as an error
func newTokenizer(l *lexer) tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		match(TokenDirective, scanDirective),
		match(TokenDocStart, scanExact("---")),
		match(TokenDocEnd, scanExact("...")),
		match(TokenComment, scanComment),
		match(TokenSpace, scanSpace),
		NewLineMatcher(),
		match(TokenDash, scanDash),

		match(TokenNull, scanWords("null", "Null", "NULL", "~")),
		match(TokenTrue, scanWords("true", "True", "TRUE")),
		match(TokenFalse, scanWords("false", "False", "FALSE")),
		match(TokenInfinityP, scanWords("+.inf", "+.Inf", "+.INF", ".inf", ".Inf", ".INF")),
		match(TokenInfinityN, scanWords("-.inf", "-.Inf", "-.INF")),
		match(TokenNaN, scanWords(".nan", ".NaN", ".NAN")),
		match(TokenInt, scanInt),
		match(TokenIntOct, scanPrefixedInt("0o", isOctalDigitByte)),
		match(TokenIntHex, scanPrefixedInt("0x", isHexDigitByte)),
		match(TokenIntSex, scanIntSex),
		match(TokenDouble, scanDouble),

		match(TokenAnchor, scanName('&')),
		match(TokenAlias, scanName('*')),
		match(TokenComma, scanExact(",")),
		match(TokenOpenSB, scanExact("[")),
		match(TokenCloseSB, scanExact("]")),
		match(TokenOpenCB, scanExact("{")),
		match(TokenCloseCB, scanExact("}")),
		match(TokenQuestionMark, scanQuestionMark),
		match(TokenColon, scanColon),
		l.blockScalarMatcher(TokenLiteral, '|'),
		l.blockScalarMatcher(TokenFolded, '>'),
		ExcerptMatcher(tokenReserved, scanReserved),

		match(TokenStringDQ, scanDoubleQuoted),
		match(TokenStringSQ, scanSingleQuoted),
		l.plainScalarMatcher(),
		match(tokenStringIn, scanPlainIn),

		ExcerptMatcher(tokenUnknown, scanAnyRune),
	)
}

// match adapts a scanner to a shape-core matcher producing a token of kind
// whose text is the matched input.
func match(kind Kind, scan scanner) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		bs, ok := stream.(tokenizer.ByteStream)
		if !ok {
			return nil
		}
		rest := bs.RemainingBytes()
		n := scan(rest)
		if n == 0 {
			return nil
		}
		return consume(bs, kind, n, string(rest[:n]))
	}
}

// NewLineMatcher matches a line break and the spaces that indent the next
// line. Breaks followed by a block sequence marker get their own kind since
// they dedent one column less.
func NewLineMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		bs, ok := stream.(tokenizer.ByteStream)
		if !ok {
			return nil
		}
		rest := bs.RemainingBytes()
		n := scanNewLine(rest)
		if n == 0 {
			return nil
		}
		kind := TokenNewLine
		if scanDash(rest[n:]) > 0 {
			kind = tokenNewLineDash
		}
		return consume(bs, kind, n, string(rest[:n]))
	}
}

// ExcerptMatcher matches like match but consumes an excerpt of the
// remaining input as text, for tokens that are only ever reported as errors.
func ExcerptMatcher(kind Kind, scan scanner) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		bs, ok := stream.(tokenizer.ByteStream)
		if !ok {
			return nil
		}
		rest := bs.RemainingBytes()
		if scan(rest) == 0 {
			return nil
		}
		near := result.Excerpt(string(rest))
		return consume(bs, kind, len(near), near)
	}
}

// blockScalarMatcher matches a block scalar header and its body. How far
// the body reaches depends on the current indentation; the lexer splits the
// matched text into header and body.
func (l *lexer) blockScalarMatcher(kind Kind, indicator byte) tokenizer.Matcher {
	header := scanHeader(indicator)
	return func(stream tokenizer.Stream) *tokenizer.Token {
		bs, ok := stream.(tokenizer.ByteStream)
		if !ok {
			return nil
		}
		rest := bs.RemainingBytes()
		n := header(rest)
		if n == 0 {
			return nil
		}
		n += scanBlockBody(rest[n:], l.top())
		return consume(bs, kind, n, string(rest[:n]))
	}
}

// plainScalarMatcher matches a plain scalar outside flow collections,
// including continuation lines indented at least as far as the current
// level.
func (l *lexer) plainScalarMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if l.flow > 0 {
			return nil
		}
		bs, ok := stream.(tokenizer.ByteStream)
		if !ok {
			return nil
		}
		rest := bs.RemainingBytes()
		n := scanPlainOut(rest)
		if n == 0 {
			return nil
		}
		for {
			size := scanContinuation(rest[n:], l.top())
			if size == 0 {
				break
			}
			n += size
		}
		return consume(bs, tokenStringOut, n, string(rest[:n]))
	}
}

// consume advances the stream past n bytes and returns the token. text must
// be the bytes consumed: the shape-core tokenizer re-reads the token text
// from the stream to position it.
func consume(stream tokenizer.ByteStream, kind Kind, n int, text string) *tokenizer.Token {
	for i := 0; i < n; i++ {
		if _, ok := stream.NextByte(); !ok {
			return nil
		}
	}
	return tokenizer.NewToken(string(kind), []rune(text))
}

func scanAnyRune(s []byte) int {
	if len(s) == 0 {
		return 0
	}
	_, size := utf8.DecodeRune(s)
	return size
}

func normalizeBreaks(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
