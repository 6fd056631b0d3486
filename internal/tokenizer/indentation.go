package tokenizer

import (
	"strings"

	"github.com/shapestone/shape-core/pkg/tokenizer"

	"github.com/alexdrone/swatch-yaml/internal/result"
)

// lexer turns raw matcher output into the parser's token stream. It keeps a
// stack of indentation levels and the flow nesting depth, and emits Indent
// and Dedent tokens as levels open and close.
//
// Example:
//
//	Input:
//	  key:
//	  - a
//	  - b
//
//	Tokens:
//	  String "key", Colon, Indent, NewLine,
//	  Dash, Indent " ", String "a", Dedent, NewLine,
//	  Dash, Indent " ", String "b", Dedent, Dedent, End
//
// A block sequence may sit one column left of the mapping colon that owns
// it, which is why the break before "- a" does not dedent.
type lexer struct {
	tokens  []Token
	indents []int // indentation levels, bottom is always 0
	flow    int   // depth of open [ and { brackets
	body    int   // index of a block scalar body awaiting its final break, or -1
}

func newLexer() *lexer {
	return &lexer{indents: []int{0}, body: -1}
}

// run drains the shape-core tokenizer and applies each token.
func (l *lexer) run(tok tokenizer.Tokenizer) result.Result[[]Token] {
	for {
		t, ok := tok.NextToken()
		if !ok || Kind(t.Kind()) == tokenEOF {
			break
		}
		if err := l.accept(Kind(t.Kind()), t.ValueString()); err != nil {
			return result.Fail[[]Token](err)
		}
	}
	for len(l.indents) > 1 {
		l.pop()
	}
	l.emit(TokenEnd, "")
	return result.Ok(l.tokens)
}

func (l *lexer) accept(kind Kind, text string) *result.Error {
	if l.body >= 0 {
		// A break after the body means more input follows it.
		if strings.HasPrefix(text, "\n") {
			l.tokens[l.body].Text += "\n"
		}
		l.body = -1
	}

	switch kind {
	case TokenNewLine:
		l.newLine(text, false)
	case tokenNewLineDash:
		l.newLine(text, true)
	case TokenDash, TokenQuestionMark:
		l.push(l.top() + len(text))
		l.emit(kind, text[:1])
		l.emit(TokenIndent, text[1:])
	case TokenColon:
		l.emit(TokenColon, text)
		if l.flow == 0 {
			l.push(l.top() + 1)
			l.emit(TokenIndent, "")
		}
	case TokenOpenSB, TokenOpenCB:
		l.flow++
		l.emit(kind, text)
	case TokenCloseSB, TokenCloseCB:
		if l.flow > 0 {
			l.flow--
		}
		l.emit(kind, text)
	case TokenLiteral, TokenFolded:
		end := strings.IndexByte(text, '\n')
		if end < 0 {
			l.emit(kind, text)
			l.emit(TokenString, "")
			break
		}
		l.emit(kind, text[:end])
		l.emit(TokenString, blockBody(text[end:], l.top()))
		l.body = len(l.tokens) - 1
	case tokenStringOut:
		l.emit(TokenString, plainLines(text))
	case tokenStringIn:
		l.emit(TokenString, trimOneBlank(text))
	case tokenReserved:
		return &result.Error{Message: "reserved character", Near: text}
	case tokenUnknown:
		return &result.Error{Message: "unexpected character sequence", Near: text}
	default:
		l.emit(kind, text)
	}
	return nil
}

// newLine compares the indentation of the next line with the current level.
//
//   - inside flow, or at the same level: NewLine
//   - deeper: Indent, widening a directly preceding Indent instead of
//     opening a second level
//   - shallower: a Dedent per closed level, then NewLine. A line starting
//     with a dash keeps levels that are only one column deeper.
func (l *lexer) newLine(text string, beforeDash bool) {
	spaces := len(text) - 1
	top := l.top()
	switch {
	case l.flow > 0, spaces == top:
		l.emit(TokenNewLine, text)
	case spaces > top:
		if n := len(l.tokens); n > 0 && l.tokens[n-1].Kind == TokenIndent {
			l.indents[len(l.indents)-1] = spaces
			l.tokens[n-1] = Token{Kind: TokenIndent, Text: text}
			return
		}
		l.push(spaces)
		l.emit(TokenIndent, text)
	case beforeDash && spaces == top-1:
		l.emit(TokenNewLine, text)
	default:
		for len(l.indents) > 1 && l.closes(spaces, beforeDash) {
			l.pop()
		}
		l.emit(TokenNewLine, text)
	}
}

func (l *lexer) closes(spaces int, beforeDash bool) bool {
	if beforeDash {
		return spaces < l.top()-1
	}
	return spaces < l.top()
}

func (l *lexer) top() int {
	return l.indents[len(l.indents)-1]
}

func (l *lexer) push(level int) {
	l.indents = append(l.indents, level)
}

func (l *lexer) pop() {
	l.indents = l.indents[:len(l.indents)-1]
	l.emit(TokenDedent, "")
}

func (l *lexer) emit(kind Kind, text string) {
	l.tokens = append(l.tokens, Token{Kind: kind, Text: text})
}
