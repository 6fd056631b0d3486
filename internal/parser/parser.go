// Package parser implements recursive descent parsing over the token stream
// produced by internal/tokenizer. Each production is a function from an
// immutable Context to a result holding the parsed value and the Context
// after it.
//
// Grammar (informal):
//
//	Stream   = { Document } End ;
//	Document = Header Node { Comment | Space | NewLine | DocEnd } ;
//	Header   = [ YamlDirective Space Version ] [ DocStart ] ;
//	Node     = [ Anchor ] ( Scalar | Alias | BlockSeq | BlockMap | FlowSeq
//	         | FlowMap | BlockScalar | Indent Node Dedent ) ;
package parser

import (
	"github.com/alexdrone/swatch-yaml/internal/result"
	"github.com/alexdrone/swatch-yaml/internal/tokenizer"
	"github.com/alexdrone/swatch-yaml/pkg/value"
)

// step is the outcome of one production: the parsed value and the position
// after it.
type step struct {
	c Context
	v value.Value
}

func done(c Context, v value.Value) result.Result[step] {
	return result.Ok(step{c: c, v: v})
}

func failed(err *result.Error) result.Result[step] {
	return result.Fail[step](err)
}

// parse dispatches on the next token.
func parse(c Context) result.Result[step] {
	t := c.peek()
	switch t.Kind {
	case tokenizer.TokenComment, tokenizer.TokenSpace, tokenizer.TokenNewLine:
		return parse(c.skipSpace())
	case tokenizer.TokenNull:
		return done(c.advance(), value.Null())
	case tokenizer.TokenTrue:
		return done(c.advance(), value.Bool(true))
	case tokenizer.TokenFalse:
		return done(c.advance(), value.Bool(false))
	case tokenizer.TokenInt, tokenizer.TokenIntOct, tokenizer.TokenIntHex, tokenizer.TokenIntSex:
		return parseInt(c)
	case tokenizer.TokenDouble, tokenizer.TokenInfinityP, tokenizer.TokenInfinityN, tokenizer.TokenNaN:
		return parseDouble(c)
	case tokenizer.TokenDash:
		return parseBlockSeq(c)
	case tokenizer.TokenQuestionMark:
		return parseBlockMap(c)
	case tokenizer.TokenOpenSB:
		return parseFlowSeq(c.advance())
	case tokenizer.TokenOpenCB:
		return parseFlowMap(c.advance())
	case tokenizer.TokenString, tokenizer.TokenStringDQ, tokenizer.TokenStringSQ:
		return parseBlockMapOrString(c)
	case tokenizer.TokenLiteral:
		return parseBlockScalar(c)
	case tokenizer.TokenFolded:
		return result.Map(parseBlockScalar(c), func(s step) step {
			text, _ := s.v.AsString()
			return step{c: s.c, v: value.String(foldBlock(text))}
		})
	case tokenizer.TokenIndent:
		return closedBy(parse(c.advance()), tokenizer.TokenDedent, "expected dedent")
	case tokenizer.TokenAnchor:
		name := t.Text[1:]
		return result.Map(parse(c.advance()), func(s step) step {
			return step{c: s.c.withAlias(name, s.v), v: s.v}
		})
	case tokenizer.TokenAlias:
		name := t.Text[1:]
		if v, ok := c.alias(name); ok {
			return done(c.advance(), v)
		}
		return failed(unknownAlias(c, name))
	case tokenizer.TokenEnd, tokenizer.TokenDedent:
		return done(c, value.Null())
	}
	return failed(c.fail("unexpected type " + string(t.Kind)))
}

// closedBy skips layout after a parsed value and requires a closing token of
// the given kind, keeping the value.
func closedBy(r result.Result[step], kind tokenizer.Kind, message string) result.Result[step] {
	return result.Bind(r, func(s step) result.Result[step] {
		return result.Map(s.c.skipSpace().expect(kind, message), func(c Context) step {
			return step{c: c, v: s.v}
		})
	})
}

// checkKey fails if key is already present in pairs. c is the position after
// the key, so the excerpt starts where the duplicate was read.
func checkKey(c Context, pairs []value.Pair, key value.Value) result.Result[struct{}] {
	return result.Guard(value.IndexOf(pairs, key) < 0, func() *result.Error {
		return c.fail("duplicate key " + key.String())
	})
}
