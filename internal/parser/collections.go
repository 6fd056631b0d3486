package parser

import (
	"github.com/alexdrone/swatch-yaml/internal/result"
	"github.com/alexdrone/swatch-yaml/internal/tokenizer"
	"github.com/alexdrone/swatch-yaml/pkg/value"
)

// parseFlowSeq parses the items of a flow sequence. c is positioned after
// the opening bracket.
//
// Grammar:
//
//	FlowSeq = "[" [ Node { "," Node } [ "," ] ] "]" ;
func parseFlowSeq(c Context) result.Result[step] {
	var items []value.Value
	for {
		c = c.skipSpace()
		if c.peek().Kind == tokenizer.TokenCloseSB {
			return done(c.advance(), value.Array(items...))
		}
		if len(items) > 0 {
			r := c.expect(tokenizer.TokenComma, "expected comma")
			next, ok := r.Value()
			if !ok {
				return failed(r.Error())
			}
			c = next.skipSpace()
			if c.peek().Kind == tokenizer.TokenCloseSB {
				continue
			}
		}
		r := parse(c)
		s, ok := r.Value()
		if !ok {
			return r
		}
		items = append(items, s.v)
		c = s.c
	}
}

// parseFlowMap parses the members of a flow mapping. c is positioned after
// the opening brace. Keys must be strings; a member without a value maps to
// Null.
//
// Grammar:
//
//	FlowMap = "{" [ Member { "," Member } [ "," ] ] "}" ;
//	Member  = String ":" [ Node ] ;
func parseFlowMap(c Context) result.Result[step] {
	var pairs []value.Pair
	for {
		c = c.skipSpace()
		if c.peek().Kind == tokenizer.TokenCloseCB {
			return done(c.advance(), value.MustMap(pairs...))
		}
		if len(pairs) > 0 {
			r := c.expect(tokenizer.TokenComma, "expected comma")
			next, ok := r.Value()
			if !ok {
				return failed(r.Error())
			}
			c = next.skipSpace()
			if c.peek().Kind == tokenizer.TokenCloseCB {
				continue
			}
		}
		r := parseMember(c, pairs)
		member, ok := r.Value()
		if !ok {
			return failed(r.Error())
		}
		pairs = append(pairs, member.pair)
		c = member.c
	}
}

type memberStep struct {
	c    Context
	pair value.Pair
}

func parseMember(c Context, pairs []value.Pair) result.Result[memberStep] {
	return result.Bind(parseString(c), func(key step) result.Result[memberStep] {
		return result.Then(checkKey(key.c, pairs, key.v), func() result.Result[memberStep] {
			colon := key.c.skipSpace().expect(tokenizer.TokenColon, "expected colon")
			return result.Bind(colon, func(c Context) result.Result[memberStep] {
				c = c.skipSpace()
				if k := c.peek().Kind; k == tokenizer.TokenComma || k == tokenizer.TokenCloseCB {
					return result.Ok(memberStep{c: c, pair: value.Pair{Key: key.v, Value: value.Null()}})
				}
				return result.Map(parse(c), func(s step) memberStep {
					return memberStep{c: s.c, pair: value.Pair{Key: key.v, Value: s.v}}
				})
			})
		})
	})
}

// parseBlockSeq parses dash entries until the next token is not a dash.
// Every dash is followed by an Indent token and its entry must end with the
// matching Dedent.
//
// Grammar:
//
//	BlockSeq = "-" Indent Node Dedent { "-" Indent Node Dedent } ;
func parseBlockSeq(c Context) result.Result[step] {
	var items []value.Value
	for c.peek().Kind == tokenizer.TokenDash {
		indent := c.advance().expect(tokenizer.TokenIndent, "expected indent after dash")
		entry := closedBy(result.Bind(indent, func(c Context) result.Result[step] {
			return parse(c.skipSpace())
		}), tokenizer.TokenDedent, "expected dedent after dash indent")
		s, ok := entry.Value()
		if !ok {
			return entry
		}
		items = append(items, s.v)
		c = s.c.skipSpace()
	}
	return done(c, value.Array(items...))
}

// parseBlockMap parses block mapping entries. An entry is either an explicit
// key introduced by "?", whose value may be omitted, or a string key
// followed by a colon.
//
// Grammar:
//
//	BlockMap = Entry { Entry } ;
//	Entry    = "?" Node [ ":" Node ] | String ":" Node ;
func parseBlockMap(c Context) result.Result[step] {
	var pairs []value.Pair
	for {
		var r result.Result[memberStep]
		switch c.peek().Kind {
		case tokenizer.TokenQuestionMark:
			r = parseExplicitEntry(c, pairs)
		case tokenizer.TokenString, tokenizer.TokenStringDQ, tokenizer.TokenStringSQ:
			r = parseImplicitEntry(c, pairs)
		default:
			return done(c, value.MustMap(pairs...))
		}
		entry, ok := r.Value()
		if !ok {
			return failed(r.Error())
		}
		pairs = append(pairs, entry.pair)
		c = entry.c.skipSpace()
	}
}

func parseExplicitEntry(c Context, pairs []value.Pair) result.Result[memberStep] {
	key := result.Bind(c.expect(tokenizer.TokenQuestionMark, "expected ?"), parse)
	return result.Bind(key, func(key step) result.Result[memberStep] {
		return result.Then(checkKey(key.c, pairs, key.v), func() result.Result[memberStep] {
			c := key.c.skipSpace()
			if c.peek().Kind != tokenizer.TokenColon {
				return result.Ok(memberStep{c: c, pair: value.Pair{Key: key.v, Value: value.Null()}})
			}
			return result.Map(parse(c.advance().skipSpace()), func(s step) memberStep {
				return memberStep{c: s.c, pair: value.Pair{Key: key.v, Value: s.v}}
			})
		})
	})
}

func parseImplicitEntry(c Context, pairs []value.Pair) result.Result[memberStep] {
	return result.Bind(parseString(c), func(key step) result.Result[memberStep] {
		return result.Then(checkKey(key.c, pairs, key.v), func() result.Result[memberStep] {
			colon := key.c.skipSpace().expect(tokenizer.TokenColon, "expected colon")
			return result.Bind(colon, func(c Context) result.Result[memberStep] {
				return result.Map(parse(c.skipSpace()), func(s step) memberStep {
					return memberStep{c: s.c, pair: value.Pair{Key: key.v, Value: s.v}}
				})
			})
		})
	})
}

// parseBlockMapOrString decides between an implicit-key block mapping and a
// lone string: a single-line string immediately followed by a colon starts a
// mapping.
func parseBlockMapOrString(c Context) result.Result[step] {
	if c.peekAt(1).Kind == tokenizer.TokenColon && !containsBreak(c.peek().Text) {
		return parseBlockMap(c)
	}
	return parseString(c)
}
