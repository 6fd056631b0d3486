package parser

import (
	"github.com/alexdrone/swatch-yaml/internal/result"
	"github.com/alexdrone/swatch-yaml/internal/tokenizer"
	"github.com/alexdrone/swatch-yaml/pkg/value"
)

// supportedVersions lists the accepted %YAML directive versions.
var supportedVersions = map[string]bool{"1.1": true, "1.2": true}

// ParseDocument parses a stream holding exactly one document.
func ParseDocument(tokens []tokenizer.Token) result.Result[value.Value] {
	doc := result.Bind(parseHeader(NewContext(tokens)), parseBody)
	return result.Bind(doc, func(s step) result.Result[value.Value] {
		end := s.c.skipDocEnd().expect(tokenizer.TokenEnd, "expected end")
		return result.Map(end, func(Context) value.Value { return s.v })
	})
}

// ParseDocuments parses every document of a stream. Anchors do not carry
// over from one document to the next.
func ParseDocuments(tokens []tokenizer.Token) result.Result[[]value.Value] {
	var docs []value.Value
	c := NewContext(tokens).skipDocEnd()
	for c.peek().Kind != tokenizer.TokenEnd {
		r := result.Bind(parseHeader(c), parseBody)
		s, ok := r.Value()
		if !ok {
			return result.Fail[[]value.Value](r.Error())
		}
		next := s.c.skipDocEnd()
		if next.pos == c.pos {
			return result.Fail[[]value.Value](c.fail("expected end"))
		}
		docs = append(docs, s.v)
		c = next
	}
	return result.Ok(docs)
}

// parseBody parses the root node of a document. A document holding only
// layout before the next marker is Null.
func parseBody(c Context) result.Result[step] {
	switch next := c.skipSpace(); next.peek().Kind {
	case tokenizer.TokenDocStart, tokenizer.TokenDocEnd:
		return done(next, value.Null())
	}
	return parse(c)
}

// parseHeader skips layout before a document, reads an optional version
// directive and the document start marker. The alias table is reset.
//
// Grammar:
//
//	Header = { Layout } [ YamlDirective Space Version { Layout } "---" ]
//	       | { Layout } [ "---" ] ;
func parseHeader(c Context) result.Result[Context] {
	c = c.withoutAliases()
	directive := false
	for {
		switch c.peek().Kind {
		case tokenizer.TokenComment, tokenizer.TokenSpace, tokenizer.TokenNewLine:
			c = c.advance()
		case tokenizer.TokenDirective:
			at := c
			unique := result.Guard(!directive, func() *result.Error {
				return at.fail("duplicate yaml directive")
			})
			r := result.Then(unique, func() result.Result[Context] {
				return result.Bind(at.advance().expect(tokenizer.TokenSpace, "expected space"), expectVersion)
			})
			directive = true
			next, ok := r.Value()
			if !ok {
				return r
			}
			c = next
		case tokenizer.TokenDocStart:
			return result.Ok(c.advance())
		default:
			if directive {
				return result.Fail[Context](c.fail("expected ---"))
			}
			return result.Ok(c)
		}
	}
}

func expectVersion(c Context) result.Result[Context] {
	supported := result.Guard(supportedVersions[c.peek().Text], func() *result.Error {
		return c.fail("invalid yaml version")
	})
	return result.Then(supported, func() result.Result[Context] {
		return result.Ok(c.advance())
	})
}
