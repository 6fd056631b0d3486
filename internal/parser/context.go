package parser

import (
	"sort"
	"strings"

	"github.com/alexdrone/swatch-yaml/internal/result"
	"github.com/alexdrone/swatch-yaml/internal/tokenizer"
	"github.com/alexdrone/swatch-yaml/pkg/value"
)

// Context is an immutable parse position: the shared token slice, the index
// of the next token and the anchors defined so far. Every parse step takes a
// Context and returns a new one, so a failed branch never disturbs its
// caller's state.
type Context struct {
	tokens  []tokenizer.Token
	pos     int
	aliases *aliases
}

// aliases is a persistent list of anchor bindings. Defining an anchor
// prepends a node, so earlier contexts keep seeing their own bindings and a
// redefined name shadows the older value.
type aliases struct {
	name  string
	value value.Value
	next  *aliases
}

// NewContext starts a parse at the first token. tokens must end with an End
// token, as produced by tokenizer.Tokenize.
func NewContext(tokens []tokenizer.Token) Context {
	return Context{tokens: tokens}
}

// peek returns the next token. Reading past the stream yields End.
func (c Context) peek() tokenizer.Token {
	return c.peekAt(0)
}

func (c Context) peekAt(n int) tokenizer.Token {
	if i := c.pos + n; i < len(c.tokens) {
		return c.tokens[i]
	}
	return tokenizer.Token{Kind: tokenizer.TokenEnd}
}

func (c Context) advance() Context {
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return c
}

// skipSpace skips comments, spaces and line breaks.
func (c Context) skipSpace() Context {
	for c.peek().IsSpace() {
		c = c.advance()
	}
	return c
}

// skipDocEnd skips layout and document end markers after a document.
func (c Context) skipDocEnd() Context {
	for t := c.peek(); t.IsSpace() || t.Kind == tokenizer.TokenDocEnd; t = c.peek() {
		c = c.advance()
	}
	return c
}

// expect consumes a token of the given kind or fails with message.
func (c Context) expect(kind tokenizer.Kind, message string) result.Result[Context] {
	if c.peek().Kind != kind {
		return result.Fail[Context](c.fail(message))
	}
	return result.Ok(c.advance())
}

func (c Context) withAlias(name string, v value.Value) Context {
	c.aliases = &aliases{name: name, value: v, next: c.aliases}
	return c
}

func (c Context) withoutAliases() Context {
	c.aliases = nil
	return c
}

func (c Context) alias(name string) (value.Value, bool) {
	for a := c.aliases; a != nil; a = a.next {
		if a.name == name {
			return a.value, true
		}
	}
	return value.Value{}, false
}

// anchorNames lists the distinct anchors visible from c, sorted.
func (c Context) anchorNames() []string {
	seen := map[string]bool{}
	var names []string
	for a := c.aliases; a != nil; a = a.next {
		if !seen[a.name] {
			seen[a.name] = true
			names = append(names, a.name)
		}
	}
	sort.Strings(names)
	return names
}

// fail builds an error whose excerpt is the source text of the tokens that
// follow c.
func (c Context) fail(message string) *result.Error {
	return result.New(message, c.rest())
}

// rest rebuilds enough of the remaining input for an error excerpt.
func (c Context) rest() string {
	var b strings.Builder
	for i := c.pos; i < len(c.tokens) && b.Len() < result.ExcerptLength; i++ {
		if c.tokens[i].Kind == tokenizer.TokenEnd {
			break
		}
		b.WriteString(c.tokens[i].Text)
	}
	return b.String()
}
