// Package tokenizer turns YAML text into a flat token stream using Shape's
// tokenizer framework. Block structure is made explicit with Indent and
// Dedent tokens so the parser never measures columns itself.
package tokenizer

import "strconv"

// Kind names a token type. Kinds are the strings carried by shape-core
// tokens.
type Kind string

// Token kinds.
const (
	// Document framing
	TokenDirective Kind = "YamlDirective" // %YAML
	TokenDocStart  Kind = "DocStart"      // ---
	TokenDocEnd    Kind = "DocEnd"        // ...

	// Layout
	TokenComment Kind = "Comment" // # ... or a blank line
	TokenSpace   Kind = "Space"
	TokenNewLine Kind = "NewLine"
	TokenIndent  Kind = "Indent"
	TokenDedent  Kind = "Dedent"

	// Structure
	TokenDash         Kind = "Dash"         // -
	TokenQuestionMark Kind = "QuestionMark" // ?
	TokenColon        Kind = "Colon"        // :
	TokenComma        Kind = "Comma"        // ,
	TokenOpenSB       Kind = "OpenSB"       // [
	TokenCloseSB      Kind = "CloseSB"      // ]
	TokenOpenCB       Kind = "OpenCB"       // {
	TokenCloseCB      Kind = "CloseCB"      // }

	// Node properties
	TokenAnchor Kind = "Anchor" // &name
	TokenAlias  Kind = "Alias"  // *name

	// Block scalar headers
	TokenLiteral Kind = "Literal" // |
	TokenFolded  Kind = "Folded"  // >

	// Scalars
	TokenNull      Kind = "Null"
	TokenTrue      Kind = "True"
	TokenFalse     Kind = "False"
	TokenInt       Kind = "Int"
	TokenIntOct    Kind = "IntOct"
	TokenIntHex    Kind = "IntHex"
	TokenIntSex    Kind = "IntSex"
	TokenDouble    Kind = "Double"
	TokenInfinityP Kind = "InfinityP"
	TokenInfinityN Kind = "InfinityN"
	TokenNaN       Kind = "NaN"
	TokenStringDQ  Kind = "StringDQ"
	TokenStringSQ  Kind = "StringSQ"
	TokenString    Kind = "String" // plain scalar or block scalar body

	TokenEnd Kind = "End"
)

// Kinds produced by matchers and resolved by the lexer before tokens reach
// the parser.
const (
	tokenNewLineDash Kind = "NewLineDash" // line break followed by a dash marker
	tokenStringOut   Kind = "StringFO"    // plain scalar outside flow
	tokenStringIn    Kind = "StringFI"    // plain scalar inside flow
	tokenReserved    Kind = "Reserved"    // @ or `
	tokenUnknown     Kind = "Unknown"
	tokenEOF         Kind = "EOF"
)

// Token is one lexical unit. Text is the matched source, except for plain and
// block scalars where it is the scalar content with layout indentation
// removed.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	return string(t.Kind) + " " + strconv.Quote(t.Text)
}

// IsSpace reports whether the token only carries layout between values.
func (t Token) IsSpace() bool {
	return t.Kind == TokenComment || t.Kind == TokenSpace || t.Kind == TokenNewLine
}
