package tokenizer

import (
	"reflect"
	"strings"
	"testing"
)

// kindsOf tokenizes input and returns the kinds of the resulting tokens.
func kindsOf(t *testing.T, input string) []Kind {
	t.Helper()
	tokens := mustTokenize(t, input)
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func mustTokenize(t *testing.T, input string) []Token {
	t.Helper()
	tokens, err := Tokenize(input).Unwrap()
	if err != nil {
		t.Fatalf("Tokenize(%q) failed: %v", input, err)
	}
	return tokens
}

func TestTokenizer_Streams(t *testing.T) {
	const (
		S   = TokenString
		C   = TokenColon
		I   = TokenIndent
		D   = TokenDedent
		N   = TokenNewLine
		Sp  = TokenSpace
		Int = TokenInt
		E   = TokenEnd
	)

	tests := []struct {
		name  string
		input string
		want  []Kind
	}{
		{
			name:  "single pair",
			input: "a: 1",
			want:  []Kind{S, C, I, Sp, Int, D, E},
		},
		{
			name:  "sequence under key at same column",
			input: "key:\n- a\n- b",
			want:  []Kind{S, C, I, N, TokenDash, I, S, D, N, TokenDash, I, S, D, D, E},
		},
		{
			name:  "nested map widens pending indent",
			input: "a:\n  b: 1\nc: 2",
			want:  []Kind{S, C, I, S, C, I, Sp, Int, D, D, N, S, C, I, Sp, Int, D, E},
		},
		{
			name:  "nested sequences",
			input: "- - x\n  - y",
			want:  []Kind{TokenDash, I, TokenDash, I, S, D, N, TokenDash, I, S, D, D, E},
		},
		{
			name:  "flow sequence",
			input: "[1, a b]",
			want:  []Kind{TokenOpenSB, Int, TokenComma, Sp, S, TokenCloseSB, E},
		},
		{
			name:  "flow map colon has no indent",
			input: "{a: 1}",
			want:  []Kind{TokenOpenCB, S, C, Sp, Int, TokenCloseCB, E},
		},
		{
			name:  "breaks inside flow do not indent",
			input: "[1,\n  2]",
			want:  []Kind{TokenOpenSB, Int, TokenComma, N, Int, TokenCloseSB, E},
		},
		{
			name:  "breaks inside flow do not dedent",
			input: "a: [1,\n2]",
			want:  []Kind{S, C, I, Sp, TokenOpenSB, Int, TokenComma, N, Int, TokenCloseSB, D, E},
		},
		{
			name:  "comments and blank lines",
			input: "a: 1 # c\n\nb: 2",
			want: []Kind{
				S, C, I, Sp, Int, Sp, TokenComment, TokenComment, D, N,
				S, C, I, Sp, Int, D, E,
			},
		},
		{
			name:  "literal block",
			input: "key: |\n  line1\n  line2\n",
			want:  []Kind{S, C, I, Sp, TokenLiteral, S, D, E},
		},
		{
			name:  "plain continuation in sequence item",
			input: "- a\n  b\n- c\n",
			want:  []Kind{TokenDash, I, S, D, N, TokenDash, I, S, D, N, E},
		},
		{
			name:  "literal block before sibling key",
			input: "a: |\n  x\nb: 1",
			want:  []Kind{S, C, I, Sp, TokenLiteral, S, D, N, S, C, I, Sp, Int, D, E},
		},
		{
			name:  "directive and document start",
			input: "%YAML 1.2\n---\na",
			want:  []Kind{TokenDirective, Sp, TokenDouble, N, TokenDocStart, N, S, E},
		},
		{
			name:  "explicit key",
			input: "? a\n: b",
			want:  []Kind{TokenQuestionMark, I, S, D, N, C, I, Sp, S, D, E},
		},
		{
			name:  "anchor and alias",
			input: "a: &x 1\nb: *x",
			want:  []Kind{S, C, I, Sp, TokenAnchor, Sp, Int, D, N, S, C, I, Sp, TokenAlias, D, E},
		},
		{
			name:  "empty input",
			input: "",
			want:  []Kind{E},
		},
		{
			name:  "unterminated quote is plain",
			input: `"abc`,
			want:  []Kind{S, E},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kindsOf(t, tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q)\n got: %v\nwant: %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizer_Scalars(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
		text  string
	}{
		{"null", TokenNull, "null"},
		{"~", TokenNull, "~"},
		{"NULL", TokenNull, "NULL"},
		{"True", TokenTrue, "True"},
		{"FALSE", TokenFalse, "FALSE"},
		{"-17", TokenInt, "-17"},
		{"0o17", TokenIntOct, "0o17"},
		{"0x1F", TokenIntHex, "0x1F"},
		{"12:30:45", TokenIntSex, "12:30:45"},
		{"1.5e3", TokenDouble, "1.5e3"},
		{".5", TokenDouble, ".5"},
		{".inf", TokenInfinityP, ".inf"},
		{"+.Inf", TokenInfinityP, "+.Inf"},
		{"-.INF", TokenInfinityN, "-.INF"},
		{".NaN", TokenNaN, ".NaN"},
		{`"a\"b"`, TokenStringDQ, `"a\"b"`},
		{`'it''s'`, TokenStringSQ, `'it''s'`},
		{"nullable", TokenString, "nullable"},
		{"1.2.3", TokenString, "1.2.3"},
		{"http://x.y", TokenString, "http://x.y"},
		{"a#b", TokenString, "a#b"},
		{"  padded  ", TokenSpace, "  "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := mustTokenize(t, tt.input)
			if tokens[0].Kind != tt.kind || tokens[0].Text != tt.text {
				t.Errorf("first token = %s, want %s %q", tokens[0], tt.kind, tt.text)
			}
		})
	}
}

func TestTokenizer_PlainContinuation(t *testing.T) {
	tokens := mustTokenize(t, "a: first\n  second  \n\n  third\nb: 1")
	var texts []string
	for _, tok := range tokens {
		if tok.Kind == TokenString {
			texts = append(texts, tok.Text)
		}
	}
	want := []string{"a", "first\nsecond\n\nthird", "b"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("strings = %q, want %q", texts, want)
	}
}

func TestTokenizer_PlainContinuationInSequence(t *testing.T) {
	tokens := mustTokenize(t, "- a\n  b\n- c\n")
	var texts []string
	for _, tok := range tokens {
		if tok.Kind == TokenString {
			texts = append(texts, tok.Text)
		}
	}
	want := []string{"a\nb", "c"}
	if !reflect.DeepEqual(texts, want) {
		t.Errorf("strings = %q, want %q", texts, want)
	}
}

func TestTokenizer_PlainStopsAtComment(t *testing.T) {
	tokens := mustTokenize(t, "a: text # note")
	if tokens[4].Kind != TokenString || tokens[4].Text != "text" {
		t.Fatalf("value token = %s", tokens[4])
	}
	if tokens[5].Kind != TokenComment || tokens[5].Text != "# note" {
		t.Errorf("comment token = %s", tokens[5])
	}
}

func TestTokenizer_BlockScalarBody(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		header string
		body   string
	}{
		{"clip header", "key: |\n  line1\n  line2\n", "|", " line1\n line2\n"},
		{"followed by key", "a: >-\n  x\n\nb: 1", ">-", " x\n\n"},
		{"header comment", "a: | # note\n   x", "| # note", "  x"},
		{"empty body", "a: |\nb: 1", "|", ""},
		{"followed by sequence item", "- k: |\n    text\n- next", "|", " text\n"},
		{"followed by comment line", "a: |\n  x\n# c", "|", " x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mustTokenize(t, tt.input)
			for i, tok := range tokens {
				if tok.Kind != TokenLiteral && tok.Kind != TokenFolded {
					continue
				}
				if tok.Text != tt.header {
					t.Errorf("header = %q, want %q", tok.Text, tt.header)
				}
				if next := tokens[i+1]; next.Kind != TokenString || next.Text != tt.body {
					t.Errorf("body = %s, want %q", next, tt.body)
				}
				return
			}
			t.Fatalf("no block scalar header in %v", tokens)
		})
	}
}

func TestTokenizer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
		near    string
	}{
		{"reserved at", "a: @x", "reserved character", "@x"},
		{"reserved backtick", "`cmd`", "reserved character", "`cmd`"},
		{"control character", "a: \x01b", "unexpected character sequence", "\x01b"},
		{"long excerpt", "@" + strings.Repeat("x", 60), "reserved character", "@" + strings.Repeat("x", 49)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Tokenize(tt.input)
			if r.IsOk() {
				t.Fatalf("Tokenize(%q) succeeded", tt.input)
			}
			err := r.Error()
			if err.Message != tt.message || err.Near != tt.near {
				t.Errorf("error = %q near %q, want %q near %q", err.Message, err.Near, tt.message, tt.near)
			}
		})
	}
}

func TestTokenizer_NormalizesBreaks(t *testing.T) {
	unix := kindsOf(t, "a: 1\nb:\n  - x\n")
	for _, input := range []string{"a: 1\r\nb:\r\n  - x\r\n", "a: 1\rb:\r  - x\r"} {
		if got := kindsOf(t, input); !reflect.DeepEqual(got, unix) {
			t.Errorf("Tokenize(%q) = %v, want %v", input, got, unix)
		}
	}
	for _, tok := range mustTokenize(t, "a: 1\r\n") {
		if strings.ContainsRune(tok.Text, '\r') {
			t.Errorf("token %s kept a carriage return", tok)
		}
	}
}

func TestTokenizer_Balanced(t *testing.T) {
	inputs := []string{
		"a:\n  b:\n    c: 1\n",
		"- a\n- - b\n  - c\n",
		"x: [1, {a: b}]\ny: |\n  text\n",
	}
	for _, input := range inputs {
		depth := 0
		for _, tok := range mustTokenize(t, input) {
			switch tok.Kind {
			case TokenIndent:
				depth++
			case TokenDedent:
				depth--
			}
			if depth < 0 {
				t.Fatalf("Tokenize(%q): Dedent without Indent", input)
			}
		}
		if depth != 0 {
			t.Errorf("Tokenize(%q): %d unclosed levels", input, depth)
		}
	}
}
