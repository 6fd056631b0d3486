// Package yaml loads a practical subset of YAML 1.2 into value.Value trees.
//
// The input is tokenized into a flat stream in which block structure is
// explicit (Indent and Dedent tokens), then parsed by recursive descent.
// Supported: block and flow collections, explicit "?" keys, plain, quoted,
// literal and folded scalars, anchors and aliases, the %YAML directive and
// multi-document streams. Tags, merge keys and other directives are not.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Parsing shares no mutable state.
//
// # Loading APIs
//
//   - Load(string) parses a stream holding exactly one document
//   - LoadAll(string) parses every document of a stream
//   - LoadReader(io.Reader) and LoadAllReader(io.Reader) read their input first
//   - Validate(string) checks that every document parses
//
// The package-level functions use DefaultOptions. Build a Loader with
// NewLoader to change limits or attach a logger and metrics.
//
// # Example
//
//	doc, err := yaml.Load("name: Alice\ntags: [go, yaml]")
//	if err != nil {
//	    // err reads like: expected colon, near "..."
//	}
//	name, _ := doc.Key("name").AsString() // "Alice"
//
// Failures of the tokenizer and parser are *Error values carrying a short
// excerpt of the input that was not consumed yet.
package yaml

import (
	"io"

	"github.com/alexdrone/swatch-yaml/internal/result"
	"github.com/alexdrone/swatch-yaml/internal/tokenizer"
	"github.com/alexdrone/swatch-yaml/pkg/value"
)

// Error is a syntax error with an excerpt of the remaining input.
type Error = result.Error

// Token is one lexical unit of the input, as returned by Tokenize.
type Token = tokenizer.Token

var defaultLoader = &Loader{opts: DefaultOptions()}

// Load parses input holding exactly one document.
//
// Example:
//
//	v, err := yaml.Load("- 1\n- two")
//	// v is Array([Int(1), String(two)])
func Load(input string) (value.Value, error) {
	return defaultLoader.Load(input)
}

// LoadAll parses every document of a stream. Documents are separated by
// "---" and may end with "...". Anchors are scoped to their document.
//
// Example:
//
//	docs, err := yaml.LoadAll("--- a\n--- b")
//	// docs is [String(a), String(b)]
func LoadAll(input string) ([]value.Value, error) {
	return defaultLoader.LoadAll(input)
}

// LoadReader reads r and parses one document.
func LoadReader(r io.Reader) (value.Value, error) {
	return defaultLoader.LoadReader(r)
}

// LoadAllReader reads r and parses every document.
func LoadAllReader(r io.Reader) ([]value.Value, error) {
	return defaultLoader.LoadAllReader(r)
}

// Tokenize returns the token stream of input, ending with an End token.
func Tokenize(input string) ([]Token, error) {
	return defaultLoader.Tokenize(input)
}

// Validate reports the first error in input, or nil if every document
// parses.
func Validate(input string) error {
	_, err := LoadAll(input)
	return err
}
