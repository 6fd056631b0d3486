package yaml

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/alexdrone/swatch-yaml/internal/parser"
	"github.com/alexdrone/swatch-yaml/internal/result"
	"github.com/alexdrone/swatch-yaml/internal/tokenizer"
	"github.com/alexdrone/swatch-yaml/pkg/value"
)

var (
	// ErrInputTooLarge is wrapped by a LimitError when the input exceeds
	// Options.MaxInputSize.
	ErrInputTooLarge = errors.New("yaml: input too large")

	// ErrTooDeep is wrapped by a LimitError when nesting exceeds
	// Options.MaxDepth.
	ErrTooDeep = errors.New("yaml: nesting too deep")
)

// LimitError reports input rejected by a Loader limit before parsing.
type LimitError struct {
	Limit  string // "max_input_size" or "max_depth"
	Max    int64
	Actual int64
	Err    error
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%v: %d exceeds %s %d", e.Err, e.Actual, e.Limit, e.Max)
}

func (e *LimitError) Unwrap() error {
	return e.Err
}

// Loader tokenizes and parses YAML text under configured limits. A Loader
// is immutable and safe for concurrent use.
type Loader struct {
	opts Options
}

// NewLoader applies defaults to opts, validates them and returns a Loader.
func NewLoader(opts Options) (*Loader, error) {
	ApplyDefaults(&opts)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Loader{opts: opts}, nil
}

// Load parses input holding exactly one document.
func (l *Loader) Load(input string) (value.Value, error) {
	return load(l, input, parser.ParseDocument, func(value.Value) int { return 1 })
}

// LoadAll parses every document of input.
func (l *Loader) LoadAll(input string) ([]value.Value, error) {
	return load(l, input, parser.ParseDocuments, func(docs []value.Value) int { return len(docs) })
}

// LoadReader reads r fully, within MaxInputSize, and parses one document.
func (l *Loader) LoadReader(r io.Reader) (value.Value, error) {
	input, err := l.read(r)
	if err != nil {
		return value.Value{}, err
	}
	return l.Load(input)
}

// LoadAllReader reads r fully, within MaxInputSize, and parses every
// document.
func (l *Loader) LoadAllReader(r io.Reader) ([]value.Value, error) {
	input, err := l.read(r)
	if err != nil {
		return nil, err
	}
	return l.LoadAll(input)
}

func (l *Loader) read(r io.Reader) (string, error) {
	if l.opts.MaxInputSize > 0 {
		r = io.LimitReader(r, l.opts.MaxInputSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("yaml: reading input: %w", err)
	}
	return string(data), nil
}

// Tokenize runs only the tokenizer, applying the same limits as Load.
func (l *Loader) Tokenize(input string) ([]tokenizer.Token, error) {
	if err := l.checkSize(len(input)); err != nil {
		return nil, err
	}
	tokens, err := tokenizer.Tokenize(input).Unwrap()
	if err != nil {
		return nil, err
	}
	if err := l.checkDepth(tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func load[T any](l *Loader, input string, parse func([]tokenizer.Token) result.Result[T], count func(T) int) (T, error) {
	start := time.Now()
	l.opts.Metrics.observeInput(len(input))

	fail := func(stage string, err error) (T, error) {
		var zero T
		l.opts.Metrics.observeFailure(stage, time.Since(start))
		if log := l.opts.Logger; log != nil {
			log.Warn("yaml load failed", slog.String("stage", stage), slog.Any("error", err))
		}
		return zero, err
	}

	if err := l.checkSize(len(input)); err != nil {
		return fail(StageLimit, err)
	}
	tokens, err := tokenizer.Tokenize(input).Unwrap()
	if err != nil {
		return fail(StageTokenize, err)
	}
	l.opts.Metrics.observeTokens(len(tokens))
	if err := l.checkDepth(tokens); err != nil {
		return fail(StageLimit, err)
	}
	v, err := parse(tokens).Unwrap()
	if err != nil {
		return fail(StageParse, err)
	}

	elapsed := time.Since(start)
	n := count(v)
	l.opts.Metrics.observeSuccess(n, elapsed)
	if log := l.opts.Logger; log != nil {
		log.Debug("yaml loaded",
			slog.Int("documents", n),
			slog.Int("bytes", len(input)),
			slog.Int("tokens", len(tokens)),
			slog.Duration("duration", elapsed),
		)
	}
	return v, nil
}

func (l *Loader) checkSize(size int) error {
	if limit := l.opts.MaxInputSize; limit > 0 && int64(size) > limit {
		return &LimitError{Limit: "max_input_size", Max: limit, Actual: int64(size), Err: ErrInputTooLarge}
	}
	return nil
}

func (l *Loader) checkDepth(tokens []tokenizer.Token) error {
	limit := l.opts.MaxDepth
	if limit <= 0 {
		return nil
	}
	if depth := Depth(tokens); depth > limit {
		return &LimitError{Limit: "max_depth", Max: int64(limit), Actual: int64(depth), Err: ErrTooDeep}
	}
	return nil
}

// Depth returns the deepest nesting reached by a token stream, counting
// open indentation levels and open flow brackets.
func Depth(tokens []tokenizer.Token) int {
	depth, deepest := 0, 0
	for _, t := range tokens {
		switch t.Kind {
		case tokenizer.TokenIndent, tokenizer.TokenOpenSB, tokenizer.TokenOpenCB:
			depth++
			if depth > deepest {
				deepest = depth
			}
		case tokenizer.TokenDedent, tokenizer.TokenCloseSB, tokenizer.TokenCloseCB:
			if depth > 0 {
				depth--
			}
		}
	}
	return deepest
}
