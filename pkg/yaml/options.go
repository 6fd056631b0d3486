package yaml

import (
	"fmt"
	"log/slog"
	"strings"
)

// Default limits applied by ApplyDefaults.
const (
	DefaultMaxInputSize = 16 << 20 // 16 MiB
	DefaultMaxDepth     = 256

	// maxDepthLimit caps MaxDepth since parsing recurses once per level.
	maxDepthLimit = 10000
)

// Options configures a Loader.
type Options struct {
	// MaxInputSize is the largest input accepted, in bytes. Zero selects
	// DefaultMaxInputSize; a negative value disables the check.
	MaxInputSize int64

	// MaxDepth bounds the nesting of a document, counted as open
	// indentation levels plus open flow brackets. Zero selects
	// DefaultMaxDepth; a negative value disables the check.
	MaxDepth int

	// Logger receives load outcomes at debug level and failures at warn.
	// Nil disables logging.
	Logger *slog.Logger

	// Metrics, when set, records every load.
	Metrics *Metrics
}

// DefaultOptions returns Options with every default applied.
func DefaultOptions() Options {
	var opts Options
	ApplyDefaults(&opts)
	return opts
}

// ApplyDefaults fills zero-valued fields of opts. It is idempotent.
func ApplyDefaults(opts *Options) {
	if opts.MaxInputSize == 0 {
		opts.MaxInputSize = DefaultMaxInputSize
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
}

// FieldError reports an invalid Options field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every invalid field of an Options value.
type ValidationError struct {
	Errors []FieldError
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "invalid options: " + e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid options (%d errors):", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Validate checks opts after defaults have been applied. Limits must be
// positive or explicitly disabled with a negative value.
func (opts Options) Validate() error {
	var errs []FieldError
	if opts.MaxInputSize == 0 {
		errs = append(errs, FieldError{Field: "max_input_size", Message: "must be positive or negative to disable"})
	}
	switch {
	case opts.MaxDepth == 0:
		errs = append(errs, FieldError{Field: "max_depth", Message: "must be positive or negative to disable"})
	case opts.MaxDepth > maxDepthLimit:
		errs = append(errs, FieldError{Field: "max_depth", Message: fmt.Sprintf("must not exceed %d", maxDepthLimit)})
	}
	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
