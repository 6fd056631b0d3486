package yaml

import (
	"context"
	"log/slog"

	"github.com/alexdrone/swatch-yaml/pkg/value"
)

// Debug loads one document like Load and logs each token and the resulting
// value to logger at debug level.
func Debug(logger *slog.Logger, input string) (value.Value, error) {
	if !traceTokens(logger, input) {
		return Load(input)
	}
	v, err := Load(input)
	if err != nil {
		logger.Debug("parse failed", slog.Any("error", err))
		return v, err
	}
	logger.Debug("document", slog.Int("index", 0), slog.String("value", v.String()))
	return v, nil
}

// DebugAll is the multi-document form of Debug.
func DebugAll(logger *slog.Logger, input string) ([]value.Value, error) {
	if !traceTokens(logger, input) {
		return LoadAll(input)
	}
	docs, err := LoadAll(input)
	if err != nil {
		logger.Debug("parse failed", slog.Any("error", err))
		return docs, err
	}
	for i, doc := range docs {
		logger.Debug("document", slog.Int("index", i), slog.String("value", doc.String()))
	}
	return docs, nil
}

// traceTokens logs the token stream of input. It reports false when the
// logger would discard debug records.
func traceTokens(logger *slog.Logger, input string) bool {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelDebug) {
		return false
	}
	tokens, err := Tokenize(input)
	if err != nil {
		logger.Debug("tokenize failed", slog.Any("error", err))
		return true
	}
	for i, t := range tokens {
		logger.Debug("token", slog.Int("index", i), slog.String("kind", string(t.Kind)), slog.String("text", t.Text))
	}
	return true
}
