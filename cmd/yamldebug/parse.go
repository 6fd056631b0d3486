package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alexdrone/swatch-yaml/pkg/value"
	"github.com/alexdrone/swatch-yaml/pkg/yaml"
)

var parseFormats = []string{"value", "yaml", "json"}

func newParseCmd(a *app) *cobra.Command {
	var (
		all    bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the parsed value tree",
		Long: `Parse the input and print each document.

Formats:
  value  the value tree, e.g. Map([String(a): Int(1)])
  yaml   the document re-encoded in block style
  json   the document as JSON (string keys only)

Examples:
  yamldebug parse config.yaml
  yamldebug parse --all --format yaml stream.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(format) {
				return fmt.Errorf("unknown format %q, want one of %v", format, parseFormats)
			}
			input, err := a.readInput(cmd, inputName(args))
			if err != nil {
				return err
			}

			var docs []value.Value
			if all {
				docs, err = a.loader.LoadAll(input)
			} else {
				var doc value.Value
				doc, err = a.loader.Load(input)
				docs = []value.Value{doc}
			}
			if err != nil {
				return err
			}
			if a.logger.Enabled(cmd.Context(), slog.LevelDebug) {
				if _, err := yaml.DebugAll(a.logger, input); err != nil {
					a.logger.Debug("trace failed", slog.Any("error", err))
				}
			}

			out := cmd.OutOrStdout()
			for i, doc := range docs {
				if all && format == "yaml" {
					fmt.Fprintln(out, "---")
				}
				if err := writeDocument(out, doc, format); err != nil {
					return fmt.Errorf("document %d: %w", i, err)
				}
			}
			a.logger.Debug("parsed", slog.Int("documents", len(docs)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "parse every document of a stream")
	cmd.Flags().StringVarP(&format, "format", "f", "value", "output format: value, yaml, json")
	return cmd
}

func validFormat(format string) bool {
	for _, f := range parseFormats {
		if f == format {
			return true
		}
	}
	return false
}

func writeDocument(w io.Writer, doc value.Value, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(yaml.ToInterface(doc), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintln(w, doc.String())
	return err
}
