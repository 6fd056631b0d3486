package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/alexdrone/swatch-yaml/internal/logging"
	"github.com/alexdrone/swatch-yaml/pkg/yaml"
)

// Version is the semantic version (set by build flags)
var Version = "0.1.0"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel  string
	logFormat string
	maxDepth  int
	maxSize   int64
	metrics   bool
}

// app holds what PersistentPreRunE builds from the global flags.
type app struct {
	flags    globalFlags
	logger   *slog.Logger
	loader   *yaml.Loader
	registry *prometheus.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "yamldebug",
		Short: "Inspect YAML tokenization and parsing",
		Long: `yamldebug shows how YAML text is split into tokens, including the
synthetic Indent and Dedent tokens, and the value tree each document
parses to. Parse errors are printed with the input that follows the
failure point.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.flags.metrics {
				return nil
			}
			return a.writeMetrics(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&a.flags.logFormat, "log-format", "text", "log format: text, json")
	flags.IntVar(&a.flags.maxDepth, "max-depth", yaml.DefaultMaxDepth, "maximum nesting depth, negative to disable")
	flags.Int64Var(&a.flags.maxSize, "max-size", yaml.DefaultMaxInputSize, "maximum input size in bytes, negative to disable")
	flags.BoolVar(&a.flags.metrics, "metrics", false, "print load metrics to stderr when done")

	rootCmd.AddCommand(
		newTokensCmd(a),
		newParseCmd(a),
		newCheckCmd(a),
	)
	return rootCmd
}

func (a *app) setup(stderr io.Writer) error {
	logger, err := logging.New(logging.Config{
		Level:  a.flags.logLevel,
		Format: a.flags.logFormat,
		Writer: stderr,
	})
	if err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	loader, err := yaml.NewLoader(yaml.Options{
		MaxInputSize: a.flags.maxSize,
		MaxDepth:     a.flags.maxDepth,
		Logger:       logger,
		Metrics:      yaml.NewMetrics(a.registry, "yamldebug"),
	})
	if err != nil {
		return err
	}

	a.logger = logger
	a.loader = loader
	return nil
}

// writeMetrics prints the counters and histogram totals of the loader.
func (a *app) writeMetrics(w io.Writer) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			for _, l := range m.GetLabel() {
				name += fmt.Sprintf("{%s=%q}", l.GetName(), l.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s %g\n", name, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				fmt.Fprintf(w, "%s count=%d sum=%g\n", name, h.GetSampleCount(), h.GetSampleSum())
			}
		}
	}
	return nil
}

// readInput reads the named file, or stdin for "" and "-".
func (a *app) readInput(cmd *cobra.Command, name string) (string, error) {
	var r io.Reader
	if name == "" || name == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(name)
		if err != nil {
			return "", fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	// Read one byte past the limit so the loader reports the overflow.
	if a.flags.maxSize > 0 {
		r = io.LimitReader(r, a.flags.maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

func inputName(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
