package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check file...",
		Short: "Check that files parse",
		Long: `Parse every document of each file and report ok or the parse error.
The command fails if any file does not parse.

Examples:
  yamldebug check config.yaml
  yamldebug check --max-depth 32 manifests/*.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range args {
				input, err := a.readInput(cmd, name)
				if err == nil {
					_, err = a.loader.LoadAll(input)
				}
				if err != nil {
					failed++
					fmt.Fprintf(out, "%s: %v\n", name, err)
					continue
				}
				fmt.Fprintf(out, "%s: ok\n", name)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
			}
			return nil
		},
	}
}
