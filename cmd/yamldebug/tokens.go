package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream",
		Long: `Print one token per line as its kind and quoted text.

Examples:
  yamldebug tokens config.yaml
  echo "a: [1, 2]" | yamldebug tokens`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := a.readInput(cmd, inputName(args))
			if err != nil {
				return err
			}
			tokens, err := a.loader.Tokenize(input)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range tokens {
				fmt.Fprintf(out, "%-12s %s\n", t.Kind, strconv.Quote(t.Text))
			}
			return nil
		},
	}
}
