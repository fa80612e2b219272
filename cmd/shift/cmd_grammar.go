package main

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zostay/shift/grammar"
)

func newGrammarCmd() *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF of the dictionary language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), grammar.EBNF)

			if !verify {
				return nil
			}

			g, err := grammar.Grammar()
			if err != nil {
				return fmt.Errorf("verify grammar: %w", err)
			}

			names := make([]string, 0, len(g))
			for name := range g {
				names = append(names, name)
			}
			sort.Strings(names)

			tracer().Debugf("productions: %v", names)
			pterm.Info.Println(fmt.Sprintf("grammar verified: %d productions, start %s", len(names), grammar.Start))
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "check the grammar for consistency")

	return cmd
}
