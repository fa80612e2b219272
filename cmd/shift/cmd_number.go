package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zostay/shift"
	"github.com/zostay/shift/grammar"
)

func newNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "number <text>",
		Short: "Parse a single integer or decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := shift.ParseAll(grammar.Number, args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}

			pterm.Info.Println(fmt.Sprintf("%T %v", v, v))
			return nil
		},
	}
}
