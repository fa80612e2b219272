package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse dictionaries typed in interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			repl, err := readline.New("shift> ")
			if err != nil {
				return fmt.Errorf("start repl: %w", err)
			}
			defer repl.Close()

			pterm.Info.Println("Enter pairs like x = 1; y = 2.5;")
			tracer().Infof("Quit with <ctrl>D")

			for {
				line, err := repl.Readline()
				if err != nil { // io.EOF
					break
				}

				if line = strings.TrimSpace(line); line == "" {
					continue
				}

				if err := evalLine(cmd.OutOrStdout(), line, format); err != nil {
					pterm.Error.Println(err.Error())
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "tree", "output format (json, tree)")

	return cmd
}

// evalLine parses one line and prints the dictionary in the given format.
func evalLine(w io.Writer, line, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}

	dict, err := parseDictionary(line)
	if err != nil {
		return err
	}

	if format == "json" {
		return writeJSON(w, dict)
	}

	renderTree("input", dict)
	return nil
}
