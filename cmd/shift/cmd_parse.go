package main

import (
	"fmt"
	"io"
	"os"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/spf13/cobra"

	"github.com/zostay/shift"
	"github.com/zostay/shift/grammar"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse [file...]",
		Short: "Parse key/value dictionaries from files or standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return parseSource(cmd.OutOrStdout(), "<stdin>", cmd.InOrStdin(), outputFormat)
			}

			for _, filename := range args {
				f, err := os.Open(filename)
				if err != nil {
					return fmt.Errorf("open %s: %w", filename, err)
				}

				err = parseSource(cmd.OutOrStdout(), filename, f, outputFormat)
				f.Close()
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, tree)")

	return cmd
}

func parseSource(w io.Writer, name string, r io.Reader, outputFormat string) error {
	if err := checkFormat(outputFormat); err != nil {
		return err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}

	dict, err := parseDictionary(string(data))
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	tracer().Infof("%s: %d entries", name, dict.Size())

	if outputFormat == "json" {
		return writeJSON(w, dict)
	}

	renderTree(name, dict)
	return nil
}

func parseDictionary(src string) (*linkedhashmap.Map, error) {
	v, err := shift.ParseAll(grammar.OrderedDictionary, src)
	if err != nil {
		return nil, err
	}
	return v.(*linkedhashmap.Map), nil
}
