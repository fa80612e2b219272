package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/pterm/pterm"
)

// checkFormat rejects output formats other than json and tree.
func checkFormat(format string) error {
	switch format {
	case "json", "tree":
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON writes a dictionary as a JSON object, keeping the order of the
// source.
func writeJSON(w io.Writer, dict *linkedhashmap.Map) error {
	var buf bytes.Buffer
	buf.WriteByte('{')

	it := dict.Iterator()
	first := true
	for it.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		k, err := json.Marshal(it.Key())
		if err != nil {
			return err
		}
		v, err := json.Marshal(it.Value())
		if err != nil {
			return err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteString("}\n")
	_, err := w.Write(buf.Bytes())
	return err
}

// leveledList lays out a dictionary under a label for pterm's tree printer.
func leveledList(label string, dict *linkedhashmap.Map) pterm.LeveledList {
	ll := pterm.LeveledList{{Level: 0, Text: label}}

	it := dict.Iterator()
	for it.Next() {
		ll = append(ll, pterm.LeveledListItem{
			Level: 1,
			Text:  fmt.Sprintf("%v = %v", it.Key(), it.Value()),
		})
	}

	return ll
}

func renderTree(label string, dict *linkedhashmap.Map) {
	root := pterm.NewTreeFromLeveledList(leveledList(label, dict))
	pterm.DefaultTree.WithRoot(root).Render()
}
