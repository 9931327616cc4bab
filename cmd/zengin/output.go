package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/zengin"
	"github.com/liushuochen/gotable"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var recordColumns = []string{"code", "name", "kana", "hira", "roma"}

func writeBanks(w io.Writer, format string, banks []*zengin.Bank) error {
	if banks == nil {
		banks = []*zengin.Bank{}
	}

	switch format {
	case formatJSON:
		return writeJSON(w, banks)
	case formatYAML:
		return writeYAML(w, banks)
	}

	rows := make([][]string, 0, len(banks))
	for _, b := range banks {
		rows = append(rows, []string{b.Code, b.Name, b.Kana, b.Hira, b.Roma})
	}
	return writeTable(w, rows)
}

func writeBranches(w io.Writer, format string, branches []*zengin.Branch) error {
	if branches == nil {
		branches = []*zengin.Branch{}
	}

	switch format {
	case formatJSON:
		return writeJSON(w, branches)
	case formatYAML:
		return writeYAML(w, branches)
	}

	rows := make([][]string, 0, len(branches))
	for _, b := range branches {
		rows = append(rows, []string{b.Code, b.Name, b.Kana, b.Hira, b.Roma})
	}
	return writeTable(w, rows)
}

func writeTable(w io.Writer, rows [][]string) error {
	tb, err := gotable.Create(recordColumns...)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	for _, row := range rows {
		if err := tb.AddRow(row); err != nil {
			return fmt.Errorf("failed to add table row: %w", err)
		}
	}
	_, err = fmt.Fprintln(w, tb)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
