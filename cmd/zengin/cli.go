package main

import (
	"context"
	"io"

	"github.com/fwojciec/zengin"
)

// Dependencies holds the loaded dataset and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Zengin *zengin.Zengin
	Format string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DataDir              string `name:"data-dir" env:"ZENGIN_DATA_DIR" type:"existingdir" xor:"source" help:"Load banks.json and branches/ from this directory instead of the embedded dataset"`
	DB                   string `name:"db" env:"ZENGIN_DB" type:"existingfile" xor:"source" help:"Load the dataset from this SQLite database"`
	AllowMissingBranches bool   `help:"Treat a missing branch index as an empty branch set"`
	Format               string `short:"o" enum:"text,json,yaml" default:"text" help:"Output format (text, json, yaml)"`
	Verbose              bool   `short:"v" help:"Log dataset loading to stderr"`

	Bank     BankCmd     `cmd:"" help:"Show a bank by code"`
	Branch   BranchCmd   `cmd:"" help:"Show a branch by bank and branch code"`
	Banks    BanksCmd    `cmd:"" help:"Search banks by name"`
	Branches BranchesCmd `cmd:"" help:"Search a bank's branches by name"`
	Info     InfoCmd     `cmd:"" help:"Show dataset size and digest"`
}

// BankCmd is the "bank" subcommand.
type BankCmd struct {
	Code string `arg:"" help:"4-digit bank code"`
}

// BranchCmd is the "branch" subcommand.
type BranchCmd struct {
	Bank string `arg:"" help:"4-digit bank code"`
	Code string `arg:"" help:"3-digit branch code"`
}

// BanksCmd is the "banks" subcommand.
type BanksCmd struct {
	Pattern string `arg:"" optional:"" help:"Regular expression searched in the selected field (all banks if empty)"`
	Field   string `short:"f" enum:"name,kana,hira,roma" default:"name" help:"Field to search (name, kana, hira, roma)"`
}

// BranchesCmd is the "branches" subcommand.
type BranchesCmd struct {
	Bank    string `arg:"" help:"4-digit bank code"`
	Pattern string `arg:"" optional:"" help:"Regular expression searched in the selected field (all branches if empty)"`
	Field   string `short:"f" enum:"name,kana,hira,roma" default:"name" help:"Field to search (name, kana, hira, roma)"`
}

// InfoCmd is the "info" subcommand.
type InfoCmd struct{}
