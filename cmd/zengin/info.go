package main

import "fmt"

// Info summarizes the loaded dataset.
type Info struct {
	Banks    int    `json:"banks" yaml:"banks"`
	Branches int    `json:"branches" yaml:"branches"`
	Digest   string `json:"digest" yaml:"digest"`
}

// Run executes the info command.
func (c *InfoCmd) Run(deps *Dependencies) error {
	info := Info{
		Banks:    deps.Zengin.Len(),
		Branches: deps.Zengin.BranchCount(),
		Digest:   fmt.Sprintf("%016x", deps.Zengin.Digest()),
	}

	switch deps.Format {
	case formatJSON:
		return writeJSON(deps.Stdout, info)
	case formatYAML:
		return writeYAML(deps.Stdout, info)
	}

	fmt.Fprintf(deps.Stdout, "banks:    %d\n", info.Banks)
	fmt.Fprintf(deps.Stdout, "branches: %d\n", info.Branches)
	fmt.Fprintf(deps.Stdout, "digest:   %s\n", info.Digest)
	return nil
}
