package main

import (
	"fmt"

	"github.com/fwojciec/zengin"
)

// Run executes the banks command.
func (c *BanksCmd) Run(deps *Dependencies) error {
	banks, err := deps.Zengin.FindBanksBy(zengin.Field(c.Field), c.Pattern)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zengin.ErrorMessage(err))
		return err
	}

	if len(banks) == 0 && deps.Format == formatText {
		fmt.Fprintln(deps.Stdout, "No banks found.")
		return nil
	}
	return writeBanks(deps.Stdout, deps.Format, banks)
}

// Run executes the branches command.
func (c *BranchesCmd) Run(deps *Dependencies) error {
	bank, ok := deps.Zengin.GetBank(c.Bank)
	if !ok {
		return notFound(deps, "bank %s not found", c.Bank)
	}

	branches, err := bank.FindBranchesBy(zengin.Field(c.Field), c.Pattern)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", zengin.ErrorMessage(err))
		return err
	}

	if len(branches) == 0 && deps.Format == formatText {
		fmt.Fprintf(deps.Stdout, "No branches found in bank %s.\n", bank.Code)
		return nil
	}
	return writeBranches(deps.Stdout, deps.Format, branches)
}
