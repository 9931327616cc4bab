package main

import (
	"fmt"

	"github.com/fwojciec/zengin"
)

// Run executes the bank command.
func (c *BankCmd) Run(deps *Dependencies) error {
	bank, ok := deps.Zengin.GetBank(c.Code)
	if !ok {
		return notFound(deps, "bank %s not found", c.Code)
	}
	return writeBanks(deps.Stdout, deps.Format, []*zengin.Bank{bank})
}

// Run executes the branch command.
func (c *BranchCmd) Run(deps *Dependencies) error {
	bank, ok := deps.Zengin.GetBank(c.Bank)
	if !ok {
		return notFound(deps, "bank %s not found", c.Bank)
	}
	branch, ok := bank.GetBranch(c.Code)
	if !ok {
		return notFound(deps, "branch %s not found in bank %s", c.Code, c.Bank)
	}
	return writeBranches(deps.Stdout, deps.Format, []*zengin.Branch{branch})
}

// notFound reports a failed exact lookup on stderr and returns it as ENOTFOUND.
func notFound(deps *Dependencies, format string, args ...any) error {
	err := zengin.Errorf(zengin.ENOTFOUND, format, args...)
	fmt.Fprintf(deps.Stderr, "error: %s\n", zengin.ErrorMessage(err))
	return err
}
