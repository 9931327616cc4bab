package zengin

import (
	"context"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Source provides the bank index and the per-bank branch indexes.
type Source interface {
	// Banks returns the bank index keyed by bank code.
	Banks(ctx context.Context) (map[string]*Bank, error)

	// Branches returns the branch index of a bank keyed by branch code.
	// Returns ENOTFOUND if the source has no branch index for the bank.
	Branches(ctx context.Context, bankCode string) (map[string]*Branch, error)
}

// DefaultConcurrency is the number of branch indexes read in parallel when
// Loader.Concurrency is not set.
const DefaultConcurrency = 8

// Loader builds a Zengin collection from a Source.
type Loader struct {
	Source Source

	// Concurrency bounds parallel branch index reads.
	Concurrency int

	// AllowMissingBranches loads a bank without a branch index with an empty
	// branch set instead of failing with ENOTFOUND.
	AllowMissingBranches bool
}

// Load reads the bank index and every bank's branch index. Any failure aborts
// the load; a partially loaded collection is never returned.
func (l *Loader) Load(ctx context.Context) (*Zengin, error) {
	if l.Source == nil {
		return nil, Errorf(EINVALID, "loader source required")
	}

	banks, err := l.Source.Banks(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkBanks(banks); err != nil {
		return nil, err
	}

	codes := slices.Sorted(maps.Keys(banks))
	results := make([]map[string]*Branch, len(codes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency())
	for i, code := range codes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			branches, err := l.Source.Branches(ctx, code)
			if err != nil {
				if ErrorCode(err) == ENOTFOUND && l.AllowMissingBranches {
					return nil
				}
				return err
			}
			if err := checkBranches(code, branches); err != nil {
				return err
			}
			results[i] = branches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	branches := make(map[string]map[string]*Branch, len(codes))
	for i, code := range codes {
		branches[code] = results[i]
	}
	return NewZengin(banks, branches), nil
}

// checkBanks rejects bank records a Source returned nil, keyed under another
// code or with a malformed code.
func checkBanks(banks map[string]*Bank) error {
	for key, bank := range banks {
		if bank == nil {
			return Errorf(EPARSE, "invalid bank %q: nil record", key)
		}
		if bank.Code != key {
			return Errorf(EPARSE, "invalid bank %q: code %q does not match key", key, bank.Code)
		}
		if err := bank.Validate(); err != nil {
			return WrapError(EPARSE, err, "invalid bank %q", key)
		}
	}
	return nil
}

func checkBranches(bankCode string, branches map[string]*Branch) error {
	for key, branch := range branches {
		if branch == nil {
			return Errorf(EPARSE, "invalid branch %q of bank %q: nil record", key, bankCode)
		}
		if branch.Code != key {
			return Errorf(EPARSE, "invalid branch %q of bank %q: code %q does not match key", key, bankCode, branch.Code)
		}
		if err := branch.Validate(); err != nil {
			return WrapError(EPARSE, err, "invalid branch %q of bank %q", key, bankCode)
		}
	}
	return nil
}

func (l *Loader) concurrency() int {
	if l.Concurrency > 0 {
		return l.Concurrency
	}
	return DefaultConcurrency
}

// Load builds a collection from src with default loader settings.
func Load(ctx context.Context, src Source) (*Zengin, error) {
	return (&Loader{Source: src}).Load(ctx)
}
