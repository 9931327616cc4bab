package mock

import (
	"context"

	"github.com/fwojciec/zengin"
)

var _ zengin.Source = (*Source)(nil)

// Source is a mock implementation of zengin.Source.
type Source struct {
	BanksFn    func(ctx context.Context) (map[string]*zengin.Bank, error)
	BranchesFn func(ctx context.Context, bankCode string) (map[string]*zengin.Branch, error)
}

func (s *Source) Banks(ctx context.Context) (map[string]*zengin.Bank, error) {
	return s.BanksFn(ctx)
}

func (s *Source) Branches(ctx context.Context, bankCode string) (map[string]*zengin.Branch, error) {
	return s.BranchesFn(ctx, bankCode)
}
