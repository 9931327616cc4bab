package sqlite

import (
	"context"

	"github.com/fwojciec/zengin"
)

// Compile-time interface verification.
var _ zengin.Source = (*Source)(nil)

// Source implements zengin.Source by reading the banks and branches tables.
// A bank without branch rows has an empty branch set; this source never
// reports a missing branch index.
type Source struct {
	db *DB
}

// NewSource creates a new Source.
func NewSource(db *DB) *Source {
	return &Source{db: db}
}

// Banks reads every row of the banks table.
func (s *Source) Banks(ctx context.Context) (map[string]*zengin.Bank, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT code, name, kana, hira, roma FROM banks`)
	if err != nil {
		return nil, zengin.WrapError(zengin.EIO, err, "failed to query banks")
	}
	defer rows.Close()

	banks := make(map[string]*zengin.Bank)
	for rows.Next() {
		var bank zengin.Bank
		if err := rows.Scan(&bank.Code, &bank.Name, &bank.Kana, &bank.Hira, &bank.Roma); err != nil {
			return nil, zengin.WrapError(zengin.EPARSE, err, "failed to scan bank")
		}
		if err := bank.Validate(); err != nil {
			return nil, zengin.WrapError(zengin.EPARSE, err, "invalid bank row")
		}
		banks[bank.Code] = &bank
	}
	if err := rows.Err(); err != nil {
		return nil, zengin.WrapError(zengin.EIO, err, "failed to read banks")
	}

	return banks, nil
}

// Branches reads the branch rows of one bank.
func (s *Source) Branches(ctx context.Context, bankCode string) (map[string]*zengin.Branch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, name, kana, hira, roma
		FROM branches
		WHERE bank_code = ?
	`, bankCode)
	if err != nil {
		return nil, zengin.WrapError(zengin.EIO, err, "failed to query branches of bank %s", bankCode)
	}
	defer rows.Close()

	branches := make(map[string]*zengin.Branch)
	for rows.Next() {
		var branch zengin.Branch
		if err := rows.Scan(&branch.Code, &branch.Name, &branch.Kana, &branch.Hira, &branch.Roma); err != nil {
			return nil, zengin.WrapError(zengin.EPARSE, err, "failed to scan branch of bank %s", bankCode)
		}
		if err := branch.Validate(); err != nil {
			return nil, zengin.WrapError(zengin.EPARSE, err, "invalid branch row of bank %s", bankCode)
		}
		branches[branch.Code] = &branch
	}
	if err := rows.Err(); err != nil {
		return nil, zengin.WrapError(zengin.EIO, err, "failed to read branches of bank %s", bankCode)
	}

	return branches, nil
}
