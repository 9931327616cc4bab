package zengin

import (
	"maps"

	"github.com/cespare/xxhash/v2"
)

// Zengin is a loaded, read-only collection of banks and their branches.
// It is safe for concurrent use by multiple goroutines.
type Zengin struct {
	banks    map[string]*Bank
	branches int
	digest   uint64
}

// NewZengin builds a collection from bank records and, keyed by bank code,
// their branch records. Banks without an entry in branches get an empty
// branch set and nil records are skipped. The records are copied; later
// changes to the arguments do not affect the collection.
func NewZengin(banks map[string]*Bank, branches map[string]map[string]*Branch) *Zengin {
	z := &Zengin{banks: make(map[string]*Bank, len(banks))}

	for code, rec := range banks {
		if rec == nil {
			continue
		}
		bank := &Bank{
			Code:     rec.Code,
			Name:     rec.Name,
			Kana:     rec.Kana,
			Hira:     rec.Hira,
			Roma:     rec.Roma,
			branches: make(map[string]*Branch, len(branches[code])),
		}
		for branchCode, br := range branches[code] {
			if br == nil {
				continue
			}
			cp := *br
			bank.branches[branchCode] = &cp
		}
		z.banks[code] = bank
		z.branches += len(bank.branches)
	}

	z.digest = z.computeDigest()
	return z
}

// GetBank returns the bank with the given code.
// The lookup is exact; the second result reports whether it was found.
func (z *Zengin) GetBank(code string) (*Bank, bool) {
	bank, ok := z.banks[code]
	return bank, ok
}

// FindBanksBy returns the banks whose field matches pattern, sorted by code.
// The pattern is a regular expression searched anywhere in the field.
// Returns EPATTERN if pattern does not compile and EINVALID for an unknown field.
func (z *Zengin) FindBanksBy(field Field, pattern string) ([]*Bank, error) {
	return findBy(z.banks, field, pattern, (*Bank).Field)
}

// FindBanksByName searches bank names.
func (z *Zengin) FindBanksByName(pattern string) ([]*Bank, error) {
	return z.FindBanksBy(FieldName, pattern)
}

// FindBanksByKana searches katakana bank names.
func (z *Zengin) FindBanksByKana(pattern string) ([]*Bank, error) {
	return z.FindBanksBy(FieldKana, pattern)
}

// FindBanksByHira searches hiragana bank names.
func (z *Zengin) FindBanksByHira(pattern string) ([]*Bank, error) {
	return z.FindBanksBy(FieldHira, pattern)
}

// FindBanksByRoma searches romanized bank names.
func (z *Zengin) FindBanksByRoma(pattern string) ([]*Bank, error) {
	return z.FindBanksBy(FieldRoma, pattern)
}

// AllBanks returns a copy of the code to bank mapping.
func (z *Zengin) AllBanks() map[string]*Bank {
	return maps.Clone(z.banks)
}

// Banks returns all banks sorted by code.
func (z *Zengin) Banks() []*Bank {
	return sortedValues(z.banks)
}

// Len returns the number of banks.
func (z *Zengin) Len() int {
	return len(z.banks)
}

// BranchCount returns the number of branches across all banks.
func (z *Zengin) BranchCount() int {
	return z.branches
}

// Digest returns a fingerprint of the dataset. Collections holding the same
// records have the same digest regardless of where they were loaded from.
func (z *Zengin) Digest() uint64 {
	return z.digest
}

func (z *Zengin) computeDigest() uint64 {
	h := xxhash.New()
	for _, bank := range z.Banks() {
		writeRecord(h, 'B', bank.Code, bank.Name, bank.Kana, bank.Hira, bank.Roma)
		for _, br := range bank.Branches() {
			writeRecord(h, 'b', br.Code, br.Name, br.Kana, br.Hira, br.Roma)
		}
	}
	return h.Sum64()
}

// writeRecord writes a tagged, NUL-separated record so that field boundaries
// contribute to the hash.
func writeRecord(h *xxhash.Digest, tag byte, fields ...string) {
	h.Write([]byte{tag})
	for _, f := range fields {
		h.WriteString(f)
		h.Write([]byte{0})
	}
}
