package zengin

import (
	"maps"
	"slices"
)

// Bank represents a financial institution identified by a 4-digit Zengin code.
type Bank struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	Kana string `json:"kana" yaml:"kana"`
	Hira string `json:"hira" yaml:"hira"`
	Roma string `json:"roma" yaml:"roma"`

	// Populated by the loader, never part of the bank record itself.
	branches map[string]*Branch
}

// Validate returns an error if the bank code is not exactly 4 digits.
func (b *Bank) Validate() error {
	if !isDigits(b.Code, 4) {
		return Errorf(EINVALID, "bank code %q must be 4 digits", b.Code)
	}
	return nil
}

// Field returns the value of the given name field.
// Returns an empty string for an unknown field.
func (b *Bank) Field(f Field) string {
	return f.pick(b.Name, b.Kana, b.Hira, b.Roma)
}

// GetBranch returns the branch with the given code.
// The lookup is exact; the second result reports whether it was found.
func (b *Bank) GetBranch(code string) (*Branch, bool) {
	branch, ok := b.branches[code]
	return branch, ok
}

// FindBranchesBy returns the branches whose field matches pattern, sorted by
// code. The pattern is a regular expression searched anywhere in the field.
// Returns EPATTERN if pattern does not compile and EINVALID for an unknown field.
func (b *Bank) FindBranchesBy(field Field, pattern string) ([]*Branch, error) {
	return findBy(b.branches, field, pattern, (*Branch).Field)
}

// FindBranchesByName searches branch names.
func (b *Bank) FindBranchesByName(pattern string) ([]*Branch, error) {
	return b.FindBranchesBy(FieldName, pattern)
}

// FindBranchesByKana searches katakana branch names.
func (b *Bank) FindBranchesByKana(pattern string) ([]*Branch, error) {
	return b.FindBranchesBy(FieldKana, pattern)
}

// FindBranchesByHira searches hiragana branch names.
func (b *Bank) FindBranchesByHira(pattern string) ([]*Branch, error) {
	return b.FindBranchesBy(FieldHira, pattern)
}

// FindBranchesByRoma searches romanized branch names.
func (b *Bank) FindBranchesByRoma(pattern string) ([]*Branch, error) {
	return b.FindBranchesBy(FieldRoma, pattern)
}

// AllBranches returns a copy of the bank's code to branch mapping.
func (b *Bank) AllBranches() map[string]*Branch {
	return maps.Clone(b.branches)
}

// Branches returns the bank's branches sorted by code.
func (b *Bank) Branches() []*Branch {
	return sortedValues(b.branches)
}

// Branch represents a bank branch identified by a 3-digit code that is
// unique within its bank.
type Branch struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
	Kana string `json:"kana" yaml:"kana"`
	Hira string `json:"hira" yaml:"hira"`
	Roma string `json:"roma" yaml:"roma"`
}

// Validate returns an error if the branch code is not exactly 3 digits.
func (b *Branch) Validate() error {
	if !isDigits(b.Code, 3) {
		return Errorf(EINVALID, "branch code %q must be 3 digits", b.Code)
	}
	return nil
}

// Field returns the value of the given name field.
// Returns an empty string for an unknown field.
func (b *Branch) Field(f Field) string {
	return f.pick(b.Name, b.Kana, b.Hira, b.Roma)
}

// Field selects one of the name renderings of a bank or branch.
type Field string

// Field constants used by the FindBy searches.
const (
	FieldName Field = "name"
	FieldKana Field = "kana"
	FieldHira Field = "hira"
	FieldRoma Field = "roma"
)

// Fields lists every searchable field.
var Fields = []Field{FieldName, FieldKana, FieldHira, FieldRoma}

// Validate returns EINVALID if f is not a known field.
func (f Field) Validate() error {
	if !slices.Contains(Fields, f) {
		return Errorf(EINVALID, "unknown field %q", string(f))
	}
	return nil
}

func (f Field) pick(name, kana, hira, roma string) string {
	switch f {
	case FieldName:
		return name
	case FieldKana:
		return kana
	case FieldHira:
		return hira
	case FieldRoma:
		return roma
	}
	return ""
}

// sortedValues returns the values of m ordered by key.
func sortedValues[T any](m map[string]*T) []*T {
	values := make([]*T, 0, len(m))
	for _, key := range slices.Sorted(maps.Keys(m)) {
		values = append(values, m[key])
	}
	return values
}
