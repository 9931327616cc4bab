package zengin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"
)

// recordFields lists the keys every bank and branch entry carries. Keys are
// matched exactly; encoding/json alone would also accept "Name" or "NAME".
var recordFields = [...]string{"code", "name", "kana", "hira", "roma"}

// record holds the required fields of one entry in recordFields order.
type record [len(recordFields)]string

func (r *record) code() string { return r[0] }

// ParseBanks decodes a bank index: a JSON object keyed by bank code whose
// values carry code, name, kana, hira and roma strings.
// Returns EPARSE if the document or any record is malformed.
func ParseBanks(r io.Reader) (map[string]*Bank, error) {
	records, err := parseIndex(r, "bank", 4)
	if err != nil {
		return nil, err
	}

	banks := make(map[string]*Bank, len(records))
	for code, rec := range records {
		banks[code] = &Bank{Code: rec[0], Name: rec[1], Kana: rec[2], Hira: rec[3], Roma: rec[4]}
	}
	return banks, nil
}

// ParseBranches decodes a branch index: a JSON object keyed by branch code
// with the same record shape as the bank index.
// Returns EPARSE if the document or any record is malformed.
func ParseBranches(r io.Reader) (map[string]*Branch, error) {
	records, err := parseIndex(r, "branch", 3)
	if err != nil {
		return nil, err
	}

	branches := make(map[string]*Branch, len(records))
	for code, rec := range records {
		branches[code] = &Branch{Code: rec[0], Name: rec[1], Kana: rec[2], Hira: rec[3], Roma: rec[4]}
	}
	return branches, nil
}

func parseIndex(r io.Reader, kind string, digits int) (map[string]record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, WrapError(EIO, err, "read %s index", kind)
	}
	if !utf8.Valid(data) {
		return nil, Errorf(EPARSE, "malformed %s index: invalid UTF-8", kind)
	}

	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, WrapError(EPARSE, err, "malformed %s index", kind)
	}
	if raw == nil {
		return nil, Errorf(EPARSE, "malformed %s index: expected an object", kind)
	}

	records := make(map[string]record, len(raw))
	for key, fields := range raw {
		rec, err := decodeRecord(fields, key, digits)
		if err != nil {
			return nil, WrapError(EPARSE, err, "invalid %s %q", kind, key)
		}
		records[key] = rec
	}
	return records, nil
}

func decodeRecord(fields map[string]json.RawMessage, key string, digits int) (record, error) {
	var rec record
	for i, name := range recordFields {
		value, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return rec, fmt.Errorf("missing %s", name)
		}
		if err := json.Unmarshal(value, &rec[i]); err != nil {
			return rec, fmt.Errorf("%s must be a string: %w", name, err)
		}
	}

	if rec.code() != key {
		return rec, fmt.Errorf("code %q does not match key", rec.code())
	}
	if !isDigits(key, digits) {
		return rec, fmt.Errorf("code must be %d digits", digits)
	}
	return rec, nil
}

// isDigits reports whether s consists of exactly n ASCII digits.
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
