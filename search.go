package zengin

import (
	"maps"
	"regexp"
	"slices"
)

// findBy returns the items whose field matches pattern, ordered by code.
// Patterns are compiled on every call; the dataset is small and searches
// are not on a hot path.
func findBy[T any](items map[string]*T, field Field, pattern string, value func(*T, Field) string) ([]*T, error) {
	if err := field.Validate(); err != nil {
		return nil, err
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, WrapError(EPATTERN, err, "invalid pattern %q", pattern)
	}

	var matched []*T
	for _, code := range slices.Sorted(maps.Keys(items)) {
		item := items[code]
		if re.MatchString(value(item, field)) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}
