package ids

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrNoMatch indicates no ID starts with the given prefix.
	ErrNoMatch = errors.New("no id matches prefix")
	// ErrAmbiguousPrefix indicates more than one ID starts with the prefix.
	ErrAmbiguousPrefix = errors.New("id prefix is ambiguous")
)

// UniquePrefixLengths returns the shortest prefix length that tells each ID
// apart from the others, keyed by the lowercased ID.
func UniquePrefixLengths(ids []string) map[string]int {
	sorted := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			sorted = append(sorted, strings.ToLower(id))
		}
	}
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	// In sorted order the longest shared prefix is always with a neighbour.
	lengths := make(map[string]int, len(sorted))
	for i, id := range sorted {
		shared := 0
		if i > 0 {
			shared = max(shared, commonPrefix(id, sorted[i-1]))
		}
		if i < len(sorted)-1 {
			shared = max(shared, commonPrefix(id, sorted[i+1]))
		}
		lengths[id] = min(shared+1, len(id))
	}
	return lengths
}

// MatchPrefix returns the single ID in ids that starts with prefix,
// ignoring case. An exact match wins over longer IDs sharing the prefix.
func MatchPrefix(ids []string, prefix string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", ErrNoMatch
	}

	var matches []string
	for _, id := range ids {
		lower := strings.ToLower(id)
		if lower == prefix {
			return id, nil
		}
		if strings.HasPrefix(lower, prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", ErrNoMatch
	case 1:
		return matches[0], nil
	default:
		return "", ErrAmbiguousPrefix
	}
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
