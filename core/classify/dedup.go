package classify

import "strings"

// dedupByKey removes duplicates while preserving the order of first
// occurrence. The key function decides equality; the first occurrence's
// original value is kept.
func dedupByKey(values []string, key func(string) string) []string {
	if len(values) == 0 {
		return []string{}
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, v)
	}
	return result
}

// dedupFold lower-cases values and deduplicates them case-insensitively.
// Used for emails, which are stored lower-cased.
func dedupFold(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return dedupByKey(lowered, func(s string) string { return s })
}

// dedup deduplicates values by exact value, preserving original formatting.
// Used for phones, urls and addresses.
func dedup(values []string) []string {
	return dedupByKey(values, func(s string) string { return s })
}
