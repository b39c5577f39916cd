// Package labels implements the access-label codec for administrator
// metadata. Permission names are namespaced with the "access." prefix
// before storage so that they can coexist with other free-form metadata
// entries on the same account.
package labels

import (
	"sort"
	"strings"
)

// AccessPrefix is the namespace prepended to permission names when they
// are stored in an account's metadata set.
const AccessPrefix = "access."

// ToLabels maps each permission name to its namespaced storage form and
// returns the sorted, duplicate-free label set. An empty or nil input
// yields an empty slice.
func ToLabels(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, AccessPrefix+name)
	}

	sort.Strings(out)
	return dedupeSorted(out)
}

// StripAccess returns all metadata entries that are not access labels,
// preserving their original relative order.
func StripAccess(meta []string) []string {
	out := make([]string, 0, len(meta))
	for _, entry := range meta {
		if !strings.HasPrefix(entry, AccessPrefix) {
			out = append(out, entry)
		}
	}

	return out
}

// ReplaceAccess replaces all access labels in meta with the labels
// derived from names. Non-access entries keep their original order;
// the new labels are appended normalized (sorted, deduplicated).
func ReplaceAccess(meta []string, names []string) []string {
	return append(StripAccess(meta), ToLabels(names)...)
}

// dedupeSorted removes adjacent duplicates from an already sorted slice.
func dedupeSorted(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}

	return out
}
