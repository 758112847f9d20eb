package services

import (
	"fmt"
	"strings"
)

// BuildReferenceList cleans a raw reference list for the rendered References
// block: entries are trimmed, empties dropped, duplicates (case-insensitive)
// collapsed. First-occurrence order is kept; returns warnings for dropped
// duplicates.
func BuildReferenceList(refs []string) (ordered []string, warnings []string) {
	seen := map[string]bool{}
	for _, ref := range refs {
		r := strings.TrimSpace(ref)
		if r == "" {
			continue
		}
		key := strings.ToLower(r)
		if seen[key] {
			warnings = append(warnings, fmt.Sprintf("duplicate reference dropped: %s", r))
			continue
		}
		seen[key] = true
		ordered = append(ordered, r)
	}
	return ordered, warnings
}

// FormatReference renders one reference with its ordinal for the References
// block, ensuring a terminal period.
func FormatReference(number int, ref string) string {
	r := strings.TrimSpace(ref)
	if !strings.HasSuffix(r, ".") {
		r += "."
	}
	return fmt.Sprintf("[%d] %s", number, r)
}

// BuildKeywordLine joins keywords for the line under the abstract; empties
// are dropped.
func BuildKeywordLine(keywords []string) string {
	var kept []string
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			kept = append(kept, k)
		}
	}
	return strings.Join(kept, ", ")
}
