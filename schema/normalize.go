package schema

import (
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKey converts a field label into its machine key. The chain is
// total, deterministic and idempotent: NFC, lowercase, interior whitespace to
// single underscores, strip ()[]?, / to _, & to "and".
func NormalizeKey(label string) string {
	s := nfc(strings.TrimSpace(label))
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), "_")
	s = strings.NewReplacer(
		"(", "",
		")", "",
		"[", "",
		"]", "",
		"?", "",
		"/", "_",
		"&", "and",
	).Replace(s)
	return s
}

// ShortLabel cuts a label down to its title: the text before the explanatory
// parenthesis or bracket, with the required-field asterisk trimmed. Section
// keys are derived from the short label so that "Crop/Plant Type (Scientific
// name ...)" becomes crop_plant_type.
func ShortLabel(label string) string {
	s := strings.TrimSpace(label)
	if i := strings.IndexAny(s, "(["); i > 0 {
		s = s[:i]
	}
	return strings.TrimRight(s, "* \t")
}

// SectionKey is the key a field gets inside a SectionedDocument.
func SectionKey(label string) string {
	return NormalizeKey(ShortLabel(label))
}

// normalizeLabel produces the lookup form used for label matching: NFC,
// lowercased, whitespace runs (including newlines) collapsed to single
// spaces, trailing required/punctuation markers trimmed. Drifted variants of
// a label (leading/trailing/double spaces, a dropped asterisk) collapse to
// the same lookup form.
func normalizeLabel(label string) string {
	s := nfc(label)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimRight(s, "*: ")
}

func nfc(s string) string {
	out, _, err := transform.String(norm.NFC, s)
	if err != nil {
		return s
	}
	return out
}
