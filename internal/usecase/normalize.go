package usecase

import "strings"

// Shared per-field normalization used by every schema. The rules are
// deliberately small and uniform so the per-use-case code stays focused on
// its genuinely distinct legal content:
//
//   - empty or whitespace-only strings are absent, never errors
//   - "yes"/"no" map to booleans; anything else is absent
//   - enum values must match the closed set exactly (case-sensitive);
//     anything else is absent, unless the field is a discriminant

// normalizeText trims s and reports whether a value remains.
func normalizeText(s string) (string, bool) {
	t := strings.TrimSpace(s)
	return t, t != ""
}

// normalizeYesNo maps "yes"/"no" to a boolean. Any other value, including
// mixed case or localized words, is treated as absent.
func normalizeYesNo(s string) (val, present bool) {
	switch strings.TrimSpace(s) {
	case "yes":
		return true, true
	case "no":
		return false, true
	default:
		return false, false
	}
}

// inEnum reports whether v is a member of the closed set. Matching is exact
// and case-sensitive: "No_Evidence" is not "no_evidence".
func inEnum(v string, set []string) bool {
	for _, e := range set {
		if v == e {
			return true
		}
	}
	return false
}

// yesNo renders a normalized boolean back to its canonical wire word.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
