package normalizer

import (
	"strings"
	"unicode"
)

var beneficiaryIDSlices = [][2]int{{0, 4}, {4, 8}, {8, 10}, {10, 11}, {11, 12}}

// FormatBeneficiaryID renders an insurance identifier as XXXX-XXXX-XX-X-X,
// keeping digits only and filling missing parts with "0".
func FormatBeneficiaryID(raw string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)

	parts := make([]string, 0, len(beneficiaryIDSlices))
	for _, bounds := range beneficiaryIDSlices {
		start, end := bounds[0], bounds[1]
		part := ""
		if start < len(digits) {
			part = digits[start:min(end, len(digits))]
		}
		if part == "" {
			part = "0"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "-")
}

// CanonicalIdentifier drops separators so the identifier can be shown one
// character per box.
func CanonicalIdentifier(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, raw)
}
