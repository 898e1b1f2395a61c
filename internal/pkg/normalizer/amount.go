package normalizer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	noBreakSpace       = '\u00a0'
	narrowNoBreakSpace = '\u202f'
)

var amountTokenPattern = regexp.MustCompile(`\d[\d \x{00A0}\x{202F}]*(?:[.,]\d+)?`)

// ParseFrenchAmount reads amounts such as "1 250,500". Unparseable input
// yields 0.
func ParseFrenchAmount(s string) float64 {
	cleaned := stripSpaces(s)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return value
}

// ParseAmountLenient falls back to the first numeric token when s carries a
// label, e.g. "Total TTC : 12,500 DT".
func ParseAmountLenient(s string) float64 {
	if value := ParseFrenchAmount(s); value != 0 {
		return value
	}
	token := firstAmountToken(s)
	if token == "" {
		return 0
	}
	return ParseFrenchAmount(token)
}

// FormatAmount groups thousands the French way and shows three decimals only
// when the value is fractional.
func FormatAmount(n float64) string {
	rounded := math.Round(n*1000) / 1000
	printer := message.NewPrinter(language.French)
	if rounded == math.Trunc(rounded) {
		return printer.Sprintf("%d", int64(rounded))
	}
	return printer.Sprintf("%.3f", rounded)
}

func firstAmountToken(s string) string {
	return stripSpaces(amountTokenPattern.FindString(s))
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', noBreakSpace, narrowNoBreakSpace:
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}
