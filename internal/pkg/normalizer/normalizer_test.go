package normalizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFrenchAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "Comma Decimal", input: "12,500", want: 12.5},
		{name: "Regular Space Grouping", input: "1 250,750", want: 1250.75},
		{name: "No-Break Space Grouping", input: "1\u00a0250,750", want: 1250.75},
		{name: "Narrow No-Break Space Grouping", input: "1\u202f250,750", want: 1250.75},
		{name: "Point Decimal", input: "3.200", want: 3.2},
		{name: "Integer", input: "42", want: 42},
		{name: "Empty", input: "", want: 0},
		{name: "Not A Number", input: "NA", want: 0},
		{name: "Label Is Not Accepted", input: "Total 12,500", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParseFrenchAmount(tt.input), 1e-9, "should parse %q", tt.input)
		})
	}
}

func TestParseAmountLenient(t *testing.T) {
	assert.InDelta(t, 12.5, ParseAmountLenient("Total TTC : 12,500 DT"), 1e-9, "should read the first numeric token")
	assert.InDelta(t, 1250.5, ParseAmountLenient("1 250,500"), 1e-9, "should accept a bare amount")
	assert.Zero(t, ParseAmountLenient("aucun montant"), "should return 0 without a numeric token")
}

func TestFormatAmount(t *testing.T) {
	t.Run("Integer Value Has No Decimals", func(t *testing.T) {
		formatted := stripSpaces(FormatAmount(12500))
		assert.Equal(t, "12500", formatted)
	})

	t.Run("Fractional Value Has Three Decimals", func(t *testing.T) {
		formatted := stripSpaces(FormatAmount(12500.5))
		assert.Equal(t, "12500,500", formatted)
	})

	t.Run("Thousands Are Grouped", func(t *testing.T) {
		formatted := FormatAmount(1250000)
		assert.NotEqual(t, "1250000", formatted, "should insert a grouping separator")
	})
}

func TestAmountRoundTrip(t *testing.T) {
	inputs := []string{"12,500", "1 250,750", "0,005", "999 999,999", "7", "3 000", "15,25"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			parsed := ParseFrenchAmount(input)
			assert.InDelta(t, parsed, ParseFrenchAmount(FormatAmount(parsed)), 1e-9, "round trip should preserve the value")
		})
	}
}

func TestAmountToWords(t *testing.T) {
	t.Run("Dinars And Millimes", func(t *testing.T) {
		words := AmountToWords("12,500")
		assert.Contains(t, words, "douze")
		assert.Contains(t, words, "dinars")
		assert.Contains(t, words, "cinq")
		assert.Contains(t, words, "millimes")
		assert.Less(t, strings.Index(words, "dinars"), strings.Index(words, "millimes"), "dinars should come before millimes")
	})

	t.Run("Short Fraction Is Padded", func(t *testing.T) {
		dinars, millimes, ok := splitAmountToken("3,5")
		assert.True(t, ok)
		assert.Equal(t, 3, dinars)
		assert.Equal(t, 500, millimes)
	})

	t.Run("Long Fraction Is Truncated", func(t *testing.T) {
		dinars, millimes, ok := splitAmountToken("3.12345")
		assert.True(t, ok)
		assert.Equal(t, 3, dinars)
		assert.Equal(t, 123, millimes)
	})

	t.Run("Singular Unit", func(t *testing.T) {
		words := AmountToWords("1")
		assert.True(t, strings.HasSuffix(words, " dinar"), "one dinar should stay singular, got %q", words)
	})

	t.Run("No Millimes Phrase Without Fraction", func(t *testing.T) {
		assert.NotContains(t, AmountToWords("12"), "millime")
	})

	t.Run("Token Inside Label", func(t *testing.T) {
		assert.Equal(t, AmountToWords("12,500"), AmountToWords("Total : 12,500 DT"))
	})

	t.Run("No Numeric Token", func(t *testing.T) {
		assert.Equal(t, "zéro dinar", AmountToWords("néant"))
	})

	t.Run("Parsed Value Matches String Form", func(t *testing.T) {
		assert.Equal(t, AmountToWords("12,500"), AmountValueToWords(12.5))
	})
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Two Digit Year", input: "05/03/24", want: "2024-03-05"},
		{name: "Four Digit Year", input: "15/11/2023", want: "2023-11-15"},
		{name: "Single Digit Day And Month", input: "5/3/24", want: "2024-03-05"},
		{name: "Already ISO", input: "2024-03-05", want: "2024-03-05"},
		{name: "Empty", input: "", want: ""},
		{name: "One Slash", input: "03/24", want: "03/24"},
		{name: "Three Slashes", input: "01/02/03/04", want: "01/02/03/04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.input))
		})
	}
}

func TestFormatBeneficiaryID(t *testing.T) {
	assert.Equal(t, "1234-5678-90-1-2", FormatBeneficiaryID("123456789012"))
	assert.Equal(t, "1234-5678-90-1-2", FormatBeneficiaryID("1234 5678/90-1-2"))
	assert.Equal(t, "1234-56-0-0-0", FormatBeneficiaryID("123456"))
	assert.Equal(t, "0-0-0-0-0", FormatBeneficiaryID(""))
}

func TestCanonicalIdentifier(t *testing.T) {
	assert.Equal(t, "123456789012", CanonicalIdentifier("1234-5678-90-1-2"))
	assert.Equal(t, "AB12", CanonicalIdentifier(" A-B 1.2 "))
}
