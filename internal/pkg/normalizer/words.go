package normalizer

import (
	"fmt"
	"math"
	"medintake-service/internal/pkg/constvars"
	"strconv"
	"strings"

	ntw "moul.io/number-to-words"
)

const millimesDigits = 3

// AmountToWords spells the first amount found in total, e.g. "12,500" gives
// "douze dinars et cinq cents millimes".
func AmountToWords(total string) string {
	token := firstAmountToken(total)
	if token == "" {
		return "zéro " + constvars.CurrencyUnit
	}

	dinars, millimes, ok := splitAmountToken(token)
	if !ok {
		return "zéro " + constvars.CurrencyUnit
	}
	return spellDinarsAndMillimes(dinars, millimes)
}

// AmountValueToWords spells an already parsed amount.
func AmountValueToWords(n float64) string {
	token := strconv.FormatFloat(math.Abs(n), 'f', millimesDigits, 64)
	dinars, millimes, ok := splitAmountToken(token)
	if !ok {
		return "zéro " + constvars.CurrencyUnit
	}
	return spellDinarsAndMillimes(dinars, millimes)
}

func splitAmountToken(token string) (int, int, bool) {
	integerPart, fractionPart := token, ""
	if separator := strings.IndexAny(token, ".,"); separator >= 0 {
		integerPart, fractionPart = token[:separator], token[separator+1:]
	}

	dinars, err := strconv.Atoi(integerPart)
	if err != nil {
		return 0, 0, false
	}

	fractionPart = (fractionPart + strings.Repeat("0", millimesDigits))[:millimesDigits]
	millimes, err := strconv.Atoi(fractionPart)
	if err != nil {
		return 0, 0, false
	}
	return dinars, millimes, true
}

func spellDinarsAndMillimes(dinars, millimes int) string {
	phrase := spellUnit(dinars, constvars.CurrencyUnit)
	if millimes > 0 {
		phrase = fmt.Sprintf("%s et %s", phrase, spellUnit(millimes, constvars.CurrencySubunit))
	}
	return phrase
}

func spellUnit(n int, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return ntw.IntegerToFrFr(n) + " " + unit
}
