package normalizer

import (
	"fmt"
	"strings"
)

// NormalizeDate turns dd/mm/yy and dd/mm/yyyy into yyyy-mm-dd. Anything that
// does not split into exactly three slash separated parts is returned as is.
func NormalizeDate(d string) string {
	if !strings.Contains(d, "/") {
		return d
	}

	parts := strings.Split(d, "/")
	if len(parts) != 3 {
		return d
	}

	day := padTwo(strings.TrimSpace(parts[0]))
	month := padTwo(strings.TrimSpace(parts[1]))
	year := strings.TrimSpace(parts[2])
	if len(year) == 2 {
		year = "20" + year
	}
	return fmt.Sprintf("%s-%s-%s", year, month, day)
}

func padTwo(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
