package mapper

import (
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/exceptions"
	"strings"
)

// IdentifierBoxes is the one-character-per-box view of the canonical
// identifier. Placeholders and positions past the end are empty.
func IdentifierBoxes(identifier string) [constvars.IdentifierLength]string {
	var boxes [constvars.IdentifierLength]string
	runes := []rune(identifier)
	for i := range boxes {
		if i < len(runes) && string(runes[i]) != constvars.IdentifierEmptyBox {
			boxes[i] = string(runes[i])
		}
	}
	return boxes
}

// SetIdentifierBox writes value into box index and returns the new canonical
// identifier. Only the first character of value is kept. Empty boxes before
// the last filled one hold a placeholder so every box keeps its position.
func SetIdentifierBox(identifier string, index int, value string) (string, error) {
	if index < 0 || index >= constvars.IdentifierLength {
		return identifier, exceptions.ErrIdentifierIndexOutOfRange(nil, index)
	}

	boxes := IdentifierBoxes(identifier)
	boxes[index] = ""
	if runes := []rune(strings.TrimSpace(value)); len(runes) > 0 {
		boxes[index] = string(runes[0])
	}
	return joinIdentifierBoxes(boxes), nil
}

func joinIdentifierBoxes(boxes [constvars.IdentifierLength]string) string {
	var builder strings.Builder
	for _, box := range boxes {
		if box == "" {
			box = constvars.IdentifierEmptyBox
		}
		builder.WriteString(box)
	}
	return strings.TrimRight(builder.String(), constvars.IdentifierEmptyBox)
}
