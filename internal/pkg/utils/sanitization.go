package utils

import (
	"medintake-service/internal/pkg/dto/requests"
	"path/filepath"
	"strings"
	"unicode"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeCreateUserRequest(input *requests.CreateUser) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
}

// SanitizeUpdateUserRequest trims the given fields and drops a blank
// password, which the admin panel sends when the password is unchanged.
func SanitizeUpdateUserRequest(input *requests.UpdateUser) {
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		input.Username = &username
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		input.Email = &email
	}
	if input.Password != nil && strings.TrimSpace(*input.Password) == "" {
		input.Password = nil
	}
}

func SanitizeCreateCourierRequest(input *requests.CreateCourier) {
	input.Matricule = strings.TrimSpace(input.Matricule)
	input.NomAdherent = strings.TrimSpace(input.NomAdherent)
	input.NomBeneficiaire = strings.TrimSpace(input.NomBeneficiaire)
	input.Types = lowerEach(cleanWhiteSpaceFromEachStringOfAnArray(input.Types))
}

func SanitizeAppendCourierFilesRequest(input *requests.AppendCourierFiles) {
	input.Types = lowerEach(cleanWhiteSpaceFromEachStringOfAnArray(input.Types))
}

// SanitizeFileName keeps the base name and replaces anything outside
// letters, digits, dot, dash and underscore so it is safe as an object key.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}

	var builder strings.Builder
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			builder.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			builder.WriteRune(r)
		default:
			builder.WriteRune('_')
		}
	}
	return builder.String()
}

func lowerEach(input []string) []string {
	for i, v := range input {
		input[i] = strings.ToLower(v)
	}
	return input
}
