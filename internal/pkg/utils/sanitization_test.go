package utils

import (
	"medintake-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCreateCourierRequest(t *testing.T) {
	t.Run("Trims Claimant Fields", func(t *testing.T) {
		request := &requests.CreateCourier{
			Matricule:       "  12345  ",
			NomAdherent:     " Ali Ben Ali ",
			NomBeneficiaire: "  ",
		}

		SanitizeCreateCourierRequest(request)

		assert.Equal(t, "12345", request.Matricule)
		assert.Equal(t, "Ali Ben Ali", request.NomAdherent)
		assert.Equal(t, "", request.NomBeneficiaire)
	})

	t.Run("Types Sanitization", func(t *testing.T) {
		request := &requests.CreateCourier{
			Types: []string{"  Bulletin ", "ORDONNANCE"},
		}

		SanitizeCreateCourierRequest(request)

		assert.Equal(t, []string{"bulletin", "ordonnance"}, request.Types, "types should be trimmed and lowercase")
	})
}

func TestSanitizeUserRequests(t *testing.T) {
	t.Run("Create Trims Username And Lowercases Email", func(t *testing.T) {
		request := &requests.CreateUser{Username: "  sami ", Email: " Sami@Clinic.TN "}

		SanitizeCreateUserRequest(request)

		assert.Equal(t, "sami", request.Username)
		assert.Equal(t, "sami@clinic.tn", request.Email)
	})

	t.Run("Update Drops Blank Password", func(t *testing.T) {
		blank, username := "  ", " sami "
		request := &requests.UpdateUser{Username: &username, Password: &blank}

		SanitizeUpdateUserRequest(request)

		assert.Nil(t, request.Password)
		assert.Equal(t, "sami", *request.Username)
		assert.Nil(t, request.Email)
	})

	t.Run("Update Keeps A New Password As Typed", func(t *testing.T) {
		password := " new pass "
		request := &requests.UpdateUser{Password: &password}

		SanitizeUpdateUserRequest(request)

		assert.Equal(t, " new pass ", *request.Password)
	})
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain Name", "scan-01.pdf", "scan-01.pdf"},
		{"Path Is Stripped", "../../etc/passwd", "passwd"},
		{"Windows Path", `C:\Users\ali\bulletin.png`, "bulletin.png"},
		{"Spaces And Accents", "reçu médical.jpg", "re_u_m_dical.jpg"},
		{"Empty", "   ", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFileName(tt.input))
		})
	}
}

func TestDecodeTokenClaims(t *testing.T) {
	// {"sub":"admin","exp":4102444800,"is_superuser":true}, signature irrelevant
	token := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiJhZG1pbiIsImV4cCI6NDEwMjQ0NDgwMCwiaXNfc3VwZXJ1c2VyIjp0cnVlfQ." +
		"c2lnbmF0dXJl"

	t.Run("Reads Claims Without Verification", func(t *testing.T) {
		claims, err := DecodeTokenClaims(token)

		assert.NoError(t, err)
		assert.Equal(t, "admin", claims.Subject)
		assert.True(t, claims.IsSuperuser)
		assert.Equal(t, int64(4102444800), claims.ExpiresAt.Unix())
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := DecodeTokenClaims("not-a-token")

		assert.Error(t, err)
	})
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Empty(t, Paginate(items, 4, 2))
}
