package auth

import (
	"context"
	"medintake-service/internal/app/services/ocr_backend/requester"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestClient(server *httptest.Server) *authClient {
	return &authClient{
		Requester: &requester.Requester{
			BaseUrl: server.URL,
			Client:  server.Client(),
			Limiter: rate.NewLimiter(rate.Inf, 1),
			Log:     zap.NewNop(),
		},
		Log: zap.NewNop(),
	}
}

func TestAuthClient_Login(t *testing.T) {
	t.Run("Valid Credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/login", r.URL.Path)
			assert.Equal(t, constvars.MIMEApplicationForm, r.Header.Get(constvars.HeaderContentType))
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "admin@clinic.tn", r.PostForm.Get("username"))
			assert.Equal(t, "secret", r.PostForm.Get("password"))
			w.Write([]byte(`{"access_token":"abc.def.ghi","token_type":"bearer"}`))
		}))
		defer server.Close()

		token, err := newTestClient(server).Login(context.Background(), "admin@clinic.tn", "secret")

		require.NoError(t, err)
		assert.Equal(t, "abc.def.ghi", token)
	})

	t.Run("Wrong Credentials", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := newTestClient(server).Login(context.Background(), "admin", "bad")

		assert.Equal(t, http.StatusUnauthorized, exceptions.StatusCodeOf(err))
		assert.Equal(t, constvars.ErrClientCredentialsIncorrect, exceptions.ClientMessageOf(err))
	})

	t.Run("Backend Down", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := newTestClient(server).Login(context.Background(), "admin", "secret")

		assert.Equal(t, constvars.ErrClientLoginRetry, exceptions.ClientMessageOf(err))
	})

	t.Run("Empty Token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).Login(context.Background(), "admin", "secret")

		assert.Equal(t, constvars.ErrClientLoginRetry, exceptions.ClientMessageOf(err))
	})
}
