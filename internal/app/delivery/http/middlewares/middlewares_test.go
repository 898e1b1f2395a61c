package middlewares

import (
	"medintake-service/internal/app/config"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestMiddlewares() *Middlewares {
	return &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App: config.App{RequestBodyLimitInMegabyte: 1},
		},
		Clock: func() time.Time { return fixedNow },
	}
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestMiddlewares_Authenticate(t *testing.T) {
	m := newTestMiddlewares()

	var seenToken, seenSubject string
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenToken = utils.GetBearerToken(r.Context())
		seenSubject = utils.GetTokenClaims(r.Context()).Subject
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("Valid Token Reaches Handler", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "agent", "exp": fixedNow.Add(time.Hour).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, token, seenToken)
		assert.Equal(t, "agent", seenSubject)
	})

	t.Run("Missing Header", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/documents", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientNotLoggedIn)
	})

	t.Run("Malformed Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := signedToken(t, jwt.MapClaims{"sub": "agent", "exp": fixedNow.Add(-time.Minute).Unix()})
		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientSessionExpired)
	})
}

func TestMiddlewares_RequireSuperuser(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Authenticate(m.RequireSuperuser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	cases := []struct {
		name     string
		flag     any
		expected int
	}{
		{name: "Superuser Allowed", flag: true, expected: http.StatusNoContent},
		{name: "Regular User Forbidden", flag: false, expected: http.StatusForbidden},
		{name: "String Flag Forbidden", flag: "true", expected: http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := signedToken(t, jwt.MapClaims{"sub": "agent", "is_superuser": tc.flag})
			req := httptest.NewRequest(http.MethodDelete, "/documents/bulletin/3", nil)
			req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expected, rr.Code)
		})
	}
}

func TestMiddlewares_RequestID(t *testing.T) {
	m := newTestMiddlewares()
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("Client Header Is Kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-42")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-42", seen)
		assert.Equal(t, "client-42", rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Generated When Absent", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.True(t, strings.HasPrefix(seen, constvars.REQUEST_ID_PREFIX))
	})
}

func TestMiddlewares_BodyLimit(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("Oversized Body Rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 2<<20)))
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	})

	t.Run("Small Body Accepted", func(t *testing.T) {
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}")))

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestMiddlewares_ErrorHandler(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
