package users

import (
	"context"
	"io"
	"medintake-service/internal/app/services/ocr_backend/requester"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestClient(server *httptest.Server) *userClient {
	return &userClient{
		Requester: &requester.Requester{
			BaseUrl: server.URL,
			Client:  server.Client(),
			Limiter: rate.NewLimiter(rate.Inf, 1),
			Log:     zap.NewNop(),
		},
		Log: zap.NewNop(),
	}
}

func TestUserClient_List(t *testing.T) {
	t.Run("Forwards The Caller Token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/users", r.URL.Path)
			assert.Equal(t, "Bearer admin-token", r.Header.Get(constvars.HeaderAuthorization))
			w.Write([]byte(`[{"id":1,"username":"admin","email":"admin@clinic.tn","is_active":true,"is_superuser":true}]`))
		}))
		defer server.Close()
		ctx := context.WithValue(context.Background(), constvars.CONTEXT_BEARER_TOKEN_KEY, "admin-token")

		users, err := newTestClient(server).List(ctx)

		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.True(t, users[0].IsSuperuser)
	})

	t.Run("Forbidden Keeps Its Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		_, err := newTestClient(server).List(context.Background())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusForbidden, customErr.StatusCode)
	})
}

func TestUserClient_Create(t *testing.T) {
	t.Run("Posts The Account", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/users", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"username":"sami","email":"sami@clinic.tn","password":"s3cret","is_superuser":false}`, string(body))
			w.Write([]byte(`{"id":12,"username":"sami","email":"sami@clinic.tn","is_active":true}`))
		}))
		defer server.Close()

		user, err := newTestClient(server).Create(context.Background(), &requests.CreateUser{
			Username: "sami",
			Email:    "sami@clinic.tn",
			Password: "s3cret",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(12), user.ID)
		assert.True(t, user.IsActive)
	})

	t.Run("Answer Without ID", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		_, err := newTestClient(server).Create(context.Background(), &requests.CreateUser{Username: "sami"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusBadGateway, customErr.StatusCode)
	})
}

func TestUserClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/users/12", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"is_active":false}`, string(body))
		w.Write([]byte(`{"id":12,"username":"sami","is_active":false}`))
	}))
	defer server.Close()

	inactive := false
	user, err := newTestClient(server).Update(context.Background(), 12, &requests.UpdateUser{IsActive: &inactive})

	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestUserClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/users/12", r.URL.Path)
		assert.Equal(t, "req-9", r.Header.Get(constvars.HeaderXRequestID))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-9")

	err := newTestClient(server).Delete(ctx, 12)

	require.NoError(t, err)
}
