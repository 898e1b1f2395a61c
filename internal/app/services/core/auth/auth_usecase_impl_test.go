package auth

import (
	"context"
	"medintake-service/internal/app/contracts/mocks"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()
	request := &requests.Login{Username: "agent", Password: "secret"}

	t.Run("Returns Token And Claims", func(t *testing.T) {
		client := new(mocks.MockAuthBackendClient)
		expiresAt := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
		token := signedToken(t, jwt.MapClaims{"sub": "agent", "exp": expiresAt.Unix(), "is_superuser": true})
		client.On("Login", ctx, "agent", "secret").Return(token, nil)
		usecase := &authUsecase{AuthClient: client, Log: zap.NewNop()}

		user, err := usecase.Login(ctx, request)

		require.NoError(t, err)
		assert.Equal(t, token, user.Token)
		assert.True(t, user.IsSuperuser)
		assert.Equal(t, expiresAt, user.ExpiresAt)
	})

	t.Run("String Superuser Flag Is Ignored", func(t *testing.T) {
		client := new(mocks.MockAuthBackendClient)
		client.On("Login", ctx, "agent", "secret").Return(signedToken(t, jwt.MapClaims{"sub": "agent", "is_superuser": "true"}), nil)
		usecase := &authUsecase{AuthClient: client, Log: zap.NewNop()}

		user, err := usecase.Login(ctx, request)

		require.NoError(t, err)
		assert.False(t, user.IsSuperuser)
	})

	t.Run("Wrong Credentials", func(t *testing.T) {
		client := new(mocks.MockAuthBackendClient)
		client.On("Login", ctx, "agent", "secret").Return("", exceptions.ErrInvalidCredentials(nil))
		usecase := &authUsecase{AuthClient: client, Log: zap.NewNop()}

		_, err := usecase.Login(ctx, request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Malformed Token", func(t *testing.T) {
		client := new(mocks.MockAuthBackendClient)
		client.On("Login", ctx, "agent", "secret").Return("not-a-jwt", nil)
		usecase := &authUsecase{AuthClient: client, Log: zap.NewNop()}

		_, err := usecase.Login(ctx, request)

		assert.Error(t, err)
	})
}

func TestAuthUsecase_Me(t *testing.T) {
	usecase := &authUsecase{Log: zap.NewNop()}

	t.Run("Reads Claims From Context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constvars.CONTEXT_TOKEN_CLAIMS_KEY, &models.TokenClaims{Subject: "agent"})

		user, err := usecase.Me(ctx)

		require.NoError(t, err)
		assert.Equal(t, "agent", user.Subject)
	})

	t.Run("No Claims", func(t *testing.T) {
		_, err := usecase.Me(context.Background())

		assert.Error(t, err)
	})
}
