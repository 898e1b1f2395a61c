package auth

import (
	"context"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthClient contracts.AuthBackendClient
	Log        *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(authClient contracts.AuthBackendClient, logger *zap.Logger) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AuthClient: authClient,
			Log:        logger,
		}
	})
	return authUsecaseInstance
}

// Login exchanges credentials for a backend token and returns it with the
// claims the UI needs.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.LoginUser, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := uc.AuthClient.Login(ctx, request.Username, request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.Login error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	claims, err := utils.DecodeTokenClaims(token)
	if err != nil {
		uc.Log.Error("authUsecase.Login error decoding token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrLoginFailed(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubjectKey, claims.Subject),
	)
	return &responses.LoginUser{
		Token:       token,
		IsSuperuser: claims.IsSuperuser,
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}

func (uc *authUsecase) Me(ctx context.Context) (*responses.CurrentUser, error) {
	claims := utils.GetTokenClaims(ctx)
	if claims == nil {
		return nil, exceptions.ErrBearerTokenMissing(nil)
	}
	return &responses.CurrentUser{
		Subject:     claims.Subject,
		IsSuperuser: claims.IsSuperuser,
		ExpiresAt:   claims.ExpiresAt,
	}, nil
}
