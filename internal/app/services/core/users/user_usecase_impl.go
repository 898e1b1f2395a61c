package users

import (
	"context"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserClient contracts.UserBackendClient
	Log        *zap.Logger
}

func NewUserUsecase(userClient contracts.UserBackendClient, logger *zap.Logger) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserClient: userClient,
			Log:        logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) List(ctx context.Context) ([]models.User, error) {
	uc.Log.Info("userUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return uc.UserClient.List(ctx)
}

func (uc *userUsecase) Create(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserClient.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "user_created", requestID,
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
		zap.Bool("is_superuser", user.IsSuperuser),
	)
	return user, nil
}

// Update sends only the fields the caller set. An update that sets nothing
// is refused before reaching the backend.
func (uc *userUsecase) Update(ctx context.Context, id int64, request *requests.UpdateUser) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, id),
	)

	if request.IsEmpty() {
		return nil, exceptions.ErrEmptyUserUpdate(nil, id)
	}

	user, err := uc.UserClient.Update(ctx, id, request)
	if err != nil {
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "user_updated", requestID,
		zap.Int64(constvars.LoggingUserIDKey, id),
		zap.Bool("password_changed", request.Password != nil),
	)
	return user, nil
}

func (uc *userUsecase) Delete(ctx context.Context, id int64) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, id),
	)

	if err := uc.UserClient.Delete(ctx, id); err != nil {
		return err
	}

	utils.LogBusinessEvent(uc.Log, "user_deleted", requestID,
		zap.Int64(constvars.LoggingUserIDKey, id),
	)
	return nil
}
