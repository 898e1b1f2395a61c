package users

import (
	"context"
	"errors"
	"fmt"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/models"
	"medintake-service/internal/app/services/ocr_backend/requester"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	userClientInstance contracts.UserBackendClient
	onceUserClient     sync.Once
)

type userClient struct {
	Requester *requester.Requester
	Log       *zap.Logger
}

func NewUserBackendClient(req *requester.Requester, logger *zap.Logger) contracts.UserBackendClient {
	onceUserClient.Do(func() {
		userClientInstance = &userClient{
			Requester: req,
			Log:       logger,
		}
	})
	return userClientInstance
}

func (c *userClient) List(ctx context.Context) ([]models.User, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	users := make([]models.User, 0)
	_, err := c.Requester.SendJSON(ctx, constvars.MethodGet, constvars.BackendPathUsers, nil, &users, constvars.ResourceUser)
	if err != nil {
		c.Log.Error("userClient.List error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return users, nil
}

func (c *userClient) Create(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := new(models.User)
	_, err := c.Requester.SendJSON(ctx, constvars.MethodPost, constvars.BackendPathUsers, request, user, constvars.ResourceUser)
	if err != nil {
		c.Log.Error("userClient.Create error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if user.ID == 0 {
		return nil, exceptions.ErrDecodeBackendResponse(errors.New("created user has no id"), constvars.ResourceUser)
	}
	return user, nil
}

func (c *userClient) Update(ctx context.Context, id int64, request *requests.UpdateUser) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, id),
	)

	user := new(models.User)
	_, err := c.Requester.SendJSON(ctx, constvars.MethodPatch, fmt.Sprintf(constvars.BackendPathUserByID, id), request, user, constvars.ResourceUser)
	if err != nil {
		c.Log.Error("userClient.Update error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, id),
			zap.Error(err),
		)
		return nil, err
	}
	return user, nil
}

func (c *userClient) Delete(ctx context.Context, id int64) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("userClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, id),
	)

	_, err := c.Requester.Send(ctx, constvars.MethodDelete, fmt.Sprintf(constvars.BackendPathUserByID, id), nil, "", constvars.ResourceUser)
	if err != nil {
		c.Log.Error("userClient.Delete error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, id),
			zap.Error(err),
		)
		return err
	}
	return nil
}
