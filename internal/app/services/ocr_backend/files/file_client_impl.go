package files

import (
	"context"
	"fmt"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/services/ocr_backend/requester"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	fileClientInstance contracts.FileBackendClient
	onceFileClient     sync.Once
)

type fileClient struct {
	Requester *requester.Requester
	Log       *zap.Logger
}

func NewFileBackendClient(req *requester.Requester, logger *zap.Logger) contracts.FileBackendClient {
	onceFileClient.Do(func() {
		fileClientInstance = &fileClient{
			Requester: req,
			Log:       logger,
		}
	})
	return fileClientInstance
}

func (c *fileClient) Delete(ctx context.Context, id int64) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("fileClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingFileIDKey, id),
	)

	path := fmt.Sprintf(constvars.BackendPathFileByID, id)
	_, err := c.Requester.Send(ctx, constvars.MethodDelete, path, nil, "", constvars.ResourceFile)
	if err != nil {
		c.Log.Error("fileClient.Delete error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingFileIDKey, id),
			zap.Error(err),
		)
		return err
	}
	return nil
}
