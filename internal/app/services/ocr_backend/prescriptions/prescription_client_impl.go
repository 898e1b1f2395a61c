package prescriptions

import (
	"context"
	"errors"
	"fmt"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/services/ocr_backend/requester"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	prescriptionClientInstance contracts.PrescriptionBackendClient
	oncePrescriptionClient     sync.Once
)

type prescriptionClient struct {
	Requester *requester.Requester
	Log       *zap.Logger
}

func NewPrescriptionBackendClient(req *requester.Requester, logger *zap.Logger) contracts.PrescriptionBackendClient {
	oncePrescriptionClient.Do(func() {
		prescriptionClientInstance = &prescriptionClient{
			Requester: req,
			Log:       logger,
		}
	})
	return prescriptionClientInstance
}

func (c *prescriptionClient) Create(ctx context.Context, payload *requests.PrescriptionPayload) (int64, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("prescriptionClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	saved := new(struct {
		ID int64 `json:"id"`
	})
	_, err := c.Requester.SendJSON(ctx, constvars.MethodPost, constvars.BackendPathPrescription, payload, saved, constvars.ResourcePrescription)
	if err != nil {
		c.Log.Error("prescriptionClient.Create error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}
	if saved.ID == 0 {
		return 0, exceptions.ErrDecodeBackendResponse(errors.New("created prescription has no id"), constvars.ResourcePrescription)
	}
	return saved.ID, nil
}

func (c *prescriptionClient) FindByID(ctx context.Context, id int64) (map[string]any, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("prescriptionClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)

	record := make(map[string]any)
	path := fmt.Sprintf(constvars.BackendPathPrescriptionByID, id)
	_, err := c.Requester.SendJSON(ctx, constvars.MethodGet, path, nil, &record, constvars.ResourcePrescription)
	if err != nil {
		c.Log.Error("prescriptionClient.FindByID error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecordIDKey, id),
			zap.Error(err),
		)
		return nil, err
	}
	return record, nil
}
