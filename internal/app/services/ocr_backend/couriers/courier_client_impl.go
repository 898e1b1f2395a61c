package couriers

import (
	"context"
	"fmt"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/models"
	"medintake-service/internal/app/services/ocr_backend/requester"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	courierClientInstance contracts.CourierBackendClient
	onceCourierClient     sync.Once
)

type courierClient struct {
	Requester *requester.Requester
	Log       *zap.Logger
}

func NewCourierBackendClient(req *requester.Requester, logger *zap.Logger) contracts.CourierBackendClient {
	onceCourierClient.Do(func() {
		courierClientInstance = &courierClient{
			Requester: req,
			Log:       logger,
		}
	})
	return courierClientInstance
}

func (c *courierClient) List(ctx context.Context) ([]models.Courier, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("courierClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	couriers := make([]models.Courier, 0)
	resp, err := c.Requester.SendJSON(ctx, constvars.MethodGet, constvars.BackendPathCourierUploadedAll, nil, &couriers, constvars.ResourceCourier)
	if err != nil {
		if resp != nil && resp.StatusCode == constvars.StatusNotFound {
			return []models.Courier{}, nil
		}
		c.Log.Error("courierClient.List error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return couriers, nil
}

func (c *courierClient) FindByID(ctx context.Context, id int64) (*models.Courier, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("courierClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCourierIDKey, id),
	)

	courier := new(models.Courier)
	path := fmt.Sprintf(constvars.BackendPathCourierByID, id)
	_, err := c.Requester.SendJSON(ctx, constvars.MethodGet, path, nil, courier, constvars.ResourceCourier)
	if err != nil {
		c.Log.Error("courierClient.FindByID error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingCourierIDKey, id),
			zap.Error(err),
		)
		return nil, err
	}
	return courier, nil
}

func (c *courierClient) Create(ctx context.Context, request *requests.CourierCreate) (*models.Courier, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("courierClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(request.Files)),
	)

	form := &requester.MultipartForm{
		Fields: map[string][]string{
			constvars.FormFieldMatricule:   {request.Matricule},
			constvars.FormFieldAdherent:    {request.NomAdherent},
			constvars.FormFieldBeneficiary: {request.NomBeneficiaire},
			constvars.FormFieldTypes:       request.Types,
		},
		FileField: constvars.FormFieldFiles,
		Files:     request.Files,
	}

	courier := new(models.Courier)
	_, err := c.Requester.SendMultipart(ctx, constvars.BackendPathCourierUpload, form, courier, constvars.ResourceCourier)
	if err != nil {
		c.Log.Error("courierClient.Create error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return courier, nil
}

func (c *courierClient) AppendFiles(ctx context.Context, courierID int64, parts []requests.UploadPart, types []string) (*models.Courier, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("courierClient.AppendFiles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCourierIDKey, courierID),
		zap.Int(constvars.LoggingCountKey, len(parts)),
	)

	form := &requester.MultipartForm{
		Fields:    map[string][]string{constvars.FormFieldTypes: types},
		FileField: constvars.FormFieldFiles,
		Files:     parts,
	}

	courier := new(models.Courier)
	path := fmt.Sprintf(constvars.BackendPathCourierAppend, courierID)
	_, err := c.Requester.SendMultipart(ctx, path, form, courier, constvars.ResourceCourier)
	if err != nil {
		c.Log.Error("courierClient.AppendFiles error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingCourierIDKey, courierID),
			zap.Error(err),
		)
		return nil, err
	}
	return courier, nil
}
