package records

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

	"go.uber.org/zap"
)

// Paths is the endpoint family of one record kind on the backend.
type Paths struct {
	Resource       string
	Collection     string
	ByID           string
	Upload         string
	UploadedAll    string
	UploadedLatest string
}

var (
	BulletinPaths = Paths{
		Resource:       constvars.ResourceBulletin,
		Collection:     constvars.BackendPathBulletin,
		ByID:           constvars.BackendPathBulletinByID,
		Upload:         constvars.BackendPathBulletinUpload,
		UploadedAll:    constvars.BackendPathBulletinUploadedAll,
		UploadedLatest: constvars.BackendPathBulletinUploadedLast,
	}
	OrdonnancePaths = Paths{
		Resource:       constvars.ResourceOrdonnance,
		Collection:     constvars.BackendPathOrdonnance,
		ByID:           constvars.BackendPathOrdonnanceByID,
		Upload:         constvars.BackendPathOrdonnanceUpload,
		UploadedAll:    constvars.BackendPathOrdonnanceUploadedAll,
		UploadedLatest: constvars.BackendPathOrdonnanceUploadedLast,
	}
)

type recordClient struct {
	Requester *requester.Requester
	Paths     Paths
	Log       *zap.Logger
}

type savedRecord struct {
	ID int64 `json:"id"`
}

func NewRecordBackendClient(req *requester.Requester, paths Paths, logger *zap.Logger) contracts.RecordBackendClient {
	return &recordClient{
		Requester: req,
		Paths:     paths,
		Log:       logger,
	}
}

func (c *recordClient) Create(ctx context.Context, payload any) (int64, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentKindKey, c.Paths.Resource),
	)

	saved := new(savedRecord)
	_, err := c.Requester.SendJSON(ctx, constvars.MethodPost, c.Paths.Collection, payload, saved, c.Paths.Resource)
	if err != nil {
		c.Log.Error("recordClient.Create error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, err
	}
	if saved.ID == 0 {
		c.Log.Error("recordClient.Create backend answer has no id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return 0, exceptions.ErrDecodeBackendResponse(errors.New("created record has no id"), c.Paths.Resource)
	}
	return saved.ID, nil
}

// Update keeps id when the backend answer carries none.
func (c *recordClient) Update(ctx context.Context, id int64, payload any) (int64, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentKindKey, c.Paths.Resource),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)

	saved := new(savedRecord)
	_, err := c.Requester.SendJSON(ctx, constvars.MethodPut, fmt.Sprintf(c.Paths.ByID, id), payload, saved, c.Paths.Resource)
	if err != nil {
		c.Log.Error("recordClient.Update error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecordIDKey, id),
			zap.Error(err),
		)
		return 0, err
	}
	if saved.ID == 0 {
		return id, nil
	}
	return saved.ID, nil
}

func (c *recordClient) FindByID(ctx context.Context, id int64) (map[string]any, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentKindKey, c.Paths.Resource),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)

	record := make(map[string]any)
	_, err := c.Requester.SendJSON(ctx, constvars.MethodGet, fmt.Sprintf(c.Paths.ByID, id), nil, &record, c.Paths.Resource)
	if err != nil {
		c.Log.Error("recordClient.FindByID error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecordIDKey, id),
			zap.Error(err),
		)
		return nil, err
	}
	return record, nil
}

func (c *recordClient) UploadFiles(ctx context.Context, parts []requests.UploadPart) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordClient.UploadFiles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentKindKey, c.Paths.Resource),
		zap.Int(constvars.LoggingCountKey, len(parts)),
	)

	_, err := c.Requester.SendMultipart(ctx, c.Paths.Upload, &requester.MultipartForm{
		FileField: constvars.FormFieldFiles,
		Files:     parts,
	}, nil, c.Paths.Resource)
	if err != nil {
		c.Log.Error("recordClient.UploadFiles error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// ListUploaded treats a 404 as an empty listing.
func (c *recordClient) ListUploaded(ctx context.Context) ([]models.UploadedDocument, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordClient.ListUploaded called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentKindKey, c.Paths.Resource),
	)

	documents := make([]models.UploadedDocument, 0)
	resp, err := c.Requester.SendJSON(ctx, constvars.MethodGet, c.Paths.UploadedAll, nil, &documents, c.Paths.Resource)
	if err != nil {
		if resp != nil && resp.StatusCode == constvars.StatusNotFound {
			return []models.UploadedDocument{}, nil
		}
		c.Log.Error("recordClient.ListUploaded error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return documents, nil
}

// LatestUploaded never fails: any backend problem reads as "nothing uploaded".
func (c *recordClient) LatestUploaded(ctx context.Context) (*models.LatestDocument, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordClient.LatestUploaded called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentKindKey, c.Paths.Resource),
	)

	latest := new(models.LatestDocument)
	_, err := c.Requester.SendJSON(ctx, constvars.MethodGet, c.Paths.UploadedLatest, nil, latest, c.Paths.Resource)
	if err != nil {
		c.Log.Warn("recordClient.LatestUploaded falling back to empty result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &models.LatestDocument{Exists: false}, nil
	}
	if !latest.Exists && (latest.ID != 0 || latest.Filename != "") {
		latest.Exists = true
	}
	return latest, nil
}

func (c *recordClient) Delete(ctx context.Context, id int64) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("recordClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentKindKey, c.Paths.Resource),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)

	_, err := c.Requester.Send(ctx, constvars.MethodDelete, fmt.Sprintf(c.Paths.ByID, id), nil, "", c.Paths.Resource)
	if err != nil {
		c.Log.Error("recordClient.Delete error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecordIDKey, id),
			zap.Error(err),
		)
		return err
	}
	return nil
}
