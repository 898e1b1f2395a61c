package parser

import (
	"context"
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
	parserClientInstance contracts.DocumentParserClient
	onceParserClient     sync.Once
)

type parserClient struct {
	Requester *requester.Requester
	Log       *zap.Logger
}

func NewDocumentParserClient(req *requester.Requester, logger *zap.Logger) contracts.DocumentParserClient {
	onceParserClient.Do(func() {
		parserClientInstance = &parserClient{
			Requester: req,
			Log:       logger,
		}
	})
	return parserClientInstance
}

// Parse posts one file to the typed parse endpoint for kind, or to the
// auto-detecting one when kind is empty. The raw OCR JSON is returned as is.
func (c *parserClient) Parse(ctx context.Context, kind models.DocumentKind, part *requests.UploadPart) ([]byte, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("parserClient.Parse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentKindKey, string(kind)),
		zap.String(constvars.LoggingFileNameKey, part.FileName),
	)

	path := constvars.BackendPathDocumentsParse
	switch kind {
	case models.DocumentKindBulletin:
		path = constvars.BackendPathBulletinParse
	case models.DocumentKindPrescription:
		path = constvars.BackendPathPrescriptionParse
	}

	resp, err := c.Requester.SendMultipart(ctx, path, &requester.MultipartForm{
		FileField: constvars.FormFieldFile,
		Files:     []requests.UploadPart{*part},
	}, nil, constvars.ResourceDocument)
	if err != nil {
		c.Log.Error("parserClient.Parse error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileNameKey, part.FileName),
			zap.Error(err),
		)
		return nil, err
	}
	return resp.Body, nil
}
