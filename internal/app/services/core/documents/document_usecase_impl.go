package documents

import (
	"context"
	"io"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/classifier"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/mapper"
	"medintake-service/internal/pkg/utils"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	documentUsecaseInstance contracts.DocumentUsecase
	onceDocumentUsecase     sync.Once
)

type documentUsecase struct {
	ParserClient       contracts.DocumentParserClient
	BulletinClient     contracts.RecordBackendClient
	OrdonnanceClient   contracts.RecordBackendClient
	PrescriptionClient contracts.PrescriptionBackendClient
	FileClient         contracts.FileBackendClient
	EventPublisher     contracts.EventPublisher
	Mapper             *mapper.Mapper
	Log                *zap.Logger
}

func NewDocumentUsecase(
	parserClient contracts.DocumentParserClient,
	bulletinClient contracts.RecordBackendClient,
	ordonnanceClient contracts.RecordBackendClient,
	prescriptionClient contracts.PrescriptionBackendClient,
	fileClient contracts.FileBackendClient,
	eventPublisher contracts.EventPublisher,
	fieldMapper *mapper.Mapper,
	logger *zap.Logger,
) contracts.DocumentUsecase {
	onceDocumentUsecase.Do(func() {
		documentUsecaseInstance = &documentUsecase{
			ParserClient:       parserClient,
			BulletinClient:     bulletinClient,
			OrdonnanceClient:   ordonnanceClient,
			PrescriptionClient: prescriptionClient,
			FileClient:         fileClient,
			EventPublisher:     eventPublisher,
			Mapper:             fieldMapper,
			Log:                logger,
		}
	})
	return documentUsecaseInstance
}

// Parse sends a single file to the typed parser, or to the auto-detecting
// one when no type is given, and returns the adapted document.
func (uc *documentUsecase) Parse(ctx context.Context, request *requests.ParseDocument) (*responses.ParsedDocument, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("documentUsecase.Parse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFileNameKey, request.File.Name),
	)

	content, err := io.ReadAll(request.File.Content)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	kind := KindOf(request.Type)
	raw, err := uc.ParserClient.Parse(ctx, kind, &requests.UploadPart{
		FileName:    request.File.Name,
		ContentType: request.File.ContentType,
		Content:     content,
	})
	if err != nil {
		return nil, err
	}

	fileName := request.FileName
	if fileName == "" {
		fileName = request.File.Name
	}
	doc, err := mapper.Ingest(raw, fileName)
	if err != nil {
		uc.Log.Error("documentUsecase.Parse error adapting payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFileNameKey, fileName),
			zap.Error(err),
		)
		return nil, exceptions.ErrParseFailed(err, fileName)
	}

	if kind == "" {
		// an unknown tag is left for the caller to pick
		kind, _ = classifier.Classify(doc)
	}

	uc.Log.Info("documentUsecase.Parse succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDocumentKindKey, string(kind)),
	)
	return &responses.ParsedDocument{Kind: kind, Document: doc}, nil
}

func (uc *documentUsecase) ListUploaded(ctx context.Context, kind models.DocumentKind) ([]models.UploadedDocument, error) {
	return uc.clientFor(kind).ListUploaded(ctx)
}

func (uc *documentUsecase) LatestUploaded(ctx context.Context, kind models.DocumentKind) (*models.LatestDocument, error) {
	return uc.clientFor(kind).LatestUploaded(ctx)
}

func (uc *documentUsecase) DeleteRecord(ctx context.Context, kind models.DocumentKind, id int64) error {
	uc.Log.Info("documentUsecase.DeleteRecord called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingDocumentKindKey, string(kind)),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return uc.clientFor(kind).Delete(ctx, id)
}

func (uc *documentUsecase) DeleteFile(ctx context.Context, id int64) error {
	uc.Log.Info("documentUsecase.DeleteFile called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return uc.FileClient.Delete(ctx, id)
}

// CreatePrescription maps a free form payload through the prescription
// mapper so the stored record carries computed totals.
func (uc *documentUsecase) CreatePrescription(ctx context.Context, payload map[string]any) (*responses.SavedPrescription, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("documentUsecase.CreatePrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doc, err := mapper.IngestFields(payload, "")
	if err != nil {
		return nil, err
	}
	record := uc.Mapper.PopulatePrescription(doc)

	id, err := uc.PrescriptionClient.Create(ctx, mapper.FlattenPrescription(record))
	if err != nil {
		uc.Log.Error("documentUsecase.CreatePrescription error creating prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	event := &requests.DocumentEvent{
		Kind:     string(models.DocumentKindPrescription),
		RecordID: id,
		FileName: record.FileName,
		Source:   constvars.EventSourceDocument,
		Created:  true,
		At:       time.Now(),
	}
	if err := uc.EventPublisher.PublishDocumentSaved(ctx, event); err != nil {
		uc.Log.Warn("documentUsecase.CreatePrescription document event not published",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("documentUsecase.CreatePrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return &responses.SavedPrescription{ID: id}, nil
}

func (uc *documentUsecase) FindPrescription(ctx context.Context, id int64) (*models.PrescriptionRecord, error) {
	fields, err := uc.PrescriptionClient.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	doc, err := mapper.IngestFields(fields, "")
	if err != nil {
		return nil, err
	}
	record := uc.Mapper.PopulatePrescription(doc)
	record.Persistence = models.SavedAs(id)
	return record, nil
}

func (uc *documentUsecase) clientFor(kind models.DocumentKind) contracts.RecordBackendClient {
	if kind == models.DocumentKindPrescription {
		return uc.OrdonnanceClient
	}
	return uc.BulletinClient
}

// KindOf maps a user supplied type (bulletin, ordonnance, prescription) to
// a document kind. Anything else means auto detection.
func KindOf(documentType string) models.DocumentKind {
	switch strings.ToLower(strings.TrimSpace(documentType)) {
	case constvars.CourierFileTypeBulletin, constvars.DocumentTypeBulletin:
		return models.DocumentKindBulletin
	case constvars.CourierFileTypeOrdonnance, constvars.DocumentTypePrescription:
		return models.DocumentKindPrescription
	default:
		return ""
	}
}
