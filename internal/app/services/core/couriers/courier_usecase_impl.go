package couriers

import (
	"context"
	"errors"
	"io"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/classifier"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/mapper"
	"medintake-service/internal/pkg/utils"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	courierUsecaseInstance contracts.CourierUsecase
	onceCourierUsecase     sync.Once
)

type courierUsecase struct {
	CourierClient      contracts.CourierBackendClient
	BulletinClient     contracts.RecordBackendClient
	OrdonnanceClient   contracts.RecordBackendClient
	BulletinEditor     contracts.BulletinEditorUsecase
	PrescriptionEditor contracts.PrescriptionEditorUsecase
	Mapper             *mapper.Mapper
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewCourierUsecase(
	courierClient contracts.CourierBackendClient,
	bulletinClient contracts.RecordBackendClient,
	ordonnanceClient contracts.RecordBackendClient,
	bulletinEditor contracts.BulletinEditorUsecase,
	prescriptionEditor contracts.PrescriptionEditorUsecase,
	fieldMapper *mapper.Mapper,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CourierUsecase {
	onceCourierUsecase.Do(func() {
		courierUsecaseInstance = &courierUsecase{
			CourierClient:      courierClient,
			BulletinClient:     bulletinClient,
			OrdonnanceClient:   ordonnanceClient,
			BulletinEditor:     bulletinEditor,
			PrescriptionEditor: prescriptionEditor,
			Mapper:             fieldMapper,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return courierUsecaseInstance
}

func (uc *courierUsecase) List(ctx context.Context) ([]models.Courier, error) {
	return uc.CourierClient.List(ctx)
}

// Review opens every file of a courier for review. Files that cannot be
// fetched or mapped are reported without failing the others.
func (uc *courierUsecase) Review(ctx context.Context, courierID int64) (*responses.CourierReview, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("courierUsecase.Review called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCourierIDKey, courierID),
	)

	courier, err := uc.CourierClient.FindByID(ctx, courierID)
	if err != nil {
		return nil, err
	}

	review := &responses.CourierReview{Courier: courier, Records: []responses.ReviewRecord{}}
	for _, file := range courier.Files {
		record, err := uc.reviewFile(ctx, file)
		if err != nil {
			uc.Log.Warn("courierUsecase.Review file skipped",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingRecordIDKey, file.ID),
				zap.Error(err),
			)
			review.Errors = append(review.Errors, responses.FileError{
				FileID:   strconv.FormatInt(file.ID, 10),
				FileName: courierFileName(file),
				Message:  clientMessage(err),
			})
			continue
		}
		review.Records = append(review.Records, *record)
	}
	review.SelectedIndex = responses.SelectReviewIndex(review.Records)

	uc.Log.Info("courierUsecase.Review succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(review.Records)),
	)
	return review, nil
}

func (uc *courierUsecase) reviewFile(ctx context.Context, file models.CourierFile) (*responses.ReviewRecord, error) {
	route, ok := classifier.RouteForCourierFile(file.Type)
	if !ok {
		return nil, exceptions.ErrUnclassifiable(nil, file.Type)
	}

	client := uc.BulletinClient
	if route.Kind == models.DocumentKindPrescription {
		client = uc.OrdonnanceClient
	}
	fields, err := client.FindByID(ctx, file.ID)
	if err != nil {
		return nil, err
	}
	stampDocumentType(fields, route.DocumentType)

	name := courierFileName(file)
	doc, err := mapper.IngestFields(fields, name)
	if err != nil {
		return nil, err
	}

	review := &responses.ReviewRecord{Kind: route.Kind, FileName: name}
	if route.Kind == models.DocumentKindPrescription {
		record := uc.Mapper.PopulatePrescription(doc)
		record.Persistence = models.SavedAs(file.ID)
		editor, err := uc.PrescriptionEditor.OpenRecord(ctx, record)
		if err != nil {
			return nil, err
		}
		review.EditorID = editor.ID
		review.Prescription = editor.Record
		return review, nil
	}

	record := uc.Mapper.PopulateBulletin(doc, nil)
	record.Persistence = models.SavedAs(file.ID)
	editor, err := uc.BulletinEditor.OpenRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	review.EditorID = editor.ID
	review.Bulletin = editor.Record
	return review, nil
}

func (uc *courierUsecase) Create(ctx context.Context, request *requests.CreateCourier) (*models.Courier, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("courierUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(request.Files)),
	)

	parts, err := uc.readSelection(request.Files, request.Types)
	if err != nil {
		return nil, err
	}

	courier, err := uc.CourierClient.Create(ctx, &requests.CourierCreate{
		Matricule:       request.Matricule,
		NomAdherent:     request.NomAdherent,
		NomBeneficiaire: request.NomBeneficiaire,
		Files:           parts,
		Types:           request.Types,
	})
	if err != nil {
		uc.Log.Error("courierUsecase.Create error creating courier",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(uc.Log, "courier_created", requestID,
		zap.Int64(constvars.LoggingCourierIDKey, courier.ID),
	)
	return courier, nil
}

func (uc *courierUsecase) AppendFiles(ctx context.Context, request *requests.AppendCourierFiles) (*models.Courier, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("courierUsecase.AppendFiles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingCourierIDKey, request.CourierID),
	)

	parts, err := uc.readSelection(request.Files, request.Types)
	if err != nil {
		return nil, err
	}
	return uc.CourierClient.AppendFiles(ctx, request.CourierID, parts, request.Types)
}

// readSelection applies the upload selection rules to a courier form. Unlike
// an upload session a courier form is all or nothing.
func (uc *courierUsecase) readSelection(files []requests.SelectedFile, types []string) ([]requests.UploadPart, error) {
	intake := uc.InternalConfig.Intake
	if len(files) == 0 {
		return nil, exceptions.ErrNoFilesSelected(nil)
	}
	if len(files) > intake.MaxFiles {
		return nil, exceptions.ErrTooManyFiles(nil, intake.MaxFiles)
	}
	if len(types) != len(files) {
		return nil, exceptions.ErrInputValidation(nil)
	}

	parts := make([]requests.UploadPart, 0, len(files))
	for i, file := range files {
		contentType := strings.ToLower(strings.TrimSpace(strings.Split(file.ContentType, ";")[0]))
		if !slices.Contains(intake.AllowedMimeTypes, contentType) {
			return nil, exceptions.ErrUnsupportedFileType(nil, file.Name, file.ContentType)
		}
		if intake.MaxFileSizeInMegabyte > 0 && file.Size > int64(intake.MaxFileSizeInMegabyte)<<20 {
			return nil, exceptions.ErrFileTooLarge(nil, file.Name, file.Size, intake.MaxFileSizeInMegabyte)
		}
		if slices.ContainsFunc(files[:i], func(other requests.SelectedFile) bool {
			return other.Name == file.Name && other.Size == file.Size
		}) {
			return nil, exceptions.ErrDuplicateFile(nil, file.Name)
		}

		content, err := io.ReadAll(file.Content)
		if err != nil {
			return nil, exceptions.ErrCannotParseMultipartForm(err)
		}
		parts = append(parts, requests.UploadPart{FileName: file.Name, ContentType: contentType, Content: content})
	}
	return parts, nil
}

// stampDocumentType tags a stored record so it classifies like a fresh OCR
// result.
func stampDocumentType(fields map[string]any, documentType string) {
	if fields == nil {
		return
	}
	header, ok := fields["header"].(map[string]any)
	if !ok {
		header = make(map[string]any)
		fields["header"] = header
	}
	header["documentType"] = documentType
}

func courierFileName(file models.CourierFile) string {
	if file.OriginalName != "" {
		return file.OriginalName
	}
	if file.Filename != "" {
		return file.Filename
	}
	return file.Path
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientParseFailed
}
