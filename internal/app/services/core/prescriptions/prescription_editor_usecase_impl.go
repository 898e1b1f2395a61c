package prescriptions

import (
	"context"
	"fmt"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/models"
	"medintake-service/internal/app/services/shared/redis"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/mapper"
	"medintake-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	prescriptionEditorUsecaseInstance contracts.PrescriptionEditorUsecase
	oncePrescriptionEditorUsecase     sync.Once
)

type prescriptionEditorUsecase struct {
	RedisRepository  contracts.RedisRepository
	OrdonnanceClient contracts.RecordBackendClient
	EventPublisher   contracts.EventPublisher
	Exporter         contracts.WorkbookExporter
	Mapper           *mapper.Mapper
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
	Clock            func() time.Time
}

func NewPrescriptionEditorUsecase(
	redisRepository contracts.RedisRepository,
	ordonnanceClient contracts.RecordBackendClient,
	eventPublisher contracts.EventPublisher,
	exporter contracts.WorkbookExporter,
	fieldMapper *mapper.Mapper,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PrescriptionEditorUsecase {
	oncePrescriptionEditorUsecase.Do(func() {
		prescriptionEditorUsecaseInstance = &prescriptionEditorUsecase{
			RedisRepository:  redisRepository,
			OrdonnanceClient: ordonnanceClient,
			EventPublisher:   eventPublisher,
			Exporter:         exporter,
			Mapper:           fieldMapper,
			InternalConfig:   internalConfig,
			Log:              logger,
			Clock:            time.Now,
		}
	})
	return prescriptionEditorUsecaseInstance
}

// Open builds an editor from a stored record or an OCR payload, or
// repopulates the editor named by EditorID while keeping its saved record.
func (uc *prescriptionEditorUsecase) Open(ctx context.Context, request *requests.OpenEditor) (*responses.PrescriptionEditor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionEditorUsecase.Open called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, request.RecordID),
		zap.String(constvars.LoggingEditorIDKey, request.EditorID),
	)

	var existing *models.PrescriptionEditor
	if request.EditorID != "" {
		var err error
		existing, err = uc.load(ctx, request.EditorID)
		if err != nil {
			return nil, err
		}
	}

	fields := request.Payload
	if request.RecordID > 0 {
		stored, err := uc.OrdonnanceClient.FindByID(ctx, request.RecordID)
		if err != nil {
			uc.Log.Error("prescriptionEditorUsecase.Open error fetching ordonnance",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		fields = stored
	}

	doc, err := mapper.IngestFields(fields, request.FileName)
	if err != nil {
		return nil, err
	}

	record := uc.Mapper.PopulatePrescription(doc)
	if existing != nil {
		record.Persistence = existing.Record.Persistence
	}
	if request.RecordID > 0 {
		record.Persistence = models.SavedAs(request.RecordID)
	}
	if existing == nil {
		return uc.OpenRecord(ctx, record)
	}

	mapper.CalculateTotals(record)
	existing.Record = record
	existing.EditMode = false
	existing.StatusAlertUntil = nil
	if err := uc.store(ctx, existing); err != nil {
		return nil, err
	}
	return responses.NewPrescriptionEditor(existing, uc.Clock()), nil
}

func (uc *prescriptionEditorUsecase) OpenRecord(ctx context.Context, record *models.PrescriptionRecord) (*responses.PrescriptionEditor, error) {
	mapper.CalculateTotals(record)
	editor := &models.PrescriptionEditor{
		ID:     uuid.NewString(),
		Record: record,
	}
	if err := uc.store(ctx, editor); err != nil {
		return nil, err
	}

	uc.Log.Info("prescriptionEditorUsecase.OpenRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEditorIDKey, editor.ID),
	)
	return responses.NewPrescriptionEditor(editor, uc.Clock()), nil
}

func (uc *prescriptionEditorUsecase) Get(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error) {
	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}
	return responses.NewPrescriptionEditor(editor, uc.Clock()), nil
}

func (uc *prescriptionEditorUsecase) EnterEditMode(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error) {
	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}

	editor.EditMode = true
	if err := uc.store(ctx, editor); err != nil {
		return nil, err
	}
	return responses.NewPrescriptionEditor(editor, uc.Clock()), nil
}

func (uc *prescriptionEditorUsecase) UpdateFields(ctx context.Context, editorID string, request *requests.UpdatePrescriptionFields) (*responses.PrescriptionEditor, error) {
	return uc.mutate(ctx, editorID, func(record *models.PrescriptionRecord) error {
		setString(&record.PharmacyName, request.PharmacyName)
		setString(&record.PharmacyAddress, request.PharmacyAddress)
		setString(&record.PharmacyContact, request.PharmacyContact)
		setString(&record.PharmacyFiscalID, request.PharmacyFiscalID)
		setString(&record.BeneficiaryID, request.BeneficiaryID)
		setString(&record.PatientIdentity, request.PatientIdentity)
		setString(&record.PrescriberCode, request.PrescriberCode)
		setString(&record.PrescriptionDate, request.PrescriptionDate)
		setString(&record.Regimen, request.Regimen)
		setString(&record.DispensationDate, request.DispensationDate)
		setString(&record.Executor, request.Executor)
		setString(&record.PharmacistCnamRef, request.PharmacistCnamRef)
		setString(&record.Total, request.Total)
		setString(&record.FooterName, request.FooterName)
		setString(&record.FooterAddress, request.FooterAddress)
		setString(&record.FooterContact, request.FooterContact)
		setString(&record.FooterFiscalID, request.FooterFiscalID)
		return nil
	})
}

func (uc *prescriptionEditorUsecase) AddItem(ctx context.Context, editorID string, request *requests.PrescriptionItem) (*responses.PrescriptionEditor, error) {
	return uc.mutate(ctx, editorID, func(record *models.PrescriptionRecord) error {
		record.Items = append(record.Items, itemFromRequest(request))
		return nil
	})
}

func (uc *prescriptionEditorUsecase) UpdateItem(ctx context.Context, editorID string, request *requests.PrescriptionItem) (*responses.PrescriptionEditor, error) {
	return uc.mutate(ctx, editorID, func(record *models.PrescriptionRecord) error {
		if request.Index < 0 || request.Index >= len(record.Items) {
			return exceptions.ErrItemIndexOutOfRange(nil, request.Index)
		}
		record.Items[request.Index] = itemFromRequest(request)
		return nil
	})
}

func (uc *prescriptionEditorUsecase) RemoveItem(ctx context.Context, editorID string, index int) (*responses.PrescriptionEditor, error) {
	return uc.mutate(ctx, editorID, func(record *models.PrescriptionRecord) error {
		if index < 0 || index >= len(record.Items) {
			return exceptions.ErrItemIndexOutOfRange(nil, index)
		}
		record.Items = append(record.Items[:index], record.Items[index+1:]...)
		return nil
	})
}

// Save creates the ordonnance on first save and updates it afterwards, then
// leaves edit mode. On failure the editor is left untouched.
func (uc *prescriptionEditorUsecase) Save(ctx context.Context, editorID string) (*responses.PrescriptionEditor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("prescriptionEditorUsecase.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEditorIDKey, editorID),
	)

	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}
	if !editor.EditMode {
		return nil, exceptions.ErrEditorNotInEditMode(nil, editorID)
	}

	mapper.CalculateTotals(editor.Record)
	payload := mapper.FlattenPrescription(editor.Record)
	currentID, saved := editor.Record.Persistence.RecordID()

	var id int64
	if saved {
		id, err = uc.OrdonnanceClient.Update(ctx, currentID, payload)
	} else {
		id, err = uc.OrdonnanceClient.Create(ctx, payload)
	}
	if err != nil {
		uc.Log.Error("prescriptionEditorUsecase.Save error saving ordonnance",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEditorIDKey, editorID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.Clock()
	alertUntil := now.Add(time.Duration(uc.InternalConfig.Editor.StatusAlertDurationInMilli) * time.Millisecond)
	editor.Record.Persistence = models.SavedAs(id)
	editor.StatusAlertUntil = &alertUntil
	editor.EditMode = false
	if err := uc.store(ctx, editor); err != nil {
		return nil, err
	}

	event := &requests.DocumentEvent{
		Kind:     string(models.DocumentKindPrescription),
		RecordID: id,
		FileName: editor.Record.FileName,
		Source:   constvars.EventSourceEditor,
		Created:  !saved,
		At:       now,
	}
	if err := uc.EventPublisher.PublishDocumentSaved(ctx, event); err != nil {
		uc.Log.Warn("prescriptionEditorUsecase.Save document event not published",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecordIDKey, id),
			zap.Error(err),
		)
	}

	uc.Log.Info("prescriptionEditorUsecase.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return responses.NewPrescriptionEditor(editor, now), nil
}

func (uc *prescriptionEditorUsecase) Export(ctx context.Context, editorID string) (*responses.Workbook, error) {
	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}

	content, err := uc.Exporter.PrescriptionWorkbook(editor.Record)
	if err != nil {
		uc.Log.Error("prescriptionEditorUsecase.Export error building workbook",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}

	name := editor.ID
	if id, saved := editor.Record.Persistence.RecordID(); saved {
		name = fmt.Sprintf("%d", id)
	}
	return &responses.Workbook{
		FileName: fmt.Sprintf("ordonnance-%s.xlsx", name),
		Content:  content,
	}, nil
}

// mutate applies change in edit mode and recomputes the totals.
func (uc *prescriptionEditorUsecase) mutate(ctx context.Context, editorID string, change func(record *models.PrescriptionRecord) error) (*responses.PrescriptionEditor, error) {
	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}
	if !editor.EditMode {
		return nil, exceptions.ErrEditorNotInEditMode(nil, editorID)
	}

	if err := change(editor.Record); err != nil {
		return nil, err
	}
	mapper.CalculateTotals(editor.Record)

	if err := uc.store(ctx, editor); err != nil {
		return nil, err
	}
	return responses.NewPrescriptionEditor(editor, uc.Clock()), nil
}

func (uc *prescriptionEditorUsecase) load(ctx context.Context, editorID string) (*models.PrescriptionEditor, error) {
	editor, err := redis.GetJSON[models.PrescriptionEditor](ctx, uc.RedisRepository, fmt.Sprintf(constvars.RedisKeyPrescriptionEditorFormat, editorID))
	if err != nil {
		return nil, err
	}
	if editor == nil || editor.Record == nil {
		return nil, exceptions.ErrEditorNotFound(nil, editorID)
	}
	return editor, nil
}

func (uc *prescriptionEditorUsecase) store(ctx context.Context, editor *models.PrescriptionEditor) error {
	editor.UpdatedAt = uc.Clock()
	ttl := time.Duration(uc.InternalConfig.Editor.SessionTTLInMinutes) * time.Minute
	return uc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisKeyPrescriptionEditorFormat, editor.ID), editor, ttl)
}

func itemFromRequest(request *requests.PrescriptionItem) models.PrescriptionItem {
	return models.PrescriptionItem{
		CodePCT:      request.CodePCT,
		Produit:      request.Produit,
		Forme:        request.Forme,
		Qte:          request.Qte,
		Puv:          request.Puv,
		MontantRes:   request.MontantRes,
		MontantPercu: request.MontantPercu,
		Nio:          request.Nio,
		PrLot:        request.PrLot,
	}
}

func setString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}
