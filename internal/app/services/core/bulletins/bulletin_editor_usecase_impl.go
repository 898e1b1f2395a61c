package bulletins

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
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	bulletinEditorUsecaseInstance contracts.BulletinEditorUsecase
	onceBulletinEditorUsecase     sync.Once
)

type bulletinEditorUsecase struct {
	RedisRepository contracts.RedisRepository
	BulletinClient  contracts.RecordBackendClient
	EventPublisher  contracts.EventPublisher
	Exporter        contracts.WorkbookExporter
	Mapper          *mapper.Mapper
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	Clock           func() time.Time
}

func NewBulletinEditorUsecase(
	redisRepository contracts.RedisRepository,
	bulletinClient contracts.RecordBackendClient,
	eventPublisher contracts.EventPublisher,
	exporter contracts.WorkbookExporter,
	fieldMapper *mapper.Mapper,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BulletinEditorUsecase {
	onceBulletinEditorUsecase.Do(func() {
		bulletinEditorUsecaseInstance = &bulletinEditorUsecase{
			RedisRepository: redisRepository,
			BulletinClient:  bulletinClient,
			EventPublisher:  eventPublisher,
			Exporter:        exporter,
			Mapper:          fieldMapper,
			InternalConfig:  internalConfig,
			Log:             logger,
			Clock:           time.Now,
		}
	})
	return bulletinEditorUsecaseInstance
}

// Open builds an editor either from a stored backend record or from an OCR
// payload. Editors always start in view mode. Repopulating an existing editor
// keeps its patient relation and, without a new record id, its saved record.
func (uc *bulletinEditorUsecase) Open(ctx context.Context, request *requests.OpenEditor) (*responses.BulletinEditor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bulletinEditorUsecase.Open called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, request.RecordID),
		zap.String(constvars.LoggingEditorIDKey, request.EditorID),
	)

	var existing *models.BulletinEditor
	if request.EditorID != "" {
		var err error
		existing, err = uc.load(ctx, request.EditorID)
		if err != nil {
			return nil, err
		}
	}

	fields := request.Payload
	if request.RecordID > 0 {
		stored, err := uc.BulletinClient.FindByID(ctx, request.RecordID)
		if err != nil {
			uc.Log.Error("bulletinEditorUsecase.Open error fetching bulletin",
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

	if existing == nil {
		record := uc.Mapper.PopulateBulletin(doc, nil)
		if request.RecordID > 0 {
			record.Persistence = models.SavedAs(request.RecordID)
		}
		return uc.OpenRecord(ctx, record)
	}

	record := uc.Mapper.PopulateBulletin(doc, existing.Record)
	record.Persistence = existing.Record.Persistence
	if request.RecordID > 0 {
		record.Persistence = models.SavedAs(request.RecordID)
	}
	existing.Record = record
	existing.EditMode = false
	existing.StatusAlertUntil = nil
	if err := uc.store(ctx, existing); err != nil {
		return nil, err
	}

	uc.Log.Info("bulletinEditorUsecase.Open repopulated editor",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEditorIDKey, existing.ID),
	)
	return responses.NewBulletinEditor(existing, uc.Clock()), nil
}

func (uc *bulletinEditorUsecase) OpenRecord(ctx context.Context, record *models.BulletinRecord) (*responses.BulletinEditor, error) {
	editor := &models.BulletinEditor{
		ID:        uuid.NewString(),
		Record:    record,
		UpdatedAt: uc.Clock(),
	}
	if err := uc.store(ctx, editor); err != nil {
		return nil, err
	}

	uc.Log.Info("bulletinEditorUsecase.OpenRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEditorIDKey, editor.ID),
	)
	return responses.NewBulletinEditor(editor, uc.Clock()), nil
}

func (uc *bulletinEditorUsecase) Get(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}
	return responses.NewBulletinEditor(editor, uc.Clock()), nil
}

func (uc *bulletinEditorUsecase) EnterEditMode(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}

	editor.EditMode = true
	if err := uc.store(ctx, editor); err != nil {
		return nil, err
	}
	return responses.NewBulletinEditor(editor, uc.Clock()), nil
}

func (uc *bulletinEditorUsecase) UpdateFields(ctx context.Context, editorID string, request *requests.UpdateBulletinFields) (*responses.BulletinEditor, error) {
	return uc.mutate(ctx, editorID, func(record *models.BulletinRecord) error {
		setString(&record.Prenom, request.Prenom)
		setString(&record.Nom, request.Nom)
		setString(&record.Adresse, request.Adresse)
		setString(&record.CodePostal, request.CodePostal)
		setString(&record.RefDossier, request.RefDossier)
		setString(&record.PrenomMalade, request.PrenomMalade)
		setString(&record.NomMalade, request.NomMalade)
		setString(&record.NomPrenomMalade, request.NomPrenomMalade)
		setString(&record.DateNaissance, request.DateNaissance)
		setString(&record.NumTel, request.NumTel)
		setString(&record.DatePrevu, request.DatePrevu)
		setBool(&record.APCI, request.APCI)
		setBool(&record.MO, request.MO)
		setBool(&record.HospitalisationCheck, request.HospitalisationCheck)
		setBool(&record.SuiviGrossesseCheck, request.SuiviGrossesseCheck)
		if request.IdentifiantUnique != nil {
			record.IdentifiantUnique = mapper.CanonicalIdentifier(*request.IdentifiantUnique)
		}
		return nil
	})
}

func (uc *bulletinEditorUsecase) SetPatientRelation(ctx context.Context, editorID string, request *requests.SetPatientRelation) (*responses.BulletinEditor, error) {
	return uc.mutate(ctx, editorID, func(record *models.BulletinRecord) error {
		record.PatientRelation = models.PatientRelation(strings.ToLower(request.PatientRelation))
		return nil
	})
}

func (uc *bulletinEditorUsecase) SetInsuranceScheme(ctx context.Context, editorID string, request *requests.SetInsuranceScheme) (*responses.BulletinEditor, error) {
	return uc.mutate(ctx, editorID, func(record *models.BulletinRecord) error {
		record.InsuranceScheme = models.InsuranceScheme(strings.ToLower(request.InsuranceScheme))
		return nil
	})
}

func (uc *bulletinEditorUsecase) SetIdentifierBox(ctx context.Context, editorID string, request *requests.SetIdentifierBox) (*responses.BulletinEditor, error) {
	return uc.mutate(ctx, editorID, func(record *models.BulletinRecord) error {
		identifier, err := mapper.SetIdentifierBox(record.IdentifiantUnique, request.Index, request.Value)
		if err != nil {
			return err
		}
		record.IdentifiantUnique = identifier
		return nil
	})
}

func (uc *bulletinEditorUsecase) ReplaceSection(ctx context.Context, editorID string, request *requests.ReplaceSection) (*responses.BulletinEditor, error) {
	return uc.mutate(ctx, editorID, func(record *models.BulletinRecord) error {
		return uc.Mapper.ReplaceSection(record, request.Section, request.Rows)
	})
}

// Save persists the record and leaves edit mode.
func (uc *bulletinEditorUsecase) Save(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}
	if !editor.EditMode {
		return nil, exceptions.ErrEditorNotInEditMode(nil, editorID)
	}

	if err := uc.persist(ctx, editor); err != nil {
		return nil, err
	}
	editor.EditMode = false
	if err := uc.store(ctx, editor); err != nil {
		return nil, err
	}
	return responses.NewBulletinEditor(editor, uc.Clock()), nil
}

// Submit persists the record in whatever mode the editor is in.
func (uc *bulletinEditorUsecase) Submit(ctx context.Context, editorID string) (*responses.BulletinEditor, error) {
	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}

	if err := uc.persist(ctx, editor); err != nil {
		return nil, err
	}
	if err := uc.store(ctx, editor); err != nil {
		return nil, err
	}
	return responses.NewBulletinEditor(editor, uc.Clock()), nil
}

func (uc *bulletinEditorUsecase) Export(ctx context.Context, editorID string) (*responses.Workbook, error) {
	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}

	content, err := uc.Exporter.BulletinWorkbook(editor.Record)
	if err != nil {
		uc.Log.Error("bulletinEditorUsecase.Export error building workbook",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingEditorIDKey, editorID),
			zap.Error(err),
		)
		return nil, err
	}

	name := editor.Record.IdentifiantUnique
	if name == "" {
		name = editor.ID
	}
	return &responses.Workbook{
		FileName: fmt.Sprintf("bulletin-%s.xlsx", utils.SanitizeFileName(name)),
		Content:  content,
	}, nil
}

// persist creates the record on first save and updates it afterwards. The
// confirmation window starts only once the backend accepted the record.
func (uc *bulletinEditorUsecase) persist(ctx context.Context, editor *models.BulletinEditor) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("bulletinEditorUsecase.persist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEditorIDKey, editor.ID),
	)

	payload := mapper.FlattenBulletin(editor.Record)
	currentID, saved := editor.Record.Persistence.RecordID()

	var id int64
	var err error
	if saved {
		id, err = uc.BulletinClient.Update(ctx, currentID, payload)
	} else {
		id, err = uc.BulletinClient.Create(ctx, payload)
	}
	if err != nil {
		uc.Log.Error("bulletinEditorUsecase.persist error saving bulletin",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEditorIDKey, editor.ID),
			zap.Error(err),
		)
		return err
	}

	now := uc.Clock()
	alertUntil := now.Add(time.Duration(uc.InternalConfig.Editor.StatusAlertDurationInMilli) * time.Millisecond)
	editor.Record.Persistence = models.SavedAs(id)
	editor.StatusAlertUntil = &alertUntil

	event := &requests.DocumentEvent{
		Kind:     string(models.DocumentKindBulletin),
		RecordID: id,
		FileName: editor.Record.FileName,
		Source:   constvars.EventSourceEditor,
		Created:  !saved,
		At:       now,
	}
	if err := uc.EventPublisher.PublishDocumentSaved(ctx, event); err != nil {
		uc.Log.Warn("bulletinEditorUsecase.persist document event not published",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingRecordIDKey, id),
			zap.Error(err),
		)
	}

	uc.Log.Info("bulletinEditorUsecase.persist succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordIDKey, id),
	)
	return nil
}

func (uc *bulletinEditorUsecase) mutate(ctx context.Context, editorID string, apply func(record *models.BulletinRecord) error) (*responses.BulletinEditor, error) {
	editor, err := uc.load(ctx, editorID)
	if err != nil {
		return nil, err
	}
	if !editor.EditMode {
		return nil, exceptions.ErrEditorNotInEditMode(nil, editorID)
	}

	if err := apply(editor.Record); err != nil {
		return nil, err
	}
	if err := uc.store(ctx, editor); err != nil {
		return nil, err
	}
	return responses.NewBulletinEditor(editor, uc.Clock()), nil
}

func (uc *bulletinEditorUsecase) load(ctx context.Context, editorID string) (*models.BulletinEditor, error) {
	editor, err := redis.GetJSON[models.BulletinEditor](ctx, uc.RedisRepository, fmt.Sprintf(constvars.RedisKeyBulletinEditorFormat, editorID))
	if err != nil {
		return nil, err
	}
	if editor == nil || editor.Record == nil {
		return nil, exceptions.ErrEditorNotFound(nil, editorID)
	}
	return editor, nil
}

func (uc *bulletinEditorUsecase) store(ctx context.Context, editor *models.BulletinEditor) error {
	editor.UpdatedAt = uc.Clock()
	ttl := time.Duration(uc.InternalConfig.Editor.SessionTTLInMinutes) * time.Minute
	return uc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisKeyBulletinEditorFormat, editor.ID), editor, ttl)
}

func setString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}

func setBool(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}
