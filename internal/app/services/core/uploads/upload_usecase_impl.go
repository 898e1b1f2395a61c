package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
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
	"net/http"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	uploadUsecaseInstance contracts.UploadUsecase
	onceUploadUsecase     sync.Once
)

type uploadUsecase struct {
	RedisRepository    contracts.RedisRepository
	Storage            contracts.Storage
	LockerService      contracts.LockerService
	ResourceLimiter    contracts.ResourceLimiter
	ParserClient       contracts.DocumentParserClient
	BulletinClient     contracts.RecordBackendClient
	OrdonnanceClient   contracts.RecordBackendClient
	BulletinEditor     contracts.BulletinEditorUsecase
	PrescriptionEditor contracts.PrescriptionEditorUsecase
	EventPublisher     contracts.EventPublisher
	Mapper             *mapper.Mapper
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	Clock              func() time.Time
}

// UploadDependencies groups what the upload orchestrator talks to.
type UploadDependencies struct {
	RedisRepository    contracts.RedisRepository
	Storage            contracts.Storage
	LockerService      contracts.LockerService
	ResourceLimiter    contracts.ResourceLimiter
	ParserClient       contracts.DocumentParserClient
	BulletinClient     contracts.RecordBackendClient
	OrdonnanceClient   contracts.RecordBackendClient
	BulletinEditor     contracts.BulletinEditorUsecase
	PrescriptionEditor contracts.PrescriptionEditorUsecase
	EventPublisher     contracts.EventPublisher
	Mapper             *mapper.Mapper
}

func NewUploadUsecase(
	dependencies UploadDependencies,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UploadUsecase {
	onceUploadUsecase.Do(func() {
		uploadUsecaseInstance = &uploadUsecase{
			RedisRepository:    dependencies.RedisRepository,
			Storage:            dependencies.Storage,
			LockerService:      dependencies.LockerService,
			ResourceLimiter:    dependencies.ResourceLimiter,
			ParserClient:       dependencies.ParserClient,
			BulletinClient:     dependencies.BulletinClient,
			OrdonnanceClient:   dependencies.OrdonnanceClient,
			BulletinEditor:     dependencies.BulletinEditor,
			PrescriptionEditor: dependencies.PrescriptionEditor,
			EventPublisher:     dependencies.EventPublisher,
			Mapper:             dependencies.Mapper,
			InternalConfig:     internalConfig,
			Log:                logger,
			Clock:              time.Now,
		}
	})
	return uploadUsecaseInstance
}

func (uc *uploadUsecase) CreateSession(ctx context.Context, request *requests.CreateUploadSession) (*models.UploadSession, error) {
	now := uc.Clock()
	session := &models.UploadSession{
		ID:        uuid.NewString(),
		Embedded:  request.Embedded,
		Files:     []models.UploadFile{},
		CreatedAt: now,
	}
	if err := uc.storeSession(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("uploadUsecase.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.Bool("embedded", session.Embedded),
	)
	return session, nil
}

func (uc *uploadUsecase) GetSession(ctx context.Context, sessionID string) (*models.UploadSession, error) {
	return uc.loadSession(ctx, sessionID)
}

// CloseSession drops the staged objects and the session itself.
func (uc *uploadUsecase) CloseSession(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("uploadUsecase.CloseSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	release, err := uc.acquireSubmitLock(ctx, sessionID)
	if err != nil {
		return err
	}
	defer release()

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}

	for _, file := range session.Files {
		uc.removeStagedObject(ctx, sessionID, file)
	}
	return uc.RedisRepository.Delete(ctx, fmt.Sprintf(constvars.RedisKeyUploadSessionFormat, sessionID))
}

// ResetSession clears the sticky server error and puts every file back to
// pending so the batch can be submitted again.
func (uc *uploadUsecase) ResetSession(ctx context.Context, sessionID string) (*models.UploadSession, error) {
	release, err := uc.acquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.ServerError = ""
	session.IsUploading = false
	for i := range session.Files {
		session.Files[i].Status = models.UploadStatusPending
		session.Files[i].Error = ""
		session.Files[i].Kind = ""
	}
	if err := uc.storeSession(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("uploadUsecase.ResetSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return session, nil
}

// AddFiles applies the selection rules one file at a time. Rejected files are
// reported in the result and never fail the call.
func (uc *uploadUsecase) AddFiles(ctx context.Context, sessionID string, files []requests.SelectedFile) (*responses.AddFiles, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("uploadUsecase.AddFiles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingCountKey, len(files)),
	)

	if len(files) == 0 {
		return nil, exceptions.ErrNoFilesSelected(nil)
	}

	release, err := uc.acquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := &responses.AddFiles{Session: session}
	for _, selected := range files {
		rejection := uc.checkSelection(session, selected)
		if rejection == nil {
			selected.Content, rejection, err = sniffSelection(selected)
			if err != nil {
				return nil, err
			}
		}
		if rejection != nil {
			uc.Log.Info("uploadUsecase.AddFiles file rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFileNameKey, selected.Name),
				zap.String(constvars.LoggingErrorMessageKey, rejection.DevMessage),
			)
			result.Rejected = append(result.Rejected, responses.FileError{
				FileName: selected.Name,
				Message:  rejection.ClientMessage,
			})
			continue
		}

		file, err := uc.stageFile(ctx, sessionID, selected)
		if err != nil {
			return nil, err
		}
		session.Files = append(session.Files, *file)
	}

	if err := uc.storeSession(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("uploadUsecase.AddFiles succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingCountKey, len(session.Files)),
	)
	return result, nil
}

func (uc *uploadUsecase) RemoveFile(ctx context.Context, sessionID, fileID string) (*models.UploadSession, error) {
	release, err := uc.acquireSubmitLock(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	index := session.FileIndex(fileID)
	if index < 0 {
		return nil, exceptions.ErrUploadFileNotFound(nil, fileID)
	}

	uc.removeStagedObject(ctx, sessionID, session.Files[index])
	session.Files = slices.Delete(session.Files, index, index+1)
	if err := uc.storeSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// checkSelection returns why selected cannot join session, or nil.
func (uc *uploadUsecase) checkSelection(session *models.UploadSession, selected requests.SelectedFile) *exceptions.CustomError {
	intake := uc.InternalConfig.Intake
	contentType := normalizeContentType(selected.ContentType)

	switch {
	case len(session.Files) >= intake.MaxFiles:
		return exceptions.ErrTooManyFiles(nil, intake.MaxFiles)
	case !slices.Contains(intake.AllowedMimeTypes, contentType):
		return exceptions.ErrUnsupportedFileType(nil, selected.Name, selected.ContentType)
	case intake.MaxFileSizeInMegabyte > 0 && selected.Size > int64(intake.MaxFileSizeInMegabyte)<<20:
		return exceptions.ErrFileTooLarge(nil, selected.Name, selected.Size, intake.MaxFileSizeInMegabyte)
	case session.HasFile(selected.Name, selected.Size):
		return exceptions.ErrDuplicateFile(nil, selected.Name)
	}
	return nil
}

// sniffSelection checks the leading bytes of selected against its declared
// type. The returned reader replays those bytes ahead of the rest.
func sniffSelection(selected requests.SelectedFile) (io.Reader, *exceptions.CustomError, error) {
	head := make([]byte, constvars.ContentSniffLength)
	n, err := io.ReadFull(selected.Content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, nil, err
	}
	head = head[:n]
	content := io.MultiReader(bytes.NewReader(head), selected.Content)

	declared := normalizeContentType(selected.ContentType)
	detected := normalizeContentType(http.DetectContentType(head))
	if detected != declared {
		return content, exceptions.ErrFileContentMismatch(nil, selected.Name, declared, detected), nil
	}
	return content, nil, nil
}

func normalizeContentType(contentType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
}

func (uc *uploadUsecase) stageFile(ctx context.Context, sessionID string, selected requests.SelectedFile) (*models.UploadFile, error) {
	contentType := normalizeContentType(selected.ContentType)
	file := &models.UploadFile{
		ID:          uuid.NewString(),
		Name:        selected.Name,
		Size:        selected.Size,
		ContentType: contentType,
		Status:      models.UploadStatusPending,
	}

	objectKey := stagingKey(sessionID, *file)
	if err := uc.Storage.PutObject(ctx, objectKey, selected.Content, selected.Size, contentType); err != nil {
		uc.Log.Error("uploadUsecase.stageFile error staging file",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingObjectKey, objectKey),
			zap.Error(err),
		)
		return nil, err
	}

	file.Preview = uc.preview(ctx, file.ContentType, objectKey)
	return file, nil
}

// preview is a presigned URL for images and an icon for PDFs.
func (uc *uploadUsecase) preview(ctx context.Context, contentType, objectKey string) string {
	if !strings.HasPrefix(contentType, "image/") {
		return constvars.PreviewIconPDF
	}

	expiry := time.Duration(uc.InternalConfig.Intake.PreviewUrlExpiryInMinutes) * time.Minute
	url, err := uc.Storage.PresignedURL(ctx, objectKey, expiry)
	if err != nil {
		uc.Log.Warn("uploadUsecase.preview presign failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingObjectKey, objectKey),
			zap.Error(err),
		)
		return constvars.PreviewIconImage
	}
	return url
}

func (uc *uploadUsecase) removeStagedObject(ctx context.Context, sessionID string, file models.UploadFile) {
	objectKey := stagingKey(sessionID, file)
	if err := uc.Storage.RemoveObject(ctx, objectKey); err != nil {
		uc.Log.Warn("uploadUsecase.removeStagedObject failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingObjectKey, objectKey),
			zap.Error(err),
		)
	}
}

// acquireSubmitLock serialises every change to a session with its submit.
// A held lock means a submit is running.
func (uc *uploadUsecase) acquireSubmitLock(ctx context.Context, sessionID string) (func(), error) {
	key := fmt.Sprintf(constvars.RedisKeyUploadSubmitLockFormat, sessionID)
	ttl := time.Duration(uc.InternalConfig.Intake.SubmitLockTTLInSeconds) * time.Second

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, key, ttl)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrUploadInProgress(nil)
	}

	return func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), key, lockValue); err != nil {
			uc.Log.Warn("uploadUsecase.acquireSubmitLock unlock failed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}, nil
}

func (uc *uploadUsecase) loadSession(ctx context.Context, sessionID string) (*models.UploadSession, error) {
	session, err := redis.GetJSON[models.UploadSession](ctx, uc.RedisRepository, fmt.Sprintf(constvars.RedisKeyUploadSessionFormat, sessionID))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrUploadSessionNotFound(nil, sessionID)
	}
	return session, nil
}

func (uc *uploadUsecase) storeSession(ctx context.Context, session *models.UploadSession) error {
	session.UpdatedAt = uc.Clock()
	ttl := time.Duration(uc.InternalConfig.Intake.SessionTTLInMinutes) * time.Minute
	return uc.RedisRepository.Set(ctx, fmt.Sprintf(constvars.RedisKeyUploadSessionFormat, session.ID), session, ttl)
}

// stagingKey is where a selected file waits until submit. It is derived
// from the ids so it never has to be stored.
func stagingKey(sessionID string, file models.UploadFile) string {
	return path.Join(constvars.UploadDirectoryStaging, sessionID, file.ID+"_"+utils.SanitizeFileName(file.Name))
}
