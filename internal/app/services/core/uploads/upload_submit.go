package uploads

import (
	"context"
	"errors"
	"fmt"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/classifier"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/mapper"
	"medintake-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// parsedFile is one file that went through the OCR backend.
type parsedFile struct {
	index   int
	file    models.UploadFile
	content []byte
	doc     *models.ExtractedDocument
	err     error
}

// groupOrder fixes the order in which groups are persisted and listed.
var groupOrder = []models.DocumentKind{models.DocumentKindBulletin, models.DocumentKindPrescription}

// Submit parses every file of the session, sorts the results by document
// kind and persists each kind on its own. One failing group never undoes
// the other.
func (uc *uploadUsecase) Submit(ctx context.Context, sessionID string) (*responses.UploadOutcome, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("uploadUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	if err := uc.applySubmitQuota(ctx, sessionID); err != nil {
		return nil, err
	}

	lockKey := fmt.Sprintf(constvars.RedisKeyUploadSubmitLockFormat, sessionID)
	lockTTL := time.Duration(uc.InternalConfig.Intake.SubmitLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrUploadInProgress(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.Log.Warn("uploadUsecase.Submit unlock failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	session, err := uc.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Files) == 0 {
		return nil, exceptions.ErrNoFilesSelected(nil)
	}

	// Session state outlives the caller: a dropped connection must not leave
	// files in uploading.
	persistCtx := context.WithoutCancel(ctx)

	for i := range session.Files {
		session.Files[i].Status = models.UploadStatusUploading
		session.Files[i].Error = ""
		session.Files[i].Kind = ""
	}
	session.IsUploading = true
	if err := uc.storeSession(persistCtx, session); err != nil {
		return nil, err
	}

	finished := false
	defer func() {
		if !finished {
			uc.abandonSubmit(persistCtx, session)
		}
	}()

	parsed := uc.parseAll(ctx, persistCtx, session)

	if err := uc.LockerService.Refresh(persistCtx, lockKey, lockValue, lockTTL); err != nil {
		uc.Log.Warn("uploadUsecase.Submit lock refresh failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	outcome := &responses.UploadOutcome{Session: session}
	groups := make(map[models.DocumentKind][]*parsedFile, len(groupOrder))
	succeeded := 0
	for _, result := range parsed {
		if result.err != nil {
			outcome.Errors = append(outcome.Errors, fileError(result.file, result.err))
			continue
		}
		succeeded++

		kind, err := classifier.Classify(result.doc)
		if err != nil {
			uc.markFile(session, result.index, models.UploadStatusError, err)
			outcome.Errors = append(outcome.Errors, fileError(result.file, err))
			continue
		}
		session.Files[result.index].Kind = kind
		groups[kind] = append(groups[kind], result)
	}

	if succeeded == 0 {
		session.IsUploading = false
		if err := uc.storeSession(persistCtx, session); err != nil {
			return nil, err
		}
		finished = true
		uc.Log.Error("uploadUsecase.Submit every parse failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, sessionID),
		)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, exceptions.ErrAllParsesFailed(nil)
	}

	for _, kind := range groupOrder {
		members := groups[kind]
		if len(members) == 0 {
			continue
		}

		records, failures, err := uc.persistGroup(ctx, session, kind, members)
		if err != nil {
			groupErr := exceptions.ErrGroupSaveFailed(err, string(kind))
			session.RecordServerError(groupErr.ClientMessage)
			for _, member := range members {
				uc.markFile(session, member.index, models.UploadStatusError, groupErr)
				outcome.Errors = append(outcome.Errors, fileError(member.file, groupErr))
			}
			uc.Log.Error("uploadUsecase.Submit group not saved",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDocumentKindKey, string(kind)),
				zap.Error(err),
			)
			continue
		}

		outcome.Records = append(outcome.Records, records...)
		for _, failure := range failures {
			session.RecordServerError(failure.err.ClientMessage)
			uc.markFile(session, failure.member.index, models.UploadStatusError, failure.err)
			outcome.Errors = append(outcome.Errors, fileError(failure.member.file, failure.err))
		}
	}

	session.IsUploading = false
	if err := uc.storeSession(persistCtx, session); err != nil {
		return nil, err
	}
	finished = true

	outcome.SelectedIndex = responses.SelectReviewIndex(outcome.Records)
	uc.route(session, outcome)

	utils.LogBusinessEvent(uc.Log, "upload_submitted", requestID,
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingCountKey, len(outcome.Records)),
	)
	return outcome, nil
}

// abandonSubmit runs when Submit returns before storing a final state. Files
// still in uploading become errors and the session is open for a retry.
func (uc *uploadUsecase) abandonSubmit(ctx context.Context, session *models.UploadSession) {
	interrupted := exceptions.ErrSubmitInterrupted(nil)
	for i := range session.Files {
		if session.Files[i].Status == models.UploadStatusUploading {
			uc.markFile(session, i, models.UploadStatusError, interrupted)
		}
	}
	session.IsUploading = false
	if err := uc.storeSession(ctx, session); err != nil {
		uc.Log.Error("uploadUsecase.abandonSubmit session not persisted",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
	}
}

// applySubmitQuota limits submits per token subject. Calls without claims
// are limited per session.
func (uc *uploadUsecase) applySubmitQuota(ctx context.Context, sessionID string) error {
	subject := sessionID
	if claims := utils.GetTokenClaims(ctx); claims != nil && claims.Subject != "" {
		subject = claims.Subject
	}

	limit, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &requests.ApplyResourceLimiter{
		ResourceName:      subject,
		LimiterGroupName:  constvars.LimiterGroupUploadSubmit,
		WindowDurationSec: uc.InternalConfig.Intake.SubmitQuotaWindowInSeconds,
		MaxQuota:          uc.InternalConfig.Intake.SubmitQuota,
	})
	if err != nil {
		return err
	}
	if !limit.Allowed {
		uc.Log.Warn("uploadUsecase.applySubmitQuota quota exceeded",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingSubjectKey, subject),
			zap.Int(constvars.LoggingRetryAfterKey, limit.RetryAfterSecs),
		)
		return exceptions.ErrSubmitQuotaExceeded(nil, subject, limit.RetryAfterSecs)
	}
	return nil
}

// parseAll sends every file to the parser with bounded concurrency. Branches
// never return an error so one failing file cannot cancel its siblings; each
// status change is persisted through persistCtx as soon as it is known.
func (uc *uploadUsecase) parseAll(ctx, persistCtx context.Context, session *models.UploadSession) []*parsedFile {
	results := make([]*parsedFile, len(session.Files))
	var mu sync.Mutex

	group := new(errgroup.Group)
	if limit := uc.InternalConfig.Intake.ParseConcurrency; limit > 0 {
		group.SetLimit(limit)
	}

	for i, file := range session.Files {
		group.Go(func() error {
			result := uc.parseOne(ctx, session.ID, i, file)

			mu.Lock()
			defer mu.Unlock()
			results[i] = result
			if result.err != nil {
				uc.markFile(session, i, models.UploadStatusError, result.err)
			} else {
				uc.markFile(session, i, models.UploadStatusSuccess, nil)
			}
			if err := uc.storeSession(persistCtx, session); err != nil {
				uc.Log.Warn("uploadUsecase.parseAll session not persisted",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
					zap.String(constvars.LoggingFileIDKey, file.ID),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	_ = group.Wait()
	return results
}

func (uc *uploadUsecase) parseOne(ctx context.Context, sessionID string, index int, file models.UploadFile) *parsedFile {
	result := &parsedFile{index: index, file: file}
	result.err = utils.LogOperation(uc.Log, "parse "+file.Name, utils.GetRequestID(ctx), func() error {
		content, err := uc.Storage.GetObject(ctx, stagingKey(sessionID, file))
		if err != nil {
			return err
		}
		result.content = content

		raw, err := uc.ParserClient.Parse(ctx, "", &requests.UploadPart{
			FileName:    file.Name,
			ContentType: file.ContentType,
			Content:     content,
		})
		if err != nil {
			return err
		}

		result.doc, err = mapper.Ingest(raw, file.Name)
		return err
	})
	return result
}

// memberFailure is a group member whose record could not be saved.
type memberFailure struct {
	member *parsedFile
	err    *exceptions.CustomError
}

// persistGroup uploads the raw files of one kind, archives them, then creates
// a record and opens an editor for each. Only the bulk upload fails the whole
// group; a record that cannot be saved is reported on its own and the records
// already saved are kept.
func (uc *uploadUsecase) persistGroup(ctx context.Context, session *models.UploadSession, kind models.DocumentKind, members []*parsedFile) ([]responses.ReviewRecord, []memberFailure, error) {
	requestID := utils.GetRequestID(ctx)
	route, _ := classifier.RouteFor(kind)
	client := uc.clientFor(kind)

	parts := make([]requests.UploadPart, 0, len(members))
	for _, member := range members {
		parts = append(parts, requests.UploadPart{
			FileName:    member.file.Name,
			ContentType: member.file.ContentType,
			Content:     member.content,
		})
	}
	if err := client.UploadFiles(ctx, parts); err != nil {
		return nil, nil, err
	}

	for _, member := range members {
		archiveKey := utils.GenerateObjectKey(route.UploadDirectory, session.ID, member.file.Name)
		if err := uc.Storage.CopyObject(ctx, stagingKey(session.ID, member.file), archiveKey); err != nil {
			uc.Log.Warn("uploadUsecase.persistGroup archive failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectKey, archiveKey),
				zap.Error(err),
			)
		}
	}

	records := make([]responses.ReviewRecord, 0, len(members))
	var failures []memberFailure
	for _, member := range members {
		record, err := uc.saveRecord(ctx, kind, client, member)
		if err != nil {
			uc.Log.Error("uploadUsecase.persistGroup record not saved",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingFileNameKey, member.file.Name),
				zap.Error(err),
			)
			failures = append(failures, memberFailure{member: member, err: exceptions.ErrRecordSaveFailed(err, member.file.Name)})
			continue
		}
		records = append(records, *record)

		event := &requests.DocumentEvent{
			Kind:     string(kind),
			RecordID: record.RecordID(),
			FileName: member.file.Name,
			Source:   constvars.EventSourceUpload,
			Created:  true,
			At:       uc.Clock(),
		}
		if err := uc.EventPublisher.PublishDocumentSaved(context.WithoutCancel(ctx), event); err != nil {
			uc.Log.Warn("uploadUsecase.persistGroup document event not published",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingRecordIDKey, event.RecordID),
				zap.Error(err),
			)
		}
	}
	return records, failures, nil
}

func (uc *uploadUsecase) saveRecord(ctx context.Context, kind models.DocumentKind, client contracts.RecordBackendClient, member *parsedFile) (*responses.ReviewRecord, error) {
	review := &responses.ReviewRecord{Kind: kind, FileName: member.file.Name}

	switch kind {
	case models.DocumentKindPrescription:
		record := uc.Mapper.PopulatePrescription(member.doc)
		id, err := client.Create(ctx, mapper.FlattenPrescription(record))
		if err != nil {
			return nil, err
		}
		record.Persistence = models.SavedAs(id)

		editor, err := uc.PrescriptionEditor.OpenRecord(ctx, record)
		if err != nil {
			return nil, err
		}
		review.EditorID = editor.ID
		review.Prescription = editor.Record
	default:
		record := uc.Mapper.PopulateBulletin(member.doc, nil)
		id, err := client.Create(ctx, mapper.FlattenBulletin(record))
		if err != nil {
			return nil, err
		}
		record.Persistence = models.SavedAs(id)

		editor, err := uc.BulletinEditor.OpenRecord(ctx, record)
		if err != nil {
			return nil, err
		}
		review.EditorID = editor.ID
		review.Bulletin = editor.Record
	}
	return review, nil
}

// route fills navigation for standalone sessions. Embedded sessions hand the
// records back to their host instead.
func (uc *uploadUsecase) route(session *models.UploadSession, outcome *responses.UploadOutcome) {
	if len(outcome.Records) == 0 {
		return
	}
	if session.Embedded {
		outcome.Emitted = outcome.Records
		return
	}

	target := constvars.ReviewNavigationTarget
	if len(outcome.Records) == 1 {
		if route, ok := classifier.RouteFor(outcome.Records[0].Kind); ok {
			target = route.NavigationTarget
		}
	}
	outcome.Navigation = &responses.Navigation{
		Target:        target,
		SelectedIndex: outcome.SelectedIndex,
	}
}

func (uc *uploadUsecase) clientFor(kind models.DocumentKind) contracts.RecordBackendClient {
	if kind == models.DocumentKindPrescription {
		return uc.OrdonnanceClient
	}
	return uc.BulletinClient
}

func (uc *uploadUsecase) markFile(session *models.UploadSession, index int, status models.UploadStatus, err error) {
	session.Files[index].Status = status
	session.Files[index].Error = ""
	if err != nil {
		session.Files[index].Error = clientMessage(err)
	}
}

func fileError(file models.UploadFile, err error) responses.FileError {
	return responses.FileError{
		FileID:   file.ID,
		FileName: file.Name,
		Message:  clientMessage(err),
	}
}

// clientMessage is the user facing text of err. Unknown errors become the
// generic parse failure.
func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return constvars.ErrClientParseFailed
}
