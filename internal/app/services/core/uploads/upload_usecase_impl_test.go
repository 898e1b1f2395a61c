package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/contracts/mocks"
	"medintake-service/internal/app/models"
	"medintake-service/internal/app/services/shared/redis"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/mapper"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type uploadFixture struct {
	usecase      *uploadUsecase
	redis        *mocks.MemoryRedis
	storage      *mocks.MockStorage
	locker       *mocks.MockLockerService
	limiter      *mocks.MockResourceLimiter
	parser       *mocks.MockDocumentParserClient
	bulletins    *mocks.MockRecordBackendClient
	ordonnances  *mocks.MockRecordBackendClient
	bulletinEd   *mocks.MockBulletinEditorUsecase
	prescription *mocks.MockPrescriptionEditorUsecase
	publisher    *mocks.MockEventPublisher
}

func newUploadFixture() *uploadFixture {
	f := &uploadFixture{
		redis:        mocks.NewMemoryRedis(),
		storage:      new(mocks.MockStorage),
		locker:       new(mocks.MockLockerService),
		limiter:      new(mocks.MockResourceLimiter),
		parser:       new(mocks.MockDocumentParserClient),
		bulletins:    new(mocks.MockRecordBackendClient),
		ordonnances:  new(mocks.MockRecordBackendClient),
		bulletinEd:   new(mocks.MockBulletinEditorUsecase),
		prescription: new(mocks.MockPrescriptionEditorUsecase),
		publisher:    new(mocks.MockEventPublisher),
	}
	f.usecase = &uploadUsecase{
		RedisRepository:    f.redis,
		Storage:            f.storage,
		LockerService:      f.locker,
		ResourceLimiter:    f.limiter,
		ParserClient:       f.parser,
		BulletinClient:     f.bulletins,
		OrdonnanceClient:   f.ordonnances,
		BulletinEditor:     f.bulletinEd,
		PrescriptionEditor: f.prescription,
		EventPublisher:     f.publisher,
		Mapper:             mapper.New(nil),
		InternalConfig: &config.InternalConfig{
			Intake: config.AppIntake{
				MaxFiles:                   3,
				MaxFileSizeInMegabyte:      1,
				AllowedMimeTypes:           []string{"image/jpeg", "image/png", "application/pdf"},
				ParseConcurrency:           2,
				SessionTTLInMinutes:        60,
				SubmitLockTTLInSeconds:     120,
				SubmitQuota:                30,
				SubmitQuotaWindowInSeconds: 60,
				PreviewUrlExpiryInMinutes:  15,
			},
		},
		Log:   zap.NewNop(),
		Clock: func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) },
	}
	f.locker.On("TryLock", mock.Anything, mock.Anything, 120*time.Second).Return(true, "lock-1", nil).Maybe()
	f.locker.On("Unlock", mock.Anything, mock.Anything, "lock-1").Return(nil).Maybe()
	f.locker.On("Refresh", mock.Anything, mock.Anything, "lock-1", 120*time.Second).Return(nil).Maybe()
	f.limiter.On("ApplyResourceLimiter", mock.Anything, mock.Anything).Return(&responses.ResourceLimit{Allowed: true}, nil).Maybe()
	f.publisher.On("PublishDocumentSaved", mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func (f *uploadFixture) seed(t *testing.T, session *models.UploadSession) {
	key := fmt.Sprintf(constvars.RedisKeyUploadSessionFormat, session.ID)
	require.NoError(t, f.redis.Set(context.Background(), key, session, time.Hour))
}

func (f *uploadFixture) stored(t *testing.T, sessionID string) *models.UploadSession {
	session, err := redis.GetJSON[models.UploadSession](context.Background(), f.redis, fmt.Sprintf(constvars.RedisKeyUploadSessionFormat, sessionID))
	require.NoError(t, err)
	require.NotNil(t, session)
	return session
}

// fileHeads are leading bytes that content detection recognizes.
var fileHeads = map[string]string{
	"image/jpeg":      "\xff\xd8\xff\xe0\x00\x10JFIF",
	"image/png":       "\x89PNG\r\n\x1a\n",
	"image/gif":       "GIF89a",
	"application/pdf": "%PDF-1.7\n",
}

func selected(name, contentType string, size int64) requests.SelectedFile {
	head := fileHeads[strings.TrimSpace(strings.Split(contentType, ";")[0])]
	return selectedWith(name, contentType, size, head+"body")
}

func selectedWith(name, contentType string, size int64, content string) requests.SelectedFile {
	return requests.SelectedFile{Name: name, ContentType: contentType, Size: size, Content: strings.NewReader(content)}
}

func statusOf(t *testing.T, err error) int {
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestUploadUsecase_Sessions(t *testing.T) {
	ctx := context.Background()

	t.Run("Create And Get", func(t *testing.T) {
		f := newUploadFixture()

		session, err := f.usecase.CreateSession(ctx, &requests.CreateUploadSession{Embedded: true})
		require.NoError(t, err)

		loaded, err := f.usecase.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.True(t, loaded.Embedded)
		assert.Empty(t, loaded.Files)
		assert.Equal(t, time.Hour, f.redis.TTL(fmt.Sprintf(constvars.RedisKeyUploadSessionFormat, session.ID)))
	})

	t.Run("Unknown Session", func(t *testing.T) {
		f := newUploadFixture()

		_, err := f.usecase.GetSession(ctx, "nope")

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("Reset Clears Sticky Error", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, &models.UploadSession{
			ID:          "s1",
			ServerError: "save failed",
			Files:       []models.UploadFile{{ID: "f1", Name: "a.jpg", Status: models.UploadStatusError, Error: "boom"}},
		})

		session, err := f.usecase.ResetSession(ctx, "s1")

		require.NoError(t, err)
		assert.Empty(t, session.ServerError)
		assert.Equal(t, models.UploadStatusPending, session.Files[0].Status)
		assert.Empty(t, session.Files[0].Error)
	})

	t.Run("Reset While Submitting", func(t *testing.T) {
		f := newUploadFixture()
		f.locker = new(mocks.MockLockerService)
		f.usecase.LockerService = f.locker
		f.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		_, err := f.usecase.ResetSession(ctx, "s1")

		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})

	t.Run("Close Removes Staged Files", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, &models.UploadSession{ID: "s1", Files: []models.UploadFile{{ID: "f1", Name: "a.jpg"}}})
		f.storage.On("RemoveObject", mock.Anything, "staging/s1/f1_a.jpg").Return(nil)

		err := f.usecase.CloseSession(ctx, "s1")

		require.NoError(t, err)
		assert.False(t, f.redis.Has(fmt.Sprintf(constvars.RedisKeyUploadSessionFormat, "s1")))
		f.storage.AssertExpectations(t)
	})
}

func TestUploadUsecase_AddFiles(t *testing.T) {
	ctx := context.Background()

	t.Run("Selection Rules", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, &models.UploadSession{ID: "s1", Files: []models.UploadFile{}})
		f.storage.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.storage.On("PresignedURL", mock.Anything, mock.Anything, 15*time.Minute).Return("https://minio.local/a.jpg?sig", nil)

		result, err := f.usecase.AddFiles(ctx, "s1", []requests.SelectedFile{
			selected("a.jpg", "image/jpeg", 100),
			selected("a.jpg", "image/jpeg", 100),
			selected("x.gif", "image/gif", 100),
			selected("big.pdf", "application/pdf", 2<<20),
			selected("b.pdf", "application/pdf", 200),
			selected("c.png", "image/png; charset=binary", 300),
			selected("d.png", "image/png", 400),
		})

		require.NoError(t, err)
		require.Len(t, result.Session.Files, 3)
		assert.Equal(t, "https://minio.local/a.jpg?sig", result.Session.Files[0].Preview)
		assert.Equal(t, constvars.PreviewIconPDF, result.Session.Files[1].Preview)
		assert.Equal(t, "image/png", result.Session.Files[2].ContentType)

		require.Len(t, result.Rejected, 4)
		assert.Equal(t, "a.jpg", result.Rejected[0].FileName)
		assert.Contains(t, result.Rejected[1].Message, "x.gif")
		assert.Contains(t, result.Rejected[2].Message, "big.pdf")
		assert.Contains(t, result.Rejected[3].Message, "3")

		assert.Len(t, f.stored(t, "s1").Files, 3)
	})

	t.Run("Presign Failure Falls Back To Icon", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, &models.UploadSession{ID: "s1"})
		f.storage.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.storage.On("PresignedURL", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("no signer"))

		result, err := f.usecase.AddFiles(ctx, "s1", []requests.SelectedFile{selected("a.png", "image/png", 10)})

		require.NoError(t, err)
		assert.Equal(t, constvars.PreviewIconImage, result.Session.Files[0].Preview)
	})

	t.Run("Content Must Match Declared Type", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, &models.UploadSession{ID: "s1"})
		var staged []byte
		f.storage.On("PutObject", mock.Anything, mock.Anything, mock.Anything, int64(len(fileHeads["application/pdf"])+4), "application/pdf").
			Run(func(args mock.Arguments) {
				staged, _ = io.ReadAll(args.Get(2).(io.Reader))
			}).
			Return(nil)

		result, err := f.usecase.AddFiles(ctx, "s1", []requests.SelectedFile{
			selectedWith("photo.png", "image/png", 10, fileHeads["application/pdf"]+"body"),
			selectedWith("notes.pdf", "application/pdf", 11, "plain text pretending"),
			selected("scan.pdf", "application/pdf", int64(len(fileHeads["application/pdf"])+4)),
		})

		require.NoError(t, err)
		require.Len(t, result.Session.Files, 1)
		assert.Equal(t, "scan.pdf", result.Session.Files[0].Name)
		assert.Equal(t, fileHeads["application/pdf"]+"body", string(staged))

		require.Len(t, result.Rejected, 2)
		assert.Equal(t, "photo.png", result.Rejected[0].FileName)
		assert.Contains(t, result.Rejected[1].Message, "notes.pdf")
	})

	t.Run("Empty Selection", func(t *testing.T) {
		f := newUploadFixture()

		_, err := f.usecase.AddFiles(ctx, "s1", nil)

		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("Remove Unknown File", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, &models.UploadSession{ID: "s1"})

		_, err := f.usecase.RemoveFile(ctx, "s1", "ghost")

		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

const (
	bulletinOCR     = `{"header":{"documentType":"bulletin_de_soin"},"prenom":"Amel","nom":"Trabelsi"}`
	prescriptionOCR = `{"header":{"documentType":"ordonnance"},"pharmacyName":"Pharmacie du Lac","total":"12"}`
)

func twoFileSession(embedded bool) *models.UploadSession {
	return &models.UploadSession{
		ID:       "s1",
		Embedded: embedded,
		Files: []models.UploadFile{
			{ID: "f1", Name: "bs.jpg", ContentType: "image/jpeg", Status: models.UploadStatusPending},
			{ID: "f2", Name: "ord.pdf", ContentType: "application/pdf", Status: models.UploadStatusPending},
		},
	}
}

func (f *uploadFixture) expectParses(bulletinRaw, prescriptionRaw string, bulletinErr, prescriptionErr error) {
	f.storage.On("GetObject", mock.Anything, "staging/s1/f1_bs.jpg").Return([]byte("jpg"), nil)
	f.storage.On("GetObject", mock.Anything, "staging/s1/f2_ord.pdf").Return([]byte("pdf"), nil)
	f.parser.On("Parse", mock.Anything, models.DocumentKind(""), mock.MatchedBy(func(part *requests.UploadPart) bool {
		return part.FileName == "bs.jpg"
	})).Return([]byte(bulletinRaw), bulletinErr)
	f.parser.On("Parse", mock.Anything, models.DocumentKind(""), mock.MatchedBy(func(part *requests.UploadPart) bool {
		return part.FileName == "ord.pdf"
	})).Return([]byte(prescriptionRaw), prescriptionErr)
}

func (f *uploadFixture) expectBulletinGroup() {
	f.bulletins.On("UploadFiles", mock.Anything, mock.Anything).Return(nil)
	f.bulletins.On("Create", mock.Anything, mock.AnythingOfType("*requests.BulletinPayload")).Return(int64(10), nil)
	f.bulletinEd.On("OpenRecord", mock.Anything, mock.Anything).Return(&responses.BulletinEditor{
		ID:     "ed-b",
		Record: &models.BulletinRecord{Persistence: models.SavedAs(10), Prenom: "Amel"},
	}, nil)
	f.storage.On("CopyObject", mock.Anything, "staging/s1/f1_bs.jpg", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "bulletins/s1/")
	})).Return(nil)
}

func (f *uploadFixture) expectPrescriptionGroup() {
	f.ordonnances.On("UploadFiles", mock.Anything, mock.Anything).Return(nil)
	f.ordonnances.On("Create", mock.Anything, mock.AnythingOfType("*requests.PrescriptionPayload")).Return(int64(20), nil)
	f.prescription.On("OpenRecord", mock.Anything, mock.Anything).Return(&responses.PrescriptionEditor{
		ID:     "ed-p",
		Record: &models.PrescriptionRecord{Persistence: models.SavedAs(20)},
	}, nil)
	f.storage.On("CopyObject", mock.Anything, "staging/s1/f2_ord.pdf", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "ordonnances/s1/")
	})).Return(nil)
}

func TestUploadUsecase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Mixed Batch", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, twoFileSession(false))
		f.expectParses(bulletinOCR, prescriptionOCR, nil, nil)
		f.expectBulletinGroup()
		f.expectPrescriptionGroup()

		outcome, err := f.usecase.Submit(ctx, "s1")

		require.NoError(t, err)
		require.Len(t, outcome.Records, 2)
		assert.Equal(t, models.DocumentKindBulletin, outcome.Records[0].Kind)
		assert.Equal(t, "ed-p", outcome.Records[1].EditorID)
		assert.Equal(t, 1, outcome.SelectedIndex)
		require.NotNil(t, outcome.Navigation)
		assert.Equal(t, constvars.ReviewNavigationTarget, outcome.Navigation.Target)
		assert.Empty(t, outcome.Emitted)

		session := f.stored(t, "s1")
		assert.False(t, session.IsUploading)
		assert.Empty(t, session.ServerError)
		assert.Equal(t, models.UploadStatusSuccess, session.Files[0].Status)
		assert.Equal(t, models.DocumentKindPrescription, session.Files[1].Kind)

		f.publisher.AssertNumberOfCalls(t, "PublishDocumentSaved", 2)
		f.locker.AssertCalled(t, "Refresh", mock.Anything, "upload:session:s1:lock", "lock-1", 120*time.Second)
		f.locker.AssertCalled(t, "Unlock", mock.Anything, "upload:session:s1:lock", "lock-1")
	})

	t.Run("Embedded Session Emits Records", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, twoFileSession(true))
		f.expectParses(bulletinOCR, prescriptionOCR, nil, nil)
		f.expectBulletinGroup()
		f.expectPrescriptionGroup()

		outcome, err := f.usecase.Submit(ctx, "s1")

		require.NoError(t, err)
		assert.Nil(t, outcome.Navigation)
		assert.Len(t, outcome.Emitted, 2)
	})

	t.Run("Failing Group Leaves Other Group Saved", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, twoFileSession(false))
		f.expectParses(bulletinOCR, prescriptionOCR, nil, nil)
		f.expectBulletinGroup()
		f.ordonnances.On("UploadFiles", mock.Anything, mock.Anything).Return(errors.New("backend down"))

		outcome, err := f.usecase.Submit(ctx, "s1")

		require.NoError(t, err)
		require.Len(t, outcome.Records, 1)
		assert.Equal(t, 0, outcome.SelectedIndex)
		assert.Equal(t, constvars.BulletinNavigationTarget, outcome.Navigation.Target)
		require.Len(t, outcome.Errors, 1)
		assert.Equal(t, "ord.pdf", outcome.Errors[0].FileName)

		session := f.stored(t, "s1")
		assert.NotEmpty(t, session.ServerError)
		assert.Equal(t, models.UploadStatusSuccess, session.Files[0].Status)
		assert.Equal(t, models.UploadStatusError, session.Files[1].Status)
		f.ordonnances.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("One Failed Parse Is Not Fatal", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, twoFileSession(false))
		f.expectParses(bulletinOCR, "", nil, errors.New("ocr timeout"))
		f.expectBulletinGroup()

		outcome, err := f.usecase.Submit(ctx, "s1")

		require.NoError(t, err)
		require.Len(t, outcome.Records, 1)
		require.Len(t, outcome.Errors, 1)
		assert.Equal(t, constvars.ErrClientParseFailed, outcome.Errors[0].Message)
		assert.Equal(t, models.UploadStatusError, f.stored(t, "s1").Files[1].Status)
	})

	t.Run("Unclassifiable Document", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, twoFileSession(false))
		f.expectParses(bulletinOCR, `{"header":{"documentType":"facture"}}`, nil, nil)
		f.expectBulletinGroup()

		outcome, err := f.usecase.Submit(ctx, "s1")

		require.NoError(t, err)
		require.Len(t, outcome.Errors, 1)
		assert.Equal(t, constvars.ErrClientUnclassifiable, outcome.Errors[0].Message)
	})

	t.Run("Every Parse Failed", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, twoFileSession(false))
		f.expectParses("", "", errors.New("down"), errors.New("down"))

		_, err := f.usecase.Submit(ctx, "s1")

		assert.Equal(t, http.StatusUnprocessableEntity, statusOf(t, err))
		session := f.stored(t, "s1")
		assert.False(t, session.IsUploading)
		assert.Equal(t, models.UploadStatusError, session.Files[0].Status)
		assert.Equal(t, models.UploadStatusError, session.Files[1].Status)
	})

	t.Run("Submit Already Running", func(t *testing.T) {
		f := newUploadFixture()
		f.locker = new(mocks.MockLockerService)
		f.usecase.LockerService = f.locker
		f.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		_, err := f.usecase.Submit(ctx, "s1")

		assert.Equal(t, http.StatusConflict, statusOf(t, err))
	})

	t.Run("Quota Exceeded", func(t *testing.T) {
		f := newUploadFixture()
		f.limiter = new(mocks.MockResourceLimiter)
		f.usecase.ResourceLimiter = f.limiter
		f.limiter.On("ApplyResourceLimiter", mock.Anything, mock.MatchedBy(func(request *requests.ApplyResourceLimiter) bool {
			return request.ResourceName == "user-7" && request.LimiterGroupName == constvars.LimiterGroupUploadSubmit && request.MaxQuota == 30
		})).Return(&responses.ResourceLimit{Allowed: false, RetryAfterSecs: 42}, nil)
		claimsCtx := context.WithValue(ctx, constvars.CONTEXT_TOKEN_CLAIMS_KEY, &models.TokenClaims{Subject: "user-7"})

		_, err := f.usecase.Submit(claimsCtx, "s1")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusTooManyRequests, customErr.StatusCode)
		assert.Equal(t, 42, customErr.RetryAfterSeconds)
		f.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Empty Session", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, &models.UploadSession{ID: "s1"})

		_, err := f.usecase.Submit(ctx, "s1")

		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
}

func TestUploadUsecase_SubmitRecordIsolation(t *testing.T) {
	ctx := context.Background()

	t.Run("Failed Create Keeps Records Already Saved", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, &models.UploadSession{
			ID: "s1",
			Files: []models.UploadFile{
				{ID: "f1", Name: "bs1.jpg", ContentType: "image/jpeg", Status: models.UploadStatusPending},
				{ID: "f2", Name: "bs2.jpg", ContentType: "image/jpeg", Status: models.UploadStatusPending},
			},
		})
		f.storage.On("GetObject", mock.Anything, mock.Anything).Return([]byte("jpg"), nil)
		f.storage.On("CopyObject", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.parser.On("Parse", mock.Anything, models.DocumentKind(""), mock.Anything).Return([]byte(bulletinOCR), nil)
		f.bulletins.On("UploadFiles", mock.Anything, mock.Anything).Return(nil)
		f.bulletins.On("Create", mock.Anything, mock.Anything).Return(int64(10), nil).Once()
		f.bulletins.On("Create", mock.Anything, mock.Anything).Return(int64(0), errors.New("constraint violated")).Once()
		f.bulletinEd.On("OpenRecord", mock.Anything, mock.Anything).Return(&responses.BulletinEditor{
			ID:     "ed-b",
			Record: &models.BulletinRecord{Persistence: models.SavedAs(10)},
		}, nil)

		outcome, err := f.usecase.Submit(ctx, "s1")

		require.NoError(t, err)
		require.Len(t, outcome.Records, 1)
		assert.Equal(t, "ed-b", outcome.Records[0].EditorID)
		require.Len(t, outcome.Errors, 1)
		assert.Equal(t, constvars.ErrClientSaveFailed, outcome.Errors[0].Message)

		session := f.stored(t, "s1")
		assert.False(t, session.IsUploading)
		assert.Equal(t, constvars.ErrClientSaveFailed, session.ServerError)

		statuses := []models.UploadStatus{session.Files[0].Status, session.Files[1].Status}
		assert.ElementsMatch(t, []models.UploadStatus{models.UploadStatusSuccess, models.UploadStatusError}, statuses)
		f.bulletinEd.AssertNumberOfCalls(t, "OpenRecord", 1)
		f.publisher.AssertNumberOfCalls(t, "PublishDocumentSaved", 1)
	})

	t.Run("Failed Editor Open Is Reported For That File Only", func(t *testing.T) {
		f := newUploadFixture()
		f.seed(t, twoFileSession(false))
		f.expectParses(bulletinOCR, prescriptionOCR, nil, nil)
		f.expectBulletinGroup()
		f.ordonnances.On("UploadFiles", mock.Anything, mock.Anything).Return(nil)
		f.ordonnances.On("Create", mock.Anything, mock.Anything).Return(int64(20), nil)
		f.prescription.On("OpenRecord", mock.Anything, mock.Anything).Return(nil, errors.New("editor store down"))
		f.storage.On("CopyObject", mock.Anything, "staging/s1/f2_ord.pdf", mock.Anything).Return(nil)

		outcome, err := f.usecase.Submit(ctx, "s1")

		require.NoError(t, err)
		require.Len(t, outcome.Records, 1)
		require.Len(t, outcome.Errors, 1)
		assert.Equal(t, "ord.pdf", outcome.Errors[0].FileName)
		assert.Equal(t, models.UploadStatusError, f.stored(t, "s1").Files[1].Status)
	})
}

// cancellableRedis fails like a real client once its context is done.
type cancellableRedis struct {
	*mocks.MemoryRedis
}

func (r cancellableRedis) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.MemoryRedis.Set(ctx, key, value, exp)
}

func (r cancellableRedis) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.MemoryRedis.Get(ctx, key)
}

func (r cancellableRedis) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.MemoryRedis.Delete(ctx, key)
}

func TestUploadUsecase_SubmitCancelled(t *testing.T) {
	t.Run("Cancelled Request Leaves A Retryable Session", func(t *testing.T) {
		f := newUploadFixture()
		f.usecase.RedisRepository = cancellableRedis{MemoryRedis: f.redis}
		f.seed(t, twoFileSession(false))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		f.storage.On("GetObject", mock.Anything, mock.Anything).Return([]byte("jpg"), nil)
		f.parser.On("Parse", mock.Anything, models.DocumentKind(""), mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return(nil, context.Canceled)

		_, err := f.usecase.Submit(ctx, "s1")

		assert.ErrorIs(t, err, context.Canceled)
		session := f.stored(t, "s1")
		assert.False(t, session.IsUploading)
		assert.Equal(t, models.UploadStatusError, session.Files[0].Status)
		assert.Equal(t, models.UploadStatusError, session.Files[1].Status)
	})

	t.Run("Cancelled Mid Batch Still Stores The Final State", func(t *testing.T) {
		f := newUploadFixture()
		f.usecase.RedisRepository = cancellableRedis{MemoryRedis: f.redis}
		f.usecase.InternalConfig.Intake.ParseConcurrency = 1
		f.seed(t, twoFileSession(false))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		f.storage.On("GetObject", mock.Anything, mock.Anything).Return([]byte("jpg"), nil)
		f.parser.On("Parse", mock.Anything, models.DocumentKind(""), mock.MatchedBy(func(part *requests.UploadPart) bool {
			return part.FileName == "bs.jpg"
		})).Run(func(mock.Arguments) { cancel() }).Return([]byte(bulletinOCR), nil)
		f.parser.On("Parse", mock.Anything, models.DocumentKind(""), mock.MatchedBy(func(part *requests.UploadPart) bool {
			return part.FileName == "ord.pdf"
		})).Return(nil, context.Canceled)
		f.expectBulletinGroup()

		outcome, err := f.usecase.Submit(ctx, "s1")

		require.NoError(t, err)
		require.Len(t, outcome.Records, 1)
		session := f.stored(t, "s1")
		assert.False(t, session.IsUploading)
		assert.Equal(t, models.UploadStatusSuccess, session.Files[0].Status)
		assert.Equal(t, models.UploadStatusError, session.Files[1].Status)
	})

	t.Run("Abandoned Submit Releases Uploading Files", func(t *testing.T) {
		f := newUploadFixture()
		session := twoFileSession(false)
		session.IsUploading = true
		session.Files[0].Status = models.UploadStatusSuccess
		session.Files[1].Status = models.UploadStatusUploading

		f.usecase.abandonSubmit(context.Background(), session)

		stored := f.stored(t, "s1")
		assert.False(t, stored.IsUploading)
		assert.Equal(t, models.UploadStatusSuccess, stored.Files[0].Status)
		assert.Equal(t, models.UploadStatusError, stored.Files[1].Status)
		assert.Equal(t, constvars.ErrClientSubmitInterrupted, stored.Files[1].Error)
	})
}
