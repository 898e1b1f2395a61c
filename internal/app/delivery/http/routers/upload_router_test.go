package routers

import (
	"bytes"
	"context"
	"medintake-service/internal/app/contracts/mocks"
	"medintake-service/internal/app/delivery/http/controllers"
	"medintake-service/internal/app/delivery/http/middlewares"
	"medintake-service/internal/app/models"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"medintake-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestUploadRouter(t *testing.T) {
	mockUploadUsecase := new(mocks.MockUploadUsecase)
	uploadController := &controllers.UploadController{
		Log:            zap.NewNop(),
		UploadUsecase:  mockUploadUsecase,
		InternalConfig: newTestInternalConfig(),
	}
	router := newTestRouter(func(router chi.Router, m *middlewares.Middlewares) {
		attachUploadRoutes(router, m, uploadController)
	})

	t.Run("Create Session With Empty Body", func(t *testing.T) {
		mockUploadUsecase.On("CreateSession", mock.Anything, &requests.CreateUploadSession{}).
			Return(&models.UploadSession{ID: "s1"}, nil).Once()

		rr := serve(t, router, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"s1"`)
	})

	t.Run("Create Embedded Session", func(t *testing.T) {
		mockUploadUsecase.On("CreateSession", mock.Anything, &requests.CreateUploadSession{Embedded: true}).
			Return(&models.UploadSession{ID: "s2", Embedded: true}, nil).Once()

		rr := serve(t, router, httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"embedded":true}`)))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/s1", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Unknown Session", func(t *testing.T) {
		mockUploadUsecase.On("GetSession", mock.Anything, "missing").
			Return(nil, exceptions.ErrUploadSessionNotFound(nil, "missing")).Once()

		rr := serve(t, router, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Add Files Reads Multipart Selection", func(t *testing.T) {
		mockUploadUsecase.On("AddFiles", mock.Anything, "s1", mock.MatchedBy(func(files []requests.SelectedFile) bool {
			return len(files) == 2 &&
				files[0].Name == "scan.jpg" && files[0].ContentType == constvars.MIMEImageJPEG &&
				files[1].Name == "rx.pdf" && files[1].ContentType == constvars.MIMEApplicationPDF
		})).Return(&responses.AddFiles{Session: &models.UploadSession{ID: "s1"}}, nil).Once()

		req := multipartRequest(t, http.MethodPost, "/s1/files", nil,
			formFile{field: constvars.FormFieldFiles, name: "scan.jpg", contentType: constvars.MIMEImageJPEG, content: "jpeg"},
			formFile{field: constvars.FormFieldFiles, name: "rx.pdf", contentType: constvars.MIMEApplicationPDF, content: "%PDF"},
		)
		rr := serve(t, router, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Add Files Without Multipart Body", func(t *testing.T) {
		rr := serve(t, router, httptest.NewRequest(http.MethodPost, "/s1/files", bytes.NewBufferString("{}")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Remove File", func(t *testing.T) {
		mockUploadUsecase.On("RemoveFile", mock.Anything, "s1", "f1").
			Return(&models.UploadSession{ID: "s1"}, nil).Once()

		rr := serve(t, router, httptest.NewRequest(http.MethodDelete, "/s1/files/f1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Submit Gets Its Own Deadline", func(t *testing.T) {
		mockUploadUsecase.On("Submit", mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			return ok && time.Until(deadline) > 20*time.Second
		}), "s1").Return(&responses.UploadOutcome{
			SelectedIndex: 0,
			Navigation:    &responses.Navigation{Target: constvars.ReviewNavigationTarget},
		}, nil).Once()

		rr := serve(t, router, httptest.NewRequest(http.MethodPost, "/s1/submit", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ReviewNavigationTarget)
	})

	t.Run("Submit Quota Sets Retry After", func(t *testing.T) {
		mockUploadUsecase.On("Submit", mock.Anything, "s2").
			Return(nil, exceptions.ErrSubmitQuotaExceeded(nil, "agent", 42)).Once()

		rr := serve(t, router, httptest.NewRequest(http.MethodPost, "/s2/submit", nil))

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "42", rr.Header().Get(constvars.HeaderRetryAfter))
	})

	t.Run("Submit Deadline Exceeded", func(t *testing.T) {
		mockUploadUsecase.On("Submit", mock.Anything, "s3").Return(nil, context.DeadlineExceeded).Once()

		rr := serve(t, router, httptest.NewRequest(http.MethodPost, "/s3/submit", nil))

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("Reset And Close", func(t *testing.T) {
		mockUploadUsecase.On("ResetSession", mock.Anything, "s1").Return(&models.UploadSession{ID: "s1"}, nil).Once()
		mockUploadUsecase.On("CloseSession", mock.Anything, "s1").Return(nil).Once()

		assert.Equal(t, http.StatusOK, serve(t, router, httptest.NewRequest(http.MethodPost, "/s1/reset", nil)).Code)
		assert.Equal(t, http.StatusOK, serve(t, router, httptest.NewRequest(http.MethodDelete, "/s1", nil)).Code)
	})

	mockUploadUsecase.AssertExpectations(t)
}
