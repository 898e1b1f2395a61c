package routers

import (
	"bytes"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/delivery/http/middlewares"
	"medintake-service/internal/pkg/constvars"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			RequestBodyLimitInMegabyte: 5,
		},
		Intake: config.AppIntake{
			SubmitTimeoutInSeconds: 30,
		},
	}
}

// newTestRouter mounts routes behind the request id middleware, as
// SetupRoutes does.
func newTestRouter(attach func(router chi.Router, m *middlewares.Middlewares)) http.Handler {
	m := &middlewares.Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: newTestInternalConfig(),
		Clock:          func() time.Time { return fixedNow },
	}
	router := chi.NewRouter()
	router.Use(m.RequestIDMiddleware)
	attach(router, m)
	return router
}

func bearer(t *testing.T, superuser bool) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":          "agent",
		"exp":          fixedNow.Add(time.Hour).Unix(),
		"is_superuser": superuser,
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(t *testing.T, handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set(constvars.HeaderAuthorization, bearer(t, false))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

type formFile struct {
	field       string
	name        string
	contentType string
	content     string
}

func multipartRequest(t *testing.T, method, target string, values map[string][]string, files ...formFile) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, list := range values {
		for _, value := range list {
			require.NoError(t, writer.WriteField(key, value))
		}
	}
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+file.field+`"; filename="`+file.name+`"`)
		header.Set(constvars.HeaderContentType, file.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte(file.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())
	return req
}
