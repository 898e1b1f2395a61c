package requester

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"medintake-service/internal/app/config"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const maxLoggedBodyBytes = 512

// Requester sends every outbound call to the OCR backend. It waits on a
// shared token bucket, forwards the caller's bearer token and request id,
// and turns non-2xx answers into CustomErrors.
type Requester struct {
	BaseUrl string
	Client  *http.Client
	Limiter *rate.Limiter
	Log     *zap.Logger
}

func NewRequester(internalConfig *config.InternalConfig, logger *zap.Logger) *Requester {
	backend := internalConfig.Backend

	limit := rate.Inf
	if backend.RateLimitPerSecond > 0 {
		limit = rate.Limit(backend.RateLimitPerSecond)
	}
	burst := backend.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	return &Requester{
		BaseUrl: strings.TrimRight(backend.BaseUrl, "/"),
		Client: &http.Client{
			Timeout: time.Duration(backend.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(limit, burst),
		Log:     logger,
	}
}

// Response is a fully read backend answer.
type Response struct {
	StatusCode int
	Body       []byte
}

// Send performs one request and returns the body of a 2xx answer. Any other
// status becomes ErrBackendStatus; the Response is still returned so callers
// can branch on the code.
func (r *Requester) Send(ctx context.Context, method, path string, body io.Reader, contentType, resource string) (*Response, error) {
	requestID := utils.GetRequestID(ctx)
	url := r.BaseUrl + path

	if err := r.Limiter.Wait(ctx); err != nil {
		r.Log.Error("Requester.Send error waiting on rate limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendURLKey, url),
			zap.Error(err),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, exceptions.ErrRateLimiterWait(err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		r.Log.Error("Requester.Send error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	if contentType != "" {
		req.Header.Set(constvars.HeaderContentType, contentType)
	}
	req.Header.Set("Accept", constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if token := utils.GetBearerToken(ctx); token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
	}

	start := time.Now()
	resp, err := r.Client.Do(req)
	if err != nil {
		r.Log.Error("Requester.Send error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBackendURLKey, url),
			zap.Error(err),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	r.Log.Info("Requester.Send backend answered",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingBackendURLKey, url),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)

	response := &Response{StatusCode: resp.StatusCode, Body: respBody}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return response, exceptions.ErrBackendStatus(errors.New(snippet(respBody)), resp.StatusCode, resource)
	}
	return response, nil
}

// SendJSON marshals payload (when not nil) and decodes a 2xx answer into out
// (when not nil).
func (r *Requester) SendJSON(ctx context.Context, method, path string, payload, out any, resource string) (*Response, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		body = bytes.NewReader(encoded)
		contentType = constvars.MIMEApplicationJSON
	}

	resp, err := r.Send(ctx, method, path, body, contentType, resource)
	if err != nil {
		return resp, err
	}
	if out != nil {
		if err := Decode(resp.Body, out, resource); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

// MultipartForm is a form with plain fields plus file parts under one field.
type MultipartForm struct {
	Fields    map[string][]string
	FileField string
	Files     []requests.UploadPart
}

func (r *Requester) SendMultipart(ctx context.Context, path string, form *MultipartForm, out any, resource string) (*Response, error) {
	body, contentType, err := BuildMultipart(form)
	if err != nil {
		return nil, err
	}

	resp, err := r.Send(ctx, constvars.MethodPost, path, body, contentType, resource)
	if err != nil {
		return resp, err
	}
	if out != nil {
		if err := Decode(resp.Body, out, resource); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

func BuildMultipart(form *MultipartForm) (*bytes.Buffer, string, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	for name, values := range form.Fields {
		for _, value := range values {
			if err := writer.WriteField(name, value); err != nil {
				return nil, "", exceptions.ErrBuildMultipart(err)
			}
		}
	}

	for _, file := range form.Files {
		header := make(textproto.MIMEHeader)
		header.Set(constvars.HeaderContentDisposition,
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, escapeQuotes(form.FileField), escapeQuotes(file.FileName)))
		contentType := file.ContentType
		if contentType == "" {
			contentType = constvars.MIMEOctetStream
		}
		header.Set(constvars.HeaderContentType, contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", exceptions.ErrBuildMultipart(err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", exceptions.ErrBuildMultipart(err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", exceptions.ErrBuildMultipart(err)
	}
	return body, writer.FormDataContentType(), nil
}

func Decode(body []byte, out any, resource string) error {
	if err := json.Unmarshal(body, out); err != nil {
		return exceptions.ErrDecodeBackendResponse(err, resource)
	}
	return nil
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}

func snippet(body []byte) string {
	if len(body) > maxLoggedBodyBytes {
		body = body[:maxLoggedBodyBytes]
	}
	return strings.TrimSpace(string(body))
}
