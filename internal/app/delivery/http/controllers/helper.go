package controllers

import (
	"context"
	"errors"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultHandlerTimeout = 30 * time.Second

// requestIDFrom fails the request when the request id middleware did not run.
func requestIDFrom(log *zap.Logger, w http.ResponseWriter, r *http.Request, handler string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		log.Error(handler + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	log.Info(handler+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return requestID, true
}

// decodeAndValidate reads a JSON body into dst and runs its validate tags.
func decodeAndValidate(log *zap.Logger, w http.ResponseWriter, r *http.Request, handler, requestID string, dst any) bool {
	return decodeJSON(log, w, r, handler, requestID, dst) && validate(log, w, handler, requestID, dst)
}

func decodeJSON(log *zap.Logger, w http.ResponseWriter, r *http.Request, handler, requestID string, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Error(handler+" error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseJSON(err))
		return false
	}
	return true
}

func validate(log *zap.Logger, w http.ResponseWriter, handler, requestID string, dst any) bool {
	if err := utils.ValidateStruct(dst); err != nil {
		log.Error(handler+" validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrInputValidation(err))
		return false
	}
	return true
}

// parseMultipart parses the form in memory up to limitMegabytes and spills
// the rest to temporary files.
func parseMultipart(log *zap.Logger, w http.ResponseWriter, r *http.Request, handler, requestID string, limitMegabytes int) bool {
	if err := r.ParseMultipartForm(int64(limitMegabytes) << 20); err != nil {
		log.Error(handler+" error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			utils.BuildErrorResponse(log, w, exceptions.ErrRequestBodyTooLarge(err, limitMegabytes))
			return false
		}
		utils.BuildErrorResponse(log, w, exceptions.ErrCannotParseMultipartForm(err))
		return false
	}
	return true
}

func respondUsecaseError(log *zap.Logger, w http.ResponseWriter, handler, requestID string, err error) {
	log.Error(handler+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}

func respondSuccess(log *zap.Logger, w http.ResponseWriter, handler, requestID string, code int, message string, data any) {
	log.Info(handler+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, code, message, data)
}
