package exceptions

import (
	"fmt"
	"medintake-service/internal/pkg/constvars"
)

var (
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrRequestBodyTooLarge = func(err error, maxMegabytes int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooBig, fmt.Sprintf(constvars.ErrClientRequestBodyTooLarge, maxMegabytes), fmt.Sprintf(constvars.ErrDevRequestBodyTooLarge, maxMegabytes))
	}
)

// Authentication
var (
	ErrBearerTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevMissingBearerToken)
	}
	ErrBearerTokenInvalid = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevInvalidBearerToken)
	}
	ErrBearerTokenExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientSessionExpired, constvars.ErrDevTokenExpired)
	}
	ErrNotSuperuser = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAllowed, constvars.ErrDevNotSuperuser)
	}
	ErrEmptyUserUpdate = func(err error, userID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientNothingToUpdate, fmt.Sprintf(constvars.ErrDevEmptyUserUpdate, userID))
	}
	ErrInvalidCredentials = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientCredentialsIncorrect, constvars.ErrDevInvalidCredentials)
	}
	ErrLoginFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientLoginRetry, constvars.ErrDevLoginFailed)
	}
)

// Upload selection and orchestration
var (
	ErrUnsupportedFileType = func(err error, fileName, contentType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientUnsupportedFileType, fileName), fmt.Sprintf(constvars.ErrDevUnsupportedFileType, contentType))
	}
	ErrFileContentMismatch = func(err error, fileName, declared, detected string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientFileContentMismatch, fileName), fmt.Sprintf(constvars.ErrDevFileContentMismatch, declared, detected))
	}
	ErrDuplicateFile = func(err error, fileName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientDuplicateFile, fileName), constvars.ErrDevDuplicateFile)
	}
	ErrFileTooLarge = func(err error, fileName string, size int64, maxMegabytes int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooBig, fmt.Sprintf(constvars.ErrClientFileTooLarge, fileName, maxMegabytes), fmt.Sprintf(constvars.ErrDevFileTooLarge, size))
	}
	ErrTooManyFiles = func(err error, maxFiles int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientTooManyFiles, maxFiles), constvars.ErrDevTooManyFiles)
	}
	ErrNoFilesSelected = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientNoFilesSelected, constvars.ErrDevNoFiles)
	}
	ErrUploadInProgress = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientUploadInProgress, constvars.ErrDevUploadInProgress)
	}
	ErrSubmitQuotaExceeded = func(err error, subject string, retryAfterSeconds int) *CustomError {
		customErr := BuildNewCustomError(err, constvars.StatusTooManyRequests, fmt.Sprintf(constvars.ErrClientSubmitQuotaExceeded, retryAfterSeconds), fmt.Sprintf(constvars.ErrDevSubmitQuotaExceeded, subject))
		customErr.RetryAfterSeconds = retryAfterSeconds
		return customErr
	}
	ErrUploadSessionNotFound = func(err error, sessionID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientUploadSessionNotFound, fmt.Sprintf(constvars.ErrDevUploadSessionNotFound, sessionID))
	}
	ErrUploadFileNotFound = func(err error, fileID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientUploadFileNotFound, fmt.Sprintf(constvars.ErrDevUploadFileNotFound, fileID))
	}
	ErrAllParsesFailed = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessable, constvars.ErrClientAllParsesFailed, constvars.ErrDevAllParsesFailed)
	}
	ErrParseFailed = func(err error, fileName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessable, constvars.ErrClientParseFailed, fmt.Sprintf(constvars.ErrDevParseFailed, fileName))
	}
	ErrInvalidPayload = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientParseFailed, constvars.ErrDevInvalidPayload)
	}
	ErrUnclassifiable = func(err error, tag string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnprocessable, constvars.ErrClientUnclassifiable, fmt.Sprintf(constvars.ErrDevUnclassifiable, tag))
	}
	ErrGroupSaveFailed = func(err error, group string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSaveFailed, fmt.Sprintf(constvars.ErrDevGroupSaveFailed, group))
	}
	ErrRecordSaveFailed = func(err error, fileName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientSaveFailed, fmt.Sprintf(constvars.ErrDevRecordSaveFailed, fileName))
	}
	ErrSubmitInterrupted = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSubmitInterrupted, constvars.ErrDevSubmitInterrupted)
	}
)

// Form editors
var (
	ErrEditorNotFound = func(err error, editorID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientEditorNotFound, fmt.Sprintf(constvars.ErrDevEditorNotFound, editorID))
	}
	ErrEditorNotInEditMode = func(err error, editorID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientEditorNotInEditMode, fmt.Sprintf(constvars.ErrDevEditorNotInEditMode, editorID))
	}
	ErrIdentifierIndexOutOfRange = func(err error, index int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientIdentifierIndexOutOfRange, fmt.Sprintf(constvars.ErrDevIdentifierIndexOutOfRange, index))
	}
	ErrUnknownSection = func(err error, section string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientUnknownSection, section), fmt.Sprintf(constvars.ErrDevUnknownSection, section))
	}
	ErrItemIndexOutOfRange = func(err error, index int) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientItemIndexOutOfRange, fmt.Sprintf(constvars.ErrDevItemIndexOutOfRange, index))
	}
	ErrExportWorkbook = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientExportFailed, constvars.ErrDevExportWorkbook)
	}
)

// OCR backend
var (
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrBuildMultipart = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevBuildMultipart)
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientBackendUnavailable, constvars.ErrDevRateLimiterWait)
	}
	ErrDecodeBackendResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, fmt.Sprintf(constvars.ErrDevDecodeBackendResponse, resource))
	}
	// ErrBackendStatus keeps 4xx statuses so the caller sees what the backend
	// decided; 5xx collapses to 502.
	ErrBackendStatus = func(err error, statusCode int, resource string) *CustomError {
		devMessage := fmt.Sprintf(constvars.ErrDevBackendStatus, statusCode, resource)
		switch {
		case statusCode == constvars.StatusNotFound:
			return BuildNewCustomError(err, statusCode, constvars.ErrClientBackendNotFound, devMessage)
		case statusCode >= 400 && statusCode < 500:
			return BuildNewCustomError(err, statusCode, constvars.ErrClientBackendRejected, devMessage)
		default:
			return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientBackendUnavailable, devMessage)
		}
	}
)

// Infrastructure
var (
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSet)
	}
	ErrRedisGet = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDelete)
	}
	ErrRedisSetNX = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
	ErrRedisIncrement = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisIncrement, key))
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}
	ErrMinioPutObject = func(err error, bucket string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPutObject, bucket))
	}
	ErrMinioGetObject = func(err error, bucket string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioGetObject, bucket))
	}
	ErrMinioCopyObject = func(err error, bucket string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCopyObject, bucket))
	}
	ErrMinioRemoveObject = func(err error, bucket string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioRemoveObject, bucket))
	}
	ErrMinioListObjects = func(err error, bucket string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioListObjects, bucket))
	}
	ErrMinioPresign = func(err error, bucket string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioPresign, bucket))
	}
	ErrPublishEvent = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevPublishEvent, queue))
	}
)
