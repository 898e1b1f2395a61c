package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":         "is required",
	"min":              "must be at least %s characters long",
	"max":              "maximum at %s characters long",
	"len":              "must be %s characters long",
	"oneof":            "must be one of [%s]",
	"gte":              "must be greater than or equal to %s",
	"lte":              "must be less than or equal to %s",
	"uuid":             "must be a valid UUID",
	"email":            "must be a valid email address",
	"patient_relation": "must be one of [self, spouse, child, ascendant]",
	"insurance_scheme": "must be one of [cnss, cnrps, convbi, none]",
	"document_type":    "must be one of [bulletin, bulletin_de_soin, ordonnance, prescription]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "we couldn't process your request, please try again"
	ErrClientSomethingWrongWithApplication = "something went wrong in our application, please try again later"
	ErrClientServerLongRespond             = "the server took too long to respond, please try again later"
	ErrClientCredentialsIncorrect          = "username or password is incorrect"
	ErrClientLoginRetry                    = "login failed, please try again later"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientSessionExpired                = "your session has expired, please log in again"
	ErrClientNotAllowed                    = "you are not allowed to perform this action"
	ErrClientNothingToUpdate               = "nothing to update"
	ErrClientUnsupportedFileType           = "file %s is not supported, only JPEG, PNG and PDF are accepted"
	ErrClientDuplicateFile                 = "file %s has already been added"
	ErrClientFileContentMismatch           = "the content of file %s does not match its type"
	ErrClientTooManyFiles                  = "you can upload at most %d files"
	ErrClientFileTooLarge                  = "file %s is larger than %d MB"
	ErrClientRequestBodyTooLarge           = "the request is larger than %d MB"
	ErrClientNoFilesSelected               = "please select at least one file"
	ErrClientUploadInProgress              = "an upload is already in progress for this session"
	ErrClientUploadSessionNotFound         = "upload session not found or expired"
	ErrClientUploadFileNotFound            = "file not found in this upload session"
	ErrClientAllParsesFailed               = "none of the documents could be processed, please try again"
	ErrClientSubmitInterrupted             = "the upload was interrupted, please try again"
	ErrClientParseFailed                   = "the document could not be processed"
	ErrClientUnclassifiable                = "the document type could not be recognized"
	ErrClientSaveFailed                    = "could not save your documents, please try again"
	ErrClientEditorNotFound                = "editor session not found or expired"
	ErrClientEditorNotInEditMode           = "switch to edit mode before changing this document"
	ErrClientIdentifierIndexOutOfRange     = "identifier box index must be between 0 and 11"
	ErrClientUnknownSection                = "unknown table section %s"
	ErrClientItemIndexOutOfRange           = "item index is out of range"
	ErrClientBackendUnavailable            = "the document service is unavailable, please try again later"
	ErrClientBackendRejected               = "the document service rejected the request"
	ErrClientBackendNotFound               = "the requested document was not found"
	ErrClientExportFailed                  = "could not export the document"
	ErrClientSubmitQuotaExceeded           = "too many submissions, please retry in %d seconds"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON body"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm  = "cannot parse multipart form"
	ErrDevURLParamValidationFailed  = "failed to validate url param %s"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevMissingRequestID          = "request id missing in context"
	ErrDevMissingBearerToken        = "bearer token missing in authorization header"
	ErrDevInvalidBearerToken        = "bearer token cannot be decoded"
	ErrDevTokenExpired              = "bearer token expired"
	ErrDevNotSuperuser              = "token does not carry superuser claim"
	ErrDevEmptyUserUpdate           = "user update for %d carries no field"
	ErrDevInvalidCredentials        = "backend rejected credentials"
	ErrDevLoginFailed               = "backend login failed"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevBackendStatus             = "backend responded with status %d for %s"
	ErrDevDecodeBackendResponse     = "failed to decode backend response for %s"
	ErrDevBuildMultipart            = "failed to build multipart body"
	ErrDevRateLimiterWait           = "outbound rate limiter wait failed"
	ErrDevUnsupportedFileType       = "unsupported content type %s"
	ErrDevDuplicateFile             = "duplicate file name and size"
	ErrDevFileContentMismatch       = "declared content type %s but detected %s"
	ErrDevFileTooLarge              = "file size %d exceeds limit"
	ErrDevRequestBodyTooLarge       = "request body exceeds %d MB"
	ErrDevTooManyFiles              = "file count exceeds the session limit"
	ErrDevNoFiles                   = "upload session has no files"
	ErrDevUploadInProgress          = "upload session lock not acquired"
	ErrDevUploadSessionNotFound     = "upload session %s not found"
	ErrDevUploadFileNotFound        = "file %s not found in session"
	ErrDevAllParsesFailed           = "every parse request failed"
	ErrDevParseFailed               = "parse failed for file %s"
	ErrDevInvalidPayload            = "OCR payload does not match schema"
	ErrDevUnclassifiable            = "document type tag %q is not classifiable"
	ErrDevGroupSaveFailed           = "saving %s group failed"
	ErrDevRecordSaveFailed          = "saving the record of file %s failed"
	ErrDevSubmitInterrupted         = "submit ended before every file reached a final status"
	ErrDevEditorNotFound            = "editor %s not found"
	ErrDevEditorNotInEditMode       = "editor %s is in view mode"
	ErrDevIdentifierIndexOutOfRange = "identifier index %d out of range"
	ErrDevUnknownSection            = "unknown section %s"
	ErrDevItemIndexOutOfRange       = "item index %d out of range"
	ErrDevRedisSet                  = "failed to set redis key"
	ErrDevRedisGet                  = "failed to get redis key %s"
	ErrDevRedisDelete               = "failed to delete redis key"
	ErrDevRedisSetNX                = "failed to set redis key if absent"
	ErrDevRedisIncrement            = "failed to increment redis key %s"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevSubmitQuotaExceeded       = "submit quota exceeded for %s"
	ErrDevMinioPutObject            = "failed to put object into bucket %s"
	ErrDevMinioGetObject            = "failed to get object from bucket %s"
	ErrDevMinioCopyObject           = "failed to copy object in bucket %s"
	ErrDevMinioRemoveObject         = "failed to remove object from bucket %s"
	ErrDevMinioPresign              = "failed to presign object in bucket %s"
	ErrDevMinioListObjects          = "failed to list objects in bucket %s"
	ErrDevPublishEvent              = "failed to publish event to queue %s"
	ErrDevExportWorkbook            = "failed to build workbook"
)
