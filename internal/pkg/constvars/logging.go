package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingRedisKey              = "redis_key"
	LoggingSessionIDKey          = "session_id"
	LoggingFileIDKey             = "file_id"
	LoggingFileNameKey           = "file_name"
	LoggingEditorIDKey           = "editor_id"
	LoggingDocumentKindKey       = "document_kind"
	LoggingRecordIDKey           = "record_id"
	LoggingCourierIDKey          = "courier_id"
	LoggingUserIDKey             = "user_id"
	LoggingBackendURLKey         = "backend_url"
	LoggingObjectKey             = "object_key"
	LoggingQueueKey              = "queue"
	LoggingCountKey              = "count"
	LoggingLockExpirationTimeKey = "lock_expiration"
	LoggingLockValueKey          = "lock_value"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingRetryAfterKey         = "retry_after"
	LoggingSubjectKey            = "subject"
	LoggingOperationKey          = "operation"
	LoggingErrorMessageKey       = "error_message"
)
