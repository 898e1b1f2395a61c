package config

import (
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Africa/Tunis"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:             utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"http://localhost:4200"}),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 60),
		},
		Backend: AppBackend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8000"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 120),
			RateLimitPerSecond:      utils.GetEnvFloat("BACKEND_RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:          utils.GetEnvInt("BACKEND_RATE_LIMIT_BURST", 5),
		},
		Intake: AppIntake{
			MaxFiles:              utils.GetEnvInt("INTAKE_MAX_FILES", 5),
			MaxFileSizeInMegabyte: utils.GetEnvInt("INTAKE_MAX_FILE_SIZE_IN_MEGABYTE", 10),
			AllowedMimeTypes: utils.GetEnvStringSlice("INTAKE_ALLOWED_MIME_TYPES", []string{
				constvars.MIMEImageJPEG,
				constvars.MIMEImagePNG,
				constvars.MIMEApplicationPDF,
			}),
			ParseConcurrency:           utils.GetEnvInt("INTAKE_PARSE_CONCURRENCY", 3),
			SessionTTLInMinutes:        utils.GetEnvInt("INTAKE_SESSION_TTL_IN_MINUTES", 60),
			SubmitLockTTLInSeconds:     utils.GetEnvInt("INTAKE_SUBMIT_LOCK_TTL_IN_SECONDS", 300),
			SubmitTimeoutInSeconds:     utils.GetEnvInt("INTAKE_SUBMIT_TIMEOUT_IN_SECONDS", 240),
			TrimHeaderTables:           utils.GetEnvStringSlice("INTAKE_TRIM_HEADER_TABLES", nil),
			SubmitQuota:                utils.GetEnvInt("INTAKE_SUBMIT_QUOTA", 30),
			SubmitQuotaWindowInSeconds: utils.GetEnvInt("INTAKE_SUBMIT_QUOTA_WINDOW_IN_SECONDS", 60),
			PreviewUrlExpiryInMinutes:  utils.GetEnvInt("INTAKE_PREVIEW_URL_EXPIRY_IN_MINUTES", 30),
			JanitorIntervalInMinutes:   utils.GetEnvInt("INTAKE_JANITOR_INTERVAL_IN_MINUTES", 10),
			StagingGraceInMinutes:      utils.GetEnvInt("INTAKE_STAGING_GRACE_IN_MINUTES", 5),
		},
		Editor: AppEditor{
			SessionTTLInMinutes:        utils.GetEnvInt("EDITOR_SESSION_TTL_IN_MINUTES", 120),
			StatusAlertDurationInMilli: utils.GetEnvInt("EDITOR_STATUS_ALERT_DURATION_IN_MILLI", 3000),
		},
		Minio: AppMinio{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "medintake-documents"),
		},
		RabbitMQ: AppRabbitMQ{
			DocumentEventsQueue: utils.GetEnvString("RABBITMQ_DOCUMENT_EVENTS_QUEUE", "medintake.document_events"),
		},
	}
}
