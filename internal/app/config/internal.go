package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Backend  AppBackend  `mapstructure:"backend"`
	Intake   AppIntake   `mapstructure:"intake"`
	Editor   AppEditor   `mapstructure:"editor"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string   `mapstructure:"env"`
	Port                       string   `mapstructure:"port"`
	Version                    string   `mapstructure:"version"`
	Timezone                   string   `mapstructure:"timezone"`
	EndpointPrefix             string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins             []string `mapstructure:"allowed_origins"`
	MaxRequests                int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int      `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds  int      `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte int      `mapstructure:"request_body_limit_in_megabyte"`
}

// AppBackend describes the OCR and records backend this service fronts.
type AppBackend struct {
	BaseUrl                 string  `mapstructure:"base_url"`
	RequestTimeoutInSeconds int     `mapstructure:"request_timeout_in_seconds"`
	RateLimitPerSecond      float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst          int     `mapstructure:"rate_limit_burst"`
}

type AppIntake struct {
	MaxFiles                   int      `mapstructure:"max_files"`
	MaxFileSizeInMegabyte      int      `mapstructure:"max_file_size_in_megabyte"`
	AllowedMimeTypes           []string `mapstructure:"allowed_mime_types"`
	ParseConcurrency           int      `mapstructure:"parse_concurrency"`
	SessionTTLInMinutes        int      `mapstructure:"session_ttl_in_minutes"`
	SubmitLockTTLInSeconds     int      `mapstructure:"submit_lock_ttl_in_seconds"`
	SubmitTimeoutInSeconds     int      `mapstructure:"submit_timeout_in_seconds"`
	TrimHeaderTables           []string `mapstructure:"trim_header_tables"`
	SubmitQuota                int      `mapstructure:"submit_quota"`
	SubmitQuotaWindowInSeconds int      `mapstructure:"submit_quota_window_in_seconds"`
	PreviewUrlExpiryInMinutes  int      `mapstructure:"preview_url_expiry_in_minutes"`
	JanitorIntervalInMinutes   int      `mapstructure:"janitor_interval_in_minutes"`
	StagingGraceInMinutes      int      `mapstructure:"staging_grace_in_minutes"`
}

type AppEditor struct {
	SessionTTLInMinutes        int `mapstructure:"session_ttl_in_minutes"`
	StatusAlertDurationInMilli int `mapstructure:"status_alert_duration_in_milli"`
}

type AppMinio struct {
	BucketName string `mapstructure:"bucket_name"`
}

type AppRabbitMQ struct {
	DocumentEventsQueue string `mapstructure:"document_events_queue"`
}
