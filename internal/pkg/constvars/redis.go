package constvars

const (
	RedisKeyUploadSessionFormat      = "upload:session:%s"
	RedisKeyUploadSubmitLockFormat   = "upload:session:%s:lock"
	RedisKeyBulletinEditorFormat     = "editor:bulletin:%s"
	RedisKeyPrescriptionEditorFormat = "editor:prescription:%s"
	RedisKeyResourceLimiterFormat    = "limiter:%s:%s:%d"
	RedisKeyStagingJanitorLock       = "upload:janitor:lock"
)

const (
	LimiterGroupUploadSubmit = "upload-submit"
)
