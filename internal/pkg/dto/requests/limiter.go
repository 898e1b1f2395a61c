package requests

import "time"

// ApplyResourceLimiter configures one fixed-window evaluation.
type ApplyResourceLimiter struct {
	// ResourceName is the entity being limited, e.g. a token subject.
	ResourceName string
	// LimiterGroupName namespaces the key, e.g. upload-submit.
	LimiterGroupName  string
	WindowDurationSec int
	MaxQuota          int
	// NowUTC defaults to time.Now().UTC() when zero.
	NowUTC time.Time
}
