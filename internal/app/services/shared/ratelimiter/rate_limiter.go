package ratelimiter

import (
	"context"
	"fmt"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
	"strings"
	"time"

	"go.uber.org/zap"
)

// resourceLimiter is a fixed window counter stored in Redis with a TTL equal
// to the window length.
type resourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) contracts.ResourceLimiter {
	return &resourceLimiter{redis: redis, log: log}
}

// ApplyResourceLimiter counts one hit for group + resource. Once the quota is
// spent it reports the seconds left until the next window starts.
func (l *resourceLimiter) ApplyResourceLimiter(ctx context.Context, in *requests.ApplyResourceLimiter) (*responses.ResourceLimit, error) {
	if in == nil {
		return &responses.ResourceLimit{Allowed: false}, fmt.Errorf("nil limiter input")
	}

	resource := strings.ToLower(strings.TrimSpace(in.ResourceName))
	group := strings.ToUpper(strings.TrimSpace(in.LimiterGroupName))
	windowSec := in.WindowDurationSec
	if windowSec <= 0 {
		windowSec = 60
	}
	if in.MaxQuota <= 0 {
		return &responses.ResourceLimit{Allowed: true}, nil
	}
	if resource == "" || group == "" {
		return &responses.ResourceLimit{Allowed: false, RetryAfterSecs: windowSec}, nil
	}

	now := in.NowUTC
	if now.IsZero() {
		now = time.Now().UTC()
	}

	windowID := now.Unix() / int64(windowSec)
	key := fmt.Sprintf(constvars.RedisKeyResourceLimiterFormat, group, resource, windowID)

	ttl := time.Duration(windowSec)*time.Second + time.Second
	count, err := l.redis.IncrementWithTTL(ctx, key, ttl)
	if err != nil {
		l.log.Error("resourceLimiter.ApplyResourceLimiter increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return &responses.ResourceLimit{Allowed: false}, err
	}

	if count > in.MaxQuota {
		nextWindowStart := (windowID + 1) * int64(windowSec)
		return &responses.ResourceLimit{
			Allowed:        false,
			RetryAfterSecs: int(nextWindowStart-now.Unix()) + 1,
		}, nil
	}
	return &responses.ResourceLimit{Allowed: true}, nil
}
