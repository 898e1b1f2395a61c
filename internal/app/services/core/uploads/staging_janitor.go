package uploads

import (
	"context"
	"fmt"
	"medintake-service/internal/app/config"
	"medintake-service/internal/app/contracts"
	"medintake-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

// StagingJanitor removes staged files whose upload session has expired.
// Sessions live in Redis with a TTL while their files live in the bucket, so
// an abandoned session leaves its staging objects behind.
type StagingJanitor struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	locker  contracts.LockerService
	redis   contracts.RedisRepository
	storage contracts.Storage
	clock   func() time.Time
	stop    chan struct{}
}

func NewStagingJanitor(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, redisRepository contracts.RedisRepository, storage contracts.Storage) *StagingJanitor {
	return &StagingJanitor{
		log:     log,
		cfg:     cfg,
		locker:  lockerSvc,
		redis:   redisRepository,
		storage: storage,
		clock:   time.Now,
		stop:    make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (j *StagingJanitor) Start(ctx context.Context) (stop func()) {
	interval := time.Duration(j.cfg.Intake.JanitorIntervalInMinutes) * time.Minute
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	ticker := time.NewTicker(interval)

	j.log.Info("StagingJanitor started", zap.Duration(constvars.LoggingDurationKey, interval))

	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-j.stop:
				ticker.Stop()
				return
			case <-ticker.C:
				j.runOnce(ctx)
			}
		}
	}()

	return func() {
		close(j.stop)
	}
}

// runOnce sweeps the staging area once. Only one instance sweeps at a time.
func (j *StagingJanitor) runOnce(ctx context.Context) int {
	ttl := time.Duration(j.cfg.Intake.JanitorIntervalInMinutes) * time.Minute
	if ttl <= 0 {
		ttl = time.Minute
	}
	acquired, lockValue, err := j.locker.TryLock(ctx, constvars.RedisKeyStagingJanitorLock, ttl)
	if err != nil {
		j.log.Info("StagingJanitor.runOnce lock attempt failed", zap.Error(err))
		return 0
	}
	if !acquired {
		j.log.Debug("StagingJanitor.runOnce lock not acquired; another instance is sweeping")
		return 0
	}
	defer func() {
		if err := j.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyStagingJanitorLock, lockValue); err != nil {
			j.log.Error("StagingJanitor.runOnce unlock failed", zap.Error(err))
		}
	}()

	objects, err := j.storage.ListObjects(ctx, constvars.UploadDirectoryStaging+"/")
	if err != nil {
		j.log.Error("StagingJanitor.runOnce error listing staging objects", zap.Error(err))
		return 0
	}

	// Freshly staged files may belong to a session whose write is in flight.
	cutoff := j.clock().Add(-time.Duration(j.cfg.Intake.StagingGraceInMinutes) * time.Minute)
	alive := make(map[string]bool)
	removed := 0
	for _, object := range objects {
		if object.LastModified.After(cutoff) {
			continue
		}
		sessionID, ok := stagingSessionID(object.Key)
		if !ok {
			continue
		}

		live, checked := alive[sessionID]
		if !checked {
			stored, err := j.redis.Get(ctx, fmt.Sprintf(constvars.RedisKeyUploadSessionFormat, sessionID))
			if err != nil {
				j.log.Error("StagingJanitor.runOnce error reading session",
					zap.String(constvars.LoggingSessionIDKey, sessionID),
					zap.Error(err),
				)
				continue
			}
			live = stored != ""
			alive[sessionID] = live
		}
		if live {
			continue
		}

		if err := j.storage.RemoveObject(ctx, object.Key); err != nil {
			j.log.Warn("StagingJanitor.runOnce error removing object",
				zap.String(constvars.LoggingObjectKey, object.Key),
				zap.Error(err),
			)
			continue
		}
		removed++
	}

	j.log.Info("StagingJanitor.runOnce sweep finished",
		zap.Int(constvars.LoggingCountKey, removed),
	)
	return removed
}

// stagingSessionID extracts the session id from staging/<session>/<file>.
func stagingSessionID(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, constvars.UploadDirectoryStaging+"/")
	if !ok {
		return "", false
	}
	sessionID, _, found := strings.Cut(rest, "/")
	return sessionID, found && sessionID != ""
}
