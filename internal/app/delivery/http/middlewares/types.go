package middlewares

import (
	"medintake-service/internal/app/config"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Clock          func() time.Time
}

var (
	middlewaresInstance *Middlewares
	onceMiddlewares     sync.Once
)

func NewMiddlewares(logger *zap.Logger, internalConfig *config.InternalConfig) *Middlewares {
	onceMiddlewares.Do(func() {
		middlewaresInstance = &Middlewares{
			Log:            logger,
			InternalConfig: internalConfig,
			Clock:          time.Now,
		}
	})
	return middlewaresInstance
}
