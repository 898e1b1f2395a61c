package contracts

import (
	"context"
	"medintake-service/internal/pkg/dto/requests"
	"medintake-service/internal/pkg/dto/responses"
)

type ResourceLimiter interface {
	ApplyResourceLimiter(ctx context.Context, in *requests.ApplyResourceLimiter) (*responses.ResourceLimit, error)
}
