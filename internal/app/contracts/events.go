package contracts

import (
	"context"
	"medintake-service/internal/pkg/dto/requests"
)

type EventPublisher interface {
	PublishDocumentSaved(ctx context.Context, event *requests.DocumentEvent) error
}
