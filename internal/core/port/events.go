package port

import (
	"context"
	"somon-ai/internal/core/domain"
)

// EventPublisher is an interface to define a product event publisher (nats, ...)
type EventPublisher interface {
	Publish(ctx context.Context, event domain.ProductEvent) error
	Close() error
}
