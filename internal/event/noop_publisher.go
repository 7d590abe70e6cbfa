package event

import (
	"context"
	"log/slog"
)

// NoOpEventPublisher is wired in when event publishing is disabled, keeping
// the request path free of broker round trips.
type NoOpEventPublisher struct {
	logger *slog.Logger
}

func NewNoOpEventPublisher(logger *slog.Logger) EventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoOpEventPublisher{
		logger: logger.With("component", "NoOpEventPublisher"),
	}
}

func (p *NoOpEventPublisher) PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event", slog.String("routingKey", routingKeyCustomerCreated))
	return nil
}

func (p *NoOpEventPublisher) PublishCustomerUpdated(ctx context.Context, event CustomerUpdatedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event", slog.String("routingKey", routingKeyCustomerUpdated))
	return nil
}

func (p *NoOpEventPublisher) PublishCustomerSuspended(ctx context.Context, event CustomerSuspendedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event", slog.String("routingKey", routingKeyCustomerSuspended))
	return nil
}

func (p *NoOpEventPublisher) PublishCustomerDeleted(ctx context.Context, event CustomerDeletedEvent) error {
	p.logger.DebugContext(ctx, "Event publishing disabled, dropping event", slog.String("routingKey", routingKeyCustomerDeleted))
	return nil
}

var _ EventPublisher = (*NoOpEventPublisher)(nil)
