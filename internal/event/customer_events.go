package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CustomerEventPayload struct {
	CustomerID  int64     `json:"customer_id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	MemberSince time.Time `json:"member_since"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CustomerDeletedPayload struct {
	CustomerID int64 `json:"customer_id"`
}

type CustomerCreatedEvent struct {
	EventID   string               `json:"event_id"`
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerUpdatedEvent struct {
	EventID   string               `json:"event_id"`
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerSuspendedEvent struct {
	EventID   string               `json:"event_id"`
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerDeletedEvent struct {
	EventID   string                 `json:"event_id"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   CustomerDeletedPayload `json:"payload"`
}

func NewCustomerCreatedEvent(payload CustomerEventPayload) CustomerCreatedEvent {
	return CustomerCreatedEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

func NewCustomerUpdatedEvent(payload CustomerEventPayload) CustomerUpdatedEvent {
	return CustomerUpdatedEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

func NewCustomerSuspendedEvent(payload CustomerEventPayload) CustomerSuspendedEvent {
	return CustomerSuspendedEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now(),
		Payload:   payload,
	}
}

func NewCustomerDeletedEvent(customerID int64) CustomerDeletedEvent {
	return CustomerDeletedEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now(),
		Payload:   CustomerDeletedPayload{CustomerID: customerID},
	}
}

func (p *RabbitMQEventPublisher) PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error {
	return p.publish(ctx, routingKeyCustomerCreated, event)
}

func (p *RabbitMQEventPublisher) PublishCustomerUpdated(ctx context.Context, event CustomerUpdatedEvent) error {
	return p.publish(ctx, routingKeyCustomerUpdated, event)
}

func (p *RabbitMQEventPublisher) PublishCustomerSuspended(ctx context.Context, event CustomerSuspendedEvent) error {
	return p.publish(ctx, routingKeyCustomerSuspended, event)
}

func (p *RabbitMQEventPublisher) PublishCustomerDeleted(ctx context.Context, event CustomerDeletedEvent) error {
	return p.publish(ctx, routingKeyCustomerDeleted, event)
}

var _ EventPublisher = (*RabbitMQEventPublisher)(nil)
