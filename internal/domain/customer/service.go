package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"customer-service/internal/event"
	"customer-service/internal/infrastructure/monitoring"
	"customer-service/internal/pkg/apperrors"
)

const customerNotFound = "Customer not found by repository"

// CustomerAttributes carries the client-settable fields of a customer. The
// identifier and audit timestamps are always assigned by the store.
type CustomerAttributes struct {
	Name        string
	Address     string
	Email       string
	PhoneNumber string
	MemberSince time.Time
	Status      string
}

func (a CustomerAttributes) validate() error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return apperrors.NewValidationError("name", "cannot be empty")
	case strings.TrimSpace(a.Address) == "":
		return apperrors.NewValidationError("address", "cannot be empty")
	case strings.TrimSpace(a.Email) == "":
		return apperrors.NewValidationError("email", "cannot be empty")
	case strings.TrimSpace(a.PhoneNumber) == "":
		return apperrors.NewValidationError("phone_number", "cannot be empty")
	case a.MemberSince.IsZero():
		return apperrors.NewValidationError("member_since", "cannot be empty")
	}
	return nil
}

// Filter selects customers by exactly one attribute. Fields are checked in
// declaration order and the first one set wins; an empty filter selects
// every customer.
type Filter struct {
	Name        string
	Address     string
	Email       string
	PhoneNumber string
	MemberSince *time.Time
	Status      string
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, attrs CustomerAttributes) (*Customer, error)
	GetCustomer(ctx context.Context, customerID int64) (*Customer, error)
	ListCustomers(ctx context.Context, filter Filter) ([]*Customer, error)
	ReplaceCustomer(ctx context.Context, customerID int64, attrs CustomerAttributes) (*Customer, error)
	SuspendCustomer(ctx context.Context, customerID int64) (*Customer, error)
	DeleteCustomer(ctx context.Context, customerID int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
}

func NewCustomerService(repo CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	if eventPublisher == nil {
		logger.Warn("Warning: No event publisher provided to NewCustomerService, using no-op publisher")
		eventPublisher = event.NewNoOpEventPublisher(logger)
	}

	return &customerService{
		repo:   repo,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func NewCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID:  cust.CustomerID,
		Name:        cust.Name,
		Address:     cust.Address,
		Email:       cust.Email,
		PhoneNumber: cust.PhoneNumber,
		MemberSince: cust.MemberSince,
		Status:      cust.Status,
		CreatedAt:   cust.CreatedAt,
		UpdatedAt:   cust.UpdatedAt,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, attrs CustomerAttributes) (*Customer, error) {
	logger := s.logger.With(slog.String("name", attrs.Name), slog.String("email", attrs.Email))
	logger.InfoContext(ctx, "Attempting to create new customer")

	if err := attrs.validate(); err != nil {
		logger.WarnContext(ctx, "Validation failed for new customer", slog.Any("error", err))
		return nil, err
	}

	cust := NewCustomer(attrs.Name, attrs.Address, attrs.Email, attrs.PhoneNumber, attrs.MemberSince, attrs.Status)

	logger.InfoContext(ctx, "Calling repository Save")
	if err := s.repo.Save(ctx, cust); err != nil {
		logger.ErrorContext(ctx, "Repository failed to save new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	logger = logger.With(slog.Int64("customerID", cust.CustomerID))
	logger.InfoContext(ctx, "Successfully saved new customer, publishing creation event")
	monitoring.RecordCustomerCreated()

	createdEvent := event.NewCustomerCreatedEvent(NewCustomerEventPayload(cust))
	if pubErr := s.pub.PublishCustomerCreated(ctx, createdEvent); pubErr != nil {
		logger.ErrorContext(ctx, "Customer created, but failed to publish creation event", slog.Any("error", pubErr))
	}

	logger.InfoContext(ctx, "Successfully created new customer")
	return cust, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to get customer by ID")

	cust, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, customerNotFound)
			return nil, apperrors.ErrNotFound
		}
		logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", customerID, err)
	}

	logger.InfoContext(ctx, "Successfully retrieved customer")
	return cust, nil
}

func (s *customerService) ListCustomers(ctx context.Context, filter Filter) ([]*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to list customers")

	var (
		customers []*Customer
		err       error
	)

	switch {
	case filter.Name != "":
		customers, err = s.repo.FindByName(ctx, filter.Name)
	case filter.Address != "":
		customers, err = s.repo.FindByAddress(ctx, filter.Address)
	case filter.Email != "":
		customers, err = s.repo.FindByEmail(ctx, filter.Email)
	case filter.PhoneNumber != "":
		customers, err = s.repo.FindByPhoneNumber(ctx, filter.PhoneNumber)
	case filter.MemberSince != nil:
		customers, err = s.repo.FindByMemberSince(ctx, *filter.MemberSince)
	case filter.Status != "":
		customers, err = s.repo.FindByStatus(ctx, filter.Status)
	default:
		customers, err = s.repo.FindAll(ctx)
	}

	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully retrieved customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (s *customerService) ReplaceCustomer(ctx context.Context, customerID int64, attrs CustomerAttributes) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to replace customer")

	if err := attrs.validate(); err != nil {
		logger.WarnContext(ctx, "Validation failed for customer replacement", slog.Any("error", err))
		return nil, err
	}

	cust := NewCustomer(attrs.Name, attrs.Address, attrs.Email, attrs.PhoneNumber, attrs.MemberSince, attrs.Status)
	cust.CustomerID = customerID

	logger.InfoContext(ctx, "Calling repository Save to persist replacement")
	if err := s.repo.Save(ctx, cust); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, customerNotFound)
			return nil, apperrors.ErrNotFound
		}
		logger.ErrorContext(ctx, "Repository failed to save replaced customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to replace customer %d: %w", customerID, err)
	}

	logger.InfoContext(ctx, "Successfully replaced customer, publishing update event")
	monitoring.RecordCustomerUpdated()

	updatedEvent := event.NewCustomerUpdatedEvent(NewCustomerEventPayload(cust))
	if pubErr := s.pub.PublishCustomerUpdated(ctx, updatedEvent); pubErr != nil {
		logger.ErrorContext(ctx, "Customer replaced, but failed to publish update event", slog.Any("error", pubErr))
	}

	return cust, nil
}

func (s *customerService) SuspendCustomer(ctx context.Context, customerID int64) (*Customer, error) {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to suspend customer")

	cust, err := s.repo.UpdateStatus(ctx, customerID, StatusSuspended)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.WarnContext(ctx, customerNotFound)
			return nil, apperrors.ErrNotFound
		}
		logger.ErrorContext(ctx, "Repository error suspending customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to suspend customer %d: %w", customerID, err)
	}

	logger.InfoContext(ctx, "Successfully suspended customer, publishing suspension event")
	monitoring.RecordCustomerSuspended()

	suspendedEvent := event.NewCustomerSuspendedEvent(NewCustomerEventPayload(cust))
	if pubErr := s.pub.PublishCustomerSuspended(ctx, suspendedEvent); pubErr != nil {
		logger.ErrorContext(ctx, "Customer suspended, but failed to publish suspension event", slog.Any("error", pubErr))
	}

	return cust, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID int64) error {
	logger := s.logger.With(slog.Int64("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to delete customer")

	err := s.repo.Delete(ctx, customerID)
	if err != nil {
		// Deleting an absent customer is a no-op so the operation stays
		// idempotent for clients that retry.
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.InfoContext(ctx, "Customer already absent, nothing to delete")
			return nil
		}
		logger.ErrorContext(ctx, "Repository error deleting customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", customerID, err)
	}

	logger.InfoContext(ctx, "Successfully deleted customer, publishing deletion event")
	monitoring.RecordCustomerDeleted()

	deletedEvent := event.NewCustomerDeletedEvent(customerID)
	if pubErr := s.pub.PublishCustomerDeleted(ctx, deletedEvent); pubErr != nil {
		logger.ErrorContext(ctx, "Customer deleted, but failed to publish deletion event", slog.Any("error", pubErr))
	}

	return nil
}
