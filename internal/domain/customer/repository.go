package customer

import (
	"context"
	"time"
)

type CustomerRepository interface {
	Save(ctx context.Context, customer *Customer) error

	FindByID(ctx context.Context, customerID int64) (*Customer, error)

	FindAll(ctx context.Context) ([]*Customer, error)

	FindByName(ctx context.Context, name string) ([]*Customer, error)

	FindByAddress(ctx context.Context, address string) ([]*Customer, error)

	FindByEmail(ctx context.Context, email string) ([]*Customer, error)

	FindByPhoneNumber(ctx context.Context, phoneNumber string) ([]*Customer, error)

	FindByMemberSince(ctx context.Context, memberSince time.Time) ([]*Customer, error)

	FindByStatus(ctx context.Context, status string) ([]*Customer, error)

	UpdateStatus(ctx context.Context, customerID int64, status string) (*Customer, error)

	Delete(ctx context.Context, customerID int64) error
}
