package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"customer-service/internal/domain/customer"
	"customer-service/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DBPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

var _ DBPool = (*pgxpool.Pool)(nil)

var errMsgFormat = "%w: %w"

const customerColumns = "id, name, address, email, phone_number, member_since, status, created_at, updated_at"

type CustomerRepository struct {
	db     DBPool
	logger *slog.Logger
}

var _ customer.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db DBPool, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("DBPool cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	return &CustomerRepository{
		db:     db,
		logger: logger.With("component", "CustomerRepository"),
	}
}

func (r *CustomerRepository) Save(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	if cust.CustomerID == 0 {
		return r.createCustomer(ctx, cust)
	}
	return r.updateCustomer(ctx, cust)
}

func (r *CustomerRepository) createCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to insert new customer", slog.String("name", cust.Name))

	query := `
        INSERT INTO customers (name, address, email, phone_number, member_since, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
        RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		cust.Name,
		cust.Address,
		cust.Email,
		cust.PhoneNumber,
		cust.MemberSince,
		cust.Status,
	).Scan(
		&cust.CustomerID,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)

	if err != nil {
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to insert customer due to unique constraint violation", slog.Any("error", err))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to insert customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to insert customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", cust.CustomerID))
	return nil
}

func (r *CustomerRepository) updateCustomer(ctx context.Context, cust *customer.Customer) error {
	r.logger.InfoContext(ctx, "Attempting to update customer", slog.Int64("customerID", cust.CustomerID))

	query := `
        UPDATE customers
        SET name = $1,
            address = $2,
            email = $3,
            phone_number = $4,
            member_since = $5,
            status = $6,
            updated_at = NOW()
        WHERE id = $7
        RETURNING created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		cust.Name,
		cust.Address,
		cust.Email,
		cust.PhoneNumber,
		cust.MemberSince,
		cust.Status,
		cust.CustomerID,
	).Scan(
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Update matched zero rows, customer likely not found")
			return apperrors.ErrNotFound
		}
		translatedErr := translateDBError(err, r.logger)
		if errors.Is(translatedErr, apperrors.ErrAlreadyExists) {
			r.logger.WarnContext(ctx, "Failed to update customer due to unique constraint violation", slog.Any("error", err))
			return translatedErr
		}
		r.logger.ErrorContext(ctx, "Failed to update customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to update customer: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer updated successfully")
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, customerID int64) (*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Attempting to find customer by ID", slog.Int64("customerID", customerID))

	query := `
        SELECT ` + customerColumns + `
        FROM customers
        WHERE id = $1`

	var cust customer.Customer
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&cust.CustomerID,
		&cust.Name,
		&cust.Address,
		&cust.Email,
		&cust.PhoneNumber,
		&cust.MemberSince,
		&cust.Status,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Customer not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to query/scan customer by ID", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to get customer by ID: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer found successfully")
	return &cust, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) ([]*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Attempting to find all customers")

	query := `
        SELECT ` + customerColumns + `
        FROM customers
        ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers: %w", apperrors.ErrDatabase, err)
	}
	defer rows.Close()

	return r.collectCustomers(ctx, rows)
}

func (r *CustomerRepository) FindByName(ctx context.Context, name string) ([]*customer.Customer, error) {
	return r.findManyByColumn(ctx, "name", name)
}

func (r *CustomerRepository) FindByAddress(ctx context.Context, address string) ([]*customer.Customer, error) {
	return r.findManyByColumn(ctx, "address", address)
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) ([]*customer.Customer, error) {
	return r.findManyByColumn(ctx, "email", email)
}

func (r *CustomerRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) ([]*customer.Customer, error) {
	return r.findManyByColumn(ctx, "phone_number", phoneNumber)
}

func (r *CustomerRepository) FindByMemberSince(ctx context.Context, memberSince time.Time) ([]*customer.Customer, error) {
	return r.findManyByColumn(ctx, "member_since", memberSince)
}

func (r *CustomerRepository) FindByStatus(ctx context.Context, status string) ([]*customer.Customer, error) {
	return r.findManyByColumn(ctx, "status", status)
}

// findManyByColumn serves the single-attribute listing queries. The column
// name is always one of the fixed identifiers passed by the FindBy* wrappers
// above, never client input.
func (r *CustomerRepository) findManyByColumn(ctx context.Context, column string, value any) ([]*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Attempting to find customers by attribute", slog.String("column", column))

	query := fmt.Sprintf(`
        SELECT `+customerColumns+`
        FROM customers
        WHERE %s = $1
        ORDER BY id ASC`, column)

	rows, err := r.db.Query(ctx, query, value)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers by attribute", slog.String("column", column), slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to query customers by %s: %w", apperrors.ErrDatabase, column, err)
	}
	defer rows.Close()

	return r.collectCustomers(ctx, rows)
}

func (r *CustomerRepository) collectCustomers(ctx context.Context, rows pgx.Rows) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)
	for rows.Next() {
		var cust customer.Customer
		err := rows.Scan(
			&cust.CustomerID,
			&cust.Name,
			&cust.Address,
			&cust.Email,
			&cust.PhoneNumber,
			&cust.MemberSince,
			&cust.Status,
			&cust.CreatedAt,
			&cust.UpdatedAt,
		)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, fmt.Errorf("%w: failed to scan customer row: %w", apperrors.ErrDatabase, err)
		}
		customers = append(customers, &cust)
	}

	if err := rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, fmt.Errorf("%w: error iterating customer rows: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Finished finding customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (r *CustomerRepository) UpdateStatus(ctx context.Context, customerID int64, status string) (*customer.Customer, error) {
	r.logger.InfoContext(ctx, "Attempting to update customer status", slog.Int64("customerID", customerID), slog.String("status", status))

	query := `
        UPDATE customers
        SET status = $1,
            updated_at = NOW()
        WHERE id = $2
        RETURNING ` + customerColumns

	var cust customer.Customer
	err := r.db.QueryRow(ctx, query, status, customerID).Scan(
		&cust.CustomerID,
		&cust.Name,
		&cust.Address,
		&cust.Email,
		&cust.PhoneNumber,
		&cust.MemberSince,
		&cust.Status,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.WarnContext(ctx, "Status update matched zero rows, customer likely not found")
			return nil, apperrors.ErrNotFound
		}
		r.logger.ErrorContext(ctx, "Failed to update customer status", slog.Any("error", err))
		return nil, fmt.Errorf("%w: failed to update customer status: %w", apperrors.ErrDatabase, err)
	}

	r.logger.InfoContext(ctx, "Customer status updated successfully")
	return &cust, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID int64) error {
	r.logger.InfoContext(ctx, "Attempting to delete customer", slog.Int64("customerID", customerID))

	query := `DELETE FROM customers WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, customerID)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to execute delete customer", slog.Any("error", err))
		return fmt.Errorf("%w: failed to delete customer: %w", apperrors.ErrDatabase, err)
	}

	if cmdTag.RowsAffected() == 0 {
		r.logger.WarnContext(ctx, "Delete affected zero rows, customer likely not found")
		return apperrors.ErrNotFound
	}

	r.logger.InfoContext(ctx, "Customer deleted successfully")
	return nil
}

func translateDBError(err error, contextLogger *slog.Logger) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			contextLogger.Warn("Database unique constraint violation", "detail", pgErr.Detail, "constraint", pgErr.ConstraintName)
			return fmt.Errorf("%w: %s", apperrors.ErrAlreadyExists, pgErr.ConstraintName)
		}

		contextLogger.Error("PostgreSQL specific error", "code", pgErr.Code, "message", pgErr.Message, "detail", pgErr.Detail)
		return fmt.Errorf("%w: db error code %s", apperrors.ErrDatabase, pgErr.Code)
	}

	contextLogger.Error("Generic database error", "error", err)
	return fmt.Errorf(errMsgFormat, apperrors.ErrDatabase, err)
}
