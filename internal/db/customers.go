package db

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/citypermits/permits-api/internal/types/business"
)

var customerColumns = []string{
	"id", "first_name", "last_name", "national_id_number",
	"email", "phone_number", "language", "address", "zone_id",
}

// CreateCustomerParams contains the parameters for creating a customer.
type CreateCustomerParams struct {
	FirstName        string
	LastName         string
	NationalIDNumber string
	Email            string
	PhoneNumber      string
	Language         string
	Address          string
	ZoneID           *uuid.UUID
}

// CreateCustomer inserts a new customer.
func (q *Queries) CreateCustomer(ctx context.Context, params CreateCustomerParams) (*business.Customer, error) {
	sql, args, err := builder().
		Insert("customers").
		Columns("first_name", "last_name", "national_id_number", "email", "phone_number", "language", "address", "zone_id").
		Values(params.FirstName, params.LastName, params.NationalIDNumber,
			params.Email, params.PhoneNumber, params.Language, params.Address, params.ZoneID).
		Suffix("RETURNING " + joinColumns(customerColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create customer query: %w", err)
	}

	customer, err := scanCustomer(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}

// UpdateCustomerParams contains the updatable customer fields.
type UpdateCustomerParams struct {
	ID          uuid.UUID
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Language    string
	Address     string
	ZoneID      *uuid.UUID
}

// UpdateCustomer updates a customer's contact details and home zone.
func (q *Queries) UpdateCustomer(ctx context.Context, params UpdateCustomerParams) (*business.Customer, error) {
	sql, args, err := builder().
		Update("customers").
		Set("first_name", params.FirstName).
		Set("last_name", params.LastName).
		Set("email", params.Email).
		Set("phone_number", params.PhoneNumber).
		Set("language", params.Language).
		Set("address", params.Address).
		Set("zone_id", params.ZoneID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": params.ID}).
		Suffix("RETURNING " + joinColumns(customerColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update customer query: %w", err)
	}

	customer, err := scanCustomer(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// GetCustomer returns a customer by id.
func (q *Queries) GetCustomer(ctx context.Context, id uuid.UUID) (*business.Customer, error) {
	return q.getCustomer(ctx, squirrel.Eq{"id": id})
}

// GetCustomerByNationalID returns a customer by national identity number.
// Returns (nil, nil) when no such customer exists.
func (q *Queries) GetCustomerByNationalID(ctx context.Context, nationalID string) (*business.Customer, error) {
	customer, err := q.getCustomer(ctx, squirrel.Eq{"national_id_number": nationalID})
	if err != nil && noRows(err) {
		return nil, nil
	}
	return customer, err
}

func (q *Queries) getCustomer(ctx context.Context, pred squirrel.Eq) (*business.Customer, error) {
	sql, args, err := builder().
		Select(customerColumns...).
		From("customers").
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get customer query: %w", err)
	}
	return scanCustomer(q.db.QueryRow(ctx, sql, args...))
}

func scanCustomer(row pgx.Row) (*business.Customer, error) {
	var customer business.Customer
	err := row.Scan(&customer.ID, &customer.FirstName, &customer.LastName,
		&customer.NationalIDNumber, &customer.Email, &customer.PhoneNumber,
		&customer.Language, &customer.Address, &customer.ZoneID)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}
