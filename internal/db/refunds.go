package db

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/types/business"
)

var refundColumns = []string{
	"id", "order_id", "name", "amount::text", "vat::text", "iban", "status", "created_at",
}

func scanRefund(row pgx.Row) (*business.Refund, error) {
	var (
		refund      business.Refund
		amount, vat string
	)
	err := row.Scan(&refund.ID, &refund.OrderID, &refund.Name, &amount, &vat,
		&refund.IBAN, &refund.Status, &refund.CreatedAt)
	if err != nil {
		return nil, err
	}
	if refund.Amount, err = parseDecimal(amount); err != nil {
		return nil, err
	}
	if refund.VAT, err = parseDecimal(vat); err != nil {
		return nil, err
	}
	return &refund, nil
}

// CreateRefundParams contains the parameters for creating a refund.
type CreateRefundParams struct {
	OrderID uuid.UUID
	Name    string
	Amount  decimal.Decimal
	VAT     decimal.Decimal
	IBAN    string
}

// CreateRefund records an open refund for later handling.
func (q *Queries) CreateRefund(ctx context.Context, params CreateRefundParams) (*business.Refund, error) {
	sql, args, err := builder().
		Insert("refunds").
		Columns("order_id", "name", "amount", "vat", "iban", "status").
		Values(params.OrderID, params.Name, params.Amount.String(), params.VAT.String(),
			params.IBAN, constants.RefundStatusOpen).
		Suffix("RETURNING " + joinColumns(refundColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create refund query: %w", err)
	}

	refund, err := scanRefund(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to create refund: %w", err)
	}
	return refund, nil
}

// GetRefund returns a refund by id.
func (q *Queries) GetRefund(ctx context.Context, id uuid.UUID) (*business.Refund, error) {
	sql, args, err := builder().
		Select(refundColumns...).
		From("refunds").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get refund query: %w", err)
	}

	refund, err := scanRefund(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to get refund: %w", err)
	}
	return refund, nil
}

// ListRefundsByStatus returns refunds in the given status, oldest first.
func (q *Queries) ListRefundsByStatus(ctx context.Context, status string) ([]*business.Refund, error) {
	sql, args, err := builder().
		Select(refundColumns...).
		From("refunds").
		Where(squirrel.Eq{"status": status}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list refunds query: %w", err)
	}

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list refunds: %w", err)
	}
	defer rows.Close()

	var refunds []*business.Refund
	for rows.Next() {
		refund, err := scanRefund(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan refund: %w", err)
		}
		refunds = append(refunds, refund)
	}
	return refunds, rows.Err()
}

// UpdateRefundStatus resolves a refund as accepted or rejected.
func (q *Queries) UpdateRefundStatus(ctx context.Context, id uuid.UUID, status string) (*business.Refund, error) {
	sql, args, err := builder().
		Update("refunds").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update refund status query: %w", err)
	}

	if _, err := q.db.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("failed to update refund status: %w", err)
	}
	return q.GetRefund(ctx, id)
}
