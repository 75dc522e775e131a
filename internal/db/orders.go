package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/types/business"
)

var orderColumns = []string{
	"o.id", "o.customer_id", "o.status", "o.vat::text", "o.talpa_order_id", "o.created_at",
}

// orderItemColumns joins the priced product's zone so the item carries
// its customer-facing product name.
var orderItemColumns = []string{
	"i.id", "i.order_id", "i.permit_id", "i.product_id", "z.name",
	"i.unit_price::text", "i.vat::text", "i.quantity",
	"i.start_time", "i.end_time", "i.is_refunded",
}

func scanOrder(row pgx.Row) (*business.Order, error) {
	var (
		order business.Order
		vat   string
	)
	err := row.Scan(&order.ID, &order.CustomerID, &order.Status, &vat,
		&order.TalpaOrderID, &order.CreatedAt)
	if err != nil {
		return nil, err
	}
	if order.VAT, err = parseDecimal(vat); err != nil {
		return nil, err
	}
	return &order, nil
}

func scanOrderItem(row pgx.Row) (*business.OrderItem, error) {
	var (
		item           business.OrderItem
		zoneName       string
		unitPrice, vat string
	)
	err := row.Scan(&item.ID, &item.OrderID, &item.PermitID, &item.ProductID, &zoneName,
		&unitPrice, &vat, &item.Quantity, &item.StartTime, &item.EndTime, &item.IsRefunded)
	if err != nil {
		return nil, err
	}
	if item.UnitPrice, err = parseDecimal(unitPrice); err != nil {
		return nil, err
	}
	if item.VAT, err = parseDecimal(vat); err != nil {
		return nil, err
	}
	item.ProductName = fmt.Sprintf("Parking zone %s", zoneName)
	return &item, nil
}

func orderItemsQuery() squirrel.SelectBuilder {
	return builder().
		Select(orderItemColumns...).
		From("order_items i").
		Join("products pr ON pr.id = i.product_id").
		Join("zones z ON z.id = pr.zone_id")
}

func (q *Queries) queryOrderItems(ctx context.Context, query squirrel.SelectBuilder) ([]*business.OrderItem, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build order items query: %w", err)
	}

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	var items []*business.OrderItem
	for rows.Next() {
		item, err := scanOrderItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreateOrder inserts a new draft order for a customer.
func (q *Queries) CreateOrder(ctx context.Context, customerID uuid.UUID, vat decimal.Decimal) (*business.Order, error) {
	sql, args, err := builder().
		Insert("orders").
		Columns("customer_id", "status", "vat").
		Values(customerID, constants.OrderStatusDraft, vat.String()).
		Suffix("RETURNING id, customer_id, status, vat::text, talpa_order_id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create order query: %w", err)
	}

	order, err := scanOrder(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

// CreateOrderItemParams contains the parameters for one billed line.
type CreateOrderItemParams struct {
	OrderID   uuid.UUID
	PermitID  uuid.UUID
	ProductID uuid.UUID
	UnitPrice decimal.Decimal
	VAT       decimal.Decimal
	Quantity  int
	StartTime time.Time
	EndTime   time.Time
}

// CreateOrderItem inserts one billed line of an order.
func (q *Queries) CreateOrderItem(ctx context.Context, params CreateOrderItemParams) (uuid.UUID, error) {
	sql, args, err := builder().
		Insert("order_items").
		Columns("order_id", "permit_id", "product_id", "unit_price", "vat",
			"quantity", "start_time", "end_time").
		Values(params.OrderID, params.PermitID, params.ProductID,
			params.UnitPrice.String(), params.VAT.String(),
			params.Quantity, params.StartTime, params.EndTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build create order item query: %w", err)
	}

	var id uuid.UUID
	if err := q.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create order item: %w", err)
	}
	return id, nil
}

// GetOrder returns an order by id.
func (q *Queries) GetOrder(ctx context.Context, id uuid.UUID) (*business.Order, error) {
	sql, args, err := builder().
		Select(orderColumns...).
		From("orders o").
		Where(squirrel.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get order query: %w", err)
	}

	order, err := scanOrder(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// ConfirmOrder marks an order paid and records the payment platform's
// order id.
func (q *Queries) ConfirmOrder(ctx context.Context, id uuid.UUID, talpaOrderID uuid.UUID) (*business.Order, error) {
	sql, args, err := builder().
		Update("orders").
		Set("status", constants.OrderStatusConfirmed).
		Set("talpa_order_id", talpaOrderID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build confirm order query: %w", err)
	}

	if _, err := q.db.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("failed to confirm order: %w", err)
	}
	return q.GetOrder(ctx, id)
}

// CancelOrder marks a draft order abandoned.
func (q *Queries) CancelOrder(ctx context.Context, id uuid.UUID) error {
	sql, args, err := builder().
		Update("orders").
		Set("status", constants.OrderStatusCancelled).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build cancel order query: %w", err)
	}

	if _, err := q.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to cancel order: %w", err)
	}
	return nil
}

// GetLatestOrderForPermit returns the most recent order that billed the
// permit, or (nil, nil) when the permit has never been billed.
func (q *Queries) GetLatestOrderForPermit(ctx context.Context, permitID uuid.UUID) (*business.Order, error) {
	sql, args, err := builder().
		Select(orderColumns...).
		From("orders o").
		Join("order_items i ON i.order_id = o.id").
		Where(squirrel.Eq{"i.permit_id": permitID}).
		GroupBy("o.id").
		OrderBy("o.created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build latest order query: %w", err)
	}

	order, err := scanOrder(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest order: %w", err)
	}
	return order, nil
}

// ListOrdersForPermit returns every order that billed the permit, oldest
// first.
func (q *Queries) ListOrdersForPermit(ctx context.Context, permitID uuid.UUID) ([]*business.Order, error) {
	sql, args, err := builder().
		Select(orderColumns...).
		From("orders o").
		Join("order_items i ON i.order_id = o.id").
		Where(squirrel.Eq{"i.permit_id": permitID}).
		GroupBy("o.id").
		OrderBy("o.created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list orders query: %w", err)
	}

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*business.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// ListUnusedOrderItems returns the confirmed, unrefunded items of an
// order for one permit whose billed range ends on or after the given
// date, ordered by start time.
func (q *Queries) ListUnusedOrderItems(ctx context.Context, orderID, permitID uuid.UUID, endOnOrAfter time.Time) ([]*business.OrderItem, error) {
	return q.queryOrderItems(ctx, orderItemsQuery().
		Join("orders o ON o.id = i.order_id").
		Where(squirrel.Eq{
			"i.order_id":    orderID,
			"i.permit_id":   permitID,
			"i.is_refunded": false,
			"o.status":      constants.OrderStatusConfirmed,
		}).
		Where(squirrel.Expr("i.end_time::date >= ?::date", endOnOrAfter)).
		OrderBy("i.start_time"))
}

// ListCurrentOrderItems returns the unrefunded items of the permit's
// latest order, ordered by start time.
func (q *Queries) ListCurrentOrderItems(ctx context.Context, permitID uuid.UUID) ([]*business.OrderItem, error) {
	latest, err := q.GetLatestOrderForPermit(ctx, permitID)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		return nil, nil
	}
	return q.queryOrderItems(ctx, orderItemsQuery().
		Where(squirrel.Eq{
			"i.order_id":    latest.ID,
			"i.permit_id":   permitID,
			"i.is_refunded": false,
		}).
		OrderBy("i.start_time"))
}

// ListOrderItems returns every item of an order, ordered by start time.
func (q *Queries) ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]*business.OrderItem, error) {
	return q.queryOrderItems(ctx, orderItemsQuery().
		Where(squirrel.Eq{"i.order_id": orderID}).
		OrderBy("i.start_time"))
}

// MarkOrderItemsRefunded flags the given items so they are excluded from
// later refund computations.
func (q *Queries) MarkOrderItemsRefunded(ctx context.Context, itemIDs []uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}
	sql, args, err := builder().
		Update("order_items").
		Set("is_refunded", true).
		Where(squirrel.Eq{"id": itemIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build mark refunded query: %w", err)
	}

	if _, err := q.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to mark order items refunded: %w", err)
	}
	return nil
}
