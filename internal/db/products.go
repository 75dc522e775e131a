package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/citypermits/permits-api/internal/types/business"
)

// productColumns selects a product joined with its zone. Numeric columns
// are cast to text and parsed into decimals on scan.
var productColumns = []string{
	"p.id", "p.zone_id", "z.name", "p.type", "p.start_date", "p.end_date",
	"p.unit_price::text", "p.vat::text", "p.low_emission_discount::text",
}

func scanProduct(row pgx.Row) (*business.Product, error) {
	var (
		product              business.Product
		unitPrice, vat, disc string
	)
	err := row.Scan(&product.ID, &product.ZoneID, &product.ZoneName, &product.Type,
		&product.StartDate, &product.EndDate, &unitPrice, &vat, &disc)
	if err != nil {
		return nil, err
	}
	if product.UnitPrice, err = parseDecimal(unitPrice); err != nil {
		return nil, err
	}
	if product.VAT, err = parseDecimal(vat); err != nil {
		return nil, err
	}
	if product.LowEmissionDiscount, err = parseDecimal(disc); err != nil {
		return nil, err
	}
	return &product, nil
}

func (q *Queries) queryProducts(ctx context.Context, query squirrel.SelectBuilder) ([]*business.Product, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build products query: %w", err)
	}

	rows, err := q.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []*business.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func productsQuery() squirrel.SelectBuilder {
	return builder().
		Select(productColumns...).
		From("products p").
		Join("zones z ON z.id = p.zone_id")
}

// CreateProductParams contains the parameters for creating a product.
type CreateProductParams struct {
	ZoneID              uuid.UUID
	Type                string
	StartDate           time.Time
	EndDate             time.Time
	UnitPrice           decimal.Decimal
	VAT                 decimal.Decimal
	LowEmissionDiscount decimal.Decimal
}

// CreateProduct inserts a new price record for a zone.
func (q *Queries) CreateProduct(ctx context.Context, params CreateProductParams) (*business.Product, error) {
	sql, args, err := builder().
		Insert("products").
		Columns("zone_id", "type", "start_date", "end_date", "unit_price", "vat", "low_emission_discount").
		Values(params.ZoneID, params.Type, params.StartDate, params.EndDate,
			params.UnitPrice.String(), params.VAT.String(), params.LowEmissionDiscount.String()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create product query: %w", err)
	}

	var id uuid.UUID
	if err := q.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return q.GetProduct(ctx, id)
}

// UpdateProductParams contains the updatable product fields.
type UpdateProductParams struct {
	ID                  uuid.UUID
	StartDate           time.Time
	EndDate             time.Time
	UnitPrice           decimal.Decimal
	VAT                 decimal.Decimal
	LowEmissionDiscount decimal.Decimal
}

// UpdateProduct updates a price record in place.
func (q *Queries) UpdateProduct(ctx context.Context, params UpdateProductParams) (*business.Product, error) {
	sql, args, err := builder().
		Update("products").
		Set("start_date", params.StartDate).
		Set("end_date", params.EndDate).
		Set("unit_price", params.UnitPrice.String()).
		Set("vat", params.VAT.String()).
		Set("low_emission_discount", params.LowEmissionDiscount.String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": params.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update product query: %w", err)
	}

	if _, err := q.db.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return q.GetProduct(ctx, params.ID)
}

// GetProduct returns a product by id.
func (q *Queries) GetProduct(ctx context.Context, id uuid.UUID) (*business.Product, error) {
	sql, args, err := productsQuery().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get product query: %w", err)
	}

	product, err := scanProduct(q.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// ListProducts returns every product of a zone ordered by start date.
func (q *Queries) ListProducts(ctx context.Context, zoneID uuid.UUID) ([]*business.Product, error) {
	return q.queryProducts(ctx, productsQuery().
		Where(squirrel.Eq{"p.zone_id": zoneID}).
		OrderBy("p.start_date"))
}

// GetProductsForDateRange returns the products of a zone whose validity
// windows overlap the given inclusive date range, ordered by start date.
func (q *Queries) GetProductsForDateRange(ctx context.Context, zoneID uuid.UUID, productType string, startDate, endDate time.Time) ([]*business.Product, error) {
	return q.queryProducts(ctx, productsQuery().
		Where(squirrel.Eq{"p.zone_id": zoneID, "p.type": productType}).
		Where(squirrel.LtOrEq{"p.start_date": endDate}).
		Where(squirrel.GtOrEq{"p.end_date": startDate}).
		OrderBy("p.start_date"))
}

// GetProductsForDate returns every product of a zone whose validity
// window contains the given date. More than one result means the
// catalog is misconfigured; the caller decides how to report that.
func (q *Queries) GetProductsForDate(ctx context.Context, zoneID uuid.UUID, productType string, date time.Time) ([]*business.Product, error) {
	return q.queryProducts(ctx, productsQuery().
		Where(squirrel.Eq{"p.zone_id": zoneID, "p.type": productType}).
		Where(squirrel.LtOrEq{"p.start_date": date}).
		Where(squirrel.GtOrEq{"p.end_date": date}).
		OrderBy("p.start_date"))
}
