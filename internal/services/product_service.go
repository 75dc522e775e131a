package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/logger"
	"github.com/citypermits/permits-api/internal/types/business"
)

// ProductService manages the zone and price catalog the pricing engine
// computes against.
type ProductService struct {
	db     db.Querier
	logger *zap.Logger
}

// NewProductService creates a new product service.
func NewProductService(querier db.Querier) *ProductService {
	return &ProductService{
		db:     querier,
		logger: logger.Log,
	}
}

// ListZones returns all permit zones.
func (s *ProductService) ListZones(ctx context.Context) ([]*business.Zone, error) {
	return s.db.ListZones(ctx)
}

// GetZone returns a zone by id.
func (s *ProductService) GetZone(ctx context.Context, id uuid.UUID) (*business.Zone, error) {
	return s.db.GetZone(ctx, id)
}

// CreateZone adds a new permit zone.
func (s *ProductService) CreateZone(ctx context.Context, params db.CreateZoneParams) (*business.Zone, error) {
	return s.db.CreateZone(ctx, params)
}

// GetProduct returns a single price record.
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*business.Product, error) {
	return s.db.GetProduct(ctx, id)
}

// ListProducts returns a zone's price records ordered by start date.
func (s *ProductService) ListProducts(ctx context.Context, zoneID uuid.UUID) ([]*business.Product, error) {
	return s.db.ListProducts(ctx, zoneID)
}

// CreateProduct adds a price record. The catalog invariants (contiguous,
// non-overlapping windows) are checked lazily by the pricing engine, so
// a misconfigured record surfaces as ErrProductCatalog on the first
// computation that touches it.
func (s *ProductService) CreateProduct(ctx context.Context, params db.CreateProductParams) (*business.Product, error) {
	if params.VAT.LessThanOrEqual(decimal.Zero) || params.VAT.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, business.ErrProductCatalog
	}
	product, err := s.db.CreateProduct(ctx, params)
	if err != nil {
		return nil, err
	}
	s.logger.Info("product created",
		zap.String("product_id", product.ID.String()),
		zap.String("zone_id", product.ZoneID.String()),
		zap.Time("start_date", product.StartDate),
		zap.Time("end_date", product.EndDate))
	return product, nil
}

// UpdateProduct updates a price record in place.
func (s *ProductService) UpdateProduct(ctx context.Context, params db.UpdateProductParams) (*business.Product, error) {
	if params.VAT.LessThanOrEqual(decimal.Zero) || params.VAT.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return nil, business.ErrProductCatalog
	}
	return s.db.UpdateProduct(ctx, params)
}
