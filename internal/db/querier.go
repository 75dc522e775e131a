package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/citypermits/permits-api/internal/types/business"
)

// Querier is the full typed query surface of the permit database. The
// service layer depends on this interface so tests can substitute mocks
// for the Postgres-backed implementation.
type Querier interface {
	// zones
	CreateZone(ctx context.Context, params CreateZoneParams) (*business.Zone, error)
	GetZone(ctx context.Context, id uuid.UUID) (*business.Zone, error)
	GetZoneByName(ctx context.Context, name string) (*business.Zone, error)
	ListZones(ctx context.Context) ([]*business.Zone, error)

	// products
	CreateProduct(ctx context.Context, params CreateProductParams) (*business.Product, error)
	UpdateProduct(ctx context.Context, params UpdateProductParams) (*business.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*business.Product, error)
	ListProducts(ctx context.Context, zoneID uuid.UUID) ([]*business.Product, error)
	GetProductsForDateRange(ctx context.Context, zoneID uuid.UUID, productType string, startDate, endDate time.Time) ([]*business.Product, error)
	GetProductsForDate(ctx context.Context, zoneID uuid.UUID, productType string, date time.Time) ([]*business.Product, error)

	// customers
	CreateCustomer(ctx context.Context, params CreateCustomerParams) (*business.Customer, error)
	UpdateCustomer(ctx context.Context, params UpdateCustomerParams) (*business.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*business.Customer, error)
	GetCustomerByNationalID(ctx context.Context, nationalID string) (*business.Customer, error)

	// vehicles
	UpsertVehicle(ctx context.Context, params UpsertVehicleParams) (*business.Vehicle, error)
	GetVehicle(ctx context.Context, id uuid.UUID) (*business.Vehicle, error)
	GetVehicleByRegistration(ctx context.Context, registrationNumber string) (*business.Vehicle, error)

	// permits
	CreatePermit(ctx context.Context, params CreatePermitParams) (*business.Permit, error)
	GetPermit(ctx context.Context, id uuid.UUID) (*business.Permit, error)
	ListPermitsForCustomer(ctx context.Context, customerID uuid.UUID) ([]*business.Permit, error)
	ListActivePermitsForCustomer(ctx context.Context, customerID uuid.UUID) ([]*business.Permit, error)
	CountActivePermitsForVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error)
	UpdatePermitStatus(ctx context.Context, id uuid.UUID, status string) (*business.Permit, error)
	EndPermit(ctx context.Context, id uuid.UUID, endTime time.Time, endType, status string) (*business.Permit, error)
	UpdatePermitPeriod(ctx context.Context, id uuid.UUID, endTime time.Time, monthCount int) (*business.Permit, error)

	// orders
	CreateOrder(ctx context.Context, customerID uuid.UUID, vat decimal.Decimal) (*business.Order, error)
	CreateOrderItem(ctx context.Context, params CreateOrderItemParams) (uuid.UUID, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*business.Order, error)
	ConfirmOrder(ctx context.Context, id uuid.UUID, talpaOrderID uuid.UUID) (*business.Order, error)
	CancelOrder(ctx context.Context, id uuid.UUID) error
	GetLatestOrderForPermit(ctx context.Context, permitID uuid.UUID) (*business.Order, error)
	ListOrdersForPermit(ctx context.Context, permitID uuid.UUID) ([]*business.Order, error)
	ListUnusedOrderItems(ctx context.Context, orderID, permitID uuid.UUID, endOnOrAfter time.Time) ([]*business.OrderItem, error)
	ListCurrentOrderItems(ctx context.Context, permitID uuid.UUID) ([]*business.OrderItem, error)
	ListOrderItems(ctx context.Context, orderID uuid.UUID) ([]*business.OrderItem, error)
	MarkOrderItemsRefunded(ctx context.Context, itemIDs []uuid.UUID) error

	// refunds
	CreateRefund(ctx context.Context, params CreateRefundParams) (*business.Refund, error)
	GetRefund(ctx context.Context, id uuid.UUID) (*business.Refund, error)
	ListRefundsByStatus(ctx context.Context, status string) ([]*business.Refund, error)
	UpdateRefundStatus(ctx context.Context, id uuid.UUID, status string) (*business.Refund, error)

	// permit events
	CreatePermitEvent(ctx context.Context, params CreatePermitEventParams) (*business.PermitEvent, error)
	ListPermitEvents(ctx context.Context, permitID uuid.UUID) ([]*business.PermitEvent, error)
}

var _ Querier = (*Queries)(nil)
