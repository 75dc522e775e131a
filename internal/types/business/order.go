package business

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order groups the order items billed for one or more permits in a
// single payment platform transaction.
type Order struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	Status       string          `json:"status"`
	VAT          decimal.Decimal `json:"vat"`
	TalpaOrderID *uuid.UUID      `json:"talpa_order_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OrderItem is a historical pricing record: a quantity of months billed
// at a specific unit price and VAT rate for a specific date sub-range.
// Immutable once created, apart from the refunded flag.
type OrderItem struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	PermitID    uuid.UUID       `json:"permit_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	VAT         decimal.Decimal `json:"vat"`
	Quantity    int             `json:"quantity"`
	StartTime   time.Time       `json:"start_time"`
	EndTime     time.Time       `json:"end_time"`
	IsRefunded  bool            `json:"is_refunded"`
}

// TotalPrice returns quantity times unit price.
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Refund records money returned to a customer for unused order items.
type Refund struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	VAT       decimal.Decimal `json:"vat"`
	IBAN      string          `json:"iban,omitempty"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
