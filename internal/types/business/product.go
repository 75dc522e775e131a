package business

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a zone-scoped, time-bounded monthly price record. Both
// boundary dates are inclusive. Within one zone and type the windows of
// consecutive products must be contiguous; the pricing engine verifies
// this on every computation.
type Product struct {
	ID                  uuid.UUID       `json:"id"`
	ZoneID              uuid.UUID       `json:"zone_id"`
	ZoneName            string          `json:"zone_name"`
	Type                string          `json:"type"`
	StartDate           time.Time       `json:"start_date"`
	EndDate             time.Time       `json:"end_date"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	VAT                 decimal.Decimal `json:"vat"`
	LowEmissionDiscount decimal.Decimal `json:"low_emission_discount"`
}

// Name returns the customer-facing product name. The name is the same
// for all languages so no translation is needed.
func (p *Product) Name() string {
	return fmt.Sprintf("Parking zone %s", p.ZoneName)
}

// VATPercentage returns the VAT rate as a percentage.
func (p *Product) VATPercentage() decimal.Decimal {
	return p.VAT.Mul(decimal.NewFromInt(100))
}
