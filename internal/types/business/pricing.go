package business

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductQuantity binds a product to the number of whole months it
// covers within a permit's span. EndDate is nil for an open-ended
// permit, which is always billed one month at a time.
type ProductQuantity struct {
	Product   *Product   `json:"product"`
	Quantity  int        `json:"quantity"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// PermitPrice is one row of a checkout price display: the clipped date
// range a product covers and the unit price after vehicle modifiers.
type PermitPrice struct {
	OriginalUnitPrice decimal.Decimal `json:"original_unit_price"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	Quantity          int             `json:"quantity"`
}

// PriceChangeItem is one row of a price change computation. Produced
// fresh on each call, never stored. Consecutive months with the same
// product name and the same price delta are coalesced into a single
// item with a higher month count.
type PriceChangeItem struct {
	Product               string          `json:"product"`
	PreviousPrice         decimal.Decimal `json:"previous_price"`
	NewPrice              decimal.Decimal `json:"new_price"`
	PriceChange           decimal.Decimal `json:"price_change"`
	PriceChangeVAT        decimal.Decimal `json:"price_change_vat"`
	PriceChangeVATPercent decimal.Decimal `json:"price_change_vat_percent"`
	StartDate             time.Time       `json:"start_date"`
	EndDate               time.Time       `json:"end_date"`
	MonthCount            int             `json:"month_count"`
}

// UnusedOrderItem is a previously billed order item clipped to the
// months not yet consumed, the basis for refund amounts.
type UnusedOrderItem struct {
	OrderItem *OrderItem `json:"order_item"`
	Quantity  int        `json:"quantity"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
}

// Amount returns the refundable amount of the unused item.
func (u *UnusedOrderItem) Amount() decimal.Decimal {
	return u.OrderItem.UnitPrice.Mul(decimal.NewFromInt(int64(u.Quantity)))
}

// VATRefundTotal aggregates refundable amounts of unused order items
// sharing one VAT rate.
type VATRefundTotal struct {
	VAT   decimal.Decimal    `json:"vat"`
	Total decimal.Decimal    `json:"total"`
	Items []*UnusedOrderItem `json:"items"`
}

// ExtensionPriceItem is one row of the price list for buying additional
// months on a fixed-period permit.
type ExtensionPriceItem struct {
	Product    *Product        `json:"product"`
	MonthCount int             `json:"month_count"`
	VAT        decimal.Decimal `json:"vat"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	Price      decimal.Decimal `json:"price"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	NetPrice   decimal.Decimal `json:"net_price"`
	VATPrice   decimal.Decimal `json:"vat_price"`
}

// Pricing carries VAT-inclusive gross with the derived net and VAT
// portions, each rounded to cents.
type Pricing struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
	VAT   decimal.Decimal `json:"vat"`
}

// Add sums two pricings component-wise.
func (p Pricing) Add(other Pricing) Pricing {
	return Pricing{
		Gross: p.Gross.Add(other.Gross),
		Net:   p.Net.Add(other.Net),
		VAT:   p.VAT.Add(other.VAT),
	}
}

// CalcVATPrice extracts the VAT portion of a VAT-inclusive gross price.
func CalcVATPrice(gross, vatRate decimal.Decimal) decimal.Decimal {
	if gross.IsZero() || vatRate.IsZero() {
		return decimal.Zero
	}
	return gross.Mul(vatRate).Div(decimal.NewFromInt(1).Add(vatRate))
}

// CalcNetPrice returns the VAT-exclusive portion of a gross price.
func CalcNetPrice(gross, vatRate decimal.Decimal) decimal.Decimal {
	return gross.Sub(CalcVATPrice(gross, vatRate))
}

// CalculatePricing derives the rounded net and VAT portions of a gross
// price: the VAT price is computed from the gross, both are rounded to
// cents, and the net is their difference so the three always add up.
func CalculatePricing(gross, vatRate decimal.Decimal) Pricing {
	vat := CalcVATPrice(gross, vatRate).Round(2)
	gross = gross.Round(2)
	return Pricing{
		Gross: gross,
		Net:   gross.Sub(vat),
		VAT:   vat,
	}
}
