package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/citypermits/permits-api/internal/logger"
	"github.com/citypermits/permits-api/internal/pkg/dateutil"
	"github.com/citypermits/permits-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultSecondaryVehicleIncreaseRate is the surcharge applied to a
// customer's secondary vehicle permit.
var DefaultSecondaryVehicleIncreaseRate = decimal.NewFromFloat(0.5)

// ProductCatalog is the read side of the price catalog the engine
// computes against. Both methods return products ordered by start date.
type ProductCatalog interface {
	GetProductsForDateRange(ctx context.Context, zoneID uuid.UUID, productType string, startDate, endDate time.Time) ([]*business.Product, error)
	GetProductsForDate(ctx context.Context, zoneID uuid.UUID, productType string, date time.Time) ([]*business.Product, error)
}

// OrderReader provides the historical billing records the engine uses
// as the already-paid-for baseline. GetLatestOrderForPermit returns
// (nil, nil) when the permit has no confirmed order.
type OrderReader interface {
	GetLatestOrderForPermit(ctx context.Context, permitID uuid.UUID) (*business.Order, error)
	ListOrdersForPermit(ctx context.Context, permitID uuid.UUID) ([]*business.Order, error)
	ListUnusedOrderItems(ctx context.Context, orderID, permitID uuid.UUID, endOnOrAfter time.Time) ([]*business.OrderItem, error)
	ListCurrentOrderItems(ctx context.Context, permitID uuid.UUID) ([]*business.OrderItem, error)
}

// PricingService computes permit prices, month quantities and price
// change deltas by overlaying a permit's date range onto the zone's
// time-bounded product records. It is a pure request-scoped computation:
// all reads go through the two interfaces above within the caller's
// transaction, and every failure is immediate and terminal.
type PricingService struct {
	catalog                      ProductCatalog
	orders                       OrderReader
	secondaryVehicleIncreaseRate decimal.Decimal
	logger                       *zap.Logger
}

// NewPricingService creates a new pricing service. The secondary vehicle
// increase rate is passed explicitly so the engine carries no hidden
// module-level rate.
func NewPricingService(catalog ProductCatalog, orders OrderReader, secondaryVehicleIncreaseRate decimal.Decimal) *PricingService {
	return &PricingService{
		catalog:                      catalog,
		orders:                       orders,
		secondaryVehicleIncreaseRate: secondaryVehicleIncreaseRate,
		logger:                       logger.Log,
	}
}

// GetModifiedUnitPrice applies the vehicle modifiers to a product's
// unit price. Order matters: the low emission discount is subtracted
// from the base price first, and the secondary vehicle surcharge is then
// applied to the discounted price.
func (s *PricingService) GetModifiedUnitPrice(product *business.Product, isLowEmission, isSecondary bool) decimal.Decimal {
	price := product.UnitPrice
	if isLowEmission {
		price = price.Sub(price.Mul(product.LowEmissionDiscount))
	}
	if isSecondary {
		price = price.Add(price.Mul(s.secondaryVehicleIncreaseRate))
	}
	return price
}

// GetProductsWithQuantities splits a permit's span across the products
// covering it and counts the whole months billed per product. A nil end
// date marks an open-ended permit, which maps to exactly one product and
// one month. Any gap, overlap or missing coverage in the catalog is a
// hard ErrProductCatalog.
func (s *PricingService) GetProductsWithQuantities(ctx context.Context, zoneID uuid.UUID, productType string, startDate time.Time, endDate *time.Time) ([]*business.ProductQuantity, error) {
	if endDate == nil {
		product, err := s.getSingleProduct(ctx, zoneID, productType, startDate)
		if err != nil {
			return nil, err
		}
		return []*business.ProductQuantity{
			{Product: product, Quantity: 1, StartDate: startDate},
		}, nil
	}

	products, err := s.catalog.GetProductsForDateRange(ctx, zoneID, productType, startDate, *endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get products for date range: %w", err)
	}
	if len(products) == 0 {
		s.logger.Error("no products found for permit duration",
			zap.String("zone_id", zoneID.String()))
		return nil, business.ErrProductCatalog
	}

	// check that there is no gap and no overlap between product date ranges
	for i := 0; i < len(products)-1; i++ {
		if !products[i].EndDate.AddDate(0, 0, 1).Equal(products[i+1].StartDate) {
			s.logger.Error("gaps or overlaps in product date ranges",
				zap.String("zone_id", zoneID.String()),
				zap.Time("end_date", products[i].EndDate),
				zap.Time("next_start_date", products[i+1].StartDate))
			return nil, business.ErrProductCatalog
		}
	}

	// check that the product ranges cover the whole duration of the permit
	if startDate.Before(products[0].StartDate) || (*endDate).After(products[len(products)-1].EndDate) {
		s.logger.Error("products do not cover permit duration",
			zap.String("zone_id", zoneID.String()),
			zap.Time("permit_start", startDate),
			zap.Time("permit_end", *endDate))
		return nil, business.ErrProductCatalog
	}

	quantities := make([]*business.ProductQuantity, 0, len(products))
	for i, product := range products {
		periodStart := startDate
		if i > 0 {
			periodStart = dateutil.FindNextDate(product.StartDate, startDate.Day())
		}
		periodEnd := *endDate
		if i < len(products)-1 {
			periodEnd = dateutil.FindNextDate(product.EndDate, endDate.Day())
		}
		end := periodEnd
		quantities = append(quantities, &business.ProductQuantity{
			Product:   product,
			Quantity:  dateutil.DiffMonthsCeil(periodStart, periodEnd),
			StartDate: periodStart,
			EndDate:   &end,
		})
	}
	return quantities, nil
}

// GetPermitPrices returns the per-product price rows shown at checkout:
// each product's range clipped to the permit span, with the unit price
// after vehicle modifiers. Unlike GetProductsWithQuantities this is a
// display computation and does not enforce catalog contiguity.
func (s *PricingService) GetPermitPrices(ctx context.Context, zoneID uuid.UUID, productType string, isLowEmission, isSecondary bool, permitStart, permitEnd time.Time) ([]*business.PermitPrice, error) {
	products, err := s.catalog.GetProductsForDateRange(ctx, zoneID, productType, permitStart, permitEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get products for date range: %w", err)
	}

	prices := make([]*business.PermitPrice, 0, len(products))
	for _, product := range products {
		startDate := dateutil.MaxTime(product.StartDate, permitStart)
		endDate := dateutil.MinTime(product.EndDate, permitEnd)
		prices = append(prices, &business.PermitPrice{
			OriginalUnitPrice: product.UnitPrice,
			UnitPrice:         s.GetModifiedUnitPrice(product, isLowEmission, isSecondary),
			StartDate:         startDate,
			EndDate:           endDate,
			Quantity:          dateutil.DiffMonthsCeil(startDate, endDate),
		})
	}
	return prices, nil
}

// GetPriceChangeList computes what would change if the permit moved to
// a new zone and/or the vehicle's emission status changed, starting from
// the next unbilled period. Only zone and vehicle changes affect the
// price.
func (s *PricingService) GetPriceChangeList(ctx context.Context, permit *business.Permit, newZoneID uuid.UUID, newIsLowEmission bool, asOf time.Time) ([]*business.PriceChangeItem, error) {
	if permit.IsOpenEnded() {
		return s.openEndedPriceChange(ctx, permit, newZoneID, newIsLowEmission, asOf)
	}
	return s.fixedPeriodPriceChangeList(ctx, permit, newZoneID, newIsLowEmission, asOf)
}

func (s *PricingService) openEndedPriceChange(ctx context.Context, permit *business.Permit, newZoneID uuid.UUID, newIsLowEmission bool, asOf time.Time) ([]*business.PriceChangeItem, error) {
	isSecondary := permit.IsSecondary()
	startDate := dateutil.DateOf(permit.NextPeriodStartTime(asOf))
	endDate := dateutil.AddMonths(startDate, 1).AddDate(0, 0, -1)

	previousProduct, err := s.getSingleProduct(ctx, permit.ZoneID, permit.ProductType(), startDate)
	if err != nil {
		return nil, err
	}
	newProduct, err := s.getSingleProduct(ctx, newZoneID, permit.ProductType(), startDate)
	if err != nil {
		return nil, err
	}

	previousPrice := s.GetModifiedUnitPrice(previousProduct, permit.VehicleIsLowEmission, isSecondary)
	newPrice := s.GetModifiedUnitPrice(newProduct, newIsLowEmission, isSecondary)
	diffPrice := newPrice.Sub(previousPrice)

	// if the permit ends more than a month from now, count this month
	monthCount := 0
	if permit.EndTime != nil && dateutil.DiffMonthsFloor(dateutil.DateOf(asOf), dateutil.DateOf(*permit.EndTime)) > 0 {
		monthCount = 1
	}

	return []*business.PriceChangeItem{
		{
			Product:               newProduct.Name(),
			PreviousPrice:         previousPrice,
			NewPrice:              newPrice,
			PriceChange:           diffPrice,
			PriceChangeVAT:        business.CalcVATPrice(diffPrice, newProduct.VAT).Round(4),
			PriceChangeVATPercent: newProduct.VATPercentage(),
			StartDate:             startDate,
			EndDate:               endDate,
			MonthCount:            monthCount,
		},
	}, nil
}

func (s *PricingService) fixedPeriodPriceChangeList(ctx context.Context, permit *business.Permit, newZoneID uuid.UUID, newIsLowEmission bool, asOf time.Time) ([]*business.PriceChangeItem, error) {
	if permit.EndTime == nil {
		return nil, fmt.Errorf("fixed period permit %s has no end time", permit.ID)
	}
	isSecondary := permit.IsSecondary()
	productType := permit.ProductType()

	// price change affected date range and products
	startDate := dateutil.DateOf(permit.NextPeriodStartTime(asOf))
	endDate := dateutil.DateOf(*permit.EndTime)

	previousProducts, err := s.catalog.GetProductsForDateRange(ctx, permit.ZoneID, productType, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get products for previous zone: %w", err)
	}
	newProducts, err := s.catalog.GetProductsForDateRange(ctx, newZoneID, productType, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get products for new zone: %w", err)
	}

	// if the price is decreased, the VAT rate of the already paid order
	// applies to the refunded difference
	latestOrder, err := s.orders.GetLatestOrderForPermit(ctx, permit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest order: %w", err)
	}

	// walk calendar months with a two-pointer merge over the previous
	// and new product sequences, advancing whichever window runs out
	var priceChangeList []*business.PriceChangeItem
	monthStart := startDate
	iPrev, iNew := 0, 0
	for monthStart.Before(endDate) && iPrev < len(previousProducts) && iNew < len(newProducts) {
		previousProduct := previousProducts[iPrev]
		newProduct := newProducts[iNew]

		previousPrice := s.GetModifiedUnitPrice(previousProduct, permit.VehicleIsLowEmission, isSecondary)
		newPrice := s.GetModifiedUnitPrice(newProduct, newIsLowEmission, isSecondary)
		diffPrice := newPrice.Sub(previousPrice)

		last := lastItem(priceChangeList)
		if last != nil && last.Product == newProduct.Name() && last.PriceChange.Equal(diffPrice) {
			// same product and same diff as the previous month: combine
			// by increasing the month count instead of appending
			last.MonthCount++
		} else {
			vat := newProduct.VAT
			if diffPrice.IsNegative() && latestOrder != nil {
				vat = latestOrder.VAT
			}
			priceChangeList = append(priceChangeList, &business.PriceChangeItem{
				Product:               newProduct.Name(),
				PreviousPrice:         previousPrice,
				NewPrice:              newPrice,
				PriceChange:           diffPrice,
				PriceChangeVAT:        business.CalcVATPrice(diffPrice, vat).Round(4),
				PriceChangeVATPercent: vat.Mul(decimal.NewFromInt(100)),
				StartDate:             monthStart,
				MonthCount:            1,
			})
		}

		monthStart = dateutil.AddMonths(monthStart, 1)
		if monthStart.After(previousProduct.EndDate) {
			iPrev++
		}
		if monthStart.After(newProduct.EndDate) {
			iNew++
		}
	}

	// derive each item's end date from its coalesced month count
	for _, item := range priceChangeList {
		item.EndDate = dateutil.AddMonths(item.StartDate, item.MonthCount).AddDate(0, 0, -1)
	}
	return priceChangeList, nil
}

// GetUnusedOrderItems determines which previously billed order items
// cover months not yet consumed as of the given time. For fixed-period
// permits the first overlapping item is clipped to the unused range with
// a month-ceiling quantity; for open-ended permits the current period's
// items pass through unchanged.
func (s *PricingService) GetUnusedOrderItems(ctx context.Context, permit *business.Permit, asOf time.Time) ([]*business.UnusedOrderItem, error) {
	if permit.IsOpenEnded() {
		return s.unusedItemsForOpenEnded(ctx, permit)
	}
	latestOrder, err := s.orders.GetLatestOrderForPermit(ctx, permit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest order: %w", err)
	}
	if latestOrder == nil {
		return nil, nil
	}
	return s.unusedItemsForOrder(ctx, permit, latestOrder.ID, asOf)
}

// GetUnusedOrderItemsForAllOrders collects unused items across every
// confirmed order of the permit, sorted by item start time.
func (s *PricingService) GetUnusedOrderItemsForAllOrders(ctx context.Context, permit *business.Permit, asOf time.Time) ([]*business.UnusedOrderItem, error) {
	if permit.IsOpenEnded() {
		return s.unusedItemsForOpenEnded(ctx, permit)
	}
	orders, err := s.orders.ListOrdersForPermit(ctx, permit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	var unused []*business.UnusedOrderItem
	for _, order := range orders {
		items, err := s.unusedItemsForOrder(ctx, permit, order.ID, asOf)
		if err != nil {
			return nil, err
		}
		unused = append(unused, items...)
	}
	sort.SliceStable(unused, func(i, j int) bool {
		return unused[i].OrderItem.StartTime.Before(unused[j].OrderItem.StartTime)
	})
	return unused, nil
}

func (s *PricingService) unusedItemsForOpenEnded(ctx context.Context, permit *business.Permit) ([]*business.UnusedOrderItem, error) {
	items, err := s.orders.ListCurrentOrderItems(ctx, permit.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list current order items: %w", err)
	}
	unused := make([]*business.UnusedOrderItem, 0, len(items))
	for _, item := range items {
		unused = append(unused, &business.UnusedOrderItem{
			OrderItem: item,
			Quantity:  item.Quantity,
			StartDate: dateutil.DateOf(item.StartTime),
			EndDate:   dateutil.DateOf(item.EndTime),
		})
	}
	return unused, nil
}

func (s *PricingService) unusedItemsForOrder(ctx context.Context, permit *business.Permit, orderID uuid.UUID, asOf time.Time) ([]*business.UnusedOrderItem, error) {
	unusedStartDate := dateutil.DateOf(permit.NextPeriodStartTime(asOf))

	items, err := s.orders.ListUnusedOrderItems(ctx, orderID, permit.ID, unusedStartDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list unused order items: %w", err)
	}

	// order items may be partially used: the quantity and date range are
	// recomputed starting from the unused start date
	unused := make([]*business.UnusedOrderItem, 0, len(items))
	for _, item := range items {
		startDate := dateutil.MaxTime(unusedStartDate, dateutil.DateOf(item.StartTime))
		endDate := dateutil.DateOf(item.EndTime)
		unused = append(unused, &business.UnusedOrderItem{
			OrderItem: item,
			Quantity:  dateutil.DiffMonthsCeil(startDate, endDate),
			StartDate: startDate,
			EndDate:   endDate,
		})
	}
	return unused, nil
}

// GetTotalRefundAmount sums the refundable amount over the unused items
// of the permit's latest order. Returns zero when the permit cannot be
// refunded.
func (s *PricingService) GetTotalRefundAmount(ctx context.Context, permit *business.Permit, asOf time.Time) (decimal.Decimal, error) {
	if !permit.CanBeRefunded(asOf) {
		return decimal.Zero, nil
	}
	unused, err := s.GetUnusedOrderItems(ctx, permit, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, item := range unused {
		total = total.Add(item.Amount())
	}
	return total, nil
}

// GetVATRefundTotals aggregates refundable amounts per VAT rate across
// all of the permit's orders, the shape refunds are created in.
func (s *PricingService) GetVATRefundTotals(ctx context.Context, permit *business.Permit, asOf time.Time) ([]*business.VATRefundTotal, error) {
	if !permit.CanBeRefunded(asOf) {
		return nil, nil
	}
	unused, err := s.GetUnusedOrderItemsForAllOrders(ctx, permit, asOf)
	if err != nil {
		return nil, err
	}
	byVAT := make(map[string]*business.VATRefundTotal)
	var order []string
	for _, item := range unused {
		key := item.OrderItem.VAT.String()
		total, ok := byVAT[key]
		if !ok {
			total = &business.VATRefundTotal{VAT: item.OrderItem.VAT, Total: decimal.Zero}
			byVAT[key] = total
			order = append(order, key)
		}
		total.Total = total.Total.Add(item.Amount())
		total.Items = append(total.Items, item)
	}
	totals := make([]*business.VATRefundTotal, 0, len(order))
	for _, key := range order {
		totals = append(totals, byVAT[key])
	}
	return totals, nil
}

// GetPriceListForExtendedPermit returns the price rows for purchasing
// additional months on a fixed-period permit, one row per product with
// the months it covers and the gross, net and VAT totals.
func (s *PricingService) GetPriceListForExtendedPermit(ctx context.Context, permit *business.Permit, monthCount int) ([]*business.ExtensionPriceItem, error) {
	if permit.EndTime == nil {
		return nil, fmt.Errorf("fixed period permit %s has no end time", permit.ID)
	}
	isSecondary := permit.IsSecondary()

	fromDate := dateutil.DateOf(*permit.EndTime).AddDate(0, 0, 1)
	endDate := dateutil.DateOf(dateutil.PeriodEndTime(fromDate, monthCount))

	products, err := s.catalog.GetProductsForDateRange(ctx, permit.ZoneID, permit.ProductType(), fromDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get products for date range: %w", err)
	}

	// break the extension into whole months, assigning each month to the
	// product whose window contains its start; more months than asked
	// for are never produced
	var items []*business.ExtensionPriceItem
	monthStart := fromDate
	productIdx := 0
	for i := 0; i < monthCount && productIdx < len(products) && monthStart.Before(endDate); i++ {
		product := products[productIdx]
		monthEnd := dateutil.AddMonths(monthStart, 1).AddDate(0, 0, -1)

		unitPrice := s.GetModifiedUnitPrice(product, permit.VehicleIsLowEmission, isSecondary)
		last := lastExtensionItem(items)
		if last != nil && last.Product.ID == product.ID {
			last.MonthCount++
			last.EndDate = monthEnd
		} else {
			items = append(items, &business.ExtensionPriceItem{
				Product:    product,
				MonthCount: 1,
				VAT:        product.VAT,
				StartDate:  monthStart,
				EndDate:    monthEnd,
				UnitPrice:  unitPrice,
			})
		}

		monthStart = dateutil.AddMonths(monthStart, 1)
		if monthStart.After(product.EndDate) {
			productIdx++
		}
	}

	for _, item := range items {
		item.Price = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.MonthCount)))
		pricing := business.CalculatePricing(item.Price, item.VAT)
		item.NetPrice = pricing.Net
		item.VATPrice = pricing.VAT
	}
	return items, nil
}

func (s *PricingService) getSingleProduct(ctx context.Context, zoneID uuid.UUID, productType string, date time.Time) (*business.Product, error) {
	products, err := s.catalog.GetProductsForDate(ctx, zoneID, productType, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get products for date: %w", err)
	}
	switch len(products) {
	case 1:
		return products[0], nil
	case 0:
		s.logger.Error("product does not exist for date",
			zap.String("zone_id", zoneID.String()),
			zap.Time("date", date))
		return nil, business.ErrProductCatalog
	default:
		s.logger.Error("product date ranges overlap for date",
			zap.String("zone_id", zoneID.String()),
			zap.Time("date", date))
		return nil, business.ErrProductCatalog
	}
}

func lastItem(items []*business.PriceChangeItem) *business.PriceChangeItem {
	if len(items) == 0 {
		return nil
	}
	return items[len(items)-1]
}

func lastExtensionItem(items []*business.ExtensionPriceItem) *business.ExtensionPriceItem {
	if len(items) == 0 {
		return nil
	}
	return items[len(items)-1]
}
