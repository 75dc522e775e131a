package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/citypermits/permits-api/internal/client/talpa"
	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/logger"
	"github.com/citypermits/permits-api/internal/pkg/dateutil"
	"github.com/citypermits/permits-api/internal/types/business"
)

// PaymentPlatform is the checkout side of the city's payment platform.
type PaymentPlatform interface {
	CreateOrder(ctx context.Context, customerID uuid.UUID, email string, items []talpa.OrderItem, priceTotal decimal.Decimal) (*talpa.Order, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID) error
}

// CheckoutOrder is a created order together with the payment platform's
// checkout URL the customer is redirected to.
type CheckoutOrder struct {
	Order       *business.Order       `json:"order"`
	Items       []*business.OrderItem `json:"items"`
	CheckoutURL string                `json:"checkout_url"`
	Total       business.Pricing      `json:"total"`
}

// OrderService creates checkout orders from the pricing engine's
// output, confirms them on payment and turns unused order items into
// refunds.
type OrderService struct {
	db       db.Querier
	pricing  *PricingService
	payments PaymentPlatform
	events   *EventService
	email    EmailSender
	logger   *zap.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(querier db.Querier, pricing *PricingService, payments PaymentPlatform, events *EventService, email EmailSender) *OrderService {
	return &OrderService{
		db:       querier,
		pricing:  pricing,
		payments: payments,
		events:   events,
		email:    email,
		logger:   logger.Log,
	}
}

// CreateOrderForPermit prices a draft permit, stores the order with one
// item per product sub-range and opens a checkout with the payment
// platform. The permit moves to PAYMENT_IN_PROGRESS.
func (s *OrderService) CreateOrderForPermit(ctx context.Context, permitID uuid.UUID, asOf time.Time) (*CheckoutOrder, error) {
	permit, err := s.db.GetPermit(ctx, permitID)
	if err != nil {
		return nil, err
	}
	customer, err := s.db.GetCustomer(ctx, permit.CustomerID)
	if err != nil {
		return nil, err
	}

	startDate := dateutil.DateOf(permit.StartTime)
	var endDate *time.Time
	if permit.IsFixedPeriod() {
		if permit.EndTime == nil {
			return nil, errors.Errorf("fixed period permit %s has no end time", permit.ID)
		}
		end := dateutil.DateOf(*permit.EndTime)
		endDate = &end
	}

	quantities, err := s.pricing.GetProductsWithQuantities(ctx, permit.ZoneID, permit.ProductType(), startDate, endDate)
	if err != nil {
		return nil, err
	}

	order, err := s.db.CreateOrder(ctx, customer.ID, quantities[0].Product.VAT)
	if err != nil {
		return nil, err
	}

	var (
		items      []*business.OrderItem
		talpaItems []talpa.OrderItem
		total      business.Pricing
	)
	for _, quantity := range quantities {
		unitPrice := s.pricing.GetModifiedUnitPrice(quantity.Product, permit.VehicleIsLowEmission, permit.IsSecondary())

		itemStart := quantity.StartDate
		var itemEnd time.Time
		if quantity.EndDate != nil {
			itemEnd = *quantity.EndDate
		} else {
			itemEnd = dateutil.DateOf(dateutil.PeriodEndTime(itemStart, quantity.Quantity))
		}

		itemID, err := s.db.CreateOrderItem(ctx, db.CreateOrderItemParams{
			OrderID:   order.ID,
			PermitID:  permit.ID,
			ProductID: quantity.Product.ID,
			UnitPrice: unitPrice,
			VAT:       quantity.Product.VAT,
			Quantity:  quantity.Quantity,
			StartTime: itemStart,
			EndTime:   itemEnd,
		})
		if err != nil {
			return nil, err
		}

		item := &business.OrderItem{
			ID:          itemID,
			OrderID:     order.ID,
			PermitID:    permit.ID,
			ProductID:   quantity.Product.ID,
			ProductName: quantity.Product.Name(),
			UnitPrice:   unitPrice,
			VAT:         quantity.Product.VAT,
			Quantity:    quantity.Quantity,
			StartTime:   itemStart,
			EndTime:     itemEnd,
		}
		items = append(items, item)
		total = total.Add(business.CalculatePricing(item.TotalPrice(), item.VAT))

		talpaItems = append(talpaItems, talpa.OrderItem{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Unit:        "kk",
			UnitPrice:   unitPrice.StringFixed(2),
			VATPercent:  quantity.Product.VATPercentage().StringFixed(0),
			StartDate:   itemStart.Format("2006-01-02"),
			EndDate:     itemEnd.Format("2006-01-02"),
		})
	}

	checkout, err := s.payments.CreateOrder(ctx, customer.ID, customer.Email, talpaItems, total.Gross)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.UpdatePermitStatus(ctx, permit.ID, constants.PermitStatusPaymentInProgress); err != nil {
		return nil, err
	}

	s.events.Record(ctx, db.CreatePermitEventParams{
		PermitID: permit.ID,
		Type:     business.EventTypeUpdated,
		Key:      business.EventKeyCreateOrder,
		Message:  "Checkout order created",
		Context: map[string]interface{}{
			"order_id":    order.ID,
			"price_total": total.Gross.StringFixed(2),
		},
	})

	s.logger.Info("checkout order created",
		zap.String("order_id", order.ID.String()),
		zap.String("permit_id", permit.ID.String()),
		zap.String("total", total.Gross.StringFixed(2)))

	return &CheckoutOrder{
		Order:       order,
		Items:       items,
		CheckoutURL: checkout.CheckoutURL,
		Total:       total,
	}, nil
}

// ConfirmOrder marks an order paid and makes its permits valid. Called
// from the payment platform's payment webhook.
func (s *OrderService) ConfirmOrder(ctx context.Context, orderID, talpaOrderID uuid.UUID) (*business.Order, error) {
	order, err := s.db.ConfirmOrder(ctx, orderID, talpaOrderID)
	if err != nil {
		return nil, err
	}

	items, err := s.db.ListOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	customer, err := s.db.GetCustomer(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}

	confirmed := make(map[uuid.UUID]bool)
	for _, item := range items {
		if confirmed[item.PermitID] {
			continue
		}
		confirmed[item.PermitID] = true

		permit, err := s.db.UpdatePermitStatus(ctx, item.PermitID, constants.PermitStatusValid)
		if err != nil {
			return nil, err
		}
		if err := s.email.SendPermitConfirmation(ctx, customer, permit); err != nil {
			s.logger.Warn("failed to send permit confirmation email",
				zap.Error(err),
				zap.String("permit_id", permit.ID.String()))
		}
	}

	s.logger.Info("order confirmed",
		zap.String("order_id", order.ID.String()),
		zap.String("talpa_order_id", talpaOrderID.String()))
	return order, nil
}

// CancelOrder abandons a draft order and returns its permits to draft.
func (s *OrderService) CancelOrder(ctx context.Context, orderID uuid.UUID) error {
	items, err := s.db.ListOrderItems(ctx, orderID)
	if err != nil {
		return err
	}
	if err := s.db.CancelOrder(ctx, orderID); err != nil {
		return err
	}

	reverted := make(map[uuid.UUID]bool)
	for _, item := range items {
		if reverted[item.PermitID] {
			continue
		}
		reverted[item.PermitID] = true
		if _, err := s.db.UpdatePermitStatus(ctx, item.PermitID, constants.PermitStatusDraft); err != nil {
			return err
		}
	}
	return nil
}

// GetOrder returns an order by id.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*business.Order, error) {
	return s.db.GetOrder(ctx, id)
}

// ListRefunds returns refunds in the given status, oldest first.
func (s *OrderService) ListRefunds(ctx context.Context, status string) ([]*business.Refund, error) {
	return s.db.ListRefundsByStatus(ctx, status)
}

// SettleRefund accepts or rejects an open refund. Settled refunds are
// final.
func (s *OrderService) SettleRefund(ctx context.Context, id uuid.UUID, status string) (*business.Refund, error) {
	refund, err := s.db.GetRefund(ctx, id)
	if err != nil {
		return nil, err
	}
	if refund.Status != constants.RefundStatusOpen {
		return nil, business.ErrRefundNotOpen
	}
	settled, err := s.db.UpdateRefundStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.logger.Info("refund settled",
		zap.String("refund_id", id.String()),
		zap.String("status", status))
	return settled, nil
}

// GetRefundPreview returns the per-VAT-rate refundable totals for a
// permit without creating anything.
func (s *OrderService) GetRefundPreview(ctx context.Context, permitID uuid.UUID, asOf time.Time) ([]*business.VATRefundTotal, error) {
	permit, err := s.db.GetPermit(ctx, permitID)
	if err != nil {
		return nil, err
	}
	return s.pricing.GetVATRefundTotals(ctx, permit, asOf)
}

// CreateRefundsForPermit turns the permit's unused order items into
// open refunds, one per VAT rate, and flags the items so they are not
// refunded twice.
func (s *OrderService) CreateRefundsForPermit(ctx context.Context, permitID uuid.UUID, iban string, asOf time.Time) ([]*business.Refund, error) {
	permit, err := s.db.GetPermit(ctx, permitID)
	if err != nil {
		return nil, err
	}
	customer, err := s.db.GetCustomer(ctx, permit.CustomerID)
	if err != nil {
		return nil, err
	}

	totals, err := s.pricing.GetVATRefundTotals(ctx, permit, asOf)
	if err != nil {
		return nil, err
	}

	var refunds []*business.Refund
	for _, total := range totals {
		if !total.Total.IsPositive() {
			continue
		}

		refund, err := s.db.CreateRefund(ctx, db.CreateRefundParams{
			OrderID: total.Items[0].OrderItem.OrderID,
			Name:    customer.FirstName + " " + customer.LastName,
			Amount:  total.Total.Round(2),
			VAT:     total.VAT,
			IBAN:    iban,
		})
		if err != nil {
			return nil, err
		}
		refunds = append(refunds, refund)

		itemIDs := make([]uuid.UUID, 0, len(total.Items))
		for _, item := range total.Items {
			itemIDs = append(itemIDs, item.OrderItem.ID)
		}
		if err := s.db.MarkOrderItemsRefunded(ctx, itemIDs); err != nil {
			return nil, err
		}

		if err := s.email.SendRefundCreated(ctx, customer, refund); err != nil {
			s.logger.Warn("failed to send refund email",
				zap.Error(err),
				zap.String("refund_id", refund.ID.String()))
		}

		s.events.Record(ctx, db.CreatePermitEventParams{
			PermitID: permit.ID,
			Type:     business.EventTypeUpdated,
			Key:      business.EventKeyCreateRefund,
			Message:  "Refund created",
			Context: map[string]interface{}{
				"refund_id": refund.ID,
				"amount":    refund.Amount.StringFixed(2),
			},
		})
	}
	return refunds, nil
}

// GetTotalRefundAmount returns the total refundable amount of the
// permit's latest order as of the given time.
func (s *OrderService) GetTotalRefundAmount(ctx context.Context, permitID uuid.UUID, asOf time.Time) (decimal.Decimal, error) {
	permit, err := s.db.GetPermit(ctx, permitID)
	if err != nil {
		return decimal.Zero, err
	}
	return s.pricing.GetTotalRefundAmount(ctx, permit, asOf)
}
