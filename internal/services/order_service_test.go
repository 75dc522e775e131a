package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citypermits/permits-api/internal/client/talpa"
	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/mocks"
	"github.com/citypermits/permits-api/internal/services"
	"github.com/citypermits/permits-api/internal/types/business"
)

type orderServiceMocks struct {
	querier  *mocks.MockQuerier
	payments *mocks.MockPaymentPlatform
	email    *mocks.MockEmailSender
}

func newOrderService(t *testing.T) (*services.OrderService, orderServiceMocks) {
	m := orderServiceMocks{
		querier:  mocks.NewMockQuerierForTest(t),
		payments: mocks.NewMockPaymentPlatformForTest(t),
		email:    mocks.NewMockEmailSenderForTest(t),
	}
	pricing := newPricingService(m.querier)
	events := services.NewEventService(m.querier)
	service := services.NewOrderService(m.querier, pricing, m.payments, events, m.email)
	return service, m
}

func TestCreateOrderForPermit(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	zoneID := uuid.New()
	permit := testFixedPermit(zoneID, date(2025, time.January, 15), 6)
	permit.Status = constants.PermitStatusDraft
	permit.CustomerID = uuid.New()

	customer := &business.Customer{
		ID:        permit.CustomerID,
		FirstName: "Maija",
		LastName:  "Meikäläinen",
		Email:     "maija@example.com",
	}
	product := testProduct(zoneID, date(2025, time.January, 1), date(2025, time.December, 31), "60")

	startDate := date(2025, time.January, 15)
	endDate := date(2025, time.July, 14)
	order := &business.Order{ID: uuid.New(), CustomerID: customer.ID, Status: constants.OrderStatusDraft, VAT: product.VAT}
	itemID := uuid.New()

	expectedTotal := business.CalculatePricing(dec("360"), product.VAT)
	expectedTalpaItems := []talpa.OrderItem{{
		ProductName: "Parking zone K",
		Quantity:    6,
		Unit:        "kk",
		UnitPrice:   "60.00",
		VATPercent:  product.VATPercentage().StringFixed(0),
		StartDate:   "2025-01-15",
		EndDate:     "2025-07-14",
	}}
	checkout := &talpa.Order{OrderID: uuid.New(), CheckoutURL: "https://checkout.example.com/abc"}

	m.querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)
	m.querier.EXPECT().GetCustomer(ctx, customer.ID).Return(customer, nil)
	m.querier.EXPECT().
		GetProductsForDateRange(ctx, zoneID, constants.ProductTypeResident, startDate, endDate).
		Return([]*business.Product{product}, nil)
	m.querier.EXPECT().CreateOrder(ctx, customer.ID, product.VAT).Return(order, nil)
	m.querier.EXPECT().CreateOrderItem(ctx, db.CreateOrderItemParams{
		OrderID:   order.ID,
		PermitID:  permit.ID,
		ProductID: product.ID,
		UnitPrice: product.UnitPrice,
		VAT:       product.VAT,
		Quantity:  6,
		StartTime: startDate,
		EndTime:   endDate,
	}).Return(itemID, nil)
	m.payments.EXPECT().
		CreateOrder(ctx, customer.ID, customer.Email, expectedTalpaItems, expectedTotal.Gross).
		Return(checkout, nil)
	m.querier.EXPECT().
		UpdatePermitStatus(ctx, permit.ID, constants.PermitStatusPaymentInProgress).
		Return(permit, nil)
	m.querier.EXPECT().CreatePermitEvent(ctx, gomock.Any()).Return(&business.PermitEvent{}, nil)

	result, err := service.CreateOrderForPermit(ctx, permit.ID, date(2025, time.January, 10))
	require.NoError(t, err)

	assert.Equal(t, order, result.Order)
	assert.Equal(t, "https://checkout.example.com/abc", result.CheckoutURL)
	require.Len(t, result.Items, 1)
	assert.Equal(t, itemID, result.Items[0].ID)
	assert.True(t, result.Total.Gross.Equal(dec("360")))
	assert.True(t, result.Total.Net.Add(result.Total.VAT).Equal(result.Total.Gross))
}

func TestCreateOrderForPermit_PaymentFailureAborts(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	zoneID := uuid.New()
	permit := testFixedPermit(zoneID, date(2025, time.January, 15), 6)
	permit.Status = constants.PermitStatusDraft
	permit.CustomerID = uuid.New()
	customer := &business.Customer{ID: permit.CustomerID, Email: "maija@example.com"}
	product := testProduct(zoneID, date(2025, time.January, 1), date(2025, time.December, 31), "60")
	order := &business.Order{ID: uuid.New(), CustomerID: customer.ID}

	m.querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)
	m.querier.EXPECT().GetCustomer(ctx, customer.ID).Return(customer, nil)
	m.querier.EXPECT().
		GetProductsForDateRange(ctx, zoneID, constants.ProductTypeResident, gomock.Any(), gomock.Any()).
		Return([]*business.Product{product}, nil)
	m.querier.EXPECT().CreateOrder(ctx, customer.ID, product.VAT).Return(order, nil)
	m.querier.EXPECT().CreateOrderItem(ctx, gomock.Any()).Return(uuid.New(), nil)
	m.payments.EXPECT().
		CreateOrder(ctx, customer.ID, customer.Email, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("talpa unavailable"))

	// the permit must not move to PAYMENT_IN_PROGRESS when checkout fails
	_, err := service.CreateOrderForPermit(ctx, permit.ID, date(2025, time.January, 10))
	assert.Error(t, err)
}

func TestConfirmOrder(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	permitID := uuid.New()
	customer := &business.Customer{ID: uuid.New(), Email: "maija@example.com"}
	talpaOrderID := uuid.New()
	order := &business.Order{ID: uuid.New(), CustomerID: customer.ID, Status: constants.OrderStatusConfirmed}
	permit := &business.Permit{ID: permitID, Status: constants.PermitStatusValid}

	// two items for the same permit: the permit is confirmed only once
	items := []*business.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, PermitID: permitID},
		{ID: uuid.New(), OrderID: order.ID, PermitID: permitID},
	}

	m.querier.EXPECT().ConfirmOrder(ctx, order.ID, talpaOrderID).Return(order, nil)
	m.querier.EXPECT().ListOrderItems(ctx, order.ID).Return(items, nil)
	m.querier.EXPECT().GetCustomer(ctx, customer.ID).Return(customer, nil)
	m.querier.EXPECT().
		UpdatePermitStatus(ctx, permitID, constants.PermitStatusValid).
		Return(permit, nil)
	m.email.EXPECT().SendPermitConfirmation(ctx, customer, permit).Return(nil)

	result, err := service.ConfirmOrder(ctx, order.ID, talpaOrderID)
	require.NoError(t, err)
	assert.Equal(t, order, result)
}

func TestConfirmOrder_EmailFailureTolerated(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	permitID := uuid.New()
	customer := &business.Customer{ID: uuid.New(), Email: "maija@example.com"}
	talpaOrderID := uuid.New()
	order := &business.Order{ID: uuid.New(), CustomerID: customer.ID, Status: constants.OrderStatusConfirmed}
	permit := &business.Permit{ID: permitID, Status: constants.PermitStatusValid}

	m.querier.EXPECT().ConfirmOrder(ctx, order.ID, talpaOrderID).Return(order, nil)
	m.querier.EXPECT().ListOrderItems(ctx, order.ID).
		Return([]*business.OrderItem{{ID: uuid.New(), OrderID: order.ID, PermitID: permitID}}, nil)
	m.querier.EXPECT().GetCustomer(ctx, customer.ID).Return(customer, nil)
	m.querier.EXPECT().
		UpdatePermitStatus(ctx, permitID, constants.PermitStatusValid).
		Return(permit, nil)
	m.email.EXPECT().SendPermitConfirmation(ctx, customer, permit).
		Return(errors.New("resend unavailable"))

	_, err := service.ConfirmOrder(ctx, order.ID, talpaOrderID)
	require.NoError(t, err)
}

func TestCancelOrder(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()
	permitID := uuid.New()

	m.querier.EXPECT().ListOrderItems(ctx, orderID).
		Return([]*business.OrderItem{{ID: uuid.New(), OrderID: orderID, PermitID: permitID}}, nil)
	m.querier.EXPECT().CancelOrder(ctx, orderID).Return(nil)
	m.querier.EXPECT().
		UpdatePermitStatus(ctx, permitID, constants.PermitStatusDraft).
		Return(&business.Permit{ID: permitID}, nil)

	assert.NoError(t, service.CancelOrder(ctx, orderID))
}

func TestCreateRefundsForPermit(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	permit := testFixedPermit(uuid.New(), date(2025, time.January, 15), 6)
	permit.CustomerID = uuid.New()
	customer := &business.Customer{
		ID:        permit.CustomerID,
		FirstName: "Maija",
		LastName:  "Meikäläinen",
		Email:     "maija@example.com",
	}
	asOf := date(2025, time.February, 1)
	unusedStart := date(2025, time.February, 15)

	order := &business.Order{ID: uuid.New(), CustomerID: customer.ID, Status: constants.OrderStatusConfirmed}
	item := &business.OrderItem{
		ID:        uuid.New(),
		OrderID:   order.ID,
		PermitID:  permit.ID,
		UnitPrice: dec("60"),
		VAT:       dec("0.255"),
		Quantity:  6,
		StartTime: permit.StartTime,
		EndTime:   *permit.EndTime,
	}
	refund := &business.Refund{
		ID:      uuid.New(),
		OrderID: order.ID,
		Amount:  dec("300"),
		VAT:     item.VAT,
		Status:  constants.RefundStatusOpen,
	}

	m.querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)
	m.querier.EXPECT().GetCustomer(ctx, customer.ID).Return(customer, nil)
	m.querier.EXPECT().ListOrdersForPermit(ctx, permit.ID).
		Return([]*business.Order{order}, nil)
	m.querier.EXPECT().
		ListUnusedOrderItems(ctx, order.ID, permit.ID, unusedStart).
		Return([]*business.OrderItem{item}, nil)
	// five unused months at 60
	m.querier.EXPECT().CreateRefund(ctx, db.CreateRefundParams{
		OrderID: order.ID,
		Name:    "Maija Meikäläinen",
		Amount:  dec("300").Round(2),
		VAT:     item.VAT,
		IBAN:    "FI2112345600000785",
	}).Return(refund, nil)
	m.querier.EXPECT().MarkOrderItemsRefunded(ctx, []uuid.UUID{item.ID}).Return(nil)
	m.email.EXPECT().SendRefundCreated(ctx, customer, refund).Return(nil)
	m.querier.EXPECT().CreatePermitEvent(ctx, gomock.Any()).Return(&business.PermitEvent{}, nil)

	refunds, err := service.CreateRefundsForPermit(ctx, permit.ID, "FI2112345600000785", asOf)
	require.NoError(t, err)
	require.Len(t, refunds, 1)
	assert.Equal(t, refund, refunds[0])
}

func TestCreateRefundsForPermit_NothingToRefund(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	permit := testFixedPermit(uuid.New(), date(2025, time.January, 15), 6)
	permit.CustomerID = uuid.New()
	permit.Status = constants.PermitStatusClosed
	customer := &business.Customer{ID: permit.CustomerID}

	m.querier.EXPECT().GetPermit(ctx, permit.ID).Return(permit, nil)
	m.querier.EXPECT().GetCustomer(ctx, customer.ID).Return(customer, nil)

	refunds, err := service.CreateRefundsForPermit(ctx, permit.ID, "FI2112345600000785", date(2025, time.February, 1))
	require.NoError(t, err)
	assert.Empty(t, refunds)
}

func TestSettleRefund(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	refund := &business.Refund{ID: uuid.New(), Status: constants.RefundStatusOpen}
	settled := *refund
	settled.Status = constants.RefundStatusAccepted

	m.querier.EXPECT().GetRefund(ctx, refund.ID).Return(refund, nil)
	m.querier.EXPECT().UpdateRefundStatus(ctx, refund.ID, constants.RefundStatusAccepted).Return(&settled, nil)

	result, err := service.SettleRefund(ctx, refund.ID, constants.RefundStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, constants.RefundStatusAccepted, result.Status)
}

func TestSettleRefund_AlreadySettled(t *testing.T) {
	service, m := newOrderService(t)
	ctx := context.Background()

	refund := &business.Refund{ID: uuid.New(), Status: constants.RefundStatusRejected}

	m.querier.EXPECT().GetRefund(ctx, refund.ID).Return(refund, nil)

	_, err := service.SettleRefund(ctx, refund.ID, constants.RefundStatusAccepted)
	assert.ErrorIs(t, err, business.ErrRefundNotOpen)
}
