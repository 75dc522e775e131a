package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/services"
)

// OrderHandler exposes checkout orders, the payment webhook and refund
// computations.
type OrderHandler struct {
	orders *services.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrderRequest identifies the draft permit being paid for.
type CreateOrderRequest struct {
	PermitID uuid.UUID `json:"permit_id" binding:"required"`
}

// CreateOrder prices a draft permit and opens a checkout with the
// payment platform.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	checkout, err := h.orders.CreateOrderForPermit(c.Request.Context(), req.PermitID, time.Now())
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendSuccess(c, http.StatusCreated, checkout)
}

// PaymentWebhookRequest is the payment platform's payment notification.
type PaymentWebhookRequest struct {
	OrderID      uuid.UUID `json:"order_id" binding:"required"`
	TalpaOrderID uuid.UUID `json:"talpa_order_id" binding:"required"`
	EventType    string    `json:"event_type" binding:"required,oneof=PAYMENT_PAID PAYMENT_CANCELLED"`
}

// PaymentWebhook confirms or cancels an order based on the payment
// platform's notification.
func (h *OrderHandler) PaymentWebhook(c *gin.Context) {
	var req PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	switch req.EventType {
	case "PAYMENT_PAID":
		order, err := h.orders.ConfirmOrder(c.Request.Context(), req.OrderID, req.TalpaOrderID)
		if err != nil {
			handleServiceError(c, err, "Order not found")
			return
		}
		sendSuccess(c, http.StatusOK, order)
	case "PAYMENT_CANCELLED":
		if err := h.orders.CancelOrder(c.Request.Context(), req.OrderID); err != nil {
			handleServiceError(c, err, "Order not found")
			return
		}
		sendSuccess(c, http.StatusOK, SuccessResponse{Message: "Order cancelled"})
	}
}

// GetRefundPreview returns the refundable totals per VAT rate for a
// permit without creating refunds.
func (h *OrderHandler) GetRefundPreview(c *gin.Context) {
	permitID, err := uuid.Parse(c.Param("permit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid permit ID", err)
		return
	}

	totals, err := h.orders.GetRefundPreview(c.Request.Context(), permitID, time.Now())
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendList(c, totals)
}

// GetOrder returns an order by id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Order not found")
		return
	}
	sendSuccess(c, http.StatusOK, order)
}

// ListRefunds returns refunds awaiting settlement. The status filter
// defaults to open refunds.
func (h *OrderHandler) ListRefunds(c *gin.Context) {
	status := c.DefaultQuery("status", constants.RefundStatusOpen)

	refunds, err := h.orders.ListRefunds(c.Request.Context(), status)
	if err != nil {
		handleServiceError(c, err, "Refunds not found")
		return
	}
	sendList(c, refunds)
}

// SettleRefundRequest carries the settlement decision.
type SettleRefundRequest struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED REJECTED"`
}

// SettleRefund accepts or rejects an open refund.
func (h *OrderHandler) SettleRefund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("refund_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid refund ID", err)
		return
	}

	var req SettleRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	refund, err := h.orders.SettleRefund(c.Request.Context(), id, req.Status)
	if err != nil {
		handleServiceError(c, err, "Refund not found")
		return
	}
	sendSuccess(c, http.StatusOK, refund)
}

// CreateRefundRequest carries the account the refund is paid to.
type CreateRefundRequest struct {
	IBAN string `json:"iban" binding:"required"`
}

// CreateRefunds turns a permit's unused order items into open refunds.
func (h *OrderHandler) CreateRefunds(c *gin.Context) {
	permitID, err := uuid.Parse(c.Param("permit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid permit ID", err)
		return
	}

	var req CreateRefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	refunds, err := h.orders.CreateRefundsForPermit(c.Request.Context(), permitID, req.IBAN, time.Now())
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendSuccess(c, http.StatusCreated, refunds)
}

// GetTotalRefundAmount returns the refundable amount of the permit's
// latest order.
func (h *OrderHandler) GetTotalRefundAmount(c *gin.Context) {
	permitID, err := uuid.Parse(c.Param("permit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid permit ID", err)
		return
	}

	total, err := h.orders.GetTotalRefundAmount(c.Request.Context(), permitID, time.Now())
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendSuccess(c, http.StatusOK, gin.H{"total": total})
}
