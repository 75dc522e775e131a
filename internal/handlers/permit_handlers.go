package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/citypermits/permits-api/internal/services"
)

// PermitHandler exposes the permit lifecycle and the pricing engine's
// preview computations.
type PermitHandler struct {
	permits *services.PermitService
	events  *services.EventService
}

// NewPermitHandler creates a new permit handler.
func NewPermitHandler(permits *services.PermitService, events *services.EventService) *PermitHandler {
	return &PermitHandler{permits: permits, events: events}
}

// CreatePermitRequest is the payload for a new draft permit.
type CreatePermitRequest struct {
	CustomerID   uuid.UUID `json:"customer_id" binding:"required"`
	VehicleID    uuid.UUID `json:"vehicle_id" binding:"required"`
	ZoneID       uuid.UUID `json:"zone_id" binding:"required"`
	ContractType string    `json:"contract_type" binding:"required,oneof=FIXED_PERIOD OPEN_ENDED"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	MonthCount   int       `json:"month_count"`
}

// CreatePermit creates a draft permit.
func (h *PermitHandler) CreatePermit(c *gin.Context) {
	var req CreatePermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	permit, err := h.permits.CreateDraftPermit(c.Request.Context(), services.CreateDraftPermitParams{
		CustomerID:   req.CustomerID,
		VehicleID:    req.VehicleID,
		ZoneID:       req.ZoneID,
		ContractType: req.ContractType,
		StartTime:    req.StartTime,
		MonthCount:   req.MonthCount,
	})
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendSuccess(c, http.StatusCreated, permit)
}

// GetPermit returns a permit by id.
func (h *PermitHandler) GetPermit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("permit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid permit ID", err)
		return
	}

	permit, err := h.permits.GetPermit(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendSuccess(c, http.StatusOK, permit)
}

// ListCustomerPermits returns all permits of a customer.
func (h *PermitHandler) ListCustomerPermits(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid customer ID", err)
		return
	}

	permits, err := h.permits.ListPermitsForCustomer(c.Request.Context(), customerID)
	if err != nil {
		handleServiceError(c, err, "Customer not found")
		return
	}
	sendList(c, permits)
}

// EndPermitRequest selects how the permit ends.
type EndPermitRequest struct {
	EndType string `json:"end_type" binding:"required,oneof=IMMEDIATELY PREVIOUS_DAY_END AFTER_CURRENT_PERIOD"`
}

// EndPermit ends a valid permit.
func (h *PermitHandler) EndPermit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("permit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid permit ID", err)
		return
	}

	var req EndPermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	permit, err := h.permits.EndPermit(c.Request.Context(), id, req.EndType, time.Now())
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendSuccess(c, http.StatusOK, permit)
}

// ExtendPermitRequest asks for additional months on a fixed-period
// permit.
type ExtendPermitRequest struct {
	MonthCount int `json:"month_count" binding:"required,min=1,max=12"`
}

// GetExtensionPriceList prices an extension without committing to it.
func (h *PermitHandler) GetExtensionPriceList(c *gin.Context) {
	id, err := uuid.Parse(c.Param("permit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid permit ID", err)
		return
	}

	var req ExtendPermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	items, err := h.permits.GetExtensionPriceList(c.Request.Context(), id, req.MonthCount)
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendList(c, items)
}

// ExtendPermit adds paid months to a fixed-period permit.
func (h *PermitHandler) ExtendPermit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("permit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid permit ID", err)
		return
	}

	var req ExtendPermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	permit, err := h.permits.ExtendPermit(c.Request.Context(), id, req.MonthCount)
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendSuccess(c, http.StatusOK, permit)
}

// PermitPriceRequest describes the prospective permit being priced.
type PermitPriceRequest struct {
	ZoneID        uuid.UUID `json:"zone_id" binding:"required"`
	StartTime     time.Time `json:"start_time" binding:"required"`
	MonthCount    int       `json:"month_count" binding:"required,min=1"`
	IsLowEmission bool      `json:"is_low_emission"`
	IsSecondary   bool      `json:"is_secondary"`
}

// GetPermitPrices returns the checkout price rows for a prospective
// permit before the draft is created.
func (h *PermitHandler) GetPermitPrices(c *gin.Context) {
	var req PermitPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	prices, err := h.permits.GetPermitPrices(c.Request.Context(), req.ZoneID, req.IsLowEmission, req.IsSecondary, req.StartTime, req.MonthCount)
	if err != nil {
		handleServiceError(c, err, "Zone not found")
		return
	}
	sendList(c, prices)
}

// RenewPermit moves an open-ended permit's paid period forward by one
// month after the payment platform has charged the next period.
func (h *PermitHandler) RenewPermit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("permit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid permit ID", err)
		return
	}

	permit, err := h.permits.RenewOpenEndedPermit(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendSuccess(c, http.StatusOK, permit)
}

// PriceChangeRequest previews the price effect of moving the permit to
// another zone or of a changed emission status.
type PriceChangeRequest struct {
	ZoneID        uuid.UUID `json:"zone_id" binding:"required"`
	IsLowEmission bool      `json:"is_low_emission"`
}

// GetPriceChangeList previews the per-month price deltas of a zone or
// vehicle change.
func (h *PermitHandler) GetPriceChangeList(c *gin.Context) {
	id, err := uuid.Parse(c.Param("permit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid permit ID", err)
		return
	}

	var req PriceChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	items, err := h.permits.GetPriceChangeList(c.Request.Context(), id, req.ZoneID, req.IsLowEmission, time.Now())
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendList(c, items)
}

// ListPermitEvents returns a permit's audit history.
func (h *PermitHandler) ListPermitEvents(c *gin.Context) {
	id, err := uuid.Parse(c.Param("permit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid permit ID", err)
		return
	}

	events, err := h.events.ListEvents(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Permit not found")
		return
	}
	sendList(c, events)
}
