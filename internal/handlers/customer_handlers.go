package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/citypermits/permits-api/internal/services"
)

// CustomerHandler resolves customers and vehicles against the national
// registries.
type CustomerHandler struct {
	customers *services.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customers *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// ResolveCustomerRequest carries the contact details the customer
// enters at the start of the purchase flow.
type ResolveCustomerRequest struct {
	NationalIDNumber string `json:"national_id_number" binding:"required"`
	Email            string `json:"email" binding:"omitempty,email"`
	PhoneNumber      string `json:"phone_number"`
	Language         string `json:"language" binding:"omitempty,oneof=fi sv en"`
}

// ResolveCustomer fetches the customer from the population registry and
// creates or refreshes the local record.
func (h *CustomerHandler) ResolveCustomer(c *gin.Context) {
	var req ResolveCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	customer, err := h.customers.ResolveCustomer(c.Request.Context(), services.ResolveCustomerParams{
		NationalIDNumber: req.NationalIDNumber,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Language:         req.Language,
	})
	if err != nil {
		handleServiceError(c, err, "Customer not found")
		return
	}
	sendSuccess(c, http.StatusOK, customer)
}

// GetCustomer returns a customer by id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("customer_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid customer ID", err)
		return
	}

	customer, err := h.customers.GetCustomer(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Customer not found")
		return
	}
	sendSuccess(c, http.StatusOK, customer)
}

// FetchVehicleRequest identifies the vehicle being added to a permit.
type FetchVehicleRequest struct {
	RegistrationNumber string `json:"registration_number" binding:"required"`
	NationalIDNumber   string `json:"national_id_number" binding:"required"`
}

// FetchVehicle looks the vehicle up from the transport registry,
// verifies the customer holds it and returns the stored record with its
// low emission status.
func (h *CustomerHandler) FetchVehicle(c *gin.Context) {
	var req FetchVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.customers.VerifyDrivingLicence(c.Request.Context(), req.NationalIDNumber); err != nil {
		handleServiceError(c, err, "Driving licence not found")
		return
	}

	vehicle, err := h.customers.FetchVehicle(c.Request.Context(), req.RegistrationNumber, req.NationalIDNumber)
	if err != nil {
		handleServiceError(c, err, "Vehicle not found")
		return
	}
	sendSuccess(c, http.StatusOK, vehicle)
}

// GetVehicle returns the stored vehicle record.
func (h *CustomerHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.customers.GetVehicle(c.Request.Context(), c.Param("registration_number"))
	if err != nil {
		handleServiceError(c, err, "Vehicle not found")
		return
	}
	sendSuccess(c, http.StatusOK, vehicle)
}
