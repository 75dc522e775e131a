package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/citypermits/permits-api/internal/client/dvv"
	"github.com/citypermits/permits-api/internal/client/traficom"
	"github.com/citypermits/permits-api/internal/logger"
	"github.com/citypermits/permits-api/internal/services"
	"github.com/citypermits/permits-api/internal/types/business"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleServiceError maps domain errors to HTTP status codes.
func handleServiceError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	case errors.Is(err, business.ErrDuplicatePermit),
		errors.Is(err, business.ErrMaxPermits),
		errors.Is(err, business.ErrInvalidMonthCount):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, business.ErrPermitCanNotBeEnded):
		sendError(c, http.StatusConflict, err.Error(), err)
	case errors.Is(err, services.ErrNoDrivingLicence),
		errors.Is(err, traficom.ErrNotVehicleHolder):
		sendError(c, http.StatusForbidden, err.Error(), err)
	case errors.Is(err, traficom.ErrVehicleNotFound),
		errors.Is(err, dvv.ErrPersonNotFound):
		sendError(c, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, business.ErrProductCatalog):
		sendError(c, http.StatusInternalServerError, err.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}
