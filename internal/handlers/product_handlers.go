package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/citypermits/permits-api/internal/constants"
	"github.com/citypermits/permits-api/internal/db"
	"github.com/citypermits/permits-api/internal/services"
)

// ProductHandler exposes the zone and price catalog.
type ProductHandler struct {
	products *services.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListZones returns all permit zones.
func (h *ProductHandler) ListZones(c *gin.Context) {
	zones, err := h.products.ListZones(c.Request.Context())
	if err != nil {
		handleServiceError(c, err, "Zones not found")
		return
	}
	sendList(c, zones)
}

// ListProducts returns a zone's price records.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	zoneID, err := uuid.Parse(c.Param("zone_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid zone ID", err)
		return
	}

	products, err := h.products.ListProducts(c.Request.Context(), zoneID)
	if err != nil {
		handleServiceError(c, err, "Zone not found")
		return
	}
	sendList(c, products)
}

// CreateZoneRequest is the admin payload for creating a zone.
type CreateZoneRequest struct {
	Name        string `json:"name" binding:"required"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// CreateZone adds a new permit zone.
func (h *ProductHandler) CreateZone(c *gin.Context) {
	var req CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	zone, err := h.products.CreateZone(c.Request.Context(), db.CreateZoneParams{
		Name:        req.Name,
		Label:       req.Label,
		Description: req.Description,
	})
	if err != nil {
		handleServiceError(c, err, "Zone not found")
		return
	}
	sendSuccess(c, http.StatusCreated, zone)
}

// CreateProductRequest is the admin payload for one price record.
type CreateProductRequest struct {
	Type                string `json:"type" binding:"omitempty,oneof=RESIDENT COMPANY"`
	StartDate           string `json:"start_date" binding:"required"`
	EndDate             string `json:"end_date" binding:"required"`
	UnitPrice           string `json:"unit_price" binding:"required"`
	VAT                 string `json:"vat" binding:"required"`
	LowEmissionDiscount string `json:"low_emission_discount" binding:"required"`
}

// CreateProduct adds a price record to a zone.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	zoneID, err := uuid.Parse(c.Param("zone_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid zone ID", err)
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	params, err := parseProductParams(zoneID, req)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid product data", err)
		return
	}

	product, err := h.products.CreateProduct(c.Request.Context(), params)
	if err != nil {
		handleServiceError(c, err, "Zone not found")
		return
	}
	sendSuccess(c, http.StatusCreated, product)
}

// GetProduct returns a single price record.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err, "Product not found")
		return
	}
	sendSuccess(c, http.StatusOK, product)
}

// UpdateProduct replaces a price record's window and prices.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	parsed, err := parseProductParams(uuid.Nil, req)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid product data", err)
		return
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), db.UpdateProductParams{
		ID:                  id,
		StartDate:           parsed.StartDate,
		EndDate:             parsed.EndDate,
		UnitPrice:           parsed.UnitPrice,
		VAT:                 parsed.VAT,
		LowEmissionDiscount: parsed.LowEmissionDiscount,
	})
	if err != nil {
		handleServiceError(c, err, "Product not found")
		return
	}
	sendSuccess(c, http.StatusOK, product)
}

func parseProductParams(zoneID uuid.UUID, req CreateProductRequest) (db.CreateProductParams, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return db.CreateProductParams{}, err
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return db.CreateProductParams{}, err
	}
	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil {
		return db.CreateProductParams{}, err
	}
	vat, err := decimal.NewFromString(req.VAT)
	if err != nil {
		return db.CreateProductParams{}, err
	}
	discount, err := decimal.NewFromString(req.LowEmissionDiscount)
	if err != nil {
		return db.CreateProductParams{}, err
	}

	productType := req.Type
	if productType == "" {
		productType = constants.ProductTypeResident
	}
	return db.CreateProductParams{
		ZoneID:              zoneID,
		Type:                productType,
		StartDate:           startDate,
		EndDate:             endDate,
		UnitPrice:           unitPrice,
		VAT:                 vat,
		LowEmissionDiscount: discount,
	}, nil
}
