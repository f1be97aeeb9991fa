package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tdiabate/farmpay/internal/service"
)

type weighingRequest struct {
	FarmerID           string           `json:"farmer_id" binding:"required"`
	PlantationID       string           `json:"plantation_id"`
	TransporterID      string           `json:"transporter_id"`
	VehicleID          string           `json:"vehicle_id"`
	TicketNumber       string           `json:"ticket_number" binding:"required"`
	WeighedAt          string           `json:"weighed_at" binding:"required"`
	LoadedWeightKg     decimal.Decimal  `json:"loaded_weight_kg"`
	EmptyWeightKg      decimal.Decimal  `json:"empty_weight_kg"`
	PricePerKg         decimal.Decimal  `json:"price_per_kg"`
	TransportCostPerKg decimal.Decimal  `json:"transport_cost_per_kg"`
	TaxRate            *decimal.Decimal `json:"tax_rate"`
}

func (h *Handler) weighingInput(c *gin.Context, req weighingRequest) (service.WeighingInput, bool) {
	farmerID, err := uuid.Parse(req.FarmerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid farmer_id"})
		return service.WeighingInput{}, false
	}
	plantationID, err := parseOptionalUUID(req.PlantationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plantation_id"})
		return service.WeighingInput{}, false
	}
	transporterID, err := parseOptionalUUID(req.TransporterID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transporter_id"})
		return service.WeighingInput{}, false
	}
	vehicleID, err := parseOptionalUUID(req.VehicleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_id"})
		return service.WeighingInput{}, false
	}
	weighedAt, err := parseDate(req.WeighedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weighed_at"})
		return service.WeighingInput{}, false
	}

	taxRate := h.defaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}

	return service.WeighingInput{
		FarmerID:           farmerID,
		PlantationID:       plantationID,
		TransporterID:      transporterID,
		VehicleID:          vehicleID,
		TicketNumber:       req.TicketNumber,
		WeighedAt:          weighedAt,
		LoadedWeightKg:     req.LoadedWeightKg,
		EmptyWeightKg:      req.EmptyWeightKg,
		PricePerKg:         req.PricePerKg,
		TransportCostPerKg: req.TransportCostPerKg,
		TaxRate:            taxRate,
	}, true
}

func (h *Handler) createWeighing(c *gin.Context) {
	var req weighingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := h.weighingInput(c, req)
	if !ok {
		return
	}

	weighing, err := h.weighings.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toWeighingResponse(*weighing))
}

func (h *Handler) getWeighing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	weighing, err := h.weighings.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWeighingResponse(*weighing))
}

func (h *Handler) updateWeighing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req weighingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input, ok := h.weighingInput(c, req)
	if !ok {
		return
	}

	weighing, err := h.weighings.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWeighingResponse(*weighing))
}

func (h *Handler) deleteWeighing(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.weighings.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listFarmerWeighings(c *gin.Context) {
	farmerID, ok := pathID(c)
	if !ok {
		return
	}
	weighings, err := h.weighings.ListByFarmer(c.Request.Context(), farmerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWeighingResponses(weighings))
}

func (h *Handler) listUnpaidWeighings(c *gin.Context) {
	farmerID, ok := pathID(c)
	if !ok {
		return
	}
	weighings, err := h.bulletins.UnpaidWeighings(c.Request.Context(), farmerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toWeighingResponses(weighings))
}
