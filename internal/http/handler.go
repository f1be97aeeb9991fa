package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tdiabate/farmpay/internal/service"
)

type Handler struct {
	registry       *service.RegistryService
	weighings      *service.WeighingService
	credits        *service.CreditService
	bulletins      *service.BulletinService
	reports        *service.ReportService
	defaultTaxRate decimal.Decimal
	log            zerolog.Logger
}

func NewHandler(
	registry *service.RegistryService,
	weighings *service.WeighingService,
	credits *service.CreditService,
	bulletins *service.BulletinService,
	reports *service.ReportService,
	defaultTaxRate decimal.Decimal,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		registry:       registry,
		weighings:      weighings,
		credits:        credits,
		bulletins:      bulletins,
		reports:        reports,
		defaultTaxRate: defaultTaxRate,
		log:            log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.POST("/farmers", h.createFarmer)
	protected.GET("/farmers", h.listFarmers)
	protected.GET("/farmers/:id", h.getFarmer)
	protected.PUT("/farmers/:id", h.updateFarmer)
	protected.DELETE("/farmers/:id", h.deleteFarmer)
	protected.GET("/farmers/:id/plantations", h.listPlantations)
	protected.GET("/farmers/:id/weighings", h.listFarmerWeighings)
	protected.GET("/farmers/:id/weighings/unpaid", h.listUnpaidWeighings)
	protected.GET("/farmers/:id/credits", h.listFarmerCredits)
	protected.GET("/farmers/:id/credits/balance", h.getCreditBalance)
	protected.GET("/farmers/:id/bulletins", h.listFarmerBulletins)

	protected.POST("/plantations", h.createPlantation)
	protected.GET("/plantations/:id", h.getPlantation)
	protected.PUT("/plantations/:id", h.updatePlantation)
	protected.DELETE("/plantations/:id", h.deletePlantation)

	protected.POST("/employees", h.createEmployee)
	protected.GET("/employees", h.listEmployees)
	protected.GET("/employees/:id", h.getEmployee)
	protected.PUT("/employees/:id", h.updateEmployee)
	protected.DELETE("/employees/:id", h.deleteEmployee)

	protected.POST("/transporters", h.createTransporter)
	protected.GET("/transporters", h.listTransporters)
	protected.GET("/transporters/:id", h.getTransporter)
	protected.PUT("/transporters/:id", h.updateTransporter)
	protected.DELETE("/transporters/:id", h.deleteTransporter)

	protected.POST("/vehicles", h.createVehicle)
	protected.GET("/vehicles", h.listVehicles)
	protected.GET("/vehicles/:id", h.getVehicle)
	protected.PUT("/vehicles/:id", h.updateVehicle)
	protected.DELETE("/vehicles/:id", h.deleteVehicle)

	protected.POST("/weighings", h.createWeighing)
	protected.GET("/weighings/:id", h.getWeighing)
	protected.PUT("/weighings/:id", h.updateWeighing)
	protected.DELETE("/weighings/:id", h.deleteWeighing)

	protected.POST("/credits", h.createCredit)
	protected.GET("/credits/:id", h.getCredit)
	protected.DELETE("/credits/:id", h.deleteCredit)
	protected.POST("/credits/:id/paid", h.markCreditPaid)
	protected.GET("/credits/:id/installments", h.listInstallments)
	protected.POST("/installments/:id/paid", h.markInstallmentPaid)

	protected.POST("/bulletins", h.createBulletin)
	protected.GET("/bulletins/:id", h.getBulletin)
	protected.POST("/bulletins/:id/validate", h.validateBulletin)
	protected.POST("/bulletins/:id/cancel", h.cancelBulletin)
	protected.GET("/bulletins/:id/pdf", h.downloadBulletinPDF)

	protected.POST("/reports/weighings/export", h.exportWeighings)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parsed, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseOptionalUUID(raw string) (*uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, err
	}
	return &id, nil
}
