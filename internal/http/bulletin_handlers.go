package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tdiabate/farmpay/internal/http/middleware"
	"github.com/tdiabate/farmpay/internal/model"
	"github.com/tdiabate/farmpay/internal/service"
)

type createBulletinRequest struct {
	FarmerID    string   `json:"farmer_id" binding:"required"`
	Period      string   `json:"period" binding:"required"`
	WeighingIDs []string `json:"weighing_ids" binding:"required"`
}

func (h *Handler) createBulletin(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req createBulletinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	farmerID, err := uuid.Parse(req.FarmerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid farmer_id"})
		return
	}
	weighingIDs := make([]uuid.UUID, 0, len(req.WeighingIDs))
	for _, raw := range req.WeighingIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid weighing id " + raw})
			return
		}
		weighingIDs = append(weighingIDs, id)
	}

	bulletin, err := h.bulletins.Create(c.Request.Context(), service.CreateBulletinInput{
		FarmerID:    farmerID,
		Period:      req.Period,
		WeighingIDs: weighingIDs,
		Principal:   principal,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBulletinResponse(*bulletin))
}

func (h *Handler) getBulletin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	bulletin, err := h.bulletins.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBulletinResponse(*bulletin))
}

func (h *Handler) listFarmerBulletins(c *gin.Context) {
	farmerID, ok := pathID(c)
	if !ok {
		return
	}
	var status *model.BulletinStatus
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		parsed := model.BulletinStatus(strings.ToUpper(raw))
		switch parsed {
		case model.BulletinStatusDraft, model.BulletinStatusValidated, model.BulletinStatusCancelled:
			status = &parsed
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
	}

	bulletins, err := h.bulletins.ListByFarmer(c.Request.Context(), farmerID, status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result := make([]bulletinResponse, 0, len(bulletins))
	for _, bulletin := range bulletins {
		result = append(result, toBulletinResponse(bulletin))
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) validateBulletin(c *gin.Context) {
	h.transitionBulletin(c, h.bulletins.Validate)
}

func (h *Handler) cancelBulletin(c *gin.Context) {
	h.transitionBulletin(c, h.bulletins.Cancel)
}

func (h *Handler) transitionBulletin(c *gin.Context, fn func(ctx context.Context, id uuid.UUID, principal model.Principal) (*model.Bulletin, error)) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	bulletin, err := fn(c.Request.Context(), id, principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBulletinResponse(*bulletin))
}

func (h *Handler) downloadBulletinPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.bulletins.GeneratePDF(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, "application/pdf", result.Content)
}
