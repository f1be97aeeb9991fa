package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tdiabate/farmpay/internal/model"
	"github.com/tdiabate/farmpay/internal/service"
)

type creditRequest struct {
	FarmerID           string          `json:"farmer_id" binding:"required"`
	Type               string          `json:"type" binding:"required"`
	Amount             decimal.Decimal `json:"amount"`
	Description        string          `json:"description"`
	IssuedAt           string          `json:"issued_at" binding:"required"`
	InstallmentsCount  int             `json:"installments_count"`
	DeductionStartDate string          `json:"deduction_start_date"`
}

func (h *Handler) createCredit(c *gin.Context) {
	var req creditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	farmerID, err := uuid.Parse(req.FarmerID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid farmer_id"})
		return
	}
	issuedAt, err := parseDate(req.IssuedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid issued_at"})
		return
	}
	deductionStart, err := parseOptionalDate(req.DeductionStartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deduction_start_date"})
		return
	}

	credit, err := h.credits.Create(c.Request.Context(), service.CreateCreditInput{
		FarmerID:           farmerID,
		Type:               model.CreditType(req.Type),
		Amount:             req.Amount,
		Description:        req.Description,
		IssuedAt:           issuedAt,
		InstallmentsCount:  req.InstallmentsCount,
		DeductionStartDate: deductionStart,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCreditResponse(*credit))
}

func (h *Handler) getCredit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	credit, err := h.credits.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCreditResponse(*credit))
}

func (h *Handler) listFarmerCredits(c *gin.Context) {
	farmerID, ok := pathID(c)
	if !ok {
		return
	}
	credits, err := h.credits.ListByFarmer(c.Request.Context(), farmerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result := make([]creditResponse, 0, len(credits))
	for _, credit := range credits {
		result = append(result, toCreditResponse(credit))
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getCreditBalance(c *gin.Context) {
	farmerID, ok := pathID(c)
	if !ok {
		return
	}
	balance, err := h.credits.OutstandingBalance(c.Request.Context(), farmerID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"farmer_id": farmerID, "outstanding_balance": balance})
}

type markPaidRequest struct {
	PaidDate string `json:"paid_date"`
}

func (h *Handler) markCreditPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	// body is optional: an empty request marks the credit paid today
	var req markPaidRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	paidDate := time.Now()
	if req.PaidDate != "" {
		parsed, err := parseDate(req.PaidDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid paid_date"})
			return
		}
		paidDate = parsed
	}

	if err := h.credits.MarkPaid(c.Request.Context(), id, paidDate); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listInstallments(c *gin.Context) {
	creditID, ok := pathID(c)
	if !ok {
		return
	}
	installments, err := h.credits.Installments(c.Request.Context(), creditID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result := make([]installmentResponse, 0, len(installments))
	for _, inst := range installments {
		result = append(result, toInstallmentResponse(inst))
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) markInstallmentPaid(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.credits.MarkInstallmentPaid(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteCredit(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.credits.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
