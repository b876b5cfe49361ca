package handlers

import (
	"context"
	"net/http"

	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/models/dto"
	"github.com/gin-gonic/gin"
)

type ChargeService interface {
	CreateCharge(ctx context.Context, chargeDTO *dto.Charge) (*dto.ChargeResult, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}

type ChargeHandler struct {
	Service ChargeService
}

func NewChargeHandler(s ChargeService) *ChargeHandler {
	return &ChargeHandler{Service: s}
}

// POST /charges
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var req dto.Charge
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.Service.CreateCharge(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /transactions
func (h *ChargeHandler) ListTransactions(c *gin.Context) {
	txs, err := h.Service.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, txs)
}
