package handlers

import (
	"context"
	"net/http"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type KeyService interface {
	ListKeys(ctx context.Context) ([]models.PaymentKey, error)
	AddKey(ctx context.Context, keyDTO *dto.PaymentKey) (*models.PaymentKey, error)
	DeleteKey(ctx context.Context, id string) error
}

type KeyHandler struct {
	Service KeyService
}

func NewKeyHandler(s KeyService) *KeyHandler {
	return &KeyHandler{Service: s}
}

// GET /keys
func (h *KeyHandler) ListKeys(c *gin.Context) {
	keys, err := h.Service.ListKeys(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, keys)
}

// POST /keys
func (h *KeyHandler) AddKey(c *gin.Context) {
	var req dto.PaymentKey
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	key, err := h.Service.AddKey(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, key)
}

// DELETE /keys/:id
func (h *KeyHandler) DeleteKey(c *gin.Context) {
	if err := h.Service.DeleteKey(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondError(c *gin.Context, err error) {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		logrus.WithFields(errs.Fields(err)).Errorf("%s %s failed", c.Request.Method, c.FullPath())
	}
	c.JSON(code, gin.H{"error": err.Error()})
}
