package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/security"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const ReceivedMessage = "Notificação recebida com sucesso"

type NotificationService interface {
	Archive(ctx context.Context, body []byte) string
	ProcessArchived(ctx context.Context, body []byte, location string) (*models.CanonicalNotification, error)
	Status(ctx context.Context) (*models.NotificationStatus, error)
}

type WebhookHandler struct {
	Service NotificationService
	// Secret enables signature checks when non-empty.
	Secret          string
	SignatureHeader string
}

func NewWebhookHandler(s NotificationService, secret, signatureHeader string) *WebhookHandler {
	return &WebhookHandler{Service: s, Secret: secret, SignatureHeader: signatureHeader}
}

// POST /webhook/pix
func (h *WebhookHandler) ReceiveNotification(c *gin.Context) {
	ctx := c.Request.Context()
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.fail(c, errs.Malformed(err), nil)
		return
	}

	location := h.Service.Archive(ctx, body)

	if h.Secret != "" && !security.VerifyWebhookSignature(body, c.GetHeader(h.SignatureHeader), h.Secret) {
		logrus.WithField("archive_location", location).Warn("rejected notification with invalid signature")
		h.fail(c, errs.ErrInvalidSignature, nil)
		return
	}

	notification, err := h.Service.ProcessArchived(ctx, body, location)
	if err != nil {
		var raw map[string]any
		var unrecognized *errs.UnrecognizedPayloadError
		switch {
		case errors.As(err, &unrecognized):
			raw = unrecognized.Raw
		case notification != nil:
			raw = notification.RawPayload
		}
		h.fail(c, err, raw)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"message":       ReceivedMessage,
		"processamento": notification,
	})
}

func (h *WebhookHandler) fail(c *gin.Context, err error, raw map[string]any) {
	code := statusFor(err)
	entry := logrus.WithFields(errs.Fields(err)).WithField("http_status", code)
	if code >= http.StatusInternalServerError {
		entry.Error("notification processing failed")
	} else {
		entry.Warn("notification rejected")
	}

	resp := gin.H{
		"status":  "error",
		"message": fmt.Sprintf("Erro ao processar notificação: %s", err.Error()),
	}
	if raw != nil {
		resp["raw_payload"] = raw
	}
	c.JSON(code, resp)
}

// GET /webhook/pix/status
func (h *WebhookHandler) Status(c *gin.Context) {
	status, err := h.Service.Status(c.Request.Context())
	if err != nil {
		logrus.WithFields(errs.Fields(err)).Error("status check failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": fmt.Sprintf("Erro ao verificar status: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, status)
}

// HandleEvents processes notification bodies relayed through Kafka. The
// signature check only applies to the HTTP path.
func (h *WebhookHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	if topic != models.InboundNotificationsTopic {
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}

	location := h.Service.Archive(ctx, value)
	if _, err := h.Service.ProcessArchived(ctx, value, location); err != nil {
		return errs.Wrapf(err, "process notification from %s", topic)
	}
	return nil
}
