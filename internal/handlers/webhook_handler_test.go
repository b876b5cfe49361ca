package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/handlers"
	"github.com/BrunoMartendal/webhook-pix2/internal/handlers/mocks"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const archivedAt = "logs/pix_notification_20240101_120000_abcd1234.json"

func webhookRouter(h *handlers.WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/webhook/pix", h.ReceiveNotification)
	r.GET("/webhook/pix/status", h.Status)
	return r
}

func post(t *testing.T, r http.Handler, path string, body []byte, header map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestReceiveNotification_Success(t *testing.T) {
	svc := mocks.NewMockNotificationService(t)
	body := []byte(`{"pix":[{"txid":"abc123","status":"CONCLUIDA","valor":"100.50"}]}`)
	status := "CONCLUIDA"
	txid := "abc123"

	svc.EXPECT().Archive(mock.Anything, body).Return(archivedAt).Once()
	svc.EXPECT().
		ProcessArchived(mock.Anything, body, archivedAt).
		Return(&models.CanonicalNotification{Event: models.UnknownEvent, Status: &status, ProcessorTransactionID: &txid}, nil).
		Once()

	w, resp := post(t, webhookRouter(handlers.NewWebhookHandler(svc, "", "")), "/webhook/pix", body, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, handlers.ReceivedMessage, resp["message"])
	processing := resp["processamento"].(map[string]any)
	assert.Equal(t, "abc123", processing["processor_transaction_id"])
	assert.Equal(t, "CONCLUIDA", processing["status"])
}

func TestReceiveNotification_ErrorMapping(t *testing.T) {
	raw := map[string]any{"foo": "bar"}
	tests := []struct {
		name       string
		err        error
		partial    *models.CanonicalNotification
		wantCode   int
		wantRawKey bool
	}{
		{name: "malformed", err: errs.Malformed(errors.New("unexpected EOF")), wantCode: http.StatusBadRequest},
		{name: "unrecognized", err: &errs.UnrecognizedPayloadError{Raw: raw}, wantCode: http.StatusUnprocessableEntity, wantRawKey: true},
		{
			name:       "store unavailable",
			err:        errs.StoreUnavailable(errors.New("database is locked")),
			partial:    &models.CanonicalNotification{RawPayload: raw},
			wantCode:   http.StatusServiceUnavailable,
			wantRawKey: true,
		},
		{name: "other", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockNotificationService(t)
			body := []byte(`{"foo":"bar"}`)

			svc.EXPECT().Archive(mock.Anything, body).Return(archivedAt).Once()
			svc.EXPECT().ProcessArchived(mock.Anything, body, archivedAt).Return(tt.partial, tt.err).Once()

			w, resp := post(t, webhookRouter(handlers.NewWebhookHandler(svc, "", "")), "/webhook/pix", body, nil)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "error", resp["status"])
			assert.Contains(t, resp["message"], "Erro ao processar notificação")
			_, hasRaw := resp["raw_payload"]
			assert.Equal(t, tt.wantRawKey, hasRaw)
		})
	}
}

func TestReceiveNotification_Signature(t *testing.T) {
	body := []byte(`{"pix":[{"txid":"abc123","status":"CONCLUIDA"}]}`)
	const secret = "s3cr3t"

	t.Run("invalid signature is archived then rejected", func(t *testing.T) {
		svc := mocks.NewMockNotificationService(t)
		svc.EXPECT().Archive(mock.Anything, body).Return(archivedAt).Once()

		h := handlers.NewWebhookHandler(svc, secret, "X-Webhook-Signature")
		w, resp := post(t, webhookRouter(h), "/webhook/pix", body, map[string]string{"X-Webhook-Signature": "deadbeef"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "error", resp["status"])
		svc.AssertNotCalled(t, "ProcessArchived", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("valid signature is processed", func(t *testing.T) {
		svc := mocks.NewMockNotificationService(t)
		svc.EXPECT().Archive(mock.Anything, body).Return(archivedAt).Once()
		svc.EXPECT().ProcessArchived(mock.Anything, body, archivedAt).Return(&models.CanonicalNotification{}, nil).Once()

		h := handlers.NewWebhookHandler(svc, secret, "X-Webhook-Signature")
		w, _ := post(t, webhookRouter(h), "/webhook/pix", body, map[string]string{"X-Webhook-Signature": security.Sign(body, secret)})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestStatus(t *testing.T) {
	svc := mocks.NewMockNotificationService(t)
	svc.EXPECT().Status(mock.Anything).Return(&models.NotificationStatus{
		Status:  "online",
		Message: "Serviço de webhook Pix está ativo",
		Recent:  []string{"pix_notification_20240101_120000_abcd1234.json"},
		Total:   1,
	}, nil).Once()

	w := httptest.NewRecorder()
	webhookRouter(handlers.NewWebhookHandler(svc, "", "")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/webhook/pix/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"status": "online",
		"message": "Serviço de webhook Pix está ativo",
		"ultimas_notificacoes": ["pix_notification_20240101_120000_abcd1234.json"],
		"total_notificacoes": 1
	}`, w.Body.String())
}

func TestStatus_Error(t *testing.T) {
	svc := mocks.NewMockNotificationService(t)
	svc.EXPECT().Status(mock.Anything).Return(nil, errors.New("permission denied")).Once()

	w := httptest.NewRecorder()
	webhookRouter(handlers.NewWebhookHandler(svc, "", "")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/webhook/pix/status", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"status":"error","message":"Erro ao verificar status: permission denied"}`, w.Body.String())
}

func TestHandleEvents(t *testing.T) {
	svc := mocks.NewMockNotificationService(t)
	h := handlers.NewWebhookHandler(svc, "ignored", "X-Webhook-Signature")
	ctx := context.Background()
	body := []byte(`{"pix":[{"txid":"abc123"}]}`)

	svc.EXPECT().Archive(ctx, body).Return("").Once()
	svc.EXPECT().ProcessArchived(ctx, body, "").Return(&models.CanonicalNotification{}, nil).Once()

	assert.NoError(t, h.HandleEvents(ctx, models.InboundNotificationsTopic, body))
}

func TestHandleEvents_KeepsErrorKind(t *testing.T) {
	svc := mocks.NewMockNotificationService(t)
	h := handlers.NewWebhookHandler(svc, "", "")
	ctx := context.Background()
	body := []byte(`not json`)

	svc.EXPECT().Archive(ctx, body).Return(archivedAt).Once()
	svc.EXPECT().ProcessArchived(ctx, body, archivedAt).Return(nil, errs.Malformed(errors.New("invalid character"))).Once()

	err := h.HandleEvents(ctx, models.InboundNotificationsTopic, body)
	assert.ErrorIs(t, err, errs.ErrMalformedPayload)
}

func TestHandleEvents_UnknownTopic(t *testing.T) {
	svc := mocks.NewMockNotificationService(t)
	h := handlers.NewWebhookHandler(svc, "", "")

	err := h.HandleEvents(context.Background(), "other.topic", []byte(`{}`))
	assert.EqualError(t, err, "topic not allowed other.topic")
	svc.AssertNotCalled(t, "Archive", mock.Anything, mock.Anything)
}
