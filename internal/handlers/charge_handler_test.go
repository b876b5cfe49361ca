package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/handlers"
	"github.com/BrunoMartendal/webhook-pix2/internal/handlers/mocks"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func chargeRouter(h *handlers.ChargeHandler) *gin.Engine {
	r := gin.New()
	r.POST("/charges", h.CreateCharge)
	r.GET("/transactions", h.ListTransactions)
	return r
}

func TestCreateCharge_Created(t *testing.T) {
	svc := mocks.NewMockChargeService(t)
	svc.EXPECT().
		CreateCharge(mock.Anything, mock.MatchedBy(func(c *dto.Charge) bool {
			return c.KeyID == "k1" && c.Amount.Equal(decimal.RequireFromString("100.5"))
		})).
		Return(&dto.ChargeResult{
			Transaction: &models.Transaction{ID: "t1", ProcessorTransactionID: "abc123", Status: models.StatusPending},
			BRCode:      "000201",
			QRCodeURL:   "https://qr.example/?data=000201",
		}, nil).
		Once()

	w, resp := post(t, chargeRouter(handlers.NewChargeHandler(svc)), "/charges", []byte(`{"key_id":"k1","amount":100.5}`), nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "000201", resp["br_code"])
	assert.Equal(t, "abc123", resp["transaction"].(map[string]any)["processor_transaction_id"])
}

func TestCreateCharge_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "validation", err: errs.Validation("amount must be greater than zero"), wantCode: http.StatusBadRequest},
		{name: "unknown key", err: errs.Wrapf(errs.ErrNotFound, "payment key %s", "k9"), wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockChargeService(t)
			svc.EXPECT().CreateCharge(mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w, resp := post(t, chargeRouter(handlers.NewChargeHandler(svc)), "/charges", []byte(`{"key_id":"k9","amount":1}`), nil)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.NotEmpty(t, resp["error"])
		})
	}
}

func TestListTransactions_Handler(t *testing.T) {
	svc := mocks.NewMockChargeService(t)
	svc.EXPECT().ListTransactions(mock.Anything).Return([]models.Transaction{{ID: "t1", Status: models.StatusConfirmed}}, nil).Once()

	w := httptest.NewRecorder()
	chargeRouter(handlers.NewChargeHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/transactions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"CONFIRMED"`)
}
