package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/handlers"
	"github.com/BrunoMartendal/webhook-pix2/internal/handlers/mocks"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func keyRouter(h *handlers.KeyHandler) *gin.Engine {
	r := gin.New()
	r.GET("/keys", h.ListKeys)
	r.POST("/keys", h.AddKey)
	r.DELETE("/keys/:id", h.DeleteKey)
	return r
}

func TestAddKey_Created(t *testing.T) {
	svc := mocks.NewMockKeyService(t)
	svc.EXPECT().
		AddKey(mock.Anything, &dto.PaymentKey{Description: "Principal", KeyType: "E-mail", KeyValue: "exemplo@pix.com"}).
		Return(&models.PaymentKey{ID: "k1", Description: "Principal", KeyType: models.KeyTypeEmail, KeyValue: "exemplo@pix.com"}, nil).
		Once()

	w, resp := post(t, keyRouter(handlers.NewKeyHandler(svc)), "/keys",
		[]byte(`{"description":"Principal","key_type":"E-mail","key_value":"exemplo@pix.com"}`), nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "k1", resp["id"])
}

func TestAddKey_BadRequest(t *testing.T) {
	svc := mocks.NewMockKeyService(t)

	w, resp := post(t, keyRouter(handlers.NewKeyHandler(svc)), "/keys", []byte(`{"description":`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", resp["error"])
}

func TestAddKey_ValidationError(t *testing.T) {
	svc := mocks.NewMockKeyService(t)
	svc.EXPECT().AddKey(mock.Anything, mock.Anything).Return(nil, errs.Validation("key value is required")).Once()

	w, _ := post(t, keyRouter(handlers.NewKeyHandler(svc)), "/keys", []byte(`{"description":"x","key_type":"CPF"}`), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListKeys_Handler(t *testing.T) {
	svc := mocks.NewMockKeyService(t)
	svc.EXPECT().ListKeys(mock.Anything).Return([]models.PaymentKey{{ID: "k1"}, {ID: "k2"}}, nil).Once()

	w := httptest.NewRecorder()
	keyRouter(handlers.NewKeyHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/keys", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"k2"`)
}

func TestDeleteKey_Handler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "deleted", wantCode: http.StatusNoContent},
		{name: "unknown", err: errs.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "store down", err: errs.StoreUnavailable(errors.New("disk full")), wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockKeyService(t)
			svc.EXPECT().DeleteKey(mock.Anything, "k1").Return(tt.err).Once()

			w := httptest.NewRecorder()
			keyRouter(handlers.NewKeyHandler(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/keys/k1", nil))

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
