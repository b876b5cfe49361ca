package processor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BrunoMartendal/webhook-pix2/internal/processor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPixClient_CreateCharge(t *testing.T) {
	var got processor.ChargeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/charge", r.URL.Path)
		assert.Equal(t, "app-id-123", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"charge":{"status":"ACTIVE","value":10050,"correlationID":"c1","transactionID":"tx9","qrCodeImage":"https://img/qr.png"},
			"brCode":"000201...6304ABCD",
			"correlationID":"c1"
		}`))
	}))
	defer srv.Close()

	client := processor.NewOpenPixClient(srv.URL+"/", "app-id-123", time.Second)
	charge, err := client.CreateCharge(context.Background(), processor.ChargeRequest{CorrelationID: "c1", Value: 10050, Comment: "pedido 1"})
	require.NoError(t, err)

	assert.Equal(t, processor.ChargeRequest{CorrelationID: "c1", Value: 10050, Comment: "pedido 1"}, got)
	assert.Equal(t, "tx9", charge.TransactionID)
	assert.Equal(t, "000201...6304ABCD", charge.BRCode)
	assert.Equal(t, "https://img/qr.png", charge.QRCodeImage)
	assert.Equal(t, "c1", charge.CorrelationID)
}

func TestOpenPixClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"appID inválido"}`))
	}))
	defer srv.Close()

	client := processor.NewOpenPixClient(srv.URL, "bad", time.Second)
	_, err := client.CreateCharge(context.Background(), processor.ChargeRequest{CorrelationID: "c1", Value: 100})
	assert.ErrorContains(t, err, "status 401")
}

func TestOpenPixClient_Validation(t *testing.T) {
	client := processor.NewOpenPixClient("", "", 0)
	assert.Equal(t, processor.DefaultOpenPixBaseURL, client.BaseURL)

	_, err := client.CreateCharge(context.Background(), processor.ChargeRequest{CorrelationID: "c1", Value: 1})
	assert.EqualError(t, err, "OPENPIX_APP_ID is not configured")

	client.AppID = "id"
	_, err = client.CreateCharge(context.Background(), processor.ChargeRequest{CorrelationID: "c1"})
	assert.EqualError(t, err, "charge value must be positive")
}
