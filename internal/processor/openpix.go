package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultOpenPixBaseURL = "https://api.openpix.com.br"
	chargePath            = "/api/v1/charge"
	maxErrorBody          = 512
)

type OpenPixClient struct {
	AppID      string
	BaseURL    string
	HTTPClient *http.Client
}

// ChargeRequest asks the processor for a dynamic Pix charge. Value is in cents.
type ChargeRequest struct {
	CorrelationID string `json:"correlationID"`
	Value         int64  `json:"value"`
	Comment       string `json:"comment,omitempty"`
}

type Charge struct {
	CorrelationID  string `json:"correlationID"`
	TransactionID  string `json:"transactionID"`
	Status         string `json:"status"`
	Value          int64  `json:"value"`
	BRCode         string `json:"brCode"`
	QRCodeImage    string `json:"qrCodeImage"`
	PaymentLinkURL string `json:"paymentLinkUrl"`
}

type chargeResponse struct {
	Charge        Charge `json:"charge"`
	BRCode        string `json:"brCode"`
	CorrelationID string `json:"correlationID"`
	Error         string `json:"error"`
}

func NewOpenPixClient(baseURL, appID string, timeout time.Duration) *OpenPixClient {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultOpenPixBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &OpenPixClient{
		AppID:      strings.TrimSpace(appID),
		BaseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *OpenPixClient) CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	if c.AppID == "" {
		return nil, errors.New("OPENPIX_APP_ID is not configured")
	}
	if strings.TrimSpace(req.CorrelationID) == "" {
		return nil, errors.New("correlation ID is required")
	}
	if req.Value <= 0 {
		return nil, errors.New("charge value must be positive")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode charge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+chargePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build charge request: %w", err)
	}
	httpReq.Header.Set("Authorization", c.AppID)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openpix create charge: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("openpix create charge: status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode charge response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("openpix create charge: %s", out.Error)
	}

	charge := out.Charge
	if charge.BRCode == "" {
		charge.BRCode = out.BRCode
	}
	if charge.CorrelationID == "" {
		charge.CorrelationID = out.CorrelationID
	}
	if charge.CorrelationID == "" {
		charge.CorrelationID = req.CorrelationID
	}
	return &charge, nil
}
