package dto

import (
	"strings"

	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/shopspring/decimal"
)

type Charge struct {
	KeyID    string          `json:"key_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Comment  string          `json:"comment"`
}

func (c *Charge) Sanitize(defaultCurrency string) {
	c.KeyID = strings.TrimSpace(c.KeyID)
	c.Comment = strings.TrimSpace(c.Comment)
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		c.Currency = strings.ToUpper(defaultCurrency)
	}
	c.Amount = c.Amount.Round(2)
}

func (c *Charge) ToEntity() *models.Transaction {
	return &models.Transaction{
		Amount:   c.Amount,
		Currency: models.Currency(c.Currency),
		KeyID:    c.KeyID,
		Status:   models.StatusPending,
	}
}

// ChargeResult is returned to the operator after a payment request is issued.
type ChargeResult struct {
	Transaction *models.Transaction `json:"transaction"`
	BRCode      string              `json:"br_code"`
	QRCodeURL   string              `json:"qr_code_url"`
}
