package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionStatus string
type Currency string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusConfirmed TransactionStatus = "CONFIRMED"

	CurrencyBRL  Currency = "BRL"
	CurrencyUSD  Currency = "USD"
	CurrencyUSDT Currency = "USDT"
	CurrencyBTC  Currency = "BTC"
	CurrencyETH  Currency = "ETH"
)

func init() {
	// amounts are rendered as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is a payment request issued against a PaymentKey. It is created
// PENDING and only moves to CONFIRMED once a matching processor notification
// arrives.
type Transaction struct {
	ID                     string            `gorm:"primaryKey" json:"id"`
	Amount                 decimal.Decimal   `gorm:"type:decimal(14,2);not null" json:"amount"`
	Currency               Currency          `gorm:"size:8;not null" json:"currency"`
	KeyID                  string            `gorm:"index" json:"key_id"`
	ProcessorTransactionID string            `gorm:"uniqueIndex;not null" json:"processor_transaction_id"`
	CorrelationID          string            `gorm:"index" json:"correlation_id,omitempty"`
	Status                 TransactionStatus `gorm:"size:16;index;not null" json:"status"`
	CreatedAt              time.Time         `json:"created_at"`
	UpdatedAt              time.Time         `json:"updated_at"`
	ConfirmedAt            *time.Time        `json:"confirmed_at,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	return
}

func (t *Transaction) Validate() error {
	if !t.Currency.IsValid() {
		return fmt.Errorf("invalid currency: %s", t.Currency)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	if t.KeyID == "" {
		return fmt.Errorf("key ID is required")
	}
	if t.ProcessorTransactionID == "" {
		return fmt.Errorf("processor transaction ID is required")
	}
	return nil
}

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyBRL, CurrencyUSD, CurrencyUSDT, CurrencyBTC, CurrencyETH:
		return true
	default:
		return false
	}
}

func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is legal.
// CONFIRMED -> CONFIRMED is allowed as an idempotent re-trigger.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch next {
	case StatusConfirmed:
		return s == StatusPending || s == StatusConfirmed
	default:
		return false
	}
}

// TransitionSources lists the states that actually change when moving to next.
func TransitionSources(next TransactionStatus) []TransactionStatus {
	switch next {
	case StatusConfirmed:
		return []TransactionStatus{StatusPending}
	default:
		return nil
	}
}
