package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentConfirmedTopic = "pix.payments.confirmed"
	NotificationsDLQTopic = "pix.notifications.dlq"
)

// PaymentConfirmedEvent is emitted once per transaction, on its first
// transition to CONFIRMED. Downstream consumers run the currency conversion.
type PaymentConfirmedEvent struct {
	TransactionID          string          `json:"transaction_id"`
	ProcessorTransactionID string          `json:"processor_transaction_id"`
	KeyID                  string          `json:"key_id"`
	Amount                 decimal.Decimal `json:"amount"`
	Currency               string          `json:"currency"`
	EndToEndID             string          `json:"end_to_end_id,omitempty"`
	PayerName              string          `json:"payer_name,omitempty"`
	NotificationID         string          `json:"notification_id"`
	ConfirmedAt            time.Time       `json:"confirmed_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Error         string    `json:"error"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}

func (e PaymentConfirmedEvent) PartitionKey() string {
	return e.ProcessorTransactionID
}

func (m DLQMessage) PartitionKey() string {
	return m.Key
}
