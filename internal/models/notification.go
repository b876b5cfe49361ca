package models

import "github.com/shopspring/decimal"

const (
	ShapeDirectPix   = "pix"
	ShapeChargeEvent = "charge"

	UnknownEvent = "UNKNOWN"

	NextStepTransactionNotFound = "transaction not found"
)

var confirmedStatuses = map[string]struct{}{
	"COMPLETED": {},
	"CONCLUIDA": {},
}

// IsConfirmedStatus compares case-sensitively against the settled statuses.
func IsConfirmedStatus(status string) bool {
	_, ok := confirmedStatuses[status]
	return ok
}

// CanonicalNotification is the shape-independent view of a processor callback.
type CanonicalNotification struct {
	Event                  string           `json:"event"`
	NotificationID         string           `json:"notification_id"`
	Shape                  string           `json:"shape"`
	Status                 *string          `json:"status"`
	Amount                 *decimal.Decimal `json:"amount"`
	ProcessorTransactionID *string          `json:"processor_transaction_id"`
	CorrelationID          *string          `json:"correlation_id,omitempty"`
	EndToEndID             *string          `json:"end_to_end_id"`
	PayerInfo              map[string]any   `json:"payer_info"`
	Type                   *string          `json:"type"`
	PixKey                 *string          `json:"pix_key,omitempty"`
	OccurredAt             *string          `json:"occurred_at,omitempty"`
	PayerName              *string          `json:"payer_name,omitempty"`
	NextStep               *string          `json:"next_step,omitempty"`
	ArchiveLocation        string           `json:"archive_location,omitempty"`
	RawPayload             map[string]any   `json:"raw_payload"`
}

func (n *CanonicalNotification) IsConfirmed() bool {
	return n.Status != nil && IsConfirmedStatus(*n.Status)
}

// LookupIDs returns the identifiers to try, primary first, without duplicates.
func (n *CanonicalNotification) LookupIDs() []string {
	ids := make([]string, 0, 2)
	if n.ProcessorTransactionID != nil && *n.ProcessorTransactionID != "" {
		ids = append(ids, *n.ProcessorTransactionID)
	}
	if n.CorrelationID != nil && *n.CorrelationID != "" {
		if len(ids) == 0 || ids[0] != *n.CorrelationID {
			ids = append(ids, *n.CorrelationID)
		}
	}
	return ids
}

func NextStepAwaitingConversion(currency Currency) string {
	return "payment confirmed, awaiting conversion to " + string(currency)
}

// NotificationStatus summarizes the archive for the status endpoint.
type NotificationStatus struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Recent  []string `json:"ultimas_notificacoes"`
	Total   int      `json:"total_notificacoes"`
}
