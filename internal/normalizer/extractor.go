package normalizer

import (
	"encoding/json"
	"strings"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var centsDivisor = decimal.NewFromInt(100)

// Normalize classifies payload and extracts it in one step.
func Normalize(payload map[string]any) (*models.CanonicalNotification, error) {
	return Extract(payload, Classify(payload))
}

// Extract builds the canonical record for an already classified payload.
// Fields that are absent or of an unusable type come back nil.
func Extract(payload map[string]any, shape Shape) (*models.CanonicalNotification, error) {
	var n *models.CanonicalNotification
	switch shape {
	case ShapeDirectPix:
		n = extractDirectPix(payload)
	case ShapeChargeEvent:
		n = extractChargeEvent(payload)
	default:
		return nil, &errs.UnrecognizedPayloadError{Raw: payload}
	}

	n.Shape = shape.String()
	n.Event = models.UnknownEvent
	if event := firstString(stringField(payload, "event"), stringField(payload, "evento")); event != nil {
		n.Event = *event
	}
	n.NotificationID = uuid.New().String()
	n.RawPayload = payload
	return n, nil
}

func extractDirectPix(payload map[string]any) *models.CanonicalNotification {
	pix, _ := mapField(payload, "pix")

	n := &models.CanonicalNotification{
		Status:                 stringField(pix, "status"),
		Amount:                 amountField(pix, "valor", false),
		ProcessorTransactionID: stringField(pix, "txid"),
		EndToEndID:             stringField(pix, "e2eid"),
		PayerInfo:              mapOrEmpty(pix, "infoPagador"),
		Type:                   firstString(stringField(pix, "type"), stringField(payload, "type")),
		PixKey:                 stringField(pix, "chave"),
		OccurredAt:             stringField(pix, "horario"),
	}
	if charge, ok := mapField(payload, "charge"); ok {
		n.CorrelationID = stringField(charge, "correlationID")
	}
	return n
}

func extractChargeEvent(payload map[string]any) *models.CanonicalNotification {
	charge, _ := mapField(payload, "charge")
	fallback := chargeFallback(charge, payload)

	amount := amountField(charge, "value", true)
	if amount == nil {
		amount = amountField(fallback, "value", true)
	}

	payer, ok := mapField(charge, "customer")
	if !ok {
		payer = mapOrEmpty(fallback, "payer")
	}

	txid := firstString(
		stringField(charge, "transactionID"),
		stringField(fallback, "transactionID"),
		stringField(charge, "correlationID"),
	)

	return &models.CanonicalNotification{
		Status:                 firstString(stringField(charge, "status"), stringField(fallback, "status")),
		Amount:                 amount,
		ProcessorTransactionID: txid,
		EndToEndID:             firstString(stringField(charge, "identifier"), stringField(fallback, "identifier")),
		PayerInfo:              payer,
		Type:                   stringField(charge, "type"),
		CorrelationID:          stringField(charge, "correlationID"),
		OccurredAt:             firstString(stringField(charge, "paidAt"), stringField(fallback, "time")),
	}
}

// chargeFallback resolves the mapping consulted when a charge-level field is
// missing: charge.paymentMethods.pix, then the top-level paymentMethods.pix,
// then charge.customer.
func chargeFallback(charge, payload map[string]any) map[string]any {
	for _, holder := range []map[string]any{charge, payload} {
		if methods, ok := mapField(holder, "paymentMethods"); ok {
			if pix, ok := mapField(methods, "pix"); ok {
				return pix
			}
		}
	}
	customer, _ := mapField(charge, "customer")
	return customer
}

// PayerName reads the display name with the name -> nome fallback.
func PayerName(info map[string]any) *string {
	return firstString(stringField(info, "name"), stringField(info, "nome"))
}

func mapField(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key].(map[string]any)
	return v, ok
}

func mapOrEmpty(m map[string]any, key string) map[string]any {
	if v, ok := mapField(m, key); ok {
		return v
	}
	return map[string]any{}
}

func stringField(m map[string]any, key string) *string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case map[string]any, []any:
		return nil
	case json.Number:
		s := t.String()
		return &s
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil
	}
	return &s
}

func firstString(candidates ...*string) *string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return c
		}
	}
	return nil
}

// amountField reads a monetary value. With minorUnits set, integer values
// are cents and get divided by 100; decimal values are already display units.
func amountField(m map[string]any, key string, minorUnits bool) *decimal.Decimal {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}

	var (
		amount   decimal.Decimal
		integral bool
	)
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return nil
		}
		amount, integral = d, !strings.ContainsAny(t.String(), ".eE")
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		if err != nil {
			return nil
		}
		amount, integral = d, !strings.ContainsAny(t, ".eE")
	case float64:
		amount = decimal.NewFromFloat(t)
	case float32:
		amount = decimal.NewFromFloat32(t)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		i, err := cast.ToInt64E(t)
		if err != nil {
			return nil
		}
		amount, integral = decimal.NewFromInt(i), true
	default:
		return nil
	}

	if minorUnits && integral {
		amount = amount.Div(centsDivisor)
	}
	return &amount
}
