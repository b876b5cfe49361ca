// Package normalizer turns processor callbacks of any known shape into a
// models.CanonicalNotification.
package normalizer

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
)

// TransactionReceivedEvent marks an OpenPix charge/transaction callback.
const TransactionReceivedEvent = "OPENPIX:TRANSACTION_RECEIVED"

type Shape int

const (
	ShapeUnknown Shape = iota
	// ShapeDirectPix carries a top-level "pix" object.
	ShapeDirectPix
	// ShapeChargeEvent carries a "charge" object or the transaction-received event.
	ShapeChargeEvent
)

func (s Shape) String() string {
	switch s {
	case ShapeDirectPix:
		return models.ShapeDirectPix
	case ShapeChargeEvent:
		return models.ShapeChargeEvent
	default:
		return "unknown"
	}
}

// Classify never fails: missing or mistyped keys just don't match.
// The direct pix shape wins when a payload carries both "pix" and "charge".
func Classify(payload map[string]any) Shape {
	if _, ok := mapField(payload, "pix"); ok {
		return ShapeDirectPix
	}
	if isTransactionReceived(payload, "event") || isTransactionReceived(payload, "evento") {
		return ShapeChargeEvent
	}
	if _, ok := mapField(payload, "charge"); ok {
		return ShapeChargeEvent
	}
	return ShapeUnknown
}

func isTransactionReceived(payload map[string]any, key string) bool {
	v := stringField(payload, key)
	return v != nil && *v == TransactionReceivedEvent
}

// Decode parses a raw body into a JSON object, keeping numbers as json.Number
// so integer cents and decimal amounts stay distinguishable.
func Decode(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errs.Malformed(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, errs.Malformed(errors.New("unexpected data after JSON object"))
	}

	payload, ok := v.(map[string]any)
	if !ok {
		return nil, errs.Malformed(errors.New("payload is not a JSON object"))
	}
	return payload, nil
}
