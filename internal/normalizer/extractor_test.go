package normalizer_test

import (
	"errors"
	"testing"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/normalizer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalize(t *testing.T, body string) *models.CanonicalNotification {
	t.Helper()
	payload, err := normalizer.Decode([]byte(body))
	require.NoError(t, err)
	n, err := normalizer.Normalize(payload)
	require.NoError(t, err)
	return n
}

func assertAmount(t *testing.T, want string, got *decimal.Decimal) {
	t.Helper()
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString(want).Equal(*got), "want %s, got %s", want, got)
}

func TestExtract_DirectPix(t *testing.T) {
	n := normalize(t, `{"pix":{"status":"COMPLETED","valor":100.50,"txid":"abc123","e2eid":"E1","infoPagador":{"nome":"João"}}}`)

	assert.Equal(t, "pix", n.Shape)
	assert.Equal(t, "COMPLETED", *n.Status)
	assertAmount(t, "100.50", n.Amount)
	assert.Equal(t, "abc123", *n.ProcessorTransactionID)
	assert.Equal(t, "E1", *n.EndToEndID)
	assert.Equal(t, map[string]any{"nome": "João"}, n.PayerInfo)
	assert.Nil(t, n.Type)
	assert.Equal(t, models.UnknownEvent, n.Event)
	assert.NotEmpty(t, n.NotificationID)
	assert.Contains(t, n.RawPayload, "pix")
}

func TestExtract_DirectPixDefaults(t *testing.T) {
	n := normalize(t, `{"type":"PAYMENT","evento":"PIX_RECEBIDO","pix":{"valor":7}}`)

	assert.Nil(t, n.Status)
	assert.Nil(t, n.ProcessorTransactionID)
	assert.Nil(t, n.EndToEndID)
	assert.Equal(t, map[string]any{}, n.PayerInfo)
	assert.Equal(t, "PAYMENT", *n.Type)
	assert.Equal(t, "PIX_RECEBIDO", n.Event)
	assertAmount(t, "7", n.Amount)
}

func TestExtract_DirectPixNestedTypeWins(t *testing.T) {
	n := normalize(t, `{"type":"OUTER","pix":{"type":"INNER"}}`)
	assert.Equal(t, "INNER", *n.Type)
}

func TestExtract_DirectPixExtras(t *testing.T) {
	n := normalize(t, `{
		"pix":{"status":"CONCLUIDA","valor":100.50,"txid":"abc","chave":"exemplo@pix.com","horario":"2024-05-01T10:00:00Z"},
		"charge":{"correlationID":"corr-1","value":10050}
	}`)

	assert.Equal(t, "pix", n.Shape)
	assert.Equal(t, "exemplo@pix.com", *n.PixKey)
	assert.Equal(t, "2024-05-01T10:00:00Z", *n.OccurredAt)
	assert.Equal(t, "corr-1", *n.CorrelationID)
	assertAmount(t, "100.50", n.Amount)
}

func TestExtract_DirectPixFieldsMatchNested(t *testing.T) {
	payloads := []string{
		`{"pix":{"status":"ATIVA","valor":1,"txid":"t1","e2eid":"e1"}}`,
		`{"pix":{"status":"COMPLETED","valor":0.01,"txid":"t2","e2eid":"e2"}}`,
		`{"pix":{"status":"CONCLUIDA","valor":"12.34","txid":"t3","e2eid":"e3"}}`,
		`{"pix":{"status":"x","valor":99999.99,"txid":"t4","e2eid":"e4","infoPagador":{"name":"Ana"}}}`,
	}
	for _, body := range payloads {
		payload, err := normalizer.Decode([]byte(body))
		require.NoError(t, err)
		pix := payload["pix"].(map[string]any)

		n, err := normalizer.Normalize(payload)
		require.NoError(t, err)

		assert.Equal(t, pix["status"], *n.Status)
		assert.Equal(t, pix["txid"], *n.ProcessorTransactionID)
		assert.Equal(t, pix["e2eid"], *n.EndToEndID)
		assertAmount(t, decimalText(pix["valor"]), n.Amount)
	}
}

func decimalText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	default:
		return t.(interface{ String() string }).String()
	}
}

func TestExtract_ChargeEvent(t *testing.T) {
	n := normalize(t, `{"event":"OPENPIX:TRANSACTION_RECEIVED","charge":{"status":"COMPLETED","value":10050,"transactionID":"tx9","correlationID":"c1"}}`)

	assert.Equal(t, "charge", n.Shape)
	assert.Equal(t, normalizer.TransactionReceivedEvent, n.Event)
	assert.Equal(t, "COMPLETED", *n.Status)
	assertAmount(t, "100.50", n.Amount)
	assert.Equal(t, "tx9", *n.ProcessorTransactionID)
	assert.Equal(t, "c1", *n.CorrelationID)
	assert.Equal(t, map[string]any{}, n.PayerInfo)
}

func TestExtract_ChargeIntegerCentsDividedBy100(t *testing.T) {
	for cents, want := range map[string]string{"1": "0.01", "100": "1", "10050": "100.5", "0": "0", "123456789": "1234567.89"} {
		n := normalize(t, `{"charge":{"value":`+cents+`}}`)
		assertAmount(t, want, n.Amount)
	}
}

func TestExtract_ChargeDecimalValueAsIs(t *testing.T) {
	n := normalize(t, `{"charge":{"value":100.50}}`)
	assertAmount(t, "100.50", n.Amount)
}

func TestExtract_ChargeGoIntegerValue(t *testing.T) {
	n, err := normalizer.Normalize(map[string]any{"charge": map[string]any{"value": 2599}})
	require.NoError(t, err)
	assertAmount(t, "25.99", n.Amount)
}

func TestExtract_ChargeFallbackPaymentMethodsPix(t *testing.T) {
	n := normalize(t, `{
		"event":"OPENPIX:TRANSACTION_RECEIVED",
		"charge":{
			"correlationID":"c1",
			"customer":{"name":"Maria"},
			"paymentMethods":{"pix":{"status":"COMPLETED","value":500,"transactionID":"tx-fallback","identifier":"E2E-1"}}
		}
	}`)

	assert.Equal(t, "COMPLETED", *n.Status)
	assertAmount(t, "5", n.Amount)
	assert.Equal(t, "tx-fallback", *n.ProcessorTransactionID)
	assert.Equal(t, "E2E-1", *n.EndToEndID)
	assert.Equal(t, map[string]any{"name": "Maria"}, n.PayerInfo)
}

func TestExtract_ChargeFallbackTopLevelPaymentMethods(t *testing.T) {
	n := normalize(t, `{
		"charge":{"correlationID":"c1"},
		"paymentMethods":{"pix":{"status":"COMPLETED","transactionID":"tx-top","payer":{"nome":"José"}}}
	}`)

	assert.Equal(t, "COMPLETED", *n.Status)
	assert.Equal(t, "tx-top", *n.ProcessorTransactionID)
	assert.Equal(t, map[string]any{"nome": "José"}, n.PayerInfo)
}

func TestExtract_ChargeFallbackCustomer(t *testing.T) {
	n := normalize(t, `{"charge":{"customer":{"status":"CONCLUIDA","identifier":"E9","transactionID":"tx-c"}}}`)

	assert.Equal(t, "CONCLUIDA", *n.Status)
	assert.Equal(t, "E9", *n.EndToEndID)
	assert.Equal(t, "tx-c", *n.ProcessorTransactionID)
}

func TestExtract_ChargeCorrelationIDLastResort(t *testing.T) {
	n := normalize(t, `{"charge":{"status":"COMPLETED","correlationID":"corr-only"}}`)
	assert.Equal(t, "corr-only", *n.ProcessorTransactionID)
	assert.Equal(t, "corr-only", *n.CorrelationID)
}

func TestExtract_ChargeMarkerWithoutCharge(t *testing.T) {
	n := normalize(t, `{"event":"OPENPIX:TRANSACTION_RECEIVED"}`)

	assert.Nil(t, n.Status)
	assert.Nil(t, n.Amount)
	assert.Nil(t, n.ProcessorTransactionID)
	assert.Equal(t, map[string]any{}, n.PayerInfo)
}

func TestExtract_MistypedFieldsAreAbsent(t *testing.T) {
	n := normalize(t, `{"charge":{"status":{"code":1},"value":"not-a-number","transactionID":["a"],"customer":"x"}}`)

	assert.Nil(t, n.Status)
	assert.Nil(t, n.Amount)
	assert.Nil(t, n.ProcessorTransactionID)
	assert.Equal(t, map[string]any{}, n.PayerInfo)
}

func TestExtract_UnknownShape(t *testing.T) {
	payload, err := normalizer.Decode([]byte(`{"foo":"bar"}`))
	require.NoError(t, err)

	n, err := normalizer.Normalize(payload)
	assert.Nil(t, n)
	assert.ErrorIs(t, err, errs.ErrUnrecognizedPayloadFormat)

	var unrecognized *errs.UnrecognizedPayloadError
	require.True(t, errors.As(err, &unrecognized))
	assert.Equal(t, payload, unrecognized.Raw)
}

func TestExtract_FreshNotificationIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		n := normalize(t, `{"pix":{}}`)
		assert.False(t, seen[n.NotificationID])
		seen[n.NotificationID] = true
	}
}

func TestPayerName(t *testing.T) {
	assert.Equal(t, "Ana", *normalizer.PayerName(map[string]any{"name": "Ana", "nome": "Ana Maria"}))
	assert.Equal(t, "João", *normalizer.PayerName(map[string]any{"nome": "João"}))
	assert.Nil(t, normalizer.PayerName(map[string]any{}))
	assert.Nil(t, normalizer.PayerName(nil))
}
