package security_test

import (
	"strings"
	"testing"

	"github.com/BrunoMartendal/webhook-pix2/internal/security"
	"github.com/stretchr/testify/assert"
)

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"pix":{"txid":"abc"}}`)
	sig := security.Sign(body, "s3cret")

	assert.True(t, security.VerifyWebhookSignature(body, sig, "s3cret"))
	assert.True(t, security.VerifyWebhookSignature(body, "sha256="+strings.ToUpper(sig), "s3cret"))
	assert.False(t, security.VerifyWebhookSignature(body, sig, "other"))
	assert.False(t, security.VerifyWebhookSignature([]byte(`{}`), sig, "s3cret"))
	assert.False(t, security.VerifyWebhookSignature(body, "zz-not-hex", "s3cret"))
	assert.False(t, security.VerifyWebhookSignature(body, "", "s3cret"))
	assert.False(t, security.VerifyWebhookSignature(body, sig, ""))
}
