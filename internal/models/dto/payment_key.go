package dto

import (
	"strings"

	"github.com/BrunoMartendal/webhook-pix2/internal/models"
)

type PaymentKey struct {
	Description string `json:"description"`
	KeyType     string `json:"key_type"`
	KeyValue    string `json:"key_value"`
}

func (k *PaymentKey) Sanitize() {
	k.Description = strings.TrimSpace(k.Description)
	k.KeyType = strings.TrimSpace(k.KeyType)
	k.KeyValue = strings.TrimSpace(k.KeyValue)
}

func (k *PaymentKey) ToEntity() *models.PaymentKey {
	return &models.PaymentKey{
		Description: k.Description,
		KeyType:     models.KeyType(k.KeyType),
		KeyValue:    k.KeyValue,
	}
}
