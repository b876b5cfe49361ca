package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KeyType string

const (
	KeyTypeEmail  KeyType = "E-mail"
	KeyTypePhone  KeyType = "Telefone"
	KeyTypeCPF    KeyType = "CPF"
	KeyTypeCNPJ   KeyType = "CNPJ"
	KeyTypeRandom KeyType = "Aleatória"
)

type PaymentKey struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	KeyType     KeyType   `gorm:"size:32;not null" json:"key_type"`
	KeyValue    string    `gorm:"not null" json:"key_value"`
	CreatedAt   time.Time `json:"created_at"`
}

func (k *PaymentKey) BeforeCreate(tx *gorm.DB) (err error) {
	if k.ID == "" {
		k.ID = uuid.New().String()
	}
	return
}

func (k *PaymentKey) Validate() error {
	if k.Description == "" {
		return fmt.Errorf("description is required")
	}
	if k.KeyValue == "" {
		return fmt.Errorf("key value is required")
	}
	if !k.KeyType.IsValid() {
		return fmt.Errorf("invalid key type: %s", k.KeyType)
	}
	return nil
}

func (t KeyType) IsValid() bool {
	switch t {
	case KeyTypeEmail, KeyTypePhone, KeyTypeCPF, KeyTypeCNPJ, KeyTypeRandom:
		return true
	default:
		return false
	}
}
