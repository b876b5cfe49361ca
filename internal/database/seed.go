package database

import (
	"time"

	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DefaultPaymentKey is registered on first start so a charge can be issued
// before any key is configured.
var DefaultPaymentKey = models.PaymentKey{
	Description: "Principal",
	KeyType:     models.KeyTypeEmail,
	KeyValue:    "exemplo@pix.com",
}

// SeedPaymentKeys inserts the default key only while the table is empty.
// Keys removed by the operator are not brought back once others exist.
func SeedPaymentKeys(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PaymentKey{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	key := DefaultPaymentKey
	key.CreatedAt = time.Now().UTC()
	if err := db.Create(&key).Error; err != nil {
		return err
	}

	logrus.WithField("key_id", key.ID).Info("default payment key seeded")
	return nil
}
