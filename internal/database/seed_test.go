package database_test

import (
	"path/filepath"
	"testing"

	"github.com/BrunoMartendal/webhook-pix2/internal/database"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "seed.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.PaymentKey{}))
	return db
}

func TestSeedPaymentKeys_EmptyTable(t *testing.T) {
	db := openDB(t)

	require.NoError(t, database.SeedPaymentKeys(db))
	require.NoError(t, database.SeedPaymentKeys(db))

	var keys []models.PaymentKey
	require.NoError(t, db.Find(&keys).Error)
	require.Len(t, keys, 1)
	assert.Equal(t, "Principal", keys[0].Description)
	assert.Equal(t, models.KeyTypeEmail, keys[0].KeyType)
	assert.Equal(t, "exemplo@pix.com", keys[0].KeyValue)
	assert.NotEmpty(t, keys[0].ID)
}

func TestSeedPaymentKeys_ExistingKeysUntouched(t *testing.T) {
	db := openDB(t)
	require.NoError(t, db.Create(&models.PaymentKey{Description: "Loja", KeyType: models.KeyTypeCPF, KeyValue: "12345678900"}).Error)

	require.NoError(t, database.SeedPaymentKeys(db))

	var count int64
	require.NoError(t, db.Model(&models.PaymentKey{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
