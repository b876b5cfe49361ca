package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"gorm.io/datatypes"
)

type RecordStore interface {
	Create(ctx context.Context, record *models.NotificationRecord) error
	GetAll(ctx context.Context) (*[]models.NotificationRecord, error)
}

// DatabaseArchiver stores payloads as JSON rows. Bodies that are not JSON are
// kept as a JSON string so nothing received is lost.
type DatabaseArchiver struct {
	store RecordStore
	now   func() time.Time
}

func NewDatabaseArchiver(store RecordStore) *DatabaseArchiver {
	return &DatabaseArchiver{store: store, now: time.Now}
}

func (a *DatabaseArchiver) Archive(ctx context.Context, raw []byte) (string, error) {
	payload := raw
	if !json.Valid(raw) {
		quoted, err := json.Marshal(string(raw))
		if err != nil {
			return "", fmt.Errorf("encode raw payload: %w", err)
		}
		payload = quoted
	}

	record := &models.NotificationRecord{
		Name:    NewName(a.now()),
		Payload: datatypes.JSON(payload),
	}
	if err := a.store.Create(ctx, record); err != nil {
		return "", fmt.Errorf("store notification record: %w", err)
	}
	return "db://notification_records/" + record.Name, nil
}

func (a *DatabaseArchiver) List(ctx context.Context) ([]string, error) {
	records, err := a.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(*records))
	for _, r := range *records {
		names = append(names, r.Name)
	}
	return names, nil
}
