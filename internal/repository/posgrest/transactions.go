package posgrest

import (
	"context"
	"errors"
	"time"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"gorm.io/gorm"
)

type TransactionRepository struct {
	*repository[models.Transaction]
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{New[models.Transaction](db)}
}

func (r *TransactionRepository) GetByProcessorTransactionID(ctx context.Context, id string) (*models.Transaction, error) {
	return r.first(ctx, "processor_transaction_id = ?", id)
}

// UpdateStatusByProcessorTransactionID moves the transaction to status with a
// compare-and-swap, so concurrent notifications for the same id cannot both
// observe the old status. changed is true only for the caller whose write
// performed the transition; a repeat of an already applied transition returns
// the current row with changed=false.
func (r *TransactionRepository) UpdateStatusByProcessorTransactionID(
	ctx context.Context,
	id string,
	status models.TransactionStatus,
) (*models.Transaction, bool, error) {
	var (
		current models.Transaction
		changed bool
	)

	err := r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		now := time.Now().UTC()
		updates := map[string]interface{}{"status": status, "updated_at": now}
		if status == models.StatusConfirmed {
			updates["confirmed_at"] = now
		}

		res := db.Model(&models.Transaction{}).
			Where("processor_transaction_id = ? AND status IN ?", id, models.TransitionSources(status)).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		changed = res.RowsAffected > 0

		if err := db.Where("processor_transaction_id = ?", id).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.ErrNotFound
			}
			return err
		}
		if !changed && !current.Status.CanTransitionTo(status) {
			return errs.Wrapf(errs.ErrInvalidTransition, "%s -> %s", current.Status, status)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrInvalidTransition) {
			return nil, false, err
		}
		return nil, false, errs.StoreUnavailable(err)
	}
	return &current, changed, nil
}
