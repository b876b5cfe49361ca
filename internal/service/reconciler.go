package service

import (
	"context"
	"errors"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/lock"
	"github.com/BrunoMartendal/webhook-pix2/internal/metrics"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/normalizer"
	"github.com/sirupsen/logrus"
)

// TransactionRepo defines the persistence operations for transactions.
// UpdateStatusByProcessorTransactionID must be atomic per id: only one of
// several concurrent callers may observe changed=true.
type TransactionRepo interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetAll(ctx context.Context) (*[]models.Transaction, error)
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	UpdateStatusByProcessorTransactionID(ctx context.Context, id string, status models.TransactionStatus) (*models.Transaction, bool, error)
}

// Reconciler applies confirmed notifications to stored transactions.
// It never calls out to the network; the only side effect is the store update.
type Reconciler struct {
	Repo   TransactionRepo
	Locker lock.Locker
}

type Reconciliation struct {
	Transaction *models.Transaction
	// Transitioned is true only for the notification that moved the
	// transaction from PENDING to CONFIRMED.
	Transitioned bool
}

func NewReconciler(repo TransactionRepo, locker lock.Locker) *Reconciler {
	if locker == nil {
		locker = lock.NewLocal()
	}
	return &Reconciler{Repo: repo, Locker: locker}
}

// Reconcile annotates n with the payer name and, for confirmed statuses, the
// next step. Unconfirmed notifications leave the store untouched.
//
// The lookup tries the processor transaction id first and the correlation id
// second, so charges registered before the processor assigned an id still match.
func (r *Reconciler) Reconcile(ctx context.Context, n *models.CanonicalNotification) (*Reconciliation, error) {
	n.PayerName = normalizer.PayerName(n.PayerInfo)
	if !n.IsConfirmed() {
		return &Reconciliation{}, nil
	}

	log := logrus.WithFields(logrus.Fields{
		"notification_id": n.NotificationID,
		"shape":           n.Shape,
	})

	for _, id := range n.LookupIDs() {
		tx, changed, err := r.confirm(ctx, id)
		if errors.Is(err, errs.ErrNotFound) {
			continue
		}
		if err != nil {
			metrics.ReconciliationsTotal.WithLabelValues("error").Inc()
			return nil, err
		}

		next := models.NextStepAwaitingConversion(tx.Currency)
		n.NextStep = &next

		log = log.WithField("processor_transaction_id", tx.ProcessorTransactionID)
		if n.PayerName != nil {
			log = log.WithField("payer", *n.PayerName)
		}
		if changed {
			log.Infof("payment confirmed, amount %s %s", tx.Amount.StringFixed(2), tx.Currency)
			metrics.ReconciliationsTotal.WithLabelValues("confirmed").Inc()
			metrics.ConfirmedAmounts.WithLabelValues(string(tx.Currency)).Observe(tx.Amount.InexactFloat64())
		} else {
			log.Info("transaction already confirmed, nothing to do")
			metrics.ReconciliationsTotal.WithLabelValues("duplicate").Inc()
		}
		return &Reconciliation{Transaction: tx, Transitioned: changed}, nil
	}

	next := models.NextStepTransactionNotFound
	n.NextStep = &next
	log.WithField("lookup_ids", n.LookupIDs()).Warn("no transaction matches confirmed notification")
	metrics.ReconciliationsTotal.WithLabelValues("not_found").Inc()
	return &Reconciliation{}, nil
}

func (r *Reconciler) confirm(ctx context.Context, id string) (*models.Transaction, bool, error) {
	unlock, err := r.Locker.Lock(ctx, id)
	if err != nil {
		return nil, false, errs.StoreUnavailable(errs.Wrapf(err, "lock transaction %s", id))
	}
	defer unlock()

	tx, changed, err := r.Repo.UpdateStatusByProcessorTransactionID(ctx, id, models.StatusConfirmed)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, false, err
		}
		return nil, false, errs.StoreUnavailable(err)
	}
	return tx, changed, nil
}
