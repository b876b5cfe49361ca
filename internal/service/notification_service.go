package service

import (
	"context"
	"errors"
	"time"

	"github.com/BrunoMartendal/webhook-pix2/internal/archive"
	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"github.com/BrunoMartendal/webhook-pix2/internal/metrics"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/normalizer"
	"github.com/sirupsen/logrus"
)

const StatusOnlineMessage = "Serviço de webhook Pix está ativo"

// Archiver stores raw notification bodies under unique names.
type Archiver interface {
	Archive(ctx context.Context, raw []byte) (string, error)
	List(ctx context.Context) ([]string, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// NotificationService runs an inbound callback through archive, normalization
// and reconciliation. A nil Publisher disables confirmation events.
type NotificationService struct {
	Archiver   Archiver
	Reconciler *Reconciler
	Publisher  Publisher
}

func NewNotificationService(archiver Archiver, reconciler *Reconciler, publisher Publisher) *NotificationService {
	return &NotificationService{
		Archiver:   archiver,
		Reconciler: reconciler,
		Publisher:  publisher,
	}
}

// Process archives body and then processes it.
func (s *NotificationService) Process(ctx context.Context, body []byte) (*models.CanonicalNotification, error) {
	return s.ProcessArchived(ctx, body, s.Archive(ctx, body))
}

// Archive is best-effort: a failure is logged and an empty location returned.
func (s *NotificationService) Archive(ctx context.Context, body []byte) string {
	location, err := s.Archiver.Archive(ctx, body)
	if err != nil {
		metrics.ArchiveFailuresTotal.Inc()
		logrus.WithFields(errs.Fields(err)).Warn("could not archive notification, processing anyway")
		return ""
	}
	return location
}

// ProcessArchived decodes, normalizes and reconciles a body that has already
// been archived at location. On a store failure the partially built record is
// returned alongside the error.
func (s *NotificationService) ProcessArchived(ctx context.Context, body []byte, location string) (*models.CanonicalNotification, error) {
	start := time.Now()
	defer func() { metrics.ProcessingSeconds.Observe(time.Since(start).Seconds()) }()

	payload, err := normalizer.Decode(body)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("unknown", "malformed").Inc()
		return nil, err
	}

	n, err := normalizer.Normalize(payload)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues("unknown", "unrecognized").Inc()
		logrus.WithField("archive_location", location).Warn("unrecognized notification payload")
		return nil, err
	}
	n.ArchiveLocation = location

	rec, err := s.Reconciler.Reconcile(ctx, n)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(n.Shape, "failed").Inc()
		return n, err
	}

	if rec.Transitioned {
		s.publishConfirmed(ctx, n, rec.Transaction)
	}
	metrics.NotificationsTotal.WithLabelValues(n.Shape, "processed").Inc()
	return n, nil
}

func (s *NotificationService) publishConfirmed(ctx context.Context, n *models.CanonicalNotification, tx *models.Transaction) {
	if s.Publisher == nil {
		return
	}

	event := models.PaymentConfirmedEvent{
		TransactionID:          tx.ID,
		ProcessorTransactionID: tx.ProcessorTransactionID,
		KeyID:                  tx.KeyID,
		Amount:                 tx.Amount,
		Currency:               string(tx.Currency),
		NotificationID:         n.NotificationID,
		ConfirmedAt:            time.Now().UTC(),
	}
	if tx.ConfirmedAt != nil {
		event.ConfirmedAt = *tx.ConfirmedAt
	}
	if n.EndToEndID != nil {
		event.EndToEndID = *n.EndToEndID
	}
	if n.PayerName != nil {
		event.PayerName = *n.PayerName
	}

	if err := s.Publisher.Publish(ctx, models.PaymentConfirmedTopic, event); err != nil {
		logrus.WithField("processor_transaction_id", tx.ProcessorTransactionID).
			WithFields(errs.Fields(err)).
			Error("could not publish payment confirmation")
	}
}

// Status reports the most recent archived notifications and their total.
func (s *NotificationService) Status(ctx context.Context) (*models.NotificationStatus, error) {
	names, err := s.Archiver.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "list archived notifications")
	}
	return &models.NotificationStatus{
		Status:  "online",
		Message: StatusOnlineMessage,
		Recent:  archive.Recent(names, archive.RecentLimit),
		Total:   len(names),
	}, nil
}

// IsPermanent reports errors that retrying the same body can never fix.
func IsPermanent(err error) bool {
	return errors.Is(err, errs.ErrMalformedPayload) || errors.Is(err, errs.ErrUnrecognizedPayloadFormat)
}
