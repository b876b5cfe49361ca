package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_notifications_total",
			Help: "Processor notifications received, by payload shape and outcome",
		},
		[]string{"shape", "outcome"},
	)

	ReconciliationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_reconciliations_total",
			Help: "Confirmed notifications matched against stored transactions",
		},
		[]string{"result"},
	)

	ConfirmedAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pix_confirmed_amounts",
			Help:    "Distribution of confirmed payment amounts",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"currency"},
	)

	ArchiveFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "pix_archive_failures_total",
			Help: "Raw notifications that could not be archived",
		},
	)

	ProcessingSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pix_notification_processing_seconds",
			Help:    "Time spent processing one notification",
			Buckets: prometheus.DefBuckets,
		},
	)

	ChargesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_charges_total",
			Help: "Payment requests issued, by currency and QR source",
		},
		[]string{"currency", "source"},
	)

	ConsumedMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pix_consumed_messages_total",
			Help: "Kafka messages consumed, by topic and outcome",
		},
		[]string{"topic", "outcome"},
	)
)

var registerOnce sync.Once

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			NotificationsTotal,
			ReconciliationsTotal,
			ConfirmedAmounts,
			ArchiveFailuresTotal,
			ProcessingSeconds,
			ChargesTotal,
			ConsumedMessagesTotal,
		)
	})
}
