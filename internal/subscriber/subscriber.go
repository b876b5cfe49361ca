package subscriber

import (
	"context"
	"errors"
	"time"

	"github.com/BrunoMartendal/webhook-pix2/config"
	"github.com/BrunoMartendal/webhook-pix2/internal/metrics"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/publisher"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

type Handler func(ctx context.Context, topic string, value []byte) error

type DLQPublisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

type KafkaConsumer struct {
	Readers      []*kafka.Reader
	DLQPublisher DLQPublisher
	RetryConfig  config.RetryConfig
	// Retryable decides whether a failed message is worth another attempt.
	// Messages that fail permanently are dropped without reaching the DLQ.
	Retryable func(error) bool
}

func NewMultiTopicConsumer(
	brokers []string,
	topics []string,
	groupID string,
	dlq DLQPublisher,
	retryConfig config.RetryConfig,
) *KafkaConsumer {
	readers := make([]*kafka.Reader, len(topics))
	for i, topic := range topics {
		readers[i] = kafka.NewReader(kafka.ReaderConfig{
			Brokers:  brokers,
			GroupID:  groupID,
			Topic:    topic,
			MinBytes: 1,
			MaxBytes: 10e6,
		})
	}

	return &KafkaConsumer{
		Readers:      readers,
		DLQPublisher: dlq,
		RetryConfig:  publisher.WithDefaults(retryConfig),
		Retryable:    func(error) bool { return true },
	}
}

// Listen starts one goroutine per reader. They stop when ctx is cancelled.
func (c *KafkaConsumer) Listen(ctx context.Context, handler Handler) {
	for _, reader := range c.Readers {
		go func(r *kafka.Reader) {
			log := logrus.WithField("topic", r.Config().Topic)
			for {
				msg, err := r.ReadMessage(ctx)
				if err != nil {
					if ctx.Err() != nil {
						log.Info("consumer stopped")
						return
					}
					log.Errorf("kafka read error: %v", err)
					select {
					case <-time.After(time.Second):
					case <-ctx.Done():
						return
					}
					continue
				}
				c.ProcessMessage(ctx, msg, handler)
			}
		}(reader)
	}
}

func (c *KafkaConsumer) ProcessMessage(ctx context.Context, msg kafka.Message, handler Handler) {
	log := logrus.WithFields(logrus.Fields{"topic": msg.Topic, "key": string(msg.Key), "offset": msg.Offset})

	var lastErr error
	attempts := 0
	for attempt := 0; attempt < c.RetryConfig.MaxAttempts; attempt++ {
		attempts++
		err := handler(ctx, msg.Topic, msg.Value)
		if err == nil {
			metrics.ConsumedMessagesTotal.WithLabelValues(msg.Topic, "processed").Inc()
			return
		}
		lastErr = err

		if c.Retryable != nil && !c.Retryable(err) {
			log.Warnf("dropping message that cannot succeed: %v", err)
			metrics.ConsumedMessagesTotal.WithLabelValues(msg.Topic, "dropped").Inc()
			return
		}
		if attempt == c.RetryConfig.MaxAttempts-1 {
			break
		}

		backoff := publisher.Backoff(c.RetryConfig, attempt)
		log.Warnf("handler error, attempt %d/%d: %v. Retrying in %v", attempt+1, c.RetryConfig.MaxAttempts, err, backoff)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			log.Warn("context cancelled while retrying, message left uncommitted")
			return
		}
	}

	log.Errorf("message failed after %d attempts", attempts)
	metrics.ConsumedMessagesTotal.WithLabelValues(msg.Topic, "dead_lettered").Inc()
	if c.DLQPublisher == nil {
		return
	}

	dlqMessage := models.DLQMessage{
		OriginalTopic: msg.Topic,
		Key:           string(msg.Key),
		Value:         string(msg.Value),
		Error:         errorText(lastErr),
		Timestamp:     time.Now().UTC(),
		Attempts:      attempts,
	}
	if err := c.DLQPublisher.Publish(ctx, models.NotificationsDLQTopic, dlqMessage); err != nil {
		log.Errorf("failed to send message to DLQ: %v", err)
		return
	}
	log.Info("message sent to DLQ")
}

func (c *KafkaConsumer) Close() error {
	var errs []error
	for _, r := range c.Readers {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
