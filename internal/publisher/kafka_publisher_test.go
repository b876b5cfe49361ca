package publisher_test

import (
	"context"
	"testing"
	"time"

	"github.com/BrunoMartendal/webhook-pix2/config"
	"github.com/BrunoMartendal/webhook-pix2/internal/publisher"
	"github.com/stretchr/testify/assert"
)

func TestBackoff_ExponentialAndCapped(t *testing.T) {
	cfg := config.RetryConfig{MaxAttempts: 5, BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second}

	assert.Equal(t, 100*time.Millisecond, publisher.Backoff(cfg, 0))
	assert.Equal(t, 200*time.Millisecond, publisher.Backoff(cfg, 1))
	assert.Equal(t, 800*time.Millisecond, publisher.Backoff(cfg, 3))
	assert.Equal(t, time.Second, publisher.Backoff(cfg, 10))
}

func TestBackoff_JitterBounds(t *testing.T) {
	cfg := config.RetryConfig{BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Jitter: true}

	for i := 0; i < 100; i++ {
		d := publisher.Backoff(cfg, 2)
		assert.GreaterOrEqual(t, d, 340*time.Millisecond)
		assert.LessOrEqual(t, d, 460*time.Millisecond)
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := publisher.WithDefaults(config.RetryConfig{})
	assert.Equal(t, 5, cfg.MaxAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.BaseDelay)
	assert.Equal(t, 10*time.Second, cfg.MaxDelay)
}

func TestPublish_UnknownTopic(t *testing.T) {
	p := publisher.NewKafkaPublisher([]string{"localhost:9092"}, []string{"pix.payments.confirmed"}, config.RetryConfig{})
	defer p.Close()

	err := p.Publish(context.Background(), "not.configured", map[string]string{"a": "b"})
	assert.EqualError(t, err, "error no writer configured for topic not.configured")
}
