package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("can't load environment variables from .env: %s", err.Error())
	}
	if err := env.Parse(&Config); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Archive
	Webhook
	Redis
	Processor
}

type APP struct {
	PORT            string `env:"APP_PORT" envDefault:"5001"`
	ENV             string `env:"GO_ENV" envDefault:"local"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	DefaultCurrency string `env:"APP_DEFAULT_CURRENCY" envDefault:"USDT"`
	MerchantName    string `env:"PIX_MERCHANT_NAME" envDefault:"WEBHOOK PIX"`
	MerchantCity    string `env:"PIX_MERCHANT_CITY" envDefault:"SAO PAULO"`
	QRRenderURL     string `env:"QR_RENDER_URL" envDefault:"https://api.qrserver.com/v1/create-qr-code/?size=300x300&data="`
	SeedDefaultKey  bool   `env:"SEED_DEFAULT_KEY" envDefault:"true"`
}

func (a APP) IsLocal() bool {
	return a.ENV == "" || a.ENV == "local"
}

// ConfigureLogger applies the level and formatter for the running environment.
func (a APP) ConfigureLogger() {
	level, err := logrus.ParseLevel(a.LogLevel)
	if err != nil {
		logrus.Warnf("invalid LOG_LEVEL %q, falling back to info", a.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if a.IsLocal() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return
	}
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
}

type DB struct {
	DRIVER     string `env:"DB_DRIVER" envDefault:"sqlite"`
	SQLitePath string `env:"DB_SQLITE_PATH" envDefault:"data/pix.db"`
	HOST       string `env:"DB_HOST"`
	USER       string `env:"DB_USER"`
	PASSWORD   string `env:"DB_PASSWORD"`
	NAME       string `env:"DB_NAME"`
	PORT       string `env:"DB_PORT" envDefault:"5432"`
	SSLMODE    string `env:"DB_SSLMODE" envDefault:"disable"`
}

type Kafka struct {
	Enabled          bool   `env:"KAFKA_ENABLED" envDefault:"false"`
	Brokers          string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	ConsumerGroup    string `env:"KAFKA_CONSUMER_GROUP_ID" envDefault:"webhook-pix"`
	PublishTopics    string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"pix.payments.confirmed,pix.notifications.dlq"`
	SubscriberTopics string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"pix.notifications.inbound"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

func (k Kafka) BrokerList() []string {
	return splitList(k.Brokers)
}

func (k Kafka) PublishTopicList() []string {
	return splitList(k.PublishTopics)
}

func (k Kafka) SubscriberTopicList() []string {
	return splitList(k.SubscriberTopics)
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

type Archive struct {
	Backend string `env:"ARCHIVE_BACKEND" envDefault:"file"`
	Dir     string `env:"ARCHIVE_DIR" envDefault:"logs"`

	S3Bucket          string `env:"ARCHIVE_S3_BUCKET"`
	S3Prefix          string `env:"ARCHIVE_S3_PREFIX" envDefault:"notifications/"`
	S3Region          string `env:"ARCHIVE_S3_REGION" envDefault:"us-east-1"`
	S3Endpoint        string `env:"ARCHIVE_S3_ENDPOINT"`
	S3AccessKeyID     string `env:"ARCHIVE_S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"ARCHIVE_S3_SECRET_ACCESS_KEY"`
}

type Webhook struct {
	Secret          string `env:"WEBHOOK_SECRET"`
	SignatureHeader string `env:"WEBHOOK_SIGNATURE_HEADER" envDefault:"X-Webhook-Signature"`
}

type Redis struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	LockTTL  time.Duration `env:"REDIS_LOCK_TTL" envDefault:"10s"`
	LockWait time.Duration `env:"REDIS_LOCK_WAIT" envDefault:"5s"`
}

type Processor struct {
	OpenPixAppID   string        `env:"OPENPIX_APP_ID"`
	OpenPixBaseURL string        `env:"OPENPIX_BASE_URL" envDefault:"https://api.openpix.com.br"`
	Timeout        time.Duration `env:"OPENPIX_TIMEOUT" envDefault:"15s"`
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
