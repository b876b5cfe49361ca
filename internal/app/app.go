package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/BrunoMartendal/webhook-pix2/config"
	"github.com/BrunoMartendal/webhook-pix2/internal/archive"
	"github.com/BrunoMartendal/webhook-pix2/internal/database"
	"github.com/BrunoMartendal/webhook-pix2/internal/handlers"
	"github.com/BrunoMartendal/webhook-pix2/internal/lock"
	"github.com/BrunoMartendal/webhook-pix2/internal/metrics"
	"github.com/BrunoMartendal/webhook-pix2/internal/models"
	"github.com/BrunoMartendal/webhook-pix2/internal/processor"
	"github.com/BrunoMartendal/webhook-pix2/internal/publisher"
	"github.com/BrunoMartendal/webhook-pix2/internal/repository/posgrest"
	"github.com/BrunoMartendal/webhook-pix2/internal/service"
	"github.com/BrunoMartendal/webhook-pix2/internal/subscriber"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config   *config.Config
	Router   *gin.Engine
	webhook  *handlers.WebhookHandler
	consumer *subscriber.KafkaConsumer
	closers  []func() error
}

func (a *App) Initialize(ctx context.Context, cfg *config.Config) error {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}

	if err := db.AutoMigrate(&models.PaymentKey{}, &models.Transaction{}, &models.NotificationRecord{}); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	if cfg.APP.SeedDefaultKey {
		if err := database.SeedPaymentKeys(db); err != nil {
			return fmt.Errorf("failed to seed payment keys: %w", err)
		}
	}

	archiver, err := a.newArchiver(ctx, db)
	if err != nil {
		return err
	}
	locker, err := a.newLocker(ctx)
	if err != nil {
		return err
	}

	// interfaces stay nil when a collaborator is disabled
	var eventPublisher service.Publisher
	var kafkaPublisher *publisher.KafkaPublisher
	if cfg.Kafka.Enabled {
		kafkaPublisher = publisher.NewKafkaPublisher(cfg.Kafka.BrokerList(), cfg.Kafka.PublishTopicList(), cfg.Kafka.GetRetryConfig())
		eventPublisher = kafkaPublisher
		a.closers = append(a.closers, kafkaPublisher.Close)
	}

	var processorClient service.ProcessorClient
	if cfg.Processor.OpenPixAppID != "" {
		processorClient = processor.NewOpenPixClient(cfg.Processor.OpenPixBaseURL, cfg.Processor.OpenPixAppID, cfg.Processor.Timeout)
		logrus.Info("charges will be created through OpenPix")
	}

	metrics.RegisterMetrics()

	keyRepo := posgrest.New[models.PaymentKey](db)
	transactionRepo := posgrest.NewTransactionRepository(db)

	reconciler := service.NewReconciler(transactionRepo, locker)
	notificationService := service.NewNotificationService(archiver, reconciler, eventPublisher)
	keyService := service.NewKeyService(keyRepo)
	chargeService := service.NewChargeService(keyRepo, transactionRepo, processorClient, service.ChargeSettings{
		DefaultCurrency: cfg.APP.DefaultCurrency,
		MerchantName:    cfg.APP.MerchantName,
		MerchantCity:    cfg.APP.MerchantCity,
		QRRenderURL:     cfg.APP.QRRenderURL,
	})

	a.webhook = handlers.NewWebhookHandler(notificationService, cfg.Webhook.Secret, cfg.Webhook.SignatureHeader)
	keyHandler := handlers.NewKeyHandler(keyService)
	chargeHandler := handlers.NewChargeHandler(chargeService)

	if !cfg.APP.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.Default()
	a.RegisterRoutes(a.webhook, keyHandler, chargeHandler)

	if cfg.Kafka.Enabled {
		a.consumer = subscriber.NewMultiTopicConsumer(
			cfg.Kafka.BrokerList(),
			cfg.Kafka.SubscriberTopicList(),
			cfg.Kafka.ConsumerGroup,
			kafkaPublisher,
			cfg.Kafka.GetRetryConfig(),
		)
		a.consumer.Retryable = func(err error) bool { return !service.IsPermanent(err) }
		a.closers = append(a.closers, a.consumer.Close)
	}
	return nil
}

func (a *App) newArchiver(ctx context.Context, db *gorm.DB) (service.Archiver, error) {
	cfg := a.config.Archive
	switch cfg.Backend {
	case "", "file":
		return archive.NewFileArchiver(cfg.Dir), nil
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, errors.New("ARCHIVE_S3_BUCKET is required for the s3 archive backend")
		}
		client, err := archive.NewS3Client(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create s3 client: %w", err)
		}
		return archive.NewS3Archiver(client, cfg.S3Bucket, cfg.S3Prefix), nil
	case "database":
		return archive.NewDatabaseArchiver(posgrest.New[models.NotificationRecord](db)), nil
	default:
		return nil, fmt.Errorf("unsupported archive backend %q", cfg.Backend)
	}
}

func (a *App) newLocker(ctx context.Context) (lock.Locker, error) {
	cfg := a.config.Redis
	if cfg.Addr == "" {
		return lock.NewLocal(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", cfg.Addr, err)
	}
	a.closers = append(a.closers, client.Close)
	logrus.WithField("addr", cfg.Addr).Info("using redis reconciliation lock")
	return lock.NewRedis(client, cfg.LockTTL, cfg.LockWait), nil
}

// Run serves HTTP, and consumes Kafka when enabled, until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.consumer != nil {
		a.consumer.Listen(ctx, a.webhook.HandleEvents)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case err := <-serveErr:
		runErr = err
	case <-ctx.Done():
		logrus.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		runErr = srv.Shutdown(shutdownCtx)
	}

	return errors.Join(runErr, a.Close())
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
