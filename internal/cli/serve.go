package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"speedxpress/internal/cache"
	"speedxpress/internal/config"
	"speedxpress/internal/database"
	"speedxpress/internal/logging"
	"speedxpress/internal/notify"
	"speedxpress/internal/payments"
	"speedxpress/internal/repositories"
	"speedxpress/internal/server"
	"speedxpress/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("store close failed", zap.Error(err))
		}
	}()
	logger.Info("store connected", zap.String("driver", cfg.Store.Driver))

	deps := server.Dependencies{
		Store: store,
		Processor: payments.NewBraintreeProcessor(payments.BraintreeConfig{
			Environment:       cfg.Braintree.Environment,
			MerchantID:        cfg.Braintree.MerchantID,
			PublicKey:         cfg.Braintree.PublicKey,
			PrivateKey:        cfg.Braintree.PrivateKey,
			MerchantAccountID: cfg.Braintree.MerchantAccountID,
		}, logger),
		JWTSecret: cfg.JWTSecret,
		Currency:  cfg.PaymentCurrency,
		Logger:    logger,
		AccessLog: true,
	}

	if cfg.Redis.Addr != "" {
		accountTypes := cache.NewAccountTypeCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
		defer accountTypes.Close()
		if err := accountTypes.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, account type lookups will hit the store", zap.Error(err))
		}
		deps.Cache = accountTypes
	}

	var mailer notify.Mailer = notify.NewLogMailer(logger)
	if cfg.SMTP.Host != "" {
		mailer = notify.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From, logger)
	}
	renderer := notify.NewRenderer()

	switch cfg.Notify.Mode {
	case config.NotifyQueue:
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.Notify.RabbitMQURL, Queues: []string{notify.QueueName}}, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer mqClient.Close()
		if err := mqClient.Consume(ctx, notify.QueueName, notify.Deliverer(mailer, logger)); err != nil {
			return fmt.Errorf("failed to start notification consumer: %w", err)
		}
		deps.Notifier = notify.NewQueueNotifier(renderer, mqClient)
	default:
		deps.Notifier = notify.NewDirectNotifier(renderer, mailer)
	}

	app := server.New(deps)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", cfg.AppPort))
		errCh <- app.Listen(cfg.AppPort)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("error during shutdown", zap.Error(err))
	}
	logger.Info("server gracefully stopped")
	return nil
}

func openStore(ctx context.Context, cfg config.Store, logger *zap.Logger) (*repositories.Store, error) {
	if cfg.Driver == "mongo" {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return repositories.NewMongoStore(connectCtx, cfg.MongoURI, cfg.MongoDatabase)
	}
	db, err := database.Open(cfg.Driver, cfg.DSN, logger)
	if err != nil {
		return nil, err
	}
	return repositories.NewGORMStore(db), nil
}
