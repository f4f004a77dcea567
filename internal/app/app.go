package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/IBM/sarama"
	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	healthcheck "github.com/vladislavdragonenkov/orders/internal/health"
	"github.com/vladislavdragonenkov/orders/internal/messaging/kafka"
	grpcsvc "github.com/vladislavdragonenkov/orders/internal/service/grpc"
	"github.com/vladislavdragonenkov/orders/internal/service/idempotency"
	"github.com/vladislavdragonenkov/orders/internal/service/orders"
	"github.com/vladislavdragonenkov/orders/internal/service/outbox"
	"github.com/vladislavdragonenkov/orders/internal/version"
	ordersv1 "github.com/vladislavdragonenkov/orders/proto/orders/v1"
)

const paymentConsumerGroup = "orders-service"

// Run собирает зависимости и запускает сервис до отмены ctx.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	runtime, err := initRuntimeDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if runtime.closeFn != nil {
		defer func() {
			if closeErr := runtime.closeFn(); closeErr != nil {
				logger.WithError(closeErr).Warn("failed to close storage")
			}
		}()
	}

	remote, err := initIntegrations(cfg, logger)
	if err != nil {
		return err
	}
	defer remote.closeFn()

	deps := &Dependencies{
		Repo:            runtime.repo,
		OutboxRepo:      runtime.outboxRepo,
		TimelineRepo:    runtime.timelineRepo,
		IdempotencyRepo: runtime.idempotencyRepo,
		Catalog:         remote.catalog,
		Payments:        remote.payments,
		Logger:          logger,
	}

	orchestrator := createOrchestrator(deps, cfg.Currency)

	kafkaProducer, kafkaErr := initKafkaProducer(cfg.KafkaBrokers, logger)
	if kafkaErr != nil {
		logger.WithError(kafkaErr).Warn("kafka is unavailable, events stay in outbox")
	}
	defer closeKafka(kafkaProducer, logger)

	outboxCancel, outboxDone := startOutboxWorker(ctx, cfg, runtime, kafkaProducer, logger)
	defer shutdownOutboxWorker(outboxCancel, outboxDone, logger)

	paymentConsumer := startPaymentConsumer(ctx, cfg, orchestrator, kafkaProducer, logger)
	if paymentConsumer != nil {
		defer func() {
			if err := paymentConsumer.Stop(); err != nil {
				logger.WithError(err).Warn("failed to stop payment consumer")
			}
		}()
	}

	cleanupWorker := idempotency.NewCleanupWorker(
		runtime.idempotencyRepo,
		idempotency.WithLogger(logger.WithField("layer", "idempotency-cleanup")),
		idempotency.WithInterval(cfg.IdempotencyCleanupInterval),
		idempotency.WithBatchSize(cfg.IdempotencyCleanupBatchSize),
	)
	go cleanupWorker.Run(ctx)

	serviceLogger := logger.WithField("layer", "grpc")
	orderService := grpcsvc.NewOrderService(orchestrator, runtime.timelineRepo, runtime.idempotencyRepo, serviceLogger)

	grpcMetrics := promgrpc.NewServerMetrics()
	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(grpcMetrics.UnaryServerInterceptor()))
	if err := prometheus.Register(grpcMetrics); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*promgrpc.ServerMetrics); ok {
				grpcMetrics = existing
			}
		} else {
			logger.WithError(err).Warn("failed to register grpc metrics")
		}
	}

	ordersv1.RegisterOrderServiceServer(grpcServer, orderService)
	grpcMetrics.InitializeMetrics(grpcServer)

	// Reflection нужен для grpcurl и ручной отладки.
	reflection.Register(grpcServer)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	if runtime.storageChecker != nil {
		healthHandler.RegisterChecker("storage", runtime.storageChecker)
	}

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("gRPC сервер слушает %s", cfg.GRPCAddr)
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем gRPC сервер")
		stoppedCh := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
			close(stoppedCh)
		}()
		select {
		case <-stoppedCh:
		case <-time.After(5 * time.Second):
			logger.Warn("graceful stop превысил таймаут, принудительно останавливаем")
			grpcServer.Stop()
		}
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	}
}

// startOutboxWorker запускает публикацию outbox-сообщений в Kafka.
// Без producer воркер не стартует: события остаются в outbox до рестарта с Kafka.
func startOutboxWorker(
	ctx context.Context,
	cfg Config,
	runtime runtimeDependencies,
	producer *kafka.Producer,
	logger *log.Entry,
) (context.CancelFunc, chan struct{}) {
	if producer == nil {
		return nil, nil
	}

	publisher := kafka.NewOutboxPublisher(producer, kafka.TopicOrderEvents)
	dlqPublisher := kafka.NewOutboxPublisher(producer, kafka.TopicDeadLetterQueue)

	worker := outbox.NewWorker(
		runtime.outboxRepo,
		publisher,
		outbox.WithLogger(logger.WithField("layer", "outbox-worker")),
		outbox.WithDLQPublisher(dlqPublisher),
		outbox.WithPollInterval(cfg.OutboxPollInterval),
		outbox.WithBatchSize(cfg.OutboxBatchSize),
		outbox.WithMaxAttempts(cfg.OutboxMaxAttempts),
		outbox.WithRetryBaseDelay(cfg.OutboxRetryDelay),
	)

	workerCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.Run(workerCtx)
	}()

	return cancel, done
}

// startPaymentConsumer подписывается на подтверждения оплаты и помечает
// заказы оплаченными.
func startPaymentConsumer(
	ctx context.Context,
	cfg Config,
	orchestrator orders.Orchestrator,
	dlqProducer *kafka.Producer,
	logger *log.Entry,
) *kafka.Consumer {
	if cfg.KafkaBrokers == "" {
		return nil
	}

	brokers := strings.Split(cfg.KafkaBrokers, ",")
	consumerLogger := logger.WithField("layer", "payment-consumer")

	handler := func(ctx context.Context, message *sarama.ConsumerMessage) error {
		event, err := kafka.ParsePaymentSucceededEvent(message)
		if err != nil {
			return err
		}

		_, err = orchestrator.MarkPaid(ctx, event.OrderID, event.PaidAt, event.ReceiptURL)
		if err != nil {
			consumerLogger.WithError(err).WithField("order_id", event.OrderID).Warn("failed to mark order as paid")
			return err
		}
		return nil
	}

	consumer, err := kafka.NewConsumerWithDLQ(
		brokers,
		paymentConsumerGroup,
		[]string{kafka.TopicPaymentSucceeded},
		handler,
		dlqProducer,
		cfg.OutboxMaxAttempts,
	)
	if err != nil {
		consumerLogger.WithError(err).Warn("failed to create payment consumer, payment confirmations are disabled")
		return nil
	}

	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			consumerLogger.WithError(err).Warn("payment consumer stopped with error")
		}
	}()

	consumerLogger.WithField("topic", kafka.TopicPaymentSucceeded).Info("payment consumer started")
	return consumer
}

// shutdownOutboxWorker останавливает outbox worker и дожидается завершения.
func shutdownOutboxWorker(cancel context.CancelFunc, done chan struct{}, logger *log.Entry) {
	if cancel == nil {
		return
	}
	cancel()

	if done == nil {
		return
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		logger.Warn("outbox worker did not stop in time")
	}
}

// startMetricsServer запускает HTTP-обработчик /metrics для Prometheus.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez, %s/readyz", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
