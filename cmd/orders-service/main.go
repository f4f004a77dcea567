package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orders/internal/app"
)

const (
	envGRPCAddr                    = "ORDERS_GRPC_ADDR"
	envMetricsAddr                 = "ORDERS_METRICS_ADDR"
	envStorageDriver               = "ORDERS_STORAGE_DRIVER"
	envPostgresDSN                 = "ORDERS_POSTGRES_DSN"
	envPostgresAutoMigrate         = "ORDERS_POSTGRES_AUTO_MIGRATE"
	envKafkaBrokers                = "ORDERS_KAFKA_BROKERS"
	envProductsGRPCAddr            = "ORDERS_PRODUCTS_GRPC_ADDR"
	envPaymentsGRPCAddr            = "ORDERS_PAYMENTS_GRPC_ADDR"
	envAllowMockIntegrations       = "ORDERS_ALLOW_MOCK_INTEGRATIONS"
	envCurrency                    = "ORDERS_CURRENCY"
	envOutboxPollInterval          = "ORDERS_OUTBOX_POLL_INTERVAL"
	envOutboxBatchSize             = "ORDERS_OUTBOX_BATCH_SIZE"
	envOutboxMaxAttempts           = "ORDERS_OUTBOX_MAX_ATTEMPTS"
	envOutboxRetryDelay            = "ORDERS_OUTBOX_RETRY_DELAY"
	envOutboxMaxPending            = "ORDERS_OUTBOX_MAX_PENDING"
	envIdempotencyCleanupInterval  = "ORDERS_IDEMPOTENCY_CLEANUP_INTERVAL"
	envIdempotencyCleanupBatchSize = "ORDERS_IDEMPOTENCY_CLEANUP_BATCH_SIZE"
)

// envLookup абстрагирует os.LookupEnv для тестируемости.
type envLookup func(key string) (string, bool)

// setupLogger настраивает формат и уровень логирования для сервиса.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

// readConfigFromEnv формирует конфигурацию, накладывая переменные окружения
// поверх значений по умолчанию. Некорректные значения не прерывают запуск:
// поле остаётся дефолтным, а причина попадает в warnings.
func readConfigFromEnv(lookup envLookup) (app.Config, []string) {
	cfg := app.DefaultConfig()
	var warnings []string

	readString := func(key string, target *string) {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			*target = strings.TrimSpace(value)
		}
	}

	readString(envGRPCAddr, &cfg.GRPCAddr)
	readString(envMetricsAddr, &cfg.MetricsAddr)
	readString(envPostgresDSN, &cfg.PostgresDSN)
	readString(envKafkaBrokers, &cfg.KafkaBrokers)
	readString(envProductsGRPCAddr, &cfg.ProductsGRPCAddr)
	readString(envPaymentsGRPCAddr, &cfg.PaymentsGRPCAddr)
	readString(envCurrency, &cfg.Currency)

	if value, ok := lookup(envStorageDriver); ok && strings.TrimSpace(value) != "" {
		cfg.StorageDriver = app.StorageDriver(strings.ToLower(strings.TrimSpace(value)))
	}

	if value, ok := lookup(envPostgresAutoMigrate); ok {
		parsed, err := parseBool(value)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envPostgresAutoMigrate, err))
		} else {
			cfg.PostgresAutoMigrate = parsed
		}
	}

	if value, ok := lookup(envAllowMockIntegrations); ok {
		parsed, err := parseBool(value)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envAllowMockIntegrations, err))
		} else {
			cfg.AllowMockIntegrations = parsed
		}
	}

	if value, ok := lookup(envOutboxPollInterval); ok {
		parsed, err := parseDuration(value, func(v time.Duration) bool { return v > 0 }, "must be > 0")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envOutboxPollInterval, err))
		} else {
			cfg.OutboxPollInterval = parsed
		}
	}

	if value, ok := lookup(envOutboxBatchSize); ok {
		parsed, err := parseInt(value, func(v int) bool { return v > 0 }, "must be > 0")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envOutboxBatchSize, err))
		} else {
			cfg.OutboxBatchSize = parsed
		}
	}

	if value, ok := lookup(envOutboxMaxAttempts); ok {
		parsed, err := parseInt(value, func(v int) bool { return v > 0 }, "must be > 0")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envOutboxMaxAttempts, err))
		} else {
			cfg.OutboxMaxAttempts = parsed
		}
	}

	if value, ok := lookup(envOutboxRetryDelay); ok {
		parsed, err := parseDuration(value, func(v time.Duration) bool { return v >= 0 }, "must be >= 0")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envOutboxRetryDelay, err))
		} else {
			cfg.OutboxRetryDelay = parsed
		}
	}

	if value, ok := lookup(envOutboxMaxPending); ok {
		parsed, err := parseInt(value, func(v int) bool { return v >= 0 }, "must be >= 0")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envOutboxMaxPending, err))
		} else {
			cfg.OutboxMaxPending = parsed
		}
	}

	if value, ok := lookup(envIdempotencyCleanupInterval); ok {
		parsed, err := parseDuration(value, func(v time.Duration) bool { return v > 0 }, "must be > 0")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envIdempotencyCleanupInterval, err))
		} else {
			cfg.IdempotencyCleanupInterval = parsed
		}
	}

	if value, ok := lookup(envIdempotencyCleanupBatchSize); ok {
		parsed, err := parseInt(value, func(v int) bool { return v > 0 }, "must be > 0")
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", envIdempotencyCleanupBatchSize, err))
		} else {
			cfg.IdempotencyCleanupBatchSize = parsed
		}
	}

	return cfg, warnings
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "t", "true", "yes", "y", "on":
		return true, nil
	case "0", "f", "false", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value %q", value)
	}
}

func parseInt(value string, valid func(int) bool, requirement string) (int, error) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid integer value %q", value)
	}
	if !valid(parsed) {
		return 0, fmt.Errorf("value %d is out of range: %s", parsed, requirement)
	}
	return parsed, nil
}

func parseDuration(value string, valid func(time.Duration) bool, requirement string) (time.Duration, error) {
	parsed, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("invalid duration value %q", value)
	}
	if !valid(parsed) {
		return 0, fmt.Errorf("value %s is out of range: %s", parsed, requirement)
	}
	return parsed, nil
}

func main() {
	setupLogger()
	cfg, warnings := readConfigFromEnv(os.LookupEnv)
	for _, warning := range warnings {
		log.Warn(warning)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(log.Fields{
		"grpc_addr":      cfg.GRPCAddr,
		"metrics_addr":   cfg.MetricsAddr,
		"storage_driver": cfg.StorageDriver,
	}).Info("запускаем orders service")

	if err := app.Run(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("приложение завершилось с ошибкой")
	}

	log.Info("orders service остановлен")
}
