package app

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/orders/internal/health"
)

func TestRun_MemoryGracefulShutdown(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GRPCAddr = "127.0.0.1:0"
	cfg.MetricsAddr = "127.0.0.1:0"
	cfg.StorageDriver = StorageDriverMemory
	cfg.KafkaBrokers = ""

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(150 * time.Millisecond)
		cancel()
	}()

	err := Run(ctx, cfg)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRun_InvalidStorageDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StorageDriver = "invalid-driver"
	cfg.GRPCAddr = "127.0.0.1:0"
	cfg.MetricsAddr = "127.0.0.1:0"

	err := Run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "unsupported storage driver") {
		t.Fatalf("expected unsupported storage driver error, got %v", err)
	}
}

func TestRun_RequiresIntegrationsWithoutMocks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GRPCAddr = "127.0.0.1:0"
	cfg.MetricsAddr = "127.0.0.1:0"
	cfg.AllowMockIntegrations = false

	err := Run(context.Background(), cfg)
	if err == nil || !strings.Contains(err.Error(), "product catalog address is required") {
		t.Fatalf("expected missing catalog address error, got %v", err)
	}
}

func TestInitRuntimeDependencies_PostgresSuccess(t *testing.T) {
	dsn := postgresTestDSNCandidate()
	if dsn == "" {
		t.Skip("postgres dsn is not available")
	}

	cfg := DefaultConfig()
	cfg.StorageDriver = StorageDriverPostgres
	cfg.PostgresDSN = dsn
	cfg.PostgresAutoMigrate = true

	deps, err := initRuntimeDependencies(context.Background(), cfg, log.WithField("test", "postgres-init"))
	if err != nil {
		t.Skipf("postgres is not available for app integration test: %v", err)
	}
	if deps.closeFn != nil {
		defer func() { _ = deps.closeFn() }()
	}

	if deps.repo == nil || deps.outboxRepo == nil || deps.timelineRepo == nil || deps.idempotencyRepo == nil {
		t.Fatalf("postgres dependencies must be initialized: %+v", deps)
	}
	if deps.storageChecker == nil {
		t.Fatal("expected non-nil storage checker for postgres")
	}
	check := deps.storageChecker.Check()
	if check.Status != healthcheck.StatusHealthy {
		t.Fatalf("expected healthy storage checker, got %+v", check)
	}
}

func TestShutdownOutboxWorkerHelpers(t *testing.T) {
	logger := log.WithField("test", "shutdown")

	cancelCalled := false
	done := make(chan struct{})
	close(done)
	shutdownOutboxWorker(func() { cancelCalled = true }, done, logger)
	if !cancelCalled {
		t.Fatal("expected outbox cancel func to be called")
	}

	shutdownOutboxWorker(nil, nil, logger)
}

func TestInitIntegrations_MocksByDefault(t *testing.T) {
	result, err := initIntegrations(DefaultConfig(), log.WithField("test", "integrations"))
	if err != nil {
		t.Fatalf("initIntegrations failed: %v", err)
	}
	defer result.closeFn()

	if result.catalog == nil || result.payments == nil {
		t.Fatal("mock integrations must be initialized")
	}
}

func TestInitIntegrations_RequiresAddrsWithoutMocks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowMockIntegrations = false

	if _, err := initIntegrations(cfg, log.WithField("test", "integrations")); err == nil {
		t.Fatal("expected error when integrations are required but not configured")
	}
}

func postgresTestDSNCandidate() string {
	if dsn := strings.TrimSpace(os.Getenv("ORDERS_POSTGRES_TEST_DSN")); dsn != "" {
		return dsn
	}
	return strings.TrimSpace(os.Getenv("ORDERS_POSTGRES_DSN"))
}
