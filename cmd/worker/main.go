package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/skyhoard/pkg/app"
	"github.com/ghuser/skyhoard/pkg/cache"
	"github.com/ghuser/skyhoard/pkg/config"
	"github.com/ghuser/skyhoard/pkg/database"
	"github.com/ghuser/skyhoard/pkg/events"
	"github.com/ghuser/skyhoard/pkg/logger"
	"github.com/ghuser/skyhoard/pkg/telemetry"
	"github.com/ghuser/skyhoard/pkg/workflows"
	listsWorkflows "github.com/ghuser/skyhoard/services/lists/application/workflows"
	listsEvents "github.com/ghuser/skyhoard/services/lists/domain/events"
	listsPostgres "github.com/ghuser/skyhoard/services/lists/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalClient.Close()

	appConfig := &app.Application{
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	w, err := startAuditWorker(ctx, appConfig)
	if err != nil {
		log.Error("failed to start audit worker", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer w.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	errCh, err := a.EventBus.Subscribe(ctx, listsEvents.TopicListChanged, handleListChanged(a))
	if err != nil {
		return err
	}

	// Drain subscriber errors in background so the channel never blocks.
	go func() {
		for err := range errCh {
			a.Logger.ErrorContext(ctx, "subscriber error",
				"topic", listsEvents.TopicListChanged,
				"error", err,
			)
		}
	}()

	a.Logger.Info("event subscribers registered", "topics", []string{listsEvents.TopicListChanged})
	return nil
}

// handleListChanged returns a handler for list.changed events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Drops the cached aggregate snapshot of the (game, family); the next
// aggregate read repopulates it from Postgres.
func handleListChanged(a *app.Application) func(context.Context, *message.Message) error {
	aggCache := cache.NewAggregateCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt listsEvents.ListChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := aggCache.Delete(ctx, evt.GameID, evt.Family.String()); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "aggregate cache invalidated",
			"game_id", evt.GameID, "family", evt.Family)
		return nil
	}
}

// startAuditWorker serves the lists task queue and kicks off the hourly
// aggregate audit cron. Starting the cron when it already runs fails with
// "already started", which is the normal case after the first boot.
func startAuditWorker(ctx context.Context, a *app.Application) (worker.Worker, error) {
	w := worker.New(a.TemporalClient.Client, listsWorkflows.TaskQueue, worker.Options{})
	w.RegisterWorkflow(listsWorkflows.AggregateAuditWorkflow)
	w.RegisterActivity(&listsWorkflows.AuditActivities{
		Repo: listsPostgres.NewListRepository(a.Db, a.EventBus),
		Log:  a.Logger,
	})
	if err := w.Start(); err != nil {
		return nil, err
	}

	_, err := a.TemporalClient.Client.ExecuteWorkflow(ctx, client.StartWorkflowOptions{
		ID:           listsWorkflows.AuditWorkflowID,
		TaskQueue:    listsWorkflows.TaskQueue,
		CronSchedule: listsWorkflows.AuditCronSchedule,
	}, listsWorkflows.AggregateAuditWorkflow)
	if err != nil {
		a.Logger.Warn("aggregate audit cron not started (may already be running)", "error", err)
	} else {
		a.Logger.Info("aggregate audit cron scheduled", "cron", listsWorkflows.AuditCronSchedule)
	}
	return w, nil
}
