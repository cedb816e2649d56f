package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	dashboardHttp "epidash-service/internal/dashboard/adapters/http/fiber"
	"epidash-service/internal/dashboard/adapters/mock"
	dashboardRepoPg "epidash-service/internal/dashboard/adapters/postgres"
	dashboardRedis "epidash-service/internal/dashboard/adapters/redis"
	"epidash-service/internal/dashboard/core/domain"
	"epidash-service/internal/dashboard/core/ports"
	dashboardUsecase "epidash-service/internal/dashboard/core/usecase"
	"epidash-service/internal/httpserver"
	recordsHttp "epidash-service/internal/records/adapters/http/fiber"
	recordsRepoPg "epidash-service/internal/records/adapters/postgres"
	recordsUsecase "epidash-service/internal/records/core/usecase"
	"epidash-service/internal/scheduler"

	_ "epidash-service/docs"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	// Mock source
	mockStart, mockEnd := mockRange(cfg)
	mockSource := mock.NewSource(mock.Config{
		Count:     cfg.Mock.RecordCount,
		Seed:      cfg.Mock.Seed,
		StartDate: mockStart,
		EndDate:   mockEnd,
	})
	snapshot, generatedAt := mockSource.Snapshot()
	log.Info("mock snapshot generated", "records", len(snapshot), "generated_at", generatedAt)

	// Database source (optional)
	var dbSource ports.RecordSourcePort
	var storeRecordUC *recordsUsecase.StoreRecordUseCase
	if cfg.Postgres.Enabled() {
		db, err := openDB(ctx, cfg.Postgres)
		if err != nil {
			return err
		}
		defer db.Close()

		dbSource = dashboardRepoPg.NewRecordReader(dashboardRepoPg.NewSQLDB(db))
		storeRecordUC = recordsUsecase.NewStoreRecordUseCase(recordsRepoPg.NewRecordRepository(recordsRepoPg.NewSQLDB(db)))

		if cfg.Redis.Enabled {
			rdb, err := dashboardRedis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				return err
			}
			defer rdb.Close()

			dbSource = dashboardUsecase.NewCachedRecordSource(
				string(domain.DataSourceDatabase),
				dbSource,
				dashboardRedis.NewRecordCache(rdb),
				cfg.Cache.TTL,
				log,
			)
			log.Info("record cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Cache.TTL.String())
		}
	}

	// Usecases
	defaultSource, err := domain.ParseDataSource(cfg.DataSource.Default)
	if err != nil {
		return err
	}
	policy := dashboardUsecase.SourcePolicy{
		Default:        defaultSource,
		AllowSwitching: cfg.DataSource.AllowSwitching,
	}
	defaults := dashboardUsecase.DashboardDefaults{
		StartDate:  cfg.Dashboard.DefaultStartDate,
		EndDate:    cfg.Dashboard.DefaultEndDate,
		Period:     domain.Period(cfg.Dashboard.DefaultPeriod),
		PageSize:   cfg.Dashboard.PageSize,
		TopRegions: cfg.Dashboard.TopRegions,
	}
	selector := dashboardUsecase.NewSourceSelector(mockSource, dbSource)
	getDashboardUC := dashboardUsecase.NewGetDashboardUseCase(selector, policy, defaults)
	listRecordsUC := dashboardUsecase.NewListRecordsUseCase(selector, policy, defaults)

	// Scheduler
	sched := scheduler.NewCronScheduler(log, cfg.Scheduler.Timeout)
	defer sched.Stop()
	if cfg.Mock.RefreshInterval > 0 {
		if err := sched.Schedule(ctx, "mock_refresh", cfg.Mock.RefreshInterval, mockSource.Refresh); err != nil {
			return err
		}
	}
	log.Info("scheduler started", "jobs", sched.Jobs())

	// HTTP (Fiber) app + handlers
	app := httpserver.New(httpserver.Options{AppName: cfg.App.Name, EnableCORS: cfg.HTTP.EnableCORS}, log)
	api := app.Group("/api/v1")

	dashboardHttp.NewDashboardHandler(getDashboardUC, listRecordsUC, policy, dashboardHttp.AppInfo{
		Name:    cfg.App.Name,
		Version: cfg.App.Version,
	}).Register(api)

	if storeRecordUC != nil {
		recordsHttp.NewRecordHandler(storeRecordUC).Register(api)
	}

	// Swagger
	if cfg.HTTP.EnableSwagger {
		app.Get("/docs/*", fiberSwagger.WrapHandler)
	}

	// Graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.HTTP.Addr)
	}()
	log.Info("server started", "addr", cfg.HTTP.Addr, "source", defaultSource, "database", cfg.Postgres.Enabled())

	select {
	case err := <-errCh:
		return fmt.Errorf("fiber stopped: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("fiber shutdown error", "error", err)
	}

	log.Info("server exiting")
	return nil
}
