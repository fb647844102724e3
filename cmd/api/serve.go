package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpadp "manhour-tracker/internal/adapter/http"
	appmw "manhour-tracker/internal/adapter/middleware"
	"manhour-tracker/internal/adapter/repository/mysql"
	"manhour-tracker/internal/infrastructure/cache"
	"manhour-tracker/internal/infrastructure/excel"
	"manhour-tracker/internal/usecase/dashboard"
	"manhour-tracker/internal/usecase/ingest"
	"manhour-tracker/internal/usecase/report"
	"manhour-tracker/internal/usecase/request"
	"manhour-tracker/internal/usecase/stakeholder"
	"manhour-tracker/pkg/id"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, log, gdb, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := mysql.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return err
	}
	if rdb == nil {
		log.Info("redis disabled, uploads are not deduplicated")
	} else {
		defer func() { _ = rdb.Close() }()
	}

	// repositories & use cases
	requests := mysql.NewRequestRepository(gdb)
	updates := mysql.NewUpdateRepository(gdb)
	stakeholders := mysql.NewStakeholderRepository(gdb)
	manHours := mysql.NewManHourRepository(gdb)
	reports := mysql.NewReportRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	files := httpadp.NewFiles(excel.NewParser(), excel.NewRenderer())
	routes := httpadp.Routes{
		Health: httpadp.NewHandler(func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}),
		Stakeholders: httpadp.NewStakeholderHandler(stakeholder.NewUsecase(stakeholders)),
		Requests:     httpadp.NewRequestHandler(request.NewUsecase(requests, updates, tx), files),
		Uploads:      httpadp.NewUploadHandler(ingest.NewEngine(tx, log.Named("ingest")), files),
		Reports:      httpadp.NewReportHandler(report.NewUsecase(reports, manHours), dashboard.NewUsecase(reports), files),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}),
		middleware.BodyLimit(cfg.UploadLimit()),
		appmw.RequestLogger(log.Named("http")),
		appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, log.Named("idempotency")),
	)
	routes.Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr), zap.String("db_driver", cfg.DBDriver))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
