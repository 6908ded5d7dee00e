package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	httpadp "lostfound/internal/adapter/http"
	appmw "lostfound/internal/adapter/middleware"
	"lostfound/internal/adapter/repository/sqlstore"
	"lostfound/internal/config"
	"lostfound/internal/infrastructure/cache"
	"lostfound/internal/infrastructure/metrics"
	ucClaim "lostfound/internal/usecase/claim"
	ucDirectory "lostfound/internal/usecase/directory"
	ucItem "lostfound/internal/usecase/item"
	ucReport "lostfound/internal/usecase/report"
	"lostfound/pkg/id"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	gdb, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB(gdb)
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb, err = cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer rdb.Close()
	} else {
		slog.Warn("redis disabled: no idempotency guard, no lookup cache")
	}

	m := metrics.New()
	tx := sqlstore.NewGormUoW(gdb)

	var dirOpts []ucDirectory.Option
	if rdb != nil && cfg.LookupTTLSecs > 0 {
		dirOpts = append(dirOpts, ucDirectory.WithCache(cache.NewLookupCache(rdb, cfg.LookupTTL())))
	}

	items := ucItem.NewUsecase(sqlstore.NewItemRepository(gdb), tx, ucItem.WithRecorder(m))
	claims := ucClaim.NewUsecase(sqlstore.NewClaimRepository(gdb), tx, ucClaim.WithRecorder(m))
	reports := ucReport.NewUsecase(sqlstore.NewReportRepository(gdb))
	dir := ucDirectory.NewUsecase(sqlstore.NewUserRepository(gdb), sqlstore.NewLocationRepository(gdb), tx, dirOpts...)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: id.NewID32}))
	e.Use(middleware.Logger(), middleware.Recover())

	var mutating []echo.MiddlewareFunc
	if rdb != nil {
		mutating = append(mutating, appmw.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL()))
	}

	httpadp.RegisterRoutes(e, httpadp.Handlers{
		Health:    httpadp.NewHandler(sqlDB.PingContext),
		Items:     httpadp.NewItemHandler(items),
		Claims:    httpadp.NewClaimHandler(claims),
		Reports:   httpadp.NewReportHandler(reports),
		Directory: httpadp.NewDirectoryHandler(dir),
		Metrics:   m.Handler(),
	}, mutating...)

	addr := ":" + cfg.AppPort
	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", addr, "driver", cfg.DBDriver)
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

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
