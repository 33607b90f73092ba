package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/project/catalog/config"
	"github.com/project/catalog/db"
	"github.com/project/catalog/internal/controller"
	"github.com/project/catalog/internal/usecase/library"
	"github.com/project/catalog/internal/usecase/repository"
	"github.com/project/catalog/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const (
	readTimeout    = 10 * time.Second
	writeTimeout   = 10 * time.Second
	idleTimeout    = 60 * time.Second
	maxHeaderBytes = 1 << 20
)

// Run serves the catalog until SIGINT or SIGTERM. It fails only when
// startup fails.
func Run(l *zap.Logger, cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := db.SetupPostgres(ctx, cfg.PG.MigrationURL, l); err != nil {
		return fmt.Errorf("can not migrate database: %w", err)
	}

	dbPool, err := pgxpool.New(ctx, cfg.PG.URL)
	if err != nil {
		return fmt.Errorf("can not create pgxpool: %w", err)
	}
	defer dbPool.Close()

	shutdownTracing, err := setupTracing(ctx, cfg.Observability.JaegerURL)
	if err != nil {
		return fmt.Errorf("can not set up tracing: %w", err)
	}
	defer func() {
		logger.CheckError(shutdownTracing(context.Background()), l, "can not flush traces")
	}()

	authorRepository := repository.NewAuthorRepository(logger.Named(l, cfg.Log.LogDBRepo, "repository"), dbPool)
	booksRepository := repository.NewBooksRepository(logger.Named(l, cfg.Log.LogDBRepo, "repository"), dbPool)
	transactor := repository.NewTransactor(logger.Named(l, cfg.Log.LogTransactor, "transactor"), dbPool)

	useCases := library.New(
		logger.Named(l, cfg.Log.LogUseCase, "usecase"),
		authorRepository,
		booksRepository,
		transactor,
	)

	if cfg.Seed.Enabled {
		if _, err = useCases.SeedCatalog(ctx); err != nil {
			return fmt.Errorf("can not seed catalog: %w", err)
		}
	}

	gin.SetMode(cfg.HTTP.GinMode)
	ctrl := controller.New(logger.Named(l, cfg.Log.LogController, "controller"), useCases, useCases, dbPool)

	server := &http.Server{
		Addr:           cfg.HTTPAddress(),
		Handler:        controller.NewRouter(ctrl),
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		MaxHeaderBytes: maxHeaderBytes,
	}

	go runHTTP(l, server, cfg)

	var metricsServer *http.Server
	if cfg.Observability.MetricsPort != "" {
		metricsServer = newMetricsServer(cfg.Observability.MetricsPort)
		go runMetrics(l, metricsServer)
	}

	<-ctx.Done()
	l.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	logger.CheckError(server.Shutdown(shutdownCtx), l, "http server forced to shutdown")
	if metricsServer != nil {
		logger.CheckError(metricsServer.Shutdown(shutdownCtx), l, "metrics server forced to shutdown")
	}

	return nil
}

func runHTTP(l *zap.Logger, server *http.Server, cfg *config.Config) {
	base := "http://localhost:" + cfg.HTTP.Port
	l.Info("http server listening",
		zap.String("address", server.Addr),
		zap.String("authors_api", base+"/api/authors"),
		zap.String("books_api", base+"/api/books"))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Error("http server listen error", zap.Error(err))
	}
}

func newMetricsServer(port string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: readTimeout,
	}
}

func runMetrics(l *zap.Logger, server *http.Server) {
	l.Info("metrics server listening", zap.String("address", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		l.Error("metrics server listen error", zap.Error(err))
	}
}
