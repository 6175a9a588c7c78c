package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/bryanwahyu/ideaforge/internal/application"
	appideas "github.com/bryanwahyu/ideaforge/internal/application/ideas"
	"github.com/bryanwahyu/ideaforge/internal/config"
	"github.com/bryanwahyu/ideaforge/internal/domain/analysis"
	domain "github.com/bryanwahyu/ideaforge/internal/domain/ideas"
	"github.com/bryanwahyu/ideaforge/internal/infra/ai/mock"
	aiopenai "github.com/bryanwahyu/ideaforge/internal/infra/ai/openai"
	mysqlp "github.com/bryanwahyu/ideaforge/internal/infra/db/mysql"
	"github.com/bryanwahyu/ideaforge/internal/infra/db/postgres"
	"github.com/bryanwahyu/ideaforge/internal/infra/db/sqlite"
	"github.com/bryanwahyu/ideaforge/internal/infra/httpserver"
	"github.com/bryanwahyu/ideaforge/internal/infra/storage"
	"github.com/bryanwahyu/ideaforge/internal/logging"
	"github.com/bryanwahyu/ideaforge/internal/middleware"
)

func main() {
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}

	repo, err := appideas.Open(ctx, store, log.Named("repository"))
	if err != nil {
		store.Close()
		return err
	}
	defer repo.Close()

	svc := &appideas.Service{
		Repo:     repo,
		Provider: newProvider(cfg),
		Clock:    application.SystemClock{},
		Delay:    cfg.Analysis.Delay,
		Log:      log.Named("ideas"),
	}

	checkers := map[string]middleware.HealthChecker{
		"repository": middleware.RepositoryCheck(repo.Degraded),
	}
	if c, ok := store.(middleware.HealthChecker); ok {
		checkers["store"] = c
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillRate)
	go limiter.Run(ctx)

	if len(cfg.Auth.APIKeys) == 0 {
		log.Warn("no API keys configured, every /v1 request will be rejected")
	}

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: httpserver.NewRouter(svc, httpserver.Options{
			Log:            log.Named("http"),
			APIKeys:        cfg.Auth.APIKeys,
			Limiter:        limiter,
			Checkers:       checkers,
			AllowedOrigins: cfg.Server.AllowedOrigins,
			SubmitTimeout:  cfg.Analysis.Timeout,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.Store.Driver),
			zap.String("provider", cfg.Analysis.Provider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown error", zap.Error(err))
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config) (domain.Store, error) {
	switch strings.ToLower(cfg.Store.Driver) {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.Store.Path)
	case "sqlite":
		db, err := sqlite.Open(ctx, cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		return sqlite.NewIdeaStore(db, cfg.Store.Key), nil
	case "mysql":
		db, err := mysqlp.Connect(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, err
		}
		return mysqlp.NewIdeaStore(db, cfg.Store.Key), nil
	case "postgres":
		db, err := postgres.Connect(ctx, cfg.PostgresDSN())
		if err != nil {
			return nil, err
		}
		return postgres.NewIdeaStore(db, cfg.Store.Key), nil
	case "redis":
		return storage.NewRedisStore(ctx, storage.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Key:      cfg.Store.Key,
		})
	case "minio":
		return storage.NewMinioStore(ctx, storage.MinioOptions{
			Endpoint:   cfg.Minio.Endpoint,
			Region:     cfg.Minio.Region,
			BucketName: cfg.Minio.BucketName,
			AccessKey:  cfg.Minio.AccessKey,
			SecretKey:  cfg.Minio.SecretKey,
			UseSSL:     cfg.Minio.UseSSL,
			Key:        cfg.Store.Key,
		})
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newProvider(cfg *config.Config) analysis.Provider {
	if strings.EqualFold(cfg.Analysis.Provider, "openai") {
		o := cfg.Analysis.OpenAI
		return aiopenai.NewClient(o.APIKey, o.Model, o.BaseURL)
	}
	return mock.NewGenerator(nil, application.SystemClock{})
}
