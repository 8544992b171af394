//	@title			Config Storage API
//	@version		1.0
//	@description	Uploads CPE configuration files to S3-compatible storage.
//
//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/cpeconf/service/docs/swagger"
	"github.com/cpeconf/service/internal/audit"
	"github.com/cpeconf/service/internal/config"
	"github.com/cpeconf/service/internal/db"
	"github.com/cpeconf/service/internal/logging"
	appMiddleware "github.com/cpeconf/service/internal/middleware"
	"github.com/cpeconf/service/internal/storage"
	"github.com/cpeconf/service/internal/upload"
)

func main() {
	if err := run(); err != nil {
		slog.Error("service exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	slog.SetDefault(logging.New(os.Stdout, cfg.LogLevel, cfg.IsProduction()))

	file, err := config.LoadFile(cfg.ConfigFile)
	if err != nil {
		return fmt.Errorf("load config file: %w", err)
	}
	settings, err := config.ResolveStorageSettings(file)
	if err != nil {
		return fmt.Errorf("resolve storage settings: %w", err)
	}
	if settings.Bucket == "" {
		slog.Warn("no configs bucket configured, uploads will fail", "config_file", cfg.ConfigFile)
	}

	store, err := storage.NewMinioStorage(storage.MinioOptions{
		Endpoint:  settings.Endpoint,
		Region:    settings.Region,
		AccessKey: settings.AccessKey,
		SecretKey: settings.SecretKey,
	})
	if err != nil {
		return fmt.Errorf("object storage init failed: %w", err)
	}
	defer store.Close()

	var recorder audit.Recorder = audit.Noop{}
	if cfg.DatabaseURL != "" {
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("database migration failed: %w", err)
		}
		pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer pool.Close()
		recorder = audit.NewRepository(pool)
	}

	// Wire dependencies: storage → service → handler
	uploadSvc := upload.NewService(store, settings, recorder, upload.WithStorageTimeout(cfg.StorageTimeout))
	uploadHandler := upload.NewHandler(uploadSvc, cfg.IdentifierField, cfg.DefaultAuthor, cfg.MaxBodyBytes)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI, served at http://localhost:8080/swagger/
	if cfg.RoutePrefix != "" {
		swagger.SwaggerInfo.BasePath = cfg.RoutePrefix
	}
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	apiRoutes := func(r chi.Router) {
		r.Use(appMiddleware.Author(cfg.AuthCookie, cfg.DefaultAuthor))
		r.Post("/method/UploadConfig", uploadHandler.UploadConfig)
	}
	if cfg.RoutePrefix == "" {
		r.Group(apiRoutes)
	} else {
		r.Route(cfg.RoutePrefix, apiRoutes)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout: 15 * time.Second,
		// Leaves room to write the 500 response after a storage write times out.
		WriteTimeout: cfg.StorageTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server listening",
			"port", cfg.Port,
			"env", cfg.AppEnv,
			"bucket", settings.Bucket,
			"prefix", settings.Prefix,
			"identifier_field", cfg.IdentifierField,
			"storage_timeout", cfg.StorageTimeout,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}
	slog.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
