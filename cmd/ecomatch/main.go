package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ishaan-jha021/ecomatch/internal/config"
	dbRedis "github.com/ishaan-jha021/ecomatch/internal/db/redis"
	"github.com/ishaan-jha021/ecomatch/internal/domain"
	logpkg "github.com/ishaan-jha021/ecomatch/internal/logger"
	"github.com/ishaan-jha021/ecomatch/internal/metrics"
	"github.com/ishaan-jha021/ecomatch/internal/query"
	catalogrepo "github.com/ishaan-jha021/ecomatch/internal/repository/catalog"
	leadsrepo "github.com/ishaan-jha021/ecomatch/internal/repository/leads"
	chiTransport "github.com/ishaan-jha021/ecomatch/internal/transport/chi"
	openaiParser "github.com/ishaan-jha021/ecomatch/internal/transport/openai"
	directoryuc "github.com/ishaan-jha021/ecomatch/internal/usecase/directory"
	healthuc "github.com/ishaan-jha021/ecomatch/internal/usecase/health"
	leaduc "github.com/ishaan-jha021/ecomatch/internal/usecase/lead"
	searchuc "github.com/ishaan-jha021/ecomatch/internal/usecase/search"
	"github.com/ishaan-jha021/ecomatch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting ecomatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_driver", cfg.Catalog.Driver),
	)

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Build the catalog and lead store based on the configured driver
	var (
		catalog   searchuc.Catalog
		directory directoryuc.Catalog
		leadStore leaduc.Store
		reloader  chiTransport.Reloader
	)
	switch cfg.Catalog.Driver {
	case "file":
		fileCatalog, err := catalogrepo.NewFileCatalog(cfg.Catalog.Path, logger)
		if err != nil {
			logger.Fatal("Failed to load venue catalog", zap.Error(err))
		}
		catalog = fileCatalog
		directory = fileCatalog
		reloader = fileCatalog
		leadStore = leadsrepo.NewFileStore(cfg.Catalog.LeadsPath)
	case "redis":
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Catalog.Addrs,
			Password: cfg.Catalog.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer store.Close()

		readiness := time.Duration(cfg.Catalog.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(context.Background(), readiness); err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		logger.Info("Connected to database")

		redisCatalog := catalogrepo.NewRedisCatalog(store, cfg.Catalog.KeyPrefix)
		catalog = redisCatalog
		directory = redisCatalog
		leadStore = leadsrepo.NewRedisStore(store, cfg.Catalog.KeyPrefix)
	default:
		logger.Fatal("Unknown catalog driver", zap.String("driver", cfg.Catalog.Driver))
	}

	// Build the parser chain: LLM strategy (when configured) falling back to
	// the deterministic rule parser.
	ruleParser := query.NewRuleParser()
	var llmParser *openaiParser.Parser
	if cfg.LLM.APIKey != "" {
		llmParser, err = openaiParser.NewParser(&openaiParser.Config{
			APIKey:  cfg.LLM.APIKey,
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: time.Duration(cfg.LLM.TimeoutSec) * time.Second,
			Logger:  logger,
		})
		if err != nil {
			logger.Fatal("Failed to create LLM parser", zap.Error(err))
		}
		logger.Info("LLM query parser enabled", zap.String("model", cfg.LLM.Model))
	} else {
		logger.Info("LLM query parser disabled, using rule-based parsing only")
	}

	var primary query.Parser
	if llmParser != nil {
		primary = llmParser
	}
	parser := query.NewFallback(primary, ruleParser, logger)

	// Create use case services
	searchSvc := searchuc.New(catalog, parser).
		WithMaxResults(cfg.Search.MaxResults).
		WithDefaultSort(domain.SortKey(cfg.Search.DefaultSort))
	directorySvc := directoryuc.New(directory)
	leadSvc := leaduc.New(leadStore)

	var parserChecker healthuc.ParserChecker
	if llmParser != nil {
		parserChecker = llmParser
	}
	healthSvc := healthuc.New(catalogChecker{catalog}, parserChecker)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, directorySvc, leadSvc, healthSvc, logger)
	if reloader != nil {
		server.WithReloader(reloader)
	}

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	r.Handle("/metrics", promhttp.Handler())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// catalogChecker adapts a search catalog to the health check contract.
type catalogChecker struct {
	catalog searchuc.Catalog
}

func (c catalogChecker) HealthCheck(ctx context.Context) error {
	if _, err := c.catalog.All(ctx); err != nil {
		return fmt.Errorf("catalog health check: %w", err)
	}
	return nil
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
