// Package app wires configuration, storage, services and the HTTP transport
// into a running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/laborcrm-backend/internal/adapter/cache"
	"github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres"
	appointmentrepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/appointment"
	auditrepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/audit"
	caserepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/casefile"
	clientrepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/client"
	documentrepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/document"
	notificationrepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/notification"
	templaterepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/template"
	userrepo "github.com/heartmarshall/laborcrm-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/laborcrm-backend/internal/auth"
	"github.com/heartmarshall/laborcrm-backend/internal/config"
	"github.com/heartmarshall/laborcrm-backend/internal/metrics"
	"github.com/heartmarshall/laborcrm-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/laborcrm-backend/internal/service/auth"
	"github.com/heartmarshall/laborcrm-backend/internal/service/notification"
	"github.com/heartmarshall/laborcrm-backend/internal/service/search"
	"github.com/heartmarshall/laborcrm-backend/internal/service/template"
	"github.com/heartmarshall/laborcrm-backend/internal/transport/middleware"
	"github.com/heartmarshall/laborcrm-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), builds the HTTP server and serves
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = cache.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer redisClient.Close() //nolint:errcheck
	}

	m := metrics.New()

	srv := NewServer(cfg, logger, pool, redisClient, m)
	defer srv.Close()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.http.Addr))
		if err := srv.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// Server holds the HTTP server and the background workers that must be
// drained after it stops accepting requests.
type Server struct {
	http     *http.Server
	recorder *audit.Recorder
	limiter  *middleware.RateLimiter
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Close waits for pending audit writes and stops the rate limiter.
// Call it after the HTTP server has stopped.
func (s *Server) Close() {
	s.recorder.Wait()
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// NewServer builds repositories, services, handlers and the middleware
// chain. redisClient may be nil to run without the suggestion cache.
func NewServer(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, m *metrics.Metrics) *Server {
	txm := postgres.NewTxManager(pool)

	clients := clientrepo.New(pool)
	cases := caserepo.New(pool)
	documents := documentrepo.New(pool)
	appointments := appointmentrepo.New(pool)
	templates := templaterepo.New(pool)
	auditRecords := auditrepo.New(pool)
	notifications := notificationrepo.New(pool)
	users := userrepo.New(pool)

	recorder := audit.NewRecorder(logger, auditRecords, cfg.Audit.WriteTimeout, m.AuditWriteFailures)

	searchOpts := []search.Option{search.WithDurationObserver(m.SearchDuration)}
	health := rest.NewHealthHandler(pool, Version)
	if redisClient != nil {
		suggestions := cache.NewSuggestions(redisClient, cfg.Search.SuggestionTTL)
		searchOpts = append(searchOpts, search.WithSuggestionCache(suggestions))
		health = health.WithCache(suggestions)
	}

	searchService := search.NewService(logger, clients, cases, documents, appointments, search.Limits{
		DefaultLimit:   cfg.Search.DefaultLimit,
		MaxLimit:       cfg.Search.MaxLimit,
		MaxSuggestions: cfg.Search.MaxSuggestions,
	}, searchOpts...)
	templateService := template.NewService(logger, templates, recorder, txm)
	auditService := audit.NewService(logger, auditRecords)
	notificationService := notification.NewService(logger, notifications, recorder)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, jwtManager)

	handlers := rest.Handlers{
		Health:        health,
		Search:        rest.NewSearchHandler(searchService, logger),
		Templates:     rest.NewTemplateHandler(templateService, logger),
		Audit:         rest.NewAuditHandler(auditService, logger),
		Notifications: rest.NewNotificationHandler(notificationService, logger),
	}
	if cfg.Metrics.Enabled {
		handlers.Metrics = m.Handler()
	}
	mux := rest.NewRouter(handlers, middleware.RequireActor)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(rateLimitCleanupInterval)
	}

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.ClientInfo(cfg.Server.TrustProxy),
		middleware.Logger(logger),
		middleware.When(cfg.Metrics.Enabled, func() middleware.Middleware { return middleware.Metrics(m, mux) }),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService, logger),
		middleware.When(limiter != nil, func() middleware.Middleware { return limiter.Limit(cfg.RateLimit.RequestsPerMinute) }),
	)

	return &Server{
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      chain(mux),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
		recorder: recorder,
		limiter:  limiter,
	}
}
