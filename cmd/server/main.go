// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hackfest/api/internal/auth"
	"github.com/hackfest/api/internal/botcheck"
	"github.com/hackfest/api/internal/config"
	dbconfig "github.com/hackfest/api/internal/database/config"
	"github.com/hackfest/api/internal/database/database"
	"github.com/hackfest/api/internal/database/migrate"
	"github.com/hackfest/api/internal/health"
	"github.com/hackfest/api/internal/middleware"
	"github.com/hackfest/api/internal/notify"
	"github.com/hackfest/api/internal/ratelimit"
	regModel "github.com/hackfest/api/internal/registration/model"
	regRouter "github.com/hackfest/api/internal/registration/router"
	subModel "github.com/hackfest/api/internal/submission/model"
	subRouter "github.com/hackfest/api/internal/submission/router"
	"github.com/hackfest/api/pkg/logger"
)

func main() {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		panic("invalid configuration: " + err.Error())
	}

	log, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)

	db, usingFallback := openDatabase(log)
	defer func() {
		if err := database.Close(db); err != nil {
			log.Errorw("error closing database", "error", err)
		}
	}()

	limiter := newLimiter(cfg.Guard, log)
	notifier := newNotifier(cfg.Mail, log)

	var botGate gin.HandlerFunc
	if cfg.BotCheck.Enabled() {
		botGate = botcheck.Gate(botcheck.NewHTTPVerifier(cfg.BotCheck), log)
	}

	sessions := auth.NewSessions(cfg.Admin.SessionSecret, cfg.Admin.SessionTTL)
	adminRequired := auth.AdminRequired(cfg.Admin, sessions)
	guard := middleware.RateGuard(limiter, log)

	r := gin.New()
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Metrics())

	r.GET("/health", health.New(db, log).Check)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth.RegisterRoutes(r, auth.NewHandler(cfg.Admin, sessions, log))
	regRouter.RegisterRoutes(r, regRouter.Deps{
		DB:       db,
		Logger:   log,
		Notifier: notifier,
		Features: cfg.Features,
		Guard:    guard,
		BotGate:  botGate,
		Admin:    adminRequired,
	})
	subRouter.RegisterRoutes(r, subRouter.Deps{
		DB:       db,
		Logger:   log,
		Features: cfg.Features,
		Guard:    guard,
		Admin:    adminRequired,
	})

	addr := cfg.Server.Port
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}
	srv := &http.Server{
		Addr:         cfg.Server.Host + addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infow("server starting",
			"addr", srv.Addr,
			"storage_fallback", usingFallback,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("forced shutdown", "error", err)
	}
}

// openDatabase connects to PostgreSQL, falling back to a local SQLite
// file so the service can keep accepting registrations when the primary
// store is unreachable. Returns the handle and whether the fallback is
// in use.
func openDatabase(log *zap.SugaredLogger) (*gorm.DB, bool) {
	db, err := database.New()
	if err == nil {
		if err := migrate.Migrate(db); err != nil {
			log.Fatalw("failed to apply migrations", "error", err)
		}
		return db, false
	}
	log.Errorw("postgres unavailable, falling back to local sqlite", "error", err)

	path := dbconfig.GetEnv("DB_FALLBACK_PATH", "hackfest.db")
	db, err = database.NewSQLite(path)
	if err != nil {
		log.Fatalw("failed to open fallback database", "error", err)
	}
	if err := db.AutoMigrate(
		&regModel.TeamRegistration{},
		&regModel.TeamMember{},
		&subModel.FinalSubmission{},
		&subModel.SubmissionAccessKey{},
	); err != nil {
		log.Fatalw("failed to migrate fallback database", "error", err)
	}
	return db, true
}

// newLimiter builds the configured rate limiter backend.
func newLimiter(cfg config.GuardConfig, log *zap.SugaredLogger) ratelimit.Limiter {
	limiterCfg := ratelimit.Config{
		Window:      cfg.Window,
		MaxAttempts: cfg.MaxAttempts,
		MinInterval: cfg.MinInterval,
	}

	if cfg.Backend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		log.Infow("rate guard using redis", "addr", cfg.RedisAddr)
		return ratelimit.NewRedisLimiter(client, limiterCfg)
	}

	return ratelimit.NewMemoryLimiter(limiterCfg)
}

// newNotifier builds the registration notifier, or a no-op when mail is
// not configured.
func newNotifier(cfg config.MailConfig, log *zap.SugaredLogger) notify.Notifier {
	if !cfg.Enabled() {
		log.Infow("mail notifications disabled")
		return notify.Noop{}
	}
	return notify.NewSMTP(cfg)
}
