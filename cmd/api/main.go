// Command api serves the project tracker HTTP API.
//
//	@title						Project Tracker API
//	@version					1.0
//	@description				Clients and projects with role-based access.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/workcity/project-tracker/docs"
	"github.com/workcity/project-tracker/internal/api"
	"github.com/workcity/project-tracker/internal/api/handler"
	"github.com/workcity/project-tracker/internal/api/middleware"
	"github.com/workcity/project-tracker/internal/core/service"
	"github.com/workcity/project-tracker/internal/infrastructure/auth"
	"github.com/workcity/project-tracker/internal/infrastructure/config"
	mongodb "github.com/workcity/project-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/workcity/project-tracker/internal/infrastructure/db/redis"
	"github.com/workcity/project-tracker/internal/infrastructure/ratelimit"
	"github.com/workcity/project-tracker/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// bootstrapLogger writes JSON lines to w before configuration is known.
func bootstrapLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("service", "project-tracker").Logger()
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not configured yet.
		boot := bootstrapLogger(os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "project-tracker",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("disconnect mongodb")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	checks := map[string]handler.Check{"mongodb": handler.MongoCheck(db)}

	var limiter middleware.Limiter = ratelimit.NewLocal(cfg.RateLimit.Attempts, cfg.RateLimit.Window)
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("connect redis")
		}
		defer rdb.Close()

		limiter = redisdb.NewAttemptLimiter(rdb, "auth", cfg.RateLimit.Attempts, cfg.RateLimit.Window)
		checks["redis"] = handler.RedisCheck(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("auth attempts limited through redis")
	} else {
		log.Info().Msg("redis not configured, limiting auth attempts in process")
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	clientRepo := mongodb.NewClientRepository(db)
	authService := service.NewAuthService(mongodb.NewAuthRepository(db), tokens, logger.Component("auth"))
	clientService := service.NewClientService(clientRepo, logger.Component("clients"))
	projectService := service.NewProjectService(
		mongodb.NewProjectRepository(db),
		service.NewClientReferenceChecker(clientRepo),
		logger.Component("projects"),
	)

	router := api.NewRouter(api.Deps{
		Auth:           authService,
		Clients:        clientService,
		Projects:       projectService,
		Resolver:       tokens,
		AuthLimiter:    limiter,
		ReadyChecks:    checks,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("server shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("shutdown complete")
}
