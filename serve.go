package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"careerportal-api/config"
	"careerportal-api/database"
	"careerportal-api/handlers"
	"careerportal-api/logger"
	"careerportal-api/middleware"
	"careerportal-api/server"
	"careerportal-api/services/auth"
	"careerportal-api/utils"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Setup(cfg.Env, cfg.LogLevel)
	log.Info().Str("env", cfg.Env).Str("version", Version).Msg("configuration loaded")

	db, err := connectDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("connected to database")

	var rateLimiter *middleware.RateLimiter
	var redisPinger handlers.Pinger
	if cfg.Redis.URL != "" {
		redisClient, err := connectRedis(cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, payment rate limiting disabled")
		} else {
			defer redisClient.Close()
			rateLimiter = middleware.NewRateLimiter(redisClient, map[string]middleware.RateLimitConfig{
				"/api/payment": {
					Requests: cfg.Redis.PaymentLimit,
					Window:   cfg.Redis.PaymentLimitWindow,
					Message:  "Too many payment attempts. Please try again later.",
				},
			}, cfg.Server.TrustProxyHeaders)
			redisPinger = handlers.PingerFunc(func(ctx context.Context) error {
				return redisClient.Ping(ctx).Err()
			})
			log.Info().Int("limit", cfg.Redis.PaymentLimit).Dur("window", cfg.Redis.PaymentLimitWindow).Msg("payment rate limiting enabled")
		}
	}

	var jwtService *auth.JWTService
	if cfg.Auth.JWTSecret != "" {
		jwtService, err = auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
		if err != nil {
			return fmt.Errorf("invalid auth configuration: %w", err)
		}
		log.Info().Msg("recruiter endpoints require a bearer token")
	} else {
		log.Warn().Msg("JWT_SECRET not set, recruiter endpoints are unauthenticated")
	}

	sessionStore, err := newSessionStore(cfg.Session)
	if err != nil {
		return err
	}

	paymentHandler, err := handlers.NewPaymentHandler(db)
	if err != nil {
		return err
	}
	resumeHandler, err := handlers.NewResumeHandler(db, sessionStore)
	if err != nil {
		return err
	}
	applicationHandler, err := handlers.NewApplicationHandler(db)
	if err != nil {
		return err
	}

	router := server.NewRouter(server.Dependencies{
		Payments:     paymentHandler,
		Resumes:      resumeHandler,
		Applications: applicationHandler,
		Health:       handlers.NewHealthHandler(db, redisPinger),
		RateLimiter:  rateLimiter,
		Auth:         jwtService,
		CORSOrigins:  cfg.Server.AllowedOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(cfg.Server.Port, router).Run(ctx); err != nil {
		return err
	}
	log.Info().Msg("server exited properly")
	return nil
}

// connectDatabase retries with a linear backoff so the API can start
// alongside a database container that is still booting.
func connectDatabase(cfg database.DatabaseConfig) (*database.Connection, error) {
	var db *database.Connection
	var err error
	for retries := 0; retries < 5; retries++ {
		db, err = database.NewConnection(cfg)
		if err == nil {
			return db, nil
		}
		retryDelay := time.Duration(retries+1) * time.Second
		log.Warn().Err(err).Int("attempt", retries+1).Dur("retry_in", retryDelay).Msg("failed to connect to database")
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("failed to connect to database after retries: %w", err)
}

func connectRedis(url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

func newSessionStore(cfg config.SessionConfig) (*sessions.CookieStore, error) {
	secret := cfg.Secret
	if secret == "" {
		generated, err := utils.GenerateRandomString(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
		secret = generated
		log.Warn().Msg("SESSION_SECRET not set, resume sessions will not survive a restart")
	}

	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   cfg.Domain,
		MaxAge:   cfg.MaxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store, nil
}
