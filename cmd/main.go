package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/radiofy/auth-service/config"
	"github.com/radiofy/auth-service/db"
	"github.com/radiofy/auth-service/internal/auth/domain"
	"github.com/radiofy/auth-service/internal/auth/handler"
	"github.com/radiofy/auth-service/internal/auth/notifier"
	repo "github.com/radiofy/auth-service/internal/auth/repository/postgres"
	"github.com/radiofy/auth-service/internal/auth/service"
	"github.com/radiofy/auth-service/internal/purge"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer dbPool.Close()

	otpRepo := repo.NewOtpRepository(dbPool)
	refreshRepo := repo.NewRefreshTokenRepository(dbPool)
	userDirectory := repo.NewUserDirectory(dbPool)

	var codeNotifier domain.Notifier
	if cfg.Env == "production" {
		codeNotifier = notifier.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		codeNotifier = notifier.NewLogNotifier()
	}

	hasher := service.NewCredentialHasher()

	signer, err := service.NewTokenSigner(cfg.AccessTokenSecret, cfg.AccessExpiryMin)
	if err != nil {
		log.Fatalf("failed to initialize token signer: %v", err)
	}

	otpEngine := service.NewOtpLifecycleEngine(otpRepo, userDirectory, codeNotifier, hasher, service.OtpEngineConfig{
		CodeLength:     cfg.OtpLength,
		VerifyTTL:      time.Duration(cfg.OtpVerifyTTLMin) * time.Minute,
		ResetTTL:       time.Duration(cfg.OtpResetTTLMin) * time.Minute,
		MaxActive:      cfg.OtpMaxActive,
		MaxAttempts:    cfg.OtpMaxAttempts,
		ThrottleWindow: time.Duration(cfg.OtpThrottleSeconds) * time.Second,
		EchoEnabled:    cfg.OtpEchoEnabled,
	})
	refreshEngine := service.NewRefreshTokenEngine(refreshRepo, time.Duration(cfg.RefreshLifetimeHrs)*time.Hour)

	purger := purge.NewPurger(time.Duration(cfg.PurgeIntervalMin) * time.Minute)
	purger.Register("otp", purge.StoreFunc(otpRepo.PurgeExpiredOrConsumed))
	purger.Register("refresh_token", purge.StoreFunc(refreshRepo.PurgeExpired))
	go purger.Run(ctx)

	authHandler := handler.NewAuthHandler(otpEngine, refreshEngine, signer, cfg.OtpEchoEnabled)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	go func() {
		<-ctx.Done()
		if err := app.Shutdown(); err != nil {
			log.Printf("warn: server shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
