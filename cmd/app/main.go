package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/washify/booking/config"
	"github.com/washify/booking/internal/bootstrap"
	"github.com/washify/booking/internal/cache"
	"github.com/washify/booking/internal/email"
	"github.com/washify/booking/internal/kafka"
	"github.com/washify/booking/internal/repository"
	"github.com/washify/booking/internal/service/auth"
	"github.com/washify/booking/internal/service/booking"
	"github.com/washify/booking/internal/service/packages"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := bootstrap.NewLogger("booking-api")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatalw("connect postgres", "err", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Booking.PackagesCacheTTL)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	bookingRepo := repository.NewBookingRepository(pool)
	packageRepo := repository.NewPackageRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)

	packageService := packages.NewPackageService(packageRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		packageRepo,
		producer,
		cfg.Kafka.NotificationsTopic,
		logger,
		booking.WithNumberAttempts(cfg.Booking.NumberMaxAttempts),
	)
	authService := auth.NewAuthService(adminRepo, cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	mailClient := email.NewClient(cfg.Email)

	logger.Infow("startup", "status", "listening", "addr", cfg.HTTP.Address)
	if err := bootstrap.Run(ctx, cfg, bootstrap.Deps{
		Bookings: bookingService,
		Packages: packageService,
		Auth:     authService,
		Mail:     mailClient,
		Log:      logger,
	}); err != nil {
		logger.Fatalw("server error", "err", err)
	}
}
