package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TomasMurua/Hotel-Pacific-Reef/config"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/bootstrap"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/cache"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/kafka"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/payment"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/repository"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/service/booking"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/service/dashboard"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

const gatewayDelay = 2 * time.Second

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Hotel.SnapshotTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	reservationRepo := repository.NewReservationRepository(pool)

	dashboardService := dashboard.NewDashboardService(reservationRepo, redisCache, cfg.Hotel.TotalRooms)
	failSoft := dashboard.NewFailSoft(dashboardService)

	sessions := booking.NewSessionStore(time.Duration(cfg.Hotel.SessionTTLMinutes) * time.Minute)
	bookingService := booking.NewBookingService(
		reservationRepo,
		dashboardService,
		payment.NewSimulatedGateway(gatewayDelay),
		redisCache,
		producer,
		sessions,
		cfg.Kafka.ReservationsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, failSoft, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
