package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TomasMurua/Hotel-Pacific-Reef/config"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/cache"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/email"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/kafka"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/repository"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/service/dashboard"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	kafkaGo "github.com/segmentio/kafka-go"
)

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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Hotel.SnapshotTTLSeconds)*time.Second)
	reservationRepo := repository.NewReservationRepository(pool)
	dashboardService := dashboard.NewDashboardService(reservationRepo, redisCache, cfg.Hotel.TotalRooms)

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	go func() {
		if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
			var event kafka.ReservationEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				log.Printf("decode event error: %v", err)
				return nil
			}
			return emailSender.Send(ctx, event)
		}); err != nil {
			log.Printf("consumer stopped: %v", err)
		}
	}()

	refreshTicker := time.NewTicker(time.Duration(cfg.Worker.SnapshotRefreshMinutes) * time.Minute)
	defer refreshTicker.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-refreshTicker.C:
			if err := dashboardService.RefreshSnapshot(ctx); err != nil {
				log.Printf("refresh snapshot error: %v", err)
				continue
			}
			log.Printf("reservation snapshot refreshed")
		case s := <-sig:
			log.Printf("received signal %v, shutting down", s)
			return
		}
	}
}
