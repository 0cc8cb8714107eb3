package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/TomasMurua/Hotel-Pacific-Reef/config"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/importer"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	filePath := flag.String("file", "Hotel Reservations.csv", "path to the reservation CSV export")
	flag.Parse()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	file, err := os.Open(*filePath)
	if err != nil {
		log.Fatalf("open %s: %v", *filePath, err)
	}
	defer file.Close()

	imp := importer.NewImporter(repository.NewReservationRepository(pool))
	count, err := imp.Import(ctx, file)
	if err != nil {
		log.Fatalf("import failed after %d rows: %v", count, err)
	}
	log.Printf("imported %d reservations from %s", count, *filePath)
}
