package main

import (
	"log"

	"github.com/Houeta/restobot/internal/config"
	"github.com/Houeta/restobot/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

func main() {
	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}

	dtb := stdlib.OpenDBFromPool(dbpool)
	if migrationErr := goose.Up(dtb, "migrations"); migrationErr != nil {
		log.Fatal(migrationErr)
	}
	defer dbpool.Close()

	log.Println("✅ Migrations applied successfully")
}
