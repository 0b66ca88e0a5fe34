package main

import (
	"context"
	"log"

	"campus-canteen/config"
	"campus-canteen/internal/service"
	"campus-canteen/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to prepare database schema:", err)
	}

	reader := config.NewKafkaReader(config.OrdersTopic, "counterboard")
	defer reader.Close()

	store := storage.NewCounterStore(db, rdb)
	consumer := service.NewCounterBoardConsumer(reader, store)
	consumer.Start(context.Background())
}
