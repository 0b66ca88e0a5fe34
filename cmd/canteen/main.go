package main

import (
	"log"
	"net/http"

	"campus-canteen/config"
	httpapi "campus-canteen/internal/api/http"
	"campus-canteen/internal/service"
	"campus-canteen/internal/storage"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	_ = godotenv.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	kafkaWriter := config.NewKafkaWriter(config.OrdersTopic)
	defer kafkaWriter.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to prepare database schema:", err)
	}

	cache := storage.NewRedisCache(rdb)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	passes := &service.QRPassEncoder{BaseURL: config.PublicBaseURL()}

	orderService := service.NewOrderService(repo, repo, cache, publisher, passes)
	catalogService := service.NewCatalogService(repo)
	authService := service.NewAuthService(repo, config.JWTSecret())

	handler := httpapi.NewHandler(orderService, catalogService, authService)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)

	addr := config.HTTPAddr()
	log.Println("Canteen API starting on", addr)
	log.Fatal(http.ListenAndServe(addr, cors.Default().Handler(r)))
}
