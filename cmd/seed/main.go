package main

import (
	"log"

	"campus-canteen/config"
	"campus-canteen/internal/domain"
	"campus-canteen/internal/storage"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// The default menu. Seeding is idempotent: items already present by name are
// left alone.
var menu = []domain.Item{
	{Name: "Idly", Price: 30, AvailableQty: 50, ImageURL: "https://example.com/img/idly.jpg"},
	{Name: "Dosa", Price: 40, AvailableQty: 50, ImageURL: "https://example.com/img/dosa.jpg"},
	{Name: "Vada", Price: 25, AvailableQty: 50, ImageURL: "https://example.com/img/vada.jpg"},
	{Name: "Pongal", Price: 45, AvailableQty: 40, ImageURL: "https://example.com/img/pongal.jpg"},
	{Name: "Upma", Price: 35, AvailableQty: 40, ImageURL: "https://example.com/img/upma.jpg"},
	{Name: "Poori", Price: 40, AvailableQty: 40, ImageURL: "https://example.com/img/poori.jpg"},
	{Name: "Lemon Rice", Price: 45, AvailableQty: 35, ImageURL: "https://example.com/img/lemon-rice.jpg"},
	{Name: "Sambar Rice", Price: 50, AvailableQty: 35, ImageURL: "https://example.com/img/sambar-rice.jpg"},
	{Name: "Tamarind Rice", Price: 45, AvailableQty: 35, ImageURL: "https://example.com/img/tamarind-rice.jpg"},
	{Name: "Curd Rice", Price: 40, AvailableQty: 35, ImageURL: "https://example.com/img/curd-rice.jpg"},
}

func main() {
	_ = godotenv.Load()

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to prepare database schema:", err)
	}

	seeded := 0
	for _, item := range menu {
		var exists bool
		if err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM items WHERE name = $1)`, item.Name).Scan(&exists); err != nil {
			log.Fatal("Failed to check existing item:", err)
		}
		if exists {
			continue
		}

		item.ID = uuid.NewString()
		if err := repo.CreateItem(&item); err != nil {
			log.Fatal("Failed to seed item:", err)
		}
		seeded++
	}

	log.Printf("Seeding done, %d item(s) inserted", seeded)
}
