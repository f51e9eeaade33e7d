package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"publicapi/internal/database"
	"publicapi/internal/domain"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.ApiUser{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.TokenBlacklistEntry{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("Schema is up to date.")
}
