package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"publicapi/internal/database"
	"publicapi/internal/repository"
)

// Periodic sweep for the token blacklist. Entries past their expiry can no
// longer influence any authorization decision, so deleting them is safe at
// any moment. Run from cron or a scheduler.
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

	blacklistRepo := repository.NewTokenBlacklistRepository(db)
	deleted, err := blacklistRepo.DeleteExpired(context.Background())
	if err != nil {
		log.Fatalf("cleanup failed: %v", err)
	}

	log.Printf("blacklist cleanup completed: deleted=%d", deleted)
}
