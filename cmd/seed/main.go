package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"publicapi/internal/config"
	"publicapi/internal/database"
	"publicapi/internal/domain"
	"publicapi/internal/pkg/validator"
	"publicapi/internal/repository"
)

// Seeds one API user. Accounts are never created through the public routes,
// so this is the supported way to provision one locally:
//
//	go run ./cmd/seed -api-id dev -key devsecret -name "Dev User" -email dev@example.com
func main() {
	_ = godotenv.Load()

	apiID := flag.String("api-id", "dev", "public id of the user")
	key := flag.String("key", "", "plaintext key to hash and store")
	name := flag.String("name", "Dev User", "display name")
	email := flag.String("email", "dev@example.com", "email address")
	phone := flag.String("phone", "", "optional phone number")
	flag.Parse()

	if *key == "" {
		log.Fatal("-key is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*key), cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}

	userRepo := repository.NewApiUserRepository(db)
	u := &domain.ApiUser{
		APIID: *apiID,
		Key:   string(hash),
		Name:  *name,
		Email: *email,
		Phone: *phone,
	}

	if problems := validator.Validate(u); problems != nil {
		log.Fatalf("invalid user: %v", problems)
	}

	if err := userRepo.Create(context.Background(), u); err != nil {
		if errors.Is(err, repository.ErrDuplicateAPIID) {
			log.Fatalf("api_id %q already exists", *apiID)
		}
		log.Fatalf("create failed: %v", err)
	}

	log.Printf("created api user %s (id=%d)", u.APIID, u.ID)
}
