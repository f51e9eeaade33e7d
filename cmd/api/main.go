package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"publicapi/internal/config"
	"publicapi/internal/database"
	"publicapi/internal/middleware"
	"publicapi/internal/modules/auth"
	"publicapi/internal/modules/user"
	jwtsvc "publicapi/internal/pkg/jwt"
	"publicapi/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewApiUserRepository(db)
	blacklistRepo := repository.NewTokenBlacklistRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)

	authService := auth.NewService(userRepo, blacklistRepo, j)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/public/v1")
	{
		// token exchanges carry their own credentials
		authHandler.RegisterRoutes(v1)

		// resource routes require an access token
		protected := v1.Group("/")
		protected.Use(middleware.TokenAuth(j))
		{
			userHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
