package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/AnshDabra27/jet-set-go/internal/app"
	"github.com/AnshDabra27/jet-set-go/internal/config"
)

func main() {
	// .env is optional for local development
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
