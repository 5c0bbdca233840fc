package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/murmurapp/murmur/internal/app"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
