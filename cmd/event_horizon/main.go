package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/s448/event-horizon/internal/app"
	"github.com/s448/event-horizon/internal/config"
)

func main() {
	// A missing .env is fine in deployed environments.
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
