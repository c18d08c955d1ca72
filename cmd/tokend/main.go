package main

import (
	"log"

	"github.com/aussiebroadwan/tokend/internal/tokend/app"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment alone may configure tokend.
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
