package main

import (
	"log"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/app"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/config"
)

func main() {
	// Локально переменные можно держать в .env
	if err := config.LoadDotEnv(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Build собирает граф зависимостей и инициализирует все компоненты
	application, err := app.Build(cfg)
	if err != nil {
		log.Fatalf("Failed to build app: %v", err)
	}

	// Run блокируется до graceful shutdown
	if err := application.Run(); err != nil {
		log.Fatalf("Service error: %v", err)
	}
}
