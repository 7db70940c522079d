package main

import (
	"fmt"
	"log"

	"github.com/todmy/oom-trainer/internal/api"
	"github.com/todmy/oom-trainer/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	server := api.NewServer(api.ServerConfig{
		ProblemsPerDay: cfg.ProblemsPerDay,
		ReceiptSecret:  cfg.ReceiptSecret,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	fmt.Printf("Starting oom-trainer server on port %s\n", cfg.Port)
	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
