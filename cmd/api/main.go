package main

import (
	"context"
	"log"

	"resume-builder-backend/internal/bootstrap"
	"resume-builder-backend/internal/shared/config"
	"resume-builder-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
