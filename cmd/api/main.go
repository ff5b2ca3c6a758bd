package main

import (
	"context"
	"log"
	"time"

	"offerai-backend/internal/artifacts"
	"offerai-backend/internal/shared/config"
	"offerai-backend/internal/shared/server"
)

func main() {
	cfg := config.Load()

	store := artifacts.NewStore(cfg.ArtifactTTL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go store.Janitor(ctx, time.Minute)

	r, err := server.NewRouter(cfg, store)
	if err != nil {
		log.Fatalf("router init: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
