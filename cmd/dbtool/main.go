package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"trackswift/internal/app"
	"trackswift/internal/bootstrap"
	"trackswift/internal/config"
	"trackswift/internal/repository"
)

// dbtool creates the schema and loads the demo dataset. Safe to re-run.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool, err := repository.NewPool(connectCtx, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}
	defer pool.Close()

	logger := app.NewLogger()

	log.Println("initializing database schema...")
	if err := bootstrap.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("schema ready")

	log.Println("seeding database...")
	if err := bootstrap.EnsureSeed(ctx, pool, logger); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("seeding complete")
}
