package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"yearbook/internal/config"
	"yearbook/internal/metrics"
	"yearbook/internal/server"
	"yearbook/internal/store"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Select the storage backend once for the process lifetime
	stores := store.Open(ctx, cfg)
	defer stores.Close()
	metrics.StorageBackend.WithLabelValues(string(stores.Backend)).Set(1)

	srv := server.New(cfg)
	srv.RegisterRoutes(stores)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s (backend: %s)", cfg.ServerAddr, stores.Backend)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
