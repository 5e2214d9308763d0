package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solar-catalog-be/internal/bootstrap"
	"solar-catalog-be/internal/config"
	"solar-catalog-be/internal/server"
	"solar-catalog-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Infrastructure (store, logger, asset host, mail, NATS, Redis)
	infra, err := bootstrap.NewInfrastructure(cfg)
	if err != nil {
		log.Panicf("Unable to initialize infrastructure: %v", err)
	}
	defer infra.Close()

	shutdownTracer := tracer.InitTracer(cfg.Otel, infra.Logger)
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg, infra)
	if err != nil {
		log.Panicf("Unable to build container: %v", err)
	}
	defer container.Close()

	// 4. Start Background Services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := container.Start(ctx); err != nil {
		infra.Logger.Error("BOOTSTRAP", "Failed to start event consumer", map[string]interface{}{"error": err.Error()})
	}

	// 5. Initialize Server
	srv := server.New(cfg, container, infra.Logger)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			infra.Logger.Error("SERVER", "Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		infra.Logger.Error("SERVER", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
