package main

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nlamendino/dealday/internal/ai"
	"github.com/nlamendino/dealday/internal/config"
	"github.com/nlamendino/dealday/internal/generator"
	"github.com/nlamendino/dealday/internal/pipeline"
	"github.com/nlamendino/dealday/internal/scheduler"
	"github.com/nlamendino/dealday/internal/server"
	"github.com/nlamendino/dealday/internal/storage"
)

func main() {
	slog.Info("Starting Deal of the Day server...")

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Critical error loading configuration", "error", err)
		os.Exit(1)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		slog.Error("Critical error initializing persistence store", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var enricher generator.Enricher
	aiClient, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		slog.Warn("Failed to initialize enrichment client, continuing with templates only", "error", err)
	} else if aiClient != nil {
		enricher = aiClient
		slog.Info("Enrichment enabled", "model", cfg.GeminiModel)
	}

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	gen := generator.New(rng, enricher, cfg.DescriptionMaxLen, cfg.FallbackDescription)

	p := pipeline.New(gen, store, cfg)
	p.LoadFromDisk()

	sched := scheduler.New(p, cfg.RegenHour, cfg.RegenMinute)
	sched.Start(ctx)

	srv := server.New(p, cfg.PublicDir)
	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGTERM/SIGINT
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		sig := <-sigCh
		slog.Info("Received signal, shutting down gracefully...", "signal", sig)

		sched.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", "error", err)
		}
	}()

	slog.Info("Listening on port", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Failed to listen and serve", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped.")
}
