package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/clausebeacon/internal/analysis"
	"github.com/dgallion1/clausebeacon/internal/api"
	"github.com/dgallion1/clausebeacon/internal/config"
	"github.com/dgallion1/clausebeacon/internal/gemini"
	"github.com/dgallion1/clausebeacon/internal/session"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize clients.
	model := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTTSModel, cfg.MaxOutputTokens)

	svc := analysis.NewService(model, log, analysis.Options{
		VoiceDefault:         cfg.VoiceDefault,
		VoiceHindi:           cfg.VoiceHindi,
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
	})

	// Session store with periodic TTL eviction.
	sessions := session.NewStore(cfg.SessionTTL)
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				sessions.Cleanup()
			}
		}
	}()

	// Initialize HTTP server.
	srv := api.NewServer(svc, sessions, model, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		model.Close()
	}()

	log.Info("starting clausebeacon", "port", cfg.Port, "model", cfg.GeminiModel)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
