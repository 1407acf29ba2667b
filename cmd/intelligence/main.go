package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ironsupr/Guideflow/internal/config"
	"github.com/ironsupr/Guideflow/internal/logger"
	"github.com/ironsupr/Guideflow/internal/pipeline"
	"github.com/ironsupr/Guideflow/internal/refiner"
	httpserver "github.com/ironsupr/Guideflow/internal/server/http"
	"github.com/ironsupr/Guideflow/internal/synthesizer"
)

func main() {
	ctx := context.Background()

	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// .env is optional; environment variables win over the yaml file either way
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logOpts := []logger.Option{logger.WithFormat(cfg.Logging.Format)}
	if cfg.Logging.File != "" {
		logOpts = append(logOpts, logger.WithLogFile(cfg.Logging.File))
	}
	log := logger.New(cfg.Logging.Level, logOpts...)

	log.Info(ctx, "========================================")
	log.Info(ctx, "Guideflow Intelligence Service")
	log.Info(ctx, "========================================")
	log.Info(ctx, "Configuration loaded successfully")

	if err := os.MkdirAll(cfg.Paths.Output, 0o755); err != nil {
		log.Error(ctx, "Failed to create output directory: %v", err)
		os.Exit(1)
	}

	// Select providers once at startup; missing keys fall back to the
	// deterministic mock behavior.
	var gen refiner.Generator
	if cfg.Gemini.APIKey != "" {
		gen, err = refiner.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			log.Warn(ctx, "Gemini client init failed, using fallback refinement: %v", err)
			gen = refiner.NewNoop()
		}
	} else {
		log.Warn(ctx, "GEMINI_API_KEY not set, using fallback refinement")
		gen = refiner.NewNoop()
	}

	var speech synthesizer.SpeechClient
	if cfg.ElevenLabs.APIKey != "" {
		speech = synthesizer.NewElevenLabsClient(cfg.ElevenLabs)
	} else {
		log.Warn(ctx, "ELEVENLABS_API_KEY not set, using placeholder audio")
		speech = synthesizer.NewNoopClient()
	}

	// Initialize dependencies
	ref := refiner.New(gen, log)
	synth := synthesizer.New(cfg, speech, log)
	pipe := pipeline.New(ref, synth, log)
	server := httpserver.New(cfg.Paths.Output, pipe, ref, synth, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: server.Handler(),
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Listening on %s", addr)
	log.Info(ctx, "Output directory: %s", cfg.Paths.Output)
	log.Info(ctx, "Gemini: %s", providerState(ref.Configured()))
	log.Info(ctx, "ElevenLabs: %s", providerState(synth.Configured()))
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or server error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Shutdown error: %v", err)
	}

	log.Info(ctx, "Guideflow Intelligence stopped")
}

// loadConfig reads the yaml config, falling back to env-only defaults when
// the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config.Default()
		}
		return nil, err
	}
	return cfg, nil
}

func providerState(configured bool) string {
	if configured {
		return "configured"
	}
	return "not configured (mock mode)"
}
