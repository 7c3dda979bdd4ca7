package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/config"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/infra"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/router"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/seed"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/worker"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Memory-only store — every start begins from the mock fixtures.
	st := store.New()
	if err := seed.Load(st); err != nil {
		log.Fatal().Err(err).Msg("failed to seed store")
	}

	// Worker pool for async tasks (alert digest mail). Wired here at the
	// composition root so handlers stay free of infrastructure concerns.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer := infra.NewMailer(cfg)
	dispatcher := worker.NewDispatcher()
	workerHandlers := &worker.WorkerHandlers{
		AlertDigest: worker.NewAlertDigestWorker(mailer, cfg.AlertMailTo),
	}
	worker.StartWorkerPool(ctx, dispatcher, workerHandlers, cfg.WorkerPoolSize)

	r := router.New(cfg, st, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("goods stock backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
