package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"review-insights-go/internal/api"
	"review-insights-go/internal/config"
	"review-insights-go/internal/dataset"
	"review-insights-go/internal/language"
	"review-insights-go/internal/logger"
	"review-insights-go/internal/processor"
)

func main() {
	cfg, err := config.Load() // also loads .env
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithOptions(logger.Options{Environment: cfg.Environment, Level: cfg.LogLevel})
	log.WithField("service", "review-insights-go").Info("starting service")

	var fetcher dataset.Fetcher
	if cfg.Source.ServerAddr != "" {
		log.WithField("server_addr", cfg.Source.ServerAddr).Info("fetching documents over http")
		fetcher = dataset.NewHTTPFetcher(cfg.Source.ServerAddr, cfg.Source.FetchTimeout, cfg.Source.FetchMaxElapse, log.Entry)
	} else {
		log.WithField("data_dir", cfg.Source.DataDir).Info("reading documents from disk")
		fetcher = dataset.NewFileFetcher(cfg.Source.DataDir)
	}

	builder := processor.New(nil, language.NewXTextNamer(), log.Entry)
	handler := api.NewHandler(fetcher, builder, log, cfg.Source.FetchMaxElapse+cfg.Source.FetchTimeout)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}
