package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ace2884/OR/internal/config"
	"github.com/ace2884/OR/internal/geocache"
	httpapi "github.com/ace2884/OR/internal/http"
	"github.com/ace2884/OR/internal/render"
	"github.com/ace2884/OR/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := log.Level(level).With().Str("service", "dispatch-backend").Logger()

	cache := geocache.Load(cfg.GeocacheCandidates())
	if cache.Len() == 0 {
		logger.Warn().Strs("candidates", cfg.GeocacheCandidates()).
			Msg("no geocache loaded; routing will drop every location")
	} else {
		logger.Info().Int("entries", cache.Len()).Msg("geocache loaded")
	}

	employees := store.NewEmployeeStore(cfg.EmployeesPath())
	tickets := store.NewTicketStore(cfg.TicketsPath())

	router := httpapi.Router(cfg, employees, tickets, cache, render.LeafletRenderer{}, logger)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	logger.Info().Msg("server stopped")
}
