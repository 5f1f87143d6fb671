package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"lineupbot/internal/api/fantasypros"
	"lineupbot/internal/api/sleeper"
	"lineupbot/internal/bot"
	"lineupbot/internal/config"
	"lineupbot/internal/repository/memory"
	"lineupbot/internal/scheduler"
	"lineupbot/internal/service"
	"lineupbot/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Error running application", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Error("Error loading .env file", "error", err)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	st := store.NewJSONStore(cfg.Sleeper.DataDir)
	sleeperClient := sleeper.NewClient()
	sleeperAPI := sleeper.NewAPI(sleeperClient, sleeper.NewCatalogCache(st))
	scraper := fantasypros.NewScraper()

	repo := memory.NewRepository()
	advice := service.NewAdviceService(sleeperAPI, scraper, repo, st, cfg.Sleeper.Username, cfg.Sleeper.LeagueName)

	telegramBot, err := bot.NewTelegramBot(cfg.TelegramBot.Token, cfg.TelegramBot.ChatID, advice)
	if err != nil {
		return err
	}

	sched, err := scheduler.NewScheduler(advice, telegramBot.SendMessage)
	if err != nil {
		return err
	}

	if err := sched.Start(); err != nil {
		return err
	}
	defer func() {
		err := sched.Stop()
		if err != nil {
			slog.Error("Error stopping scheduler", "error", err)
		}
	}()

	http.HandleFunc("/", healthCheckHandler)

	go func() {
		if err := http.ListenAndServe(":80", nil); err != nil {
			slog.Error("Error starting HTTP server", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := telegramBot.Start(ctx); err != nil {
			slog.Error("Error running telegram bot", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	return nil
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
