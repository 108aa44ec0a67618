package main

import (
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	itelegram "homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		logrus.Fatalf("FATAL: Could not initialize logger: %v", err)
	}

	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Poll interval: %s",
		cfg.LogLevel, cfg.Environment, cfg.PollInterval)

	// The bot only sends messages, so no poller and no handler registration.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	log.Info("Telegram bot created.")

	notifier := itelegram.NewTelebotAdapter(bot)
	practicumClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.HTTPTimeout)

	poller := app.NewStatusPoller(
		practicumClient,
		notifier,
		cfg.TelegramChatID,
		log.WithField("component", "poller"),
	)

	pollScheduler := scheduler.NewPollScheduler(
		poller,
		cfg.PollInterval,
		log.WithField("component", "scheduler"),
	)
	if err := pollScheduler.Start(); err != nil {
		log.Fatalf("FATAL: Could not start poll scheduler: %v", err)
	}

	log.Info("Application setup complete. Polling for homework status updates...")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	pollScheduler.Stop()
	log.Info("Application shut down gracefully.")
}
