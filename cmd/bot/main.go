package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Could not load application configuration")
	}

	logFile := logger.Init(cfg)
	defer logFile.Close()
	log := logger.Get()
	// os.Exit skips deferred calls.
	abort := func() {
		logFile.Close()
		os.Exit(1)
	}

	if !config.CheckTokens(cfg, log) {
		abort()
	}

	httpTimeout := time.Duration(cfg.HTTPTimeout) * time.Second

	bot, err := telegram.NewBot(cfg.TelegramToken, httpTimeout, log)
	if err != nil {
		log.WithError(err).Log(logrus.FatalLevel, "Could not create Telegram bot")
		abort()
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, log)

	api := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, httpTimeout)
	interval := scheduler.NewInterval(time.Duration(cfg.RetryPeriod) * time.Second)
	log.Debugf("Poll interval: %s, endpoint: %s", interval.Period(), cfg.Endpoint)

	poller := app.NewPoller(api, notifier, interval, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := poller.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Error("Poller stopped unexpectedly")
	}
	log.Info("Application shut down gracefully.")
}
