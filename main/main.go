package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adhocore/gronx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sharptimer/timerhook/types/config"
	"github.com/sharptimer/timerhook/types/media"
	"github.com/sharptimer/timerhook/types/webhook"
	webhooks "github.com/sharptimer/timerhook/types/webhook/impl"
	"github.com/sharptimer/timerhook/utils"
)

func main() {
	configPathPtr := flag.String("config", "timerhook.yaml", "Path to config file. By default checks for 'timerhook.yaml' in current directory.")
	flag.Parse()

	config := config.GetDefaultConfig()
	if err := config.ReadConfigIfFound(*configPathPtr); err != nil {
		log.Fatal().Err(err).Msg("failed to setup configuration.")
	}

	logger := config.Logging.CreateLogger()
	logger.Debug().Msg("logger initialized")

	logger.Debug().Str("config", fmt.Sprintf("%v", *config)).Msg("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	if !config.Settings.IsIntervalValid() {
		logger.Fatal().Str("interval", config.Settings.Interval).Msg("invalid cron format")
	}

	store := config.Settings.Store()
	store.Load(ctx)

	if config.Settings.ShouldWatch() {
		go func() {
			if err := store.Watch(ctx); err != nil {
				logger.Err(err).Msg("watching webhook settings failed, relying on scheduled reloads")
			}
		}()
	}
	go reloadOnSchedule(ctx, store, config.Settings.Interval)

	client := utils.NewHttpClient(config.HTTP.Timeout())
	app := Timerhook{
		Webhooks: webhook.NewWebhookHandler(
			store,
			media.NewResolver(client, nil),
			webhooks.NewDiscordWebhook(client),
			config.Steam.ProfileBase(),
		),
	}

	logger.Info().Msg("initialization completed")

	if err := app.Run(ctx, os.Stdin); err != nil {
		logger.Err(err).Msg("reading events failed")
	}
}

func reloadOnSchedule(ctx context.Context, store *config.SettingsStore, interval string) {
	logger := zerolog.Ctx(ctx)

	for {
		nextTime, err := gronx.NextTick(interval, false)
		if err != nil {
			logger.Err(err).Msg("unknown error while calculating next reload time")
			return
		}

		timeRemaining := time.Until(nextTime)
		logger.Debug().Msg(fmt.Sprintf("next settings reload in %s.", utils.HumanizeDuration(timeRemaining)))

		select {
		case <-ctx.Done():
			return
		case <-time.After(timeRemaining):
			store.Load(ctx)
		}
	}
}
