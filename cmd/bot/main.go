package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/time/rate"

	"github.com/poettig/twitch-notifier/internal/config"
	"github.com/poettig/twitch-notifier/internal/dal"
	"github.com/poettig/twitch-notifier/internal/nightbot"
	"github.com/poettig/twitch-notifier/internal/service"
	"github.com/poettig/twitch-notifier/internal/telegram"
	"github.com/poettig/twitch-notifier/internal/twitch"
	"github.com/poettig/twitch-notifier/pkg/clock"
)

type subscriptionsStore interface {
	service.SubscriptionsStore
	Close() error
}

func main() {
	verbose := pflag.BoolP("verbose", "v", false, "log at info level")
	debug := pflag.BoolP("debug", "d", false, "log at debug level")
	pflag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.New(ctx)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev, logLevel(*verbose, *debug))

	if err := run(ctx, conf, log); err != nil {
		log.Error("Bot stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, conf *config.Config, log *slog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	db, err := openStore(conf, log)
	if err != nil {
		return err
	}
	defer db.Close()

	subscriptions, err := service.LoadSubscriptions(db, log)
	if err != nil {
		return err //nolint:wrapcheck // already descriptive
	}

	twitchHTTP := twitch.NewHTTPClient(ctx, conf.TwitchClientID, conf.TwitchClientSecret, conf.TwitchTokenURL)
	twitchHTTP.Timeout = conf.PollTimeout
	twitchClient := twitch.NewClient(
		twitchHTTP,
		conf.TwitchClientID,
		twitch.WithBaseURL(conf.TwitchAPIURL),
		twitch.WithRateLimit(conf.TwitchRate),
	)
	nightbotClient := nightbot.NewClient(
		&http.Client{Timeout: conf.PollTimeout},
		nightbot.WithBaseURL(conf.NightbotAPIURL),
		nightbot.WithRateLimit(conf.TwitchRate),
	)

	commands := service.NewCommands(subscriptions, twitchClient, log)
	bot, err := telegram.NewBot(conf.TelegramToken, telegram.NewHandler(commands, log), conf.PollTimeout, log)
	if err != nil {
		return err //nolint:wrapcheck // already descriptive
	}

	messenger := telegram.NewMessenger(bot.API(), log)
	notifications := service.NewNotifications(
		subscriptions,
		twitchClient,
		messenger,
		rate.NewLimiter(rate.Limit(conf.DeliveryRate), conf.DeliveryRate),
		conf.PollTimeout,
		log,
	)
	watcher := service.NewWatcher(
		subscriptions,
		twitchClient,
		nightbotClient,
		notifications,
		clock.New(),
		service.WatcherConfig{
			Interval:            conf.ScanIntervalDuration(),
			PollTimeout:         conf.PollTimeout,
			CommandName:         conf.WatchedCommand,
			TitleThumbnailURL:   conf.TitleThumbnailURL,
			CommandThumbnailURL: conf.CommandThumbnailURL,
		},
		log,
	)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		watcher.Run(ctx)
	}()

	log.Info("Starting bot", "subscribers", subscriptions.SubscriberCount())
	err = bot.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		// stop the watcher as well
		cancel()
	}

	wg.Wait()
	log.Info("Stopped bot")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err //nolint:wrapcheck // already descriptive
}

func openStore(conf *config.Config, log *slog.Logger) (subscriptionsStore, error) {
	switch conf.StoreDriver {
	case config.StoreDriverBolt:
		db, err := dal.NewBoltDB(conf.SubscriptionsFile, log)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		return db, nil
	default:
		return dal.NewFileStore(conf.SubscriptionsFile), nil
	}
}

func logLevel(verbose, debug bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

func mustLogger(dev bool, level slog.Level) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}

	return slog.New(handler)
}
