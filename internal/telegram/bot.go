package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	tb "gopkg.in/telebot.v3"
)

type Bot struct {
	bot *tb.Bot

	handler *Handler

	log *slog.Logger
}

const longPollTimeout = 5 * time.Second

// NewBot creates the bot. callTimeout bounds every API call on top of the long
// poll wait.
func NewBot(token string, handler *Handler, callTimeout time.Duration, log *slog.Logger) (*Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: longPollTimeout},
		Client: &http.Client{Timeout: longPollTimeout + callTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Bot{
		bot: bot,

		handler: handler,

		log: log.With("component", "bot"),
	}, nil
}

// API exposes the underlying client for notification delivery.
func (b *Bot) API() ChatAPI {
	return b.bot
}

// Start blocks until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	b.bot.Use(PrivateOnly(b.log))
	b.bot.Handle(tb.OnText, b.handler.OnText)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}
