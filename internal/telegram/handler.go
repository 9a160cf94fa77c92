package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/poettig/twitch-notifier/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/commands.go . CommandService

const helpMessage = "You provided an invalid command. Get some help.\n\n" +
	"!subscribe <twitch_channel_name>\nSubscribe to notifications for a new streamer.\n\n" +
	"!unsubscribe <twitch_channel_name>\nUnsubscribe from notifications for a streamer.\n\n" +
	"!subscriptions\nShow all your active subscriptions."

const defaultHandleTimeout = 30 * time.Second

type CommandService interface {
	SubscribeByName(ctx context.Context, recipientID int64, name string) (string, error)
	UnsubscribeByName(ctx context.Context, recipientID int64, name string) (string, error)
	ListSubscriptions(ctx context.Context, recipientID int64) (string, error)
}

// Reply is the single answer to a received message.
type Reply struct {
	Text string
	Help bool
}

type Handler struct {
	commands CommandService
	timeout  time.Duration

	log *slog.Logger
}

func NewHandler(commands CommandService, log *slog.Logger) *Handler {
	return &Handler{
		commands: commands,
		timeout:  defaultHandleTimeout,
		log:      log.With("component", "handler"),
	}
}

// Handle resolves text to exactly one of a success reply, the user message of
// an *service.InputError, the generic apology or the help text.
func (h *Handler) Handle(ctx context.Context, recipientID int64, text string) Reply {
	log := h.log.With("recipientID", recipientID)

	var (
		name  string
		reply string
		err   error
	)
	switch cmd := ParseCommand(text).(type) {
	case SubscribeCommand:
		name = "subscribe"
		reply, err = h.commands.SubscribeByName(ctx, recipientID, cmd.Name)
	case UnsubscribeCommand:
		name = "unsubscribe"
		reply, err = h.commands.UnsubscribeByName(ctx, recipientID, cmd.Name)
	case ListSubscriptionsCommand:
		name = "subscriptions"
		reply, err = h.commands.ListSubscriptions(ctx, recipientID)
	default:
		log.InfoContext(ctx, "Sent help")
		return Reply{Text: helpMessage, Help: true}
	}

	if err != nil {
		var inputErr *service.InputError
		if errors.As(err, &inputErr) {
			log.WarnContext(ctx, "Command rejected", "command", name, "error", inputErr.LogMessage)
			return Reply{Text: inputErr.UserMessage}
		}

		log.ErrorContext(ctx, "Command failed", "command", name, "error", err)
		return Reply{Text: service.GenericErrorMessage}
	}

	log.InfoContext(ctx, "Sent command result", "command", name)
	return Reply{Text: reply}
}

// OnText answers a private text message.
func (h *Handler) OnText(c tb.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	reply := h.Handle(ctx, c.Sender().ID, c.Text())
	if err := c.Send(reply.Text); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}
	return nil
}
