package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tb "gopkg.in/telebot.v3"

	"github.com/poettig/twitch-notifier/internal/service"
)

//go:generate mockgen -package mocks -destination mocks/messenger.go . ChatAPI

type (
	ChatAPI interface {
		ChatByID(id int64) (*tb.Chat, error)
		Send(to tb.Recipient, what interface{}, opts ...interface{}) (*tb.Message, error)
	}

	// Messenger delivers notifications to private chats in Markdown.
	// Notifications with a thumbnail are sent as a captioned photo.
	Messenger struct {
		api ChatAPI

		log *slog.Logger
	}
)

func NewMessenger(api ChatAPI, log *slog.Logger) *Messenger {
	return &Messenger{
		api: api,
		log: log.With("component", "messenger"),
	}
}

func (m *Messenger) ResolveRecipient(_ context.Context, recipientID int64) (service.Recipient, error) {
	chat, err := m.api.ChatByID(recipientID)
	if err != nil {
		return service.Recipient{}, fmt.Errorf("get chat %d: %w", recipientID, mapDeliveryError(err))
	}

	handle := chat.Username
	if handle == "" {
		handle = strings.TrimSpace(chat.FirstName + " " + chat.LastName)
	}
	if handle == "" {
		handle = strconv.FormatInt(recipientID, 10)
	}

	return service.Recipient{ID: recipientID, Handle: handle}, nil
}

func (m *Messenger) Send(_ context.Context, to service.Recipient, msg service.Message) error {
	text := msg.Title + "\n\n" + msg.Body

	var what interface{} = text
	if msg.ThumbnailURL != "" {
		what = &tb.Photo{File: tb.FromURL(msg.ThumbnailURL), Caption: text}
	}

	if _, err := m.api.Send(&tb.Chat{ID: to.ID}, what, tb.ModeMarkdown); err != nil {
		return mapDeliveryError(err)
	}
	return nil
}

func mapDeliveryError(err error) error {
	switch {
	case errors.Is(err, tb.ErrBlockedByUser),
		errors.Is(err, tb.ErrUserIsDeactivated):
		return fmt.Errorf("%w: %w", service.ErrRecipientBlocked, err)
	default:
		return err
	}
}
