package telegram_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	tb "gopkg.in/telebot.v3"

	"github.com/poettig/twitch-notifier/internal/service"
	"github.com/poettig/twitch-notifier/internal/telegram"
	"github.com/poettig/twitch-notifier/internal/telegram/mocks"
)

const chatID = int64(123)

// tbContext implements the parts of tb.Context the handlers use.
type tbContext struct {
	tb.Context

	sender *tb.User
	chat   *tb.Chat
	text   string

	sent    []interface{}
	sendErr error
}

func (c *tbContext) Sender() *tb.User { return c.sender }

func (c *tbContext) Chat() *tb.Chat { return c.chat }

func (c *tbContext) Text() string { return c.text }

func (c *tbContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, what)
	return c.sendErr
}

func privateMessage(text string) *tbContext {
	return &tbContext{
		sender: &tb.User{ID: chatID},
		chat:   &tb.Chat{ID: chatID, Type: tb.ChatPrivate},
		text:   text,
	}
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		commands func(*gomock.Controller) telegram.CommandService
		text     string
		want     telegram.Reply
	}{
		{
			name: "subscribe",
			commands: func(ctrl *gomock.Controller) telegram.CommandService {
				res := mocks.NewMockCommandService(ctrl)
				res.EXPECT().SubscribeByName(gomock.Any(), chatID, "chan42").Return("Successfully subscribed to updates for Chan42.", nil)
				return res
			},
			text: "!subscribe chan42",
			want: telegram.Reply{Text: "Successfully subscribed to updates for Chan42."},
		},
		{
			name: "unsubscribe",
			commands: func(ctrl *gomock.Controller) telegram.CommandService {
				res := mocks.NewMockCommandService(ctrl)
				res.EXPECT().UnsubscribeByName(gomock.Any(), chatID, "chan42").Return("You are not subscribed to Chan42.", nil)
				return res
			},
			text: "!unsubscribe chan42",
			want: telegram.Reply{Text: "You are not subscribed to Chan42."},
		},
		{
			name: "subscriptions",
			commands: func(ctrl *gomock.Controller) telegram.CommandService {
				res := mocks.NewMockCommandService(ctrl)
				res.EXPECT().ListSubscriptions(gomock.Any(), chatID).Return("You do not have any subscriptions.", nil)
				return res
			},
			text: "!subscriptions",
			want: telegram.Reply{Text: "You do not have any subscriptions."},
		},
		{
			name: "input_error",
			commands: func(ctrl *gomock.Controller) telegram.CommandService {
				res := mocks.NewMockCommandService(ctrl)
				res.EXPECT().SubscribeByName(gomock.Any(), chatID, "nobody").
					Return("", service.NewInputError(`streamer "nobody" does not exist`, "Sorry, this streamer does not exist."))
				return res
			},
			text: "!subscribe nobody",
			want: telegram.Reply{Text: "Sorry, this streamer does not exist."},
		},
		{
			name: "unexpected_error",
			commands: func(ctrl *gomock.Controller) telegram.CommandService {
				res := mocks.NewMockCommandService(ctrl)
				res.EXPECT().ListSubscriptions(gomock.Any(), chatID).
					Return("", &service.PersistenceError{Op: "save", Err: assert.AnError})
				return res
			},
			text: "!subscriptions",
			want: telegram.Reply{Text: service.GenericErrorMessage},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			h := telegram.NewHandler(tt.commands(ctrl), slog.New(slog.DiscardHandler))

			assert.Equal(t, tt.want, h.Handle(context.Background(), chatID, tt.text))
		})
	}
}

func TestHandler_Handle_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := telegram.NewHandler(mocks.NewMockCommandService(ctrl), slog.New(slog.DiscardHandler))

	for _, text := range []string{"hello", "!subscribe", "!help", "!Subscriptions"} {
		got := h.Handle(context.Background(), chatID, text)
		assert.True(t, got.Help, text)
		assert.True(t, strings.Contains(got.Text, "!subscribe <twitch_channel_name>"), text)
		assert.True(t, strings.Contains(got.Text, "!subscriptions"), text)
	}
}

func TestHandler_OnText(t *testing.T) {
	ctrl := gomock.NewController(t)
	commands := mocks.NewMockCommandService(ctrl)
	commands.EXPECT().ListSubscriptions(gomock.Any(), chatID).Return("You are subscribed to A.", nil)
	h := telegram.NewHandler(commands, slog.New(slog.DiscardHandler))

	c := privateMessage("!subscriptions")
	require.NoError(t, h.OnText(c))
	assert.Equal(t, []interface{}{"You are subscribed to A."}, c.sent)

	c = privateMessage("hi")
	c.sendErr = assert.AnError
	assert.ErrorIs(t, h.OnText(c), assert.AnError)
}
