package telegram_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	tb "gopkg.in/telebot.v3"

	"github.com/poettig/twitch-notifier/internal/service"
	"github.com/poettig/twitch-notifier/internal/telegram"
	"github.com/poettig/twitch-notifier/internal/telegram/mocks"
)

func TestMessenger_ResolveRecipient(t *testing.T) {
	tests := []struct {
		name    string
		chat    *tb.Chat
		err     error
		want    service.Recipient
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "username",
			chat:    &tb.Chat{ID: chatID, Username: "alice", FirstName: "Alice"},
			want:    service.Recipient{ID: chatID, Handle: "alice"},
			wantErr: assert.NoError,
		},
		{
			name:    "full_name",
			chat:    &tb.Chat{ID: chatID, FirstName: "Alice", LastName: "Liddell"},
			want:    service.Recipient{ID: chatID, Handle: "Alice Liddell"},
			wantErr: assert.NoError,
		},
		{
			name:    "id_fallback",
			chat:    &tb.Chat{ID: chatID},
			want:    service.Recipient{ID: chatID, Handle: "123"},
			wantErr: assert.NoError,
		},
		{
			name: "blocked",
			err:  tb.ErrBlockedByUser,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, service.ErrRecipientBlocked)
			},
		},
		{
			name: "other_error",
			err:  assert.AnError,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError) && assert.NotErrorIs(t, err, service.ErrRecipientBlocked)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockChatAPI(ctrl)
			api.EXPECT().ChatByID(chatID).Return(tt.chat, tt.err)

			m := telegram.NewMessenger(api, slog.New(slog.DiscardHandler))
			got, err := m.ResolveRecipient(context.Background(), chatID)
			if !tt.wantErr(t, err) {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMessenger_Send(t *testing.T) {
	to := service.Recipient{ID: chatID, Handle: "alice"}
	msg := service.Message{
		Title: "Title update for *Chan42*",
		Body:  "new title",
		Color: service.NotificationColor,
	}

	tests := []struct {
		name      string
		api       func(*gomock.Controller) telegram.ChatAPI
		thumbnail string
		wantErr   assert.ErrorAssertionFunc
	}{
		{
			name: "text",
			api: func(ctrl *gomock.Controller) telegram.ChatAPI {
				res := mocks.NewMockChatAPI(ctrl)
				res.EXPECT().Send(&tb.Chat{ID: chatID}, "Title update for *Chan42*\n\nnew title", tb.ModeMarkdown).Return(&tb.Message{}, nil)
				return res
			},
			wantErr: assert.NoError,
		},
		{
			name: "text_blocked",
			api: func(ctrl *gomock.Controller) telegram.ChatAPI {
				res := mocks.NewMockChatAPI(ctrl)
				res.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tb.ErrBlockedByUser)
				return res
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, service.ErrRecipientBlocked) && assert.ErrorIs(t, err, tb.ErrBlockedByUser)
			},
		},
		{
			name: "photo",
			api: func(ctrl *gomock.Controller) telegram.ChatAPI {
				res := mocks.NewMockChatAPI(ctrl)
				res.EXPECT().Send(&tb.Chat{ID: chatID}, &tb.Photo{
					File:    tb.FromURL("https://example.com/title.png"),
					Caption: "Title update for *Chan42*\n\nnew title",
				}, tb.ModeMarkdown).Return(&tb.Message{}, nil)
				return res
			},
			thumbnail: "https://example.com/title.png",
			wantErr:   assert.NoError,
		},
		{
			name: "photo_deactivated",
			api: func(ctrl *gomock.Controller) telegram.ChatAPI {
				res := mocks.NewMockChatAPI(ctrl)
				res.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tb.ErrUserIsDeactivated)
				return res
			},
			thumbnail: "https://example.com/title.png",
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, service.ErrRecipientBlocked)
			},
		},
		{
			name: "photo_error",
			api: func(ctrl *gomock.Controller) telegram.ChatAPI {
				res := mocks.NewMockChatAPI(ctrl)
				res.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
				return res
			},
			thumbnail: "https://example.com/title.png",
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, assert.AnError) && assert.NotErrorIs(t, err, service.ErrRecipientBlocked)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := telegram.NewMessenger(tt.api(ctrl), slog.New(slog.DiscardHandler))

			withThumbnail := msg
			withThumbnail.ThumbnailURL = tt.thumbnail
			tt.wantErr(t, m.Send(context.Background(), to, withThumbnail))
		})
	}
}
