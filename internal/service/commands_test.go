package service_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/poettig/twitch-notifier/internal/service"
	"github.com/poettig/twitch-notifier/internal/service/mocks"
	"github.com/poettig/twitch-notifier/internal/twitch"
)

const recipientID = int64(7)

var chan42 = twitch.User{ID: 42, Login: "chan42", DisplayName: "Chan42"}

func resolving(user twitch.User) func(*gomock.Controller) service.ChannelResolver {
	return func(ctrl *gomock.Controller) service.ChannelResolver {
		res := mocks.NewMockChannelResolver(ctrl)
		res.EXPECT().ResolveName(gomock.Any(), user.Login).Return(user, nil)
		return res
	}
}

func isInputError(userMessage string) assert.ErrorAssertionFunc {
	return func(t assert.TestingT, err error, i ...interface{}) bool {
		var inputErr *service.InputError
		return assert.ErrorAs(t, err, &inputErr) && assert.Equal(t, userMessage, inputErr.UserMessage)
	}
}

func isUpstreamError(t assert.TestingT, err error, i ...interface{}) bool {
	var upstreamErr *service.UpstreamError
	var inputErr *service.InputError
	return assert.ErrorAs(t, err, &upstreamErr) && assert.False(t, errors.As(err, &inputErr))
}

type commandFields struct {
	registry func(*gomock.Controller) service.Registry
	resolver func(*gomock.Controller) service.ChannelResolver
}

func (f commandFields) commands(ctrl *gomock.Controller) *service.Commands {
	registry := f.registry
	if registry == nil {
		registry = func(ctrl *gomock.Controller) service.Registry {
			return mocks.NewMockRegistry(ctrl)
		}
	}
	return service.NewCommands(registry(ctrl), f.resolver(ctrl), slog.New(slog.DiscardHandler))
}

func TestCommands_SubscribeByName(t *testing.T) {
	tests := []struct {
		name    string
		fields  commandFields
		channel string
		want    string
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "subscribed",
			fields: commandFields{
				registry: func(ctrl *gomock.Controller) service.Registry {
					res := mocks.NewMockRegistry(ctrl)
					res.EXPECT().Subscribe(recipientID, int64(42)).Return(true, nil)
					return res
				},
				resolver: resolving(chan42),
			},
			channel: "chan42",
			want:    "Successfully subscribed to updates for Chan42.",
			wantErr: assert.NoError,
		},
		{
			name: "already_subscribed",
			fields: commandFields{
				registry: func(ctrl *gomock.Controller) service.Registry {
					res := mocks.NewMockRegistry(ctrl)
					res.EXPECT().Subscribe(recipientID, int64(42)).Return(false, nil)
					return res
				},
				resolver: resolving(chan42),
			},
			channel: "chan42",
			want:    "You are already subscribed to Chan42.",
			wantErr: assert.NoError,
		},
		{
			name: "unknown_streamer",
			fields: commandFields{
				resolver: func(ctrl *gomock.Controller) service.ChannelResolver {
					res := mocks.NewMockChannelResolver(ctrl)
					res.EXPECT().ResolveName(gomock.Any(), "nobody").Return(twitch.User{}, twitch.ErrNotFound)
					return res
				},
			},
			channel: "nobody",
			wantErr: isInputError("Sorry, this streamer does not exist."),
		},
		{
			name: "resolve_failure",
			fields: commandFields{
				resolver: func(ctrl *gomock.Controller) service.ChannelResolver {
					res := mocks.NewMockChannelResolver(ctrl)
					res.EXPECT().ResolveName(gomock.Any(), "chan42").Return(twitch.User{}, assert.AnError)
					return res
				},
			},
			channel: "chan42",
			wantErr: isUpstreamError,
		},
		{
			name: "persistence_failure",
			fields: commandFields{
				registry: func(ctrl *gomock.Controller) service.Registry {
					res := mocks.NewMockRegistry(ctrl)
					res.EXPECT().Subscribe(recipientID, int64(42)).Return(false, &service.PersistenceError{Op: "save", Err: assert.AnError})
					return res
				},
				resolver: resolving(chan42),
			},
			channel: "chan42",
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				var perr *service.PersistenceError
				return assert.ErrorAs(t, err, &perr)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			got, err := tt.fields.commands(ctrl).SubscribeByName(context.Background(), recipientID, tt.channel)
			if !tt.wantErr(t, err) {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommands_UnsubscribeByName(t *testing.T) {
	tests := []struct {
		name    string
		fields  commandFields
		channel string
		want    string
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "removed",
			fields: commandFields{
				registry: func(ctrl *gomock.Controller) service.Registry {
					res := mocks.NewMockRegistry(ctrl)
					res.EXPECT().Unsubscribe(recipientID, int64(42)).Return(true, nil)
					return res
				},
				resolver: resolving(chan42),
			},
			channel: "chan42",
			want:    "Successfully removed subscription for Chan42.",
			wantErr: assert.NoError,
		},
		{
			name: "not_subscribed",
			fields: commandFields{
				registry: func(ctrl *gomock.Controller) service.Registry {
					res := mocks.NewMockRegistry(ctrl)
					res.EXPECT().Unsubscribe(recipientID, int64(42)).Return(false, nil)
					return res
				},
				resolver: resolving(chan42),
			},
			channel: "chan42",
			want:    "You are not subscribed to Chan42.",
			wantErr: assert.NoError,
		},
		{
			name: "unknown_streamer",
			fields: commandFields{
				resolver: func(ctrl *gomock.Controller) service.ChannelResolver {
					res := mocks.NewMockChannelResolver(ctrl)
					res.EXPECT().ResolveName(gomock.Any(), "nobody").Return(twitch.User{}, fmt.Errorf("wrapped: %w", twitch.ErrNotFound))
					return res
				},
			},
			channel: "nobody",
			wantErr: isInputError("Sorry, this streamer does not exist."),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			got, err := tt.fields.commands(ctrl).UnsubscribeByName(context.Background(), recipientID, tt.channel)
			if !tt.wantErr(t, err) {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommands_ListSubscriptions(t *testing.T) {
	listing := func(channels ...int64) func(*gomock.Controller) service.Registry {
		return func(ctrl *gomock.Controller) service.Registry {
			res := mocks.NewMockRegistry(ctrl)
			res.EXPECT().List(recipientID).Return(channels)
			return res
		}
	}
	names := func(names map[int64]string) func(*gomock.Controller) service.ChannelResolver {
		return func(ctrl *gomock.Controller) service.ChannelResolver {
			res := mocks.NewMockChannelResolver(ctrl)
			for id, name := range names {
				res.EXPECT().DisplayName(gomock.Any(), id).Return(name, nil)
			}
			return res
		}
	}

	tests := []struct {
		name    string
		fields  commandFields
		want    string
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "none",
			fields:  commandFields{registry: listing(), resolver: names(nil)},
			want:    "You do not have any subscriptions.",
			wantErr: assert.NoError,
		},
		{
			name:    "one",
			fields:  commandFields{registry: listing(1), resolver: names(map[int64]string{1: "A"})},
			want:    "You are subscribed to A.",
			wantErr: assert.NoError,
		},
		{
			name:    "two",
			fields:  commandFields{registry: listing(1, 2), resolver: names(map[int64]string{1: "A", 2: "B"})},
			want:    "You are subscribed to A and B.",
			wantErr: assert.NoError,
		},
		{
			name:    "three",
			fields:  commandFields{registry: listing(1, 2, 3), resolver: names(map[int64]string{1: "A", 2: "B", 3: "C"})},
			want:    "You are subscribed to A, B and C.",
			wantErr: assert.NoError,
		},
		{
			name: "display_name_failure",
			fields: commandFields{
				registry: listing(1),
				resolver: func(ctrl *gomock.Controller) service.ChannelResolver {
					res := mocks.NewMockChannelResolver(ctrl)
					res.EXPECT().DisplayName(gomock.Any(), int64(1)).Return("", assert.AnError)
					return res
				},
			},
			wantErr: isUpstreamError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			got, err := tt.fields.commands(ctrl).ListSubscriptions(context.Background(), recipientID)
			if !tt.wantErr(t, err) {
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
