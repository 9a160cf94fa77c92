package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poettig/twitch-notifier/internal/twitch"
)

//go:generate mockgen -package mocks -destination mocks/commands.go . Registry,ChannelResolver

const (
	unknownStreamerMessage = "Sorry, this streamer does not exist."
	noSubscriptionsMessage = "You do not have any subscriptions."
)

type (
	Registry interface {
		Subscribe(recipientID, channelID int64) (bool, error)
		Unsubscribe(recipientID, channelID int64) (bool, error)
		List(recipientID int64) []int64
	}

	ChannelResolver interface {
		ResolveName(ctx context.Context, name string) (twitch.User, error)
		DisplayName(ctx context.Context, channelID int64) (string, error)
	}

	// Commands turns chat commands into registry operations. Every method
	// returns the reply for the requester or an error that is one of
	// *InputError, *PersistenceError or *UpstreamError.
	Commands struct {
		registry Registry
		resolver ChannelResolver

		log *slog.Logger
	}
)

func NewCommands(registry Registry, resolver ChannelResolver, log *slog.Logger) *Commands {
	return &Commands{
		registry: registry,
		resolver: resolver,

		log: log.With("component", "service").With("service", "commands"),
	}
}

func (c *Commands) SubscribeByName(ctx context.Context, recipientID int64, name string) (string, error) {
	user, err := c.resolve(ctx, name)
	if err != nil {
		return "", err
	}

	changed, err := c.registry.Subscribe(recipientID, user.ID)
	if err != nil {
		return "", fmt.Errorf("subscribe to %s: %w", user.Login, err)
	}
	if !changed {
		return fmt.Sprintf("You are already subscribed to %s.", user.DisplayName), nil
	}

	c.log.InfoContext(ctx, "Subscribed", "recipientID", recipientID, "channelID", user.ID)
	return fmt.Sprintf("Successfully subscribed to updates for %s.", user.DisplayName), nil
}

func (c *Commands) UnsubscribeByName(ctx context.Context, recipientID int64, name string) (string, error) {
	user, err := c.resolve(ctx, name)
	if err != nil {
		return "", err
	}

	changed, err := c.registry.Unsubscribe(recipientID, user.ID)
	if err != nil {
		return "", fmt.Errorf("unsubscribe from %s: %w", user.Login, err)
	}
	if !changed {
		return fmt.Sprintf("You are not subscribed to %s.", user.DisplayName), nil
	}

	c.log.InfoContext(ctx, "Unsubscribed", "recipientID", recipientID, "channelID", user.ID)
	return fmt.Sprintf("Successfully removed subscription for %s.", user.DisplayName), nil
}

func (c *Commands) ListSubscriptions(ctx context.Context, recipientID int64) (string, error) {
	channels := c.registry.List(recipientID)
	if len(channels) == 0 {
		return noSubscriptionsMessage, nil
	}

	names := make([]string, 0, len(channels))
	for _, channelID := range channels {
		name, err := c.resolver.DisplayName(ctx, channelID)
		if err != nil {
			return "", &UpstreamError{Op: "get display name", ChannelID: channelID, Err: err}
		}
		names = append(names, name)
	}

	return fmt.Sprintf("You are subscribed to %s.", joinNames(names)), nil
}

func (c *Commands) resolve(ctx context.Context, name string) (twitch.User, error) {
	user, err := c.resolver.ResolveName(ctx, name)
	if err != nil {
		if errors.Is(err, twitch.ErrNotFound) {
			return twitch.User{}, NewInputError(fmt.Sprintf("streamer %q does not exist", name), unknownStreamerMessage)
		}
		return twitch.User{}, &UpstreamError{Op: fmt.Sprintf("resolve name %q", name), Err: err}
	}
	return user, nil
}

// joinNames renders "A", "A and B", "A, B and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
