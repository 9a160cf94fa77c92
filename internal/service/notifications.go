package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

//go:generate mockgen -package mocks -destination mocks/notifications.go . SubscriberLookup,ChannelNames,Messenger

const (
	// NotificationColor is the accent color of every notification.
	NotificationColor = 0xE67E22

	unknownDisplayName = "<failed to get display name>"
)

type (
	SubscriberLookup interface {
		Subscribers(channelID int64) []int64
	}

	ChannelNames interface {
		DisplayName(ctx context.Context, channelID int64) (string, error)
	}

	Messenger interface {
		ResolveRecipient(ctx context.Context, recipientID int64) (Recipient, error)
		Send(ctx context.Context, to Recipient, msg Message) error
	}

	Recipient struct {
		ID     int64
		Handle string
	}

	// Message is a rendered notification. Title and Body are already escaped.
	Message struct {
		Title        string
		Body         string
		Color        int
		ThumbnailURL string
	}

	DeliveryReport struct {
		Delivered int
		Failed    int
	}

	Notifications struct {
		subscribers SubscriberLookup
		names       ChannelNames
		messenger   Messenger
		limiter     *rate.Limiter
		timeout     time.Duration

		log *slog.Logger
	}
)

// NewNotifications creates the notifier. A nil limiter disables pacing. The
// display name lookup and each delivery are bounded by timeout, zero means
// no bound.
func NewNotifications(
	subscribers SubscriberLookup,
	names ChannelNames,
	messenger Messenger,
	limiter *rate.Limiter,
	timeout time.Duration,
	log *slog.Logger,
) *Notifications {
	return &Notifications{
		subscribers: subscribers,
		names:       names,
		messenger:   messenger,
		limiter:     limiter,
		timeout:     timeout,

		log: log.With("component", "service").With("service", "notifications"),
	}
}

// Notify sends n to every recipient following the channel at the time of the
// call. A failed delivery is logged and does not stop the others.
func (s *Notifications) Notify(ctx context.Context, n Notification) DeliveryReport {
	log := s.log.With("channelID", n.ChannelID)

	var report DeliveryReport
	recipients := s.subscribers.Subscribers(n.ChannelID)
	if len(recipients) == 0 {
		log.DebugContext(ctx, "No subscribers to notify")
		return report
	}

	msg := s.render(ctx, log, n)
	for _, recipientID := range recipients {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				log.WarnContext(ctx, "Stopped delivery", "error", err)
				break
			}
		}

		if err := s.deliver(ctx, recipientID, msg); err != nil {
			report.Failed++
			if errors.Is(err, ErrRecipientBlocked) {
				log.InfoContext(ctx, "Recipient blocked the bot, skipping", "recipientID", recipientID, "error", err)
				continue
			}
			log.ErrorContext(ctx, "Failed to deliver notification", "recipientID", recipientID, "error", err)
			continue
		}
		report.Delivered++
	}

	log.InfoContext(ctx, "Delivered notification",
		"prefix", n.TitlePrefix,
		"delivered", report.Delivered,
		"failed", report.Failed,
	)
	return report
}

func (s *Notifications) render(ctx context.Context, log *slog.Logger, n Notification) Message {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	name, err := s.names.DisplayName(callCtx, n.ChannelID)
	if err != nil {
		log.WarnContext(ctx, "Failed to get display name", "error", &UpstreamError{Op: "get display name", ChannelID: n.ChannelID, Err: err})
		name = unknownDisplayName
	}

	return Message{
		Title:        fmt.Sprintf("%s for *%s*", n.TitlePrefix, EscapeMarkdown(name)),
		Body:         EscapeMarkdown(n.Body),
		Color:        NotificationColor,
		ThumbnailURL: n.ThumbnailURL,
	}
}

func (s *Notifications) deliver(ctx context.Context, recipientID int64, msg Message) error {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	to, err := s.messenger.ResolveRecipient(callCtx, recipientID)
	if err != nil {
		return fmt.Errorf("resolve recipient: %w", err)
	}
	if err := s.messenger.Send(callCtx, to, msg); err != nil {
		return fmt.Errorf("send message to %s: %w", to.Handle, err)
	}

	s.log.DebugContext(ctx, "Sent notification", "recipientID", recipientID, "handle", to.Handle)
	return nil
}

func (s *Notifications) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
