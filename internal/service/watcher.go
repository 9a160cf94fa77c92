package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/poettig/twitch-notifier/internal/nightbot"
)

//go:generate mockgen -package mocks -destination mocks/watcher.go . StreamReader,CommandReader,ChannelSource,Dispatcher

const TitleUpdatePrefix = "Title update"

type (
	StreamReader interface {
		Title(ctx context.Context, channelID int64) (string, error)
		IsLive(ctx context.Context, channelID int64) (bool, error)
		LoginName(ctx context.Context, channelID int64) (string, error)
	}

	CommandReader interface {
		Commands(ctx context.Context, login string) ([]nightbot.Command, error)
	}

	ChannelSource interface {
		Channels() []int64
	}

	Dispatcher interface {
		Notify(ctx context.Context, n Notification) DeliveryReport
	}

	Clock interface {
		Now() time.Time
	}

	// Notification is one qualifying change of a watched channel.
	Notification struct {
		ChannelID    int64
		TitlePrefix  string
		Body         string
		ThumbnailURL string
	}

	// CycleStats describes a completed cycle.
	CycleStats struct {
		StartedAt     time.Time
		Took          time.Duration
		Channels      int
		Notifications int
	}

	WatcherConfig struct {
		Interval            time.Duration
		PollTimeout         time.Duration
		CommandName         string
		TitleThumbnailURL   string
		CommandThumbnailURL string
	}

	// Watcher polls every followed channel once per cycle and notifies
	// subscribers about title and bot command changes. Baselines live in
	// memory only, the first sighting of a channel never notifies.
	Watcher struct {
		channels   ChannelSource
		streams    StreamReader
		commands   CommandReader
		dispatcher Dispatcher
		clock      Clock
		conf       WatcherConfig

		titles       map[int64]string
		commandTexts map[int64]string
		lastCycle    atomic.Pointer[CycleStats]

		log *slog.Logger
		mx  *sync.Mutex
	}
)

func NewWatcher(
	channels ChannelSource,
	streams StreamReader,
	commands CommandReader,
	dispatcher Dispatcher,
	clock Clock,
	conf WatcherConfig,
	log *slog.Logger,
) *Watcher {
	return &Watcher{
		channels:   channels,
		streams:    streams,
		commands:   commands,
		dispatcher: dispatcher,
		clock:      clock,
		conf:       conf,

		titles:       make(map[int64]string),
		commandTexts: make(map[int64]string),

		log: log.With("component", "service").With("service", "watcher"),
		mx:  &sync.Mutex{},
	}
}

// Run executes a cycle right away and then once per interval until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	defer func() {
		if last, ok := w.LastCycle(); ok {
			w.log.InfoContext(ctx, "Stopped watcher", "lastCycleAt", last.StartedAt)
			return
		}
		w.log.InfoContext(ctx, "Stopped watcher")
	}()

	w.log.InfoContext(ctx, "Starting watcher", "interval", w.conf.Interval)
	for {
		if err := w.RunCycle(ctx); err != nil && !errors.Is(err, context.Canceled) {
			w.log.ErrorContext(ctx, "Error running watcher cycle", "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.conf.Interval):
		}
	}
}

// RunCycle polls all followed channels, delivers the resulting notifications
// and then replaces the remembered baselines. Cycles never overlap. A canceled
// cycle keeps the previous baselines.
func (w *Watcher) RunCycle(ctx context.Context) error {
	w.mx.Lock()
	defer w.mx.Unlock()

	startedAt := w.clock.Now()
	channels := w.channels.Channels()
	w.log.DebugContext(ctx, "Starting cycle", "channels", len(channels))

	titles := make(map[int64]string, len(channels))
	commandTexts := make(map[int64]string, len(channels))
	var queue []Notification

	for _, channelID := range channels {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck // context error
		}
		if n, ok := w.checkTitle(ctx, channelID, titles); ok {
			queue = append(queue, n)
		}
	}

	for _, channelID := range channels {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck // context error
		}
		if n, ok := w.checkCommand(ctx, channelID, commandTexts); ok {
			queue = append(queue, n)
		}
	}

	for _, n := range queue {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck // context error
		}
		w.dispatcher.Notify(ctx, n)
	}

	w.titles = titles
	w.commandTexts = commandTexts

	stats := CycleStats{
		StartedAt:     startedAt,
		Took:          w.clock.Now().Sub(startedAt),
		Channels:      len(channels),
		Notifications: len(queue),
	}
	w.lastCycle.Store(&stats)

	w.log.InfoContext(ctx, "Finished cycle",
		"channels", stats.Channels,
		"notifications", stats.Notifications,
		"took", stats.Took,
	)
	return nil
}

// LastCycle returns the stats of the last completed cycle, false before the
// first one finished.
func (w *Watcher) LastCycle() (CycleStats, bool) {
	last := w.lastCycle.Load()
	if last == nil {
		return CycleStats{}, false
	}
	return *last, true
}

// checkTitle stores the baseline to carry into the next cycle in next and
// returns a notification when the title changed while the channel is offline.
func (w *Watcher) checkTitle(ctx context.Context, channelID int64, next map[int64]string) (Notification, bool) {
	log := w.log.With("channelID", channelID)
	old, hasBaseline := w.titles[channelID]
	if hasBaseline {
		next[channelID] = old
	}

	title, ok := w.pollTitle(ctx, log, channelID)
	if !ok {
		return Notification{}, false
	}
	if !hasBaseline {
		log.DebugContext(ctx, "Recorded title baseline")
		next[channelID] = title
		return Notification{}, false
	}
	if title == old {
		return Notification{}, false
	}

	live, ok := w.pollLive(ctx, log, channelID)
	if !ok {
		// baseline stays, the change is evaluated again next cycle
		return Notification{}, false
	}
	next[channelID] = title
	if live {
		log.InfoContext(ctx, "Title changed while live, notification suppressed")
		return Notification{}, false
	}

	log.InfoContext(ctx, "Title changed")
	return Notification{
		ChannelID:    channelID,
		TitlePrefix:  TitleUpdatePrefix,
		Body:         title,
		ThumbnailURL: w.conf.TitleThumbnailURL,
	}, true
}

func (w *Watcher) checkCommand(ctx context.Context, channelID int64, next map[int64]string) (Notification, bool) {
	log := w.log.With("channelID", channelID)
	old, hasBaseline := w.commandTexts[channelID]
	if hasBaseline {
		next[channelID] = old
	}

	text, ok := w.pollCommand(ctx, log, channelID)
	if !ok {
		return Notification{}, false
	}
	next[channelID] = text
	if !hasBaseline {
		log.DebugContext(ctx, "Recorded command baseline", "command", w.conf.CommandName)
		return Notification{}, false
	}
	if text == old {
		return Notification{}, false
	}

	log.InfoContext(ctx, "Command changed", "command", w.conf.CommandName)
	return Notification{
		ChannelID:    channelID,
		TitlePrefix:  fmt.Sprintf("Nightbot command %s changed", w.conf.CommandName),
		Body:         text,
		ThumbnailURL: w.conf.CommandThumbnailURL,
	}, true
}

func (w *Watcher) pollTitle(ctx context.Context, log *slog.Logger, channelID int64) (string, bool) {
	pollCtx, cancel := w.pollContext(ctx)
	defer cancel()

	title, err := w.streams.Title(pollCtx, channelID)
	if err != nil {
		w.logUpstream(ctx, log, &UpstreamError{Op: "get title", ChannelID: channelID, Err: err})
		return "", false
	}
	return title, true
}

func (w *Watcher) pollLive(ctx context.Context, log *slog.Logger, channelID int64) (bool, bool) {
	pollCtx, cancel := w.pollContext(ctx)
	defer cancel()

	live, err := w.streams.IsLive(pollCtx, channelID)
	if err != nil {
		w.logUpstream(ctx, log, &UpstreamError{Op: "get live status", ChannelID: channelID, Err: err})
		return false, false
	}
	return live, true
}

func (w *Watcher) pollCommand(ctx context.Context, log *slog.Logger, channelID int64) (string, bool) {
	pollCtx, cancel := w.pollContext(ctx)
	defer cancel()

	login, err := w.streams.LoginName(pollCtx, channelID)
	if err != nil {
		w.logUpstream(ctx, log, &UpstreamError{Op: "get login name", ChannelID: channelID, Err: err})
		return "", false
	}

	commands, err := w.commands.Commands(pollCtx, login)
	if err != nil {
		if errors.Is(err, nightbot.ErrNotFound) {
			log.DebugContext(ctx, "Channel does not use nightbot", "login", login)
			return "", false
		}
		w.logUpstream(ctx, log, &UpstreamError{Op: "get commands", ChannelID: channelID, Err: err})
		return "", false
	}

	for _, cmd := range commands {
		if cmd.Name != w.conf.CommandName {
			continue
		}
		if cmd.Message == nil {
			w.logUpstream(ctx, log, &UpstreamError{
				Op:        "get commands",
				ChannelID: channelID,
				Err:       fmt.Errorf("command %s has no message", cmd.Name),
			})
			return "", false
		}
		return *cmd.Message, true
	}

	log.DebugContext(ctx, "Command not defined", "command", w.conf.CommandName)
	return "", false
}

func (w *Watcher) pollContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.conf.PollTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, w.conf.PollTimeout)
}

func (w *Watcher) logUpstream(ctx context.Context, log *slog.Logger, err *UpstreamError) {
	if ctx.Err() != nil {
		return
	}
	log.WarnContext(ctx, "Upstream poll failed, skipping channel", "error", err)
}
