package service

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/poettig/twitch-notifier/internal/dal"
)

//go:generate mockgen -package mocks -destination mocks/subscriptions.go . SubscriptionsStore

type SubscriptionsStore interface {
	Load() ([]dal.Subscriber, error)
	Save(subs []dal.Subscriber) error
}

type followSet map[int64]struct{}

func newFollowSet(channels []int64) followSet {
	res := make(followSet, len(channels))
	for _, id := range channels {
		res[id] = struct{}{}
	}
	return res
}

func (f followSet) has(channelID int64) bool {
	_, ok := f[channelID]
	return ok
}

func (f followSet) sorted() []int64 {
	res := make([]int64, 0, len(f))
	for id := range f {
		res = append(res, id)
	}
	slices.Sort(res)
	return res
}

// Subscriptions owns the recipient -> followed channels relation. Every
// mutation is written to the store as a whole while the write lock is held.
// Subscribers are never removed, an empty follow set is kept as is.
type Subscriptions struct {
	store       SubscriptionsStore
	subscribers map[int64]followSet

	log *slog.Logger
	mx  *sync.RWMutex
}

func LoadSubscriptions(store SubscriptionsStore, log *slog.Logger) (*Subscriptions, error) {
	subs, err := store.Load()
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	res := &Subscriptions{
		store:       store,
		subscribers: make(map[int64]followSet, len(subs)),
		log:         log.With("component", "service").With("service", "subscriptions"),
		mx:          &sync.RWMutex{},
	}

	for _, sub := range subs {
		if existing, ok := res.subscribers[sub.RecipientID]; ok {
			// duplicate record for the same recipient, merge follows
			for _, id := range sub.FollowedChannels {
				existing[id] = struct{}{}
			}
			continue
		}
		res.subscribers[sub.RecipientID] = newFollowSet(sub.FollowedChannels)
	}

	res.log.Info("Loaded subscriptions", "subscribers", len(res.subscribers))
	return res, nil
}

// Subscribe reports whether the call changed the state. A failed write
// rolls the change back.
func (s *Subscriptions) Subscribe(recipientID, channelID int64) (bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	follows, exists := s.subscribers[recipientID]
	if exists && follows.has(channelID) {
		return false, nil
	}

	if exists {
		follows[channelID] = struct{}{}
	} else {
		s.subscribers[recipientID] = newFollowSet([]int64{channelID})
	}

	if err := s.persistLocked(); err != nil {
		if exists {
			delete(follows, channelID)
		} else {
			delete(s.subscribers, recipientID)
		}
		return false, err
	}

	s.log.Debug("subscribed to channel", "recipientID", recipientID, "channelID", channelID)
	if !exists {
		s.log.Debug("new subscriber", "recipientID", recipientID)
	}
	return true, nil
}

func (s *Subscriptions) Unsubscribe(recipientID, channelID int64) (bool, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	follows, exists := s.subscribers[recipientID]
	if !exists || !follows.has(channelID) {
		return false, nil
	}

	delete(follows, channelID)
	if err := s.persistLocked(); err != nil {
		follows[channelID] = struct{}{}
		return false, err
	}

	s.log.Debug("unsubscribed from channel", "recipientID", recipientID, "channelID", channelID)
	return true, nil
}

// List returns the channels followed by the recipient, empty for unknown recipients.
func (s *Subscriptions) List(recipientID int64) []int64 {
	s.mx.RLock()
	defer s.mx.RUnlock()

	follows, ok := s.subscribers[recipientID]
	if !ok {
		return []int64{}
	}
	return follows.sorted()
}

func (s *Subscriptions) SubscriberCount() int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return len(s.subscribers)
}

// Channels returns the distinct union of all followed channels.
func (s *Subscriptions) Channels() []int64 {
	s.mx.RLock()
	defer s.mx.RUnlock()

	union := make(followSet)
	for _, follows := range s.subscribers {
		for id := range follows {
			union[id] = struct{}{}
		}
	}
	return union.sorted()
}

// Subscribers returns the recipients following the channel.
func (s *Subscriptions) Subscribers(channelID int64) []int64 {
	s.mx.RLock()
	defer s.mx.RUnlock()

	res := make([]int64, 0)
	for recipientID, follows := range s.subscribers {
		if follows.has(channelID) {
			res = append(res, recipientID)
		}
	}
	slices.Sort(res)
	return res
}

func (s *Subscriptions) Persist() error {
	s.mx.Lock()
	defer s.mx.Unlock()

	return s.persistLocked()
}

func (s *Subscriptions) persistLocked() error {
	if err := s.store.Save(s.snapshotLocked()); err != nil {
		return &PersistenceError{Op: "save", Err: err}
	}

	s.log.Info("Wrote subscriptions", "subscribers", len(s.subscribers))
	return nil
}

func (s *Subscriptions) snapshotLocked() []dal.Subscriber {
	ids := make([]int64, 0, len(s.subscribers))
	for id := range s.subscribers {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	res := make([]dal.Subscriber, 0, len(ids))
	for _, id := range ids {
		res = append(res, dal.Subscriber{
			RecipientID:      id,
			FollowedChannels: s.subscribers[id].sorted(),
		})
	}
	return res
}
