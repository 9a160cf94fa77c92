package dal

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"go.etcd.io/bbolt"

	"github.com/poettig/twitch-notifier/internal/dal/migrations"
)

const subscribersBucket = migrations.SubscribersBucket

// BoltDB stores one key per recipient. Save replaces the whole bucket in a
// single transaction, so readers never see a partially written set.
type BoltDB struct {
	db *bbolt.DB
}

func NewBoltDB(path string, log *slog.Logger) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, nil) //nolint:mnd
	if err != nil {
		return nil, fmt.Errorf("open bolt db: %w", err)
	}

	if err := migrations.RunMigrations(db, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &BoltDB{db: db}, nil
}

func (s *BoltDB) Load() ([]Subscriber, error) {
	res := []Subscriber{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(subscribersBucket)).ForEach(func(k, v []byte) error {
			id, err := strconv.ParseInt(string(k), 10, 64)
			if err != nil {
				return fmt.Errorf("%w: key %q: %w", ErrMalformedRecord, k, err)
			}

			var channels []int64
			if err := json.Unmarshal(v, &channels); err != nil {
				return fmt.Errorf("unmarshal followed channels for recipientID=%d: %w", id, err)
			}
			if channels == nil {
				channels = []int64{}
			}

			res = append(res, Subscriber{RecipientID: id, FollowedChannels: channels})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (s *BoltDB) Save(subs []Subscriber) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(subscribersBucket)); err != nil {
			return fmt.Errorf("drop subscribers bucket: %w", err)
		}
		b, err := tx.CreateBucket([]byte(subscribersBucket))
		if err != nil {
			return fmt.Errorf("create subscribers bucket: %w", err)
		}

		for _, sub := range subs {
			channels := sub.FollowedChannels
			if channels == nil {
				channels = []int64{}
			}
			data, err := json.Marshal(channels)
			if err != nil {
				return fmt.Errorf("marshal followed channels for recipientID=%d: %w", sub.RecipientID, err)
			}
			if err := b.Put(i64tob(sub.RecipientID), data); err != nil {
				return fmt.Errorf("put subscriber for recipientID=%d: %w", sub.RecipientID, err)
			}
		}

		return nil
	})
}

func (s *BoltDB) Close() error {
	return s.db.Close()
}

func i64tob(id int64) []byte {
	return []byte(strconv.FormatInt(id, 10))
}
