package migrations

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"go.etcd.io/bbolt"
)

const (
	migrationsBucket  = "migrations"
	SubscribersBucket = "subscribers"
)

// Migration is one versioned schema step of the bolt store.
type Migration struct {
	Version     int
	Description string
	Up          func(tx *bbolt.Tx) error
}

var registeredMigrations = []Migration{
	{
		Version:     1,
		Description: "create subscribers bucket",
		Up: func(tx *bbolt.Tx) error {
			_, err := tx.CreateBucketIfNotExists([]byte(SubscribersBucket))
			return err //nolint:wrapcheck // wrapped by the runner
		},
	},
	{
		Version:     2,
		Description: "sort and deduplicate followed channels",
		Up:          normalizeFollowedChannels,
	},
}

// RunMigrations applies every pending migration, each in its own transaction
// together with its version record.
func RunMigrations(db *bbolt.DB, log *slog.Logger) error {
	log = log.With("component", "migrations")

	applied, err := appliedMigrations(db)
	if err != nil {
		return fmt.Errorf("get applied migrations: %w", err)
	}

	appliedCount := 0
	for _, m := range registeredMigrations {
		if appliedAt, ok := applied[m.Version]; ok {
			log.Debug("Skipping already-applied migration",
				"version", m.Version,
				"applied_at", appliedAt.Format(time.RFC3339))
			continue
		}

		log.Info("Applying migration", "version", m.Version, "description", m.Description)
		err := db.Update(func(tx *bbolt.Tx) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return recordMigration(tx, m.Version)
		})
		if err != nil {
			return fmt.Errorf("migration v%d failed: %w", m.Version, err)
		}
		appliedCount++
	}

	if appliedCount > 0 {
		log.Info("Migrations applied", "applied_count", appliedCount)
	}
	return nil
}

func appliedMigrations(db *bbolt.DB) (map[int]time.Time, error) {
	applied := make(map[int]time.Time)

	err := db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(migrationsBucket))
		if err != nil {
			return fmt.Errorf("create migrations bucket: %w", err)
		}

		return b.ForEach(func(k, v []byte) error {
			var version int
			if _, err := fmt.Sscanf(string(k), "v%d", &version); err != nil {
				return fmt.Errorf("parse version from key %s: %w", k, err)
			}

			timestamp, err := time.Parse(time.RFC3339, string(v))
			if err != nil {
				return fmt.Errorf("parse timestamp for v%d: %w", version, err)
			}

			applied[version] = timestamp
			return nil
		})
	})

	return applied, err //nolint:wrapcheck // wrapped by the caller
}

func recordMigration(tx *bbolt.Tx, version int) error {
	key := []byte(fmt.Sprintf("v%d", version))
	value := []byte(time.Now().Format(time.RFC3339))
	if err := tx.Bucket([]byte(migrationsBucket)).Put(key, value); err != nil {
		return fmt.Errorf("record migration v%d: %w", version, err)
	}
	return nil
}

func normalizeFollowedChannels(tx *bbolt.Tx) error {
	b := tx.Bucket([]byte(SubscribersBucket))
	if b == nil {
		return fmt.Errorf("bucket %s not found", SubscribersBucket)
	}

	updates := make(map[string][]byte)
	err := b.ForEach(func(k, v []byte) error {
		var channels []int64
		if err := json.Unmarshal(v, &channels); err != nil {
			return fmt.Errorf("unmarshal followed channels for key %s: %w", k, err)
		}
		if channels == nil {
			channels = []int64{}
		}
		slices.Sort(channels)
		channels = slices.Compact(channels)

		data, err := json.Marshal(channels)
		if err != nil {
			return fmt.Errorf("marshal followed channels for key %s: %w", k, err)
		}
		updates[string(k)] = data
		return nil
	})
	if err != nil {
		return err
	}

	// a bucket must not be modified while iterating it
	for k, v := range updates {
		if err := b.Put([]byte(k), v); err != nil {
			return fmt.Errorf("put followed channels for key %s: %w", k, err)
		}
	}
	return nil
}
