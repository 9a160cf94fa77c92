package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps all subscribers in a single JSON file which is rewritten
// as a whole on every Save.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns an empty slice when the file does not exist yet.
func (s *FileStore) Load() ([]Subscriber, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Subscriber{}, nil
		}
		return nil, fmt.Errorf("read subscriptions file: %w", err)
	}

	var res []Subscriber
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse subscriptions file %s: %w", s.path, err)
	}
	if res == nil {
		res = []Subscriber{}
	}

	return res, nil
}

func (s *FileStore) Save(subs []Subscriber) error {
	if subs == nil {
		subs = []Subscriber{}
	}

	data, err := json.Marshal(subs)
	if err != nil {
		return fmt.Errorf("marshal subscribers: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("create subscriptions dir: %w", err)
	}

	// write to a sibling file first so a failed write never truncates the previous state
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("write subscriptions file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace subscriptions file: %w", err)
	}

	return nil
}

func (s *FileStore) Close() error {
	return nil
}
