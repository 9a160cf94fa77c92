package dal

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type store interface {
	Load() ([]Subscriber, error)
	Save([]Subscriber) error
	Close() error
}

type StoreTestSuite struct {
	suite.Suite
	open  func(dir string) (store, error)
	dir   string
	store store
}

// SetupTest runs before EACH test with a fresh directory
func (s *StoreTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	st, err := s.open(s.dir)
	s.Require().NoError(err)
	s.store = st
}

func (s *StoreTestSuite) TearDownTest() {
	if s.store != nil {
		s.Require().NoError(s.store.Close())
	}
}

func (s *StoreTestSuite) TestLoad_Empty() {
	subs, err := s.store.Load()
	s.Require().NoError(err)
	s.NotNil(subs)
	s.Empty(subs)
}

func (s *StoreTestSuite) TestSave_RoundTrip() {
	want := []Subscriber{
		{RecipientID: 1, FollowedChannels: []int64{42, 7}},
		{RecipientID: 2, FollowedChannels: []int64{42}},
		{RecipientID: 3, FollowedChannels: []int64{}},
		{RecipientID: 1157043171940708352, FollowedChannels: []int64{91873225}},
	}
	s.Require().NoError(s.store.Save(want))

	actual, err := s.store.Load()
	s.Require().NoError(err)
	s.Equal(asRelation(want), asRelation(actual))
	s.Len(actual, len(want))
}

func (s *StoreTestSuite) TestSave_ReplacesPreviousState() {
	s.Require().NoError(s.store.Save([]Subscriber{
		{RecipientID: 1, FollowedChannels: []int64{42}},
		{RecipientID: 2, FollowedChannels: []int64{43}},
	}))
	s.Require().NoError(s.store.Save([]Subscriber{
		{RecipientID: 2, FollowedChannels: []int64{44}},
	}))

	actual, err := s.store.Load()
	s.Require().NoError(err)
	s.Equal([]Subscriber{{RecipientID: 2, FollowedChannels: []int64{44}}}, actual)
}

func (s *StoreTestSuite) TestSave_NilChannels() {
	s.Require().NoError(s.store.Save([]Subscriber{{RecipientID: 5}}))

	actual, err := s.store.Load()
	s.Require().NoError(err)
	s.Equal([]Subscriber{{RecipientID: 5, FollowedChannels: []int64{}}}, actual)
}

func TestFileStoreSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{open: func(dir string) (store, error) {
		return NewFileStore(filepath.Join(dir, "nested", "subscriptions.json")), nil
	}})
}

func TestBoltDBSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{open: func(dir string) (store, error) {
		return NewBoltDB(filepath.Join(dir, "test.db"), slog.New(slog.DiscardHandler))
	}})
}

func TestFileStore_Load(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Subscriber
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "records",
			content: `[{"recipient_id": 1, "followed_channels": [42, 43]}, {"followed_channels": [], "recipient_id": 2}]`,
			want: []Subscriber{
				{RecipientID: 1, FollowedChannels: []int64{42, 43}},
				{RecipientID: 2, FollowedChannels: []int64{}},
			},
			wantErr: assert.NoError,
		},
		{
			name:    "legacy_keys",
			content: `[{"discord_id": 1157043171940708352, "subscribed_streamers": [91873225]}]`,
			want: []Subscriber{
				{RecipientID: 1157043171940708352, FollowedChannels: []int64{91873225}},
			},
			wantErr: assert.NoError,
		},
		{
			name:    "null_channels",
			content: `[{"recipient_id": 9, "followed_channels": null}]`,
			want:    []Subscriber{{RecipientID: 9, FollowedChannels: []int64{}}},
			wantErr: assert.NoError,
		},
		{
			name:    "null_document",
			content: `null`,
			want:    []Subscriber{},
			wantErr: assert.NoError,
		},
		{
			name:    "not_json",
			content: `recipient_id=1`,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorContains(t, err, "parse subscriptions file ")
			},
		},
		{
			name:    "missing_recipient",
			content: `[{"followed_channels": [1]}]`,
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIs(t, err, ErrMalformedRecord)
			},
		},
		{
			name:    "wrong_type",
			content: `[{"recipient_id": "one", "followed_channels": [1]}]`,
			wantErr: assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "subscriptions.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			got, err := NewFileStore(path).Load()
			if !tt.wantErr(t, err) {
				return
			}
			if err == nil {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFileStore_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subscriptions.json")
	st := NewFileStore(path)

	require.NoError(t, st.Save(nil))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	require.NoError(t, st.Save([]Subscriber{{RecipientID: 1, FollowedChannels: []int64{42}}}))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"recipient_id": 1, "followed_channels": [42]}]`, string(data))

	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileStore_SaveError(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be makes the rename fail
	path := filepath.Join(dir, "subscriptions.json")
	require.NoError(t, os.MkdirAll(filepath.Join(path, "child"), 0o755))

	err := NewFileStore(path).Save([]Subscriber{{RecipientID: 1}})
	assert.Error(t, err)
}

func asRelation(subs []Subscriber) map[int64][]int64 {
	res := make(map[int64][]int64, len(subs))
	for _, sub := range subs {
		channels := append([]int64{}, sub.FollowedChannels...)
		sort.Slice(channels, func(i, j int) bool { return channels[i] < channels[j] })
		res[sub.RecipientID] = channels
	}
	return res
}
