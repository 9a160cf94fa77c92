package dal

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrMalformedRecord = errors.New("malformed subscriber record")

// Subscriber is the persisted form of one recipient and the channels it follows.
type Subscriber struct {
	RecipientID      int64   `json:"recipient_id"`
	FollowedChannels []int64 `json:"followed_channels"`
}

// UnmarshalJSON also accepts records written with the legacy
// discord_id/subscribed_streamers keys.
func (s *Subscriber) UnmarshalJSON(data []byte) error {
	var raw struct {
		RecipientID         *int64  `json:"recipient_id"`
		FollowedChannels    []int64 `json:"followed_channels"`
		DiscordID           *int64  `json:"discord_id"`
		SubscribedStreamers []int64 `json:"subscribed_streamers"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal subscriber: %w", err)
	}

	switch {
	case raw.RecipientID != nil:
		s.RecipientID = *raw.RecipientID
		s.FollowedChannels = raw.FollowedChannels
	case raw.DiscordID != nil:
		s.RecipientID = *raw.DiscordID
		s.FollowedChannels = raw.SubscribedStreamers
	default:
		return fmt.Errorf("%w: recipient id is missing", ErrMalformedRecord)
	}

	if s.FollowedChannels == nil {
		s.FollowedChannels = []int64{}
	}

	return nil
}
