package service

import (
	"errors"
	"fmt"
)

const GenericErrorMessage = "Sorry, an error has occured. Please contact my programmer."

// ErrRecipientBlocked is returned by a Messenger when the recipient can no longer be reached
// (the bot was blocked or the account was deleted).
var ErrRecipientBlocked = errors.New("recipient blocked the bot")

// InputError is caused by the requester. UserMessage is safe to show to them,
// LogMessage is meant for the operator.
type InputError struct {
	LogMessage  string
	UserMessage string
}

func NewInputError(logMessage, userMessage string) *InputError {
	if userMessage == "" {
		userMessage = GenericErrorMessage
	}
	return &InputError{LogMessage: logMessage, UserMessage: userMessage}
}

func (e *InputError) Error() string {
	return e.LogMessage
}

// PersistenceError wraps a failure to read or write the subscriptions store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s subscriptions: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// UpstreamError wraps a failure of one of the upstream readers.
type UpstreamError struct {
	Op        string
	ChannelID int64
	Err       error
}

func (e *UpstreamError) Error() string {
	if e.ChannelID == 0 {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s for channelID=%d: %v", e.Op, e.ChannelID, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
