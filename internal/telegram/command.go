package telegram

import "regexp"

var commandRegex = regexp.MustCompile(`^!([a-z]+)(?: ([^ ]+))?.*$`)

// Command is one of SubscribeCommand, UnsubscribeCommand,
// ListSubscriptionsCommand or UnknownCommand.
type Command interface {
	command()
}

type (
	SubscribeCommand struct {
		Name string
	}

	UnsubscribeCommand struct {
		Name string
	}

	ListSubscriptionsCommand struct{}

	UnknownCommand struct{}
)

func (SubscribeCommand) command()         {}
func (UnsubscribeCommand) command()       {}
func (ListSubscriptionsCommand) command() {}
func (UnknownCommand) command()           {}

// ParseCommand matches the command word case-sensitively. Subscribe and
// unsubscribe without a channel name are unknown.
func ParseCommand(text string) Command {
	match := commandRegex.FindStringSubmatch(text)
	if match == nil {
		return UnknownCommand{}
	}

	word, arg := match[1], match[2]
	switch word {
	case "subscribe":
		if arg == "" {
			return UnknownCommand{}
		}
		return SubscribeCommand{Name: arg}
	case "unsubscribe":
		if arg == "" {
			return UnknownCommand{}
		}
		return UnsubscribeCommand{Name: arg}
	case "subscriptions":
		return ListSubscriptionsCommand{}
	default:
		return UnknownCommand{}
	}
}
