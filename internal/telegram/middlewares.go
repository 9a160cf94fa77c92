package telegram

import (
	"log/slog"

	tb "gopkg.in/telebot.v3"
)

// PrivateOnly drops updates that do not come from a human in a private chat.
func PrivateOnly(log *slog.Logger) tb.MiddlewareFunc {
	return func(next tb.HandlerFunc) tb.HandlerFunc {
		return func(c tb.Context) error {
			sender, chat := c.Sender(), c.Chat()
			if sender == nil || chat == nil {
				return nil
			}
			if sender.IsBot {
				log.Debug("Ignoring message from bot", "senderID", sender.ID)
				return nil
			}
			if chat.Type != tb.ChatPrivate {
				log.Debug("Ignoring non private message", "chatID", chat.ID, "chatType", chat.Type)
				return nil
			}
			return next(c)
		}
	}
}
