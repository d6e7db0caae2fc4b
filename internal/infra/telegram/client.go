// internal/infra/telegram/client.go
package telegram

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewBot creates an offline bot: no getMe call is made, so a network failure at
// startup does not prevent the polling loop from running.
func NewBot(token string, timeout time.Duration, log logrus.FieldLogger) (*telebot.Bot, error) {
	return telebot.NewBot(telebot.Settings{
		Token:   token,
		Offline: true,
		Client:  &http.Client{Timeout: timeout},
		OnError: func(err error, _ telebot.Context) {
			log.WithError(err).Error("Telegram bot error")
		},
	})
}

// chatRecipient addresses a chat by its id or @username.
type chatRecipient string

func (c chatRecipient) Recipient() string { return string(c) }

// SendMessage sends a plain text message to the chat.
func (tba *TelebotAdapter) SendMessage(chatID string, text string) error {
	_, err := tba.bot.Send(chatRecipient(chatID), text, &telebot.SendOptions{ParseMode: telebot.ModeDefault})
	return err
}
