package app

import (
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier delivers texts to the single configured chat. Delivery failures are
// logged and absorbed: they never reach the polling loop and are never retried.
type Notifier struct {
	client domainTelegram.Client
	chatID string
	logger logrus.FieldLogger
}

func NewNotifier(client domainTelegram.Client, chatID string, logger logrus.FieldLogger) *Notifier {
	return &Notifier{client: client, chatID: chatID, logger: logger}
}

// Send reports whether the message was delivered.
func (n *Notifier) Send(text string) bool {
	if err := n.client.SendMessage(n.chatID, text); err != nil {
		n.logger.WithError(err).Errorf("Failed to send message: %s", text)
		return false
	}
	n.logger.Debugf("Message sent: %s", text)
	return true
}
