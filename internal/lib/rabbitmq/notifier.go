package rabbitmq

import (
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/nova-news/internal/models"
)

// Notifier публикует события модерации в exchange модерации.
type Notifier struct {
	ch *amqp.Channel
}

// NewNotifier создает новый Notifier поверх открытого канала.
func NewNotifier(ch *amqp.Channel) *Notifier {
	return &Notifier{ch: ch}
}

// PublishStatusChange отправляет событие смены статуса статьи.
func (n *Notifier) PublishStatusChange(event models.StatusEvent) error {
	return PublishMessage(n.ch, ModerationExchange, "status", event)
}
