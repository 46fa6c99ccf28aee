package rabbitmq

// ModerationExchange имя exchange для событий модерации статей.
const ModerationExchange = "moderation"

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetModerationQueues возвращает очереди, в которые уходят события
// смены статуса статьи.
func GetModerationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "moderation.status", RoutingKey: "status"},
	}
}
