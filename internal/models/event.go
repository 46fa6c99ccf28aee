package models

import "time"

// StatusEvent — событие смены статуса статьи, публикуется в RabbitMQ
// при модерации.
type StatusEvent struct {
	ArticleID     string    `json:"article_id"`
	Status        string    `json:"status"`
	DeclineReason *string   `json:"decline_reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
