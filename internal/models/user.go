// Package models содержит доменные модели системы: пользователей,
// статьи и издателей. Структуры используются в бизнес‑логике и при
// работе с хранилищем.
package models

import "time"

// User представляет пользователя платформы. Запись создаётся при первом
// входе; e-mail уникален и служит идентификатором.
type User struct {
	Email         string     `json:"email"`          // Электронная почта, уникальный идентификатор
	Name          string     `json:"name"`           // Отображаемое имя
	PhotoURL      string     `json:"photo_url"`      // Ссылка на аватар
	IsAdmin       bool       `json:"is_admin"`       // Признак администратора
	PremiumExpiry *time.Time `json:"premium_expiry"` // Дата истечения премиум-подписки, nil — подписки нет
	CreatedAt     time.Time  `json:"created_at"`
}

// DummyUser — входные данные эндпоинта выдачи токена: профиль,
// полученный от внешнего провайдера аутентификации.
type DummyUser struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=100"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}
