package models

import "time"

// Статусы модерации статьи. Переходы выполняет только администратор,
// автор при редактировании возвращает статью в pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// Article представляет статью платформы.
type Article struct {
	ID            string    `json:"id"`             // Уникальный идентификатор (uuid)
	Title         string    `json:"title"`          // Заголовок
	Content       string    `json:"content"`        // Текст статьи
	ImageURL      string    `json:"image_url"`      // Ссылка на обложку
	Publisher     string    `json:"publisher"`      // Издатель
	Tags          []string  `json:"tags"`           // Метки статьи
	AuthorEmail   string    `json:"author_email"`   // E-mail автора
	AuthorName    string    `json:"author_name"`    // Имя автора
	Status        string    `json:"status"`         // pending / approved / declined
	DeclineReason *string   `json:"decline_reason"` // Причина отклонения, заполняется администратором
	IsPremium     bool      `json:"is_premium"`     // Доступна только подписчикам
	ViewCount     int       `json:"view_count"`     // Счётчик просмотров, не убывает
	PostedAt      time.Time `json:"posted_at"`
}

// DummyArticle — входные данные при создании или редактировании статьи.
type DummyArticle struct {
	Title     string   `json:"title" validate:"required,max=200"`
	Content   string   `json:"content" validate:"required"`
	ImageURL  string   `json:"image_url" validate:"omitempty,url"`
	Publisher string   `json:"publisher" validate:"required,max=100"`
	Tags      []string `json:"tags" validate:"required,min=1,dive,required"`
	IsPremium bool     `json:"is_premium"`
}

// ArticleFilter — необязательные фильтры списка одобренных статей.
// Все условия соединяются через AND, сравнение без учёта регистра.
type ArticleFilter struct {
	Title     string // Подстрока заголовка
	Publisher string // Подстрока имени издателя
	Tag       string // Подстрока одной из меток
}

// DummyStatusUpdate — входные данные модерации статьи администратором.
type DummyStatusUpdate struct {
	Status        string  `json:"status" validate:"required,oneof=approved declined"`
	DeclineReason *string `json:"decline_reason" validate:"omitempty,max=500"`
	IsPremium     *bool   `json:"is_premium"`
}
