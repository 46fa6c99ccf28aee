package models

// Publisher представляет издателя, от имени которого публикуются статьи.
type Publisher struct {
	Name    string `json:"name"`     // Название, уникальное
	LogoURL string `json:"logo_url"` // Ссылка на логотип
}

// DummyPublisher — входные данные при добавлении издателя администратором.
type DummyPublisher struct {
	Name    string `json:"name" validate:"required,max=100"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}
