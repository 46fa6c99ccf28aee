// Package storage определяет общие ошибки уровня хранилища.
// Конкретные реализации находятся в подпакете repository.
package storage

import "errors"

// Ошибки, которые хранилище возвращает при отсутствии записей.
// Сервисы и обработчики сравнивают их через errors.Is.
var (
	// ErrUserNotFound пользователь с таким e-mail отсутствует.
	ErrUserNotFound = errors.New("user not found")
	// ErrArticleNotFound статья с таким идентификатором отсутствует.
	ErrArticleNotFound = errors.New("article not found")
	// ErrPublisherExists издатель с таким названием уже есть.
	ErrPublisherExists = errors.New("publisher already exists")
)
