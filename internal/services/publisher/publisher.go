// Package services содержит логику бизнес-уровня для справочника издателей.
package services

import (
	"context"

	"github.com/magabrotheeeer/nova-news/internal/models"
)

// PublisherRepository описывает контракт для работы с издателями в базе данных.
type PublisherRepository interface {
	// CreatePublisher добавляет издателя или возвращает storage.ErrPublisherExists.
	CreatePublisher(ctx context.Context, publisher models.Publisher) error

	// ListPublishers возвращает всех издателей.
	ListPublishers(ctx context.Context) ([]*models.Publisher, error)
}

// PublisherService управляет справочником издателей.
type PublisherService struct {
	repo PublisherRepository
}

// NewPublisherService создает новый экземпляр PublisherService.
func NewPublisherService(repo PublisherRepository) *PublisherService {
	return &PublisherService{repo: repo}
}

// Create добавляет нового издателя, для администратора.
func (s *PublisherService) Create(ctx context.Context, req models.DummyPublisher) error {
	return s.repo.CreatePublisher(ctx, models.Publisher{
		Name:    req.Name,
		LogoURL: req.LogoURL,
	})
}

// List возвращает всех издателей.
func (s *PublisherService) List(ctx context.Context) ([]*models.Publisher, error) {
	return s.repo.ListPublishers(ctx)
}
