package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/nova-news/internal/models"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// CreatePublisher добавляет нового издателя. Название уникально.
func (s *Storage) CreatePublisher(ctx context.Context, publisher models.Publisher) error {
	const op = "storage.CreatePublisher"

	commandTag, err := s.DB.Exec(ctx, `
		INSERT INTO publishers (name, logo_url)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING`,
		publisher.Name, publisher.LogoURL)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrPublisherExists)
	}
	return nil
}

// ListPublishers возвращает всех издателей.
func (s *Storage) ListPublishers(ctx context.Context) ([]*models.Publisher, error) {
	const op = "storage.ListPublishers"

	rows, err := s.DB.Query(ctx, `
		SELECT name, logo_url FROM publishers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Publisher
	for rows.Next() {
		p := &models.Publisher{}
		if err := rows.Scan(&p.Name, &p.LogoURL); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
