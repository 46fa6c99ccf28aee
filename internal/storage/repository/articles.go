package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/magabrotheeeer/nova-news/internal/models"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

const articleColumns = `id, title, content, image_url, publisher, tags,
		author_email, author_name, status, decline_reason, is_premium,
		view_count, posted_at`

func scanArticle(row pgx.Row) (*models.Article, error) {
	a := &models.Article{}
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.ImageURL, &a.Publisher,
		&a.Tags, &a.AuthorEmail, &a.AuthorName, &a.Status, &a.DeclineReason,
		&a.IsPremium, &a.ViewCount, &a.PostedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// CreateArticle сохраняет новую статью.
func (s *Storage) CreateArticle(ctx context.Context, article models.Article) error {
	const op = "storage.CreateArticle"

	_, err := s.DB.Exec(ctx, `
		INSERT INTO articles (id, title, content, image_url, publisher, tags,
			author_email, author_name, status, is_premium)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		article.ID, article.Title, article.Content, article.ImageURL,
		article.Publisher, article.Tags, article.AuthorEmail,
		article.AuthorName, article.Status, article.IsPremium)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetArticleByID возвращает статью по идентификатору.
func (s *Storage) GetArticleByID(ctx context.Context, id string) (*models.Article, error) {
	const op = "storage.GetArticleByID"

	a, err := scanArticle(s.DB.QueryRow(ctx, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrArticleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a, nil
}

// ListApprovedArticles возвращает одобренные статьи с необязательными
// фильтрами по заголовку, издателю и метке. Фильтры соединяются через AND,
// сравнение подстрок без учёта регистра.
func (s *Storage) ListApprovedArticles(ctx context.Context, filter models.ArticleFilter, limit, offset int) ([]*models.Article, error) {
	const op = "storage.ListApprovedArticles"

	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE status = 'approved'`
	args := []any{}

	if filter.Title != "" {
		args = append(args, filter.Title)
		query += fmt.Sprintf(" AND title ILIKE '%%' || $%d || '%%'", len(args))
	}
	if filter.Publisher != "" {
		args = append(args, filter.Publisher)
		query += fmt.Sprintf(" AND publisher ILIKE '%%' || $%d || '%%'", len(args))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		query += fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE '%%' || $%d || '%%')",
			len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY posted_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	return s.queryArticles(ctx, op, query, args...)
}

// ListAllArticles возвращает статьи в любом статусе, для администратора.
func (s *Storage) ListAllArticles(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	const op = "storage.ListAllArticles"

	return s.queryArticles(ctx, op, `
		SELECT `+articleColumns+`
		FROM articles
		ORDER BY posted_at DESC
		LIMIT $1 OFFSET $2`, limit, offset)
}

// ListArticlesByAuthor возвращает статьи автора в любом статусе.
func (s *Storage) ListArticlesByAuthor(ctx context.Context, authorEmail string) ([]*models.Article, error) {
	const op = "storage.ListArticlesByAuthor"

	return s.queryArticles(ctx, op, `
		SELECT `+articleColumns+`
		FROM articles
		WHERE author_email = $1
		ORDER BY posted_at DESC`, authorEmail)
}

func (s *Storage) queryArticles(ctx context.Context, op, query string, args ...any) ([]*models.Article, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountArticlesByAuthor возвращает количество статей автора.
// Используется для проверки квоты бесплатной публикации.
func (s *Storage) CountArticlesByAuthor(ctx context.Context, authorEmail string) (int, error) {
	const op = "storage.CountArticlesByAuthor"

	var count int
	err := s.DB.QueryRow(ctx, `
		SELECT COUNT(*) FROM articles WHERE author_email = $1`, authorEmail).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// UpdateArticleStatus выполняет модерацию: меняет статус, причину отклонения
// и, если передан, признак премиум-статьи.
func (s *Storage) UpdateArticleStatus(ctx context.Context, id, status string, declineReason *string, isPremium *bool) error {
	const op = "storage.UpdateArticleStatus"

	commandTag, err := s.DB.Exec(ctx, `
		UPDATE articles
		SET status = $1,
		    decline_reason = $2,
		    is_premium = COALESCE($3, is_premium)
		WHERE id = $4`,
		status, declineReason, isPremium, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrArticleNotFound)
	}
	return nil
}

// UpdateArticleContent обновляет статью её автором и возвращает её в статус
// pending: изменения проходят модерацию заново.
func (s *Storage) UpdateArticleContent(ctx context.Context, id, authorEmail string, req models.DummyArticle) error {
	const op = "storage.UpdateArticleContent"

	commandTag, err := s.DB.Exec(ctx, `
		UPDATE articles
		SET title = $1, content = $2, image_url = $3, publisher = $4,
		    tags = $5, is_premium = $6, status = 'pending', decline_reason = NULL
		WHERE id = $7 AND author_email = $8`,
		req.Title, req.Content, req.ImageURL, req.Publisher, req.Tags,
		req.IsPremium, id, authorEmail)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrArticleNotFound)
	}
	return nil
}

// RemoveArticle удаляет статью.
func (s *Storage) RemoveArticle(ctx context.Context, id string) error {
	const op = "storage.RemoveArticle"

	commandTag, err := s.DB.Exec(ctx, `
		DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrArticleNotFound)
	}
	return nil
}

// IncrementViewCount атомарно увеличивает счётчик просмотров на единицу.
func (s *Storage) IncrementViewCount(ctx context.Context, id string) error {
	const op = "storage.IncrementViewCount"

	commandTag, err := s.DB.Exec(ctx, `
		UPDATE articles SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrArticleNotFound)
	}
	return nil
}
