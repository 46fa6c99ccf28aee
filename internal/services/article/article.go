// Package services содержит логику бизнес-уровня для статей: публикацию с
// квотой, премиум-доступ, модерацию, фильтрованные списки и счётчик просмотров.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/models"
)

// Ошибки политики доступа к статьям.
var (
	// ErrAuthRequired премиум-статья запрошена без аутентификации.
	ErrAuthRequired = errors.New("authentication required")
	// ErrPremiumRequired у аутентифицированного пользователя нет действующей подписки.
	ErrPremiumRequired = errors.New("premium subscription required")
	// ErrQuotaExceeded автор без подписки уже опубликовал свою бесплатную статью.
	ErrQuotaExceeded = errors.New("article quota exceeded")
)

// ArticleRepository описывает контракт для работы со статьями в базе данных.
type ArticleRepository interface {
	CreateArticle(ctx context.Context, article models.Article) error
	GetArticleByID(ctx context.Context, id string) (*models.Article, error)
	ListApprovedArticles(ctx context.Context, filter models.ArticleFilter, limit, offset int) ([]*models.Article, error)
	ListAllArticles(ctx context.Context, limit, offset int) ([]*models.Article, error)
	ListArticlesByAuthor(ctx context.Context, authorEmail string) ([]*models.Article, error)
	CountArticlesByAuthor(ctx context.Context, authorEmail string) (int, error)
	UpdateArticleStatus(ctx context.Context, id, status string, declineReason *string, isPremium *bool) error
	UpdateArticleContent(ctx context.Context, id, authorEmail string, req models.DummyArticle) error
	RemoveArticle(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) error
}

// Entitlements описывает вычисление статуса премиум-подписки.
type Entitlements interface {
	Evaluate(ctx context.Context, email string) (bool, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// ModerationPublisher публикует события смены статуса статьи.
type ModerationPublisher interface {
	PublishStatusChange(event models.StatusEvent) error
}

// ArticleService реализует политику доступа к статьям.
type ArticleService struct {
	repo         ArticleRepository
	entitlements Entitlements
	cache        Cache
	events       ModerationPublisher
	log          *slog.Logger
}

// NewArticleService создает новый экземпляр ArticleService.
func NewArticleService(repo ArticleRepository, entitlements Entitlements, cache Cache, events ModerationPublisher, log *slog.Logger) *ArticleService {
	return &ArticleService{
		repo:         repo,
		entitlements: entitlements,
		cache:        cache,
		events:       events,
		log:          log,
	}
}

// Submit публикует новую статью в статусе pending и возвращает её ID.
//
// Подписчик публикует без ограничений. Автор без подписки — ровно одну
// статью; подписка всегда вычисляется по e-mail аутентифицированного автора.
// Проверка квоты и вставка не атомарны: одновременные публикации одного
// автора могут обе пройти проверку, квота соблюдается по принципу best-effort.
func (s *ArticleService) Submit(ctx context.Context, authorEmail, authorName string, req models.DummyArticle) (string, error) {
	isSubscribed, err := s.entitlements.Evaluate(ctx, authorEmail)
	if err != nil {
		return "", err
	}
	if !isSubscribed {
		count, err := s.repo.CountArticlesByAuthor(ctx, authorEmail)
		if err != nil {
			return "", err
		}
		if count > 0 {
			return "", ErrQuotaExceeded
		}
	}

	article := models.Article{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
		Publisher:   req.Publisher,
		Tags:        req.Tags,
		AuthorEmail: authorEmail,
		AuthorName:  authorName,
		Status:      models.StatusPending,
		IsPremium:   req.IsPremium,
	}
	if err := s.repo.CreateArticle(ctx, article); err != nil {
		return "", err
	}
	s.log.Info("submitted new article",
		slog.String("id", article.ID), slog.String("author", authorEmail))
	return article.ID, nil
}

// GetByID возвращает статью по идентификатору, применяя премиум-политику.
//
// Обычная статья видна всем, включая анонимов. Премиум-статья требует
// аутентификации (requesterEmail не пуст) и действующей подписки.
// Тело статьи читается через кеш; счётчик просмотров в кеше может отставать,
// решение о премиум-доступе никогда не кешируется.
func (s *ArticleService) GetByID(ctx context.Context, id, requesterEmail string) (*models.Article, error) {
	var article *models.Article
	cacheKey := fmt.Sprintf("article:%s", id)
	found, err := s.cache.Get(cacheKey, &article)
	if err != nil {
		s.log.Warn("failed to read article from cache", slog.String("key", cacheKey), sl.Err(err))
		found = false
	}
	if !found {
		article, err = s.repo.GetArticleByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(cacheKey, article, time.Hour); err != nil {
			s.log.Warn("failed to cache article", slog.String("key", cacheKey), sl.Err(err))
		}
	}

	if article.IsPremium {
		if requesterEmail == "" {
			return nil, ErrAuthRequired
		}
		isSubscribed, err := s.entitlements.Evaluate(ctx, requesterEmail)
		if err != nil {
			return nil, err
		}
		if !isSubscribed {
			return nil, ErrPremiumRequired
		}
	}
	return article, nil
}

// List возвращает одобренные статьи с необязательными фильтрами.
func (s *ArticleService) List(ctx context.Context, filter models.ArticleFilter, limit, offset int) ([]*models.Article, error) {
	return s.repo.ListApprovedArticles(ctx, filter, limit, offset)
}

// ListAll возвращает статьи в любом статусе, для администратора.
func (s *ArticleService) ListAll(ctx context.Context, limit, offset int) ([]*models.Article, error) {
	return s.repo.ListAllArticles(ctx, limit, offset)
}

// ListByAuthor возвращает статьи автора в любом статусе.
func (s *ArticleService) ListByAuthor(ctx context.Context, authorEmail string) ([]*models.Article, error) {
	return s.repo.ListArticlesByAuthor(ctx, authorEmail)
}

// UpdateStatus выполняет модерацию статьи администратором, инвалидирует кеш
// и публикует событие смены статуса (best-effort).
func (s *ArticleService) UpdateStatus(ctx context.Context, id string, req models.DummyStatusUpdate) error {
	if err := s.repo.UpdateArticleStatus(ctx, id, req.Status, req.DeclineReason, req.IsPremium); err != nil {
		return err
	}
	s.invalidate(id)

	event := models.StatusEvent{
		ArticleID:     id,
		Status:        req.Status,
		DeclineReason: req.DeclineReason,
		OccurredAt:    time.Now().UTC(),
	}
	if err := s.events.PublishStatusChange(event); err != nil {
		s.log.Warn("failed to publish moderation event",
			slog.String("article_id", id), sl.Err(err))
	}
	return nil
}

// UpdateOwn обновляет статью её автором и возвращает её на модерацию.
func (s *ArticleService) UpdateOwn(ctx context.Context, id, authorEmail string, req models.DummyArticle) error {
	if err := s.repo.UpdateArticleContent(ctx, id, authorEmail, req); err != nil {
		return err
	}
	s.invalidate(id)
	return nil
}

// Remove удаляет статью, для администратора.
func (s *ArticleService) Remove(ctx context.Context, id string) error {
	s.invalidate(id)
	return s.repo.RemoveArticle(ctx, id)
}

// IncrementViews увеличивает счётчик просмотров на единицу.
// Аутентификация не требуется.
func (s *ArticleService) IncrementViews(ctx context.Context, id string) error {
	return s.repo.IncrementViewCount(ctx, id)
}

func (s *ArticleService) invalidate(id string) {
	cacheKey := fmt.Sprintf("article:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate article cache", slog.String("key", cacheKey), sl.Err(err))
	}
}
