package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dailydigest/internal/logger"
	"dailydigest/internal/repository"
)

type BookmarkService struct {
	repo repository.BookmarkRepo
}

func NewBookmarkService(repo repository.BookmarkRepo) *BookmarkService {
	return &BookmarkService{repo: repo}
}

// Add возвращает false, если закладка уже существовала.
func (s *BookmarkService) Add(ctx context.Context, userID int64, articleID string) (bool, error) {
	log := logger.WithCtx(ctx)

	if _, err := uuid.Parse(articleID); err != nil {
		return false, fmt.Errorf("%w: некорректный идентификатор статьи", ErrValidation)
	}

	added, err := s.repo.Add(ctx, userID, articleID)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("Закладка на несуществующую статью", zap.String("article_id", articleID))
			return false, ErrNotFound
		}
		log.Error("Ошибка добавления закладки (repo)", zap.Error(err))
		return false, err
	}

	log.Info("Закладка добавлена",
		zap.String("article_id", articleID),
		zap.Bool("was_new", added),
	)
	return added, nil
}

func (s *BookmarkService) Remove(ctx context.Context, userID int64, articleID string) error {
	log := logger.WithCtx(ctx)

	if _, err := uuid.Parse(articleID); err != nil {
		return fmt.Errorf("%w: некорректный идентификатор статьи", ErrValidation)
	}

	removed, err := s.repo.Remove(ctx, userID, articleID)
	if err != nil {
		log.Error("Ошибка удаления закладки (repo)", zap.Error(err))
		return err
	}
	if !removed {
		return ErrNotFound
	}

	log.Info("Закладка удалена", zap.String("article_id", articleID))
	return nil
}
