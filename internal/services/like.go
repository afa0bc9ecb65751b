package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dailydigest/internal/logger"
	"dailydigest/internal/repository"
)

type LikeService struct {
	repo repository.LikeRepo
}

func NewLikeService(repo repository.LikeRepo) *LikeService {
	return &LikeService{repo: repo}
}

// Add возвращает false, если лайк уже стоял.
func (s *LikeService) Add(ctx context.Context, userID int64, articleID string) (bool, error) {
	log := logger.WithCtx(ctx)

	if _, err := uuid.Parse(articleID); err != nil {
		return false, fmt.Errorf("%w: некорректный идентификатор статьи", ErrValidation)
	}

	added, err := s.repo.Add(ctx, userID, articleID)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("Лайк на несуществующую статью", zap.String("article_id", articleID))
			return false, ErrNotFound
		}
		log.Error("Ошибка добавления лайка (repo)", zap.Error(err))
		return false, err
	}

	log.Info("Лайк добавлен",
		zap.String("article_id", articleID),
		zap.Bool("was_new", added),
	)
	return added, nil
}

func (s *LikeService) Remove(ctx context.Context, userID int64, articleID string) error {
	log := logger.WithCtx(ctx)

	if _, err := uuid.Parse(articleID); err != nil {
		return fmt.Errorf("%w: некорректный идентификатор статьи", ErrValidation)
	}

	removed, err := s.repo.Remove(ctx, userID, articleID)
	if err != nil {
		log.Error("Ошибка удаления лайка (repo)", zap.Error(err))
		return err
	}
	if !removed {
		return ErrNotFound
	}

	log.Info("Лайк удалён", zap.String("article_id", articleID))
	return nil
}
