package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"dailydigest/internal/config"
	"dailydigest/internal/logger"
	"dailydigest/internal/models"
	"dailydigest/internal/repository"
)

const defaultPageSize = 20

type ListParams struct {
	Page     int
	PageSize int
	Category string
	Search   string
}

type ArticleService interface {
	// Ingest — единственный путь записи статей. Второе значение — true,
	// если статья была создана, а не обновлена по политике update.
	Ingest(ctx context.Context, req models.IngestArticleRequest) (*models.Article, bool, error)
	List(ctx context.Context, p ListParams) (*models.ArticleListResponse, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Categories(ctx context.Context) ([]string, error)
	Bookmarked(ctx context.Context, userID int64, page, pageSize int) (*models.ArticleListResponse, error)
}

type articleService struct {
	repo        repository.ArticleRepo
	onDuplicate string
}

func NewArticleService(repo repository.ArticleRepo, cfg *config.Config) ArticleService {
	return &articleService{repo: repo, onDuplicate: cfg.OnDuplicate}
}

func (s *articleService) Ingest(ctx context.Context, req models.IngestArticleRequest) (*models.Article, bool, error) {
	log := logger.WithCtx(ctx)

	title := strings.TrimSpace(req.Title)
	source := strings.TrimSpace(req.Source)
	canonical := strings.TrimSpace(req.URL)

	if title == "" {
		return nil, false, fmt.Errorf("%w: заголовок обязателен", ErrValidation)
	}
	if source == "" {
		return nil, false, fmt.Errorf("%w: источник обязателен", ErrValidation)
	}
	if !isValidAbsoluteURL(canonical) {
		return nil, false, fmt.Errorf("%w: некорректный url статьи", ErrValidation)
	}
	if raw := strings.TrimSpace(req.ImageURL); raw != "" && !isParsableURL(raw) {
		return nil, false, fmt.Errorf("%w: некорректный imageUrl", ErrValidation)
	}

	publishedAt := time.Now()
	if raw := strings.TrimSpace(req.PublishedAt); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, false, fmt.Errorf("%w: некорректная дата publishedAt", ErrValidation)
		}
		publishedAt = t
	}

	// Битая картинка деградирует до отсутствия, инжест не отклоняется
	imageURL := NormalizeImageURL(req.ImageURL, canonical)
	category := NormalizeCategory(req.Category, title+" "+req.Description)

	a := &models.Article{
		Title:       title,
		Description: strPtr(req.Description),
		Content:     strPtr(req.Content),
		ImageURL:    imageURL,
		Source:      source,
		Category:    category,
		Author:      strPtr(req.Author),
		URL:         canonical,
		PublishedAt: publishedAt,
	}

	log.Info("Инжест статьи",
		zap.String("url", canonical),
		zap.String("source", source),
		zap.String("category", category),
		zap.Bool("has_image", imageURL != nil),
	)

	if s.onDuplicate == config.OnDuplicateReject {
		created, err := s.repo.Insert(ctx, a)
		if err != nil {
			if isUniqueViolation(err) {
				log.Warn("Инжест отклонён: дубликат url", zap.String("url", canonical))
				return nil, false, ErrDuplicate
			}
			log.Error("Ошибка вставки статьи (repo)", zap.Error(err))
			return nil, false, err
		}
		log.Info("Статья создана", zap.String("id", created.ID))
		return created, true, nil
	}

	out, created, err := s.repo.Upsert(ctx, a)
	if err != nil {
		log.Error("Ошибка upsert статьи (repo)", zap.Error(err))
		return nil, false, err
	}
	log.Info("Статья сохранена",
		zap.String("id", out.ID),
		zap.Bool("created", created),
	)
	return out, created, nil
}

func (s *articleService) List(ctx context.Context, p ListParams) (*models.ArticleListResponse, error) {
	log := logger.WithCtx(ctx)

	page, pageSize := p.Page, p.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	f := models.ArticleFilter{
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}
	if c := strings.TrimSpace(p.Category); c != "" && !strings.EqualFold(c, models.CategoryAll) {
		if canonical, ok := models.CanonicalCategory(c); ok {
			f.Category = canonical
		} else {
			f.Category = c
		}
	}
	f.Search = sanitizeSearch(p.Search)

	items, total, err := s.repo.List(ctx, f)
	if err != nil {
		log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}

	log.Debug("Список статей получен",
		zap.Int("count", len(items)),
		zap.Int("total", total),
		zap.Int("page", page),
	)
	return buildListResponse(items, total, page, pageSize), nil
}

func (s *articleService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	log := logger.WithCtx(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: некорректный идентификатор статьи", ErrValidation)
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Warn("Статья не найдена", zap.String("id", id))
			return nil, ErrNotFound
		}
		log.Error("Ошибка получения статьи (repo)", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *articleService) Categories(ctx context.Context) ([]string, error) {
	log := logger.WithCtx(ctx)

	list, err := s.repo.Categories(ctx)
	if err != nil {
		log.Error("Ошибка получения рубрик (repo)", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *articleService) Bookmarked(ctx context.Context, userID int64, page, pageSize int) (*models.ArticleListResponse, error) {
	log := logger.WithCtx(ctx)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	items, total, err := s.repo.ListBookmarked(ctx, userID, pageSize, (page-1)*pageSize)
	if err != nil {
		log.Error("Ошибка получения закладок (repo)", zap.Error(err))
		return nil, err
	}
	return buildListResponse(items, total, page, pageSize), nil
}

func buildListResponse(items []*models.Article, total, page, pageSize int) *models.ArticleListResponse {
	if items == nil {
		items = []*models.Article{}
	}
	return &models.ArticleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}
}

// isValidAbsoluteURL — синтаксически корректный абсолютный url с хостом.
func isValidAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}

// isParsableURL — для imageUrl достаточно разборчивости: относительные
// адреса легальны, их разрешит NormalizeImageURL.
func isParsableURL(s string) bool {
	_, err := url.Parse(s)
	return err == nil
}

// sanitizeSearch обрезает пробелы и выбрасывает управляющие символы
// (в том числе NUL); пустой остаток означает «без поиска».
func sanitizeSearch(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

func strPtr(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
