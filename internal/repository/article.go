package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"dailydigest/internal/models"
)

type ArticleRepo interface {
	// Insert — чистая вставка; при конфликте по url возвращает ошибку 23505.
	Insert(ctx context.Context, a *models.Article) (*models.Article, error)
	// Upsert — атомарный INSERT ... ON CONFLICT (url) DO UPDATE.
	// Второе значение — true, если статья была создана, а не обновлена.
	Upsert(ctx context.Context, a *models.Article) (*models.Article, bool, error)
	List(ctx context.Context, f models.ArticleFilter) ([]*models.Article, int, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	Categories(ctx context.Context) ([]string, error)
	ListBookmarked(ctx context.Context, userID int64, limit, offset int) ([]*models.Article, int, error)
}

type articleRepo struct{ db *pgxpool.Pool }

func NewArticleRepo(db *pgxpool.Pool) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `
	a.id, a.title, a.description, a.content, a.image_url, a.source, a.category,
	a.author, a.url, a.published_at, a.created_at, a.updated_at,
	(SELECT COUNT(*) FROM likes l WHERE l.article_id = a.id) AS like_count,
	(SELECT COUNT(*) FROM bookmarks b WHERE b.article_id = a.id) AS bookmark_count
`

func (r *articleRepo) Insert(ctx context.Context, a *models.Article) (*models.Article, error) {
	const q = `
		INSERT INTO articles (id, title, description, content, image_url, source, category, author, url, published_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, title, description, content, image_url, source, category,
		          author, url, published_at, created_at, updated_at
	`
	var out models.Article
	err := r.db.QueryRow(ctx, q,
		uuid.NewString(),
		a.Title, a.Description, a.Content, a.ImageURL,
		a.Source, a.Category, a.Author, a.URL, a.PublishedAt,
	).Scan(
		&out.ID, &out.Title, &out.Description, &out.Content, &out.ImageURL,
		&out.Source, &out.Category, &out.Author, &out.URL,
		&out.PublishedAt, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *articleRepo) Upsert(ctx context.Context, a *models.Article) (*models.Article, bool, error) {
	// id и created_at существующей записи сохраняются, обновляется остальное.
	// (xmax = 0) — была ли строка именно вставлена.
	const q = `
		INSERT INTO articles (id, title, description, content, image_url, source, category, author, url, published_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (url) DO UPDATE SET
			title        = EXCLUDED.title,
			description  = EXCLUDED.description,
			content      = EXCLUDED.content,
			image_url    = EXCLUDED.image_url,
			source       = EXCLUDED.source,
			category     = EXCLUDED.category,
			author       = EXCLUDED.author,
			published_at = EXCLUDED.published_at,
			updated_at   = NOW()
		RETURNING id, title, description, content, image_url, source, category,
		          author, url, published_at, created_at, updated_at, (xmax = 0) AS created
	`
	var out models.Article
	var created bool
	err := r.db.QueryRow(ctx, q,
		uuid.NewString(),
		a.Title, a.Description, a.Content, a.ImageURL,
		a.Source, a.Category, a.Author, a.URL, a.PublishedAt,
	).Scan(
		&out.ID, &out.Title, &out.Description, &out.Content, &out.ImageURL,
		&out.Source, &out.Category, &out.Author, &out.URL,
		&out.PublishedAt, &out.CreatedAt, &out.UpdatedAt, &created,
	)
	if err != nil {
		return nil, false, err
	}
	return &out, created, nil
}

func (r *articleRepo) List(ctx context.Context, f models.ArticleFilter) ([]*models.Article, int, error) {
	where := []string{}
	args := []interface{}{}
	i := 1

	if f.Category != "" {
		where = append(where, fmt.Sprintf("a.category = $%d", i))
		args = append(args, f.Category)
		i++
	}
	if f.Search != "" {
		// параметризованный containment-поиск, спецсимволы LIKE экранируются
		where = append(where, fmt.Sprintf(
			`(a.title ILIKE '%%' || $%d || '%%' ESCAPE '\' OR a.description ILIKE '%%' || $%d || '%%' ESCAPE '\')`,
			i, i,
		))
		args = append(args, escapeLike(f.Search))
		i++
	}

	cond := ""
	if len(where) > 0 {
		cond = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM articles a"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sql := "SELECT " + articleColumns + " FROM articles a" + cond +
		fmt.Sprintf(" ORDER BY a.published_at DESC, a.created_at ASC LIMIT $%d OFFSET $%d", i, i+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list, err := scanArticles(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	q := "SELECT " + articleColumns + " FROM articles a WHERE a.id = $1"
	var a models.Article
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.Content, &a.ImageURL,
		&a.Source, &a.Category, &a.Author, &a.URL,
		&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
		&a.LikeCount, &a.BookmarkCount,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *articleRepo) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT category FROM articles ORDER BY category ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *articleRepo) ListBookmarked(ctx context.Context, userID int64, limit, offset int) ([]*models.Article, int, error) {
	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookmarks WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := "SELECT " + articleColumns + `
		FROM articles a
		JOIN bookmarks ub ON ub.article_id = a.id
		WHERE ub.user_id = $1
		ORDER BY ub.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, q, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list, err := scanArticles(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func scanArticles(rows rowScanner) ([]*models.Article, error) {
	var list []*models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.Content, &a.ImageURL,
			&a.Source, &a.Category, &a.Author, &a.URL,
			&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
			&a.LikeCount, &a.BookmarkCount,
		); err != nil {
			return nil, err
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// escapeLike экранирует спецсимволы LIKE, чтобы поисковая строка
// сопоставлялась буквально.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
