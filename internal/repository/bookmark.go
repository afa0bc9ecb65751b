package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookmarkRepo interface {
	Add(ctx context.Context, userID int64, articleID string) (bool, error)
	Remove(ctx context.Context, userID int64, articleID string) (bool, error)
}

type bookmarkRepo struct{ db *pgxpool.Pool }

func NewBookmarkRepo(db *pgxpool.Pool) BookmarkRepo { return &bookmarkRepo{db: db} }

// Add возвращает false, если закладка уже была: уникальность пары
// (user_id, article_id) обеспечивает constraint, а не проверка в коде.
func (r *bookmarkRepo) Add(ctx context.Context, userID int64, articleID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO bookmarks (user_id, article_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, article_id) DO NOTHING
	`, userID, articleID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *bookmarkRepo) Remove(ctx context.Context, userID int64, articleID string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND article_id = $2`,
		userID, articleID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
