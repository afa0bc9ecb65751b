package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LikeRepo interface {
	Add(ctx context.Context, userID int64, articleID string) (bool, error)
	Remove(ctx context.Context, userID int64, articleID string) (bool, error)
}

type likeRepo struct{ db *pgxpool.Pool }

func NewLikeRepo(db *pgxpool.Pool) LikeRepo { return &likeRepo{db: db} }

func (r *likeRepo) Add(ctx context.Context, userID int64, articleID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO likes (user_id, article_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, article_id) DO NOTHING
	`, userID, articleID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *likeRepo) Remove(ctx context.Context, userID int64, articleID string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND article_id = $2`,
		userID, articleID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
