package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"dailydigest/internal/models"
)

type UserRepo interface {
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	SaveRefreshToken(ctx context.Context, userID int64, token string) error
	IsRefreshTokenValid(ctx context.Context, userID int64, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID int64, token string) error
}

type userRepo struct{ db *pgxpool.Pool }

func NewUserRepo(db *pgxpool.Pool) UserRepo { return &userRepo{db: db} }

func (r *userRepo) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username,
	).Scan(&ok)
	return ok, err
}

func (r *userRepo) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&ok)
	return ok, err
}

func (r *userRepo) CreateUser(ctx context.Context, user *models.User) error {
	const q = `
		INSERT INTO users (username, email, password_hash, role)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(ctx, q,
		user.Username, user.Email, user.PasswordHash, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const q = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users WHERE username = $1
	`
	var u models.User
	if err := r.db.QueryRow(ctx, q, username).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const q = `
		SELECT id, username, email, password_hash, role, created_at, updated_at
		FROM users WHERE id = $1
	`
	var u models.User
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) SaveRefreshToken(ctx context.Context, userID int64, token string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO refresh_tokens (user_id, token) VALUES ($1, $2)`,
		userID, token,
	)
	return err
}

func (r *userRepo) IsRefreshTokenValid(ctx context.Context, userID int64, token string) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM refresh_tokens WHERE user_id = $1 AND token = $2)`,
		userID, token,
	).Scan(&ok)
	return ok, err
}

func (r *userRepo) DeleteRefreshToken(ctx context.Context, userID int64, token string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM refresh_tokens WHERE user_id = $1 AND token = $2`,
		userID, token,
	)
	return err
}
