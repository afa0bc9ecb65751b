package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" example:"reader42"`
	Email    string `json:"email"    example:"reader@example.com"`
	Password string `json:"password" example:"secret"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" example:"reader42"`
	Password string `json:"password" example:"secret"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
