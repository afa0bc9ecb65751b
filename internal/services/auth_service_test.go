package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"dailydigest/internal/models"
	"dailydigest/internal/utils"
)

// Мок-репозиторий (заглушка)
type mockUserRepo struct {
	users      map[string]*models.User
	lastUser   *models.User
	savedToken string
}

func (m *mockUserRepo) IsUsernameTaken(_ context.Context, username string) (bool, error) {
	_, exists := m.users[username]
	return exists, nil
}

func (m *mockUserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	m.users[user.Username] = user
	m.lastUser = user
	return nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockUserRepo) SaveRefreshToken(_ context.Context, userID int64, token string) error {
	m.savedToken = token
	return nil
}
func (m *mockUserRepo) IsRefreshTokenValid(_ context.Context, userID int64, token string) (bool, error) {
	return token == m.savedToken && token != "", nil
}
func (m *mockUserRepo) DeleteRefreshToken(_ context.Context, userID int64, token string) error {
	m.savedToken = ""
	return nil
}

func TestRegisterUser(t *testing.T) {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	service := NewAuthService(repo)

	user := &models.User{
		Username: "  reader42  ",
		Email:    "reader@example.com",
	}

	err := service.RegisterUser(context.Background(), user, "secret")
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	if repo.lastUser == nil || repo.lastUser.PasswordHash == "" {
		t.Fatal("пароль не захеширован или пользователь не сохранён")
	}
	if repo.lastUser.Username != "reader42" {
		t.Fatalf("имя не обрезано: %q", repo.lastUser.Username)
	}
	if repo.lastUser.Role != "user" {
		t.Fatalf("новому пользователю должна назначаться роль user, получено %q", repo.lastUser.Role)
	}
}

func TestRegisterUser_Validation(t *testing.T) {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	service := NewAuthService(repo)

	err := service.RegisterUser(context.Background(), &models.User{Username: "x"}, "")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("ожидалась ErrValidation, получено %v", err)
	}
}

func TestRegisterUser_Duplicate(t *testing.T) {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	service := NewAuthService(repo)

	repo.users["reader42"] = &models.User{Username: "reader42", Email: "reader@example.com"}

	err := service.RegisterUser(context.Background(), &models.User{
		Username: "reader42",
		Email:    "other@example.com",
	}, "secret")
	if err == nil {
		t.Fatal("ожидалась ошибка при занятом имени пользователя")
	}
}

func TestLoginUser_Success(t *testing.T) {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	service := NewAuthService(repo)

	// создаём пользователя вручную
	hashed, _ := utils.HashPassword("secret")
	repo.users["reader42"] = &models.User{
		ID:           1,
		Username:     "reader42",
		PasswordHash: hashed,
		Role:         "user",
	}

	access, refresh, err := service.LoginUser(context.Background(), "reader42", "secret", "mysecret", 15*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	if access == "" || refresh == "" {
		t.Fatal("токены не сгенерированы")
	}
	if repo.savedToken != refresh {
		t.Fatal("refresh-токен не сохранён в репозитории")
	}
}

func TestLoginUser_Fail(t *testing.T) {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	service := NewAuthService(repo)

	_, _, err := service.LoginUser(context.Background(), "unknown", "pass", "secret", time.Minute, time.Hour)
	if err == nil {
		t.Fatal("ожидалась ошибка при логине несуществующего пользователя")
	}

	hashed, _ := utils.HashPassword("secret")
	repo.users["reader42"] = &models.User{ID: 1, Username: "reader42", PasswordHash: hashed}

	_, _, err = service.LoginUser(context.Background(), "reader42", "wrong", "secret", time.Minute, time.Hour)
	if err == nil {
		t.Fatal("ожидалась ошибка при неверном пароле")
	}
}

func TestLogout_InvalidatesRefreshToken(t *testing.T) {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	service := NewAuthService(repo)

	hashed, _ := utils.HashPassword("secret")
	repo.users["reader42"] = &models.User{ID: 1, Username: "reader42", PasswordHash: hashed}

	_, refresh, err := service.LoginUser(context.Background(), "reader42", "secret", "mysecret", time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}

	ok, _ := service.ValidateRefreshToken(context.Background(), 1, refresh)
	if !ok {
		t.Fatal("токен должен быть валиден до выхода")
	}

	if err := service.Logout(context.Background(), 1, refresh); err != nil {
		t.Fatalf("ошибка выхода: %v", err)
	}

	ok, _ = service.ValidateRefreshToken(context.Background(), 1, refresh)
	if ok {
		t.Fatal("токен должен быть отозван после выхода")
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	repo := &mockUserRepo{users: make(map[string]*models.User)}
	service := NewAuthService(repo)

	if _, err := service.GetUserByID(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ожидалась ErrNotFound, получено %v", err)
	}
}
