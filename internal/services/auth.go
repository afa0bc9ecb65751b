package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"dailydigest/internal/logger"
	"dailydigest/internal/models"
	"dailydigest/internal/repository"
	"dailydigest/internal/utils"
)

type AuthService struct {
	repo repository.UserRepo
}

func NewAuthService(repo repository.UserRepo) *AuthService {
	return &AuthService{repo: repo}
}

func (s *AuthService) RegisterUser(ctx context.Context, input *models.User, plainPassword string) error {
	log := logger.WithCtx(ctx)
	log.Info("Регистрация пользователя (service)", zap.String("username", input.Username))

	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if input.Username == "" || input.Email == "" || plainPassword == "" {
		return fmt.Errorf("%w: имя, email и пароль обязательны", ErrValidation)
	}

	if exists, err := s.repo.IsUsernameTaken(ctx, input.Username); exists || err != nil {
		if err != nil {
			log.Error("Ошибка проверки username", zap.Error(err))
			return err
		}
		return errors.New("имя пользователя уже занято")
	}
	if exists, err := s.repo.IsEmailTaken(ctx, input.Email); exists || err != nil {
		if err != nil {
			log.Error("Ошибка проверки email", zap.Error(err))
			return err
		}
		return errors.New("адрес электронной почты уже зарегистрирован")
	}

	hashed, err := utils.HashPassword(plainPassword)
	if err != nil {
		log.Error("Ошибка хеширования пароля", zap.Error(err))
		return err
	}

	input.PasswordHash = hashed
	input.Role = "user"

	if err := s.repo.CreateUser(ctx, input); err != nil {
		log.Error("Ошибка создания пользователя", zap.Error(err))
		return err
	}
	log.Info("Пользователь зарегистрирован (service)", zap.String("username", input.Username))
	return nil
}

func (s *AuthService) LoginUser(
	ctx context.Context,
	username, password, jwtSecret string,
	accessTTL, refreshTTL time.Duration,
) (string, string, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа (service)", zap.String("username", username))

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		log.Warn("Пользователь не найден (service)", zap.String("username", username), zap.Error(err))
		return "", "", errors.New("неверное имя пользователя или пароль")
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("username", username))
		return "", "", errors.New("неверное имя пользователя или пароль")
	}

	accessToken, err := utils.GenerateToken(jwtSecret, user.ID, user.Role, accessTTL, "access")
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", "", err
	}

	refreshToken, err := utils.GenerateToken(jwtSecret, user.ID, user.Role, refreshTTL, "refresh")
	if err != nil {
		log.Error("Ошибка генерации refresh-токена", zap.Error(err))
		return "", "", err
	}

	if err := s.repo.SaveRefreshToken(ctx, user.ID, refreshToken); err != nil {
		log.Error("Ошибка сохранения refresh-токена", zap.Error(err))
		return "", "", err
	}

	log.Info("Вход выполнен (service)", zap.String("username", username))
	return accessToken, refreshToken, nil
}

func (s *AuthService) ValidateRefreshToken(ctx context.Context, userID int64, token string) (bool, error) {
	logger.WithCtx(ctx).Debug("Проверка refresh-токена (service)", zap.Int64("uid", userID))
	return s.repo.IsRefreshTokenValid(ctx, userID, token)
}

func (s *AuthService) SaveRefreshToken(ctx context.Context, userID int64, token string) error {
	return s.repo.SaveRefreshToken(ctx, userID, token)
}

func (s *AuthService) Logout(ctx context.Context, userID int64, token string) error {
	logger.WithCtx(ctx).Info("Выход пользователя (service)", zap.Int64("uid", userID))
	return s.repo.DeleteRefreshToken(ctx, userID, token)
}

func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Warn("Пользователь не найден по ID", zap.Int64("uid", id), zap.Error(err))
		return nil, ErrNotFound
	}
	return u, nil
}
