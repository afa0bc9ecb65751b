package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"dailydigest/internal/config"
	"dailydigest/internal/logger"
	"dailydigest/internal/models"
	"dailydigest/internal/reqctx"
	"dailydigest/internal/services"
	"dailydigest/internal/utils"
	helpers "dailydigest/internal/utils/helpers"
)

type AuthHandler struct {
	svc *services.AuthService
	cfg *config.Config
}

func NewAuthHandler(svc *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: svc, cfg: cfg}
}

func (h *AuthHandler) ttl() (access, refresh time.Duration) {
	access, err := time.ParseDuration(h.cfg.AccessTokenTTL)
	if err != nil {
		access = 15 * time.Minute
	}
	refresh, err = time.ParseDuration(h.cfg.RefreshTokenTTL)
	if err != nil {
		refresh = 720 * time.Hour
	}
	return access, refresh
}

// Register godoc
// @Summary Регистрация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.RegisterRequest true "Данные регистрации"
// @Success 201 {string} string "Пользователь создан"
// @Failure 400 {object} helpers.Response
// @Router /api/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при регистрации", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	user := &models.User{Username: req.Username, Email: req.Email}
	if err := h.svc.RegisterUser(r.Context(), user, req.Password); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	helpers.JSON(w, http.StatusCreated, "Пользователь создан")
}

// Login godoc
// @Summary Вход, выдача пары токенов
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Логин и пароль"
// @Success 200 {object} models.TokenPair
// @Failure 401 {object} helpers.Response
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при входе", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	accessTTL, refreshTTL := h.ttl()
	access, refresh, loginErr := h.svc.LoginUser(
		r.Context(), req.Username, req.Password,
		h.cfg.JWTSecret, accessTTL, refreshTTL,
	)
	if loginErr != nil {
		helpers.Error(w, http.StatusUnauthorized, loginErr.Error())
		return
	}

	helpers.JSON(w, http.StatusOK, models.TokenPair{AccessToken: access, RefreshToken: refresh})
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh godoc
// @Summary Обмен refresh-токена на новую пару
// @Tags auth
// @Accept json
// @Produce json
// @Param input body refreshRequest true "Refresh-токен"
// @Success 200 {object} models.TokenPair
// @Failure 401 {object} helpers.Response
// @Router /api/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(req.RefreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		log.Warn("Refresh: неверный токен", zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, "Неверный или просроченный токен")
		return
	}

	userIDf, ok1 := claims["user_id"].(float64)
	role, ok2 := claims["role"].(string)
	tokenType, ok3 := claims["token_type"].(string)
	if !ok1 || !ok2 || !ok3 || tokenType != "refresh" {
		helpers.Error(w, http.StatusUnauthorized, "Недопустимый payload")
		return
	}
	userID := int64(userIDf)

	valid, err := h.svc.ValidateRefreshToken(r.Context(), userID, req.RefreshToken)
	if err != nil || !valid {
		log.Warn("Refresh: токен не найден в хранилище", zap.Int64("uid", userID))
		helpers.Error(w, http.StatusUnauthorized, "Неверный или просроченный токен")
		return
	}

	// старый refresh отзываем, выдаём новую пару
	_ = h.svc.Logout(r.Context(), userID, req.RefreshToken)

	accessTTL, refreshTTL := h.ttl()
	access, err := utils.GenerateToken(h.cfg.JWTSecret, userID, role, accessTTL, "access")
	if err != nil {
		respondError(w, err)
		return
	}
	refresh, err := utils.GenerateToken(h.cfg.JWTSecret, userID, role, refreshTTL, "refresh")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.SaveRefreshToken(r.Context(), userID, refresh); err != nil {
		respondError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, models.TokenPair{AccessToken: access, RefreshToken: refresh})
}

type logoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Logout godoc
// @Summary Выход: отзыв refresh-токена
// @Tags auth
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body logoutRequest true "Refresh-токен"
// @Success 200 {string} string "Выход выполнен"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	var req logoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	if err := h.svc.Logout(r.Context(), userID, req.RefreshToken); err != nil {
		respondError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "Выход выполнен")
}

// Profile godoc
// @Summary Текущий пользователь
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} helpers.Response
// @Router /api/profile [get]
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	user, err := h.svc.GetUserByID(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}
