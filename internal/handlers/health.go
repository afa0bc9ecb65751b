package handlers

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"dailydigest/internal/logger"
	helpers "dailydigest/internal/utils/helpers"
)

type HealthHandler struct {
	db *pgxpool.Pool
}

func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health godoc
// @Summary Проверка живости сервиса и БД
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} helpers.Response
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		logger.WithCtx(r.Context()).Error("Health: БД недоступна", zap.Error(err))
		helpers.Error(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	helpers.Raw(w, http.StatusOK, map[string]string{"status": "ok"})
}
