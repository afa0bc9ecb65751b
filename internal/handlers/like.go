package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"dailydigest/internal/reqctx"
	"dailydigest/internal/services"
	helpers "dailydigest/internal/utils/helpers"
)

type LikeHandler struct {
	svc *services.LikeService
}

func NewLikeHandler(svc *services.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// Add godoc
// @Summary Поставить лайк статье
// @Tags likes
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "UUID статьи"
// @Success 201 {string} string "Лайк поставлен"
// @Success 200 {string} string "Лайк уже стоял"
// @Failure 404 {object} helpers.Response
// @Router /api/articles/{id}/like [post]
func (h *LikeHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	added, err := h.svc.Add(r.Context(), userID, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	if added {
		helpers.JSON(w, http.StatusCreated, "Лайк поставлен")
		return
	}
	helpers.JSON(w, http.StatusOK, "Лайк уже стоял")
}

// Remove godoc
// @Summary Снять лайк
// @Tags likes
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "UUID статьи"
// @Success 200 {string} string "Лайк снят"
// @Failure 404 {object} helpers.Response
// @Router /api/articles/{id}/like [delete]
func (h *LikeHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	if err := h.svc.Remove(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "Лайк снят")
}
