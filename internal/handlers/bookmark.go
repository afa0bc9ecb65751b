package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dailydigest/internal/reqctx"
	"dailydigest/internal/services"
	helpers "dailydigest/internal/utils/helpers"
)

type BookmarkHandler struct {
	svc        *services.BookmarkService
	articleSvc services.ArticleService
}

func NewBookmarkHandler(svc *services.BookmarkService, articleSvc services.ArticleService) *BookmarkHandler {
	return &BookmarkHandler{svc: svc, articleSvc: articleSvc}
}

// Add godoc
// @Summary Добавить статью в закладки
// @Tags bookmarks
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "UUID статьи"
// @Success 201 {string} string "Закладка добавлена"
// @Success 200 {string} string "Закладка уже была"
// @Failure 404 {object} helpers.Response
// @Router /api/articles/{id}/bookmark [post]
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
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
		helpers.JSON(w, http.StatusCreated, "Закладка добавлена")
		return
	}
	helpers.JSON(w, http.StatusOK, "Закладка уже была")
}

// Remove godoc
// @Summary Убрать статью из закладок
// @Tags bookmarks
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "UUID статьи"
// @Success 200 {string} string "Закладка удалена"
// @Failure 404 {object} helpers.Response
// @Router /api/articles/{id}/bookmark [delete]
func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	if err := h.svc.Remove(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "Закладка удалена")
}

// List godoc
// @Summary Закладки текущего пользователя
// @Tags bookmarks
// @Security ApiKeyAuth
// @Produce json
// @Param page query int false "Номер страницы (с 1)"
// @Param limit query int false "Размер страницы (по умолчанию 20)"
// @Success 200 {object} models.ArticleListResponse
// @Router /api/bookmarks [get]
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := reqctx.GetUserID(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	resp, err := h.articleSvc.Bookmarked(r.Context(), userID, page, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	helpers.Raw(w, http.StatusOK, resp)
}
