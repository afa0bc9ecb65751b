package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"dailydigest/internal/logger"
	"dailydigest/internal/models"
	"dailydigest/internal/services"
	helpers "dailydigest/internal/utils/helpers"
)

type ArticleHandler struct {
	svc services.ArticleService
}

func NewArticleHandler(svc services.ArticleService) *ArticleHandler {
	return &ArticleHandler{svc: svc}
}

// Ingest godoc
// @Summary Инжест статьи (вебхук скрейпера)
// @Description Валидирует, нормализует рубрику и картинку, создаёт или обновляет статью по каноническому url.
// @Tags articles
// @Accept json
// @Produce json
// @Param x-webhook-secret header string true "Секрет вебхука"
// @Param input body models.IngestArticleRequest true "Данные статьи"
// @Success 201 {object} models.Article
// @Success 200 {object} models.Article "Статья с таким url обновлена (политика update)"
// @Failure 400 {object} helpers.Response
// @Failure 401 {string} string "Неверный секрет"
// @Failure 409 {object} helpers.Response "Дубликат url (политика reject)"
// @Router /api/articles [post]
func (h *ArticleHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.IngestArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("Невалидный JSON при инжесте статьи", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	article, created, err := h.svc.Ingest(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	helpers.Raw(w, status, article)
}

// List godoc
// @Summary Список статей с пагинацией, фильтром по рубрике и поиском
// @Tags articles
// @Produce json
// @Param page query int false "Номер страницы (с 1)"
// @Param limit query int false "Размер страницы (по умолчанию 20)"
// @Param category query string false "Рубрика; all — без фильтра"
// @Param search query string false "Подстрока в title/description, без учёта регистра"
// @Success 200 {object} models.ArticleListResponse
// @Router /api/articles [get]
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	resp, err := h.svc.List(r.Context(), services.ListParams{
		Page:     page,
		PageSize: limit,
		Category: q.Get("category"),
		Search:   q.Get("search"),
	})
	if err != nil {
		respondError(w, err)
		return
	}

	// конверт пагинации отдаётся как есть — имена полей это контракт клиента
	helpers.Raw(w, http.StatusOK, resp)
}

// Categories godoc
// @Summary Рубрики, встречающиеся среди сохранённых статей
// @Tags articles
// @Produce json
// @Success 200 {array} string
// @Router /api/articles/categories [get]
func (h *ArticleHandler) Categories(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Categories(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if list == nil {
		list = []string{}
	}
	helpers.Raw(w, http.StatusOK, list)
}

// GetByID godoc
// @Summary Получить статью по ID
// @Tags articles
// @Produce json
// @Param id path string true "UUID статьи"
// @Success 200 {object} models.Article
// @Failure 400 {object} helpers.Response "Некорректный идентификатор"
// @Failure 404 {object} helpers.Response
// @Router /api/articles/{id} [get]
func (h *ArticleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	article, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	helpers.Raw(w, http.StatusOK, article)
}
