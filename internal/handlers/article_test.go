package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"dailydigest/internal/models"
	"dailydigest/internal/services"
)

// Мок-сервис (заглушка)
type mockArticleService struct {
	ingestArticle *models.Article
	ingestCreated bool
	ingestErr     error

	listResp   *models.ArticleListResponse
	lastParams services.ListParams

	article    *models.Article
	getErr     error
	categories []string
}

func (m *mockArticleService) Ingest(_ context.Context, _ models.IngestArticleRequest) (*models.Article, bool, error) {
	return m.ingestArticle, m.ingestCreated, m.ingestErr
}

func (m *mockArticleService) List(_ context.Context, p services.ListParams) (*models.ArticleListResponse, error) {
	m.lastParams = p
	return m.listResp, nil
}

func (m *mockArticleService) GetByID(_ context.Context, _ string) (*models.Article, error) {
	return m.article, m.getErr
}

func (m *mockArticleService) Categories(_ context.Context) ([]string, error) {
	return m.categories, nil
}

func (m *mockArticleService) Bookmarked(_ context.Context, _ int64, page, pageSize int) (*models.ArticleListResponse, error) {
	return m.listResp, nil
}

func TestIngestHandler_BadJSON(t *testing.T) {
	h := NewArticleHandler(&mockArticleService{})

	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader("{не json"))
	w := httptest.NewRecorder()

	h.Ingest(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("ожидался 400, получен %d", w.Code)
	}
}

func TestIngestHandler_CreatedVsUpdated(t *testing.T) {
	body := `{"title":"T","source":"AFR","url":"https://www.afr.com/a"}`

	svc := &mockArticleService{
		ingestArticle: &models.Article{ID: "5f0c1c52-0b4e-4a8e-9b1a-111111111111", Title: "T"},
		ingestCreated: true,
	}
	h := NewArticleHandler(svc)

	w := httptest.NewRecorder()
	h.Ingest(w, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("новая статья: ожидался 201, получен %d", w.Code)
	}

	svc.ingestCreated = false
	w = httptest.NewRecorder()
	h.Ingest(w, httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("обновление по url: ожидался 200, получен %d", w.Code)
	}
}

func TestIngestHandler_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{services.ErrValidation, http.StatusBadRequest},
		{services.ErrDuplicate, http.StatusConflict},
	}

	for _, c := range cases {
		h := NewArticleHandler(&mockArticleService{ingestErr: c.err})
		w := httptest.NewRecorder()
		h.Ingest(w, httptest.NewRequest(http.MethodPost, "/api/articles",
			strings.NewReader(`{"title":"T","source":"AFR","url":"https://www.afr.com/a"}`)))
		if w.Code != c.code {
			t.Errorf("%v: ожидался %d, получен %d", c.err, c.code, w.Code)
		}
	}
}

func TestListHandler_EnvelopeShape(t *testing.T) {
	svc := &mockArticleService{
		listResp: &models.ArticleListResponse{
			Items:      []*models.Article{},
			Total:      0,
			Page:       2,
			PageSize:   10,
			TotalPages: 0,
		},
	}
	h := NewArticleHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/articles?page=2&limit=10&category=all&search=apple", nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d", w.Code)
	}
	if svc.lastParams.Page != 2 || svc.lastParams.PageSize != 10 ||
		svc.lastParams.Category != "all" || svc.lastParams.Search != "apple" {
		t.Fatalf("query-параметры переданы неверно: %+v", svc.lastParams)
	}

	var got map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("невалидный JSON в ответе: %v", err)
	}
	for _, key := range []string{"items", "total", "page", "pageSize", "totalPages"} {
		if _, ok := got[key]; !ok {
			t.Errorf("в конверте нет поля %q", key)
		}
	}
	if string(got["items"]) != "[]" {
		t.Errorf("пустой items должен сериализоваться как [], получено %s", got["items"])
	}
}

func TestListHandler_NonNumericPageIgnored(t *testing.T) {
	svc := &mockArticleService{listResp: &models.ArticleListResponse{Items: []*models.Article{}}}
	h := NewArticleHandler(svc)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/articles?page=abc&limit=-5", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d", w.Code)
	}
	// мусорные значения уходят сервису нулями, он подставит дефолты
	if svc.lastParams.Page != 0 || svc.lastParams.PageSize != -5 {
		t.Fatalf("параметры: %+v", svc.lastParams)
	}
}

func TestGetByIDHandler_NotFound(t *testing.T) {
	h := NewArticleHandler(&mockArticleService{getErr: services.ErrNotFound})

	router := mux.NewRouter()
	router.HandleFunc("/api/articles/{id}", h.GetByID).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, "/api/articles/5f0c1c52-0b4e-4a8e-9b1a-999999999999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("ожидался 404, получен %d", w.Code)
	}
}

func TestCategoriesHandler_NeverNull(t *testing.T) {
	h := NewArticleHandler(&mockArticleService{categories: nil})

	w := httptest.NewRecorder()
	h.Categories(w, httptest.NewRequest(http.MethodGet, "/api/articles/categories", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Fatalf("пустой список рубрик должен быть [], получено %s", w.Body.String())
	}
}
