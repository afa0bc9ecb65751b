package models

import "time"

type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Content     *string    `json:"content,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	Source      string     `json:"source"`
	Category    string     `json:"category"`
	Author      *string    `json:"author,omitempty"`
	URL         string     `json:"url"`
	PublishedAt time.Time  `json:"publishedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`

	// Производные счётчики, заполняются только на чтении
	LikeCount     int `json:"likeCount"`
	BookmarkCount int `json:"bookmarkCount"`
}

// swagger:model IngestArticleRequest
type IngestArticleRequest struct {
	Title       string `json:"title"       example:"RBA holds rates steady"`
	Description string `json:"description" example:"Короткое описание для превью"`
	Content     string `json:"content"     example:"Полный текст или саммари"`
	ImageURL    string `json:"imageUrl"    example:"/images/rba.jpg"`
	Source      string `json:"source"      example:"AFR"`
	Category    string `json:"category"    example:"business"`
	Author      string `json:"author"      example:"J. Smith"`
	PublishedAt string `json:"publishedAt" example:"2026-01-31T09:00:00Z"`
	URL         string `json:"url"         example:"https://www.afr.com/policy/rba-holds-rates-20260131-p5fabc"`
}

// ArticleFilter — типизированный фильтр списка: пустые поля не сужают выборку.
type ArticleFilter struct {
	Category string // уже каноническое написание; "" — без фильтра
	Search   string // уже очищенная строка; "" — без поиска
	Limit    int
	Offset   int
}

// ArticleListResponse — пагинационный конверт. Имена полей — контракт
// мобильного клиента, менять нельзя.
type ArticleListResponse struct {
	Items      []*Article `json:"items"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}
