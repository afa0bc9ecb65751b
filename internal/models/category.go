package models

import "strings"

// Categories — закрытый список рубрик. Порядок фиксирован: он же задаёт
// приоритет эвристической классификации в services.NormalizeCategory.
var Categories = []string{
	"Technology",
	"Business",
	"Sports",
	"Health",
	"Science",
	"Entertainment",
	"Politics",
	"World",
}

// CategoryAll — сентинел в фильтре списка: «все рубрики».
const CategoryAll = "all"

// таблица lower → каноническое написание, строится один раз
var categoryIndex = func() map[string]string {
	idx := make(map[string]string, len(Categories))
	for _, c := range Categories {
		idx[strings.ToLower(c)] = c
	}
	return idx
}()

// CanonicalCategory возвращает каноническое написание рубрики,
// если label (без учёта регистра и пробелов по краям) есть в списке.
func CanonicalCategory(label string) (string, bool) {
	c, ok := categoryIndex[strings.ToLower(strings.TrimSpace(label))]
	return c, ok
}
