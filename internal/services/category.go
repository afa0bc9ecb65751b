package services

import (
	"regexp"
	"strings"

	"dailydigest/internal/models"
)

// defaultCategory — фолбэк для статей без распознанной рубрики.
// Исторически лента финансовая, поэтому именно Business, а не «Прочее».
const defaultCategory = "Business"

// Порядок пар важен: пересекающиеся ключевые слова разрешаются в пользу
// более ранней рубрики (Technology проверяется раньше Business и т.д.).
// Слова сопоставляются целиком, иначе «ai» находился бы внутри «against».
var categoryMatchers = []struct {
	category string
	re       *regexp.Regexp
}{
	{"Technology", keywordRegexp("ai", "machine learning", "chip", "apple", "google", "microsoft", "cyber", "software", "startup", "tech", "quantum")},
	{"Business", keywordRegexp("stock", "market", "asx", "profit", "earnings", "rates", "bank", "economy", "inflation", "company", "merger")},
	{"Sports", keywordRegexp("match", "league", "tournament", "championship", "olympic", "soccer", "football", "cricket", "tennis")},
	{"Health", keywordRegexp("health", "hospital", "cancer", "vaccine", "disease", "medical", "wellbeing")},
	{"Science", keywordRegexp("science", "research", "space", "telescope", "climate", "biology", "physics")},
	{"Entertainment", keywordRegexp("movie", "music", "streaming", "celebrity", "entertainment")},
	{"Politics", keywordRegexp("election", "government", "parliament", "policy", "diplomatic", "minister", "politics")},
}

func keywordRegexp(keywords ...string) *regexp.Regexp {
	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
}

// NormalizeCategory приводит свободную метку рубрики к канонической.
// Сначала точное совпадение со списком (без учёта регистра), затем
// эвристика по ключевым словам в heuristicText (обычно title+description),
// иначе defaultCategory. Чистая функция, всегда возвращает рубрику
// из models.Categories.
func NormalizeCategory(label, heuristicText string) string {
	if c, ok := models.CanonicalCategory(label); ok {
		return c
	}

	text := strings.ToLower(heuristicText)
	for _, m := range categoryMatchers {
		if m.re.MatchString(text) {
			return m.category
		}
	}

	return defaultCategory
}
