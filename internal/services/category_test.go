package services

import (
	"testing"

	"dailydigest/internal/models"
)

func TestNormalizeCategory_ExactMatchWinsOverHeuristics(t *testing.T) {
	// точное совпадение метки важнее любых ключевых слов в тексте
	got := NormalizeCategory("sports", "new vaccine shows promise against disease")
	if got != "Sports" {
		t.Fatalf("ожидалась Sports, получено %q", got)
	}
}

func TestNormalizeCategory_ExactMatchCanonicalCasing(t *testing.T) {
	cases := map[string]string{
		"technology":    "Technology",
		"TECHNOLOGY":    "Technology",
		"  Business  ":  "Business",
		"eNtErTaInMeNt": "Entertainment",
	}
	for label, want := range cases {
		if got := NormalizeCategory(label, ""); got != want {
			t.Errorf("NormalizeCategory(%q): ожидалось %q, получено %q", label, want, got)
		}
	}
}

func TestNormalizeCategory_Heuristics(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"New vaccine shows promise against disease", "Health"},
		{"Telescope spots distant galaxy", "Science"},
		{"Parliament votes on new election law", "Politics"},
		{"Streaming platform signs celebrity deal", "Entertainment"},
		{"Local league championship final this weekend", "Sports"},
		{"Central bank holds rates amid inflation fears", "Business"},
		{"Startup ships new AI chip", "Technology"},
	}
	for _, c := range cases {
		if got := NormalizeCategory("", c.text); got != c.want {
			t.Errorf("NormalizeCategory(\"\", %q): ожидалось %q, получено %q", c.text, c.want, got)
		}
	}
}

func TestNormalizeCategory_PriorityOrder(t *testing.T) {
	// текст содержит ключи и Technology, и Business —
	// побеждает более ранняя рубрика
	got := NormalizeCategory("", "google shares jump as stock market rallies")
	if got != "Technology" {
		t.Fatalf("ожидалась Technology (приоритет выше Business), получено %q", got)
	}
}

func TestNormalizeCategory_DefaultFallback(t *testing.T) {
	got := NormalizeCategory("", "no matching keywords here at all")
	if got != "Business" {
		t.Fatalf("ожидалась Business (фолбэк), получено %q", got)
	}
}

func TestNormalizeCategory_AlwaysInCatalog(t *testing.T) {
	inputs := []struct{ label, text string }{
		{"", ""},
		{"nonsense", "nonsense"},
		{"World", "anything"},
		{"politics", ""},
		{"", "olympic cricket physics"},
	}

	catalog := map[string]bool{}
	for _, c := range models.Categories {
		catalog[c] = true
	}

	for _, in := range inputs {
		got := NormalizeCategory(in.label, in.text)
		if !catalog[got] {
			t.Errorf("NormalizeCategory(%q, %q) = %q — вне каталога", in.label, in.text, got)
		}
	}
}

func TestNormalizeCategory_Pure(t *testing.T) {
	a := NormalizeCategory("tech", "ai chips everywhere")
	b := NormalizeCategory("tech", "ai chips everywhere")
	if a != b {
		t.Fatalf("функция не детерминирована: %q != %q", a, b)
	}
}
