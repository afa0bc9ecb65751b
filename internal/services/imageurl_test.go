package services

import "testing"

func TestNormalizeImageURL_RelativeResolvesAgainstBase(t *testing.T) {
	got := NormalizeImageURL("/img/a.png", "https://example.com/news/1")
	if got == nil || *got != "https://example.com/img/a.png" {
		t.Fatalf("ожидалось https://example.com/img/a.png, получено %v", deref(got))
	}
}

func TestNormalizeImageURL_AbsoluteUnchanged(t *testing.T) {
	got := NormalizeImageURL("https://cdn.example.com/a.jpg", "https://example.com/news/1")
	if got == nil || *got != "https://cdn.example.com/a.jpg" {
		t.Fatalf("абсолютный url должен сохраняться, получено %v", deref(got))
	}
}

func TestNormalizeImageURL_SchemeRelative(t *testing.T) {
	got := NormalizeImageURL("//cdn.example.com/a.jpg", "https://example.com/news/1")
	if got == nil || *got != "https://cdn.example.com/a.jpg" {
		t.Fatalf("//-адрес должен унаследовать схему базы, получено %v", deref(got))
	}
}

func TestNormalizeImageURL_EmptyOrWhitespace(t *testing.T) {
	for _, candidate := range []string{"", "   ", "\t\n"} {
		if got := NormalizeImageURL(candidate, "https://example.com"); got != nil {
			t.Errorf("NormalizeImageURL(%q): ожидался nil, получено %q", candidate, *got)
		}
	}
}

func TestNormalizeImageURL_MalformedNeverPanics(t *testing.T) {
	cases := []struct{ candidate, base string }{
		{"not a url \x00", "https://x.com"},
		{"http://", "https://x.com"},
		{"/relative.png", "::notabase"},
		{"%zz", "https://x.com"},
	}
	for _, c := range cases {
		if got := NormalizeImageURL(c.candidate, c.base); got != nil {
			t.Errorf("NormalizeImageURL(%q, %q): ожидался nil, получено %q", c.candidate, c.base, *got)
		}
	}
}

func TestNormalizeImageURL_Pure(t *testing.T) {
	a := NormalizeImageURL("/img/a.png", "https://example.com/news/1")
	b := NormalizeImageURL("/img/a.png", "https://example.com/news/1")
	if deref(a) != deref(b) {
		t.Fatalf("функция не детерминирована: %q != %q", deref(a), deref(b))
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
