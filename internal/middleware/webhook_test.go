package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWebhookSecret(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	cases := []struct {
		name       string
		configured string
		supplied   string
		wantCode   int
	}{
		{"верный секрет", "s3cret", "s3cret", http.StatusNoContent},
		{"неверный секрет", "s3cret", "nope", http.StatusUnauthorized},
		{"без заголовка", "s3cret", "", http.StatusUnauthorized},
		{"секрет не настроен — эндпоинт закрыт", "", "", http.StatusUnauthorized},
		{"секрет не настроен, но заголовок прислан", "", "anything", http.StatusUnauthorized},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			handler := WebhookSecret(c.configured)(okHandler)

			req := httptest.NewRequest(http.MethodPost, "/api/articles", nil)
			if c.supplied != "" {
				req.Header.Set("x-webhook-secret", c.supplied)
			}

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != c.wantCode {
				t.Fatalf("ожидался %d, получен %d", c.wantCode, w.Code)
			}
		})
	}
}
