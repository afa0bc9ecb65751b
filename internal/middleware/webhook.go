package middleware

import (
	"crypto/subtle"
	"net/http"

	"dailydigest/internal/logger"
)

// WebhookSecret пускает к инжесту только доверенного вызывающего:
// заголовок x-webhook-secret сравнивается за константное время.
// Пустой настроенный секрет закрывает эндпоинт целиком.
func WebhookSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get("x-webhook-secret")

			if secret == "" ||
				subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
				logger.WithCtx(r.Context()).Warn("Webhook: неверный секрет")
				http.Error(w, "Invalid webhook secret", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
