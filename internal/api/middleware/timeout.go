package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает время жизни контекста запроса
// Хранилище получает отменённый контекст и возвращает ошибку, которую хендлер переводит в 503
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if d <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
