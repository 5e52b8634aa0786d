package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader - заголовок с correlation id запроса
const RequestIDHeader = "X-Request-ID"

type ctxKeyRequestID struct{}

// WithRequestID - HTTP middleware: читает X-Request-ID, при отсутствии генерирует новый,
// кладёт его в context и возвращает в заголовке ответа
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID{}, id)))
	})
}

// RequestIDFromContext возвращает correlation id, положенный WithRequestID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}
