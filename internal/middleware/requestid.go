package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/millersjournal/journal/internal/ctxkeys"
)

const requestIDHeader = "X-Request-ID"

// WithRequestID tags each request with an id, reusing the caller's if it sent one.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxkeys.WithRequestID(r.Context(), id)))
	})
}
