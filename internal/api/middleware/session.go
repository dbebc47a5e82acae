package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

// HeaderSessionID заголовок, которым клиент предъявляет свою сессию
const HeaderSessionID = "X-Session-ID"

type sessionIDKey struct{}

// SessionIssuer интерфейс выдачи и продления сессий
type SessionIssuer interface {
	NewSession() string
	Touch(sessionID string) bool
}

// Session возвращает middleware, связывающее запрос с сессией.
// Если клиент не предъявил X-Session-ID или сессия истекла, выдается
// новая; ID всегда возвращается в заголовке ответа
func Session(store SessionIssuer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(HeaderSessionID)
			if sessionID == "" || !store.Touch(sessionID) {
				sessionID = store.NewSession()
			}

			w.Header().Set(HeaderSessionID, sessionID)
			ctx := context.WithValue(r.Context(), sessionIDKey{}, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionID извлекает ID сессии из контекста запроса
func SessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}
