package middleware

import (
	"context"
	"net/http"

	"foxscrb-server/internal/session"
)

type contextKey string

const UserIDKey contextKey = "userID"

// RequireAuth guards a route group behind the cookie session. Anonymous
// requests are bounced to the login page with a flash notice.
func RequireAuth(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := sessions.CurrentUserID(r)
			if userID == "" {
				sessions.AddFlash(w, r, session.FlashError, "Please log in to view that resource")
				http.Redirect(w, r, "/users/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUserID(r *http.Request) string {
	userID, ok := r.Context().Value(UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
