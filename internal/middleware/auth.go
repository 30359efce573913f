package middleware

import (
	"errors"
	"net/http"
	"net/url"

	"backoffice/internal/auth"
	"backoffice/internal/logger"
	"backoffice/internal/utils"

	"go.uber.org/zap"
)

// AuthMiddleware is passive: a valid session puts the user into context,
// anything else continues anonymously. An invalid cookie is cleared.
func AuthMiddleware(sessions *auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := sessions.FromRequest(r)
			if errors.Is(err, auth.ErrNoToken) {
				next.ServeHTTP(w, r)
				return
			}
			if err != nil {
				logger.FromCtx(r.Context()).Debug("discarding session token", zap.Error(err))
				sessions.ClearCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Name, claims.RoleID)
			ctx = logger.WithUserID(ctx, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth sends anonymous requests to the login page, carrying the
// original URI in return_to.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserIDFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		target := "/login"
		if r.Method == http.MethodGet && r.URL.RequestURI() != "/" {
			target += "?return_to=" + url.QueryEscape(r.URL.RequestURI())
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
	})
}
