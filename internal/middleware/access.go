package middleware

import (
	"context"
	"net/http"

	"backoffice/internal/logger"
	"backoffice/internal/utils"

	"go.uber.org/zap"
)

// AccessChecker answers role grant questions for a user.
type AccessChecker interface {
	HasPermission(ctx context.Context, userID uint, name string) bool
	HasMenuAccess(ctx context.Context, userID uint, name string) bool
}

// DenyFunc writes the response for a refused request.
type DenyFunc func(w http.ResponseWriter, r *http.Request)

// RequireMenu lets the request through only when the user's role holds menu.
func RequireMenu(checker AccessChecker, menu string, deny DenyFunc) func(http.Handler) http.Handler {
	return requireGrant(func(ctx context.Context, userID uint) bool {
		return checker.HasMenuAccess(ctx, userID, menu)
	}, "menu", menu, deny)
}

// RequirePermission lets the request through only when the user's role holds perm.
func RequirePermission(checker AccessChecker, perm string, deny DenyFunc) func(http.Handler) http.Handler {
	return requireGrant(func(ctx context.Context, userID uint) bool {
		return checker.HasPermission(ctx, userID, perm)
	}, "permission", perm, deny)
}

func requireGrant(granted func(context.Context, uint) bool, kind, name string, deny DenyFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				RequireAuth(next).ServeHTTP(w, r)
				return
			}
			if !granted(r.Context(), userID) {
				logger.FromCtx(r.Context()).Warn("access denied",
					zap.String(kind, name),
					zap.String("path", r.URL.Path),
				)
				deny(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
