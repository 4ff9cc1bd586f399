package middleware

import (
	"context"
	"net/http"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/sessions"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

type contextKey string

const ContextKeySessionUser = contextKey("sessionUser")

// SessionAuth guards write paths and /me: requests without a live
// session are rejected with 401 before the handler runs.
func SessionAuth(mgr *sessions.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := mgr.Current(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusInternalServerError, utils.ErrCodeInternal, "Session lookup failed", nil, err,
				)
				return
			}
			if sess == nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required", nil,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySessionUser, &sess.User)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionUserFrom extracts the authenticated user, if any. Handlers on
// public routes get nil for anonymous requests.
func SessionUserFrom(ctx context.Context) *models.SessionUser {
	u, _ := ctx.Value(ContextKeySessionUser).(*models.SessionUser)
	return u
}
