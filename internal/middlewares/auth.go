package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rradebe/meal-planner-api/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AuthMiddleware returns a middleware that validates the Bearer token and
// stores the resolved user id in the request context. The context identity
// is the only source of ownership for downstream handlers.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
		})
	}
}

type userIDContextKey struct{}

var userIDKey = userIDContextKey{}

// SetUserIDToContext stores the authenticated user id in the context.
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the context.
// Returns uuid.Nil and false if the request did not pass AuthMiddleware.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
