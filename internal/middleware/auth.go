// Package middleware provides HTTP middlewares for authentication, CORS,
// and request logging.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/bob3x/movieflix-be/internal/auth"
	"github.com/bob3x/movieflix-be/internal/http/respond"
	"github.com/bob3x/movieflix-be/internal/models"
	"github.com/bob3x/movieflix-be/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ctxKey string

const userKey ctxKey = "user"

// BearerAuth gates protected routes on a valid Authorization: Bearer token.
//
// The token's signature and expiry are checked first, then the user is
// re-resolved from the store by the token's subject id, so a deleted or
// modified account takes effect immediately rather than at token expiry.
// The resolved user is stored in the request context for downstream
// handlers.
func BearerAuth(tokens *auth.TokenManager, store storage.UserStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				respond.Error(w, http.StatusUnauthorized, "authorization token required")
				return
			}

			claims, err := tokens.Parse(tokenString)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					respond.Error(w, http.StatusUnauthorized, "token expired")
					return
				}
				respond.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			userID, err := primitive.ObjectIDFromHex(claims.Subject)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			user, err := store.FindByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					respond.Error(w, http.StatusUnauthorized, "invalid token")
					return
				}
				logger.Error("resolve token subject", zap.Error(err))
				respond.Error(w, http.StatusInternalServerError, "internal error")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user placed by BearerAuth.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

// ContextWithUser returns a context carrying the given user. Exposed for
// handler tests that bypass the middleware.
func ContextWithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
