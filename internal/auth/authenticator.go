// Package auth implements the credential flow: password hashing, local
// username/password authentication, and bearer token issuance/verification.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/bob3x/movieflix-be/internal/models"
	"github.com/bob3x/movieflix-be/internal/storage"
	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password. Callers surface this single message so a client cannot tell
// which of the two was wrong; the actual cause is logged server-side only.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator verifies username/password pairs against the user store.
type Authenticator struct {
	store  storage.UserStore
	hasher *PasswordHasher
	logger *zap.Logger
}

// NewAuthenticator constructs an Authenticator.
func NewAuthenticator(store storage.UserStore, hasher *PasswordHasher, logger *zap.Logger) *Authenticator {
	return &Authenticator{store: store, hasher: hasher, logger: logger}
}

// Authenticate looks up the user by exact username match and verifies the
// password against the stored hash. It has no side effects beyond the read.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := a.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.logger.Info("login rejected: unknown username", zap.String("username", username))
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("look up user: %w", err)
	}
	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("login rejected: wrong password", zap.String("username", username))
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
