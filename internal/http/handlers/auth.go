// Package handlers contains the HTTP endpoints for registration, login,
// user profiles, and the movie catalog.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bob3x/movieflix-be/internal/auth"
	"github.com/bob3x/movieflix-be/internal/http/respond"
	"github.com/bob3x/movieflix-be/internal/models"
	"github.com/bob3x/movieflix-be/internal/models/dto"
	"github.com/bob3x/movieflix-be/internal/storage"
)

// AuthHandler owns the registration and login endpoints.
type AuthHandler struct {
	store         storage.UserStore
	hasher        *auth.PasswordHasher
	authenticator *auth.Authenticator
	tokens        *auth.TokenManager
	logger        *zap.Logger
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(store storage.UserStore, hasher *auth.PasswordHasher, authenticator *auth.Authenticator, tokens *auth.TokenManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		store:         store,
		hasher:        hasher,
		authenticator: authenticator,
		tokens:        tokens,
		logger:        logger,
	}
}

// Register attaches the public auth routes.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/users", h.handleRegister)
	r.Post("/login", h.handleLogin)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := validateRegistration(req); err != nil {
		respond.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	passwordHash, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.logger.Error("hash password", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		Birthday:     req.Birthday,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := h.store.CreateUser(r.Context(), user)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			respond.Error(w, http.StatusConflict, "username already exists")
		default:
			h.logger.Error("create user", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if req.Username == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.authenticator.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respond.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.logger.Error("authenticate", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	token, err := h.tokens.Issue(user.ID.Hex(), user.Username)
	if err != nil {
		h.logger.Error("issue token", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to log in")
		return
	}

	respond.JSON(w, http.StatusOK, dto.LoginResponse{User: user, Token: token})
}

func validateRegistration(req dto.RegisterRequest) error {
	if len(req.Username) < 5 {
		return errors.New("username must be at least 5 characters")
	}
	if !isAlphanumeric(req.Username) {
		return errors.New("username must be alphanumeric")
	}
	if req.Password == "" {
		return errors.New("password is required")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return errors.New("email is not valid")
	}
	return nil
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
