package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/bob3x/movieflix-be/internal/auth"
	"github.com/bob3x/movieflix-be/internal/http/respond"
	"github.com/bob3x/movieflix-be/internal/middleware"
	"github.com/bob3x/movieflix-be/internal/models"
	"github.com/bob3x/movieflix-be/internal/models/dto"
	"github.com/bob3x/movieflix-be/internal/storage"
)

// UserHandler owns the profile and favorite-movie endpoints. All routes
// sit behind the bearer guard and operate only on the caller's own account.
type UserHandler struct {
	store  storage.UserStore
	hasher *auth.PasswordHasher
	logger *zap.Logger
}

// NewUserHandler constructs the handler.
func NewUserHandler(store storage.UserStore, hasher *auth.PasswordHasher, logger *zap.Logger) *UserHandler {
	return &UserHandler{store: store, hasher: hasher, logger: logger}
}

// Register attaches the protected user routes.
func (h *UserHandler) Register(r chi.Router) {
	r.Get("/users/{username}", h.handleGet)
	r.Put("/users/{username}", h.handleUpdate)
	r.Delete("/users/{username}", h.handleDelete)
	r.Post("/users/{username}/movies/{movieID}", h.handleAddFavorite)
	r.Delete("/users/{username}/movies/{movieID}", h.handleRemoveFavorite)
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireSelf(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

func (h *UserHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireSelf(w, r)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	patch := storage.UserPatch{Birthday: req.Birthday}
	if req.Email != "" {
		patch.Email = &req.Email
	}
	if req.Password != "" {
		passwordHash, err := h.hasher.Hash(req.Password)
		if err != nil {
			h.logger.Error("hash password", zap.Error(err))
			respond.Error(w, http.StatusInternalServerError, "failed to update user")
			return
		}
		patch.PasswordHash = &passwordHash
	}

	updated, err := h.store.UpdateUser(r.Context(), user.ID, patch)
	if err != nil {
		h.storeError(w, err, "update user")
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

func (h *UserHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireSelf(w, r)
	if !ok {
		return
	}
	if err := h.store.DeleteUser(r.Context(), user.ID); err != nil {
		h.storeError(w, err, "delete user")
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"message": user.Username + " has been deleted"})
}

func (h *UserHandler) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireSelf(w, r)
	if !ok {
		return
	}
	movieID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "movieID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid movie id")
		return
	}
	updated, err := h.store.AddFavorite(r.Context(), user.ID, movieID)
	if err != nil {
		h.storeError(w, err, "add favorite")
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

func (h *UserHandler) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireSelf(w, r)
	if !ok {
		return
	}
	movieID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "movieID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid movie id")
		return
	}
	updated, err := h.store.RemoveFavorite(r.Context(), user.ID, movieID)
	if err != nil {
		h.storeError(w, err, "remove favorite")
		return
	}
	respond.JSON(w, http.StatusOK, updated)
}

// requireSelf resolves the authenticated user and checks that the username
// in the URL is the caller's own.
func (h *UserHandler) requireSelf(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "authorization token required")
		return models.User{}, false
	}
	if chi.URLParam(r, "username") != user.Username {
		respond.Error(w, http.StatusForbidden, "permission denied")
		return models.User{}, false
	}
	return user, true
}

func (h *UserHandler) storeError(w http.ResponseWriter, err error, op string) {
	if errors.Is(err, storage.ErrNotFound) {
		respond.Error(w, http.StatusNotFound, "user not found")
		return
	}
	h.logger.Error(op, zap.Error(err))
	respond.Error(w, http.StatusInternalServerError, "internal error")
}
