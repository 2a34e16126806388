package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bob3x/movieflix-be/internal/http/respond"
	"github.com/bob3x/movieflix-be/internal/models"
	"github.com/bob3x/movieflix-be/internal/storage"
)

// MovieHandler owns the read-only catalog endpoints.
type MovieHandler struct {
	store  storage.MovieStore
	logger *zap.Logger
}

// NewMovieHandler constructs the handler.
func NewMovieHandler(store storage.MovieStore, logger *zap.Logger) *MovieHandler {
	return &MovieHandler{store: store, logger: logger}
}

// Register attaches the protected movie routes.
func (h *MovieHandler) Register(r chi.Router) {
	r.Get("/movies", h.handleList)
	r.Get("/movies/{title}", h.handleByTitle)
	r.Get("/movies/genres/{name}", h.handleByGenre)
	r.Get("/movies/directors/{name}", h.handleByDirector)
}

func (h *MovieHandler) handleList(w http.ResponseWriter, r *http.Request) {
	movies, err := h.store.ListMovies(r.Context())
	if err != nil {
		h.logger.Error("list movies", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch movies")
		return
	}
	respond.JSON(w, http.StatusOK, movies)
}

func (h *MovieHandler) handleByTitle(w http.ResponseWriter, r *http.Request) {
	movie, err := h.store.FindMovieByTitle(r.Context(), pathParam(r, "title"))
	h.respondMovie(w, movie, err, "movie not found")
}

func (h *MovieHandler) handleByGenre(w http.ResponseWriter, r *http.Request) {
	movie, err := h.store.FindMovieByGenre(r.Context(), pathParam(r, "name"))
	h.respondMovie(w, movie, err, "genre not found")
}

func (h *MovieHandler) handleByDirector(w http.ResponseWriter, r *http.Request) {
	movie, err := h.store.FindMovieByDirector(r.Context(), pathParam(r, "name"))
	h.respondMovie(w, movie, err, "director not found")
}

// pathParam returns a URL parameter with percent-escapes decoded; titles and
// names routinely contain spaces.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func (h *MovieHandler) respondMovie(w http.ResponseWriter, movie models.Movie, err error, notFoundMessage string) {
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, notFoundMessage)
			return
		}
		h.logger.Error("find movie", zap.Error(err))
		respond.Error(w, http.StatusInternalServerError, "failed to fetch movie")
		return
	}
	respond.JSON(w, http.StatusOK, movie)
}
