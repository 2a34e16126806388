package storage

import (
	"context"
	"errors"
	"time"

	"github.com/bob3x/movieflix-be/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures persistence operations needed by handlers and the
// authentication flow. List mutations must be single atomic document updates.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	UpdateUser(ctx context.Context, id primitive.ObjectID, patch UserPatch) (models.User, error)
	AddFavorite(ctx context.Context, id, movieID primitive.ObjectID) (models.User, error)
	RemoveFavorite(ctx context.Context, id, movieID primitive.ObjectID) (models.User, error)
	DeleteUser(ctx context.Context, id primitive.ObjectID) error
}

// UserPatch describes a partial profile update. Nil fields are not touched.
type UserPatch struct {
	Email        *string
	PasswordHash *string
	Birthday     *time.Time
}

// MovieStore captures read access to the movie catalog.
type MovieStore interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	FindMovieByTitle(ctx context.Context, title string) (models.Movie, error)
	FindMovieByGenre(ctx context.Context, name string) (models.Movie, error)
	FindMovieByDirector(ctx context.Context, name string) (models.Movie, error)
}
