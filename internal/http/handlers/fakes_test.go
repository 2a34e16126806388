package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bob3x/movieflix-be/internal/models"
	"github.com/bob3x/movieflix-be/internal/storage"
)

// fakeStore is an in-memory stand-in for the document store. It mirrors the
// store contract: exact-match lookups, deduped favorite append, idempotent
// favorite removal.
type fakeStore struct {
	users  map[primitive.ObjectID]models.User
	movies []models.Movie

	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[primitive.ObjectID]models.User{}}
}

func (f *fakeStore) addUser(user models.User) models.User {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.FavoriteMovieIDs == nil {
		user.FavoriteMovieIDs = []primitive.ObjectID{}
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if f.failWith != nil {
		return models.User{}, f.failWith
	}
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return models.User{}, storage.ErrAlreadyExists
		}
	}
	return f.addUser(user), nil
}

func (f *fakeStore) FindByUsername(_ context.Context, username string) (models.User, error) {
	if f.failWith != nil {
		return models.User{}, f.failWith
	}
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (f *fakeStore) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	if f.failWith != nil {
		return models.User{}, f.failWith
	}
	user, ok := f.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (f *fakeStore) UpdateUser(ctx context.Context, id primitive.ObjectID, patch storage.UserPatch) (models.User, error) {
	user, err := f.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		user.PasswordHash = *patch.PasswordHash
	}
	if patch.Birthday != nil {
		user.Birthday = patch.Birthday
	}
	f.users[id] = user
	return user, nil
}

func (f *fakeStore) AddFavorite(ctx context.Context, id, movieID primitive.ObjectID) (models.User, error) {
	user, err := f.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	for _, existing := range user.FavoriteMovieIDs {
		if existing == movieID {
			return user, nil
		}
	}
	user.FavoriteMovieIDs = append(user.FavoriteMovieIDs, movieID)
	f.users[id] = user
	return user, nil
}

func (f *fakeStore) RemoveFavorite(ctx context.Context, id, movieID primitive.ObjectID) (models.User, error) {
	user, err := f.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	kept := make([]primitive.ObjectID, 0, len(user.FavoriteMovieIDs))
	for _, existing := range user.FavoriteMovieIDs {
		if existing != movieID {
			kept = append(kept, existing)
		}
	}
	user.FavoriteMovieIDs = kept
	f.users[id] = user
	return user, nil
}

func (f *fakeStore) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	if _, err := f.FindByID(ctx, id); err != nil {
		return err
	}
	delete(f.users, id)
	return nil
}

func (f *fakeStore) ListMovies(_ context.Context) ([]models.Movie, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.movies, nil
}

func (f *fakeStore) FindMovieByTitle(_ context.Context, title string) (models.Movie, error) {
	return f.findMovie(func(m models.Movie) bool { return m.Title == title })
}

func (f *fakeStore) FindMovieByGenre(_ context.Context, name string) (models.Movie, error) {
	return f.findMovie(func(m models.Movie) bool { return m.Genre.Name == name })
}

func (f *fakeStore) FindMovieByDirector(_ context.Context, name string) (models.Movie, error) {
	return f.findMovie(func(m models.Movie) bool { return m.Director.Name == name })
}

func (f *fakeStore) findMovie(match func(models.Movie) bool) (models.Movie, error) {
	if f.failWith != nil {
		return models.Movie{}, f.failWith
	}
	for _, movie := range f.movies {
		if match(movie) {
			return movie, nil
		}
	}
	return models.Movie{}, storage.ErrNotFound
}
