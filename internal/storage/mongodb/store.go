package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/bob3x/movieflix-be/internal/models"
	"github.com/bob3x/movieflix-be/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Ensure Store satisfies the storage interfaces at compile time.
var (
	_ storage.UserStore  = (*Store)(nil)
	_ storage.MovieStore = (*Store)(nil)
)

// Store provides MongoDB-backed persistence for users and movies.
type Store struct {
	client *mongo.Client
	users  *mongo.Collection
	movies *mongo.Collection
}

// NewStore connects to MongoDB, pings it, and ensures the unique username
// index exists.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(database)
	s := &Store{
		client: client,
		users:  db.Collection("users"),
		movies: db.Collection("movies"),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

// Close releases the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}
	return nil
}

// CreateUser inserts a new user document.
func (s *Store) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.FavoriteMovieIDs == nil {
		user.FavoriteMovieIDs = []primitive.ObjectID{}
	}
	res, err := s.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, storage.ErrAlreadyExists
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return user, nil
}

// FindByUsername fetches a user by exact username match.
func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	return s.findUser(ctx, bson.M{"username": username})
}

// FindByID fetches a user by document id.
func (s *Store) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.findUser(ctx, bson.M{"_id": id})
}

func (s *Store) findUser(ctx context.Context, filter bson.M) (models.User, error) {
	var user models.User
	if err := s.users.FindOne(ctx, filter).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateUser applies the non-nil patch fields with a single $set and returns
// the updated document.
func (s *Store) UpdateUser(ctx context.Context, id primitive.ObjectID, patch storage.UserPatch) (models.User, error) {
	set := bson.M{}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		set["password_hash"] = *patch.PasswordHash
	}
	if patch.Birthday != nil {
		set["birthday"] = *patch.Birthday
	}
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}
	return s.findAndUpdate(ctx, id, bson.M{"$set": set})
}

// AddFavorite appends a movie id to the favorites list. $addToSet keeps the
// operation atomic and makes re-adding a present id a no-op.
func (s *Store) AddFavorite(ctx context.Context, id, movieID primitive.ObjectID) (models.User, error) {
	return s.findAndUpdate(ctx, id, bson.M{"$addToSet": bson.M{"favorite_movie_ids": movieID}})
}

// RemoveFavorite removes a movie id from the favorites list. Removing an
// absent id leaves the document unchanged and still succeeds.
func (s *Store) RemoveFavorite(ctx context.Context, id, movieID primitive.ObjectID) (models.User, error) {
	return s.findAndUpdate(ctx, id, bson.M{"$pull": bson.M{"favorite_movie_ids": movieID}})
}

func (s *Store) findAndUpdate(ctx context.Context, id primitive.ObjectID, update bson.M) (models.User, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := s.users.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, storage.ErrNotFound
		}
		return models.User{}, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// DeleteUser removes a user document by id.
func (s *Store) DeleteUser(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListMovies returns the full catalog.
func (s *Store) ListMovies(ctx context.Context) ([]models.Movie, error) {
	cursor, err := s.movies.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := []models.Movie{}
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

// FindMovieByTitle fetches a movie by exact title match.
func (s *Store) FindMovieByTitle(ctx context.Context, title string) (models.Movie, error) {
	return s.findMovie(ctx, bson.M{"title": title})
}

// FindMovieByGenre fetches the first movie whose genre name matches.
func (s *Store) FindMovieByGenre(ctx context.Context, name string) (models.Movie, error) {
	return s.findMovie(ctx, bson.M{"genre.name": name})
}

// FindMovieByDirector fetches the first movie whose director name matches.
func (s *Store) FindMovieByDirector(ctx context.Context, name string) (models.Movie, error) {
	return s.findMovie(ctx, bson.M{"director.name": name})
}

func (s *Store) findMovie(ctx context.Context, filter bson.M) (models.Movie, error) {
	var movie models.Movie
	if err := s.movies.FindOne(ctx, filter).Decode(&movie); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Movie{}, storage.ErrNotFound
		}
		return models.Movie{}, fmt.Errorf("find movie: %w", err)
	}
	return movie, nil
}
