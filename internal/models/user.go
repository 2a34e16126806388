package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered account as stored in the users collection.
// PasswordHash never leaves the server: it is excluded from JSON output.
type User struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username         string               `bson:"username" json:"username"`
	PasswordHash     string               `bson:"password_hash" json:"-"`
	Email            string               `bson:"email" json:"email"`
	Birthday         *time.Time           `bson:"birthday,omitempty" json:"birthday,omitempty"`
	FavoriteMovieIDs []primitive.ObjectID `bson:"favorite_movie_ids" json:"favorite_movie_ids"`
	CreatedAt        time.Time            `bson:"created_at" json:"created_at"`
}
