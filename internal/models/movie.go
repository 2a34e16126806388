package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Genre is an embedded genre document.
type Genre struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Director is an embedded director document.
type Director struct {
	Name string `bson:"name" json:"name"`
	Bio  string `bson:"bio,omitempty" json:"bio,omitempty"`
}

// Movie is a catalog entry as stored in the movies collection.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Genre       Genre              `bson:"genre,omitempty" json:"genre,omitempty"`
	Director    Director           `bson:"director,omitempty" json:"director,omitempty"`
	Actors      []string           `bson:"actors,omitempty" json:"actors,omitempty"`
	ImagePath   string             `bson:"image_path,omitempty" json:"image_path,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
}
