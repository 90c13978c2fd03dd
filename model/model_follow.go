package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Existence of a Follow document means "author follows target".
type Follow struct {
	ID       bson.ObjectID `json:"_id"       bson:"_id,omitempty"`
	AuthorID bson.ObjectID `json:"author_id" bson:"author_id"`
	TargetID bson.ObjectID `json:"target_id" bson:"target_id"`
}
