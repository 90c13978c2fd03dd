package model

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	TargetPost    = "post"
	TargetComment = "comment"
)

// Like.Value true means like, false means dislike. TargetType tags whether
// TargetID points at a post or a comment; lookups still go through
// (author_id, target_id).
type Like struct {
	ID         bson.ObjectID `json:"_id"         bson:"_id,omitempty"`
	AuthorID   bson.ObjectID `json:"author_id"   bson:"author_id"`
	TargetID   bson.ObjectID `json:"target_id"   bson:"target_id"`
	TargetType string        `json:"target_type" bson:"target_type"`
	Value      bool          `json:"value"       bson:"value"`
}
