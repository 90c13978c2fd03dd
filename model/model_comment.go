package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Comment.ParentID is either the post itself (top-level) or another
// comment under the same post. Depth is caller-supplied and not checked
// against the parent's depth.
type Comment struct {
	ID           bson.ObjectID `json:"_id"           bson:"_id,omitempty"`
	Author       bson.ObjectID `json:"author"        bson:"author"`
	Body         string        `json:"body"          bson:"body"`
	ParentID     bson.ObjectID `json:"parent_id"     bson:"parent_id"`
	PostID       bson.ObjectID `json:"post_id"       bson:"post_id"`
	Depth        int           `json:"depth"         bson:"depth"`
	NumChildren  int           `json:"num_children"  bson:"num_children"`
	LikeCount    int           `json:"like_count"    bson:"like_count"`
	DislikeCount int           `json:"dislike_count" bson:"dislike_count"`
	DateCreated  time.Time     `json:"date_created"  bson:"date_created"`
}
