package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID           bson.ObjectID `json:"_id"           bson:"_id,omitempty"`
	Author       bson.ObjectID `json:"author"        bson:"author"`
	Title        string        `json:"title"         bson:"title"`
	Body         string        `json:"body"          bson:"body,omitempty"`
	LikeCount    int           `json:"like_count"    bson:"like_count"`
	DislikeCount int           `json:"dislike_count" bson:"dislike_count"`
	CommentCount int           `json:"comment_count" bson:"comment_count"`
	ContentURL   string        `json:"contentUrl"    bson:"content_url,omitempty"`
	IsVideo      bool          `json:"isVideo"       bson:"is_video"`
	DateCreated  time.Time     `json:"date_created"  bson:"date_created"`
}
