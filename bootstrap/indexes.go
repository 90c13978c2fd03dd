package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the query indexes the hot paths depend on.
// Like/follow pair uniqueness stays a toggle-logic invariant, so none of
// these are unique indexes.
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	_, err := db.Collection("likes").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "author_id", Value: 1},
			{Key: "target_id", Value: 1},
		},
		Options: options.Index().SetName("author_target"),
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("follows").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "author_id", Value: 1},
				{Key: "target_id", Value: 1},
			},
			Options: options.Index().SetName("author_target"),
		},
		{
			Keys:    bson.D{{Key: "target_id", Value: 1}},
			Options: options.Index().SetName("target"),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("comments").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "parent_id", Value: 1},
				{Key: "like_count", Value: -1},
			},
			Options: options.Index().SetName("parent_likes"),
		},
		{
			Keys:    bson.D{{Key: "author", Value: 1}},
			Options: options.Index().SetName("author"),
		},
	})
	if err != nil {
		return err
	}

	_, err = db.Collection("posts").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "author", Value: 1}},
		Options: options.Index().SetName("author"),
	})
	return err
}
