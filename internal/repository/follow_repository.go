package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"ripple/model"
)

type FollowRepository struct {
	Col *mongo.Collection
}

func NewFollowRepository(db *mongo.Database) *FollowRepository {
	return &FollowRepository{Col: db.Collection("follows")}
}

func (r *FollowRepository) FindByPair(ctx context.Context, authorID, targetID bson.ObjectID) (*model.Follow, error) {
	var f model.Follow
	err := r.Col.FindOne(ctx, bson.M{"author_id": authorID, "target_id": targetID}).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *FollowRepository) Insert(ctx context.Context, f model.Follow) error {
	f.ID = bson.NewObjectID()
	_, err := r.Col.InsertOne(ctx, f)
	return err
}

func (r *FollowRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *FollowRepository) ExistsPair(ctx context.Context, authorID, targetID bson.ObjectID) (bool, error) {
	n, err := r.Col.CountDocuments(ctx,
		bson.M{"author_id": authorID, "target_id": targetID},
		options.Count().SetLimit(1))
	return n > 0, err
}

// CountByAuthor is the "following" count of a user.
func (r *FollowRepository) CountByAuthor(ctx context.Context, authorID bson.ObjectID) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"author_id": authorID})
}

// FetchFollowedSet batch-checks which of the targets the viewer follows.
func (r *FollowRepository) FetchFollowedSet(ctx context.Context, authorID bson.ObjectID, targetIDs []bson.ObjectID) (map[bson.ObjectID]bool, error) {
	out := make(map[bson.ObjectID]bool, len(targetIDs))
	if len(targetIDs) == 0 {
		return out, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{
		"author_id": authorID,
		"target_id": bson.M{"$in": targetIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var follows []model.Follow
	if err := cur.All(ctx, &follows); err != nil {
		return nil, err
	}
	for _, f := range follows {
		out[f.TargetID] = true
	}
	return out, nil
}
