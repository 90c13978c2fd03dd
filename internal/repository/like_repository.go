package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ripple/model"
)

type LikeRepository struct {
	Col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{Col: db.Collection("likes")}
}

// FindByPair returns the like row for (author, target), or nil when the
// pair is in the neutral state.
func (r *LikeRepository) FindByPair(ctx context.Context, authorID, targetID bson.ObjectID) (*model.Like, error) {
	var l model.Like
	err := r.Col.FindOne(ctx, bson.M{"author_id": authorID, "target_id": targetID}).Decode(&l)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *LikeRepository) Insert(ctx context.Context, l model.Like) error {
	l.ID = bson.NewObjectID()
	_, err := r.Col.InsertOne(ctx, l)
	return err
}

func (r *LikeRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	_, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *LikeRepository) SetValue(ctx context.Context, id bson.ObjectID, value bool) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"value": value}})
	return err
}

// FetchValues batch-loads the viewer's like values for a set of targets in
// one $in query, keyed by target id.
func (r *LikeRepository) FetchValues(ctx context.Context, authorID bson.ObjectID, targetIDs []bson.ObjectID) (map[bson.ObjectID]bool, error) {
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

	var likes []model.Like
	if err := cur.All(ctx, &likes); err != nil {
		return nil, err
	}
	for _, l := range likes {
		out[l.TargetID] = l.Value
	}
	return out, nil
}
