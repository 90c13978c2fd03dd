package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"ripple/model"
)

type PostRepository struct {
	Col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{Col: db.Collection("posts")}
}

func (r *PostRepository) Insert(ctx context.Context, p *model.Post) error {
	p.ID = bson.NewObjectID()
	_, err := r.Col.InsertOne(ctx, p)
	return err
}

func (r *PostRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Post, error) {
	var p model.Post
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *PostRepository) IncCommentCount(ctx context.Context, id bson.ObjectID, delta int) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"comment_count": delta}})
	return err
}

// FetchByIDs batch-loads posts for parent-post population.
func (r *PostRepository) FetchByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.Post, error) {
	out := make(map[bson.ObjectID]model.Post, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var posts []model.Post
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	for _, p := range posts {
		out[p.ID] = p
	}
	return out, nil
}
