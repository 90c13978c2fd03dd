package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"ripple/model"
)

type CommentRepository struct {
	Col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{Col: db.Collection("comments")}
}

func (r *CommentRepository) Insert(ctx context.Context, c *model.Comment) error {
	c.ID = bson.NewObjectID()
	_, err := r.Col.InsertOne(ctx, c)
	return err
}

func (r *CommentRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error) {
	var c model.Comment
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FindLayer fetches one breadth-first layer of a thread: children of the
// given parent set, most-liked first. The skip offset only applies to the
// first requested layer.
func (r *CommentRepository) FindLayer(ctx context.Context, filter bson.M, skip, limit int64) ([]model.Comment, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "like_count", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var layer []model.Comment
	if err := cur.All(ctx, &layer); err != nil {
		return nil, err
	}
	return layer, nil
}

func (r *CommentRepository) CountByParent(ctx context.Context, parentID bson.ObjectID) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"parent_id": parentID})
}

// HasReplyFromOtherAuthor reports whether anyone other than author has
// already replied directly under parentID. Backs the anti-spam rule.
func (r *CommentRepository) HasReplyFromOtherAuthor(ctx context.Context, parentID, author bson.ObjectID) (bool, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{
		"parent_id": parentID,
		"author":    bson.M{"$ne": author},
	}, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *CommentRepository) IncNumChildren(ctx context.Context, id bson.ObjectID, delta int) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"num_children": delta}})
	return err
}
