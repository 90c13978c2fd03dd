package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"ripple/model"
)

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) Insert(ctx context.Context, u *model.User) error {
	u.ID = bson.NewObjectID()
	_, err := r.Col.InsertOne(ctx, u)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.User, error) {
	var u model.User
	if err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	return n > 0, err
}

// ExistsByField backs the duplicate checks on registration and profile
// edits. excludeID skips the user's own document when editing.
func (r *UserRepository) ExistsByField(ctx context.Context, field, value string, excludeID *bson.ObjectID) (bool, error) {
	filter := bson.M{field: value}
	if excludeID != nil {
		filter["_id"] = bson.M{"$ne": *excludeID}
	}
	n, err := r.Col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	return n > 0, err
}

func (r *UserRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields bson.M) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

func (r *UserRepository) IncFollowerCount(ctx context.Context, id bson.ObjectID, delta int) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"follower_count": delta}})
	return err
}

// FetchByIDs batch-loads users for author population.
func (r *UserRepository) FetchByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]model.User, error) {
	out := make(map[bson.ObjectID]model.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		out[u.ID] = u
	}
	return out, nil
}
