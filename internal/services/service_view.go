package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ripple/dto"
	"ripple/internal/repository"
	"ripple/internal/utils"
	"ripple/model"
)

// likedStatus maps a like row (present/absent, value) onto the wire values
// 1 (liked), -1 (disliked), 0 (neutral).
func likedStatus(values map[bson.ObjectID]bool, id bson.ObjectID) int {
	value, present := values[id]
	if !present {
		return 0
	}
	if value {
		return 1
	}
	return -1
}

func authorIDs(ids []bson.ObjectID) []bson.ObjectID {
	seen := make(map[bson.ObjectID]struct{}, len(ids))
	out := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func commentAuthorRef(u model.User) dto.AuthorRef {
	return dto.AuthorRef{
		ID:         u.ID.Hex(),
		Username:   u.Username,
		ProfilePic: u.ProfilePic,
	}
}

func postAuthorRef(u model.User) dto.AuthorRef {
	ref := commentAuthorRef(u)
	ref.Name = u.Name
	return ref
}

// BuildCommentViews populates authors (one $in users query) and, when a
// viewer is known, the liked annotation (one $in likes query).
func BuildCommentViews(ctx context.Context, db *mongo.Database, comments []model.Comment, viewer *bson.ObjectID) ([]dto.CommentView, error) {
	ids := make([]bson.ObjectID, 0, len(comments))
	targets := make([]bson.ObjectID, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.Author)
		targets = append(targets, c.ID)
	}

	users, err := repository.NewUserRepository(db).FetchByIDs(ctx, authorIDs(ids))
	if err != nil {
		return nil, err
	}

	var likeValues map[bson.ObjectID]bool
	if viewer != nil {
		likeValues, err = repository.NewLikeRepository(db).FetchValues(ctx, *viewer, targets)
		if err != nil {
			return nil, err
		}
	}

	views := make([]dto.CommentView, 0, len(comments))
	for _, c := range comments {
		v := dto.CommentView{
			Comment:       c,
			Author:        commentAuthorRef(users[c.Author]),
			DateFormatted: utils.FormatDate(c.DateCreated),
		}
		if viewer != nil {
			status := likedStatus(likeValues, c.ID)
			v.Liked = &status
		}
		views = append(views, v)
	}
	return views, nil
}

// BuildPostViews mirrors BuildCommentViews for post listings.
func BuildPostViews(ctx context.Context, db *mongo.Database, posts []model.Post, viewer *bson.ObjectID) ([]dto.PostView, error) {
	ids := make([]bson.ObjectID, 0, len(posts))
	targets := make([]bson.ObjectID, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.Author)
		targets = append(targets, p.ID)
	}

	users, err := repository.NewUserRepository(db).FetchByIDs(ctx, authorIDs(ids))
	if err != nil {
		return nil, err
	}

	var likeValues map[bson.ObjectID]bool
	if viewer != nil {
		likeValues, err = repository.NewLikeRepository(db).FetchValues(ctx, *viewer, targets)
		if err != nil {
			return nil, err
		}
	}

	views := make([]dto.PostView, 0, len(posts))
	for _, p := range posts {
		v := dto.PostView{
			Post:          p,
			Author:        postAuthorRef(users[p.Author]),
			DateFormatted: utils.FormatDate(p.DateCreated),
		}
		if viewer != nil {
			status := likedStatus(likeValues, p.ID)
			v.Liked = &status
		}
		views = append(views, v)
	}
	return views, nil
}
