package services

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/sync/errgroup"

	"ripple/dto"
	"ripple/internal/repository"
	"ripple/model"
)

// likeTransition is the resolved outcome of one toggle input against the
// current (none/liked/disliked) state of an (author, target) pair.
type likeTransition struct {
	remove bool
	insert bool
	flip   bool
	inc    bson.M
	status int
}

func resolveLikeTransition(current *model.Like, isLike bool) likeTransition {
	switch {
	case current != nil && current.Value == isLike:
		// same input twice: toggle off
		inc := bson.M{"like_count": -1}
		if !isLike {
			inc = bson.M{"dislike_count": -1}
		}
		return likeTransition{remove: true, inc: inc, status: 0}

	case current == nil:
		// neutral: create
		inc := bson.M{"like_count": 1}
		status := 1
		if !isLike {
			inc = bson.M{"dislike_count": 1}
			status = -1
		}
		return likeTransition{insert: true, inc: inc, status: status}

	default:
		// liked -> disliked or disliked -> liked
		inc := bson.M{"like_count": 1, "dislike_count": -1}
		status := 1
		if !isLike {
			inc = bson.M{"like_count": -1, "dislike_count": 1}
			status = -1
		}
		return likeTransition{flip: true, inc: inc, status: status}
	}
}

// ToggleLike flips the viewer's like/dislike state on a post or comment.
// The like-row write and the counter update are issued concurrently; there
// is no cross-document transaction between them.
func ToggleLike(ctx context.Context, db *mongo.Database, targetType string, targetID, viewer bson.ObjectID, isLike *bool) (int, any) {
	if isLike == nil {
		return fiber.StatusBadRequest, dto.Errors("Invalid Request")
	}

	likes := repository.NewLikeRepository(db)
	targetCol := db.Collection("posts")
	if targetType == model.TargetComment {
		targetCol = db.Collection("comments")
	}

	current, err := likes.FindByPair(ctx, viewer, targetID)
	if err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}

	tr := resolveLikeTransition(current, *isLike)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		switch {
		case tr.remove:
			return likes.Delete(gctx, current.ID)
		case tr.insert:
			return likes.Insert(gctx, model.Like{
				AuthorID:   viewer,
				TargetID:   targetID,
				TargetType: targetType,
				Value:      *isLike,
			})
		default:
			return likes.SetValue(gctx, current.ID, *isLike)
		}
	})
	g.Go(func() error {
		_, err := targetCol.UpdateOne(gctx, bson.M{"_id": targetID}, bson.M{"$inc": tr.inc})
		return err
	})
	if err := g.Wait(); err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}

	return fiber.StatusOK, dto.LikeResp{
		AuthorID:   viewer.Hex(),
		TargetID:   targetID.Hex(),
		LikeStatus: tr.status,
	}
}
