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

// ToggleFollow flips the follow relation between viewer and target. The
// follow-row write and the follower_count update are issued concurrently,
// same non-transactional pair as the like toggle.
func ToggleFollow(ctx context.Context, db *mongo.Database, viewer, targetID bson.ObjectID) (int, any) {
	follows := repository.NewFollowRepository(db)
	users := repository.NewUserRepository(db)

	var (
		followDoc    *model.Follow
		targetExists bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		followDoc, err = follows.FindByPair(gctx, viewer, targetID)
		return err
	})
	g.Go(func() error {
		var err error
		targetExists, err = users.Exists(gctx, targetID)
		return err
	})
	if err := g.Wait(); err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}
	if !targetExists {
		return fiber.StatusNotFound, dto.Errors("Target user not found")
	}

	delta := 1
	if followDoc != nil {
		delta = -1
	}

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		if followDoc != nil {
			return follows.Delete(gctx, followDoc.ID)
		}
		return follows.Insert(gctx, model.Follow{AuthorID: viewer, TargetID: targetID})
	})
	g.Go(func() error {
		return users.IncFollowerCount(gctx, targetID, delta)
	})
	if err := g.Wait(); err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}

	return fiber.StatusOK, dto.FollowResp{
		AuthorID:     viewer.Hex(),
		TargetID:     targetID.Hex(),
		FollowStatus: followDoc == nil,
	}
}
