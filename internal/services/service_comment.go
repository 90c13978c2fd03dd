package services

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/sync/errgroup"

	"ripple/dto"
	"ripple/internal/repository"
	"ripple/model"
)

const maxCommentLen = 200

// replyPermitted decides the self-reply rule: a reply under one's own
// comment is permitted only once another author has already replied there.
// Top-level comments (nil parent) and replies under someone else's comment
// are always permitted.
func replyPermitted(parent *model.Comment, viewer bson.ObjectID, otherAuthorReplied bool) bool {
	if parent == nil || parent.Author != viewer {
		return true
	}
	return otherAuthorReplied
}

// CreateComment inserts a reply under a post or another comment. The three
// effects (comment insert, post comment_count, parent num_children) are
// issued concurrently and individually atomic; a failure between them is not
// rolled back.
func CreateComment(ctx context.Context, db *mongo.Database, viewer bson.ObjectID, req dto.CreateCommentReq) (int, any) {
	if req.ParentID == "" || req.PostID == "" || req.Body == "" ||
		utf8.RuneCountInString(req.Body) > maxCommentLen {
		return fiber.StatusBadRequest, dto.Errors("Invalid Request")
	}

	parentID, perr := bson.ObjectIDFromHex(req.ParentID)
	postID, poerr := bson.ObjectIDFromHex(req.PostID)
	if perr != nil || poerr != nil {
		return fiber.StatusNotFound, dto.Errors(ErrDocumentNotFound.Error())
	}

	posts := repository.NewPostRepository(db)
	comments := repository.NewCommentRepository(db)

	var (
		postExists bool
		parent     *model.Comment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		postExists, err = posts.Exists(gctx, postID)
		return err
	})
	if parentID != postID {
		g.Go(func() error {
			var err error
			parent, err = comments.FindByID(gctx, parentID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}
	if !postExists || (parentID != postID && parent == nil) {
		return fiber.StatusNotFound, dto.Errors("Parent or post not found")
	}

	otherAuthorReplied := false
	if parent != nil && parent.Author == viewer {
		replied, err := comments.HasReplyFromOtherAuthor(ctx, parentID, viewer)
		if err != nil {
			return fiber.StatusInternalServerError, dto.Errors(err.Error())
		}
		otherAuthorReplied = replied
	}
	if !replyPermitted(parent, viewer, otherAuthorReplied) {
		return fiber.StatusBadRequest, dto.Errors("You are doing that too much!")
	}

	newComment := &model.Comment{
		Author:      viewer,
		Body:        req.Body,
		ParentID:    parentID,
		PostID:      postID,
		Depth:       req.Depth,
		DateCreated: time.Now().UTC(),
	}

	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		return posts.IncCommentCount(gctx, postID, 1)
	})
	if parent != nil {
		g.Go(func() error {
			return comments.IncNumChildren(gctx, parentID, 1)
		})
	}
	g.Go(func() error {
		return comments.Insert(gctx, newComment)
	})
	if err := g.Wait(); err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}

	// re-read with the author populated
	created, err := comments.FindByID(ctx, newComment.ID)
	if err != nil || created == nil {
		return fiber.StatusInternalServerError, dto.Errors("failed to load created comment")
	}
	views, err := BuildCommentViews(ctx, db, []model.Comment{*created}, nil)
	if err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}
	return fiber.StatusOK, views[0]
}
