package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ripple/dto"
	"ripple/internal/repository"
	"ripple/model"
)

const (
	DefaultThreadDepth = 4
	DefaultThreadLimit = 20
)

// ThreadOptions bounds one breadth-first expansion of a comment tree.
type ThreadOptions struct {
	Depth      int
	StartDepth int
	Limit      int64
	StartIndex int64
	WithParent bool
}

// layerFilter selects one layer: children of the root on the first pass,
// children of the whole previous layer afterwards.
func layerFilter(first bool, rootID bson.ObjectID, prevIDs []bson.ObjectID) bson.M {
	if first {
		return bson.M{"parent_id": rootID}
	}
	return bson.M{"parent_id": bson.M{"$in": prevIDs}}
}

// layerSkip applies the start offset to the first requested layer only.
func layerSkip(first bool, startIndex int64) int64 {
	if first {
		return startIndex
	}
	return 0
}

// threadSource is the slice of the comment repository the expansion reads.
type threadSource interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Comment, error)
	FindLayer(ctx context.Context, filter bson.M, skip, limit int64) ([]model.Comment, error)
}

// collectThreadComments expands the comment tree below rootID (a post or a
// comment) layer by layer, most-liked first within each layer. One limit is
// shared by a whole layer, so children of different parents compete for the
// same page budget. With WithParent the root comment's own document is
// prepended and counts as one layer already satisfied. Expansion stops at
// Depth or at the first empty layer.
func collectThreadComments(ctx context.Context, src threadSource, rootID bson.ObjectID, opts ThreadOptions) ([]model.Comment, error) {
	var collected []model.Comment
	startDepth := opts.StartDepth

	if opts.WithParent {
		parent, err := src.FindByID(ctx, rootID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, ErrDocumentNotFound
		}
		collected = append(collected, *parent)
		startDepth++
	}

	var prevIDs []bson.ObjectID
	for i := startDepth; i <= opts.Depth; i++ {
		first := i == startDepth
		layer, err := src.FindLayer(ctx,
			layerFilter(first, rootID, prevIDs),
			layerSkip(first, opts.StartIndex),
			opts.Limit)
		if err != nil {
			return nil, err
		}
		if len(layer) == 0 {
			break
		}
		collected = append(collected, layer...)

		prevIDs = prevIDs[:0]
		for _, c := range layer {
			prevIDs = append(prevIDs, c.ID)
		}
	}

	return collected, nil
}

// CollectThread runs the expansion against the comments collection and
// populates the resulting views.
func CollectThread(ctx context.Context, db *mongo.Database, rootID bson.ObjectID, opts ThreadOptions, viewer *bson.ObjectID) ([]dto.CommentView, error) {
	collected, err := collectThreadComments(ctx, repository.NewCommentRepository(db), rootID, opts)
	if err != nil {
		return nil, err
	}
	return BuildCommentViews(ctx, db, collected, viewer)
}
