package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"ripple/model"
)

func TestLayerFilter(t *testing.T) {
	root := bson.NewObjectID()
	prev := []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID()}

	f := layerFilter(true, root, prev)
	if got, ok := f["parent_id"].(bson.ObjectID); !ok || got != root {
		t.Errorf("first layer filter = %v, want parent_id == root", f)
	}

	f = layerFilter(false, root, prev)
	in, ok := f["parent_id"].(bson.M)
	if !ok {
		t.Fatalf("later layer filter = %v, want $in clause", f)
	}
	ids, ok := in["$in"].([]bson.ObjectID)
	if !ok || len(ids) != 2 {
		t.Errorf("$in = %v, want previous layer ids", in["$in"])
	}
}

func TestLayerSkip(t *testing.T) {
	if got := layerSkip(true, 7); got != 7 {
		t.Errorf("first layer skip = %d, want 7", got)
	}
	if got := layerSkip(false, 7); got != 0 {
		t.Errorf("later layer skip = %d, want 0", got)
	}
}

// memThreadSource serves canned comments the way the repository would: one
// layer per call, filtered by parent, offset and capped.
type memThreadSource struct {
	comments []model.Comment
	fetches  int
}

func (m *memThreadSource) FindByID(_ context.Context, id bson.ObjectID) (*model.Comment, error) {
	for _, c := range m.comments {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memThreadSource) FindLayer(_ context.Context, filter bson.M, skip, limit int64) ([]model.Comment, error) {
	m.fetches++

	parents := map[bson.ObjectID]bool{}
	switch v := filter["parent_id"].(type) {
	case bson.ObjectID:
		parents[v] = true
	case bson.M:
		for _, id := range v["$in"].([]bson.ObjectID) {
			parents[id] = true
		}
	}

	var layer []model.Comment
	for _, c := range m.comments {
		if parents[c.ParentID] {
			layer = append(layer, c)
		}
	}
	if skip >= int64(len(layer)) {
		return nil, nil
	}
	layer = layer[skip:]
	if int64(len(layer)) > limit {
		layer = layer[:limit]
	}
	return layer, nil
}

func childrenOf(parent bson.ObjectID, n int) []model.Comment {
	out := make([]model.Comment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.Comment{ID: bson.NewObjectID(), ParentID: parent})
	}
	return out
}

func TestCollectThreadLayerBudget(t *testing.T) {
	root := bson.NewObjectID()
	src := &memThreadSource{comments: childrenOf(root, 30)}

	got, err := collectThreadComments(context.Background(), src, root,
		ThreadOptions{Depth: 0, Limit: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 20 {
		t.Errorf("collected %d comments, want the layer capped at 20", len(got))
	}
}

func TestCollectThreadStartIndex(t *testing.T) {
	root := bson.NewObjectID()
	kids := childrenOf(root, 5)
	src := &memThreadSource{comments: kids}

	got, err := collectThreadComments(context.Background(), src, root,
		ThreadOptions{Depth: 0, Limit: 20, StartIndex: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("collected %d comments, want 3 after offset", len(got))
	}
	if got[0].ID != kids[2].ID {
		t.Error("first collected comment does not honor the offset")
	}
}

func TestCollectThreadStopsAtEmptyLayer(t *testing.T) {
	root := bson.NewObjectID()
	kids := childrenOf(root, 2)
	src := &memThreadSource{comments: kids}

	got, err := collectThreadComments(context.Background(), src, root,
		ThreadOptions{Depth: 10, Limit: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("collected %d comments, want 2", len(got))
	}
	// one fetch for the children, one that comes back empty and stops the loop
	if src.fetches != 2 {
		t.Errorf("fetched %d layers, want expansion to stop right after the empty layer", src.fetches)
	}
}

func TestCollectThreadDepthBound(t *testing.T) {
	root := bson.NewObjectID()
	var all []model.Comment
	parent := root
	for i := 0; i < 10; i++ {
		c := model.Comment{ID: bson.NewObjectID(), ParentID: parent}
		all = append(all, c)
		parent = c.ID
	}
	src := &memThreadSource{comments: all}

	got, err := collectThreadComments(context.Background(), src, root,
		ThreadOptions{Depth: 2, Limit: 20})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("collected %d comments, want the 3 layers within depth 2", len(got))
	}
	if src.fetches != 3 {
		t.Errorf("fetched %d layers, want no descent past the depth bound", src.fetches)
	}
}

func TestCollectThreadWithParent(t *testing.T) {
	rootComment := model.Comment{ID: bson.NewObjectID(), ParentID: bson.NewObjectID()}
	kids := childrenOf(rootComment.ID, 2)
	src := &memThreadSource{comments: append([]model.Comment{rootComment}, kids...)}

	got, err := collectThreadComments(context.Background(), src, rootComment.ID,
		ThreadOptions{Depth: 1, Limit: 20, WithParent: true})
	if err != nil {
		t.Fatal(err)
	}
	// the parent itself counts as the first layer, so depth 1 leaves room
	// for exactly one layer of children
	if len(got) != 3 {
		t.Fatalf("collected %d comments, want parent plus its 2 children", len(got))
	}
	if got[0].ID != rootComment.ID {
		t.Error("parent comment is not first")
	}
	if src.fetches != 1 {
		t.Errorf("fetched %d layers, want 1", src.fetches)
	}
}

func TestCollectThreadWithParentNotFound(t *testing.T) {
	src := &memThreadSource{}
	_, err := collectThreadComments(context.Background(), src, bson.NewObjectID(),
		ThreadOptions{Depth: 4, Limit: 20, WithParent: true})
	if !errors.Is(err, ErrDocumentNotFound) {
		t.Fatalf("err = %v, want ErrDocumentNotFound", err)
	}
	if src.fetches != 0 {
		t.Error("expansion ran despite the missing parent")
	}
}
