package services

import (
	"testing"

	"ripple/model"
)

func TestResolveLikeTransitionFromNeutral(t *testing.T) {
	tr := resolveLikeTransition(nil, true)
	if !tr.insert || tr.remove || tr.flip {
		t.Fatalf("like from neutral should insert, got %+v", tr)
	}
	if tr.status != 1 {
		t.Errorf("status = %d, want 1", tr.status)
	}
	if tr.inc["like_count"] != 1 {
		t.Errorf("inc = %v, want like_count +1", tr.inc)
	}

	tr = resolveLikeTransition(nil, false)
	if !tr.insert || tr.status != -1 {
		t.Fatalf("dislike from neutral should insert with status -1, got %+v", tr)
	}
	if tr.inc["dislike_count"] != 1 {
		t.Errorf("inc = %v, want dislike_count +1", tr.inc)
	}
}

func TestResolveLikeTransitionToggleOff(t *testing.T) {
	liked := &model.Like{Value: true}
	tr := resolveLikeTransition(liked, true)
	if !tr.remove || tr.insert || tr.flip {
		t.Fatalf("repeated like should remove, got %+v", tr)
	}
	if tr.status != 0 {
		t.Errorf("status = %d, want 0", tr.status)
	}
	if tr.inc["like_count"] != -1 {
		t.Errorf("inc = %v, want like_count -1", tr.inc)
	}

	disliked := &model.Like{Value: false}
	tr = resolveLikeTransition(disliked, false)
	if !tr.remove || tr.status != 0 {
		t.Fatalf("repeated dislike should remove with status 0, got %+v", tr)
	}
	if tr.inc["dislike_count"] != -1 {
		t.Errorf("inc = %v, want dislike_count -1", tr.inc)
	}
}

func TestResolveLikeTransitionFlip(t *testing.T) {
	disliked := &model.Like{Value: false}
	tr := resolveLikeTransition(disliked, true)
	if !tr.flip || tr.remove || tr.insert {
		t.Fatalf("dislike -> like should flip, got %+v", tr)
	}
	if tr.status != 1 {
		t.Errorf("status = %d, want 1", tr.status)
	}
	if tr.inc["like_count"] != 1 || tr.inc["dislike_count"] != -1 {
		t.Errorf("inc = %v, want like +1 dislike -1", tr.inc)
	}

	liked := &model.Like{Value: true}
	tr = resolveLikeTransition(liked, false)
	if !tr.flip || tr.status != -1 {
		t.Fatalf("like -> dislike should flip with status -1, got %+v", tr)
	}
	if tr.inc["like_count"] != -1 || tr.inc["dislike_count"] != 1 {
		t.Errorf("inc = %v, want like -1 dislike +1", tr.inc)
	}
}
