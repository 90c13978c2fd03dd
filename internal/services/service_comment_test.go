package services

import (
	"context"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ripple/dto"
	"ripple/model"
)

func TestReplyPermitted(t *testing.T) {
	viewer := bson.NewObjectID()
	other := bson.NewObjectID()

	tests := []struct {
		name               string
		parent             *model.Comment
		otherAuthorReplied bool
		want               bool
	}{
		{"top-level comment", nil, false, true},
		{"reply under someone else's comment", &model.Comment{Author: other}, false, true},
		{"reply under own comment, nobody else replied", &model.Comment{Author: viewer}, false, false},
		{"reply under own comment after another author replied", &model.Comment{Author: viewer}, true, true},
	}

	for _, tc := range tests {
		if got := replyPermitted(tc.parent, viewer, tc.otherAuthorReplied); got != tc.want {
			t.Errorf("%s: replyPermitted = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestCreateCommentBodyLength(t *testing.T) {
	viewer := bson.NewObjectID()
	// malformed ids keep the call from ever reaching the database, so the
	// status tells apart the two validation outcomes: 400 means the body was
	// rejected, 404 means it passed and the id check fired next
	req := dto.CreateCommentReq{ParentID: "not-a-hex", PostID: "not-a-hex"}

	req.Body = strings.Repeat("a", 201)
	status, _ := CreateComment(context.Background(), nil, viewer, req)
	if status != fiber.StatusBadRequest {
		t.Errorf("201-char body: status = %d, want 400", status)
	}

	// 150 characters, 450 bytes: counted in runes, not bytes
	req.Body = strings.Repeat("ก", 150)
	status, _ = CreateComment(context.Background(), nil, viewer, req)
	if status != fiber.StatusNotFound {
		t.Errorf("150-rune multibyte body: status = %d, want 404", status)
	}

	req.Body = strings.Repeat("ก", 201)
	status, _ = CreateComment(context.Background(), nil, viewer, req)
	if status != fiber.StatusBadRequest {
		t.Errorf("201-rune multibyte body: status = %d, want 400", status)
	}

	req.Body = ""
	status, _ = CreateComment(context.Background(), nil, viewer, req)
	if status != fiber.StatusBadRequest {
		t.Errorf("empty body: status = %d, want 400", status)
	}
}
