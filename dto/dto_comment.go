package dto

import "ripple/model"

type CreateCommentReq struct {
	ParentID string `json:"parent_id"`
	PostID   string `json:"post_id"`
	Body     string `json:"body"`
	Depth    int    `json:"depth"`
}

type CommentView struct {
	model.Comment
	Author        AuthorRef `json:"author"`
	DateFormatted string    `json:"date_formatted"`
	Liked         *int      `json:"liked,omitempty"`
}

// CommentWithPost is the shape returned by GET /api/users/:id/comments,
// where the parent post is populated in place of the post_id reference.
type CommentWithPost struct {
	model.Comment
	ParentPost    CommentParentPost `json:"post_id"`
	DateFormatted string            `json:"date_formatted"`
	Liked         *int              `json:"liked,omitempty"`
}

// CommentParentPost is the populated parent post (minus body) plus the post
// author's public stub.
type CommentParentPost struct {
	model.Post
	Body       string `json:"body,omitempty"`
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic"`
}
