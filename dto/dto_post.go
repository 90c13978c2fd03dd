package dto

import "ripple/model"

type CreatePostReq struct {
	Title      string `json:"title"`
	Body       string `json:"body"`
	ContentURL string `json:"contentUrl"`
	IsVideo    bool   `json:"isVideo"`
}

// AuthorRef is the populated author stub attached to posts and comments.
type AuthorRef struct {
	ID         string `json:"_id"`
	Name       string `json:"name,omitempty"`
	Username   string `json:"username"`
	ProfilePic string `json:"profile_pic"`
}

// PostView is a post with its author populated and display fields attached.
// Liked is present only when a viewer is known; NumChildren only on the
// detail endpoint.
type PostView struct {
	model.Post
	Author        AuthorRef `json:"author"`
	DateFormatted string    `json:"date_formatted"`
	Liked         *int      `json:"liked,omitempty"`
	NumChildren   *int64    `json:"num_children,omitempty"`
}
