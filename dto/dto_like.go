package dto

// LikeReq carries the isLike flag; a missing value is a validation error,
// so the field is a pointer.
type LikeReq struct {
	IsLike *bool `json:"isLike"`
}

// LikeStatus: 1 liked, -1 disliked, 0 neutral.
type LikeResp struct {
	AuthorID   string `json:"author_id"`
	TargetID   string `json:"target_id"`
	LikeStatus int    `json:"like_status"`
}

type FollowResp struct {
	AuthorID     string `json:"author_id"`
	TargetID     string `json:"target_id"`
	FollowStatus bool   `json:"follow_status"`
}
