package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserPublic is the listing projection: no email, password, counters or
// creation date. Followed is present only when a viewer is known.
type UserPublic struct {
	ID          bson.ObjectID `json:"_id"`
	Name        string        `json:"name"`
	Username    string        `json:"username"`
	Description string        `json:"description,omitempty"`
	ProfilePic  string        `json:"profile_pic"`
	BannerPic   string        `json:"banner_pic"`
	Followed    *bool         `json:"followed,omitempty"`
}

// UserDetail is the profile projection: public fields plus counters.
type UserDetail struct {
	ID             bson.ObjectID `json:"_id"`
	Name           string        `json:"name"`
	Username       string        `json:"username"`
	Description    string        `json:"description,omitempty"`
	ProfilePic     string        `json:"profile_pic"`
	BannerPic      string        `json:"banner_pic"`
	FollowerCount  int           `json:"follower_count"`
	FollowingCount int64         `json:"following_count"`
	DateCreated    time.Time     `json:"date_created"`
	Followed       bool          `json:"followed"`
}

// UpdateUserResp reports which fields were applied; fields that failed
// validation are skipped and show up in Errors instead.
type UpdateUserResp struct {
	UpdatedUserFields map[string]string `json:"updatedUserFields"`
	Errors            []FieldError      `json:"errors"`
}
