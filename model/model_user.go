package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	DefaultProfilePic = "/images/default-profile-picture.jpg"
	DefaultBannerPic  = "/images/default-banner.jpg"
)

type User struct {
	ID            bson.ObjectID `json:"_id"            bson:"_id,omitempty"`
	Email         string        `json:"email"          bson:"email"`
	Name          string        `json:"name"           bson:"name"`
	Username      string        `json:"username"       bson:"username"`
	Password      string        `json:"-"              bson:"password"`
	Description   string        `json:"description"    bson:"description,omitempty"`
	FollowerCount int           `json:"follower_count" bson:"follower_count"`
	ProfilePic    string        `json:"profile_pic"    bson:"profile_pic"`
	BannerPic     string        `json:"banner_pic"     bson:"banner_pic"`
	DateCreated   time.Time     `json:"date_created"   bson:"date_created"`
}
