package dto

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"ripple/model"
)

type RegisterReq struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisteredUser struct {
	ID          bson.ObjectID `json:"_id"`
	Email       string        `json:"email"`
	Name        string        `json:"name"`
	Username    string        `json:"username"`
	DateCreated time.Time     `json:"date_created"`
}

type RegisterResp struct {
	Msg  string         `json:"msg"`
	User RegisteredUser `json:"user"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResp struct {
	Token     string     `json:"token"`
	ExpiresIn int        `json:"expiresIn"`
	User      model.User `json:"user"`
}
