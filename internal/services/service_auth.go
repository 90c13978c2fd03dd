package services

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"ripple/dto"
	"ripple/internal/middleware"
	"ripple/internal/repository"
	"ripple/model"
)

const tokenTTL = time.Hour

func Register(ctx context.Context, db *mongo.Database, req dto.RegisterReq) (int, any) {
	var errs []dto.FieldError
	for _, check := range []*dto.FieldError{
		ValidateName(req.Name),
		ValidateUsername(req.Username),
		ValidateEmail(req.Email),
		ValidatePassword(req.Password),
	} {
		if check != nil {
			errs = append(errs, *check)
		}
	}
	if len(errs) > 0 {
		return fiber.StatusBadRequest, dto.FieldErrors(errs...)
	}

	dupErrs, err := CheckDuplicatedFields(ctx, db, map[string]string{
		"name":     req.Name,
		"username": req.Username,
		"email":    req.Email,
	}, nil)
	if err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}
	if len(dupErrs) > 0 {
		return fiber.StatusBadRequest, dto.FieldErrors(dupErrs...)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}

	user := &model.User{
		Name:        req.Name,
		Username:    req.Username,
		Email:       req.Email,
		Password:    string(hashed),
		ProfilePic:  model.DefaultProfilePic,
		BannerPic:   model.DefaultBannerPic,
		DateCreated: time.Now().UTC(),
	}
	if err := repository.NewUserRepository(db).Insert(ctx, user); err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}

	return fiber.StatusOK, dto.RegisterResp{
		Msg: "user successfully registered",
		User: dto.RegisteredUser{
			ID:          user.ID,
			Email:       user.Email,
			Name:        user.Name,
			Username:    user.Username,
			DateCreated: user.DateCreated,
		},
	}
}

func Login(ctx context.Context, db *mongo.Database, jwtSecret string, req dto.LoginReq) (int, any) {
	if req.Email == "" || req.Password == "" {
		return fiber.StatusBadRequest, dto.Errors("empty fields")
	}

	user, err := repository.NewUserRepository(db).FindByEmail(ctx, req.Email)
	if err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}
	if user == nil {
		return fiber.StatusBadRequest, dto.FieldErrors(dto.FieldError{Msg: "email not found", Param: "email"})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return fiber.StatusBadRequest, dto.FieldErrors(dto.FieldError{Msg: "incorrect password", Param: "password"})
	}

	now := time.Now()
	claims := middleware.UserClaims{
		ID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		return fiber.StatusInternalServerError, dto.Errors(err.Error())
	}

	return fiber.StatusOK, dto.LoginResp{
		Token:     token,
		ExpiresIn: int(tokenTTL.Seconds()),
		User:      *user,
	}
}
