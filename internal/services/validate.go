package services

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ripple/dto"
	"ripple/internal/repository"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	// double spaces or anything outside alphanumerics and single spaces
	badNameRe = regexp.MustCompile(`[ ]{2}|[^a-zA-Z0-9 ]`)
	emailRe   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

func ValidateUsername(username string) *dto.FieldError {
	if len(username) < 1 || len(username) > 50 {
		return &dto.FieldError{Msg: "must not be empty or exceed 50 characters", Param: "username"}
	}
	if !usernameRe.MatchString(username) {
		return &dto.FieldError{Msg: "alphanumeric characters only", Param: "username"}
	}
	return nil
}

func ValidateName(name string) *dto.FieldError {
	if len(name) < 1 || len(name) > 50 {
		return &dto.FieldError{Msg: "must not be empty or exceed 50 characters", Param: "name"}
	}
	if badNameRe.MatchString(name) {
		return &dto.FieldError{Msg: "alpha-numeric characters or single spaces only", Param: "name"}
	}
	return nil
}

func ValidateEmail(email string) *dto.FieldError {
	if len(email) < 1 || len(email) > 200 {
		return &dto.FieldError{Msg: "must not exceed 200 characters", Param: "email"}
	}
	if !emailRe.MatchString(email) {
		return &dto.FieldError{Msg: "invalid e-mail", Param: "email"}
	}
	return nil
}

func ValidatePassword(password string) *dto.FieldError {
	if len(password) < 1 || len(password) > 200 {
		return &dto.FieldError{Msg: "must not be empty or exceed 200 characters", Param: "password"}
	}
	return nil
}

func ValidateDescription(description string) *dto.FieldError {
	if len(description) > 200 {
		return &dto.FieldError{Msg: "must not exceed 200 characters", Param: "description"}
	}
	return nil
}

// CheckDuplicatedFields reports an error entry per field whose value is
// already taken by another user. excludeID skips the editing user's own
// document.
func CheckDuplicatedFields(ctx context.Context, db *mongo.Database, fields map[string]string, excludeID *bson.ObjectID) ([]dto.FieldError, error) {
	users := repository.NewUserRepository(db)
	var errs []dto.FieldError
	for _, field := range []string{"name", "username", "email"} {
		value, ok := fields[field]
		if !ok {
			continue
		}
		taken, err := users.ExistsByField(ctx, field, value, excludeID)
		if err != nil {
			return nil, err
		}
		if taken {
			errs = append(errs, dto.FieldError{Msg: field + " already exists", Param: field})
		}
	}
	return errs, nil
}
