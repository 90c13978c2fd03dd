package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ripple/dto"
	"ripple/internal/middleware"
	"ripple/internal/services"
)

// LikeTarget godoc
// @Summary      Toggle like/dislike on a post or comment
// @Description  Same isLike twice toggles back to neutral; the opposite value flips the state.
// @Tags         likes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string      true "Target id"
// @Param        data body  dto.LikeReq true "isLike flag"
// @Success      200 {object} dto.LikeResp
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Router       /api/posts/{id} [post]
func LikeTarget(db *mongo.Database, targetType string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.Viewer(c)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.Errors("missing viewer"))
		}

		targetID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return notFound(c)
		}

		var body dto.LikeReq
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Errors("Invalid Request"))
		}

		status, payload := services.ToggleLike(c.Context(), db, targetType, targetID, viewer, body.IsLike)
		return c.Status(status).JSON(payload)
	}
}
