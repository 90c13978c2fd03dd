package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ripple/dto"
	"ripple/internal/middleware"
	"ripple/internal/services"
)

// GetThread godoc
// @Summary      Breadth-first comment thread below a post or comment
// @Description  Expands layer by layer, most-liked first, one shared limit per layer. withParent=true prepends the root comment itself. With a bearer token every comment carries the viewer's liked status.
// @Tags         comments
// @Produce      json
// @Param        id         path  string true  "Root id (post or comment)"
// @Param        depth      query int    false "maximum depth"           default(4)
// @Param        startDepth query int    false "first layer depth"       default(0)
// @Param        limit      query int    false "page budget per layer"   default(20)
// @Param        startIndex query int    false "offset into first layer" default(0)
// @Param        withParent query bool   false "prepend the root comment"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/comments/{id} [get]
func GetThread(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rootID, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return notFound(c)
		}

		comments, err := services.CollectThread(c.Context(), db, rootID, threadOptions(c), viewerPtr(c))
		if err != nil {
			if errors.Is(err, services.ErrDocumentNotFound) {
				return notFound(c)
			}
			return internalError(c, err)
		}
		return c.JSON(fiber.Map{"comments": comments})
	}
}

// CreateComment godoc
// @Summary      Reply to a post or comment
// @Description  parent_id is the post id for a top-level comment, otherwise a comment id under the same post. Replying to one's own comment requires an existing reply from another author.
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data body dto.CreateCommentReq true "Comment payload"
// @Success      200 {object} dto.CommentView
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/comments [post]
func CreateComment(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.Viewer(c)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.Errors("missing viewer"))
		}

		var req dto.CreateCommentReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Errors("Invalid Request"))
		}

		status, payload := services.CreateComment(c.Context(), db, viewer, req)
		return c.Status(status).JSON(payload)
	}
}
