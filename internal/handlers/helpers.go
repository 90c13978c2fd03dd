package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ripple/dto"
	"ripple/internal/middleware"
	"ripple/internal/services"
)

// notFound is the uniform answer for both an absent document and a
// malformed id, so identifier-format details never leak.
func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Errors(services.ErrDocumentNotFound.Error()))
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Errors(err.Error()))
}

// viewerPtr returns the viewer id for annotation queries, nil on anonymous
// requests.
func viewerPtr(c *fiber.Ctx) *bson.ObjectID {
	if uid, ok := middleware.Viewer(c); ok {
		return &uid
	}
	return nil
}

// threadOptions reads the thread expansion bounds from the query string.
func threadOptions(c *fiber.Ctx) services.ThreadOptions {
	return services.ThreadOptions{
		Depth:      c.QueryInt("depth", services.DefaultThreadDepth),
		StartDepth: c.QueryInt("startDepth", 0),
		Limit:      int64(c.QueryInt("limit", services.DefaultThreadLimit)),
		StartIndex: int64(c.QueryInt("startIndex", 0)),
		WithParent: c.Query("withParent") == "true",
	}
}
