package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ripple/dto"
	"ripple/internal/middleware"
	"ripple/internal/pagination"
	"ripple/internal/repository"
	"ripple/internal/services"
	"ripple/model"
)

const maxBodyNewlines = 6

// GetPosts godoc
// @Summary      Paginated post listing
// @Description  Most-liked first; optional case-insensitive search over title and body. With a bearer token every post carries the viewer's liked status.
// @Tags         posts
// @Produce      json
// @Param        page   query int    false "1-based page"    default(1)
// @Param        limit  query int    false "page size"       default(10)
// @Param        search query string false "search term"
// @Success      200 {object} map[string]interface{}
// @Failure      403 {object} dto.ErrorResponse
// @Router       /api/posts [get]
func GetPosts(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := bson.M{}
		if search := c.Query("search"); search != "" {
			filter["$or"] = []bson.M{
				{"title": bson.M{"$regex": search, "$options": "i"}},
				{"body": bson.M{"$regex": search, "$options": "i"}},
			}
		}

		params := pagination.FromQuery(c, 1, 10)
		page, err := pagination.Find[model.Post](c.Context(), db.Collection("posts"), filter,
			bson.D{{Key: "like_count", Value: -1}}, params)
		if err != nil {
			return internalError(c, err)
		}

		views, err := services.BuildPostViews(c.Context(), db, page.Items, viewerPtr(c))
		if err != nil {
			return internalError(c, err)
		}
		return c.JSON(pagination.Envelope("posts", views, page.Next, page.Previous))
	}
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        data body dto.CreatePostReq true "Post payload"
// @Success      200 {object} model.Post
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Router       /api/posts [post]
func CreatePost(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		viewer, ok := middleware.Viewer(c)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.Errors("missing viewer"))
		}

		var req dto.CreatePostReq
		if err := c.BodyParser(&req); err != nil || req.Title == "" {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Errors("Invalid Request"))
		}
		if strings.Count(req.Body, "\n") > maxBodyNewlines {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Errors("Too many new lines"))
		}

		post := &model.Post{
			Author:      viewer,
			Title:       req.Title,
			Body:        req.Body,
			ContentURL:  req.ContentURL,
			IsVideo:     req.IsVideo,
			DateCreated: time.Now().UTC(),
		}
		if err := repository.NewPostRepository(db).Insert(c.Context(), post); err != nil {
			return internalError(c, err)
		}
		return c.JSON(post)
	}
}

// GetPost godoc
// @Summary      Post detail with its comment thread
// @Description  Returns the post with author populated and num_children, then appends the thread expansion unless withComments=false. Thread bounds come from the same query params as the comments endpoint.
// @Tags         posts
// @Produce      json
// @Param        id           path  string true  "Post id"
// @Param        withComments query string false "set to false to skip the thread"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} dto.ErrorResponse
// @Router       /api/posts/{id} [get]
func GetPost(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := bson.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			return notFound(c)
		}
		viewer := viewerPtr(c)

		post, err := repository.NewPostRepository(db).FindByID(c.Context(), id)
		if err != nil {
			return internalError(c, err)
		}
		if post == nil {
			return notFound(c)
		}

		views, err := services.BuildPostViews(c.Context(), db, []model.Post{*post}, viewer)
		if err != nil {
			return internalError(c, err)
		}
		view := views[0]

		numChildren, err := repository.NewCommentRepository(db).CountByParent(c.Context(), id)
		if err != nil {
			return internalError(c, err)
		}
		view.NumChildren = &numChildren

		if c.Query("withComments") == "false" {
			return c.JSON(fiber.Map{"post": view})
		}

		comments, err := services.CollectThread(c.Context(), db, id, threadOptions(c), viewer)
		if err != nil {
			if errors.Is(err, services.ErrDocumentNotFound) {
				return notFound(c)
			}
			return internalError(c, err)
		}
		return c.JSON(fiber.Map{"post": view, "comments": comments})
	}
}
