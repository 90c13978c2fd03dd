package routes

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/handlers"
	"ripple/model"
)

func CommentRoutes(api fiber.Router, d Deps) {
	comments := api.Group("/comments")

	comments.Get("/:id", d.Optional, handlers.GetThread(d.DB))
	comments.Post("/", d.Guard, handlers.CreateComment(d.DB))

	// like/dislike toggle
	comments.Post("/:id", d.Guard, handlers.LikeTarget(d.DB, model.TargetComment))
}
