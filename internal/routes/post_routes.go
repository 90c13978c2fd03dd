package routes

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/handlers"
	"ripple/model"
)

func PostRoutes(api fiber.Router, d Deps) {
	posts := api.Group("/posts")

	posts.Get("/", d.Optional, handlers.GetPosts(d.DB))
	posts.Post("/", d.Guard, handlers.CreatePost(d.DB))
	posts.Get("/:id", d.Optional, handlers.GetPost(d.DB))

	// like/dislike toggle
	posts.Post("/:id", d.Guard, handlers.LikeTarget(d.DB, model.TargetPost))
}
