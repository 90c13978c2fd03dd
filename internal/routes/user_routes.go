package routes

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/handlers"
)

func UserRoutes(api fiber.Router, d Deps) {
	users := api.Group("/users")

	users.Get("/", d.Optional, handlers.GetUsers(d.DB))
	users.Get("/:id", d.Optional, handlers.GetUser(d.DB))
	users.Get("/:id/posts", d.Optional, handlers.GetUserPosts(d.DB))
	users.Get("/:id/comments", d.Optional, handlers.GetUserComments(d.DB))
	users.Get("/:id/followers", d.Optional, handlers.GetFollowers(d.DB))
	users.Get("/:id/following", d.Optional, handlers.GetFollowing(d.DB))

	// follow/unfollow toggle
	users.Post("/:id", d.Guard, handlers.FollowUser(d.DB))
	users.Post("/:id/edit", d.Guard, handlers.UpdateUser(d.DB, d.Cfg))
}
