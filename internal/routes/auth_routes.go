package routes

import (
	"github.com/gofiber/fiber/v2"

	"ripple/internal/handlers"
)

func AuthRoutes(api fiber.Router, d Deps) {
	api.Get("/", handlers.Welcome)
	api.Get("/protected", d.Guard, handlers.Protected)
	api.Post("/register", handlers.Register(d.DB))
	api.Post("/login", handlers.Login(d.DB, d.Cfg.JWTSecret))
}
