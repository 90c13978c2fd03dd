package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ripple/config"
	"ripple/internal/middleware"
)

// Deps carries what route registration needs: the database handle, the
// config, and the two auth middlewares (viewer optional vs. required).
type Deps struct {
	DB       *mongo.Database
	Cfg      config.Config
	Optional fiber.Handler
	Guard    fiber.Handler
}

func NewDeps(db *mongo.Database, cfg config.Config) Deps {
	return Deps{
		DB:       db,
		Cfg:      cfg,
		Optional: middleware.BearerAuth(cfg.JWTSecret, false),
		Guard:    middleware.BearerAuth(cfg.JWTSecret, true),
	}
}

func Register(app *fiber.App, d Deps) {
	api := app.Group("/api")

	AuthRoutes(api, d)
	UserRoutes(api, d)
	PostRoutes(api, d)
	CommentRoutes(api, d)
}
