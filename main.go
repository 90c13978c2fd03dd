package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"

	"ripple/bootstrap"
	"ripple/config"
	"ripple/database"
	_ "ripple/docs"
	"ripple/internal/routes"
)

// @title                      ripple API
// @version                    1.0
// @description                Social backend: users, posts, threaded comments, likes and follows.
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg := config.LoadConfig()

	client := database.ConnectMongo(cfg.MongoURI)
	defer database.DisconnectMongo(client)

	db := client.Database(cfg.MongoDB)
	if err := bootstrap.EnsureIndexes(db); err != nil {
		log.Fatalf("ensure indexes failed: %v", err)
	}

	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,OPTIONS,PUT,PATCH,DELETE",
		AllowHeaders: "Origin, X-Requested-With, Content-Type, Accept, Authorization",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/", "./public")

	routes.Register(app, routes.NewDeps(db, cfg))

	log.Printf("listening at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
