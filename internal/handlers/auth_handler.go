package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"ripple/dto"
	"ripple/internal/services"
)

// Welcome godoc
// @Summary      API index
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api [get]
func Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": "Welcome to the API"})
}

// Protected godoc
// @Summary      Probe endpoint for a valid bearer token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      403 {object} dto.ErrorResponse
// @Router       /api/protected [get]
func Protected(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"msg": "You reached the protected route!",
		"_id": c.Locals("user_id"),
	})
}

// Register godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data body dto.RegisterReq true "Registration payload"
// @Success      200 {object} dto.RegisterResp
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/register [post]
func Register(db *mongo.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.RegisterReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Errors("Invalid Request"))
		}
		status, payload := services.Register(c.Context(), db, req)
		return c.Status(status).JSON(payload)
	}
}

// Login godoc
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data body dto.LoginReq true "Credentials"
// @Success      200 {object} dto.LoginResp
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/login [post]
func Login(db *mongo.Database, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.LoginReq
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Errors("Invalid Request"))
		}
		status, payload := services.Login(c.Context(), db, jwtSecret, req)
		return c.Status(status).JSON(payload)
	}
}
