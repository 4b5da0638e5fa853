package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Sehar1999/applicant-tracking-system/internal/models"
	"github.com/Sehar1999/applicant-tracking-system/internal/repositories"
	"github.com/Sehar1999/applicant-tracking-system/internal/services"
)

const userLocalKey = "currentUser"

// Authenticate verifies the bearer token and loads the requesting user (with
// role) into the request locals.
func Authenticate(tokenService services.TokenService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Success: false,
				Message: "Access denied, you need to login first.",
			})
		}

		claims, err := tokenService.Verify(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Success: false,
				Message: "Invalid token",
			})
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.APIResponse{
				Success: false,
				Message: "Invalid token",
			})
		}

		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Authenticate, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalKey).(*models.User)
	return user
}
