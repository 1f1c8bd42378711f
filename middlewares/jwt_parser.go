package middleware

import (
	"strings"

	"collab-server/utils"

	"github.com/gofiber/fiber/v2"
)

// JWTParser verifies the bearer token and stores the caller's user id in the
// request locals for the controllers.
func JWTParser(store *utils.PublicKeyStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing Authorization header",
			})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Malformed Authorization header",
			})
		}

		claims, err := utils.ParseJWT(store, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid JWT: " + err.Error(),
			})
		}

		c.Locals("userID", claims.UserID)
		return c.Next()
	}
}
