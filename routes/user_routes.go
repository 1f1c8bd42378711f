package routes

import (
	"collab-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app fiber.Router, userController *controllers.UserController) {
	app.Post("/users", userController.Register)
	app.Get("/users/me", userController.Me)
	app.Get("/users/:userId", userController.GetUser)
}
