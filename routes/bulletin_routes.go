package routes

import (
	"collab-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func BulletinRoutes(app fiber.Router, bulletinController *controllers.BulletinController) {
	app.Post("/boards/:boardId/bulletins", bulletinController.CreateBulletin)
	app.Get("/boards/:boardId/bulletins", bulletinController.ListBoardBulletins)
	app.Delete("/bulletins/:bulletinId", bulletinController.DeleteBulletin)
}
