package routes

import (
	"collab-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func FeedRoutes(app fiber.Router, feedController *controllers.FeedController) {
	app.Get("/feeds/bulletins", feedController.ListBulletinFeeds)
	app.Get("/feeds/tasks", feedController.ListTaskFeeds)
	app.Delete("/feeds/:kind/:targetId", feedController.DeleteEntry)
}
