package routes

import (
	"collab-server/controllers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func FeedSocketRoutes(app fiber.Router, wsController *controllers.FeedSocketController) {
	app.Get("/ws/projects/:projectId/feed", websocket.New(wsController.HandleFeedSocket))
}
