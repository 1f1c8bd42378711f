package routes

import (
	"collab-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func ProjectRoutes(app fiber.Router, projectController *controllers.ProjectController) {
	app.Post("/teams/:teamId/projects", projectController.CreateProject)
	app.Delete("/teams/:teamId/projects/:projectId", projectController.DeleteProject)
	app.Post("/projects/:projectId/members", projectController.AddMember)
	app.Delete("/projects/:projectId/members/:userId", projectController.RemoveMember)
	app.Get("/projects/:projectId/role", projectController.MyRole)
}
