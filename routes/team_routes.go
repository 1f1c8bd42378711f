package routes

import (
	"collab-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func TeamRoutes(app fiber.Router, teamController *controllers.TeamController) {
	app.Post("/teams", teamController.CreateTeam)
	app.Delete("/teams/:teamId", teamController.DeleteTeam)
	app.Post("/teams/:teamId/members", teamController.InviteMember)
	app.Delete("/teams/:teamId/members/:userId", teamController.RemoveMember)
	app.Post("/teams/:teamId/quit", teamController.QuitTeam)
	app.Post("/teams/:teamId/access", teamController.RecordAccess)
	app.Get("/teams/preferred", teamController.PreferredTeam)
	app.Get("/teams/:teamId/role", teamController.MyRole)
}
