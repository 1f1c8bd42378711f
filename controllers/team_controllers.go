package controllers

import (
	service "collab-server/services"

	"github.com/gofiber/fiber/v2"
)

type TeamController struct {
	teams *service.TeamService
	perms *service.PermissionService
}

func NewTeamController(teams *service.TeamService, perms *service.PermissionService) *TeamController {
	return &TeamController{teams: teams, perms: perms}
}

func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	team, err := tc.teams.CreateTeam(c.Context(), callerID(c), body.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

func (tc *TeamController) DeleteTeam(c *fiber.Ctx) error {
	if err := tc.teams.DeleteTeam(c.Context(), callerID(c), c.Params("teamId")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (tc *TeamController) InviteMember(c *fiber.Ctx) error {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := tc.teams.InviteMember(c.Context(), callerID(c), c.Params("teamId"), body.UserID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}

func (tc *TeamController) RemoveMember(c *fiber.Ctx) error {
	if err := tc.teams.RemoveMember(c.Context(), callerID(c), c.Params("teamId"), c.Params("userId")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (tc *TeamController) QuitTeam(c *fiber.Ctx) error {
	if err := tc.teams.QuitTeam(c.Context(), callerID(c), c.Params("teamId")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (tc *TeamController) RecordAccess(c *fiber.Ctx) error {
	if err := tc.teams.RecordAccess(c.Context(), callerID(c), c.Params("teamId")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (tc *TeamController) PreferredTeam(c *fiber.Ctx) error {
	team, err := tc.teams.PreferredTeam(c.Context(), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(team)
}

func (tc *TeamController) MyRole(c *fiber.Ctx) error {
	role, err := tc.perms.RoleInTeam(c.Context(), callerID(c), c.Params("teamId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": role.String()})
}
