package controllers

import (
	service "collab-server/services"

	"github.com/gofiber/fiber/v2"
)

type ProjectController struct {
	projects *service.ProjectService
	perms    *service.PermissionService
}

func NewProjectController(projects *service.ProjectService, perms *service.PermissionService) *ProjectController {
	return &ProjectController{projects: projects, perms: perms}
}

func (pc *ProjectController) CreateProject(c *fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		AdminID string `json:"admin_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	project, err := pc.projects.CreateProject(c.Context(), callerID(c), c.Params("teamId"), body.Name, body.AdminID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(project)
}

func (pc *ProjectController) DeleteProject(c *fiber.Ctx) error {
	err := pc.projects.DeleteProject(c.Context(), callerID(c), c.Params("teamId"), c.Params("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (pc *ProjectController) AddMember(c *fiber.Ctx) error {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := pc.projects.AddMember(c.Context(), callerID(c), c.Params("projectId"), body.UserID); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}

func (pc *ProjectController) RemoveMember(c *fiber.Ctx) error {
	err := pc.projects.RemoveMember(c.Context(), callerID(c), c.Params("projectId"), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}

func (pc *ProjectController) MyRole(c *fiber.Ctx) error {
	role, err := pc.perms.RoleInProject(c.Context(), callerID(c), c.Params("projectId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"role": role.String()})
}
