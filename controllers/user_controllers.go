package controllers

import (
	service "collab-server/services"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	users *service.UserService
}

func NewUserController(users *service.UserService) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) Register(c *fiber.Ctx) error {
	var body struct {
		Name   string `json:"name"`
		Email  string `json:"email"`
		Avatar string `json:"avatar"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user, err := uc.users.Register(c.Context(), body.Name, body.Email, body.Avatar)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (uc *UserController) GetUser(c *fiber.Ctx) error {
	user, err := uc.users.Get(c.Context(), c.Params("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}

func (uc *UserController) Me(c *fiber.Ctx) error {
	user, err := uc.users.Get(c.Context(), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
