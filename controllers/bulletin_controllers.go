package controllers

import (
	service "collab-server/services"

	"github.com/gofiber/fiber/v2"
)

type BulletinController struct {
	bulletins *service.BulletinService
}

func NewBulletinController(bulletins *service.BulletinService) *BulletinController {
	return &BulletinController{bulletins: bulletins}
}

func (bc *BulletinController) CreateBulletin(c *fiber.Ctx) error {
	var body struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	bulletin, err := bc.bulletins.CreateBulletin(c.Context(), callerID(c), c.Params("boardId"), body.Title, body.Body)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(bulletin)
}

func (bc *BulletinController) ListBoardBulletins(c *fiber.Ctx) error {
	bulletins, err := bc.bulletins.ListBoardBulletins(c.Context(), callerID(c), c.Params("boardId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(bulletins)
}

func (bc *BulletinController) DeleteBulletin(c *fiber.Ctx) error {
	if err := bc.bulletins.DeleteBulletin(c.Context(), callerID(c), c.Params("bulletinId")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}
