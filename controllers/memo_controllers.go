package controllers

import (
	service "collab-server/services"

	"github.com/gofiber/fiber/v2"
)

type MemoController struct {
	memos *service.MemoService
}

func NewMemoController(memos *service.MemoService) *MemoController {
	return &MemoController{memos: memos}
}

func (mc *MemoController) CreateMemo(c *fiber.Ctx) error {
	var body struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	memo, err := mc.memos.CreateMemo(c.Context(), callerID(c), c.Params("collectionId"), body.Title, body.Body)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(memo)
}

func (mc *MemoController) ListMemos(c *fiber.Ctx) error {
	memos, err := mc.memos.ListMemos(c.Context(), callerID(c), c.Params("collectionId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(memos)
}

func (mc *MemoController) DeleteMemo(c *fiber.Ctx) error {
	if err := mc.memos.DeleteMemo(c.Context(), callerID(c), c.Params("memoId")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}
