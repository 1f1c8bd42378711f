package controllers

import (
	service "collab-server/services"

	"github.com/gofiber/fiber/v2"
)

type FeedController struct {
	feeds *service.FeedService
}

func NewFeedController(feeds *service.FeedService) *FeedController {
	return &FeedController{feeds: feeds}
}

func (fc *FeedController) ListBulletinFeeds(c *fiber.Ctx) error {
	feeds, err := fc.feeds.ListBulletinFeeds(c.Context(), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(feeds)
}

func (fc *FeedController) ListTaskFeeds(c *fiber.Ctx) error {
	feeds, err := fc.feeds.ListTaskFeeds(c.Context(), callerID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(feeds)
}

// DeleteEntry dismisses a single feed row for the caller. The row is
// addressed by kind ("bulletin" or "task") and the target's id.
func (fc *FeedController) DeleteEntry(c *fiber.Ctx) error {
	err := fc.feeds.DeleteEntry(c.Context(), callerID(c), c.Params("kind"), c.Params("targetId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}
