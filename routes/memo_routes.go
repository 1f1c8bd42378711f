package routes

import (
	"collab-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func MemoRoutes(app fiber.Router, memoController *controllers.MemoController) {
	app.Post("/collections/:collectionId/memos", memoController.CreateMemo)
	app.Get("/collections/:collectionId/memos", memoController.ListMemos)
	app.Delete("/memos/:memoId", memoController.DeleteMemo)
}
