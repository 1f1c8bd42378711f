package routes

import (
	"collab-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func TaskRoutes(app fiber.Router, taskController *controllers.TaskController) {
	app.Post("/boards/:boardId/tasks", taskController.CreateTask)
	app.Get("/boards/:boardId/tasks", taskController.ListBoardTasks)
	app.Post("/tasks/:taskId/subtasks", taskController.AddSubtask)
	app.Get("/tasks/:taskId/subtasks", taskController.ListSubtasks)
	app.Post("/tasks/:taskId/subtasks/:title/assignments", taskController.AssignSubtask)
	app.Delete("/tasks/:taskId", taskController.DeleteTask)
}
