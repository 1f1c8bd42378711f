package controllers

import (
	service "collab-server/services"

	"github.com/gofiber/fiber/v2"
)

type TaskController struct {
	tasks *service.TaskService
}

func NewTaskController(tasks *service.TaskService) *TaskController {
	return &TaskController{tasks: tasks}
}

func (tc *TaskController) CreateTask(c *fiber.Ctx) error {
	var body struct {
		Title    string `json:"title"`
		LeaderID string `json:"leader_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	task, err := tc.tasks.CreateTask(c.Context(), callerID(c), c.Params("boardId"), body.Title, body.LeaderID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (tc *TaskController) ListBoardTasks(c *fiber.Ctx) error {
	tasks, err := tc.tasks.ListBoardTasks(c.Context(), callerID(c), c.Params("boardId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(tasks)
}

func (tc *TaskController) AddSubtask(c *fiber.Ctx) error {
	var body struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	subtask, err := tc.tasks.AddSubtask(c.Context(), callerID(c), c.Params("taskId"), body.Title)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(subtask)
}

func (tc *TaskController) ListSubtasks(c *fiber.Ctx) error {
	subtasks, err := tc.tasks.ListSubtasks(c.Context(), callerID(c), c.Params("taskId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(subtasks)
}

func (tc *TaskController) AssignSubtask(c *fiber.Ctx) error {
	var body struct {
		UserID string `json:"user_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	err := tc.tasks.AssignSubtask(c.Context(), callerID(c), c.Params("taskId"), c.Params("title"), body.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success"})
}

func (tc *TaskController) DeleteTask(c *fiber.Ctx) error {
	if err := tc.tasks.DeleteTask(c.Context(), callerID(c), c.Params("taskId")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "success"})
}
