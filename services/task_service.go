package service

import (
	"context"
	"fmt"

	"collab-server/models"
	"collab-server/repository"

	"github.com/rs/zerolog/log"
)

// TaskService owns tasks, subtasks, and subtask assignments. Leaders and
// principals must hold a membership in the owning project at assignment
// time; the only path that may break this afterwards is membership
// revocation, which reassigns ownership to the team admin.
type TaskService struct {
	store repository.Store
	perms *PermissionService
	feeds *FeedService
}

func NewTaskService(store repository.Store, perms *PermissionService, feeds *FeedService) *TaskService {
	return &TaskService{store: store, perms: perms, feeds: feeds}
}

// projectForTaskBoard resolves the project owning a task board.
func (s *TaskService) projectForTaskBoard(ctx context.Context, boardID string) (models.Project, error) {
	board, err := s.store.Projects().FindTaskBoardByID(ctx, boardID)
	if err != nil {
		return models.Project{}, storeErr(err)
	}
	project, err := s.store.Projects().FindProjectByID(ctx, board.ProjectID)
	return project, storeErr(err)
}

// CreateTask inserts the task and its leader's feed row in one transaction,
// then pushes a live event to the leader.
func (s *TaskService) CreateTask(ctx context.Context, callerID, boardID, title, leaderID string) (models.Task, error) {
	project, err := s.projectForTaskBoard(ctx, boardID)
	if err != nil {
		return models.Task{}, err
	}

	callerRole, err := s.perms.RoleInProject(ctx, callerID, project.ID)
	if err != nil {
		return models.Task{}, err
	}
	if callerRole != RoleAdmin {
		return models.Task{}, ErrPermissionDenied
	}

	leaderRole, err := s.perms.RoleInProject(ctx, leaderID, project.ID)
	if err != nil {
		return models.Task{}, err
	}
	if leaderRole == RoleOutsider {
		return models.Task{}, ErrPermissionDenied
	}

	var task models.Task
	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		task, err = s.store.Tasks().CreateTask(ctx, models.Task{
			BoardID:  boardID,
			Title:    title,
			LeaderID: leaderID,
		})
		if err != nil {
			return err
		}
		return s.feeds.FanOutTask(ctx, task.ID, leaderID)
	})
	if err != nil {
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}

	s.feeds.Notify([]string{leaderID}, FeedEvent{Kind: FeedKindTask, TargetID: task.ID, Title: title})
	log.Info().Str("task", task.ID).Str("leader", leaderID).Msg("task created")
	return task, nil
}

// AddSubtask creates a subtask under a task. Subtasks are keyed by title
// within their task.
func (s *TaskService) AddSubtask(ctx context.Context, callerID, taskID, title string) (models.Subtask, error) {
	task, err := s.store.Tasks().FindTaskByID(ctx, taskID)
	if err != nil {
		return models.Subtask{}, storeErr(err)
	}
	project, err := s.projectForTaskBoard(ctx, task.BoardID)
	if err != nil {
		return models.Subtask{}, err
	}

	callerRole, err := s.perms.RoleInProject(ctx, callerID, project.ID)
	if err != nil {
		return models.Subtask{}, err
	}
	if callerRole == RoleOutsider {
		return models.Subtask{}, ErrPermissionDenied
	}

	subtask, err := s.store.Tasks().CreateSubtask(ctx, models.Subtask{TaskID: taskID, Title: title})
	if err != nil {
		return models.Subtask{}, storeErr(err)
	}
	return subtask, nil
}

// AssignSubtask makes a project member principal of a subtask and fans out
// their task feed row in the same transaction.
func (s *TaskService) AssignSubtask(ctx context.Context, callerID, taskID, subtaskTitle, principalID string) error {
	task, err := s.store.Tasks().FindTaskByID(ctx, taskID)
	if err != nil {
		return storeErr(err)
	}
	if _, err := s.store.Tasks().FindSubtask(ctx, taskID, subtaskTitle); err != nil {
		return storeErr(err)
	}
	project, err := s.projectForTaskBoard(ctx, task.BoardID)
	if err != nil {
		return err
	}

	callerRole, err := s.perms.RoleInProject(ctx, callerID, project.ID)
	if err != nil {
		return err
	}
	if callerRole == RoleOutsider {
		return ErrPermissionDenied
	}
	principalRole, err := s.perms.RoleInProject(ctx, principalID, project.ID)
	if err != nil {
		return err
	}
	if principalRole == RoleOutsider {
		return ErrPermissionDenied
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		_, err := s.store.Tasks().CreateAssignment(ctx, models.Assignment{
			TaskID:       taskID,
			SubtaskTitle: subtaskTitle,
			UserID:       principalID,
		})
		if err != nil {
			return err
		}
		return s.feeds.FanOutTask(ctx, taskID, principalID)
	})
	if err != nil {
		return storeErr(err)
	}

	s.feeds.Notify([]string{principalID}, FeedEvent{Kind: FeedKindTask, TargetID: taskID, Title: task.Title})
	return nil
}

// DeleteTask cascades the task's subtasks, assignments, and feed rows.
func (s *TaskService) DeleteTask(ctx context.Context, callerID, taskID string) error {
	task, err := s.store.Tasks().FindTaskByID(ctx, taskID)
	if err != nil {
		return storeErr(err)
	}
	project, err := s.projectForTaskBoard(ctx, task.BoardID)
	if err != nil {
		return err
	}

	callerRole, err := s.perms.RoleInProject(ctx, callerID, project.ID)
	if err != nil {
		return err
	}
	if callerRole != RoleAdmin {
		return ErrPermissionDenied
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.Tasks().DeleteAssignmentsByTask(ctx, taskID); err != nil {
			return err
		}
		if err := s.store.Tasks().DeleteSubtasksByTask(ctx, taskID); err != nil {
			return err
		}
		if err := s.store.Feeds().DeleteTaskFeedsByTask(ctx, taskID); err != nil {
			return err
		}
		return s.store.Tasks().DeleteTask(ctx, taskID)
	})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	log.Info().Str("task", taskID).Msg("task deleted")
	return nil
}

// ListBoardTasks returns the tasks on a board, visible to project members.
func (s *TaskService) ListBoardTasks(ctx context.Context, callerID, boardID string) ([]models.Task, error) {
	project, err := s.projectForTaskBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	callerRole, err := s.perms.RoleInProject(ctx, callerID, project.ID)
	if err != nil {
		return nil, err
	}
	if callerRole == RoleOutsider {
		return nil, ErrPermissionDenied
	}
	return s.store.Tasks().ListTasksByBoard(ctx, boardID)
}

// ListSubtasks returns a task's subtasks with their assignments resolved
// separately by the caller when needed.
func (s *TaskService) ListSubtasks(ctx context.Context, callerID, taskID string) ([]models.Subtask, error) {
	task, err := s.store.Tasks().FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, storeErr(err)
	}
	project, err := s.projectForTaskBoard(ctx, task.BoardID)
	if err != nil {
		return nil, err
	}
	callerRole, err := s.perms.RoleInProject(ctx, callerID, project.ID)
	if err != nil {
		return nil, err
	}
	if callerRole == RoleOutsider {
		return nil, ErrPermissionDenied
	}
	return s.store.Tasks().ListSubtasksByTask(ctx, taskID)
}
