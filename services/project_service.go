package service

import (
	"context"
	"errors"
	"fmt"

	"collab-server/models"
	"collab-server/repository"

	"github.com/rs/zerolog/log"
)

// ProjectService owns the project lifecycle. A project is born with all four
// mandatory children — admin membership, bulletin board, task board, memo
// collection — or not at all.
type ProjectService struct {
	store repository.Store
	perms *PermissionService
}

func NewProjectService(store repository.Store, perms *PermissionService) *ProjectService {
	return &ProjectService{store: store, perms: perms}
}

// CreateProject requires the caller to be the team admin and the designated
// admin to already hold a team membership. All five inserts share one
// transaction.
func (s *ProjectService) CreateProject(ctx context.Context, callerID, teamID, name, adminID string) (models.Project, error) {
	callerRole, err := s.perms.RoleInTeam(ctx, callerID, teamID)
	if err != nil {
		return models.Project{}, err
	}
	if callerRole != RoleAdmin {
		return models.Project{}, ErrPermissionDenied
	}

	if _, err := s.store.Users().FindUserByID(ctx, adminID); err != nil {
		return models.Project{}, storeErr(err)
	}
	adminRole, err := s.perms.RoleInTeam(ctx, adminID, teamID)
	if err != nil {
		return models.Project{}, err
	}
	if adminRole == RoleOutsider {
		return models.Project{}, ErrPermissionDenied
	}

	var project models.Project
	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		project, err = s.store.Projects().CreateProject(ctx, models.Project{
			TeamID:  teamID,
			AdminID: adminID,
			Name:    name,
		})
		if err != nil {
			return err
		}
		_, err = s.store.Projects().CreateMembership(ctx, models.ProjectMembership{
			UserID:    adminID,
			ProjectID: project.ID,
		})
		if err != nil {
			return err
		}
		_, err = s.store.Projects().CreateBulletinBoard(ctx, models.BulletinBoard{ProjectID: project.ID})
		if err != nil {
			return err
		}
		_, err = s.store.Projects().CreateTaskBoard(ctx, models.TaskBoard{ProjectID: project.ID})
		if err != nil {
			return err
		}
		_, err = s.store.Memos().CreateCollection(ctx, models.MemoCollection{
			Scope:   models.MemoScopeProject,
			OwnerID: project.ID,
		})
		return err
	})
	if err != nil {
		return models.Project{}, fmt.Errorf("create project: %w", err)
	}

	log.Info().Str("project", project.ID).Str("team", teamID).Str("admin", adminID).Msg("project created")
	return project, nil
}

// DeleteProject requires the caller to hold a team membership and to be the
// project's admin.
func (s *ProjectService) DeleteProject(ctx context.Context, callerID, teamID, projectID string) error {
	project, err := s.store.Projects().FindProjectByID(ctx, projectID)
	if err != nil {
		return storeErr(err)
	}
	if project.TeamID != teamID {
		return ErrNotFound
	}

	teamRole, err := s.perms.RoleInTeam(ctx, callerID, teamID)
	if err != nil {
		return err
	}
	if teamRole == RoleOutsider || project.AdminID != callerID {
		return ErrPermissionDenied
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		return deleteProjectCascade(ctx, s.store, projectID)
	})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	log.Info().Str("project", projectID).Msg("project deleted")
	return nil
}

// AddMember grants a project membership. The target must already belong to
// the owning team, so no project member can be invisible to the team.
func (s *ProjectService) AddMember(ctx context.Context, callerID, projectID, targetID string) error {
	project, err := s.store.Projects().FindProjectByID(ctx, projectID)
	if err != nil {
		return storeErr(err)
	}

	callerRole, err := s.perms.RoleInProject(ctx, callerID, projectID)
	if err != nil {
		return err
	}
	if callerRole != RoleAdmin {
		return ErrPermissionDenied
	}

	targetTeamRole, err := s.perms.RoleInTeam(ctx, targetID, project.TeamID)
	if err != nil {
		return err
	}
	if targetTeamRole == RoleOutsider {
		return ErrPermissionDenied
	}

	_, err = s.store.Projects().CreateMembership(ctx, models.ProjectMembership{
		UserID:    targetID,
		ProjectID: projectID,
	})
	return storeErr(err)
}

// RemoveMember revokes a project membership. Task and subtask ownership the
// target held within this project moves to the project admin before the
// membership row is deleted, in one transaction.
func (s *ProjectService) RemoveMember(ctx context.Context, callerID, projectID, targetID string) error {
	project, err := s.store.Projects().FindProjectByID(ctx, projectID)
	if err != nil {
		return storeErr(err)
	}

	callerRole, err := s.perms.RoleInProject(ctx, callerID, projectID)
	if err != nil {
		return err
	}
	if callerRole != RoleAdmin {
		return ErrPermissionDenied
	}

	targetRole, err := s.perms.RoleInProject(ctx, targetID, projectID)
	if err != nil {
		return err
	}
	switch targetRole {
	case RoleOutsider:
		return ErrNotFound
	case RoleAdmin:
		return ErrPermissionDenied
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		taskBoard, err := s.store.Projects().FindTaskBoardByProject(ctx, projectID)
		if err != nil {
			return err
		}
		tasks, err := s.store.Tasks().ListTasksByBoard(ctx, taskBoard.ID)
		if err != nil {
			return err
		}
		taskIDs := make([]string, 0, len(tasks))
		for _, t := range tasks {
			taskIDs = append(taskIDs, t.ID)
		}

		bulletinBoard, err := s.store.Projects().FindBulletinBoardByProject(ctx, projectID)
		if err != nil {
			return err
		}
		bulletins, err := s.store.Bulletins().ListBulletinsByBoard(ctx, bulletinBoard.ID)
		if err != nil {
			return err
		}
		bulletinIDs := make([]string, 0, len(bulletins))
		for _, b := range bulletins {
			bulletinIDs = append(bulletinIDs, b.ID)
		}

		if err := s.store.Tasks().ReassignTaskLeaders(ctx, []string{taskBoard.ID}, targetID, project.AdminID); err != nil {
			return err
		}
		if err := s.store.Tasks().ReassignAssignments(ctx, taskIDs, targetID, project.AdminID); err != nil {
			return err
		}
		if err := s.store.Feeds().DeleteBulletinFeedsForUser(ctx, targetID, bulletinIDs); err != nil {
			return err
		}
		if err := s.store.Feeds().DeleteTaskFeedsForUser(ctx, targetID, taskIDs); err != nil {
			return err
		}
		return s.store.Projects().DeleteMembership(ctx, targetID, projectID)
	})
	if err != nil {
		return fmt.Errorf("remove project member: %w", err)
	}

	log.Info().Str("project", projectID).Str("user", targetID).Msg("member removed from project")
	return nil
}

// deleteProjectCascade removes a project and every row hanging off it. Must
// run inside a transaction.
func deleteProjectCascade(ctx context.Context, store repository.Store, projectID string) error {
	taskBoard, err := store.Projects().FindTaskBoardByProject(ctx, projectID)
	if err == nil {
		tasks, err := store.Tasks().ListTasksByBoard(ctx, taskBoard.ID)
		if err != nil {
			return err
		}
		for _, t := range tasks {
			if err := store.Tasks().DeleteAssignmentsByTask(ctx, t.ID); err != nil {
				return err
			}
			if err := store.Tasks().DeleteSubtasksByTask(ctx, t.ID); err != nil {
				return err
			}
			if err := store.Feeds().DeleteTaskFeedsByTask(ctx, t.ID); err != nil {
				return err
			}
			if err := store.Tasks().DeleteTask(ctx, t.ID); err != nil {
				return err
			}
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	bulletinBoard, err := store.Projects().FindBulletinBoardByProject(ctx, projectID)
	if err == nil {
		bulletins, err := store.Bulletins().ListBulletinsByBoard(ctx, bulletinBoard.ID)
		if err != nil {
			return err
		}
		for _, b := range bulletins {
			if err := store.Feeds().DeleteBulletinFeedsByBulletin(ctx, b.ID); err != nil {
				return err
			}
		}
		if err := store.Bulletins().DeleteBulletinsByBoard(ctx, bulletinBoard.ID); err != nil {
			return err
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	collection, err := store.Memos().FindCollectionByOwner(ctx, models.MemoScopeProject, projectID)
	if err == nil {
		if err := store.Memos().DeleteMemosByCollection(ctx, collection.ID); err != nil {
			return err
		}
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err := store.Memos().DeleteCollectionByOwner(ctx, models.MemoScopeProject, projectID); err != nil {
		return err
	}

	if err := store.Projects().DeleteBoardsByProject(ctx, projectID); err != nil {
		return err
	}
	if err := store.Projects().DeleteMembershipsByProject(ctx, projectID); err != nil {
		return err
	}
	return store.Projects().DeleteProject(ctx, projectID)
}
