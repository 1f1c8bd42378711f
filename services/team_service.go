package service

import (
	"context"
	"errors"
	"fmt"

	"collab-server/models"
	"collab-server/repository"

	"github.com/rs/zerolog/log"
)

// TeamService owns the team lifecycle: atomic creation with the mandatory
// child rows, membership handling, and the revocation path that keeps task
// ownership consistent when a member leaves.
type TeamService struct {
	store repository.Store
	perms *PermissionService
}

func NewTeamService(store repository.Store, perms *PermissionService) *TeamService {
	return &TeamService{store: store, perms: perms}
}

// CreateTeam inserts the team, the creator's membership, and the team memo
// collection in one transaction. The creator becomes admin. No partial team
// is ever observable.
func (s *TeamService) CreateTeam(ctx context.Context, creatorID, name string) (models.Team, error) {
	if _, err := s.store.Users().FindUserByID(ctx, creatorID); err != nil {
		return models.Team{}, storeErr(err)
	}

	var team models.Team
	err := s.store.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		team, err = s.store.Teams().CreateTeam(ctx, models.Team{Name: name, AdminID: creatorID})
		if err != nil {
			return err
		}
		_, err = s.store.Teams().CreateMembership(ctx, models.TeamMembership{
			UserID: creatorID,
			TeamID: team.ID,
		})
		if err != nil {
			return err
		}
		_, err = s.store.Memos().CreateCollection(ctx, models.MemoCollection{
			Scope:   models.MemoScopeTeam,
			OwnerID: team.ID,
		})
		return err
	})
	if err != nil {
		return models.Team{}, fmt.Errorf("create team: %w", err)
	}

	log.Info().Str("team", team.ID).Str("admin", creatorID).Msg("team created")
	return team, nil
}

// InviteMember adds a membership for the target user. Only the team admin
// may invite; inviting an existing member is a conflict.
func (s *TeamService) InviteMember(ctx context.Context, callerID, teamID, targetID string) error {
	role, err := s.perms.RoleInTeam(ctx, callerID, teamID)
	if err != nil {
		return err
	}
	if role != RoleAdmin {
		return ErrPermissionDenied
	}
	if _, err := s.store.Users().FindUserByID(ctx, targetID); err != nil {
		return storeErr(err)
	}

	_, err = s.store.Teams().CreateMembership(ctx, models.TeamMembership{
		UserID: targetID,
		TeamID: teamID,
	})
	return storeErr(err)
}

// QuitTeam is the self-initiated revocation path. The admin cannot quit:
// the team would be left without one.
func (s *TeamService) QuitTeam(ctx context.Context, userID, teamID string) error {
	role, err := s.perms.RoleInTeam(ctx, userID, teamID)
	if err != nil {
		return err
	}
	if role != RoleMember {
		return ErrPermissionDenied
	}

	team, err := s.store.Teams().FindTeamByID(ctx, teamID)
	if err != nil {
		return storeErr(err)
	}
	if err := s.revoke(ctx, team, userID); err != nil {
		return fmt.Errorf("quit team: %w", err)
	}
	log.Info().Str("team", teamID).Str("user", userID).Msg("member quit team")
	return nil
}

// RemoveMember is the admin-initiated revocation path. The admin cannot be
// removed through it, and removing an already-removed user reports NotFound
// rather than succeeding silently.
func (s *TeamService) RemoveMember(ctx context.Context, callerID, teamID, targetID string) error {
	callerRole, err := s.perms.RoleInTeam(ctx, callerID, teamID)
	if err != nil {
		return err
	}
	if callerRole != RoleAdmin {
		return ErrPermissionDenied
	}

	targetRole, err := s.perms.RoleInTeam(ctx, targetID, teamID)
	if err != nil {
		return err
	}
	switch targetRole {
	case RoleOutsider:
		return ErrNotFound
	case RoleAdmin:
		return ErrPermissionDenied
	}

	team, err := s.store.Teams().FindTeamByID(ctx, teamID)
	if err != nil {
		return storeErr(err)
	}
	if err := s.revoke(ctx, team, targetID); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	log.Info().Str("team", teamID).Str("user", targetID).Msg("member removed from team")
	return nil
}

// revoke runs the membership revocation transaction. Ownership must be
// reassigned before the membership row is deleted, all within one
// transaction, so no reader ever observes a task or assignment pointing at
// a user outside the team. The reassignment target is always the team
// admin, even for projects whose own admin differs.
func (s *TeamService) revoke(ctx context.Context, team models.Team, targetID string) error {
	return s.store.WithTransaction(ctx, func(ctx context.Context) error {
		projects, err := s.store.Projects().ListProjectsByTeam(ctx, team.ID)
		if err != nil {
			return err
		}

		var taskBoardIDs, taskIDs, bulletinIDs []string
		for _, p := range projects {
			taskBoard, err := s.store.Projects().FindTaskBoardByProject(ctx, p.ID)
			if err != nil {
				return err
			}
			taskBoardIDs = append(taskBoardIDs, taskBoard.ID)

			tasks, err := s.store.Tasks().ListTasksByBoard(ctx, taskBoard.ID)
			if err != nil {
				return err
			}
			for _, t := range tasks {
				taskIDs = append(taskIDs, t.ID)
			}

			bulletinBoard, err := s.store.Projects().FindBulletinBoardByProject(ctx, p.ID)
			if err != nil {
				return err
			}
			bulletins, err := s.store.Bulletins().ListBulletinsByBoard(ctx, bulletinBoard.ID)
			if err != nil {
				return err
			}
			for _, b := range bulletins {
				bulletinIDs = append(bulletinIDs, b.ID)
			}
		}

		if err := s.store.Tasks().ReassignTaskLeaders(ctx, taskBoardIDs, targetID, team.AdminID); err != nil {
			return err
		}
		if err := s.store.Tasks().ReassignAssignments(ctx, taskIDs, targetID, team.AdminID); err != nil {
			return err
		}

		for _, p := range projects {
			if p.AdminID == targetID {
				// The project must not lose its admin: the team admin takes
				// over and is granted a membership when missing, so the
				// project admin always holds a membership row.
				if err := s.store.Projects().UpdateProjectAdmin(ctx, p.ID, team.AdminID); err != nil {
					return err
				}
				_, err := s.store.Projects().CreateMembership(ctx, models.ProjectMembership{
					UserID:    team.AdminID,
					ProjectID: p.ID,
				})
				if err != nil && !errors.Is(err, repository.ErrDuplicate) {
					return err
				}
			}
			err := s.store.Projects().DeleteMembership(ctx, targetID, p.ID)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
		}

		if err := s.store.Feeds().DeleteBulletinFeedsForUser(ctx, targetID, bulletinIDs); err != nil {
			return err
		}
		if err := s.store.Feeds().DeleteTaskFeedsForUser(ctx, targetID, taskIDs); err != nil {
			return err
		}

		return s.store.Teams().DeleteMembership(ctx, targetID, team.ID)
	})
}

// DeleteTeam cascades through every project, board, task, feed, membership,
// and memo owned by the team, in one transaction.
func (s *TeamService) DeleteTeam(ctx context.Context, callerID, teamID string) error {
	role, err := s.perms.RoleInTeam(ctx, callerID, teamID)
	if err != nil {
		return err
	}
	if role != RoleAdmin {
		return ErrPermissionDenied
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		projects, err := s.store.Projects().ListProjectsByTeam(ctx, teamID)
		if err != nil {
			return err
		}
		for _, p := range projects {
			if err := deleteProjectCascade(ctx, s.store, p.ID); err != nil {
				return err
			}
		}

		collection, err := s.store.Memos().FindCollectionByOwner(ctx, models.MemoScopeTeam, teamID)
		if err == nil {
			if err := s.store.Memos().DeleteMemosByCollection(ctx, collection.ID); err != nil {
				return err
			}
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		if err := s.store.Memos().DeleteCollectionByOwner(ctx, models.MemoScopeTeam, teamID); err != nil {
			return err
		}

		if err := s.store.Teams().DeleteMembershipsByTeam(ctx, teamID); err != nil {
			return err
		}
		return s.store.Teams().DeleteTeam(ctx, teamID)
	})
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	log.Info().Str("team", teamID).Msg("team deleted")
	return nil
}

// RecordAccess bumps the membership access counter used to infer the user's
// preferred team.
func (s *TeamService) RecordAccess(ctx context.Context, userID, teamID string) error {
	return storeErr(s.store.Teams().IncrementAccessCount(ctx, userID, teamID))
}

// PreferredTeam returns the team the user has accessed most often.
func (s *TeamService) PreferredTeam(ctx context.Context, userID string) (models.Team, error) {
	memberships, err := s.store.Teams().ListMembershipsByUser(ctx, userID)
	if err != nil {
		return models.Team{}, err
	}
	if len(memberships) == 0 {
		return models.Team{}, ErrNotFound
	}

	best := memberships[0]
	for _, m := range memberships[1:] {
		if m.AccessCount > best.AccessCount {
			best = m
		}
	}
	team, err := s.store.Teams().FindTeamByID(ctx, best.TeamID)
	return team, storeErr(err)
}
