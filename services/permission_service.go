package service

import (
	"context"
	"errors"

	"collab-server/repository"
)

// Role is the permission tier a user holds against a team or project.
type Role int

const (
	RoleOutsider Role = iota
	RoleMember
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleMember:
		return "member"
	default:
		return "outsider"
	}
}

// PermissionService derives roles from the latest committed state on every
// call. Admin-ness comes from the owning entity's admin pointer, never from
// a flag on the membership row, so there is nothing to go stale. It performs
// no writes and is safe to call concurrently.
type PermissionService struct {
	store repository.Store
}

func NewPermissionService(store repository.Store) *PermissionService {
	return &PermissionService{store: store}
}

// RoleInTeam returns ErrNotFound only when the team itself does not exist.
// A missing membership is a normal RoleOutsider result.
func (s *PermissionService) RoleInTeam(ctx context.Context, userID, teamID string) (Role, error) {
	team, err := s.store.Teams().FindTeamByID(ctx, teamID)
	if err != nil {
		return RoleOutsider, storeErr(err)
	}

	_, err = s.store.Teams().FindMembership(ctx, userID, teamID)
	if errors.Is(err, repository.ErrNotFound) {
		return RoleOutsider, nil
	}
	if err != nil {
		return RoleOutsider, err
	}

	if team.AdminID == userID {
		return RoleAdmin, nil
	}
	return RoleMember, nil
}

// RoleInProject mirrors RoleInTeam for projects.
func (s *PermissionService) RoleInProject(ctx context.Context, userID, projectID string) (Role, error) {
	project, err := s.store.Projects().FindProjectByID(ctx, projectID)
	if err != nil {
		return RoleOutsider, storeErr(err)
	}

	_, err = s.store.Projects().FindMembership(ctx, userID, projectID)
	if errors.Is(err, repository.ErrNotFound) {
		return RoleOutsider, nil
	}
	if err != nil {
		return RoleOutsider, err
	}

	if project.AdminID == userID {
		return RoleAdmin, nil
	}
	return RoleMember, nil
}
