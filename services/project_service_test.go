package service

import (
	"errors"
	"testing"

	"collab-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectCreatesMandatoryChildren(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	projectAdmin := f.user(t, "projectadmin")
	team := f.team(t, teamAdmin, projectAdmin)

	project, err := f.projects.CreateProject(f.ctx, teamAdmin, team.ID, "launch", projectAdmin)
	require.NoError(t, err)
	assert.Equal(t, projectAdmin, project.AdminID)

	role, err := f.perms.RoleInProject(f.ctx, projectAdmin, project.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = f.store.Projects().FindBulletinBoardByProject(f.ctx, project.ID)
	assert.NoError(t, err)
	_, err = f.store.Projects().FindTaskBoardByProject(f.ctx, project.ID)
	assert.NoError(t, err)
	_, err = f.store.Memos().FindCollectionByOwner(f.ctx, models.MemoScopeProject, project.ID)
	assert.NoError(t, err)
}

func TestCreateProjectPreconditions(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	member := f.user(t, "member")
	outsider := f.user(t, "outsider")
	team := f.team(t, teamAdmin, member)

	// Only the team admin may create projects.
	_, err := f.projects.CreateProject(f.ctx, member, team.ID, "launch", member)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// The designated admin must belong to the team.
	_, err = f.projects.CreateProject(f.ctx, teamAdmin, team.ID, "launch", outsider)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.projects.CreateProject(f.ctx, teamAdmin, team.ID, "launch", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProjectRollsBackOnChildFailure(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	team := f.team(t, teamAdmin)

	f.store.FailOn("projects.CreateTaskBoard", errors.New("write failed"))
	_, err := f.projects.CreateProject(f.ctx, teamAdmin, team.ID, "launch", teamAdmin)
	require.Error(t, err)

	projects, err := f.store.Projects().ListProjectsByTeam(f.ctx, team.ID)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestAddMemberRequiresTeamMembership(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	projectAdmin := f.user(t, "projectadmin")
	outsider := f.user(t, "outsider")
	team := f.team(t, teamAdmin, projectAdmin)
	project := f.project(t, teamAdmin, team, projectAdmin)

	err := f.projects.AddMember(f.ctx, projectAdmin, project.ID, outsider)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestAddMemberRequiresProjectAdmin(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	projectAdmin := f.user(t, "projectadmin")
	member := f.user(t, "member")
	other := f.user(t, "other")
	team := f.team(t, teamAdmin, projectAdmin, member, other)
	project := f.project(t, teamAdmin, team, projectAdmin, member)

	err := f.projects.AddMember(f.ctx, member, project.ID, other)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, f.projects.AddMember(f.ctx, projectAdmin, project.ID, other))
	err = f.projects.AddMember(f.ctx, projectAdmin, project.ID, other)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRemoveProjectMemberReassignsToProjectAdmin(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	projectAdmin := f.user(t, "projectadmin")
	member := f.user(t, "member")
	team := f.team(t, teamAdmin, projectAdmin, member)
	project := f.project(t, teamAdmin, team, projectAdmin, member)
	board := f.taskBoard(t, project.ID)

	task, err := f.tasks.CreateTask(f.ctx, projectAdmin, board.ID, "build", member)
	require.NoError(t, err)

	require.NoError(t, f.projects.RemoveMember(f.ctx, projectAdmin, project.ID, member))

	// Project-scoped removal reassigns to the project admin, not the team
	// admin.
	got, err := f.store.Tasks().FindTaskByID(f.ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, projectAdmin, got.LeaderID)

	// The team membership is untouched.
	role, err := f.perms.RoleInTeam(f.ctx, member, team.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleMember, role)
}

func TestRemoveProjectMemberPreconditions(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	projectAdmin := f.user(t, "projectadmin")
	member := f.user(t, "member")
	team := f.team(t, teamAdmin, projectAdmin, member)
	project := f.project(t, teamAdmin, team, projectAdmin, member)

	err := f.projects.RemoveMember(f.ctx, member, project.ID, projectAdmin)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = f.projects.RemoveMember(f.ctx, projectAdmin, project.ID, projectAdmin)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, f.projects.RemoveMember(f.ctx, projectAdmin, project.ID, member))
	err = f.projects.RemoveMember(f.ctx, projectAdmin, project.ID, member)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProjectCascades(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	projectAdmin := f.user(t, "projectadmin")
	team := f.team(t, teamAdmin, projectAdmin)
	project := f.project(t, teamAdmin, team, projectAdmin)
	board := f.taskBoard(t, project.ID)

	task, err := f.tasks.CreateTask(f.ctx, projectAdmin, board.ID, "build", projectAdmin)
	require.NoError(t, err)

	require.NoError(t, f.projects.DeleteProject(f.ctx, projectAdmin, team.ID, project.ID))

	_, err = f.store.Projects().FindProjectByID(f.ctx, project.ID)
	assert.Error(t, err)
	_, err = f.store.Tasks().FindTaskByID(f.ctx, task.ID)
	assert.Error(t, err)
	_, err = f.store.Projects().FindTaskBoardByProject(f.ctx, project.ID)
	assert.Error(t, err)
	_, err = f.store.Memos().FindCollectionByOwner(f.ctx, models.MemoScopeProject, project.ID)
	assert.Error(t, err)
}

func TestDeleteProjectPreconditions(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	projectAdmin := f.user(t, "projectadmin")
	team := f.team(t, teamAdmin, projectAdmin)
	project := f.project(t, teamAdmin, team, projectAdmin)

	// The team admin holds a team membership but is not the project admin.
	err := f.projects.DeleteProject(f.ctx, teamAdmin, team.ID, project.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// A project is only addressable through its own team.
	otherTeam, err := f.teams.CreateTeam(f.ctx, teamAdmin, "beta")
	require.NoError(t, err)
	err = f.projects.DeleteProject(f.ctx, projectAdmin, otherTeam.ID, project.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
