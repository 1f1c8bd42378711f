package service

import (
	"errors"
	"testing"

	"collab-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeamCreatesMandatoryChildren(t *testing.T) {
	f := newFixture(t)
	creator := f.user(t, "creator")

	team, err := f.teams.CreateTeam(f.ctx, creator, "alpha")
	require.NoError(t, err)
	assert.Equal(t, creator, team.AdminID)

	role, err := f.perms.RoleInTeam(f.ctx, creator, team.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	_, err = f.store.Memos().FindCollectionByOwner(f.ctx, models.MemoScopeTeam, team.ID)
	assert.NoError(t, err)
}

func TestCreateTeamRollsBackOnChildFailure(t *testing.T) {
	f := newFixture(t)
	creator := f.user(t, "creator")

	f.store.FailOn("memos.CreateCollection", errors.New("write failed"))
	_, err := f.teams.CreateTeam(f.ctx, creator, "alpha")
	require.Error(t, err)

	// Neither the team nor the membership survived.
	memberships, err := f.store.Teams().ListMembershipsByUser(f.ctx, creator)
	require.NoError(t, err)
	assert.Empty(t, memberships)
}

func TestCreateTeamUnknownCreator(t *testing.T) {
	f := newFixture(t)
	_, err := f.teams.CreateTeam(f.ctx, "missing", "alpha")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInviteMember(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	target := f.user(t, "target")
	team := f.team(t, admin, member)

	// Only the admin may invite.
	err := f.teams.InviteMember(f.ctx, member, team.ID, target)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, f.teams.InviteMember(f.ctx, admin, team.ID, target))

	// Inviting an existing member is a conflict.
	err = f.teams.InviteMember(f.ctx, admin, team.ID, target)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestQuitTeam(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	team := f.team(t, admin, member)

	require.NoError(t, f.teams.QuitTeam(f.ctx, member, team.ID))

	role, err := f.perms.RoleInTeam(f.ctx, member, team.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleOutsider, role)
}

func TestQuitTeamAdminForbidden(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	team := f.team(t, admin)

	err := f.teams.QuitTeam(f.ctx, admin, team.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestRemoveMemberPreconditions(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	outsider := f.user(t, "outsider")
	team := f.team(t, admin, member)

	err := f.teams.RemoveMember(f.ctx, member, team.ID, admin)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = f.teams.RemoveMember(f.ctx, admin, team.ID, admin)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	err = f.teams.RemoveMember(f.ctx, admin, team.ID, outsider)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveMemberTwiceReportsNotFound(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	team := f.team(t, admin, member)

	require.NoError(t, f.teams.RemoveMember(f.ctx, admin, team.ID, member))
	err := f.teams.RemoveMember(f.ctx, admin, team.ID, member)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveMemberReassignsOwnershipToTeamAdmin(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	team := f.team(t, admin, member)
	project := f.project(t, admin, team, admin, member)
	board := f.taskBoard(t, project.ID)

	task, err := f.tasks.CreateTask(f.ctx, admin, board.ID, "build", member)
	require.NoError(t, err)
	_, err = f.tasks.AddSubtask(f.ctx, member, task.ID, "step 1")
	require.NoError(t, err)
	require.NoError(t, f.tasks.AssignSubtask(f.ctx, admin, task.ID, "step 1", member))

	require.NoError(t, f.teams.RemoveMember(f.ctx, admin, team.ID, member))

	// Task leadership and the assignment moved to the team admin.
	got, err := f.store.Tasks().FindTaskByID(f.ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, admin, got.LeaderID)

	assignments, err := f.store.Tasks().ListAssignmentsByTask(f.ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, admin, assignments[0].UserID)

	// Project membership and feed rows for the target are gone.
	_, err = f.store.Projects().FindMembership(f.ctx, member, project.ID)
	assert.Error(t, err)
	taskFeeds, err := f.feeds.ListTaskFeeds(f.ctx, member)
	require.NoError(t, err)
	assert.Empty(t, taskFeeds)
}

func TestRemoveMemberRepairsProjectAdminPointer(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	team := f.team(t, admin, member)
	// The target administers the project; the team admin is not a project
	// member at all.
	project := f.project(t, admin, team, member)

	require.NoError(t, f.teams.RemoveMember(f.ctx, admin, team.ID, member))

	got, err := f.store.Projects().FindProjectByID(f.ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, admin, got.AdminID)

	// The team admin was granted the membership the role requires.
	role, err := f.perms.RoleInProject(f.ctx, admin, project.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}

func TestRemoveMemberIsAtomic(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	team := f.team(t, admin, member)
	project := f.project(t, admin, team, admin, member)
	board := f.taskBoard(t, project.ID)

	task, err := f.tasks.CreateTask(f.ctx, admin, board.ID, "build", member)
	require.NoError(t, err)

	f.store.FailOn("teams.DeleteMembership", errors.New("write failed"))
	err = f.teams.RemoveMember(f.ctx, admin, team.ID, member)
	require.Error(t, err)

	// The reassignment rolled back with the failed delete.
	got, err := f.store.Tasks().FindTaskByID(f.ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, member, got.LeaderID)

	role, err := f.perms.RoleInTeam(f.ctx, member, team.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleMember, role)
}

func TestDeleteTeamCascades(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	team := f.team(t, admin, member)
	project := f.project(t, admin, team, admin, member)
	board := f.taskBoard(t, project.ID)

	_, err := f.tasks.CreateTask(f.ctx, admin, board.ID, "build", member)
	require.NoError(t, err)

	require.NoError(t, f.teams.DeleteTeam(f.ctx, admin, team.ID))

	_, err = f.store.Teams().FindTeamByID(f.ctx, team.ID)
	assert.Error(t, err)
	_, err = f.store.Projects().FindProjectByID(f.ctx, project.ID)
	assert.Error(t, err)
	tasks, err := f.store.Tasks().ListTasksByBoard(f.ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	_, err = f.store.Memos().FindCollectionByOwner(f.ctx, models.MemoScopeTeam, team.ID)
	assert.Error(t, err)
}

func TestDeleteTeamRequiresAdmin(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	team := f.team(t, admin, member)

	err := f.teams.DeleteTeam(f.ctx, member, team.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestPreferredTeam(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	other := f.user(t, "other")
	first := f.team(t, admin)
	second, err := f.teams.CreateTeam(f.ctx, admin, "beta")
	require.NoError(t, err)

	require.NoError(t, f.teams.RecordAccess(f.ctx, admin, first.ID))
	require.NoError(t, f.teams.RecordAccess(f.ctx, admin, second.ID))
	require.NoError(t, f.teams.RecordAccess(f.ctx, admin, second.ID))

	preferred, err := f.teams.PreferredTeam(f.ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, second.ID, preferred.ID)

	_, err = f.teams.PreferredTeam(f.ctx, other)
	assert.ErrorIs(t, err, ErrNotFound)
}
