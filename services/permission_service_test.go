package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleInTeam(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	outsider := f.user(t, "outsider")
	team := f.team(t, admin, member)

	role, err := f.perms.RoleInTeam(f.ctx, admin, team.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = f.perms.RoleInTeam(f.ctx, member, team.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleMember, role)

	role, err = f.perms.RoleInTeam(f.ctx, outsider, team.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleOutsider, role)
}

func TestRoleInTeamUnknownTeam(t *testing.T) {
	f := newFixture(t)
	user := f.user(t, "user")

	_, err := f.perms.RoleInTeam(f.ctx, user, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRoleInProject(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	projectAdmin := f.user(t, "projectadmin")
	member := f.user(t, "member")
	team := f.team(t, teamAdmin, projectAdmin, member)
	project := f.project(t, teamAdmin, team, projectAdmin, member)

	role, err := f.perms.RoleInProject(f.ctx, projectAdmin, project.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = f.perms.RoleInProject(f.ctx, member, project.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleMember, role)

	// A team membership alone grants nothing inside the project.
	role, err = f.perms.RoleInProject(f.ctx, teamAdmin, project.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleOutsider, role)
}

func TestRoleDerivedFromAdminPointer(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	projectAdmin := f.user(t, "projectadmin")
	member := f.user(t, "member")
	team := f.team(t, teamAdmin, projectAdmin, member)
	project := f.project(t, teamAdmin, team, projectAdmin, member)

	// Moving the admin pointer is enough to change both users' roles; no
	// membership row is touched.
	require.NoError(t, f.store.Projects().UpdateProjectAdmin(f.ctx, project.ID, member))

	role, err := f.perms.RoleInProject(f.ctx, member, project.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)

	role, err = f.perms.RoleInProject(f.ctx, projectAdmin, project.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleMember, role)
}

func TestRoleString(t *testing.T) {
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, "member", RoleMember.String())
	assert.Equal(t, "outsider", RoleOutsider.String())
}
