package service

import (
	"testing"

	"collab-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamMemoLifecycle(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	member := f.user(t, "member")
	outsider := f.user(t, "outsider")
	team := f.team(t, admin, member)

	collection, err := f.store.Memos().FindCollectionByOwner(f.ctx, models.MemoScopeTeam, team.ID)
	require.NoError(t, err)

	memo, err := f.memos.CreateMemo(f.ctx, member, collection.ID, "notes", "standup summary")
	require.NoError(t, err)
	assert.Equal(t, member, memo.UploaderID)

	_, err = f.memos.CreateMemo(f.ctx, outsider, collection.ID, "notes", "x")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	memos, err := f.memos.ListMemos(f.ctx, admin, collection.ID)
	require.NoError(t, err)
	assert.Len(t, memos, 1)

	_, err = f.memos.ListMemos(f.ctx, outsider, collection.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestProjectMemoVisibilityFollowsProjectMembership(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	projectAdmin := f.user(t, "projectadmin")
	member := f.user(t, "member")
	team := f.team(t, teamAdmin, projectAdmin, member)
	project := f.project(t, teamAdmin, team, projectAdmin)

	collection, err := f.store.Memos().FindCollectionByOwner(f.ctx, models.MemoScopeProject, project.ID)
	require.NoError(t, err)

	// A team member outside the project cannot touch its memos.
	_, err = f.memos.CreateMemo(f.ctx, member, collection.ID, "notes", "x")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.memos.CreateMemo(f.ctx, projectAdmin, collection.ID, "notes", "x")
	assert.NoError(t, err)
}

func TestDeleteMemoPermissions(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin")
	uploader := f.user(t, "uploader")
	other := f.user(t, "other")
	team := f.team(t, admin, uploader, other)

	collection, err := f.store.Memos().FindCollectionByOwner(f.ctx, models.MemoScopeTeam, team.ID)
	require.NoError(t, err)

	memo, err := f.memos.CreateMemo(f.ctx, uploader, collection.ID, "notes", "x")
	require.NoError(t, err)

	// Another member may not delete someone else's memo.
	err = f.memos.DeleteMemo(f.ctx, other, memo.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// The uploader may.
	require.NoError(t, f.memos.DeleteMemo(f.ctx, uploader, memo.ID))

	// The scope admin may delete any memo.
	memo, err = f.memos.CreateMemo(f.ctx, uploader, collection.ID, "notes", "x")
	require.NoError(t, err)
	require.NoError(t, f.memos.DeleteMemo(f.ctx, admin, memo.ID))

	err = f.memos.DeleteMemo(f.ctx, admin, memo.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
