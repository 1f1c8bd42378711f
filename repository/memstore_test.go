package repository

import (
	"context"
	"errors"
	"testing"

	"collab-server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreTransactionRollback(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	_, err := store.Teams().CreateTeam(ctx, models.Team{ID: "t1", Name: "kept"})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := store.Teams().CreateTeam(ctx, models.Team{ID: "t2", Name: "doomed"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = store.Teams().FindTeamByID(ctx, "t1")
	assert.NoError(t, err)
	_, err = store.Teams().FindTeamByID(ctx, "t2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemStoreFailpointIsOneShot(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	boom := errors.New("boom")
	store.FailOn("teams.CreateTeam", boom)

	_, err := store.Teams().CreateTeam(ctx, models.Team{Name: "first"})
	assert.ErrorIs(t, err, boom)

	_, err = store.Teams().CreateTeam(ctx, models.Team{Name: "second"})
	assert.NoError(t, err)
}

func TestMemStoreDuplicateMembership(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	_, err := store.Teams().CreateMembership(ctx, models.TeamMembership{UserID: "u1", TeamID: "t1"})
	require.NoError(t, err)
	_, err = store.Teams().CreateMembership(ctx, models.TeamMembership{UserID: "u1", TeamID: "t1"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemStoreReassignScopedByBoard(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	_, err := store.Tasks().CreateTask(ctx, models.Task{ID: "in", BoardID: "b1", LeaderID: "u1"})
	require.NoError(t, err)
	_, err = store.Tasks().CreateTask(ctx, models.Task{ID: "out", BoardID: "b2", LeaderID: "u1"})
	require.NoError(t, err)

	require.NoError(t, store.Tasks().ReassignTaskLeaders(ctx, []string{"b1"}, "u1", "u2"))

	in, err := store.Tasks().FindTaskByID(ctx, "in")
	require.NoError(t, err)
	assert.Equal(t, "u2", in.LeaderID)
	out, err := store.Tasks().FindTaskByID(ctx, "out")
	require.NoError(t, err)
	assert.Equal(t, "u1", out.LeaderID)
}
