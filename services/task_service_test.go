package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskFansOutToLeader(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	member := f.user(t, "member")
	team := f.team(t, teamAdmin, member)
	project := f.project(t, teamAdmin, team, teamAdmin, member)
	board := f.taskBoard(t, project.ID)

	task, err := f.tasks.CreateTask(f.ctx, teamAdmin, board.ID, "build", member)
	require.NoError(t, err)
	assert.Equal(t, member, task.LeaderID)

	feeds, err := f.feeds.ListTaskFeeds(f.ctx, member)
	require.NoError(t, err)
	require.Len(t, feeds, 1)
	assert.Equal(t, task.ID, feeds[0].TaskID)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, member, f.notifier.events[0].UserID)
	assert.Equal(t, FeedKindTask, f.notifier.events[0].Event.Kind)
}

func TestCreateTaskPreconditions(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	member := f.user(t, "member")
	outsider := f.user(t, "outsider")
	team := f.team(t, teamAdmin, member, outsider)
	project := f.project(t, teamAdmin, team, teamAdmin, member)
	board := f.taskBoard(t, project.ID)

	// Only the project admin may create tasks.
	_, err := f.tasks.CreateTask(f.ctx, member, board.ID, "build", member)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// The leader must be a project member.
	_, err = f.tasks.CreateTask(f.ctx, teamAdmin, board.ID, "build", outsider)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = f.tasks.CreateTask(f.ctx, teamAdmin, "missing", "build", member)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateTaskRollsBackOnFanOutFailure(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	team := f.team(t, teamAdmin)
	project := f.project(t, teamAdmin, team, teamAdmin)
	board := f.taskBoard(t, project.ID)

	f.store.FailOn("feeds.CreateTaskFeed", errors.New("write failed"))
	_, err := f.tasks.CreateTask(f.ctx, teamAdmin, board.ID, "build", teamAdmin)
	require.Error(t, err)

	tasks, err := f.store.Tasks().ListTasksByBoard(f.ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Empty(t, f.notifier.events)
}

func TestAddSubtask(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	member := f.user(t, "member")
	team := f.team(t, teamAdmin, member)
	project := f.project(t, teamAdmin, team, teamAdmin, member)
	board := f.taskBoard(t, project.ID)

	task, err := f.tasks.CreateTask(f.ctx, teamAdmin, board.ID, "build", member)
	require.NoError(t, err)

	// Any project member may add subtasks.
	_, err = f.tasks.AddSubtask(f.ctx, member, task.ID, "step 1")
	require.NoError(t, err)

	// Subtasks are keyed by title within their task.
	_, err = f.tasks.AddSubtask(f.ctx, member, task.ID, "step 1")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAssignSubtask(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	member := f.user(t, "member")
	other := f.user(t, "other")
	team := f.team(t, teamAdmin, member, other)
	project := f.project(t, teamAdmin, team, teamAdmin, member, other)
	board := f.taskBoard(t, project.ID)

	task, err := f.tasks.CreateTask(f.ctx, teamAdmin, board.ID, "build", member)
	require.NoError(t, err)
	_, err = f.tasks.AddSubtask(f.ctx, member, task.ID, "step 1")
	require.NoError(t, err)

	err = f.tasks.AssignSubtask(f.ctx, member, task.ID, "missing", other)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, f.tasks.AssignSubtask(f.ctx, member, task.ID, "step 1", other))

	assignments, err := f.store.Tasks().ListAssignmentsByTask(f.ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	assert.Equal(t, other, assignments[0].UserID)

	feeds, err := f.feeds.ListTaskFeeds(f.ctx, other)
	require.NoError(t, err)
	assert.Len(t, feeds, 1)
}

func TestAssignSubtaskPrincipalMustBeMember(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	member := f.user(t, "member")
	outsider := f.user(t, "outsider")
	team := f.team(t, teamAdmin, member, outsider)
	project := f.project(t, teamAdmin, team, teamAdmin, member)
	board := f.taskBoard(t, project.ID)

	task, err := f.tasks.CreateTask(f.ctx, teamAdmin, board.ID, "build", member)
	require.NoError(t, err)
	_, err = f.tasks.AddSubtask(f.ctx, member, task.ID, "step 1")
	require.NoError(t, err)

	err = f.tasks.AssignSubtask(f.ctx, member, task.ID, "step 1", outsider)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestAssignSubtaskSecondAssignmentKeepsSingleFeedRow(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	member := f.user(t, "member")
	team := f.team(t, teamAdmin, member)
	project := f.project(t, teamAdmin, team, teamAdmin, member)
	board := f.taskBoard(t, project.ID)

	task, err := f.tasks.CreateTask(f.ctx, teamAdmin, board.ID, "build", teamAdmin)
	require.NoError(t, err)
	_, err = f.tasks.AddSubtask(f.ctx, member, task.ID, "step 1")
	require.NoError(t, err)
	_, err = f.tasks.AddSubtask(f.ctx, member, task.ID, "step 2")
	require.NoError(t, err)

	require.NoError(t, f.tasks.AssignSubtask(f.ctx, teamAdmin, task.ID, "step 1", member))
	require.NoError(t, f.tasks.AssignSubtask(f.ctx, teamAdmin, task.ID, "step 2", member))

	// Two assignments on the same task collapse into one feed row.
	feeds, err := f.feeds.ListTaskFeeds(f.ctx, member)
	require.NoError(t, err)
	assert.Len(t, feeds, 1)
}

func TestDeleteTaskCascades(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	member := f.user(t, "member")
	team := f.team(t, teamAdmin, member)
	project := f.project(t, teamAdmin, team, teamAdmin, member)
	board := f.taskBoard(t, project.ID)

	task, err := f.tasks.CreateTask(f.ctx, teamAdmin, board.ID, "build", member)
	require.NoError(t, err)
	_, err = f.tasks.AddSubtask(f.ctx, member, task.ID, "step 1")
	require.NoError(t, err)
	require.NoError(t, f.tasks.AssignSubtask(f.ctx, member, task.ID, "step 1", member))

	// Members cannot delete tasks.
	err = f.tasks.DeleteTask(f.ctx, member, task.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, f.tasks.DeleteTask(f.ctx, teamAdmin, task.ID))

	_, err = f.store.Tasks().FindTaskByID(f.ctx, task.ID)
	assert.Error(t, err)
	subtasks, err := f.store.Tasks().ListSubtasksByTask(f.ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, subtasks)
	feeds, err := f.feeds.ListTaskFeeds(f.ctx, member)
	require.NoError(t, err)
	assert.Empty(t, feeds)
}

func TestListBoardTasksRequiresMembership(t *testing.T) {
	f := newFixture(t)
	teamAdmin := f.user(t, "teamadmin")
	outsider := f.user(t, "outsider")
	team := f.team(t, teamAdmin, outsider)
	project := f.project(t, teamAdmin, team, teamAdmin)
	board := f.taskBoard(t, project.ID)

	_, err := f.tasks.ListBoardTasks(f.ctx, outsider, board.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
