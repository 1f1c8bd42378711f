package service

import (
	"context"
	"testing"

	"collab-server/models"
	"collab-server/repository"

	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	UserID string
	Event  FeedEvent
}

type recordingNotifier struct {
	events []recordedEvent
}

func (n *recordingNotifier) Publish(userID string, event FeedEvent) {
	n.events = append(n.events, recordedEvent{UserID: userID, Event: event})
}

type fixture struct {
	ctx       context.Context
	store     *repository.MemStore
	notifier  *recordingNotifier
	perms     *PermissionService
	feeds     *FeedService
	teams     *TeamService
	projects  *ProjectService
	tasks     *TaskService
	bulletins *BulletinService
	memos     *MemoService
	users     *UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repository.NewMemStore()
	notifier := &recordingNotifier{}
	perms := NewPermissionService(store)
	feeds := NewFeedService(store, notifier)
	return &fixture{
		ctx:       context.Background(),
		store:     store,
		notifier:  notifier,
		perms:     perms,
		feeds:     feeds,
		teams:     NewTeamService(store, perms),
		projects:  NewProjectService(store, perms),
		tasks:     NewTaskService(store, perms, feeds),
		bulletins: NewBulletinService(store, perms, feeds),
		memos:     NewMemoService(store, perms),
		users:     NewUserService(store),
	}
}

func (f *fixture) user(t *testing.T, name string) string {
	t.Helper()
	u, err := f.users.Register(f.ctx, name, name+"@example.com", "")
	require.NoError(t, err)
	return u.ID
}

// team creates a team administered by adminID and invites the given members.
func (f *fixture) team(t *testing.T, adminID string, memberIDs ...string) models.Team {
	t.Helper()
	team, err := f.teams.CreateTeam(f.ctx, adminID, "team-"+adminID)
	require.NoError(t, err)
	for _, id := range memberIDs {
		require.NoError(t, f.teams.InviteMember(f.ctx, adminID, team.ID, id))
	}
	return team
}

// project creates a project in the team and adds the given members. The
// team admin is the caller; adminID becomes the project admin.
func (f *fixture) project(t *testing.T, teamAdminID string, team models.Team, adminID string, memberIDs ...string) models.Project {
	t.Helper()
	project, err := f.projects.CreateProject(f.ctx, teamAdminID, team.ID, "project-"+adminID, adminID)
	require.NoError(t, err)
	for _, id := range memberIDs {
		require.NoError(t, f.projects.AddMember(f.ctx, adminID, project.ID, id))
	}
	return project
}

func (f *fixture) taskBoard(t *testing.T, projectID string) models.TaskBoard {
	t.Helper()
	board, err := f.store.Projects().FindTaskBoardByProject(f.ctx, projectID)
	require.NoError(t, err)
	return board
}

func (f *fixture) bulletinBoard(t *testing.T, projectID string) models.BulletinBoard {
	t.Helper()
	board, err := f.store.Projects().FindBulletinBoardByProject(f.ctx, projectID)
	require.NoError(t, err)
	return board
}
