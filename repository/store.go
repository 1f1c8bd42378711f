package repository

import (
	"context"
	"errors"

	"collab-server/models"
)

// Sentinel errors shared by every Store implementation. Services branch on
// these with errors.Is and translate them into their own error kinds.
var (
	ErrNotFound  = errors.New("repository: not found")
	ErrDuplicate = errors.New("repository: duplicate")
)

// Store bundles the per-aggregate repositories together with the
// transactional unit of work. All writes issued through a repository inside
// the WithTransaction callback commit together or not at all; the callback's
// context must be passed through to every repository call.
type Store interface {
	Users() UserRepositoryInterface
	Teams() TeamRepositoryInterface
	Projects() ProjectRepositoryInterface
	Tasks() TaskRepositoryInterface
	Bulletins() BulletinRepositoryInterface
	Feeds() FeedRepositoryInterface
	Memos() MemoRepositoryInterface

	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
}

type TeamRepositoryInterface interface {
	CreateTeam(ctx context.Context, team models.Team) (models.Team, error)
	FindTeamByID(ctx context.Context, id string) (models.Team, error)
	DeleteTeam(ctx context.Context, id string) error

	CreateMembership(ctx context.Context, m models.TeamMembership) (models.TeamMembership, error)
	FindMembership(ctx context.Context, userID, teamID string) (models.TeamMembership, error)
	ListMembershipsByTeam(ctx context.Context, teamID string) ([]models.TeamMembership, error)
	ListMembershipsByUser(ctx context.Context, userID string) ([]models.TeamMembership, error)
	DeleteMembership(ctx context.Context, userID, teamID string) error
	DeleteMembershipsByTeam(ctx context.Context, teamID string) error
	IncrementAccessCount(ctx context.Context, userID, teamID string) error
}

type ProjectRepositoryInterface interface {
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)
	FindProjectByID(ctx context.Context, id string) (models.Project, error)
	ListProjectsByTeam(ctx context.Context, teamID string) ([]models.Project, error)
	UpdateProjectAdmin(ctx context.Context, projectID, adminID string) error
	DeleteProject(ctx context.Context, id string) error

	CreateMembership(ctx context.Context, m models.ProjectMembership) (models.ProjectMembership, error)
	FindMembership(ctx context.Context, userID, projectID string) (models.ProjectMembership, error)
	ListMembershipsByProject(ctx context.Context, projectID string) ([]models.ProjectMembership, error)
	DeleteMembership(ctx context.Context, userID, projectID string) error
	DeleteMembershipsByProject(ctx context.Context, projectID string) error

	CreateBulletinBoard(ctx context.Context, b models.BulletinBoard) (models.BulletinBoard, error)
	CreateTaskBoard(ctx context.Context, b models.TaskBoard) (models.TaskBoard, error)
	FindBulletinBoardByID(ctx context.Context, id string) (models.BulletinBoard, error)
	FindTaskBoardByID(ctx context.Context, id string) (models.TaskBoard, error)
	FindBulletinBoardByProject(ctx context.Context, projectID string) (models.BulletinBoard, error)
	FindTaskBoardByProject(ctx context.Context, projectID string) (models.TaskBoard, error)
	DeleteBoardsByProject(ctx context.Context, projectID string) error
}

type TaskRepositoryInterface interface {
	CreateTask(ctx context.Context, t models.Task) (models.Task, error)
	FindTaskByID(ctx context.Context, id string) (models.Task, error)
	ListTasksByBoard(ctx context.Context, boardID string) ([]models.Task, error)
	ListTasksByLeader(ctx context.Context, boardIDs []string, leaderID string) ([]models.Task, error)
	ReassignTaskLeaders(ctx context.Context, boardIDs []string, fromID, toID string) error
	DeleteTask(ctx context.Context, id string) error

	CreateSubtask(ctx context.Context, s models.Subtask) (models.Subtask, error)
	ListSubtasksByTask(ctx context.Context, taskID string) ([]models.Subtask, error)
	FindSubtask(ctx context.Context, taskID, title string) (models.Subtask, error)
	DeleteSubtasksByTask(ctx context.Context, taskID string) error

	CreateAssignment(ctx context.Context, a models.Assignment) (models.Assignment, error)
	ListAssignmentsByTask(ctx context.Context, taskID string) ([]models.Assignment, error)
	ListAssignmentsByUser(ctx context.Context, taskIDs []string, userID string) ([]models.Assignment, error)
	ReassignAssignments(ctx context.Context, taskIDs []string, fromID, toID string) error
	DeleteAssignmentsByTask(ctx context.Context, taskID string) error
}

type BulletinRepositoryInterface interface {
	CreateBulletin(ctx context.Context, b models.Bulletin) (models.Bulletin, error)
	FindBulletinByID(ctx context.Context, id string) (models.Bulletin, error)
	ListBulletinsByBoard(ctx context.Context, boardID string) ([]models.Bulletin, error)
	DeleteBulletin(ctx context.Context, id string) error
	DeleteBulletinsByBoard(ctx context.Context, boardID string) error
}

type FeedRepositoryInterface interface {
	CreateBulletinFeed(ctx context.Context, f models.BulletinFeed) (models.BulletinFeed, error)
	CreateTaskFeed(ctx context.Context, f models.TaskFeed) (models.TaskFeed, error)
	ListBulletinFeedsByUser(ctx context.Context, userID string) ([]models.BulletinFeed, error)
	ListTaskFeedsByUser(ctx context.Context, userID string) ([]models.TaskFeed, error)
	DeleteBulletinFeed(ctx context.Context, userID, bulletinID string) error
	DeleteTaskFeed(ctx context.Context, userID, taskID string) error
	DeleteBulletinFeedsByBulletin(ctx context.Context, bulletinID string) error
	DeleteTaskFeedsByTask(ctx context.Context, taskID string) error
	DeleteBulletinFeedsForUser(ctx context.Context, userID string, bulletinIDs []string) error
	DeleteTaskFeedsForUser(ctx context.Context, userID string, taskIDs []string) error
}

type MemoRepositoryInterface interface {
	CreateCollection(ctx context.Context, c models.MemoCollection) (models.MemoCollection, error)
	FindCollectionByID(ctx context.Context, id string) (models.MemoCollection, error)
	FindCollectionByOwner(ctx context.Context, scope, ownerID string) (models.MemoCollection, error)
	DeleteCollectionByOwner(ctx context.Context, scope, ownerID string) error

	CreateMemo(ctx context.Context, m models.Memo) (models.Memo, error)
	FindMemoByID(ctx context.Context, id string) (models.Memo, error)
	ListMemosByCollection(ctx context.Context, collectionID string) ([]models.Memo, error)
	DeleteMemo(ctx context.Context, id string) error
	DeleteMemosByCollection(ctx context.Context, collectionID string) error
}
