package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore implements Store on top of a Mongo database. Repositories read
// the session out of the context, so any call made with the context handed to
// the WithTransaction callback participates in that transaction.
type MongoStore struct {
	client    *mongo.Client
	users     *UserRepository
	teams     *TeamRepository
	projects  *ProjectRepository
	tasks     *TaskRepository
	bulletins *BulletinRepository
	feeds     *FeedRepository
	memos     *MemoRepository
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	db := client.Database(dbName)
	return &MongoStore{
		client: client,
		users:  NewUserRepository(db.Collection("users")),
		teams: NewTeamRepository(
			db.Collection("teams"),
			db.Collection("team_memberships"),
		),
		projects: NewProjectRepository(
			db.Collection("projects"),
			db.Collection("project_memberships"),
			db.Collection("bulletin_boards"),
			db.Collection("task_boards"),
		),
		tasks: NewTaskRepository(
			db.Collection("tasks"),
			db.Collection("subtasks"),
			db.Collection("assignments"),
		),
		bulletins: NewBulletinRepository(db.Collection("bulletins")),
		feeds: NewFeedRepository(
			db.Collection("bulletin_feeds"),
			db.Collection("task_feeds"),
		),
		memos: NewMemoRepository(
			db.Collection("memo_collections"),
			db.Collection("memos"),
		),
	}
}

func (s *MongoStore) Users() UserRepositoryInterface         { return s.users }
func (s *MongoStore) Teams() TeamRepositoryInterface         { return s.teams }
func (s *MongoStore) Projects() ProjectRepositoryInterface   { return s.projects }
func (s *MongoStore) Tasks() TaskRepositoryInterface         { return s.tasks }
func (s *MongoStore) Bulletins() BulletinRepositoryInterface { return s.bulletins }
func (s *MongoStore) Feeds() FeedRepositoryInterface         { return s.feeds }
func (s *MongoStore) Memos() MemoRepositoryInterface         { return s.memos }

func (s *MongoStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
