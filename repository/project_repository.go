package repository

import (
	"context"
	"errors"
	"time"

	"collab-server/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProjectRepository struct {
	projects       *mongo.Collection
	memberships    *mongo.Collection
	bulletinBoards *mongo.Collection
	taskBoards     *mongo.Collection
}

func NewProjectRepository(projects, memberships, bulletinBoards, taskBoards *mongo.Collection) *ProjectRepository {
	return &ProjectRepository{
		projects:       projects,
		memberships:    memberships,
		bulletinBoards: bulletinBoards,
		taskBoards:     taskBoards,
	}
}

func (r *ProjectRepository) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	if _, err := r.projects.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepository) FindProjectByID(ctx context.Context, id string) (models.Project, error) {
	var p models.Project
	err := r.projects.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Project{}, ErrNotFound
	}
	return p, err
}

func (r *ProjectRepository) ListProjectsByTeam(ctx context.Context, teamID string) ([]models.Project, error) {
	cursor, err := r.projects.Find(ctx, bson.M{"team_id": teamID})
	if err != nil {
		return nil, err
	}
	var result []models.Project
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ProjectRepository) UpdateProjectAdmin(ctx context.Context, projectID, adminID string) error {
	res, err := r.projects.UpdateOne(ctx, bson.M{"_id": projectID}, bson.M{"$set": bson.M{"admin_id": adminID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) DeleteProject(ctx context.Context, id string) error {
	res, err := r.projects.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) CreateMembership(ctx context.Context, m models.ProjectMembership) (models.ProjectMembership, error) {
	filter := bson.M{"user_id": m.UserID, "project_id": m.ProjectID}
	err := r.memberships.FindOne(ctx, filter).Err()
	if err == nil {
		return models.ProjectMembership{}, ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.ProjectMembership{}, err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()
	if _, err := r.memberships.InsertOne(ctx, m); err != nil {
		return models.ProjectMembership{}, err
	}
	return m, nil
}

func (r *ProjectRepository) FindMembership(ctx context.Context, userID, projectID string) (models.ProjectMembership, error) {
	var m models.ProjectMembership
	err := r.memberships.FindOne(ctx, bson.M{"user_id": userID, "project_id": projectID}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ProjectMembership{}, ErrNotFound
	}
	return m, err
}

func (r *ProjectRepository) ListMembershipsByProject(ctx context.Context, projectID string) ([]models.ProjectMembership, error) {
	cursor, err := r.memberships.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	var result []models.ProjectMembership
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ProjectRepository) DeleteMembership(ctx context.Context, userID, projectID string) error {
	res, err := r.memberships.DeleteOne(ctx, bson.M{"user_id": userID, "project_id": projectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) DeleteMembershipsByProject(ctx context.Context, projectID string) error {
	_, err := r.memberships.DeleteMany(ctx, bson.M{"project_id": projectID})
	return err
}

func (r *ProjectRepository) CreateBulletinBoard(ctx context.Context, b models.BulletinBoard) (models.BulletinBoard, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if _, err := r.bulletinBoards.InsertOne(ctx, b); err != nil {
		return models.BulletinBoard{}, err
	}
	return b, nil
}

func (r *ProjectRepository) CreateTaskBoard(ctx context.Context, b models.TaskBoard) (models.TaskBoard, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if _, err := r.taskBoards.InsertOne(ctx, b); err != nil {
		return models.TaskBoard{}, err
	}
	return b, nil
}

func (r *ProjectRepository) FindBulletinBoardByID(ctx context.Context, id string) (models.BulletinBoard, error) {
	var b models.BulletinBoard
	err := r.bulletinBoards.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BulletinBoard{}, ErrNotFound
	}
	return b, err
}

func (r *ProjectRepository) FindTaskBoardByID(ctx context.Context, id string) (models.TaskBoard, error) {
	var b models.TaskBoard
	err := r.taskBoards.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.TaskBoard{}, ErrNotFound
	}
	return b, err
}

func (r *ProjectRepository) FindBulletinBoardByProject(ctx context.Context, projectID string) (models.BulletinBoard, error) {
	var b models.BulletinBoard
	err := r.bulletinBoards.FindOne(ctx, bson.M{"project_id": projectID}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.BulletinBoard{}, ErrNotFound
	}
	return b, err
}

func (r *ProjectRepository) FindTaskBoardByProject(ctx context.Context, projectID string) (models.TaskBoard, error) {
	var b models.TaskBoard
	err := r.taskBoards.FindOne(ctx, bson.M{"project_id": projectID}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.TaskBoard{}, ErrNotFound
	}
	return b, err
}

func (r *ProjectRepository) DeleteBoardsByProject(ctx context.Context, projectID string) error {
	if _, err := r.bulletinBoards.DeleteMany(ctx, bson.M{"project_id": projectID}); err != nil {
		return err
	}
	_, err := r.taskBoards.DeleteMany(ctx, bson.M{"project_id": projectID})
	return err
}
