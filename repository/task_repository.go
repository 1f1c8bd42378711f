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

type TaskRepository struct {
	tasks       *mongo.Collection
	subtasks    *mongo.Collection
	assignments *mongo.Collection
}

func NewTaskRepository(tasks, subtasks, assignments *mongo.Collection) *TaskRepository {
	return &TaskRepository{tasks: tasks, subtasks: subtasks, assignments: assignments}
}

func (r *TaskRepository) CreateTask(ctx context.Context, t models.Task) (models.Task, error) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = time.Now()
	if _, err := r.tasks.InsertOne(ctx, t); err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func (r *TaskRepository) FindTaskByID(ctx context.Context, id string) (models.Task, error) {
	var t models.Task
	err := r.tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Task{}, ErrNotFound
	}
	return t, err
}

func (r *TaskRepository) ListTasksByBoard(ctx context.Context, boardID string) ([]models.Task, error) {
	return r.listTasks(ctx, bson.M{"board_id": boardID})
}

func (r *TaskRepository) ListTasksByLeader(ctx context.Context, boardIDs []string, leaderID string) ([]models.Task, error) {
	return r.listTasks(ctx, bson.M{"board_id": bson.M{"$in": boardIDs}, "leader_id": leaderID})
}

func (r *TaskRepository) listTasks(ctx context.Context, filter bson.M) ([]models.Task, error) {
	cursor, err := r.tasks.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var result []models.Task
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *TaskRepository) ReassignTaskLeaders(ctx context.Context, boardIDs []string, fromID, toID string) error {
	filter := bson.M{"board_id": bson.M{"$in": boardIDs}, "leader_id": fromID}
	_, err := r.tasks.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"leader_id": toID}})
	return err
}

func (r *TaskRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.tasks.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskRepository) CreateSubtask(ctx context.Context, s models.Subtask) (models.Subtask, error) {
	filter := bson.M{"task_id": s.TaskID, "title": s.Title}
	err := r.subtasks.FindOne(ctx, filter).Err()
	if err == nil {
		return models.Subtask{}, ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Subtask{}, err
	}

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.CreatedAt = time.Now()
	if _, err := r.subtasks.InsertOne(ctx, s); err != nil {
		return models.Subtask{}, err
	}
	return s, nil
}

func (r *TaskRepository) ListSubtasksByTask(ctx context.Context, taskID string) ([]models.Subtask, error) {
	cursor, err := r.subtasks.Find(ctx, bson.M{"task_id": taskID})
	if err != nil {
		return nil, err
	}
	var result []models.Subtask
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *TaskRepository) FindSubtask(ctx context.Context, taskID, title string) (models.Subtask, error) {
	var s models.Subtask
	err := r.subtasks.FindOne(ctx, bson.M{"task_id": taskID, "title": title}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Subtask{}, ErrNotFound
	}
	return s, err
}

func (r *TaskRepository) DeleteSubtasksByTask(ctx context.Context, taskID string) error {
	_, err := r.subtasks.DeleteMany(ctx, bson.M{"task_id": taskID})
	return err
}

func (r *TaskRepository) CreateAssignment(ctx context.Context, a models.Assignment) (models.Assignment, error) {
	filter := bson.M{"task_id": a.TaskID, "subtask_title": a.SubtaskTitle, "user_id": a.UserID}
	err := r.assignments.FindOne(ctx, filter).Err()
	if err == nil {
		return models.Assignment{}, ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Assignment{}, err
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now()
	if _, err := r.assignments.InsertOne(ctx, a); err != nil {
		return models.Assignment{}, err
	}
	return a, nil
}

func (r *TaskRepository) ListAssignmentsByTask(ctx context.Context, taskID string) ([]models.Assignment, error) {
	return r.listAssignments(ctx, bson.M{"task_id": taskID})
}

func (r *TaskRepository) ListAssignmentsByUser(ctx context.Context, taskIDs []string, userID string) ([]models.Assignment, error) {
	return r.listAssignments(ctx, bson.M{"task_id": bson.M{"$in": taskIDs}, "user_id": userID})
}

func (r *TaskRepository) listAssignments(ctx context.Context, filter bson.M) ([]models.Assignment, error) {
	cursor, err := r.assignments.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var result []models.Assignment
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *TaskRepository) ReassignAssignments(ctx context.Context, taskIDs []string, fromID, toID string) error {
	filter := bson.M{"task_id": bson.M{"$in": taskIDs}, "user_id": fromID}
	_, err := r.assignments.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"user_id": toID}})
	return err
}

func (r *TaskRepository) DeleteAssignmentsByTask(ctx context.Context, taskID string) error {
	_, err := r.assignments.DeleteMany(ctx, bson.M{"task_id": taskID})
	return err
}
