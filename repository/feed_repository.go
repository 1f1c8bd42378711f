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

type FeedRepository struct {
	bulletinFeeds *mongo.Collection
	taskFeeds     *mongo.Collection
}

func NewFeedRepository(bulletinFeeds, taskFeeds *mongo.Collection) *FeedRepository {
	return &FeedRepository{bulletinFeeds: bulletinFeeds, taskFeeds: taskFeeds}
}

func (r *FeedRepository) CreateBulletinFeed(ctx context.Context, f models.BulletinFeed) (models.BulletinFeed, error) {
	filter := bson.M{"user_id": f.UserID, "bulletin_id": f.BulletinID}
	err := r.bulletinFeeds.FindOne(ctx, filter).Err()
	if err == nil {
		return models.BulletinFeed{}, ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.BulletinFeed{}, err
	}

	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.CreatedAt = time.Now()
	if _, err := r.bulletinFeeds.InsertOne(ctx, f); err != nil {
		return models.BulletinFeed{}, err
	}
	return f, nil
}

func (r *FeedRepository) CreateTaskFeed(ctx context.Context, f models.TaskFeed) (models.TaskFeed, error) {
	filter := bson.M{"user_id": f.UserID, "task_id": f.TaskID}
	err := r.taskFeeds.FindOne(ctx, filter).Err()
	if err == nil {
		return models.TaskFeed{}, ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.TaskFeed{}, err
	}

	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	f.CreatedAt = time.Now()
	if _, err := r.taskFeeds.InsertOne(ctx, f); err != nil {
		return models.TaskFeed{}, err
	}
	return f, nil
}

func (r *FeedRepository) ListBulletinFeedsByUser(ctx context.Context, userID string) ([]models.BulletinFeed, error) {
	cursor, err := r.bulletinFeeds.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var result []models.BulletinFeed
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *FeedRepository) ListTaskFeedsByUser(ctx context.Context, userID string) ([]models.TaskFeed, error) {
	cursor, err := r.taskFeeds.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	var result []models.TaskFeed
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *FeedRepository) DeleteBulletinFeed(ctx context.Context, userID, bulletinID string) error {
	res, err := r.bulletinFeeds.DeleteOne(ctx, bson.M{"user_id": userID, "bulletin_id": bulletinID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FeedRepository) DeleteTaskFeed(ctx context.Context, userID, taskID string) error {
	res, err := r.taskFeeds.DeleteOne(ctx, bson.M{"user_id": userID, "task_id": taskID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FeedRepository) DeleteBulletinFeedsByBulletin(ctx context.Context, bulletinID string) error {
	_, err := r.bulletinFeeds.DeleteMany(ctx, bson.M{"bulletin_id": bulletinID})
	return err
}

func (r *FeedRepository) DeleteTaskFeedsByTask(ctx context.Context, taskID string) error {
	_, err := r.taskFeeds.DeleteMany(ctx, bson.M{"task_id": taskID})
	return err
}

func (r *FeedRepository) DeleteBulletinFeedsForUser(ctx context.Context, userID string, bulletinIDs []string) error {
	filter := bson.M{"user_id": userID, "bulletin_id": bson.M{"$in": bulletinIDs}}
	_, err := r.bulletinFeeds.DeleteMany(ctx, filter)
	return err
}

func (r *FeedRepository) DeleteTaskFeedsForUser(ctx context.Context, userID string, taskIDs []string) error {
	filter := bson.M{"user_id": userID, "task_id": bson.M{"$in": taskIDs}}
	_, err := r.taskFeeds.DeleteMany(ctx, filter)
	return err
}
