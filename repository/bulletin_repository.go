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

type BulletinRepository struct {
	bulletins *mongo.Collection
}

func NewBulletinRepository(bulletins *mongo.Collection) *BulletinRepository {
	return &BulletinRepository{bulletins: bulletins}
}

// CreateBulletin rejects a second bulletin with the same title on the same
// board.
func (r *BulletinRepository) CreateBulletin(ctx context.Context, b models.Bulletin) (models.Bulletin, error) {
	filter := bson.M{"board_id": b.BoardID, "title": b.Title}
	err := r.bulletins.FindOne(ctx, filter).Err()
	if err == nil {
		return models.Bulletin{}, ErrDuplicate
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Bulletin{}, err
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = time.Now()
	if _, err := r.bulletins.InsertOne(ctx, b); err != nil {
		return models.Bulletin{}, err
	}
	return b, nil
}

func (r *BulletinRepository) FindBulletinByID(ctx context.Context, id string) (models.Bulletin, error) {
	var b models.Bulletin
	err := r.bulletins.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Bulletin{}, ErrNotFound
	}
	return b, err
}

func (r *BulletinRepository) ListBulletinsByBoard(ctx context.Context, boardID string) ([]models.Bulletin, error) {
	cursor, err := r.bulletins.Find(ctx, bson.M{"board_id": boardID})
	if err != nil {
		return nil, err
	}
	var result []models.Bulletin
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *BulletinRepository) DeleteBulletin(ctx context.Context, id string) error {
	res, err := r.bulletins.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BulletinRepository) DeleteBulletinsByBoard(ctx context.Context, boardID string) error {
	_, err := r.bulletins.DeleteMany(ctx, bson.M{"board_id": boardID})
	return err
}
