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

type MemoRepository struct {
	collections *mongo.Collection
	memos       *mongo.Collection
}

func NewMemoRepository(collections, memos *mongo.Collection) *MemoRepository {
	return &MemoRepository{collections: collections, memos: memos}
}

func (r *MemoRepository) CreateCollection(ctx context.Context, c models.MemoCollection) (models.MemoCollection, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if _, err := r.collections.InsertOne(ctx, c); err != nil {
		return models.MemoCollection{}, err
	}
	return c, nil
}

func (r *MemoRepository) FindCollectionByID(ctx context.Context, id string) (models.MemoCollection, error) {
	var c models.MemoCollection
	err := r.collections.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MemoCollection{}, ErrNotFound
	}
	return c, err
}

func (r *MemoRepository) FindCollectionByOwner(ctx context.Context, scope, ownerID string) (models.MemoCollection, error) {
	var c models.MemoCollection
	err := r.collections.FindOne(ctx, bson.M{"scope": scope, "owner_id": ownerID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MemoCollection{}, ErrNotFound
	}
	return c, err
}

func (r *MemoRepository) DeleteCollectionByOwner(ctx context.Context, scope, ownerID string) error {
	_, err := r.collections.DeleteMany(ctx, bson.M{"scope": scope, "owner_id": ownerID})
	return err
}

func (r *MemoRepository) CreateMemo(ctx context.Context, m models.Memo) (models.Memo, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	m.CreatedAt = time.Now()
	if _, err := r.memos.InsertOne(ctx, m); err != nil {
		return models.Memo{}, err
	}
	return m, nil
}

func (r *MemoRepository) FindMemoByID(ctx context.Context, id string) (models.Memo, error) {
	var m models.Memo
	err := r.memos.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Memo{}, ErrNotFound
	}
	return m, err
}

func (r *MemoRepository) ListMemosByCollection(ctx context.Context, collectionID string) ([]models.Memo, error) {
	cursor, err := r.memos.Find(ctx, bson.M{"collection_id": collectionID})
	if err != nil {
		return nil, err
	}
	var result []models.Memo
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *MemoRepository) DeleteMemo(ctx context.Context, id string) error {
	res, err := r.memos.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MemoRepository) DeleteMemosByCollection(ctx context.Context, collectionID string) error {
	_, err := r.memos.DeleteMany(ctx, bson.M{"collection_id": collectionID})
	return err
}
