package repository

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisPresenceRepository tracks which users currently hold an open feed
// socket for a project. Presence is ephemeral and lives outside the mongo
// store; losing it never violates a core invariant.
type RedisPresenceRepository struct {
	client *redis.Client
}

func NewRedisPresenceRepository(client *redis.Client) *RedisPresenceRepository {
	return &RedisPresenceRepository{client: client}
}

func presenceKey(projectID string) string {
	return "project:" + projectID + ":presence"
}

func (r *RedisPresenceRepository) MarkOnline(ctx context.Context, projectID, userID string) error {
	return r.client.SAdd(ctx, presenceKey(projectID), userID).Err()
}

func (r *RedisPresenceRepository) MarkOffline(ctx context.Context, projectID, userID string) error {
	return r.client.SRem(ctx, presenceKey(projectID), userID).Err()
}

func (r *RedisPresenceRepository) ListOnline(ctx context.Context, projectID string) ([]string, error) {
	return r.client.SMembers(ctx, presenceKey(projectID)).Result()
}

func (r *RedisPresenceRepository) IsOnline(ctx context.Context, projectID, userID string) (bool, error) {
	return r.client.SIsMember(ctx, presenceKey(projectID), userID).Result()
}
