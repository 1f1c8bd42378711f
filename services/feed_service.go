package service

import (
	"context"
	"errors"
	"fmt"

	"collab-server/models"
	"collab-server/repository"

	"github.com/rs/zerolog/log"
)

const (
	FeedKindBulletin = "bulletin"
	FeedKindTask     = "task"
)

// FeedEvent is the payload pushed to connected clients after a feed row has
// been committed.
type FeedEvent struct {
	Kind     string `json:"kind"`
	TargetID string `json:"target_id"`
	Title    string `json:"title"`
}

// Notifier delivers committed feed events to online recipients. Delivery is
// best-effort; the durable record is the feed row.
type Notifier interface {
	Publish(userID string, event FeedEvent)
}

// FeedService owns notification-feed rows. Fan-out methods must be called
// inside the transaction that creates the bulletin or task, so a failed
// fan-out rolls the whole creation back.
type FeedService struct {
	store    repository.Store
	notifier Notifier
}

func NewFeedService(store repository.Store, notifier Notifier) *FeedService {
	return &FeedService{store: store, notifier: notifier}
}

// FanOutBulletin inserts one feed row per recipient. Any single failure
// aborts the caller's transaction.
func (s *FeedService) FanOutBulletin(ctx context.Context, bulletinID string, userIDs []string) error {
	for _, userID := range userIDs {
		_, err := s.store.Feeds().CreateBulletinFeed(ctx, models.BulletinFeed{
			UserID:     userID,
			BulletinID: bulletinID,
		})
		if err != nil {
			return fmt.Errorf("fan out bulletin %s to %s: %w", bulletinID, userID, err)
		}
	}
	return nil
}

// FanOutTask inserts the single feed row for a task's principal. A duplicate
// row (the principal was already notified for this task) is not an error.
func (s *FeedService) FanOutTask(ctx context.Context, taskID, userID string) error {
	_, err := s.store.Feeds().CreateTaskFeed(ctx, models.TaskFeed{
		UserID: userID,
		TaskID: taskID,
	})
	if err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("fan out task %s to %s: %w", taskID, userID, err)
	}
	return nil
}

// DeleteEntry removes exactly one feed row owned by the caller.
func (s *FeedService) DeleteEntry(ctx context.Context, userID, kind, targetID string) error {
	var err error
	switch kind {
	case FeedKindBulletin:
		err = s.store.Feeds().DeleteBulletinFeed(ctx, userID, targetID)
	case FeedKindTask:
		err = s.store.Feeds().DeleteTaskFeed(ctx, userID, targetID)
	default:
		return ErrNotFound
	}
	return storeErr(err)
}

func (s *FeedService) ListBulletinFeeds(ctx context.Context, userID string) ([]models.BulletinFeed, error) {
	return s.store.Feeds().ListBulletinFeedsByUser(ctx, userID)
}

func (s *FeedService) ListTaskFeeds(ctx context.Context, userID string) ([]models.TaskFeed, error) {
	return s.store.Feeds().ListTaskFeedsByUser(ctx, userID)
}

// Notify pushes a committed event to each recipient's open sockets. Called
// strictly after the owning transaction commits.
func (s *FeedService) Notify(userIDs []string, event FeedEvent) {
	if s.notifier == nil {
		return
	}
	for _, userID := range userIDs {
		s.notifier.Publish(userID, event)
	}
	log.Debug().Str("kind", event.Kind).Str("target", event.TargetID).
		Int("recipients", len(userIDs)).Msg("feed event published")
}
