package service

import (
	"context"
	"fmt"

	"collab-server/models"
	"collab-server/repository"

	"github.com/rs/zerolog/log"
)

// BulletinService owns bulletins and their fan-out. A bulletin only exists
// once every member of the project has a feed row for it.
type BulletinService struct {
	store repository.Store
	perms *PermissionService
	feeds *FeedService
}

func NewBulletinService(store repository.Store, perms *PermissionService, feeds *FeedService) *BulletinService {
	return &BulletinService{store: store, perms: perms, feeds: feeds}
}

func (s *BulletinService) projectForBoard(ctx context.Context, boardID string) (models.Project, error) {
	board, err := s.store.Projects().FindBulletinBoardByID(ctx, boardID)
	if err != nil {
		return models.Project{}, storeErr(err)
	}
	project, err := s.store.Projects().FindProjectByID(ctx, board.ProjectID)
	return project, storeErr(err)
}

// CreateBulletin inserts the bulletin and one feed row per project member in
// a single transaction; a failed fan-out leaves no bulletin behind. Titles
// are unique within a board.
func (s *BulletinService) CreateBulletin(ctx context.Context, callerID, boardID, title, body string) (models.Bulletin, error) {
	project, err := s.projectForBoard(ctx, boardID)
	if err != nil {
		return models.Bulletin{}, err
	}

	callerRole, err := s.perms.RoleInProject(ctx, callerID, project.ID)
	if err != nil {
		return models.Bulletin{}, err
	}
	if callerRole != RoleAdmin {
		return models.Bulletin{}, ErrPermissionDenied
	}

	memberships, err := s.store.Projects().ListMembershipsByProject(ctx, project.ID)
	if err != nil {
		return models.Bulletin{}, err
	}
	recipients := make([]string, 0, len(memberships))
	for _, m := range memberships {
		recipients = append(recipients, m.UserID)
	}

	var bulletin models.Bulletin
	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		bulletin, err = s.store.Bulletins().CreateBulletin(ctx, models.Bulletin{
			BoardID:  boardID,
			Title:    title,
			Body:     body,
			AuthorID: callerID,
		})
		if err != nil {
			return err
		}
		return s.feeds.FanOutBulletin(ctx, bulletin.ID, recipients)
	})
	if err != nil {
		return models.Bulletin{}, storeErr(err)
	}

	s.feeds.Notify(recipients, FeedEvent{Kind: FeedKindBulletin, TargetID: bulletin.ID, Title: title})
	log.Info().Str("bulletin", bulletin.ID).Int("recipients", len(recipients)).Msg("bulletin created")
	return bulletin, nil
}

// DeleteBulletin cascades the bulletin's feed rows in the same transaction.
func (s *BulletinService) DeleteBulletin(ctx context.Context, callerID, bulletinID string) error {
	bulletin, err := s.store.Bulletins().FindBulletinByID(ctx, bulletinID)
	if err != nil {
		return storeErr(err)
	}
	project, err := s.projectForBoard(ctx, bulletin.BoardID)
	if err != nil {
		return err
	}

	callerRole, err := s.perms.RoleInProject(ctx, callerID, project.ID)
	if err != nil {
		return err
	}
	if callerRole != RoleAdmin {
		return ErrPermissionDenied
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.Feeds().DeleteBulletinFeedsByBulletin(ctx, bulletinID); err != nil {
			return err
		}
		return s.store.Bulletins().DeleteBulletin(ctx, bulletinID)
	})
	if err != nil {
		return fmt.Errorf("delete bulletin: %w", err)
	}

	log.Info().Str("bulletin", bulletinID).Msg("bulletin deleted")
	return nil
}

// ListBoardBulletins returns a board's bulletins, visible to project members.
func (s *BulletinService) ListBoardBulletins(ctx context.Context, callerID, boardID string) ([]models.Bulletin, error) {
	project, err := s.projectForBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	callerRole, err := s.perms.RoleInProject(ctx, callerID, project.ID)
	if err != nil {
		return nil, err
	}
	if callerRole == RoleOutsider {
		return nil, ErrPermissionDenied
	}
	return s.store.Bulletins().ListBulletinsByBoard(ctx, boardID)
}
