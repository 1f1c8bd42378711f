package service

import (
	"context"

	"collab-server/models"
	"collab-server/repository"
)

// MemoService owns knowledge memos. Every team and project has exactly one
// collection, created together with its owner; memos inside it are visible
// to anyone holding a membership in that scope.
type MemoService struct {
	store repository.Store
	perms *PermissionService
}

func NewMemoService(store repository.Store, perms *PermissionService) *MemoService {
	return &MemoService{store: store, perms: perms}
}

// roleInScope resolves the caller's role against the collection's owner.
func (s *MemoService) roleInScope(ctx context.Context, userID string, c models.MemoCollection) (Role, error) {
	if c.Scope == models.MemoScopeProject {
		return s.perms.RoleInProject(ctx, userID, c.OwnerID)
	}
	return s.perms.RoleInTeam(ctx, userID, c.OwnerID)
}

func (s *MemoService) CreateMemo(ctx context.Context, callerID, collectionID, title, body string) (models.Memo, error) {
	collection, err := s.store.Memos().FindCollectionByID(ctx, collectionID)
	if err != nil {
		return models.Memo{}, storeErr(err)
	}
	role, err := s.roleInScope(ctx, callerID, collection)
	if err != nil {
		return models.Memo{}, err
	}
	if role == RoleOutsider {
		return models.Memo{}, ErrPermissionDenied
	}

	memo, err := s.store.Memos().CreateMemo(ctx, models.Memo{
		CollectionID: collectionID,
		Title:        title,
		Body:         body,
		UploaderID:   callerID,
	})
	if err != nil {
		return models.Memo{}, storeErr(err)
	}
	return memo, nil
}

func (s *MemoService) ListMemos(ctx context.Context, callerID, collectionID string) ([]models.Memo, error) {
	collection, err := s.store.Memos().FindCollectionByID(ctx, collectionID)
	if err != nil {
		return nil, storeErr(err)
	}
	role, err := s.roleInScope(ctx, callerID, collection)
	if err != nil {
		return nil, err
	}
	if role == RoleOutsider {
		return nil, ErrPermissionDenied
	}
	return s.store.Memos().ListMemosByCollection(ctx, collectionID)
}

// DeleteMemo is allowed for the uploader and for the admin of the owning
// scope.
func (s *MemoService) DeleteMemo(ctx context.Context, callerID, memoID string) error {
	memo, err := s.store.Memos().FindMemoByID(ctx, memoID)
	if err != nil {
		return storeErr(err)
	}
	collection, err := s.store.Memos().FindCollectionByID(ctx, memo.CollectionID)
	if err != nil {
		return storeErr(err)
	}
	role, err := s.roleInScope(ctx, callerID, collection)
	if err != nil {
		return err
	}
	if memo.UploaderID != callerID && role != RoleAdmin {
		return ErrPermissionDenied
	}
	return storeErr(s.store.Memos().DeleteMemo(ctx, memoID))
}
