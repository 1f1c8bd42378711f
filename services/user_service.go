package service

import (
	"context"

	"collab-server/models"
	"collab-server/repository"
)

// UserService is thin identity plumbing: profile records only. Credentials
// live with the auth server; this backend only ever sees a resolved user id.
type UserService struct {
	store repository.Store
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Register(ctx context.Context, name, email, avatar string) (models.User, error) {
	user, err := s.store.Users().CreateUser(ctx, models.User{
		Name:   name,
		Email:  email,
		Avatar: avatar,
	})
	if err != nil {
		return models.User{}, storeErr(err)
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (models.User, error) {
	user, err := s.store.Users().FindUserByID(ctx, id)
	return user, storeErr(err)
}
