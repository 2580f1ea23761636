package app

import (
	"context"

	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
)

type UserService struct {
	users user.Repository
}

func NewUserService(users user.Repository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Me(ctx context.Context, identity user.Identity) (*user.User, error) {
	return s.users.GetByID(ctx, identity.UserID)
}

func (s *UserService) ListAll(ctx context.Context) ([]user.User, error) {
	return s.users.List(ctx)
}
