package user

import "context"

type Repository interface {
	GetByID(ctx context.Context, userID string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, account User) (*User, error)
}
