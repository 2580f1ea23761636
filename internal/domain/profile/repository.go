package profile

import "context"

type Repository interface {
	Create(ctx context.Context, p Profile) (*Profile, error)
	GetByCode(ctx context.Context, code int64) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	ListByRecruiter(ctx context.Context, recruiterEmail string) ([]Profile, error)
}
