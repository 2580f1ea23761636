package application

import "context"

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	FindByProfileAndStudent(ctx context.Context, profileCode int64, entryNumber string) (*Application, error)
	HasAccepted(ctx context.Context, entryNumber string) (bool, error)
	ListByStudent(ctx context.Context, entryNumber string) ([]Application, error)
	ListByRecruiter(ctx context.Context, recruiterEmail string) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)
	UpdateStatus(ctx context.Context, profileCode int64, entryNumber string, status Status) (*Application, error)
}
