package app

import (
	"context"
	"fmt"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/application"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/profile"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
)

// ApplicationService enforces the status workflow and ownership rules.
//
// The checks are sequential queries with no wrapping transaction; the store's
// uniqueness constraints are the only guard against two identical requests
// interleaving.
type ApplicationService struct {
	repo     application.Repository
	profiles profile.Repository
	logger   Logger
}

func NewApplicationService(repo application.Repository, profiles profile.Repository, logger Logger) *ApplicationService {
	return &ApplicationService{repo: repo, profiles: profiles, logger: logger}
}

// List scopes rows by the caller's role: students see their own applications,
// recruiters see applications on profiles they own, admins see everything.
func (s *ApplicationService) List(ctx context.Context, identity user.Identity) ([]application.Application, error) {
	switch identity.Role {
	case user.RoleStudent:
		return s.repo.ListByStudent(ctx, identity.UserID)
	case user.RoleRecruiter:
		return s.repo.ListByRecruiter(ctx, identity.UserID)
	case user.RoleAdmin:
		return s.repo.ListAll(ctx)
	default:
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
}

// Apply creates an application in state Applied. A student with an accepted
// offer anywhere may not apply again, and only one application per
// (profile, student) pair may exist.
func (s *ApplicationService) Apply(ctx context.Context, identity user.Identity, profileCode int64) (*application.Application, error) {
	if _, err := s.profiles.GetByCode(ctx, profileCode); err != nil {
		return nil, err
	}
	accepted, err := s.repo.HasAccepted(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}
	if accepted {
		return nil, common.NewError(common.CodeForbidden, "you have already accepted an offer", nil)
	}
	if _, err := s.repo.FindByProfileAndStudent(ctx, profileCode, identity.UserID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied to this profile", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	created, err := s.repo.Create(ctx, application.Application{
		ProfileCode: profileCode,
		EntryNumber: identity.UserID,
		Status:      application.StatusApplied,
	})
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("application created profile_code=%d entry_number=%s", profileCode, identity.UserID))
	return created, nil
}

// ChangeStatus sets any of the four statuses on the target application. A
// recruiter must own the profile; admins are unrestricted. The transition
// table is not enforced on this path; only the student accept path checks it.
func (s *ApplicationService) ChangeStatus(ctx context.Context, identity user.Identity, profileCode int64, entryNumber string, status application.Status) (*application.Application, error) {
	if !application.KnownStatus(status) {
		return nil, common.NewValidationError("invalid status", map[string]string{
			"status": "status must be Applied, Selected, Not Selected, or Accepted",
		})
	}
	if identity.Role == user.RoleRecruiter {
		p, err := s.profiles.GetByCode(ctx, profileCode)
		if err != nil {
			if common.Is(err, common.CodeNotFound) {
				return nil, common.NewError(common.CodeForbidden, "you can only modify applications for your profiles", nil)
			}
			return nil, err
		}
		if p.RecruiterEmail != identity.UserID {
			return nil, common.NewError(common.CodeForbidden, "you can only modify applications for your profiles", nil)
		}
	}
	updated, err := s.repo.UpdateStatus(ctx, profileCode, entryNumber, status)
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("application status changed profile_code=%d entry_number=%s status=%s", profileCode, entryNumber, status))
	return updated, nil
}

// Accept transitions the caller's own application from Selected to Accepted.
// This is the only path that verifies the prior status.
func (s *ApplicationService) Accept(ctx context.Context, identity user.Identity, profileCode int64) (*application.Application, error) {
	app, err := s.repo.FindByProfileAndStudent(ctx, profileCode, identity.UserID)
	if err != nil {
		return nil, err
	}
	if app.Status != application.StatusSelected {
		return nil, common.NewValidationError("can only accept applications with Selected status", nil)
	}
	updated, err := s.repo.UpdateStatus(ctx, profileCode, identity.UserID, application.StatusAccepted)
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("offer accepted profile_code=%d entry_number=%s", profileCode, identity.UserID))
	return updated, nil
}

// Reject sets the caller's own application to Not Selected. The prior status
// is not verified, matching the recruiter path's unguarded update.
func (s *ApplicationService) Reject(ctx context.Context, identity user.Identity, profileCode int64) (*application.Application, error) {
	updated, err := s.repo.UpdateStatus(ctx, profileCode, identity.UserID, application.StatusNotSelected)
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("offer rejected profile_code=%d entry_number=%s", profileCode, identity.UserID))
	return updated, nil
}

func (s *ApplicationService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
