package app

import (
	"context"
	"strings"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/profile"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
)

type ProfileService struct {
	profiles profile.Repository
}

func NewProfileService(profiles profile.Repository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// List returns all profiles for students and admins; recruiters see only the
// profiles they own.
func (s *ProfileService) List(ctx context.Context, identity user.Identity) ([]profile.Profile, error) {
	if identity.Role == user.RoleRecruiter {
		return s.profiles.ListByRecruiter(ctx, identity.UserID)
	}
	return s.profiles.List(ctx)
}

// Create posts a new profile. Recruiters always own what they create; admins
// must name the owning recruiter. The owner never changes afterwards.
func (s *ProfileService) Create(ctx context.Context, identity user.Identity, companyName, designation, recruiterEmail string) (*profile.Profile, error) {
	companyName = strings.TrimSpace(companyName)
	designation = strings.TrimSpace(designation)
	recruiterEmail = strings.TrimSpace(recruiterEmail)
	fields := map[string]string{}
	if companyName == "" {
		fields["company_name"] = "company_name is required"
	}
	if designation == "" {
		fields["designation"] = "designation is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}
	owner := recruiterEmail
	if identity.Role == user.RoleRecruiter {
		owner = identity.UserID
	} else if owner == "" {
		return nil, common.NewValidationError("invalid request", map[string]string{
			"recruiter_email": "recruiter_email is required for admin",
		})
	}
	return s.profiles.Create(ctx, profile.Profile{
		RecruiterEmail: owner,
		CompanyName:    companyName,
		Designation:    designation,
	})
}
