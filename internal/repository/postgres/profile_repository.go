package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/profile"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Create(ctx context.Context, p profile.Profile) (*profile.Profile, error) {
	p.CreatedAt = time.Now().UTC()
	row := r.db.QueryRowContext(ctx, `INSERT INTO profiles (recruiter_email, company_name, designation, created_at)
		VALUES ($1, $2, $3, $4) RETURNING profile_code`,
		p.RecruiterEmail, p.CompanyName, p.Designation, p.CreatedAt)
	if err := row.Scan(&p.ProfileCode); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create profile", err)
	}
	return &p, nil
}

func (r *ProfileRepository) GetByCode(ctx context.Context, code int64) (*profile.Profile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT profile_code, recruiter_email, company_name, designation, created_at
		FROM profiles WHERE profile_code = $1`, code)
	var p profile.Profile
	if err := row.Scan(&p.ProfileCode, &p.RecruiterEmail, &p.CompanyName, &p.Designation, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "profile not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load profile", err)
	}
	return &p, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]profile.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT profile_code, recruiter_email, company_name, designation, created_at
		FROM profiles ORDER BY profile_code`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list profiles", err)
	}
	defer rows.Close()
	return scanProfiles(rows)
}

func (r *ProfileRepository) ListByRecruiter(ctx context.Context, recruiterEmail string) ([]profile.Profile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT profile_code, recruiter_email, company_name, designation, created_at
		FROM profiles WHERE recruiter_email = $1 ORDER BY profile_code`, recruiterEmail)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list recruiter profiles", err)
	}
	defer rows.Close()
	return scanProfiles(rows)
}

func scanProfiles(rows *sql.Rows) ([]profile.Profile, error) {
	var items []profile.Profile
	for rows.Next() {
		var p profile.Profile
		if err := rows.Scan(&p.ProfileCode, &p.RecruiterEmail, &p.CompanyName, &p.Designation, &p.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan profile", err)
		}
		items = append(items, p)
	}
	return items, nil
}
