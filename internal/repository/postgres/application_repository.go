package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/application"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/profile"
)

const applicationJoinColumns = `a.profile_code, a.entry_number, a.status, a.created_at, a.updated_at,
	p.profile_code, p.recruiter_email, p.company_name, p.designation, p.created_at`

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	now := time.Now().UTC()
	app.CreatedAt = now
	app.UpdatedAt = now
	if app.Status == "" {
		app.Status = application.StatusApplied
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (profile_code, entry_number, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		app.ProfileCode, app.EntryNumber, app.Status, app.CreatedAt, app.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied to this profile", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) FindByProfileAndStudent(ctx context.Context, profileCode int64, entryNumber string) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT profile_code, entry_number, status, created_at, updated_at
		FROM applications WHERE profile_code = $1 AND entry_number = $2`, profileCode, entryNumber)
	var app application.Application
	if err := row.Scan(&app.ProfileCode, &app.EntryNumber, &app.Status, &app.CreatedAt, &app.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) HasAccepted(ctx context.Context, entryNumber string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM applications WHERE entry_number = $1 AND status = $2)`,
		entryNumber, application.StatusAccepted)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, common.NewError(common.CodeInternal, "failed to check accepted applications", err)
	}
	return exists, nil
}

func (r *ApplicationRepository) ListByStudent(ctx context.Context, entryNumber string) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationJoinColumns+`
		FROM applications a
		JOIN profiles p ON p.profile_code = a.profile_code
		WHERE a.entry_number = $1
		ORDER BY a.created_at DESC`, entryNumber)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list student applications", err)
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *ApplicationRepository) ListByRecruiter(ctx context.Context, recruiterEmail string) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationJoinColumns+`
		FROM applications a
		JOIN profiles p ON p.profile_code = a.profile_code
		WHERE p.recruiter_email = $1
		ORDER BY a.created_at DESC`, recruiterEmail)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list recruiter applications", err)
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *ApplicationRepository) ListAll(ctx context.Context) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationJoinColumns+`
		FROM applications a
		JOIN profiles p ON p.profile_code = a.profile_code
		ORDER BY a.created_at DESC`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, profileCode int64, entryNumber string, status application.Status) (*application.Application, error) {
	updatedAt := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2
		WHERE profile_code = $3 AND entry_number = $4`, status, updatedAt, profileCode, entryNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "student already has an accepted offer", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.FindByProfileAndStudent(ctx, profileCode, entryNumber)
}

func scanApplications(rows *sql.Rows) ([]application.Application, error) {
	var items []application.Application
	for rows.Next() {
		var app application.Application
		var p profile.Profile
		if err := rows.Scan(&app.ProfileCode, &app.EntryNumber, &app.Status, &app.CreatedAt, &app.UpdatedAt,
			&p.ProfileCode, &p.RecruiterEmail, &p.CompanyName, &p.Designation, &p.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		app.Profile = &p
		items = append(items, app)
	}
	return items, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
