package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/application"
)

func newMockRepo(t *testing.T) (*ApplicationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("expected sqlmock to open, got %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewApplicationRepository(db), mock
}

func TestApplicationRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO applications").
		WithArgs(int64(10), "2021CS001", application.StatusApplied, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), application.Application{ProfileCode: 10, EntryNumber: "2021CS001"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.Status != application.StatusApplied {
		t.Fatalf("expected status %q, got %q", application.StatusApplied, created.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplicationRepositoryCreate_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO applications").
		WithArgs(int64(10), "2021CS001", application.StatusApplied, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), application.Application{ProfileCode: 10, EntryNumber: "2021CS001"})
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestApplicationRepositoryFind_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT profile_code, entry_number, status").
		WithArgs(int64(10), "2021CS001").
		WillReturnRows(sqlmock.NewRows([]string{"profile_code", "entry_number", "status", "created_at", "updated_at"}))

	_, err := repo.FindByProfileAndStudent(context.Background(), 10, "2021CS001")
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplicationRepositoryHasAccepted(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("2021CS001", application.StatusAccepted).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	accepted, err := repo.HasAccepted(context.Background(), "2021CS001")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !accepted {
		t.Fatal("expected accepted to be true")
	}
}

func TestApplicationRepositoryListByStudent_JoinsProfile(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"profile_code", "entry_number", "status", "created_at", "updated_at",
		"p_profile_code", "recruiter_email", "company_name", "designation", "p_created_at",
	}).AddRow(int64(10), "2021CS001", "Applied", now, now, int64(10), "hr@acme.com", "Acme Corp", "Software Engineer", now)
	mock.ExpectQuery("FROM applications a").
		WithArgs("2021CS001").
		WillReturnRows(rows)

	items, err := repo.ListByStudent(context.Background(), "2021CS001")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 application, got %d", len(items))
	}
	if items[0].Profile == nil || items[0].Profile.CompanyName != "Acme Corp" {
		t.Fatalf("expected joined profile, got %+v", items[0].Profile)
	}
}

func TestApplicationRepositoryUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE applications SET status").
		WithArgs(application.StatusSelected, sqlmock.AnyArg(), int64(10), "2021CS001").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateStatus(context.Background(), 10, "2021CS001", application.StatusSelected)
	if !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestApplicationRepositoryUpdateStatus_AcceptedUniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE applications SET status").
		WithArgs(application.StatusAccepted, sqlmock.AnyArg(), int64(10), "2021CS001").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.UpdateStatus(context.Background(), 10, "2021CS001", application.StatusAccepted)
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
