package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT userid, password_hash, role, created_at FROM users WHERE userid = $1`, userID)
	var account user.User
	if err := row.Scan(&account.UserID, &account.PasswordHash, &account.Role, &account.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "user not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	return &account, nil
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT userid, password_hash, role, created_at FROM users ORDER BY userid`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list users", err)
	}
	defer rows.Close()
	var items []user.User
	for rows.Next() {
		var account user.User
		if err := rows.Scan(&account.UserID, &account.PasswordHash, &account.Role, &account.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan user", err)
		}
		items = append(items, account)
	}
	return items, nil
}

func (r *UserRepository) Create(ctx context.Context, account user.User) (*user.User, error) {
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (userid, password_hash, role, created_at) VALUES ($1, $2, $3, $4)`,
		account.UserID, account.PasswordHash, account.Role, account.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "user already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return &account, nil
}
