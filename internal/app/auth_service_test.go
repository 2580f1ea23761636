package app

import (
	"context"
	"testing"
	"time"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
	"github.com/Poirot101/oct-recruitment-system/internal/repository/memory"
	"github.com/Poirot101/oct-recruitment-system/internal/security"
)

func newAuthService(t *testing.T) (*AuthService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	jwtProvider := security.NewJWTProvider("secret", 24*time.Hour)
	return NewAuthService(store.Users(), jwtProvider, nil), store
}

func seedUser(t *testing.T, store *memory.Store, userID, passwordHash string, role user.Role) {
	t.Helper()
	if _, err := store.Users().Create(context.Background(), user.User{UserID: userID, PasswordHash: passwordHash, Role: role}); err != nil {
		t.Fatalf("expected user created, got %v", err)
	}
}

func TestAuthServiceLogin_Success(t *testing.T) {
	service, store := newAuthService(t)
	seedUser(t, store, "2021CS001", "5f4dcc3b5aa765d61d8327deb882cf99", user.RoleStudent)

	result, err := service.Login(context.Background(), "2021CS001", "5f4dcc3b5aa765d61d8327deb882cf99")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected token to be issued")
	}
	if result.Role != user.RoleStudent {
		t.Fatalf("expected role %q, got %q", user.RoleStudent, result.Role)
	}
	if result.UserID != "2021CS001" {
		t.Fatalf("expected userid 2021CS001, got %q", result.UserID)
	}
	if remaining := time.Until(result.ExpiresAt); remaining < 23*time.Hour {
		t.Fatalf("expected roughly 24h validity, got %v", remaining)
	}
}

func TestAuthServiceLogin_TrimsIdentifier(t *testing.T) {
	service, store := newAuthService(t)
	seedUser(t, store, "2021CS001", "hash", user.RoleStudent)

	if _, err := service.Login(context.Background(), "  2021CS001  ", "hash"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestAuthServiceLogin_WrongHash(t *testing.T) {
	service, store := newAuthService(t)
	seedUser(t, store, "2021CS001", "hash", user.RoleStudent)

	_, err := service.Login(context.Background(), "2021CS001", "other")
	if !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthServiceLogin_UnknownUser(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Login(context.Background(), "ghost", "hash")
	if !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthServiceLogin_MissingFields(t *testing.T) {
	service, _ := newAuthService(t)

	_, err := service.Login(context.Background(), "", "")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
