package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
	"github.com/Poirot101/oct-recruitment-system/internal/security"
)

func TestAuthenticate_ValidToken(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	token, _, err := provider.Generate("2021CS001", user.RoleStudent)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	var got user.Identity
	handler := NewAuthMiddleware(provider).Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			t.Fatal("expected identity in context")
		}
		got = identity
	}))

	req := httptest.NewRequest(http.MethodGet, "/applications", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.UserID != "2021CS001" || got.Role != user.RoleStudent {
		t.Fatalf("unexpected identity %+v", got)
	}
}

func TestAuthenticate_Rejections(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	expired, _, err := security.NewJWTProvider("secret", -time.Minute).Generate("2021CS001", user.RoleStudent)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	misSigned, _, err := security.NewJWTProvider("different", time.Hour).Generate("2021CS001", user.RoleStudent)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"malformed token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"wrong signature", "Bearer " + misSigned},
	}
	handler := NewAuthMiddleware(provider).Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/applications", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	provider := security.NewJWTProvider("secret", time.Hour)
	token, _, err := provider.Generate("hr@acme.com", user.RoleRecruiter)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	allowed := NewAuthMiddleware(provider).Authenticate(RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))
	denied := NewAuthMiddleware(provider).Authenticate(RequireRole(user.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	})))

	req := httptest.NewRequest(http.MethodPost, "/create_profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	allowed.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	denied.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
