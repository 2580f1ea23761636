package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Poirot101/oct-recruitment-system/internal/common"
	"github.com/Poirot101/oct-recruitment-system/internal/domain/user"
	"github.com/Poirot101/oct-recruitment-system/internal/security"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

// AuthService verifies submitted credentials against the user store and issues
// session tokens. There is no refresh flow and no revocation list; a token is
// valid until it expires.
type AuthService struct {
	users       user.Repository
	jwtProvider *security.JWTProvider
	logger      Logger
}

func NewAuthService(users user.Repository, jwtProvider *security.JWTProvider, logger Logger) *AuthService {
	return &AuthService{users: users, jwtProvider: jwtProvider, logger: logger}
}

type LoginResult struct {
	Token     string
	Role      user.Role
	UserID    string
	ExpiresAt time.Time
}

// Login compares the submitted hash byte-for-byte against the stored one; the
// server never hashes passwords itself. Unknown identifier and wrong hash are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, identifier, passwordHash string) (*LoginResult, error) {
	identifier = strings.TrimSpace(identifier)
	fields := map[string]string{}
	if identifier == "" {
		fields["identifier"] = "identifier is required"
	}
	if passwordHash == "" {
		fields["password_hash"] = "password_hash is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}
	account, err := s.users.GetByID(ctx, identifier)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
		}
		return nil, err
	}
	if account.PasswordHash != passwordHash {
		s.logInfo(fmt.Sprintf("login failed userid=%s", identifier))
		return nil, common.NewError(common.CodeUnauthorized, "invalid credentials", nil)
	}
	token, expiresAt, err := s.jwtProvider.Generate(account.UserID, account.Role)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to generate token", err)
	}
	s.logInfo(fmt.Sprintf("user logged in userid=%s role=%s", account.UserID, account.Role))
	return &LoginResult{Token: token, Role: account.Role, UserID: account.UserID, ExpiresAt: expiresAt}, nil
}

func (s *AuthService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
