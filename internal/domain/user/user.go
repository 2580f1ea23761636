package user

import "time"

type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// ParseRole normalizes a raw role value and reports whether it is one of the
// three known roles.
func ParseRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleStudent, RoleRecruiter, RoleAdmin:
		return Role(value), true
	default:
		return "", false
	}
}

// User is an account record. UserID is the student entry number or the
// recruiter/admin email. PasswordHash is a precomputed MD5 digest and is never
// serialized.
type User struct {
	UserID       string    `json:"userid"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}
