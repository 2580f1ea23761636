package user

// Identity is the verified caller extracted from a session token. It is
// threaded explicitly through handlers and services; nothing global holds it.
type Identity struct {
	UserID string
	Role   Role
}
