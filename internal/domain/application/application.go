package application

import (
	"time"

	"github.com/Poirot101/oct-recruitment-system/internal/domain/profile"
)

type Status string

const (
	StatusApplied     Status = "Applied"
	StatusSelected    Status = "Selected"
	StatusNotSelected Status = "Not Selected"
	StatusAccepted    Status = "Accepted"
)

// KnownStatus reports whether value is one of the four defined statuses.
func KnownStatus(value Status) bool {
	switch value {
	case StatusApplied, StatusSelected, StatusNotSelected, StatusAccepted:
		return true
	default:
		return false
	}
}

// Application links one student (EntryNumber) to one profile. The pair is the
// identity; there is no surrogate key.
type Application struct {
	ProfileCode int64     `json:"profile_code"`
	EntryNumber string    `json:"entry_number"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`

	// Profile carries the joined posting fields on list responses.
	Profile *profile.Profile `json:"profile,omitempty"`
}
