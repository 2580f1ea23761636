package profile

import "time"

// Profile is a recruiter-posted job opening. ProfileCode is assigned by the
// store; RecruiterEmail is the owning recruiter and never changes after
// creation.
type Profile struct {
	ProfileCode    int64     `json:"profile_code"`
	RecruiterEmail string    `json:"recruiter_email"`
	CompanyName    string    `json:"company_name"`
	Designation    string    `json:"designation"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}
