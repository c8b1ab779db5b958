package entity

import "time"

// Profile is supplementary descriptive data attached one-to-one to a User.
// The one-profile-per-user invariant is enforced twice: an advisory
// pre-insert existence check for a friendly error, and a uniqueness
// constraint on user_id at the database, which is the actual guarantee.
type Profile struct {
	UserID         string
	Headline       string
	Summary        string
	Skills         []string
	Certifications []string
	Languages      []string
	Score          float64
	ShareURL       string
	CreatedAt      time.Time
}
