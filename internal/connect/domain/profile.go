package domain

import "time"

// PublicProfile is the student's publicly visible card. It is created empty
// the first time it is read.
type PublicProfile struct {
	Firstname       string    `json:"firstname"`
	Lastname        string    `json:"lastname"`
	Regno           string    `json:"regno"`
	ProfilePhotoURL *string   `json:"profilePhotoUrl,omitempty"`
	Branch          *string   `json:"branch,omitempty"`
	JoiningYear     *int      `json:"joiningYear,omitempty"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// ProfileUpdate is a partial update. Nil fields are left unchanged.
type ProfileUpdate struct {
	ProfilePhotoURL *string
	Branch          *string
	JoiningYear     *int
}

// IsEmpty reports whether the update would change nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.ProfilePhotoURL == nil && u.Branch == nil && u.JoiningYear == nil
}
