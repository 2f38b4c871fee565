package domain

import "time"

// User is a verified student account. Regno is unique case-insensitively.
type User struct {
	ID           string
	Firstname    string
	Lastname     string
	Regno        string
	PasswordHash string // argon2id, PHC encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
