package domain

import "time"

// User is an admin account. Users are created at provisioning time (the
// bootstrap flow) and are never deleted; password rotation is the only
// expected mutation.
type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2id PHC encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
