package users

import "time"

// User is a credential record. LastSeen is nil until the first
// successful authentication or inbox peek.
type User struct {
	Username     string
	PasswordHash string
	LastSeen     *time.Time
}
