// Package models defines server-side data models persisted in the database.
package models

// User is a registered account. Password holds whatever the configured
// password mode stores: the clear text itself in "plain" mode, or a bcrypt
// hash in "bcrypt" mode.
type User struct {
	ID       int64
	Email    string
	Password string
}
