package models

import "time"

// Deadline is a user-owned record with an optional name and description and
// the instant it is due. UserID is not checked against users on write.
type Deadline struct {
	ID          int64
	UserID      int64
	Name        *string
	Description *string
	Due         time.Time
	CreatedAt   time.Time
}
