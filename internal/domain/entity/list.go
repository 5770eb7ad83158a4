package entity

import "time"

// List groups tasks for one account.
type List struct {
	ID          string
	OwnerID     string
	Name        string
	Description string
	Icon        string
	TaskIDs     []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
