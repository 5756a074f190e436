package domain

import "time"

// Notification represents a one-way message recorded against a recipient identity,
// informing them of a booking decision
type Notification struct {
	ID        int64
	UserEmail string
	Message   string
	CreatedAt time.Time
	ReadAt    *time.Time // nil = unread
}

// IsRead returns true if the notification has been acknowledged
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
