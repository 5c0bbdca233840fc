package domain

import "time"

// Message is one anonymous message in a user's inbox. Only the owning
// user can read or delete it; the sender is never recorded.
type Message struct {
	ID        string
	UserID    string
	Content   string
	CreatedAt time.Time
}
