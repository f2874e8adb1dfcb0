package feedback

import "time"

// Feedback is a public message left by a visitor. Records are append-only.
type Feedback struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Input carries the public feedback form fields.
type Input struct {
	Username string `form:"username" json:"username"`
	Email    string `form:"email" json:"email"`
	Message  string `form:"message" json:"message"`
}
