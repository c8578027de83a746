package domain

import "time"

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the minimal authenticated principal carried through the
// system once credentials have been verified. It is what gets baked
// into token claims and attached to request contexts.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
