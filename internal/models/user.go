package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identity. The account id doubles as the task owner
// identity in the ledger store.
type User struct {
	ID        uuid.UUID `json:"id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

type Token struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status,omitempty"`
}
