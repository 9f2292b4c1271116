package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that submits texts and tracks vocabulary.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
