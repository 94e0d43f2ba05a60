package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`
	Name      string    `json:"name" db:"name" example:"Ada Lovelace"`
	Email     string    `json:"email" db:"email" example:"ada@learnify.dev"`
	Password  string    `json:"-" db:"password"` // bcrypt hash
	Role      Role      `json:"role" db:"role" example:"STUDENT"`
	Approved  bool      `json:"approved" db:"approved" example:"false"` // meaningful for mentors only
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
}
