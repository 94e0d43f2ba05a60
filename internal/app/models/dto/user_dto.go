package dto

import (
	"time"

	"github.com/yigit/learnify/internal/app/models"
)

// UserResponse represents a user profile
type UserResponse struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Approved  bool        `json:"approved"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewUserResponse maps a user to its public profile
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Approved:  u.Approved,
		CreatedAt: u.CreatedAt,
	}
}

// MentorSummary is the mentor part of ApproveMentorResponse
type MentorSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Approved bool   `json:"approved"`
}

// ApproveMentorResponse is returned after an admin approves a mentor
type ApproveMentorResponse struct {
	Message string        `json:"message" example:"Mentor approved successfully"`
	Mentor  MentorSummary `json:"mentor"`
}
