package dto

import "github.com/yigit/learnify/internal/app/models"

// RegisterRequest is the body of the student and mentor registration endpoints
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,notblank" example:"Ada Lovelace"`
	Email    string `json:"email" binding:"required,notblank,email" example:"ada@learnify.dev"`
	Password string `json:"password" binding:"required,notblank" example:"secret123"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,notblank" example:"ada@learnify.dev"`
	Password string `json:"password" binding:"required,notblank" example:"secret123"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	Token   string      `json:"token"`
	Role    models.Role `json:"role" example:"STUDENT"`
	UserID  int64       `json:"userId" example:"1"`
	Message string      `json:"message" example:"Login successful"`
}
