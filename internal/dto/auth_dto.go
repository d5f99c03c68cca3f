package dto

import "time"

type RegisterRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	FullName      string `json:"full_name" binding:"required"`
	Qualification string `json:"qualification"`
	DOB           string `json:"dob"` // YYYY-MM-DD, optional
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	UserID    uint      `json:"user_id"`
	Role      string    `json:"role"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UserResponse struct {
	ID            uint       `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	Qualification string     `json:"qualification,omitempty"`
	DOB           *time.Time `json:"dob,omitempty"`
	Role          string     `json:"role"`
	RegisteredOn  time.Time  `json:"registered_on"`
}
