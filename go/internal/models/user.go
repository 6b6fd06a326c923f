package models

// User represents an account that can manage teams
type User struct {
	UserID int    `json:"userId"`
	Email  string `json:"email"`
}

// UserRequest represents the data needed to create a new user
type UserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
