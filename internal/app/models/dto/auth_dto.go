package dto

import "github.com/obiwandem/varsity-backend/internal/app/models"

// RegisterRequest represents an account registration request. Faculty and
// department are referenced by name, matching the public signup form.
type RegisterRequest struct {
	FirstName      string          `json:"firstName" binding:"required"`
	LastName       string          `json:"lastName" binding:"required"`
	Email          string          `json:"email" binding:"required,email"`
	Password       string          `json:"password" binding:"required,min=6"`
	FacultyName    string          `json:"facultyName" binding:"required"`
	DepartmentName string          `json:"departmentName" binding:"required"`
	Role           models.RoleType `json:"role,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the issued session credential
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"3600"`
}

// UserResponse is the public-safe user projection. It never carries the
// password hash.
type UserResponse struct {
	ID           int64   `json:"id"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	RegNo        *string `json:"regNo,omitempty"`
	YearOfStudy  *int    `json:"yearOfStudy,omitempty"`
	FacultyID    *int64  `json:"facultyId,omitempty"`
	DepartmentID *int64  `json:"departmentId,omitempty"`
}

// AuthResponse represents a successful registration or login
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// NewUserResponse builds the public projection of a user
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Role:         string(user.Role),
		RegNo:        user.RegNo,
		YearOfStudy:  user.YearOfStudy,
		FacultyID:    user.FacultyID,
		DepartmentID: user.DepartmentID,
	}
}
