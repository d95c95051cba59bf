package dto

// CreateFacultyRequest represents faculty creation data
type CreateFacultyRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	Description string `json:"description,omitempty"`
}

// FacultyResponse represents basic faculty information
type FacultyResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"isActive"`
}

// FacultyListResponse represents a list of faculties
type FacultyListResponse struct {
	Faculties []FacultyResponse `json:"faculties"`
}
