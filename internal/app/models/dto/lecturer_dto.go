package dto

import "github.com/obiwandem/varsity-backend/internal/app/models"

// CreateLecturerRequest represents lecturer creation data
type CreateLecturerRequest struct {
	UserID       int64  `json:"userId" binding:"required,min=1"`
	StaffNo      string `json:"staffNo" binding:"required"`
	Title        string `json:"title" binding:"required"`
	DepartmentID int64  `json:"departmentId" binding:"required,min=1"`
}

// UpdateLecturerRequest represents lecturer update data; nil fields are
// left unchanged.
type UpdateLecturerRequest struct {
	Title        *string `json:"title,omitempty"`
	DepartmentID *int64  `json:"departmentId,omitempty"`
}

// LecturerResponse represents lecturer information
type LecturerResponse struct {
	ID         int64               `json:"id"`
	StaffNo    string              `json:"staffNo"`
	Title      string              `json:"title"`
	IsActive   bool                `json:"isActive"`
	User       *UserResponse       `json:"user,omitempty"`
	Department *DepartmentResponse `json:"department,omitempty"`
}

// NewLecturerResponse builds the lecturer projection
func NewLecturerResponse(lecturer *models.Lecturer) LecturerResponse {
	resp := LecturerResponse{
		ID:       lecturer.ID,
		StaffNo:  lecturer.StaffNo,
		Title:    lecturer.Title,
		IsActive: lecturer.IsActive,
	}
	if lecturer.User != nil {
		user := NewUserResponse(lecturer.User)
		resp.User = &user
	}
	if lecturer.Department != nil {
		resp.Department = &DepartmentResponse{
			ID:        lecturer.Department.ID,
			Name:      lecturer.Department.Name,
			Code:      lecturer.Department.Code,
			FacultyID: lecturer.Department.FacultyID,
		}
	}
	return resp
}
