package dto

// CreateDepartmentRequest represents department creation data. The parent
// faculty is referenced by name, matching the admin setup flow.
type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Code        string `json:"code" binding:"required"`
	FacultyName string `json:"faculty" binding:"required"`
	Description string `json:"description,omitempty"`
}

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	FacultyID   int64   `json:"facultyId"`
	Description *string `json:"description,omitempty"`
}

// DepartmentListResponse represents a list of departments
type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
}
