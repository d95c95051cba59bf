package dto

import "github.com/obiwandem/varsity-backend/internal/app/models"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Title          string          `json:"title" binding:"required"`
	Code           string          `json:"code" binding:"required"`
	Unit           int             `json:"unit" binding:"required,min=1,max=6"`
	Semester       models.Semester `json:"semester" binding:"required"`
	DepartmentName string          `json:"departmentName" binding:"required"`
	Level          *int            `json:"level,omitempty"`
}

// UpdateCourseRequest represents course update data; nil fields are left
// unchanged.
type UpdateCourseRequest struct {
	Title    *string          `json:"title,omitempty"`
	Code     *string          `json:"code,omitempty"`
	Unit     *int             `json:"unit,omitempty" binding:"omitempty,min=1,max=6"`
	Semester *models.Semester `json:"semester,omitempty"`
	Level    *int             `json:"level,omitempty"`
}

// EnrollRequest identifies a student by registration number and a course by
// code.
type EnrollRequest struct {
	RegNo string `json:"regNo" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// CourseFilter carries the optional list filters
type CourseFilter struct {
	Search       string
	DepartmentID int64
	Semester     models.Semester
	Page         int
	Size         int
}

// CourseResponse represents course information
type CourseResponse struct {
	ID         int64               `json:"id"`
	Title      string              `json:"title"`
	Code       string              `json:"code"`
	Unit       int                 `json:"unit"`
	Semester   models.Semester     `json:"semester"`
	Level      *int                `json:"level,omitempty"`
	IsActive   bool                `json:"isActive"`
	Department *DepartmentResponse `json:"department,omitempty"`
}

// CourseEnrollmentsResponse represents a course together with its enrolled
// students.
type CourseEnrollmentsResponse struct {
	Course           CourseResponse `json:"course"`
	EnrolledStudents []UserResponse `json:"enrolledStudents"`
}

// NewCourseResponse builds the course projection
func NewCourseResponse(course *models.Course) CourseResponse {
	resp := CourseResponse{
		ID:       course.ID,
		Title:    course.Title,
		Code:     course.Code,
		Unit:     course.Unit,
		Semester: course.Semester,
		Level:    course.Level,
		IsActive: course.IsActive,
	}
	if course.Department != nil {
		resp.Department = &DepartmentResponse{
			ID:        course.Department.ID,
			Name:      course.Department.Name,
			Code:      course.Department.Code,
			FacultyID: course.Department.FacultyID,
		}
	}
	return resp
}
