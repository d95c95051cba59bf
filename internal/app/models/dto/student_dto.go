package dto

import "github.com/obiwandem/varsity-backend/internal/app/models"

// StudentResponse represents a student with directory references populated
type StudentResponse struct {
	UserResponse
	Faculty    *FacultyResponse    `json:"faculty,omitempty"`
	Department *DepartmentResponse `json:"department,omitempty"`
	Courses    []EnrollmentEntry   `json:"courses,omitempty"`
}

// EnrollmentEntry mirrors a student's course-list entry
type EnrollmentEntry struct {
	CourseID   int64   `json:"courseId"`
	CourseName string  `json:"courseName"`
	Grade      *string `json:"grade,omitempty"`
}

// StudentListResponse represents a list of students
type StudentListResponse struct {
	Students []StudentResponse `json:"students"`
}

// NewStudentResponse builds the student projection with relations
func NewStudentResponse(user *models.User) StudentResponse {
	resp := StudentResponse{UserResponse: NewUserResponse(user)}

	if user.Faculty != nil {
		resp.Faculty = &FacultyResponse{
			ID:       user.Faculty.ID,
			Name:     user.Faculty.Name,
			Code:     user.Faculty.Code,
			IsActive: user.Faculty.IsActive,
		}
	}
	if user.Department != nil {
		resp.Department = &DepartmentResponse{
			ID:        user.Department.ID,
			Name:      user.Department.Name,
			Code:      user.Department.Code,
			FacultyID: user.Department.FacultyID,
		}
	}
	for _, enrollment := range user.Courses {
		resp.Courses = append(resp.Courses, EnrollmentEntry{
			CourseID:   enrollment.CourseID,
			CourseName: enrollment.CourseTitle,
			Grade:      enrollment.Grade,
		})
	}

	return resp
}
