package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent  RoleType = "student"
	RoleAdmin    RoleType = "Admin"
	RoleLecturer RoleType = "Lecturer"
)

// ValidRole reports whether role is one of the known role types.
func ValidRole(role RoleType) bool {
	switch role {
	case RoleStudent, RoleAdmin, RoleLecturer:
		return true
	}
	return false
}

// Semester represents an academic semester
type Semester string

const (
	SemesterFirst  Semester = "Ist Semester"
	SemesterSecond Semester = "2nd Semester"
)

// ValidSemester reports whether semester is one of the known semesters.
func ValidSemester(semester Semester) bool {
	return semester == SemesterFirst || semester == SemesterSecond
}
