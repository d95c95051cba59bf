package models

import "time"

// User defines an account based on the 'users' table. RegNo and
// YearOfStudy are set iff the role is student; faculty and department
// references are optional for staff accounts.
type User struct {
	ID           int64     `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	Password     string    `json:"-" db:"password"` // hashed, excluded from JSON
	Role         RoleType  `json:"role" db:"role"`
	RegNo        *string   `json:"regNo,omitempty" db:"reg_no"`
	YearOfStudy  *int      `json:"yearOfStudy,omitempty" db:"year_of_study"`
	FacultyID    *int64    `json:"facultyId,omitempty" db:"faculty_id"`
	DepartmentID *int64    `json:"departmentId,omitempty" db:"department_id"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations, populated when needed
	Faculty    *Faculty     `json:"faculty,omitempty"`
	Department *Department  `json:"department,omitempty"`
	Courses    []Enrollment `json:"courses,omitempty"`
}

// IsStudent reports whether the account is a student account.
func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}
