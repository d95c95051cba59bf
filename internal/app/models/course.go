package models

import "time"

// Course represents a course offered by a department.
type Course struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Code         string    `json:"code" db:"code"`
	Unit         int       `json:"unit" db:"unit"`
	Semester     Semester  `json:"semester" db:"semester"`
	Level        *int      `json:"level,omitempty" db:"level"`
	DepartmentID int64     `json:"departmentId" db:"department_id"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations, populated when needed
	Department       *Department `json:"department,omitempty"`
	EnrolledStudents []User      `json:"enrolledStudents,omitempty"`
}
