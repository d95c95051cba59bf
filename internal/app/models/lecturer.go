package models

import "time"

// Lecturer defines the lecturer profile based on the 'lecturers' table
type Lecturer struct {
	ID           int64     `json:"id" db:"id"`
	UserID       int64     `json:"userId" db:"user_id"`
	StaffNo      string    `json:"staffNo" db:"staff_no"`
	Title        string    `json:"title" db:"title"`
	DepartmentID int64     `json:"departmentId" db:"department_id"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations, populated when needed
	User       *User       `json:"user,omitempty"`
	Department *Department `json:"department,omitempty"`
}
