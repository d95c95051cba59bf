package models

import "time"

// Department represents a department in a faculty. A department's code is
// only meaningful in combination with its parent faculty's code.
type Department struct {
	ID          int64     `json:"id" db:"id"`
	FacultyID   int64     `json:"facultyId" db:"faculty_id"`
	Name        string    `json:"name" db:"name"`
	Code        string    `json:"code" db:"code"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Relation, populated when needed
	Faculty *Faculty `json:"faculty,omitempty"`
}
