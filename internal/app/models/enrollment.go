package models

import "time"

// Enrollment links a student to a course. A student's course list and a
// course's enrolled-student list are both reads over this table, so the
// two sides can never disagree.
type Enrollment struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	CourseTitle string    `json:"courseName" db:"course_title"`
	Grade       *string   `json:"grade,omitempty" db:"grade"`
	EnrolledAt  time.Time `json:"enrolledAt" db:"enrolled_at"`
}
