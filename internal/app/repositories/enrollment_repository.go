package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/db"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// IEnrollmentRepository defines enrollment database operations
type IEnrollmentRepository interface {
	Enroll(ctx context.Context, enrollment *models.Enrollment) error
	IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error)
	ListCourseStudents(ctx context.Context, courseID int64) ([]models.User, error)
	CoursesWithEnrollments(ctx context.Context) ([]*models.Course, error)
}

// EnrollmentRepository handles enrollment database operations. Enrollment
// is a single row linking student and course, so both the student's course
// list and the course's student list always read the same state.
type EnrollmentRepository struct {
	db *db.PostgresDB
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(database *db.PostgresDB) *EnrollmentRepository {
	return &EnrollmentRepository{db: database}
}

// Enroll records an enrollment inside a single transaction. The duplicate
// check and insert share the transaction; the UNIQUE(student_id, course_id)
// constraint is the backstop for concurrent enrollments of the same pair.
func (r *EnrollmentRepository) Enroll(ctx context.Context, enrollment *models.Enrollment) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
			enrollment.StudentID, enrollment.CourseID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("error checking existing enrollment: %w", err)
		}
		if exists {
			return apperrors.ErrAlreadyEnrolled
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO enrollments (student_id, course_id, course_title)
			 VALUES ($1, $2, $3)
			 RETURNING id, enrolled_at`,
			enrollment.StudentID, enrollment.CourseID, enrollment.CourseTitle).
			Scan(&enrollment.ID, &enrollment.EnrolledAt)
		if err != nil {
			if isDuplicateKeyError(err) {
				return apperrors.ErrAlreadyEnrolled
			}
			logger.Error().Err(err).
				Int64("studentID", enrollment.StudentID).
				Int64("courseID", enrollment.CourseID).
				Msg("Error inserting enrollment")
			return fmt.Errorf("error creating enrollment: %w", err)
		}

		return nil
	})
}

// IsEnrolled checks whether the student is already enrolled in the course
func (r *EnrollmentRepository) IsEnrolled(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return exists, nil
}

// ListByStudent returns a student's enrollment entries
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT id, student_id, course_id, course_title, grade, enrolled_at
		 FROM enrollments WHERE student_id = $1 ORDER BY enrolled_at ASC`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error querying enrollments by student: %w", err)
	}
	defer rows.Close()

	var enrollments []models.Enrollment
	for rows.Next() {
		var e models.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.CourseTitle, &e.Grade, &e.EnrolledAt); err != nil {
			return nil, fmt.Errorf("error scanning enrollment row: %w", err)
		}
		enrollments = append(enrollments, e)
	}

	return enrollments, rows.Err()
}

// ListCourseStudents returns the students enrolled in a course
func (r *EnrollmentRepository) ListCourseStudents(ctx context.Context, courseID int64) ([]models.User, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT u.id, u.first_name, u.last_name, u.email, u.role, u.reg_no
		 FROM enrollments e
		 JOIN users u ON u.id = e.student_id
		 WHERE e.course_id = $1
		 ORDER BY u.reg_no ASC`, courseID)
	if err != nil {
		return nil, fmt.Errorf("error querying course students: %w", err)
	}
	defer rows.Close()

	var students []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Role, &u.RegNo); err != nil {
			return nil, fmt.Errorf("error scanning enrolled student row: %w", err)
		}
		students = append(students, u)
	}

	return students, rows.Err()
}

// CoursesWithEnrollments returns every course that has at least one
// enrolled student, with the student lists populated.
func (r *EnrollmentRepository) CoursesWithEnrollments(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT DISTINCT c.id, c.title, c.code, c.unit, c.semester, c.level,
		        c.department_id, c.is_active, c.created_at, c.updated_at
		 FROM courses c
		 JOIN enrollments e ON e.course_id = c.id
		 ORDER BY c.code ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying courses with enrollments: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, course := range courses {
		students, err := r.ListCourseStudents(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		course.EnrolledStudents = students
	}

	return courses, nil
}
