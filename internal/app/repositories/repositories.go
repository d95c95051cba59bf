package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/obiwandem/varsity-backend/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	FacultyRepository    *FacultyRepository
	DepartmentRepository *DepartmentRepository
	UserRepository       *UserRepository
	CourseRepository     *CourseRepository
	EnrollmentRepository *EnrollmentRepository
	LecturerRepository   *LecturerRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	pool := database.Pool
	return &Repositories{
		FacultyRepository:    NewFacultyRepository(pool),
		DepartmentRepository: NewDepartmentRepository(pool),
		UserRepository:       NewUserRepository(pool),
		CourseRepository:     NewCourseRepository(pool),
		EnrollmentRepository: NewEnrollmentRepository(database),
		LecturerRepository:   NewLecturerRepository(pool),
	}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

// duplicateConstraint returns the violated constraint name for a unique
// violation, or "" if the error is not one.
func duplicateConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}

// escapeLikePattern escapes LIKE metacharacters so a value can be used as a
// literal prefix in a LIKE pattern with ESCAPE '\'.
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
