package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// ICourseRepository defines course database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetByCode(ctx context.Context, code string) (*models.Course, error)
	TitleExists(ctx context.Context, title string) (bool, error)
	List(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, int64, error)
	Update(ctx context.Context, course *models.Course) error
	SoftDelete(ctx context.Context, id int64) error
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const courseColumns = "id, title, code, unit, semester, level, department_id, is_active, created_at, updated_at"

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.Title, &course.Code, &course.Unit, &course.Semester,
		&course.Level, &course.DepartmentID, &course.IsActive,
		&course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("title", "code", "unit", "semester", "level", "department_id").
		Values(course.Title, course.Code, course.Unit, course.Semester, course.Level, course.DepartmentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Str("title", course.Title).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetByID retrieves a course by ID with its department populated
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE id = $1`, courseColumns)

	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	if err := r.populateDepartment(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetByCode retrieves an active course by its code
func (r *CourseRepository) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	query := fmt.Sprintf(`SELECT %s FROM courses WHERE code = $1 AND is_active = TRUE`, courseColumns)

	course, err := scanCourse(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error getting course by code: %w", err)
	}

	return course, nil
}

// TitleExists checks if a course with the given title exists
func (r *CourseRepository) TitleExists(ctx context.Context, title string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE title = $1)`, title).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course title existence: %w", err)
	}
	return exists, nil
}

// List retrieves active courses matching the filter, with departments
// populated, plus the total match count for pagination.
func (r *CourseRepository) List(ctx context.Context, filter dto.CourseFilter) ([]*models.Course, int64, error) {
	base := r.sb.Select(
		"c.id", "c.title", "c.code", "c.unit", "c.semester", "c.level",
		"c.department_id", "c.is_active", "c.created_at", "c.updated_at",
		"d.id", "d.name", "d.code", "d.faculty_id",
	).
		From("courses c").
		LeftJoin("departments d ON d.id = c.department_id").
		Where(squirrel.Eq{"c.is_active": true})

	countQuery := r.sb.Select("COUNT(*)").
		From("courses c").
		Where(squirrel.Eq{"c.is_active": true})

	if filter.Search != "" {
		pattern := "%" + escapeLikePattern(filter.Search) + "%"
		searchCond := squirrel.Or{
			squirrel.Expr(`c.title ILIKE ? ESCAPE '\'`, pattern),
			squirrel.Expr(`c.code ILIKE ? ESCAPE '\'`, pattern),
		}
		base = base.Where(searchCond)
		countQuery = countQuery.Where(searchCond)
	}
	if filter.DepartmentID > 0 {
		base = base.Where(squirrel.Eq{"c.department_id": filter.DepartmentID})
		countQuery = countQuery.Where(squirrel.Eq{"c.department_id": filter.DepartmentID})
	}
	if filter.Semester != "" {
		base = base.Where(squirrel.Eq{"c.semester": filter.Semester})
		countQuery = countQuery.Where(squirrel.Eq{"c.semester": filter.Semester})
	}

	countSql, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	offset := uint64(0)
	limit := uint64(10)
	if filter.Size > 0 {
		limit = uint64(filter.Size)
	}
	if filter.Page > 1 {
		offset = uint64(filter.Page-1) * limit
	}

	listSql, listArgs, err := base.OrderBy("c.code ASC").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course := &models.Course{}
		var (
			deptID        *int64
			deptName      *string
			deptCode      *string
			deptFacultyID *int64
		)
		if err := rows.Scan(
			&course.ID, &course.Title, &course.Code, &course.Unit, &course.Semester,
			&course.Level, &course.DepartmentID, &course.IsActive,
			&course.CreatedAt, &course.UpdatedAt,
			&deptID, &deptName, &deptCode, &deptFacultyID,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning course row: %w", err)
		}

		if deptID != nil {
			course.Department = &models.Department{
				ID: *deptID, Name: *deptName, Code: *deptCode, FacultyID: *deptFacultyID,
			}
		}

		courses = append(courses, course)
	}

	return courses, total, rows.Err()
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"title":    course.Title,
			"code":     course.Code,
			"unit":     course.Unit,
			"semester": course.Semester,
			"level":    course.Level,
		}).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if isDuplicateKeyError(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// SoftDelete marks a course inactive instead of removing the row
func (r *CourseRepository) SoftDelete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE courses SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// populateDepartment loads the owning department relation
func (r *CourseRepository) populateDepartment(ctx context.Context, course *models.Course) error {
	department := &models.Department{}
	err := r.db.QueryRow(ctx,
		`SELECT id, faculty_id, name, code FROM departments WHERE id = $1`, course.DepartmentID).
		Scan(&department.ID, &department.FacultyID, &department.Name, &department.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("error loading course department: %w", err)
	}

	course.Department = department
	return nil
}
