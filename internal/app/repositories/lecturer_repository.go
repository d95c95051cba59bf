package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// ILecturerRepository defines lecturer database operations
type ILecturerRepository interface {
	Create(ctx context.Context, lecturer *models.Lecturer) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Lecturer, error)
	List(ctx context.Context, departmentID int64, page, size int) ([]*models.Lecturer, int64, error)
	Update(ctx context.Context, lecturer *models.Lecturer) error
	SoftDelete(ctx context.Context, id int64) error
}

// LecturerRepository handles lecturer database operations
type LecturerRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLecturerRepository creates a new LecturerRepository
func NewLecturerRepository(db *pgxpool.Pool) *LecturerRepository {
	return &LecturerRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new lecturer profile
func (r *LecturerRepository) Create(ctx context.Context, lecturer *models.Lecturer) (int64, error) {
	sql, args, err := r.sb.Insert("lecturers").
		Columns("user_id", "staff_no", "title", "department_id").
		Values(lecturer.UserID, lecturer.StaffNo, lecturer.Title, lecturer.DepartmentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create lecturer query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrStaffNoAlreadyExists
		}
		logger.Error().Err(err).Str("staffNo", lecturer.StaffNo).Msg("Error executing create lecturer query")
		return 0, fmt.Errorf("error creating lecturer: %w", err)
	}

	return id, nil
}

// GetByID retrieves a lecturer with the user and department relations
func (r *LecturerRepository) GetByID(ctx context.Context, id int64) (*models.Lecturer, error) {
	query := `
		SELECT l.id, l.user_id, l.staff_no, l.title, l.department_id, l.is_active,
		       l.created_at, l.updated_at,
		       u.first_name, u.last_name, u.email, u.role,
		       d.name, d.code, d.faculty_id
		FROM lecturers l
		JOIN users u ON u.id = l.user_id
		JOIN departments d ON d.id = l.department_id
		WHERE l.id = $1
	`

	lecturer := &models.Lecturer{User: &models.User{}, Department: &models.Department{}}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&lecturer.ID, &lecturer.UserID, &lecturer.StaffNo, &lecturer.Title,
		&lecturer.DepartmentID, &lecturer.IsActive, &lecturer.CreatedAt, &lecturer.UpdatedAt,
		&lecturer.User.FirstName, &lecturer.User.LastName, &lecturer.User.Email, &lecturer.User.Role,
		&lecturer.Department.Name, &lecturer.Department.Code, &lecturer.Department.FacultyID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLecturerNotFound
		}
		return nil, fmt.Errorf("error getting lecturer by ID: %w", err)
	}

	lecturer.User.ID = lecturer.UserID
	lecturer.Department.ID = lecturer.DepartmentID

	return lecturer, nil
}

// List retrieves active lecturers, optionally filtered by department, with
// the total match count for pagination.
func (r *LecturerRepository) List(ctx context.Context, departmentID int64, page, size int) ([]*models.Lecturer, int64, error) {
	base := r.sb.Select(
		"l.id", "l.user_id", "l.staff_no", "l.title", "l.department_id", "l.is_active",
		"l.created_at", "l.updated_at",
		"u.first_name", "u.last_name", "u.email", "u.role",
		"d.name", "d.code", "d.faculty_id",
	).
		From("lecturers l").
		Join("users u ON u.id = l.user_id").
		Join("departments d ON d.id = l.department_id").
		Where(squirrel.Eq{"l.is_active": true})

	countQuery := r.sb.Select("COUNT(*)").
		From("lecturers l").
		Where(squirrel.Eq{"l.is_active": true})

	if departmentID > 0 {
		base = base.Where(squirrel.Eq{"l.department_id": departmentID})
		countQuery = countQuery.Where(squirrel.Eq{"l.department_id": departmentID})
	}

	countSql, countArgs, err := countQuery.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count lecturers query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting lecturers: %w", err)
	}

	limit := uint64(10)
	if size > 0 {
		limit = uint64(size)
	}
	offset := uint64(0)
	if page > 1 {
		offset = uint64(page-1) * limit
	}

	listSql, listArgs, err := base.OrderBy("u.last_name ASC").Limit(limit).Offset(offset).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list lecturers query: %w", err)
	}

	rows, err := r.db.Query(ctx, listSql, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying lecturers: %w", err)
	}
	defer rows.Close()

	var lecturers []*models.Lecturer
	for rows.Next() {
		lecturer := &models.Lecturer{User: &models.User{}, Department: &models.Department{}}
		if err := rows.Scan(
			&lecturer.ID, &lecturer.UserID, &lecturer.StaffNo, &lecturer.Title,
			&lecturer.DepartmentID, &lecturer.IsActive, &lecturer.CreatedAt, &lecturer.UpdatedAt,
			&lecturer.User.FirstName, &lecturer.User.LastName, &lecturer.User.Email, &lecturer.User.Role,
			&lecturer.Department.Name, &lecturer.Department.Code, &lecturer.Department.FacultyID,
		); err != nil {
			return nil, 0, fmt.Errorf("error scanning lecturer row: %w", err)
		}

		lecturer.User.ID = lecturer.UserID
		lecturer.Department.ID = lecturer.DepartmentID
		lecturers = append(lecturers, lecturer)
	}

	return lecturers, total, rows.Err()
}

// Update updates a lecturer's title and department
func (r *LecturerRepository) Update(ctx context.Context, lecturer *models.Lecturer) error {
	sql, args, err := r.sb.Update("lecturers").
		SetMap(map[string]interface{}{
			"title":         lecturer.Title,
			"department_id": lecturer.DepartmentID,
		}).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": lecturer.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update lecturer query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("lecturerID", lecturer.ID).Msg("Error executing update lecturer query")
		return fmt.Errorf("error updating lecturer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLecturerNotFound
	}

	return nil
}

// SoftDelete marks a lecturer inactive instead of removing the row
func (r *LecturerRepository) SoftDelete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE lecturers SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting lecturer: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLecturerNotFound
	}

	return nil
}
