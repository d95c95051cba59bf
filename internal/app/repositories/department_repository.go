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

// IDepartmentRepository defines department database operations
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	GetByName(ctx context.Context, name string) (*models.Department, error)
	GetByNameAndFaculty(ctx context.Context, name string, facultyID int64) (*models.Department, error)
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Department, error)
	ListNamesByFaculty(ctx context.Context, facultyID int64, limit int) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const departmentColumns = "id, faculty_id, name, code, description, created_at, updated_at"

func scanDepartment(row pgx.Row) (*models.Department, error) {
	department := &models.Department{}
	err := row.Scan(
		&department.ID, &department.FacultyID, &department.Name, &department.Code,
		&department.Description, &department.CreatedAt, &department.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return department, nil
}

// Create inserts a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) (int64, error) {
	sql, args, err := r.sb.Insert("departments").
		Columns("faculty_id", "name", "code", "description").
		Values(department.FacultyID, department.Name, department.Code, department.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create department query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrDepartmentAlreadyExists
		}
		logger.Error().Err(err).Str("name", department.Name).Msg("Error executing create department query")
		return 0, fmt.Errorf("error creating department: %w", err)
	}

	return id, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE id = $1`, departmentColumns)

	department, err := scanDepartment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return department, nil
}

// GetByName retrieves a department by its unique name
func (r *DepartmentRepository) GetByName(ctx context.Context, name string) (*models.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE name = $1`, departmentColumns)

	department, err := scanDepartment(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department by name: %w", err)
	}

	return department, nil
}

// GetByNameAndFaculty retrieves a department by name scoped to a faculty.
// A department belonging to a different faculty is not found.
func (r *DepartmentRepository) GetByNameAndFaculty(ctx context.Context, name string, facultyID int64) (*models.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE name = $1 AND faculty_id = $2`, departmentColumns)

	department, err := scanDepartment(r.db.QueryRow(ctx, query, name, facultyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department by name and faculty: %w", err)
	}

	return department, nil
}

// GetAll retrieves all departments
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments ORDER BY name ASC`, departmentColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}

	return departments, rows.Err()
}

// GetByFacultyID retrieves all departments for a given faculty
func (r *DepartmentRepository) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Department, error) {
	query := fmt.Sprintf(`SELECT %s FROM departments WHERE faculty_id = $1 ORDER BY name ASC`, departmentColumns)

	rows, err := r.db.Query(ctx, query, facultyID)
	if err != nil {
		return nil, fmt.Errorf("error querying departments by faculty: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		department, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, department)
	}

	return departments, rows.Err()
}

// ListNamesByFaculty returns up to limit department names for a faculty
func (r *DepartmentRepository) ListNamesByFaculty(ctx context.Context, facultyID int64, limit int) ([]string, error) {
	sql, args, err := r.sb.Select("name").
		From("departments").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		OrderBy("name ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list department names query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying department names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning department name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Count returns the total number of departments
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting departments: %w", err)
	}
	return count, nil
}
