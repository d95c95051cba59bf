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

// IFacultyRepository defines faculty database operations
type IFacultyRepository interface {
	Create(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetByName(ctx context.Context, name string) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	ListNames(ctx context.Context, limit int) ([]string, error)
	Deactivate(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new faculty
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (int64, error) {
	sql, args, err := r.sb.Insert("faculties").
		Columns("name", "code", "description").
		Values(faculty.Name, faculty.Code, faculty.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrFacultyAlreadyExists
		}
		logger.Error().Err(err).Str("name", faculty.Name).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}

	return id, nil
}

// GetByID retrieves a faculty by ID
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "description", "is_active", "created_at", "updated_at").
		From("faculties").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&faculty.ID, &faculty.Name, &faculty.Code, &faculty.Description,
		&faculty.IsActive, &faculty.CreatedAt, &faculty.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by ID: %w", err)
	}

	return faculty, nil
}

// GetByName retrieves a faculty by its unique name
func (r *FacultyRepository) GetByName(ctx context.Context, name string) (*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "description", "is_active", "created_at", "updated_at").
		From("faculties").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty by name query: %w", err)
	}

	faculty := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&faculty.ID, &faculty.Name, &faculty.Code, &faculty.Description,
		&faculty.IsActive, &faculty.CreatedAt, &faculty.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Str("name", name).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by name: %w", err)
	}

	return faculty, nil
}

// GetAll retrieves all faculties ordered by name
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name", "code", "description", "is_active", "created_at", "updated_at").
		From("faculties").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get all faculties query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying faculties: %w", err)
	}
	defer rows.Close()

	faculties := []*models.Faculty{}
	for rows.Next() {
		faculty := &models.Faculty{}
		if err := rows.Scan(
			&faculty.ID, &faculty.Name, &faculty.Code, &faculty.Description,
			&faculty.IsActive, &faculty.CreatedAt, &faculty.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculties, nil
}

// ListNames returns up to limit faculty names ordered alphabetically
func (r *FacultyRepository) ListNames(ctx context.Context, limit int) ([]string, error) {
	sql, args, err := r.sb.Select("name").
		From("faculties").
		OrderBy("name ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty names query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying faculty names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning faculty name: %w", err)
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// Deactivate soft-deletes a faculty. Faculties are never hard-deleted.
func (r *FacultyRepository) Deactivate(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("faculties").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build deactivate faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing deactivate faculty query")
		return fmt.Errorf("error deactivating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}

// Count returns the total number of faculties
func (r *FacultyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faculties`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting faculties: %w", err)
	}
	return count, nil
}
