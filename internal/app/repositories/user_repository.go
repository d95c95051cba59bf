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

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	GetStudentByRegNo(ctx context.Context, regNo string) (*models.User, error)
	GetAllStudents(ctx context.Context) ([]*models.User, error)
	CountByRegNoPrefix(ctx context.Context, prefix string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const userColumns = "id, first_name, last_name, email, password, role, reg_no, year_of_study, faculty_id, department_id, is_active, created_at, updated_at"

func scanUser(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password,
		&user.Role, &user.RegNo, &user.YearOfStudy, &user.FacultyID,
		&user.DepartmentID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. Unique violations are mapped to typed errors
// so callers can distinguish an email conflict from a registration number
// collision (the latter is the retry trigger for regNo generation).
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("first_name", "last_name", "email", "password", "role", "reg_no", "year_of_study", "faculty_id", "department_id").
		Values(user.FirstName, user.LastName, user.Email, user.Password, user.Role,
			user.RegNo, user.YearOfStudy, user.FacultyID, user.DepartmentID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		switch duplicateConstraint(err) {
		case "users_email_key":
			return 0, apperrors.ErrEmailAlreadyExists
		case "users_reg_no_key":
			return 0, apperrors.ErrRegNoAlreadyExists
		}
		if isDuplicateKeyError(err) {
			return 0, apperrors.ErrConflict
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by ID: %w", err)
	}

	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user by email: %w", err)
	}

	return user, nil
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}
	return exists, nil
}

// GetStudentByRegNo retrieves a student by registration number, with the
// faculty and department relations populated.
func (r *UserRepository) GetStudentByRegNo(ctx context.Context, regNo string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE reg_no = $1 AND role = 'student'`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, regNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student by regNo: %w", err)
	}

	if err := r.populateDirectory(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetAllStudents retrieves all student accounts with their faculty and
// department populated.
func (r *UserRepository) GetAllStudents(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT u.id, u.first_name, u.last_name, u.email, u.password, u.role,
		       u.reg_no, u.year_of_study, u.faculty_id, u.department_id,
		       u.is_active, u.created_at, u.updated_at,
		       f.id, f.name, f.code,
		       d.id, d.name, d.code, d.faculty_id
		FROM users u
		LEFT JOIN faculties f ON f.id = u.faculty_id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE u.role = 'student'
		ORDER BY u.reg_no ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	var students []*models.User
	for rows.Next() {
		user := &models.User{}
		var (
			facultyID      *int64
			facultyName    *string
			facultyCode    *string
			deptID         *int64
			deptName       *string
			deptCode       *string
			deptFacultyRef *int64
		)
		if err := rows.Scan(
			&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Password,
			&user.Role, &user.RegNo, &user.YearOfStudy, &user.FacultyID,
			&user.DepartmentID, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
			&facultyID, &facultyName, &facultyCode,
			&deptID, &deptName, &deptCode, &deptFacultyRef,
		); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}

		if facultyID != nil {
			user.Faculty = &models.Faculty{ID: *facultyID, Name: *facultyName, Code: *facultyCode}
		}
		if deptID != nil {
			user.Department = &models.Department{ID: *deptID, Name: *deptName, Code: *deptCode, FacultyID: *deptFacultyRef}
		}

		students = append(students, user)
	}

	return students, rows.Err()
}

// CountByRegNoPrefix counts students whose registration number starts with
// the literal prefix. LIKE metacharacters in the prefix are escaped so
// special characters in faculty or department codes cannot widen the match.
func (r *UserRepository) CountByRegNoPrefix(ctx context.Context, prefix string) (int64, error) {
	pattern := escapeLikePattern(prefix) + "%"

	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE reg_no LIKE $1 ESCAPE '\'`, pattern).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users by regNo prefix: %w", err)
	}

	return count, nil
}

// Count returns the total number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

// populateDirectory loads the faculty and department relations for a user
func (r *UserRepository) populateDirectory(ctx context.Context, user *models.User) error {
	if user.FacultyID != nil {
		faculty := &models.Faculty{}
		err := r.db.QueryRow(ctx,
			`SELECT id, name, code FROM faculties WHERE id = $1`, *user.FacultyID).
			Scan(&faculty.ID, &faculty.Name, &faculty.Code)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("error loading user faculty: %w", err)
		}
		if err == nil {
			user.Faculty = faculty
		}
	}

	if user.DepartmentID != nil {
		department := &models.Department{}
		err := r.db.QueryRow(ctx,
			`SELECT id, faculty_id, name, code FROM departments WHERE id = $1`, *user.DepartmentID).
			Scan(&department.ID, &department.FacultyID, &department.Name, &department.Code)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("error loading user department: %w", err)
		}
		if err == nil {
			user.Department = department
		}
	}

	return nil
}
