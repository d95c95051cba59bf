package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
	"github.com/obiwandem/varsity-backend/internal/pkg/auth"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// maxListedAlternatives caps how many directory names a not-found error
// message enumerates.
const maxListedAlternatives = 20

// regNoCreateAttempts bounds the retry loop for registration-number
// collisions between the sequence count and the insert.
const regNoCreateAttempts = 3

// AuthService handles account registration and login
type AuthService struct {
	userRepo       repositories.IUserRepository
	facultyRepo    repositories.IFacultyRepository
	departmentRepo repositories.IDepartmentRepository
	regNoService   *RegNoService
	jwtService     *auth.JWTService
	now            func() time.Time
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	facultyRepo repositories.IFacultyRepository,
	departmentRepo repositories.IDepartmentRepository,
	regNoService *RegNoService,
	jwtService *auth.JWTService,
) *AuthService {
	return &AuthService{
		userRepo:       userRepo,
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		regNoService:   regNoService,
		jwtService:     jwtService,
		now:            time.Now,
	}
}

// Register provisions a new account. Students get a generated registration
// number and their admission year recorded; faculty and department are
// resolved by name, and a failed lookup reports the available names.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}
	if !models.ValidRole(role) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown role %q", req.Role))
	}

	faculty, err := s.facultyRepo.GetByName(ctx, req.FacultyName)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			return nil, s.facultyNotFoundError(ctx, req.FacultyName)
		}
		return nil, err
	}

	department, err := s.departmentRepo.GetByNameAndFaculty(ctx, req.DepartmentName, faculty.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil, s.departmentNotFoundError(ctx, req.DepartmentName, faculty)
		}
		return nil, err
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists,
			fmt.Sprintf("an account with email %s already exists", req.Email))
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Password:     hashedPassword,
		Role:         role,
		FacultyID:    &faculty.ID,
		DepartmentID: &department.ID,
		IsActive:     true,
	}

	if role == models.RoleStudent {
		yearOfStudy := s.now().Year()
		user.YearOfStudy = &yearOfStudy
		if err := s.createStudent(ctx, user, faculty.Code, department.Code); err != nil {
			return nil, err
		}
	} else {
		id, err := s.userRepo.Create(ctx, user)
		if err != nil {
			return nil, err
		}
		user.ID = id
	}

	logger.Info().
		Int64("userID", user.ID).
		Str("role", string(user.Role)).
		Msg("Account registered")

	return s.buildAuthResponse(user)
}

// createStudent generates a registration number and inserts the account,
// retrying on a registration-number collision. A collision means another
// registration claimed the same sequence between the count and the insert,
// so the regenerated number picks up the new count.
func (s *AuthService) createStudent(ctx context.Context, user *models.User, facultyCode, departmentCode string) error {
	var lastErr error
	for attempt := 0; attempt < regNoCreateAttempts; attempt++ {
		regNo, err := s.regNoService.Generate(ctx, facultyCode, departmentCode)
		if err != nil {
			return err
		}
		user.RegNo = &regNo

		id, err := s.userRepo.Create(ctx, user)
		if err == nil {
			user.ID = id
			return nil
		}
		if !errors.Is(err, apperrors.ErrRegNoAlreadyExists) {
			return err
		}

		logger.Warn().
			Str("regNo", regNo).
			Int("attempt", attempt+1).
			Msg("Registration number collision, regenerating")
		lastErr = err
	}

	return fmt.Errorf("could not allocate a registration number after %d attempts: %w",
		regNoCreateAttempts, lastErr)
}

// Login authenticates credentials and issues a session token. An unknown
// email and a wrong password are reported as distinct errors.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrEmailNotRegistered,
				fmt.Sprintf("email %s is not registered", req.Email))
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return s.buildAuthResponse(user)
}

func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	accessToken, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: accessToken,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}

// facultyNotFoundError builds a not-found error listing the registered
// faculty names so the caller can correct the request.
func (s *AuthService) facultyNotFoundError(ctx context.Context, name string) error {
	names, err := s.facultyRepo.ListNames(ctx, maxListedAlternatives)
	if err != nil || len(names) == 0 {
		return apperrors.NewCustomError(apperrors.ErrFacultyNotFound,
			fmt.Sprintf("faculty %q not found", name))
	}

	return apperrors.NewCustomError(apperrors.ErrFacultyNotFound,
		fmt.Sprintf("faculty %q not found. Available faculties: %s", name, strings.Join(names, ", ")))
}

// departmentNotFoundError builds a not-found error listing the departments
// registered under the given faculty.
func (s *AuthService) departmentNotFoundError(ctx context.Context, name string, faculty *models.Faculty) error {
	names, err := s.departmentRepo.ListNamesByFaculty(ctx, faculty.ID, maxListedAlternatives)
	if err != nil || len(names) == 0 {
		return apperrors.NewCustomError(apperrors.ErrDepartmentNotFound,
			fmt.Sprintf("department %q not found in %s", name, faculty.Name))
	}

	return apperrors.NewCustomError(apperrors.ErrDepartmentNotFound,
		fmt.Sprintf("department %q not found in %s. Available departments: %s",
			name, faculty.Name, strings.Join(names, ", ")))
}
