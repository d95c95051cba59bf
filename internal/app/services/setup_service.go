package services

import (
	"context"

	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
	"github.com/obiwandem/varsity-backend/internal/seed"
)

// SetupService handles first-time system initialization
type SetupService struct {
	repos *repositories.Repositories
}

// NewSetupService creates a new SetupService
func NewSetupService(repos *repositories.Repositories) *SetupService {
	return &SetupService{repos: repos}
}

// Status reports directory and account counts for the setup screen
func (s *SetupService) Status(ctx context.Context) (*dto.SetupStatusResponse, error) {
	faculties, err := s.repos.FacultyRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.repos.DepartmentRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.repos.UserRepository.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.SetupStatusResponse{
		Faculties:   faculties,
		Departments: departments,
		Users:       users,
		IsEmpty:     faculties == 0 && departments == 0 && users == 0,
	}, nil
}

// Initialize seeds the faculty/department directory. It refuses to run
// against a system that already has faculties.
func (s *SetupService) Initialize(ctx context.Context) (*dto.SetupStatusResponse, error) {
	faculties, err := s.repos.FacultyRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	if faculties > 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrSystemAlreadySeeded,
			"system already initialized: faculties exist")
	}

	if err := seed.SeedDirectory(ctx, s.repos); err != nil {
		return nil, err
	}

	logger.Info().Msg("Initial directory seeded")

	return s.Status(ctx)
}
