package services

import (
	"context"
	"fmt"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// LecturerService handles lecturer profile operations
type LecturerService struct {
	lecturerRepo   repositories.ILecturerRepository
	userRepo       repositories.IUserRepository
	departmentRepo repositories.IDepartmentRepository
}

// NewLecturerService creates a new LecturerService
func NewLecturerService(
	lecturerRepo repositories.ILecturerRepository,
	userRepo repositories.IUserRepository,
	departmentRepo repositories.IDepartmentRepository,
) *LecturerService {
	return &LecturerService{
		lecturerRepo:   lecturerRepo,
		userRepo:       userRepo,
		departmentRepo: departmentRepo,
	}
}

// CreateLecturer attaches a lecturer profile to an existing account. The
// account must carry the Lecturer role.
func (s *LecturerService) CreateLecturer(ctx context.Context, req *dto.CreateLecturerRequest) (*dto.LecturerResponse, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleLecturer {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf(
			"user %d has role %q, a lecturer profile requires the %q role",
			user.ID, user.Role, models.RoleLecturer))
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	lecturer := &models.Lecturer{
		UserID:       req.UserID,
		StaffNo:      req.StaffNo,
		Title:        req.Title,
		DepartmentID: req.DepartmentID,
	}

	id, err := s.lecturerRepo.Create(ctx, lecturer)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("staffNo", req.StaffNo).
		Int64("lecturerID", id).
		Msg("Lecturer profile created")

	created, err := s.lecturerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewLecturerResponse(created)
	return &resp, nil
}

// GetLecturer retrieves a lecturer by ID
func (s *LecturerService) GetLecturer(ctx context.Context, id int64) (*dto.LecturerResponse, error) {
	lecturer, err := s.lecturerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewLecturerResponse(lecturer)
	return &resp, nil
}

// ListLecturers retrieves active lecturers, optionally filtered by
// department, paginated.
func (s *LecturerService) ListLecturers(ctx context.Context, departmentID int64, page, size int) ([]dto.LecturerResponse, int64, error) {
	lecturers, total, err := s.lecturerRepo.List(ctx, departmentID, page, size)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.LecturerResponse, 0, len(lecturers))
	for _, lecturer := range lecturers {
		responses = append(responses, dto.NewLecturerResponse(lecturer))
	}

	return responses, total, nil
}

// UpdateLecturer applies the non-nil fields of the request to the profile
func (s *LecturerService) UpdateLecturer(ctx context.Context, id int64, req *dto.UpdateLecturerRequest) (*dto.LecturerResponse, error) {
	lecturer, err := s.lecturerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		lecturer.Title = *req.Title
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return nil, err
		}
		lecturer.DepartmentID = *req.DepartmentID
	}

	if err := s.lecturerRepo.Update(ctx, lecturer); err != nil {
		return nil, err
	}

	logger.Info().Int64("lecturerID", id).Msg("Lecturer profile updated")

	updated, err := s.lecturerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewLecturerResponse(updated)
	return &resp, nil
}

// DeleteLecturer marks a lecturer profile inactive
func (s *LecturerService) DeleteLecturer(ctx context.Context, id int64) error {
	if err := s.lecturerRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("lecturerID", id).Msg("Lecturer profile deactivated")
	return nil
}
