package services

import (
	"context"
	"fmt"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// FacultyService handles faculty directory operations
type FacultyService struct {
	facultyRepo repositories.IFacultyRepository
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(facultyRepo repositories.IFacultyRepository) *FacultyService {
	return &FacultyService{facultyRepo: facultyRepo}
}

// CreateFaculty creates a new faculty
func (s *FacultyService) CreateFaculty(ctx context.Context, req *dto.CreateFacultyRequest) (*dto.FacultyResponse, error) {
	faculty := &models.Faculty{
		Name:     req.Name,
		Code:     req.Code,
		IsActive: true,
	}
	if req.Description != "" {
		faculty.Description = &req.Description
	}

	id, err := s.facultyRepo.Create(ctx, faculty)
	if err != nil {
		return nil, err
	}
	faculty.ID = id

	logger.Info().Str("name", faculty.Name).Int64("facultyID", id).Msg("Faculty created")

	resp := newFacultyResponse(faculty)
	return &resp, nil
}

// GetFaculty retrieves a faculty by ID
func (s *FacultyService) GetFaculty(ctx context.Context, id int64) (*dto.FacultyResponse, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := newFacultyResponse(faculty)
	return &resp, nil
}

// GetAllFaculties retrieves all faculties
func (s *FacultyService) GetAllFaculties(ctx context.Context) (*dto.FacultyListResponse, error) {
	faculties, err := s.facultyRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing faculties: %w", err)
	}

	resp := &dto.FacultyListResponse{Faculties: make([]dto.FacultyResponse, 0, len(faculties))}
	for _, faculty := range faculties {
		resp.Faculties = append(resp.Faculties, newFacultyResponse(faculty))
	}

	return resp, nil
}

// DeactivateFaculty marks a faculty inactive
func (s *FacultyService) DeactivateFaculty(ctx context.Context, id int64) error {
	if err := s.facultyRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("facultyID", id).Msg("Faculty deactivated")
	return nil
}

func newFacultyResponse(faculty *models.Faculty) dto.FacultyResponse {
	return dto.FacultyResponse{
		ID:          faculty.ID,
		Name:        faculty.Name,
		Code:        faculty.Code,
		Description: faculty.Description,
		IsActive:    faculty.IsActive,
	}
}
