package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// DepartmentService handles department directory operations
type DepartmentService struct {
	departmentRepo repositories.IDepartmentRepository
	facultyRepo    repositories.IFacultyRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(
	departmentRepo repositories.IDepartmentRepository,
	facultyRepo repositories.IFacultyRepository,
) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		facultyRepo:    facultyRepo,
	}
}

// CreateDepartment creates a department under the faculty named in the
// request. An unknown faculty name reports the available faculties.
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	faculty, err := s.facultyRepo.GetByName(ctx, req.FacultyName)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyNotFound) {
			names, listErr := s.facultyRepo.ListNames(ctx, maxListedAlternatives)
			if listErr != nil || len(names) == 0 {
				return nil, apperrors.NewCustomError(apperrors.ErrFacultyNotFound,
					fmt.Sprintf("faculty %q not found", req.FacultyName))
			}
			return nil, apperrors.NewCustomError(apperrors.ErrFacultyNotFound,
				fmt.Sprintf("faculty %q not found. Available faculties: %s",
					req.FacultyName, strings.Join(names, ", ")))
		}
		return nil, err
	}

	department := &models.Department{
		FacultyID: faculty.ID,
		Name:      req.Name,
		Code:      req.Code,
	}
	if req.Description != "" {
		department.Description = &req.Description
	}

	id, err := s.departmentRepo.Create(ctx, department)
	if err != nil {
		return nil, err
	}
	department.ID = id

	logger.Info().
		Str("name", department.Name).
		Str("faculty", faculty.Name).
		Int64("departmentID", id).
		Msg("Department created")

	resp := newDepartmentResponse(department)
	return &resp, nil
}

// GetDepartment retrieves a department by ID
func (s *DepartmentService) GetDepartment(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := newDepartmentResponse(department)
	return &resp, nil
}

// GetAllDepartments retrieves all departments, optionally scoped to a
// faculty.
func (s *DepartmentService) GetAllDepartments(ctx context.Context, facultyID int64) (*dto.DepartmentListResponse, error) {
	var (
		departments []*models.Department
		err         error
	)
	if facultyID > 0 {
		departments, err = s.departmentRepo.GetByFacultyID(ctx, facultyID)
	} else {
		departments, err = s.departmentRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}

	resp := &dto.DepartmentListResponse{Departments: make([]dto.DepartmentResponse, 0, len(departments))}
	for _, department := range departments {
		resp.Departments = append(resp.Departments, newDepartmentResponse(department))
	}

	return resp, nil
}

func newDepartmentResponse(department *models.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:          department.ID,
		Name:        department.Name,
		Code:        department.Code,
		FacultyID:   department.FacultyID,
		Description: department.Description,
	}
}
