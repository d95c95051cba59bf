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

// CourseService handles course catalog operations
type CourseService struct {
	courseRepo     repositories.ICourseRepository
	departmentRepo repositories.IDepartmentRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(
	courseRepo repositories.ICourseRepository,
	departmentRepo repositories.IDepartmentRepository,
) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

// CreateCourse creates a course under the department named in the request.
// Course titles are unique across the catalog.
func (s *CourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if !models.ValidSemester(req.Semester) {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf(
			"unknown semester %q, expected %q or %q", req.Semester, models.SemesterFirst, models.SemesterSecond))
	}

	department, err := s.departmentRepo.GetByName(ctx, req.DepartmentName)
	if err != nil {
		if errors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrDepartmentNotFound,
				fmt.Sprintf("department %q not found", req.DepartmentName))
		}
		return nil, err
	}

	exists, err := s.courseRepo.TitleExists(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewCustomError(apperrors.ErrCourseAlreadyExists,
			fmt.Sprintf("a course titled %q already exists", req.Title))
	}

	course := &models.Course{
		Title:        req.Title,
		Code:         strings.ToUpper(req.Code),
		Unit:         req.Unit,
		Semester:     req.Semester,
		Level:        req.Level,
		DepartmentID: department.ID,
		IsActive:     true,
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}
	course.ID = id
	course.Department = department

	logger.Info().
		Str("code", course.Code).
		Str("department", department.Name).
		Int64("courseID", id).
		Msg("Course created")

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// GetCourse retrieves a course by ID
func (s *CourseService) GetCourse(ctx context.Context, id int64) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// ListCourses retrieves active courses matching the filter, paginated
func (s *CourseService) ListCourses(ctx context.Context, filter dto.CourseFilter) ([]dto.CourseResponse, int64, error) {
	if filter.Semester != "" && !models.ValidSemester(filter.Semester) {
		return nil, 0, apperrors.NewBadRequestError(fmt.Sprintf("unknown semester %q", filter.Semester))
	}

	courses, total, err := s.courseRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]dto.CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, dto.NewCourseResponse(course))
	}

	return responses, total, nil
}

// UpdateCourse applies the non-nil fields of the request to the course
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Code != nil {
		course.Code = strings.ToUpper(*req.Code)
	}
	if req.Unit != nil {
		course.Unit = *req.Unit
	}
	if req.Semester != nil {
		if !models.ValidSemester(*req.Semester) {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown semester %q", *req.Semester))
		}
		course.Semester = *req.Semester
	}
	if req.Level != nil {
		course.Level = req.Level
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}

	logger.Info().Int64("courseID", id).Msg("Course updated")

	resp := dto.NewCourseResponse(course)
	return &resp, nil
}

// DeleteCourse marks a course inactive. Existing enrollments keep their
// rows; the course just stops accepting new ones.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.SoftDelete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("courseID", id).Msg("Course deactivated")
	return nil
}
