package services

import (
	"context"
	"fmt"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// EnrollmentService handles enrolling students into courses
type EnrollmentService struct {
	userRepo       repositories.IUserRepository
	courseRepo     repositories.ICourseRepository
	enrollmentRepo repositories.IEnrollmentRepository
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	userRepo repositories.IUserRepository,
	courseRepo repositories.ICourseRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
) *EnrollmentService {
	return &EnrollmentService{
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// EnrollStudent enrolls the student identified by registration number into
// the course identified by code. The enrollment is a single row, so the
// student's course list and the course roster cannot diverge.
func (s *EnrollmentService) EnrollStudent(ctx context.Context, req *dto.EnrollRequest) (*dto.StudentResponse, error) {
	student, err := s.userRepo.GetStudentByRegNo(ctx, req.RegNo)
	if err != nil {
		return nil, err
	}

	course, err := s.courseRepo.GetByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}

	enrollment := &models.Enrollment{
		StudentID:   student.ID,
		CourseID:    course.ID,
		CourseTitle: course.Title,
	}
	if err := s.enrollmentRepo.Enroll(ctx, enrollment); err != nil {
		return nil, err
	}

	logger.Info().
		Str("regNo", req.RegNo).
		Str("courseCode", course.Code).
		Msg("Student enrolled")

	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading enrollments after enroll: %w", err)
	}
	student.Courses = enrollments

	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// GetAllEnrollments returns every course that has enrolled students, with
// the rosters populated.
func (s *EnrollmentService) GetAllEnrollments(ctx context.Context) ([]dto.CourseEnrollmentsResponse, error) {
	courses, err := s.enrollmentRepo.CoursesWithEnrollments(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CourseEnrollmentsResponse, 0, len(courses))
	for _, course := range courses {
		entry := dto.CourseEnrollmentsResponse{Course: dto.NewCourseResponse(course)}
		for i := range course.EnrolledStudents {
			entry.EnrolledStudents = append(entry.EnrolledStudents,
				dto.NewUserResponse(&course.EnrolledStudents[i]))
		}
		responses = append(responses, entry)
	}

	return responses, nil
}
