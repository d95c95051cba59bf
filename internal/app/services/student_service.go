package services

import (
	"context"
	"fmt"

	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
)

// StudentService handles student directory reads
type StudentService struct {
	userRepo       repositories.IUserRepository
	enrollmentRepo repositories.IEnrollmentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(
	userRepo repositories.IUserRepository,
	enrollmentRepo repositories.IEnrollmentRepository,
) *StudentService {
	return &StudentService{
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// GetStudentByRegNo retrieves a student by registration number with faculty,
// department and enrollments populated.
func (s *StudentService) GetStudentByRegNo(ctx context.Context, regNo string) (*dto.StudentResponse, error) {
	student, err := s.userRepo.GetStudentByRegNo(ctx, regNo)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, fmt.Errorf("error loading student enrollments: %w", err)
	}
	student.Courses = enrollments

	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

// GetAllStudents retrieves all students with their directory references
func (s *StudentService) GetAllStudents(ctx context.Context) (*dto.StudentListResponse, error) {
	students, err := s.userRepo.GetAllStudents(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.StudentListResponse{Students: make([]dto.StudentResponse, 0, len(students))}
	for _, student := range students {
		enrollments, err := s.enrollmentRepo.ListByStudent(ctx, student.ID)
		if err != nil {
			return nil, fmt.Errorf("error loading student enrollments: %w", err)
		}
		student.Courses = enrollments
		resp.Students = append(resp.Students, dto.NewStudentResponse(student))
	}

	return resp, nil
}
