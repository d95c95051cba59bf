package services

import (
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService       *AuthService
	RegNoService      *RegNoService
	FacultyService    *FacultyService
	DepartmentService *DepartmentService
	CourseService     *CourseService
	EnrollmentService *EnrollmentService
	StudentService    *StudentService
	LecturerService   *LecturerService
	SetupService      *SetupService
}

// NewServices initializes all services
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	regNoService := NewRegNoService(repos.UserRepository)

	return &Services{
		AuthService: NewAuthService(
			repos.UserRepository,
			repos.FacultyRepository,
			repos.DepartmentRepository,
			regNoService,
			jwtService,
		),
		RegNoService:      regNoService,
		FacultyService:    NewFacultyService(repos.FacultyRepository),
		DepartmentService: NewDepartmentService(repos.DepartmentRepository, repos.FacultyRepository),
		CourseService:     NewCourseService(repos.CourseRepository, repos.DepartmentRepository),
		EnrollmentService: NewEnrollmentService(repos.UserRepository, repos.CourseRepository, repos.EnrollmentRepository),
		StudentService:    NewStudentService(repos.UserRepository, repos.EnrollmentRepository),
		LecturerService:   NewLecturerService(repos.LecturerRepository, repos.UserRepository, repos.DepartmentRepository),
		SetupService:      NewSetupService(repos),
	}
}
