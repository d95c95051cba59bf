package controllers

import (
	"github.com/obiwandem/varsity-backend/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController       *AuthController
	FacultyController    *FacultyController
	DepartmentController *DepartmentController
	CourseController     *CourseController
	StudentController    *StudentController
	LecturerController   *LecturerController
	SetupController      *SetupController
}

// NewControllers initializes all controllers
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svcs.AuthService),
		FacultyController:    NewFacultyController(svcs.FacultyService),
		DepartmentController: NewDepartmentController(svcs.DepartmentService),
		CourseController:     NewCourseController(svcs.CourseService, svcs.EnrollmentService),
		StudentController:    NewStudentController(svcs.StudentService),
		LecturerController:   NewLecturerController(svcs.LecturerService),
		SetupController:      NewSetupController(svcs.SetupService),
	}
}
