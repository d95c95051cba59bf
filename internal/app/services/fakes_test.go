package services

import (
	"context"
	"sort"
	"strings"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
)

// In-memory repository fakes backing the service tests.

type memFacultyRepo struct {
	nextID    int64
	faculties map[int64]*models.Faculty
}

func newMemFacultyRepo() *memFacultyRepo {
	return &memFacultyRepo{faculties: make(map[int64]*models.Faculty)}
}

func (r *memFacultyRepo) Create(_ context.Context, faculty *models.Faculty) (int64, error) {
	for _, f := range r.faculties {
		if f.Name == faculty.Name {
			return 0, apperrors.ErrFacultyAlreadyExists
		}
	}
	r.nextID++
	faculty.ID = r.nextID
	stored := *faculty
	r.faculties[faculty.ID] = &stored
	return faculty.ID, nil
}

func (r *memFacultyRepo) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	faculty, ok := r.faculties[id]
	if !ok {
		return nil, apperrors.ErrFacultyNotFound
	}
	copied := *faculty
	return &copied, nil
}

func (r *memFacultyRepo) GetByName(_ context.Context, name string) (*models.Faculty, error) {
	for _, faculty := range r.faculties {
		if faculty.Name == name {
			copied := *faculty
			return &copied, nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (r *memFacultyRepo) GetAll(_ context.Context) ([]*models.Faculty, error) {
	var faculties []*models.Faculty
	for _, faculty := range r.faculties {
		copied := *faculty
		faculties = append(faculties, &copied)
	}
	sort.Slice(faculties, func(i, j int) bool { return faculties[i].Name < faculties[j].Name })
	return faculties, nil
}

func (r *memFacultyRepo) ListNames(ctx context.Context, limit int) ([]string, error) {
	faculties, _ := r.GetAll(ctx)
	var names []string
	for _, faculty := range faculties {
		if len(names) >= limit {
			break
		}
		names = append(names, faculty.Name)
	}
	return names, nil
}

func (r *memFacultyRepo) Deactivate(_ context.Context, id int64) error {
	faculty, ok := r.faculties[id]
	if !ok {
		return apperrors.ErrFacultyNotFound
	}
	faculty.IsActive = false
	return nil
}

func (r *memFacultyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.faculties)), nil
}

type memDepartmentRepo struct {
	nextID      int64
	departments map[int64]*models.Department
}

func newMemDepartmentRepo() *memDepartmentRepo {
	return &memDepartmentRepo{departments: make(map[int64]*models.Department)}
}

func (r *memDepartmentRepo) Create(_ context.Context, department *models.Department) (int64, error) {
	for _, d := range r.departments {
		if d.Name == department.Name {
			return 0, apperrors.ErrDepartmentAlreadyExists
		}
	}
	r.nextID++
	department.ID = r.nextID
	stored := *department
	r.departments[department.ID] = &stored
	return department.ID, nil
}

func (r *memDepartmentRepo) GetByID(_ context.Context, id int64) (*models.Department, error) {
	department, ok := r.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	copied := *department
	return &copied, nil
}

func (r *memDepartmentRepo) GetByName(_ context.Context, name string) (*models.Department, error) {
	for _, department := range r.departments {
		if department.Name == name {
			copied := *department
			return &copied, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r *memDepartmentRepo) GetByNameAndFaculty(_ context.Context, name string, facultyID int64) (*models.Department, error) {
	for _, department := range r.departments {
		if department.Name == name && department.FacultyID == facultyID {
			copied := *department
			return &copied, nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

func (r *memDepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	var departments []*models.Department
	for _, department := range r.departments {
		copied := *department
		departments = append(departments, &copied)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].Name < departments[j].Name })
	return departments, nil
}

func (r *memDepartmentRepo) GetByFacultyID(ctx context.Context, facultyID int64) ([]*models.Department, error) {
	all, _ := r.GetAll(ctx)
	var departments []*models.Department
	for _, department := range all {
		if department.FacultyID == facultyID {
			departments = append(departments, department)
		}
	}
	return departments, nil
}

func (r *memDepartmentRepo) ListNamesByFaculty(ctx context.Context, facultyID int64, limit int) ([]string, error) {
	departments, _ := r.GetByFacultyID(ctx, facultyID)
	var names []string
	for _, department := range departments {
		if len(names) >= limit {
			break
		}
		names = append(names, department.Name)
	}
	return names, nil
}

func (r *memDepartmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.departments)), nil
}

type memUserRepo struct {
	nextID int64
	users  map[int64]*models.User

	// regNoConflicts makes the next N creates fail with a registration
	// number collision, to exercise the retry path.
	regNoConflicts int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *models.User) (int64, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	if user.RegNo != nil {
		if r.regNoConflicts > 0 {
			r.regNoConflicts--
			return 0, apperrors.ErrRegNoAlreadyExists
		}
		for _, u := range r.users {
			if u.RegNo != nil && *u.RegNo == *user.RegNo {
				return 0, apperrors.ErrRegNoAlreadyExists
			}
		}
	}
	r.nextID++
	user.ID = r.nextID
	stored := *user
	r.users[user.ID] = &stored
	return user.ID, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *memUserRepo) GetStudentByRegNo(_ context.Context, regNo string) (*models.User, error) {
	for _, user := range r.users {
		if user.Role == models.RoleStudent && user.RegNo != nil && *user.RegNo == regNo {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *memUserRepo) GetAllStudents(_ context.Context) ([]*models.User, error) {
	var students []*models.User
	for _, user := range r.users {
		if user.Role == models.RoleStudent {
			copied := *user
			students = append(students, &copied)
		}
	}
	sort.Slice(students, func(i, j int) bool {
		return derefString(students[i].RegNo) < derefString(students[j].RegNo)
	})
	return students, nil
}

func (r *memUserRepo) CountByRegNoPrefix(_ context.Context, prefix string) (int64, error) {
	var count int64
	for _, user := range r.users {
		if user.RegNo != nil && strings.HasPrefix(*user.RegNo, prefix) {
			count++
		}
	}
	return count, nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type memCourseRepo struct {
	nextID  int64
	courses map[int64]*models.Course
}

func newMemCourseRepo() *memCourseRepo {
	return &memCourseRepo{courses: make(map[int64]*models.Course)}
}

func (r *memCourseRepo) Create(_ context.Context, course *models.Course) (int64, error) {
	for _, c := range r.courses {
		if c.Title == course.Title || c.Code == course.Code {
			return 0, apperrors.ErrCourseAlreadyExists
		}
	}
	r.nextID++
	course.ID = r.nextID
	stored := *course
	r.courses[course.ID] = &stored
	return course.ID, nil
}

func (r *memCourseRepo) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := r.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (r *memCourseRepo) GetByCode(_ context.Context, code string) (*models.Course, error) {
	for _, course := range r.courses {
		if course.Code == code && course.IsActive {
			copied := *course
			return &copied, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (r *memCourseRepo) TitleExists(_ context.Context, title string) (bool, error) {
	for _, course := range r.courses {
		if course.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCourseRepo) List(_ context.Context, filter dto.CourseFilter) ([]*models.Course, int64, error) {
	var courses []*models.Course
	for _, course := range r.courses {
		if !course.IsActive {
			continue
		}
		if filter.DepartmentID > 0 && course.DepartmentID != filter.DepartmentID {
			continue
		}
		if filter.Semester != "" && course.Semester != filter.Semester {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(course.Title), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(course.Code), strings.ToLower(filter.Search)) {
			continue
		}
		copied := *course
		courses = append(courses, &copied)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Code < courses[j].Code })
	return courses, int64(len(courses)), nil
}

func (r *memCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := r.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	stored := *course
	r.courses[course.ID] = &stored
	return nil
}

func (r *memCourseRepo) SoftDelete(_ context.Context, id int64) error {
	course, ok := r.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	course.IsActive = false
	return nil
}

type memEnrollmentRepo struct {
	nextID      int64
	enrollments []models.Enrollment

	userRepo   *memUserRepo
	courseRepo *memCourseRepo
}

func newMemEnrollmentRepo(userRepo *memUserRepo, courseRepo *memCourseRepo) *memEnrollmentRepo {
	return &memEnrollmentRepo{userRepo: userRepo, courseRepo: courseRepo}
}

func (r *memEnrollmentRepo) Enroll(_ context.Context, enrollment *models.Enrollment) error {
	for _, e := range r.enrollments {
		if e.StudentID == enrollment.StudentID && e.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	r.nextID++
	enrollment.ID = r.nextID
	r.enrollments = append(r.enrollments, *enrollment)
	return nil
}

func (r *memEnrollmentRepo) IsEnrolled(_ context.Context, studentID, courseID int64) (bool, error) {
	for _, e := range r.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memEnrollmentRepo) ListByStudent(_ context.Context, studentID int64) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	for _, e := range r.enrollments {
		if e.StudentID == studentID {
			enrollments = append(enrollments, e)
		}
	}
	return enrollments, nil
}

func (r *memEnrollmentRepo) ListCourseStudents(ctx context.Context, courseID int64) ([]models.User, error) {
	var students []models.User
	for _, e := range r.enrollments {
		if e.CourseID != courseID {
			continue
		}
		user, err := r.userRepo.GetByID(ctx, e.StudentID)
		if err != nil {
			return nil, err
		}
		students = append(students, *user)
	}
	return students, nil
}

func (r *memEnrollmentRepo) CoursesWithEnrollments(ctx context.Context) ([]*models.Course, error) {
	seen := make(map[int64]bool)
	var courses []*models.Course
	for _, e := range r.enrollments {
		if seen[e.CourseID] {
			continue
		}
		seen[e.CourseID] = true
		course, err := r.courseRepo.GetByID(ctx, e.CourseID)
		if err != nil {
			return nil, err
		}
		students, err := r.ListCourseStudents(ctx, e.CourseID)
		if err != nil {
			return nil, err
		}
		course.EnrolledStudents = students
		courses = append(courses, course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].Code < courses[j].Code })
	return courses, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
