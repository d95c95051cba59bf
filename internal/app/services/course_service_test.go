package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
)

func newCourseFixture(t *testing.T) (*CourseService, *memCourseRepo) {
	t.Helper()

	courseRepo := newMemCourseRepo()
	departmentRepo := newMemDepartmentRepo()

	_, err := departmentRepo.Create(context.Background(), &models.Department{
		FacultyID: 1, Name: "Computer Science", Code: "CSC",
	})
	require.NoError(t, err)

	return NewCourseService(courseRepo, departmentRepo), courseRepo
}

func createCourseRequest() *dto.CreateCourseRequest {
	return &dto.CreateCourseRequest{
		Title:          "Introduction to Algorithms",
		Code:           "csc201",
		Unit:           3,
		Semester:       models.SemesterFirst,
		DepartmentName: "Computer Science",
	}
}

func TestCreateCourse(t *testing.T) {
	svc, _ := newCourseFixture(t)

	resp, err := svc.CreateCourse(context.Background(), createCourseRequest())

	require.NoError(t, err)
	assert.Equal(t, "Introduction to Algorithms", resp.Title)
	assert.Equal(t, "CSC201", resp.Code, "course codes are stored uppercase")
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.Department)
	assert.Equal(t, "Computer Science", resp.Department.Name)
}

func TestCreateCourseDuplicateTitle(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, createCourseRequest())
	require.NoError(t, err)

	dup := createCourseRequest()
	dup.Code = "CSC301"
	_, err = svc.CreateCourse(ctx, dup)

	assert.ErrorIs(t, err, apperrors.ErrCourseAlreadyExists)
}

func TestCreateCourseUnknownDepartment(t *testing.T) {
	svc, _ := newCourseFixture(t)

	req := createCourseRequest()
	req.DepartmentName = "Alchemy"
	_, err := svc.CreateCourse(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestCreateCourseInvalidSemester(t *testing.T) {
	svc, _ := newCourseFixture(t)

	req := createCourseRequest()
	req.Semester = "3rd Semester"
	_, err := svc.CreateCourse(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestListCoursesFiltersSemester(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, createCourseRequest())
	require.NoError(t, err)

	second := createCourseRequest()
	second.Title = "Operating Systems"
	second.Code = "CSC305"
	second.Semester = models.SemesterSecond
	_, err = svc.CreateCourse(ctx, second)
	require.NoError(t, err)

	courses, total, err := svc.ListCourses(ctx, dto.CourseFilter{Semester: models.SemesterSecond})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, courses, 1)
	assert.Equal(t, "CSC305", courses[0].Code)
}

func TestUpdateCoursePartial(t *testing.T) {
	svc, _ := newCourseFixture(t)
	ctx := context.Background()

	created, err := svc.CreateCourse(ctx, createCourseRequest())
	require.NoError(t, err)

	newUnit := 4
	resp, err := svc.UpdateCourse(ctx, created.ID, &dto.UpdateCourseRequest{Unit: &newUnit})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.Unit)
	assert.Equal(t, "Introduction to Algorithms", resp.Title, "unset fields stay unchanged")
}

func TestDeleteCourseHidesItFromLookup(t *testing.T) {
	svc, courseRepo := newCourseFixture(t)
	ctx := context.Background()

	created, err := svc.CreateCourse(ctx, createCourseRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCourse(ctx, created.ID))

	_, err = courseRepo.GetByCode(ctx, "CSC201")
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
