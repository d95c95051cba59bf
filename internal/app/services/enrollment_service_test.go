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

type enrollmentFixture struct {
	svc        *EnrollmentService
	userRepo   *memUserRepo
	courseRepo *memCourseRepo
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()

	userRepo := newMemUserRepo()
	courseRepo := newMemCourseRepo()
	enrollmentRepo := newMemEnrollmentRepo(userRepo, courseRepo)

	ctx := context.Background()
	regNo := "SCI/CSC/26/001"
	_, err := userRepo.Create(ctx, &models.User{
		FirstName: "Ada",
		LastName:  "Obi",
		Email:     "ada.obi@example.edu",
		Role:      models.RoleStudent,
		RegNo:     &regNo,
		IsActive:  true,
	})
	require.NoError(t, err)

	_, err = courseRepo.Create(ctx, &models.Course{
		Title:        "Introduction to Algorithms",
		Code:         "CSC201",
		Unit:         3,
		Semester:     models.SemesterFirst,
		DepartmentID: 1,
		IsActive:     true,
	})
	require.NoError(t, err)

	return &enrollmentFixture{
		svc:        NewEnrollmentService(userRepo, courseRepo, enrollmentRepo),
		userRepo:   userRepo,
		courseRepo: courseRepo,
	}
}

func TestEnrollStudent(t *testing.T) {
	f := newEnrollmentFixture(t)

	resp, err := f.svc.EnrollStudent(context.Background(), &dto.EnrollRequest{
		RegNo: "SCI/CSC/26/001",
		Code:  "CSC201",
	})

	require.NoError(t, err)
	require.Len(t, resp.Courses, 1)
	assert.Equal(t, "Introduction to Algorithms", resp.Courses[0].CourseName)
}

func TestEnrollStudentRosterMatchesStudentList(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	_, err := f.svc.EnrollStudent(ctx, &dto.EnrollRequest{
		RegNo: "SCI/CSC/26/001",
		Code:  "CSC201",
	})
	require.NoError(t, err)

	rosters, err := f.svc.GetAllEnrollments(ctx)
	require.NoError(t, err)
	require.Len(t, rosters, 1)
	assert.Equal(t, "CSC201", rosters[0].Course.Code)
	require.Len(t, rosters[0].EnrolledStudents, 1)
	require.NotNil(t, rosters[0].EnrolledStudents[0].RegNo)
	assert.Equal(t, "SCI/CSC/26/001", *rosters[0].EnrolledStudents[0].RegNo)
}

func TestEnrollStudentTwice(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()
	req := &dto.EnrollRequest{RegNo: "SCI/CSC/26/001", Code: "CSC201"}

	_, err := f.svc.EnrollStudent(ctx, req)
	require.NoError(t, err)

	_, err = f.svc.EnrollStudent(ctx, req)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyEnrolled)
}

func TestEnrollUnknownStudent(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.svc.EnrollStudent(context.Background(), &dto.EnrollRequest{
		RegNo: "SCI/CSC/26/999",
		Code:  "CSC201",
	})

	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestEnrollUnknownCourse(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.svc.EnrollStudent(context.Background(), &dto.EnrollRequest{
		RegNo: "SCI/CSC/26/001",
		Code:  "CSC999",
	})

	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestEnrollInactiveCourse(t *testing.T) {
	f := newEnrollmentFixture(t)
	ctx := context.Background()

	require.NoError(t, f.courseRepo.SoftDelete(ctx, 1))

	_, err := f.svc.EnrollStudent(ctx, &dto.EnrollRequest{
		RegNo: "SCI/CSC/26/001",
		Code:  "CSC201",
	})

	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestGetAllEnrollmentsEmpty(t *testing.T) {
	f := newEnrollmentFixture(t)

	rosters, err := f.svc.GetAllEnrollments(context.Background())

	require.NoError(t, err)
	assert.Empty(t, rosters)
}
