package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
	"github.com/obiwandem/varsity-backend/internal/pkg/auth"
)

type authFixture struct {
	svc            *AuthService
	userRepo       *memUserRepo
	facultyRepo    *memFacultyRepo
	departmentRepo *memDepartmentRepo
	jwtService     *auth.JWTService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	userRepo := newMemUserRepo()
	facultyRepo := newMemFacultyRepo()
	departmentRepo := newMemDepartmentRepo()

	ctx := context.Background()
	science := &models.Faculty{Name: "Faculty of Science", Code: "SCI", IsActive: true}
	_, err := facultyRepo.Create(ctx, science)
	require.NoError(t, err)
	engineering := &models.Faculty{Name: "Faculty of Engineering", Code: "ENG", IsActive: true}
	_, err = facultyRepo.Create(ctx, engineering)
	require.NoError(t, err)

	_, err = departmentRepo.Create(ctx, &models.Department{
		FacultyID: science.ID, Name: "Computer Science", Code: "CSC",
	})
	require.NoError(t, err)
	_, err = departmentRepo.Create(ctx, &models.Department{
		FacultyID: science.ID, Name: "Mathematics", Code: "MTH",
	})
	require.NoError(t, err)
	_, err = departmentRepo.Create(ctx, &models.Department{
		FacultyID: engineering.ID, Name: "Civil Engineering", Code: "CVE",
	})
	require.NoError(t, err)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "varsity-test",
	})

	regNoService := NewRegNoService(userRepo)
	regNoService.now = fixedClock(2026)

	svc := NewAuthService(userRepo, facultyRepo, departmentRepo, regNoService, jwtService)
	svc.now = fixedClock(2026)

	return &authFixture{
		svc:            svc,
		userRepo:       userRepo,
		facultyRepo:    facultyRepo,
		departmentRepo: departmentRepo,
		jwtService:     jwtService,
	}
}

func studentRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FirstName:      "Ada",
		LastName:       "Obi",
		Email:          "ada.obi@example.edu",
		Password:       "s3cret!",
		FacultyName:    "Faculty of Science",
		DepartmentName: "Computer Science",
		Role:           models.RoleStudent,
	}
}

func TestRegisterStudent(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.svc.Register(context.Background(), studentRegisterRequest())

	require.NoError(t, err)
	assert.Equal(t, "student", resp.User.Role)
	require.NotNil(t, resp.User.RegNo)
	assert.Equal(t, "SCI/CSC/26/001", *resp.User.RegNo)
	require.NotNil(t, resp.User.YearOfStudy)
	assert.Equal(t, 2026, *resp.User.YearOfStudy)

	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.Equal(t, int64(3600), resp.Token.ExpiresIn)

	claims, err := f.jwtService.ValidateToken(resp.Token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "ada.obi@example.edu", claims.Email)
	assert.Equal(t, "Ada", claims.FirstName)
}

func TestRegisterSequentialRegNos(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	first, err := f.svc.Register(ctx, studentRegisterRequest())
	require.NoError(t, err)

	second := studentRegisterRequest()
	second.Email = "bola.ade@example.edu"
	secondResp, err := f.svc.Register(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, "SCI/CSC/26/001", *first.User.RegNo)
	assert.Equal(t, "SCI/CSC/26/002", *secondResp.User.RegNo)
}

func TestRegisterDefaultsRoleToStudent(t *testing.T) {
	f := newAuthFixture(t)

	req := studentRegisterRequest()
	req.Role = ""
	resp, err := f.svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "student", resp.User.Role)
	assert.NotNil(t, resp.User.RegNo)
}

func TestRegisterAdminGetsNoRegNo(t *testing.T) {
	f := newAuthFixture(t)

	req := studentRegisterRequest()
	req.Role = models.RoleAdmin
	resp, err := f.svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Admin", resp.User.Role)
	assert.Nil(t, resp.User.RegNo)
	assert.Nil(t, resp.User.YearOfStudy)
}

func TestRegisterUnknownRole(t *testing.T) {
	f := newAuthFixture(t)

	req := studentRegisterRequest()
	req.Role = "superuser"
	_, err := f.svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestRegisterUnknownFacultyListsAlternatives(t *testing.T) {
	f := newAuthFixture(t)

	req := studentRegisterRequest()
	req.FacultyName = "Faculty of Magic"
	_, err := f.svc.Register(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
	assert.Contains(t, err.Error(), "Faculty of Science")
	assert.Contains(t, err.Error(), "Faculty of Engineering")
}

func TestRegisterUnknownDepartmentListsAlternatives(t *testing.T) {
	f := newAuthFixture(t)

	req := studentRegisterRequest()
	req.DepartmentName = "Alchemy"
	_, err := f.svc.Register(context.Background(), req)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	assert.Contains(t, err.Error(), "Computer Science")
	assert.Contains(t, err.Error(), "Mathematics")
	assert.NotContains(t, err.Error(), "Civil Engineering", "alternatives are scoped to the requested faculty")
}

func TestRegisterDepartmentInWrongFaculty(t *testing.T) {
	f := newAuthFixture(t)

	req := studentRegisterRequest()
	req.DepartmentName = "Civil Engineering" // exists, but under Engineering
	_, err := f.svc.Register(context.Background(), req)

	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, studentRegisterRequest())
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, studentRegisterRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegisterPasswordIsHashed(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.svc.Register(context.Background(), studentRegisterRequest())
	require.NoError(t, err)

	stored, err := f.userRepo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "s3cret!"))
}

func TestRegisterRetriesRegNoCollision(t *testing.T) {
	f := newAuthFixture(t)
	f.userRepo.regNoConflicts = 2

	resp, err := f.svc.Register(context.Background(), studentRegisterRequest())

	require.NoError(t, err)
	assert.NotNil(t, resp.User.RegNo)
}

func TestRegisterGivesUpAfterRepeatedCollisions(t *testing.T) {
	f := newAuthFixture(t)
	f.userRepo.regNoConflicts = regNoCreateAttempts

	_, err := f.svc.Register(context.Background(), studentRegisterRequest())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRegNoAlreadyExists)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, studentRegisterRequest())
	require.NoError(t, err)

	resp, err := f.svc.Login(ctx, &dto.LoginRequest{
		Email:    "ada.obi@example.edu",
		Password: "s3cret!",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "ada.obi@example.edu", resp.User.Email)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.edu",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrEmailNotRegistered)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.svc.Register(ctx, studentRegisterRequest())
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, &dto.LoginRequest{
		Email:    "ada.obi@example.edu",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginDisabledAccount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	resp, err := f.svc.Register(ctx, studentRegisterRequest())
	require.NoError(t, err)

	f.userRepo.users[resp.User.ID].IsActive = false

	_, err = f.svc.Login(ctx, &dto.LoginRequest{
		Email:    "ada.obi@example.edu",
		Password: "s3cret!",
	})

	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}
