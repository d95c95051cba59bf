package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
)

func performErrorRequest(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(ctx, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	recorder, body := performErrorRequest(t, apperrors.ErrStudentNotFound)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.False(t, body.Success)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
}

func TestHandleAPIErrorConflict(t *testing.T) {
	recorder, body := performErrorRequest(t, apperrors.ErrAlreadyEnrolled)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, body.Error.Code)
}

func TestHandleAPIErrorCapacityExceededIsConflict(t *testing.T) {
	recorder, _ := performErrorRequest(t, apperrors.ErrRegNoCapacityExceeded)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandleAPIErrorDistinguishesLoginFailures(t *testing.T) {
	recorder, body := performErrorRequest(t, apperrors.ErrEmailNotRegistered)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, dto.ErrorCodeEmailNotRegistered, body.Error.Code)

	recorder, body = performErrorRequest(t, apperrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, body.Error.Code)
}

func TestHandleAPIErrorPermissionDenied(t *testing.T) {
	recorder, body := performErrorRequest(t, apperrors.ErrPermissionDenied)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, body.Error.Code)
}

func TestHandleAPIErrorBadRequest(t *testing.T) {
	recorder, _ := performErrorRequest(t, apperrors.NewBadRequestError("invalid id parameter"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleAPIErrorCustomMessagePreserved(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrFacultyNotFound,
		`faculty "Magic" not found. Available faculties: Faculty of Science`)
	recorder, body := performErrorRequest(t, err)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, body.Error.Message, "Available faculties: Faculty of Science")
}

func TestHandleAPIErrorUnknownErrorIsOpaque500(t *testing.T) {
	recorder, body := performErrorRequest(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Equal(t, dto.ErrorCodeInternalServer, body.Error.Code)
	assert.NotContains(t, body.Error.Message, "connection refused", "internal details must not leak")
}

func TestHandleAPIErrorWrappedErrorStillClassified(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), apperrors.ErrCourseNotFound)
	recorder, _ := performErrorRequest(t, wrapped)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
