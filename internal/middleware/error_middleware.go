package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// HandleAPIError maps an application error to an HTTP response. Unrecognized
// errors become a generic 500 so internal details never leak to the client.
func HandleAPIError(c *gin.Context, err error) {
	status, detail := classifyError(err)

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
	}

	c.JSON(status, dto.NewErrorResponse(detail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	var customErr *apperrors.CustomError
	message := err.Error()
	if errors.As(err, &customErr) && customErr.Message != "" {
		message = customErr.Message
	}

	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrFacultyNotFound,
		apperrors.ErrDepartmentNotFound,
		apperrors.ErrCourseNotFound,
		apperrors.ErrLecturerNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message)

	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrRegNoAlreadyExists,
		apperrors.ErrRegNoCapacityExceeded,
		apperrors.ErrFacultyAlreadyExists,
		apperrors.ErrDepartmentAlreadyExists,
		apperrors.ErrCourseAlreadyExists,
		apperrors.ErrAlreadyEnrolled,
		apperrors.ErrStaffNoAlreadyExists,
		apperrors.ErrSystemAlreadySeeded):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message)

	case errors.Is(err, apperrors.ErrEmailNotRegistered):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeEmailNotRegistered, message)

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, message)

	case errors.Is(err, apperrors.ErrTokenExpired):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, message)

	case apperrors.Is(err, apperrors.ErrTokenInvalid,
		apperrors.ErrInvalidFormat,
		apperrors.ErrAccountDisabled):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message)

	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, message)

	case apperrors.Is(err, apperrors.ErrValidationFailed, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)

	default:
		return http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "An unexpected error occurred")
	}
}
