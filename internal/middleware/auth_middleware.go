package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
	"github.com/obiwandem/varsity-backend/internal/pkg/auth"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// Context keys set by JWTAuth
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// JWTAuth validates the bearer token and stores the caller's identity on
// the request context.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.ErrInvalidFormat)
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				HandleAPIError(c, apperrors.ErrTokenExpired)
			default:
				HandleAPIError(c, apperrors.ErrTokenInvalid)
			}
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Next()
	}
}

// RoleRequired allows only callers whose account carries one of the given
// roles. The token does not encode the role, so the check reads the account;
// a role change takes effect without waiting for the token to expire.
func RoleRequired(userRepo repositories.IUserRepository, roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64(ContextUserID)
		if userID == 0 {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			c.Abort()
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			c.Abort()
			return
		}

		if !user.IsActive {
			HandleAPIError(c, apperrors.ErrAccountDisabled)
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		logger.Warn().
			Int64("userID", userID).
			Str("role", string(user.Role)).
			Str("path", c.Request.URL.Path).
			Msg("Access denied")

		HandleAPIError(c, apperrors.ErrPermissionDenied)
		c.Abort()
	}
}
