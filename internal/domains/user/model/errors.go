package model

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/auth"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrEmailExists         = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrInvalidRole         = errors.New("role must be AUTHOR or READER")
	ErrUserNotFound        = errors.New("user not found")
)

// HandleUserError writes the HTTP response for a user domain error.
// Returns true when err was handled.
func HandleUserError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		response.Unauthorized(c, "You must be signed in to perform this action")
	case errors.Is(err, ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, ErrInvalidRefreshToken):
		response.Unauthorized(c, "Invalid or expired refresh token")
	case errors.Is(err, ErrEmailExists):
		response.Conflict(c, "An account with this email already exists")
	case errors.Is(err, ErrInvalidRole):
		response.BadRequest(c, "Role must be AUTHOR or READER")
	case errors.Is(err, ErrUserNotFound):
		response.NotFound(c, "The specified user does not exist")
	default:
		var validationErrs validation.Errors
		if errors.As(err, &validationErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationErrs)
			return true
		}
		logger.Error("unhandled user error", err)
		response.InternalServerError(c, "Internal server error")
	}

	return true
}
