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
	ErrInvalidPageLimit = errors.New("page and limit must be positive")
	ErrInvalidPostID    = errors.New("invalid post id format")
	ErrInvalidSlug      = errors.New("slug must contain only lowercase letters, numbers, and hyphens")
	ErrNoUpdateFields   = errors.New("no update fields provided")
	ErrPostNotFound     = errors.New("post not found")
	ErrSlugExists       = errors.New("slug already exists")
	ErrForbidden        = errors.New("permission denied")
)

var postErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrInvalidPageLimit: {
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "Page and limit must be positive integers",
	},
	ErrInvalidPostID: {
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "Post ID must be a 24-character hex string",
	},
	ErrInvalidSlug: {
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "Slug must contain only lowercase letters, numbers, and hyphens",
	},
	ErrNoUpdateFields: {
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: "Provide at least one of: title, content, excerpt, published",
	},
	ErrPostNotFound: {
		Status:  http.StatusNotFound,
		Code:    "NOT_FOUND",
		Message: "The specified post does not exist",
	},
	ErrSlugExists: {
		Status:  http.StatusConflict,
		Code:    "CONFLICT",
		Message: "A post with this slug already exists",
	},
}

// HandlePostError writes the HTTP response for a domain error.
// Returns true when err was handled; unknown errors become a 500.
func HandlePostError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, auth.ErrUnauthenticated) {
		response.Unauthorized(c, "You must be signed in to perform this action")
		return true
	}

	if errors.Is(err, ErrForbidden) {
		response.Forbidden(c, "You do not have permission to perform this action")
		return true
	}

	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", validationErrs)
		return true
	}

	for sentinel, config := range postErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, config.Status, config.Code, config.Message)
			return true
		}
	}

	logger.Error("unhandled post error", err)
	response.InternalServerError(c, "Internal server error")
	return true
}
