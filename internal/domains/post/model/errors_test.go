package model

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-backend/internal/shared/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func handleOnRecorder(t *testing.T, err error) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return w, HandlePostError(c, err)
}

func TestHandlePostError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", ErrPostNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"slug conflict", ErrSlugExists, http.StatusConflict, "CONFLICT"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"unauthenticated", auth.ErrUnauthenticated, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"bad page", ErrInvalidPageLimit, http.StatusBadRequest, "BAD_REQUEST"},
		{"bad id", ErrInvalidPostID, http.StatusBadRequest, "BAD_REQUEST"},
		{"empty update", ErrNoUpdateFields, http.StatusBadRequest, "BAD_REQUEST"},
		{"unknown error", errors.New("pool exhausted"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, handled := handleOnRecorder(t, tt.err)
			assert.True(t, handled)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestHandlePostErrorNilPassesThrough(t *testing.T) {
	_, handled := handleOnRecorder(t, nil)
	assert.False(t, handled)
}
