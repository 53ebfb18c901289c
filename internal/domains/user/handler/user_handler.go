package handler

import (
	"net/http"

	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/domains/user/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// Register - POST /v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if model.HandleUserError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Login - POST /v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if model.HandleUserError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Refresh - POST /v1/auth/refresh
func (h *Handler) Refresh(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.service.Refresh(c.Request.Context(), req)
	if model.HandleUserError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Me - GET /v1/users/me
func (h *Handler) Me(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if actor == nil {
		response.Unauthorized(c, "You must be signed in to perform this action")
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), actor.ID)
	if model.HandleUserError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, user)
}
