package handler

import (
	"net/http"
	"strconv"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/service"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage  = 1
	defaultLimit = 9
)

type Handler struct {
	service service.Service
}

func NewHandler(service service.Service) *Handler {
	return &Handler{service: service}
}

// List - GET /v1/posts
// Query params: published, authorId, search, includeUnpublished, page, limit
func (h *Handler) List(c *gin.Context) {
	req := model.ListPostsRequest{
		AuthorID:           c.Query("authorId"),
		Search:             c.Query("search"),
		IncludeUnpublished: c.Query("includeUnpublished") == "true",
		Page:               defaultPage,
		Limit:              defaultLimit,
	}

	// Any value other than "true" means published=false; only the
	// absent parameter leaves the filter unset.
	if publishedStr, ok := c.GetQuery("published"); ok {
		published := publishedStr == "true"
		req.Published = &published
	}

	// Explicit but unparseable page/limit values are rejected rather
	// than silently replaced with defaults.
	if pageStr := c.Query("page"); pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil {
			model.HandlePostError(c, model.ErrInvalidPageLimit)
			return
		}
		req.Page = p
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil {
			model.HandlePostError(c, model.ErrInvalidPageLimit)
			return
		}
		req.Limit = l
	}

	actor := middleware.ActorFromContext(c)

	posts, pagination, err := h.service.List(c.Request.Context(), actor, req)
	if model.HandlePostError(c, err) {
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, posts, pagination)
}

// Get - GET /v1/posts/:id
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidObjectID(id) {
		model.HandlePostError(c, model.ErrInvalidPostID)
		return
	}

	actor := middleware.ActorFromContext(c)

	post, err := h.service.Get(c.Request.Context(), actor, id)
	if model.HandlePostError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Create - POST /v1/posts
func (h *Handler) Create(c *gin.Context) {
	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	actor := middleware.ActorFromContext(c)

	post, err := h.service.Create(c.Request.Context(), actor, req)
	if model.HandlePostError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// Update - PATCH /v1/posts/:id
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidObjectID(id) {
		model.HandlePostError(c, model.ErrInvalidPostID)
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	actor := middleware.ActorFromContext(c)

	post, err := h.service.Update(c.Request.Context(), actor, id, req)
	if model.HandlePostError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Delete - DELETE /v1/posts/:id
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidObjectID(id) {
		model.HandlePostError(c, model.ErrInvalidPostID)
		return
	}

	actor := middleware.ActorFromContext(c)

	deleted, err := h.service.Delete(c.Request.Context(), actor, id)
	if model.HandlePostError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, deleted)
}
