package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/shared/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeService records the request the handler built and returns canned
// results, so these tests cover parameter parsing only.
type fakeService struct {
	lastListReq model.ListPostsRequest
	lastGetID   string
}

func (f *fakeService) List(_ context.Context, _ *auth.Actor, req model.ListPostsRequest) ([]*model.PostResponse, *model.PaginationMeta, error) {
	f.lastListReq = req
	meta, err := model.Paginate(req.Page, req.Limit, 0)
	if err != nil {
		return nil, nil, err
	}
	return []*model.PostResponse{}, meta, nil
}

func (f *fakeService) Get(_ context.Context, _ *auth.Actor, id string) (*model.PostResponse, error) {
	f.lastGetID = id
	return nil, model.ErrPostNotFound
}

func (f *fakeService) Create(_ context.Context, _ *auth.Actor, _ model.CreatePostRequest) (*model.PostResponse, error) {
	return nil, auth.ErrUnauthenticated
}

func (f *fakeService) Update(_ context.Context, _ *auth.Actor, _ string, _ model.UpdatePostRequest) (*model.PostResponse, error) {
	return nil, auth.ErrUnauthenticated
}

func (f *fakeService) Delete(_ context.Context, _ *auth.Actor, _ string) (*model.DeletePostResponse, error) {
	return nil, auth.ErrUnauthenticated
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)

	router := gin.New()
	router.GET("/posts", h.List)
	router.GET("/posts/:id", h.Get)
	router.POST("/posts", h.Create)
	router.PATCH("/posts/:id", h.Update)
	router.DELETE("/posts/:id", h.Delete)
	return router
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func TestListParamParsing(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		w := doRequest(router, http.MethodGet, "/posts")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, svc.lastListReq.Page)
		assert.Equal(t, 9, svc.lastListReq.Limit)
		assert.Nil(t, svc.lastListReq.Published)
		assert.False(t, svc.lastListReq.IncludeUnpublished)
	})

	t.Run("published=true parsed", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		doRequest(router, http.MethodGet, "/posts?published=true")
		require.NotNil(t, svc.lastListReq.Published)
		assert.True(t, *svc.lastListReq.Published)
	})

	t.Run("any other published value means false", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		doRequest(router, http.MethodGet, "/posts?published=yes")
		require.NotNil(t, svc.lastListReq.Published)
		assert.False(t, *svc.lastListReq.Published)
	})

	t.Run("includeUnpublished parsed", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		doRequest(router, http.MethodGet, "/posts?includeUnpublished=true")
		assert.True(t, svc.lastListReq.IncludeUnpublished)
	})

	t.Run("explicit page and limit parsed", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		doRequest(router, http.MethodGet, "/posts?page=3&limit=20")
		assert.Equal(t, 3, svc.lastListReq.Page)
		assert.Equal(t, 20, svc.lastListReq.Limit)
	})

	t.Run("non-numeric page rejected", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		w := doRequest(router, http.MethodGet, "/posts?page=abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero page flows through to validation", func(t *testing.T) {
		svc := &fakeService{}
		router := setupRouter(svc)

		w := doRequest(router, http.MethodGet, "/posts?page=0")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestIDValidation(t *testing.T) {
	svc := &fakeService{}
	router := setupRouter(svc)

	paths := []string{
		"/posts/not-hex",
		"/posts/507f1f77bcf86cd79943901",
		"/posts/507F1F77BCF86CD799439011",
	}

	for _, path := range paths {
		for _, method := range []string{http.MethodGet, http.MethodPatch, http.MethodDelete} {
			w := doRequest(router, method, path)
			assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", method, path)
			assert.Empty(t, svc.lastGetID, "service must not be reached for %s", path)
		}
	}
}

func TestValidIDReachesService(t *testing.T) {
	svc := &fakeService{}
	router := setupRouter(svc)

	w := doRequest(router, http.MethodGet, "/posts/507f1f77bcf86cd799439011")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "507f1f77bcf86cd799439011", svc.lastGetID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
}
