package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/domains/post/repository"
	"blog-backend/internal/shared/auth"
	"blog-backend/pkg/cache"
	"blog-backend/pkg/logger"
)

const (
	listCacheTTL   = 5 * time.Minute
	detailCacheTTL = 10 * time.Minute
	listCacheScope = "posts:list:*"
)

type postService struct {
	repo  repository.Repository
	cache cache.Cache
}

func NewPostService(repo repository.Repository, cache cache.Cache) Service {
	return &postService{repo: repo, cache: cache}
}

type cachedList struct {
	Posts      []*model.PostResponse `json:"posts"`
	Pagination *model.PaginationMeta `json:"pagination"`
}

// listCacheKey derives a stable key from everything that shapes the
// result set. The actor never participates in list filtering, so the
// key does not include one.
func listCacheKey(filter model.PostFilter, page, limit int) string {
	published := "any"
	if filter.Published != nil {
		published = fmt.Sprintf("%t", *filter.Published)
	}
	raw := fmt.Sprintf("pub=%s|author=%s|search=%s|page=%d|limit=%d",
		published, filter.AuthorID, filter.Search, page, limit)
	sum := md5.Sum([]byte(raw))
	return "posts:list:" + hex.EncodeToString(sum[:])
}

func detailCacheKey(id string) string {
	return "post:detail:" + id
}

func (s *postService) List(ctx context.Context, actor *auth.Actor, req model.ListPostsRequest) ([]*model.PostResponse, *model.PaginationMeta, error) {
	filter := model.BuildFilter(req)

	if req.Page < 1 || req.Limit < 1 {
		return nil, nil, model.ErrInvalidPageLimit
	}

	cacheKey := listCacheKey(filter, req.Page, req.Limit)
	if s.cache != nil {
		var cached cachedList
		if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			logger.Debug("post list served from cache")
			return cached.Posts, cached.Pagination, nil
		}
	}

	totalCount, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	pagination, err := model.Paginate(req.Page, req.Limit, totalCount)
	if err != nil {
		return nil, nil, err
	}

	posts, err := s.repo.List(ctx, filter, pagination.Limit, pagination.Offset())
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*model.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, posts[i].ToResponse())
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, cachedList{Posts: responses, Pagination: pagination}, listCacheTTL); err != nil {
			logger.Warn("failed to cache post list", map[string]interface{}{"error": err.Error()})
		}
	}

	return responses, pagination, nil
}

// Get returns a post by id. Drafts are only visible to their author and
// admins; everyone else sees not-found, so draft existence never leaks.
func (s *postService) Get(ctx context.Context, actor *auth.Actor, id string) (*model.PostResponse, error) {
	if s.cache != nil {
		var cached model.PostResponse
		if found, err := s.cache.Get(ctx, detailCacheKey(id), &cached); err == nil && found {
			logger.Debug("post detail served from cache")
			return &cached, nil
		}
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !post.Published && !auth.CanViewDraft(actor, post.AuthorID) {
		return nil, model.ErrPostNotFound
	}

	resp := post.ToResponse()

	// Only published posts land in the cache; draft visibility depends
	// on who is asking, and the cache key does not.
	if s.cache != nil && post.Published {
		if err := s.cache.Set(ctx, detailCacheKey(id), resp, detailCacheTTL); err != nil {
			logger.Warn("failed to cache post detail", map[string]interface{}{"error": err.Error()})
		}
	}

	return resp, nil
}

func (s *postService) Create(ctx context.Context, actor *auth.Actor, req model.CreatePostRequest) (*model.PostResponse, error) {
	if actor == nil {
		return nil, auth.ErrUnauthenticated
	}
	if !auth.CanCreatePost(actor) {
		return nil, model.ErrForbidden
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Fast path for a friendly conflict error. The unique index on slug
	// is the authority; Create still maps 23505 if someone wins a race.
	if _, err := s.repo.FindBySlug(ctx, req.Slug); err == nil {
		return nil, model.ErrSlugExists
	} else if !errors.Is(err, model.ErrPostNotFound) {
		return nil, err
	}

	post := &model.Post{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Published: req.Published,
		AuthorID:  actor.ID,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)

	// Re-read with the author join so the response carries author info.
	created, err := s.repo.FindByID(ctx, post.ID)
	if err != nil {
		return post.ToResponse(), nil
	}
	return created.ToResponse(), nil
}

func (s *postService) Update(ctx context.Context, actor *auth.Actor, id string, req model.UpdatePostRequest) (*model.PostResponse, error) {
	if actor == nil {
		return nil, auth.ErrUnauthenticated
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanMutatePost(actor, post.AuthorID) {
		return nil, model.ErrForbidden
	}

	updated, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	s.invalidateDetail(ctx, id)

	return updated.ToResponse(), nil
}

func (s *postService) Delete(ctx context.Context, actor *auth.Actor, id string) (*model.DeletePostResponse, error) {
	if actor == nil {
		return nil, auth.ErrUnauthenticated
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !auth.CanMutatePost(actor, post.AuthorID) {
		return nil, model.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.invalidateLists(ctx)
	s.invalidateDetail(ctx, id)

	return &model.DeletePostResponse{ID: post.ID, Title: post.Title}, nil
}

func (s *postService) invalidateLists(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, listCacheScope); err != nil {
		logger.Warn("failed to invalidate post list cache", map[string]interface{}{"error": err.Error()})
	}
}

func (s *postService) invalidateDetail(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, detailCacheKey(id)); err != nil {
		logger.Warn("failed to invalidate post detail cache", map[string]interface{}{"error": err.Error()})
	}
}
