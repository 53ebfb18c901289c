package service

import (
	"context"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/shared/auth"
)

// Service is the application-layer contract for posts. The actor may be
// nil for anonymous callers; each operation decides what anonymous can do.
type Service interface {
	List(ctx context.Context, actor *auth.Actor, req model.ListPostsRequest) ([]*model.PostResponse, *model.PaginationMeta, error)
	Get(ctx context.Context, actor *auth.Actor, id string) (*model.PostResponse, error)
	Create(ctx context.Context, actor *auth.Actor, req model.CreatePostRequest) (*model.PostResponse, error)
	Update(ctx context.Context, actor *auth.Actor, id string, req model.UpdatePostRequest) (*model.PostResponse, error)
	Delete(ctx context.Context, actor *auth.Actor, id string) (*model.DeletePostResponse, error)
}
