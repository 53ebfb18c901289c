package repository

import (
	"context"

	"blog-backend/internal/domains/post/model"
)

// Repository is the persistence contract for posts.
type Repository interface {
	List(ctx context.Context, filter model.PostFilter, limit, offset int) ([]model.Post, error)
	Count(ctx context.Context, filter model.PostFilter) (int, error)
	FindByID(ctx context.Context, id string) (*model.Post, error)
	FindBySlug(ctx context.Context, slug string) (*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id string) error
}
