package service

import (
	"context"

	"blog-backend/internal/domains/user/model"
)

type Service interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Refresh(ctx context.Context, req model.RefreshRequest) (*model.LoginResponse, error)
	GetByID(ctx context.Context, id string) (*model.UserResponse, error)
}
