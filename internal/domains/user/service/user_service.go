package service

import (
	"context"
	"errors"
	"strings"

	"blog-backend/internal/domains/user/model"
	"blog-backend/internal/domains/user/repository"
	"blog-backend/pkg/jwt"
	"blog-backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type userService struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo repository.Repository, jwtManager *jwt.Manager) Service {
	return &userService{repo: repo, jwtManager: jwtManager}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Pre-check for a friendly error. The unique index on email still
	// backstops concurrent registrations.
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         req.AssignableRole(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id": user.ID,
		"role":    user.Role,
	})

	return user.ToResponse(), nil
}

// Login verifies credentials and issues the session tokens. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. The
// user is re-read so a role change takes effect at rotation, not only
// at the next login.
func (s *userService) Refresh(ctx context.Context, req model.RefreshRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, model.ErrInvalidRefreshToken
	}

	user, err := s.repo.FindByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrUserNotFound) {
		return nil, model.ErrInvalidRefreshToken
	}
	if err != nil {
		return nil, err
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.Name, string(user.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		User:         user.ToResponse(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*model.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.ToResponse(), nil
}
